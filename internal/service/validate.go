package service

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	urlPattern   = regexp.MustCompile(`^https?://(www\.)?[\w\-]+(\.[\w\-]+)+[\w\-._~:/?#\[\]@!$&'()*+,;=]*$`)
)

func validEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validURL(link string) bool {
	return urlPattern.MatchString(link)
}

// validText checks the 2..30 character bound shared by name and about
// fields.
func validText(s string) bool {
	n := len([]rune(s))
	return n >= 2 && n <= 30
}
