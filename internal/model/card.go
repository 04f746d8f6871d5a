package model

import "time"

// Card represents an image card in the database. OwnerID is set at creation
// and never changes.
type Card struct {
	ID        string
	OwnerID   string
	Name      string
	Link      string
	Likes     []string
	CreatedAt time.Time
}

// CreateCardRequest represents a card creation request.
type CreateCardRequest struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

// CardResponse represents card data for API responses. Likes is the set of
// user ids that liked the card, each present at most once.
type CardResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCardResponse maps a stored card to its API shape.
func NewCardResponse(c *Card) CardResponse {
	likes := c.Likes
	if likes == nil {
		likes = []string{}
	}
	return CardResponse{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		Name:      c.Name,
		Link:      c.Link,
		Likes:     likes,
		CreatedAt: c.CreatedAt,
	}
}
