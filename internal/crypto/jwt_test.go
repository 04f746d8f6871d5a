package crypto

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testUserID = "507f1f77bcf86cd799439011"

func TestIssueAndVerifyToken(t *testing.T) {
	token, err := IssueToken(testUserID, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("IssueToken() returned empty string")
	}

	userID, err := VerifyToken(token, "test-secret")
	if err != nil {
		t.Fatalf("VerifyToken() unexpected error: %v", err)
	}
	if userID != testUserID {
		t.Errorf("VerifyToken() user id = %q, want %q", userID, testUserID)
	}
}

func TestVerifyTokenMalformed(t *testing.T) {
	if _, err := VerifyToken("not-a-valid-token", "test-secret"); err == nil {
		t.Error("VerifyToken() expected error for malformed token")
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(testUserID, "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	if _, err := VerifyToken(token, "wrong-secret"); err == nil {
		t.Error("VerifyToken() expected error for wrong secret")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := IssueToken(testUserID, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	if _, err := VerifyToken(token, "test-secret"); err == nil {
		t.Error("VerifyToken() expected error for expired token")
	}
}

func TestVerifyTokenTamperedPayload(t *testing.T) {
	token, err := IssueToken(testUserID, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() unexpected error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %d parts", len(parts))
	}
	// Flip a character inside the payload segment.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := VerifyToken(tampered, "test-secret"); err == nil {
		t.Error("VerifyToken() expected error for tampered payload")
	}
}

func TestVerifyTokenUnsignedAlgorithm(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: testUserID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err := VerifyToken(tokenString, "test-secret"); err == nil {
		t.Error("VerifyToken() expected error for alg=none token")
	}
}

func TestVerifyTokenWrongIssuer(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Audience:  jwt.ClaimStrings{tokenAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: testUserID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("SignedString() unexpected error: %v", err)
	}

	if _, err := VerifyToken(tokenString, "test-secret"); err == nil {
		t.Error("VerifyToken() expected error for wrong issuer")
	}
}
