package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an admin JWT used to access the REST API when bearer auth is
// enabled on the server.
//
// SignedString holds the compact serialized form (header.payload.signature)
// sent in the "Authorization: Bearer" header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`
}

// Subject returns the "sub" claim or "" when it is missing.
func (t *Token) Subject() string {
	sub, err := t.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
