package domain

import "github.com/golang-jwt/jwt/v5"

// AuthClaims is the signed payload of a bearer token. Role is informational
// only; authorization always re-reads the stored role.
type AuthClaims struct {
	UserID   int    `json:"userId"`
	Email    string `json:"email"`
	UserName string `json:"userName"`
	PhoneNo  string `json:"phoneNo"`
	Role     Role   `json:"role"`
	jwt.RegisteredClaims
}
