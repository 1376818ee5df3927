package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims represents the custom JWT claims issued after a Firebase login
type AccessClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}
