// Package auth mints and parses the HS256 access tokens handed out after a
// successful authentication.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/exactauth/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

const issuer = "exactauth"

// Claims carries the account ID in "sub" plus the privilege flags at the
// time of issue.
type Claims struct {
	jwt.RegisteredClaims
	IsStaff     bool `json:"is_staff,omitempty"`
	IsSuperuser bool `json:"is_superuser,omitempty"`
}

// Subject is the account a token was issued to.
type Subject struct {
	AccountID   string
	IsStaff     bool
	IsSuperuser bool
}

func GenerateToken(sub Subject, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sub.AccountID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		IsStaff:     sub.IsStaff,
		IsSuperuser: sub.IsSuperuser,
	})

	s, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// ParseToken validates tokenString. Expired tokens return
// common.ErrTokenExpired; anything else wrong returns common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (Subject, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Subject{}, common.ErrTokenExpired
		}
		return Subject{}, common.ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return Subject{}, common.ErrInvalidToken
	}

	return Subject{AccountID: claims.Subject, IsStaff: claims.IsStaff, IsSuperuser: claims.IsSuperuser}, nil
}
