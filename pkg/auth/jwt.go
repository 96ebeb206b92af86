package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims binds a bearer to the single match it created
type Claims struct {
	MatchID string `json:"match_id"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// GenerateMatchToken creates a JWT for matchID that expires after the issuer's TTL
func (i *TokenIssuer) GenerateMatchToken(matchID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		MatchID: matchID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   matchID,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// ValidateMatchToken validates a match token and returns its claims
func (i *TokenIssuer) ValidateMatchToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return i.secret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid && claims.MatchID != "" {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
