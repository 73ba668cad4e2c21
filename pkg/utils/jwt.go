package utils

import (
	"errors"
	"time"

	appErrors "taskboard/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the token subject alongside the registered JWT claims.
type Claims struct {
	UserID uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

// TokenPair bundles the short-lived access token with its long-lived
// refresh token. Access and refresh tokens are signed with distinct
// secrets, so leaking one does not compromise the other.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// GenerateToken issues an HS256-signed token for the given subject.
func GenerateToken(userID uuid.UUID, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// GenerateTokenPair issues an access and a refresh token for the subject.
func GenerateTokenPair(userID uuid.UUID, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) (*TokenPair, error) {
	accessToken, err := GenerateToken(userID, accessSecret, accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := GenerateToken(userID, refreshSecret, refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(accessTTL).Unix(),
	}, nil
}

// ValidateToken parses and verifies a token against the given secret. It
// fails closed: any signature mismatch, malformed payload, or expiry yields
// an error and never a partial identity.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, appErrors.ErrTokenExpired
		}
		return nil, appErrors.ErrInvalidToken
	}

	if !token.Valid {
		return nil, appErrors.ErrInvalidToken
	}

	return claims, nil
}
