package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/ougirez/lwc/internal/pkg/constants"
)

type AuthTokenWrapper struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

func GenerateAuthToken(wrapper *AuthTokenWrapper, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	wrapper.IssuedAt = now.Unix()
	wrapper.ExpiresAt = now.Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapper)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return signed, nil
}

func ParseAuthToken(tokenString string, secret string) (*AuthTokenWrapper, error) {
	wrapper := new(AuthTokenWrapper)
	token, err := jwt.ParseWithClaims(tokenString, wrapper, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", constants.ErrUnauthorized, err.Error())
	}
	if !token.Valid {
		return nil, constants.ErrUnauthorized
	}

	return wrapper, nil
}
