package common

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClientTokenSigner signs the cookie that identifies a browser client. The client id is the
// namespace for everything that client stores, so it must not be forgeable.
type ClientTokenSigner struct {
	secretKey []byte
}

func NewClientTokenSigner(secretKey []byte) *ClientTokenSigner {
	return &ClientTokenSigner{secretKey: secretKey}
}

// Issue signs a token for clientID. Tokens carry no expiry; the cookie lifetime bounds them.
func (s *ClientTokenSigner) Issue(clientID string, issuedAt time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:  clientID,
		IssuedAt: jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign client token: %w", err)
	}
	return tokenString, nil
}

// Parse validates tokenString and returns the client id it was issued for.
func (s *ClientTokenSigner) Parse(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse client token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("invalid client token")
	}
	if claims.Subject == "" {
		return "", errors.New("client token has no subject")
	}
	return claims.Subject, nil
}
