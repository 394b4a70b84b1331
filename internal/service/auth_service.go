package service

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/internal/models"
	"github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/config"
	appErrors "github.com/Hai-009911/HIN-LANGUAGE-CENTER-sub001/pkg/errors"
)

// AuthService validates access tokens issued by the hosted identity provider.
// Sign-in, refresh and password flows all live with that provider; this service
// only needs to verify the shared-secret signature and extract claims.
type AuthService struct {
	secret []byte
}

// NewAuthService constructs the service.
func NewAuthService(cfg config.JWTConfig) *AuthService {
	return &AuthService{secret: []byte(cfg.Secret)}
}

// ValidateToken parses and verifies an access token.
func (s *AuthService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	claims := &models.JWTClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid or expired token")
	}
	if !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid or expired token")
	}
	return claims, nil
}
