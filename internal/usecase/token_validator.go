package usecase

import (
	"storefront/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the narrow surface the auth middleware needs.
type TokenValidator interface {
	ValidateToken(token string) (adminID uuid.UUID, email string, err error)
}

type tokenValidatorImpl struct {
	tokens *jwt.Service
}

func NewTokenValidator(tokens *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{tokens: tokens}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, string, error) {
	claims, err := v.tokens.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.AdminID, claims.Email, nil
}
