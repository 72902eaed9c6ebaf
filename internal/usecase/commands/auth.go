package commands

import (
	"context"
	"log/slog"

	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/jwt"
	"storefront/internal/pkg/password"
)

type LoginResult struct {
	Token string
	Email string
}

type AuthCommands interface {
	// Login authenticates an admin by email/password and issues a JWT.
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	admins AdminReader
	tokens *jwt.Service
}

func NewAuthCommands(admins AdminReader, tokens *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		admins: admins,
		tokens: tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	admin, err := a.admins.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same failure as a wrong password; no account probing.
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(admin.PasswordHash, pass); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		slog.Error("failed to generate admin token", "error", err.Error())
		return nil, errs.Wrap(err, "token generation failed")
	}

	return &LoginResult{Token: token, Email: admin.Email}, nil
}
