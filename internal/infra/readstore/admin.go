package readstore

import (
	"context"

	"storefront/internal/infra"
	"storefront/internal/infra/db"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type AdminReadStore struct {
	db db.DBTX
}

func NewAdminReadStore(dbtx db.DBTX) *AdminReadStore {
	return &AdminReadStore{db: dbtx}
}

const adminByEmailSQL = `
SELECT id, email, password_hash
FROM admins
WHERE email = $1
`

func (s *AdminReadStore) FindByEmail(ctx context.Context, email string) (*shared.AdminSnapshot, error) {
	var (
		id           pgtype.UUID
		dbEmail      string
		passwordHash string
	)
	err := s.db.QueryRow(ctx, adminByEmailSQL, email).Scan(&id, &dbEmail, &passwordHash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("admin not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to fetch admin", err)
	}

	return &shared.AdminSnapshot{
		ID:           uuid.UUID(id.Bytes),
		Email:        dbEmail,
		PasswordHash: passwordHash,
	}, nil
}
