package tokens

import (
	"context"
	"database/sql"

	"github.com/dcastanera/inventario/internal/common"
	"github.com/dcastanera/inventario/internal/dbx"
)

// Store binds the key/value repository to the credential lifecycle: the
// bearer token and its type are written together, read individually, and
// cleared together. Clearing is idempotent, so concurrent invalidation
// (explicit sign-out vs. a 401 observed mid-flight) is harmless.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Access returns the persisted bearer token, or "" when none is stored.
func (s *Store) Access(ctx context.Context) (string, error) {
	return NewSQLiteRepository(s.db).Get(ctx, common.AccessTokenKey)
}

// Save persists the token and its type in a single transaction.
func (s *Store) Save(ctx context.Context, accessToken, tokenType string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.AccessTokenKey, accessToken); err != nil {
			return err
		}
		return repo.Set(ctx, common.TokenTypeKey, tokenType)
	})
}

// Clear wipes all stored credential material.
func (s *Store) Clear(ctx context.Context) error {
	return NewSQLiteRepository(s.db).Clear(ctx)
}
