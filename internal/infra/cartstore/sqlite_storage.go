// Package cartstore implements the durable local cart mirror on SQLite.
package cartstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	_ "modernc.org/sqlite" // Pure-Go SQLite driver.
)

const schema = `
CREATE TABLE IF NOT EXISTS cart_items (
	position INTEGER PRIMARY KEY,
	payload  TEXT NOT NULL
);`

// sqliteStorage implements the CartStorage interface on a local SQLite file.
// Saves are synchronous full rewrites inside one transaction, so the mirror
// is always a consistent snapshot of the last completed mutation.
type sqliteStorage struct {
	db     *sql.DB
	logger *slog.Logger
}

// Params holds dependencies for sqliteStorage, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens (or creates) the cart mirror database and ensures its schema.
func New(params Params) (repository.CartStorage, error) {
	path := "cart.db"
	if params.Config.Cart != nil && params.Config.Cart.StoragePath != "" {
		path = params.Config.Cart.StoragePath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "failed to create cart storage directory")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open cart storage")
	}
	// The cart has a single writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return nil, errors.Wrap(err, "failed to create cart storage schema")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return db.Close()
		},
	})

	return &sqliteStorage{db: db, logger: params.Logger}, nil
}

// Load returns the stored cart lines in position order.
func (s *sqliteStorage) Load() ([]entity.CartItem, error) {
	rows, err := s.db.Query(`SELECT payload FROM cart_items ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart mirror")
	}
	defer rows.Close()

	var items []entity.CartItem
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, errors.Wrap(err, "failed to scan cart line")
		}
		var item entity.CartItem
		if err := json.Unmarshal([]byte(payload), &item); err != nil {
			return nil, errors.Wrap(err, "cart mirror contains a corrupt line")
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate cart mirror")
	}

	return items, nil
}

// Save replaces the stored cart with the given lines in one transaction.
func (s *sqliteStorage) Save(items []entity.CartItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin cart mirror transaction")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM cart_items`); err != nil {
		return errors.Wrap(err, "failed to clear cart mirror")
	}

	for position, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return errors.Wrap(err, "failed to marshal cart line")
		}
		if _, err := tx.Exec(
			`INSERT INTO cart_items (position, payload) VALUES (?, ?)`,
			position, string(payload),
		); err != nil {
			return errors.Wrap(err, "failed to write cart line")
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit cart mirror")
	}

	return nil
}
