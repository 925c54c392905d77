package stores

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

const defaultCatalogRowID = "default"

// PostgresCatalogStore keeps the shared dev catalog as one JSONB row.
// Writes take a row lock so the last-writer-wins check and the upsert are
// atomic.
type PostgresCatalogStore struct {
	pool  *pgxpool.Pool
	rowID string
	now   func() time.Time
}

func NewPostgresCatalogStore(pool *pgxpool.Pool) *PostgresCatalogStore {
	return &PostgresCatalogStore{pool: pool, rowID: defaultCatalogRowID, now: time.Now}
}

// EnsureSchema creates the dev_catalog table if it does not exist.
func (s *PostgresCatalogStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS dev_catalog (
			id         TEXT PRIMARY KEY,
			products   JSONB NOT NULL DEFAULT '[]',
			version    BIGINT NOT NULL DEFAULT 0,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return errors.Wrap(err, "create dev_catalog table")
}

func (s *PostgresCatalogStore) Load(ctx context.Context) (*models.CatalogSnapshot, error) {
	snap, err := scanSnapshot(s.pool.QueryRow(ctx, `
		SELECT products, version, updated_at
		FROM dev_catalog
		WHERE id = $1
	`, s.rowID))
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *PostgresCatalogStore) Save(ctx context.Context, snapshot models.CatalogSnapshot) (*models.CatalogSnapshot, error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "begin dev_catalog tx")
	}
	defer tx.Rollback(ctx)

	current, err := scanSnapshot(tx.QueryRow(ctx, `
		SELECT products, version, updated_at
		FROM dev_catalog
		WHERE id = $1
		FOR UPDATE
	`, s.rowID))
	if err != nil && !errors.Is(err, ErrSnapshotNotFound) {
		return nil, err
	}

	next, err := nextSnapshot(current, snapshot, s.now())
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(next.Products)
	if err != nil {
		return nil, errors.Wrap(err, "encode dev catalog")
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO dev_catalog (id, products, version, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET products = EXCLUDED.products,
		    version = EXCLUDED.version,
		    updated_at = EXCLUDED.updated_at
	`, s.rowID, raw, next.Version, next.UpdatedAt); err != nil {
		return nil, errors.Wrap(err, "upsert dev catalog")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(err, "commit dev catalog")
	}
	return &next, nil
}

func scanSnapshot(row pgx.Row) (*models.CatalogSnapshot, error) {
	var (
		raw  []byte
		snap models.CatalogSnapshot
	)
	if err := row.Scan(&raw, &snap.Version, &snap.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, errors.Wrap(err, "query dev catalog")
	}
	if err := json.Unmarshal(raw, &snap.Products); err != nil {
		return nil, errors.Wrap(err, "decode dev catalog")
	}
	snap.UpdatedAt = snap.UpdatedAt.UTC()
	return &snap, nil
}
