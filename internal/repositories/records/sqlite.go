package records

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/KirkDiggler/dexboard/internal/entities"
	"github.com/KirkDiggler/dexboard/internal/errors"
)

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS creatures (
		id INTEGER PRIMARY KEY,
		payload BLOB NOT NULL
	)`
	selectAllSQL = `SELECT id, payload FROM creatures ORDER BY id`
	deleteAllSQL = `DELETE FROM creatures`
	upsertSQL    = `INSERT INTO creatures(id, payload) VALUES(?, ?) ON CONFLICT(id) DO UPDATE SET payload=excluded.payload`
)

type sqliteRepository struct {
	path string
}

// NewSQLiteRepository creates a repository that keeps each creature as a JSON
// payload row. The database is opened per call; snapshots are rare.
func NewSQLiteRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &sqliteRepository{path: cfg.Path}, nil
}

// Ensure sqliteRepository implements Repository
var _ Repository = (*sqliteRepository)(nil)

func (r *sqliteRepository) open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", r.path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite")
	}
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create creatures table")
	}
	return db, nil
}

// Load reads every payload row. A row whose payload cannot be decoded is
// reported as a failure on the id field and skipped.
func (r *sqliteRepository) Load(ctx context.Context) (*LoadOutput, error) {
	if _, err := os.Stat(r.path); err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Unavailablef("database %s does not exist", r.path).
				WithMeta("path", r.path)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to stat database")
	}

	db, err := r.open(ctx)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "database is unreadable")
	}
	defer func() { _ = db.Close() }()

	rows, err := db.QueryContext(ctx, selectAllSQL)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to select creatures")
	}
	defer func() { _ = rows.Close() }()

	out := &LoadOutput{}
	for line := 1; rows.Next(); line++ {
		var (
			id      int
			payload []byte
		)
		if err := rows.Scan(&id, &payload); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to scan creature")
		}

		var c entities.Creature
		if err := json.Unmarshal(payload, &c); err != nil {
			out.Failures = append(out.Failures, CoercionFailure{Row: line, Field: entities.FieldID, Value: string(payload)})
			continue
		}
		c.ID = id
		if c.Stage < 1 {
			c.Stage = 1
		}
		out.Creatures = append(out.Creatures, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to iterate creatures")
	}
	if len(out.Creatures) == 0 {
		return nil, errors.Unavailable("database has no records")
	}

	return out, nil
}

// Save replaces the table contents inside one transaction
func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (_ *SaveOutput, retErr error) {
	if len(input.Creatures) == 0 {
		return nil, errors.InvalidArgument("snapshot has no creatures")
	}

	if err := os.MkdirAll(filepath.Dir(r.path), 0o750); err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	db, err := r.open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, deleteAllSQL); err != nil {
		return nil, errors.Wrap(err, "failed to clear creatures")
	}
	for _, c := range input.Creatures {
		data, err := json.Marshal(c)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encode creature %d", c.ID)
		}
		if _, err := tx.ExecContext(ctx, upsertSQL, c.ID, data); err != nil {
			return nil, errors.Wrapf(err, "failed to upsert creature %d", c.ID)
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit snapshot")
	}

	return &SaveOutput{Written: len(input.Creatures)}, nil
}
