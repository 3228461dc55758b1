package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// SQLiteStore keeps every collection in one SQLite table of JSON documents.
// Writes go through a single writer.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
	mu     sync.Mutex
}

// NewSQLiteStore opens (or creates) the database file at path
func NewSQLiteStore(path string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // Single writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	store, err := NewSQLiteStoreFromDB(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewSQLiteStoreFromDB wraps an open connection and makes sure the schema exists
func NewSQLiteStoreFromDB(db *sql.DB, logger *zap.Logger) (*SQLiteStore, error) {
	s := &SQLiteStore{db: db, logger: logger}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		collection TEXT NOT NULL,
		id TEXT NOT NULL,
		data TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		UNIQUE(collection, id)
	);
	CREATE INDEX IF NOT EXISTS idx_documents_collection ON documents(collection, seq);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	s.logger.Debug("SQLite schema ready")
	return nil
}

// Collection returns a view of one named collection
func (s *SQLiteStore) Collection(name string) Collection {
	return &sqliteCollection{store: s, name: name}
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type sqliteCollection struct {
	store *SQLiteStore
	name  string
}

func (c *sqliteCollection) Insert(ctx context.Context, id string, doc []byte) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := c.store.db.ExecContext(ctx,
		`INSERT INTO documents (collection, id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		c.name, id, string(doc), now, now)
	if err != nil {
		return fmt.Errorf("failed to insert %s document: %w", c.name, err)
	}
	return nil
}

func (c *sqliteCollection) Get(ctx context.Context, id string) ([]byte, error) {
	var data string
	err := c.store.db.QueryRowContext(ctx,
		`SELECT data FROM documents WHERE collection = ? AND id = ?`, c.name, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s document: %w", c.name, err)
	}
	return []byte(data), nil
}

func (c *sqliteCollection) List(ctx context.Context) ([][]byte, error) {
	return c.Find(ctx, Filter{})
}

func (c *sqliteCollection) Find(ctx context.Context, filter Filter) ([][]byte, error) {
	where, args := filterClause(filter)
	query := `SELECT data FROM documents WHERE collection = ?` + where + ` ORDER BY seq`
	args = append([]interface{}{c.name}, args...)

	rows, err := c.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s documents: %w", c.name, err)
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan %s document: %w", c.name, err)
		}
		out = append(out, []byte(data))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s documents: %w", c.name, err)
	}
	return out, nil
}

func (c *sqliteCollection) Replace(ctx context.Context, id string, doc []byte) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	result, err := c.store.db.ExecContext(ctx,
		`UPDATE documents SET data = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		string(doc), now, c.name, id)
	if err != nil {
		return fmt.Errorf("failed to update %s document: %w", c.name, err)
	}
	return expectOneRow(result)
}

func (c *sqliteCollection) Delete(ctx context.Context, id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	result, err := c.store.db.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`, c.name, id)
	if err != nil {
		return fmt.Errorf("failed to delete %s document: %w", c.name, err)
	}
	return expectOneRow(result)
}

func expectOneRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// filterClause renders filter as an AND-prefixed WHERE fragment over json_extract.
func filterClause(filter Filter) (string, []interface{}) {
	var (
		b    strings.Builder
		args []interface{}
	)

	if len(filter.Match) > 0 {
		clauses := make([]string, 0, len(filter.Match))
		for _, clause := range filter.Match {
			names := make([]string, 0, len(clause))
			for name := range clause {
				names = append(names, name)
			}
			sort.Strings(names)

			conds := make([]string, 0, len(names))
			for _, name := range names {
				conds = append(conds, `COALESCE(json_extract(data, ?), '') = ?`)
				args = append(args, "$."+name, clause[name])
			}
			clauses = append(clauses, "("+strings.Join(conds, " AND ")+")")
		}
		b.WriteString(" AND (" + strings.Join(clauses, " OR ") + ")")
	}

	if r := filter.Range; r != nil {
		if r.From != nil {
			b.WriteString(` AND COALESCE(json_extract(data, ?), '') >= ?`)
			args = append(args, "$."+r.Attribute, *r.From)
		}
		if r.To != nil {
			b.WriteString(` AND COALESCE(json_extract(data, ?), '') <= ?`)
			args = append(args, "$."+r.Attribute, *r.To)
		}
	}

	return b.String(), args
}
