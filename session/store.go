// Package session persists per-session agent state in a local SQLite
// database: chat task histories and the TaskFlow assistant's task/calendar
// state. Data is stored as JSON in named collections keyed by session.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS collections (
	collection TEXT NOT NULL,
	key        TEXT NOT NULL,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL,
	PRIMARY KEY (collection, key)
);
`

// Store is a SQLite-backed JSON document store. It is safe for concurrent use
// by independent pipeline runs; database/sql serializes access per connection.
type Store struct {
	db *sql.DB
}

// Open creates (or opens) the session database at path and ensures the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("session: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("session: ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Collection scopes reads and writes to one named collection.
func (s *Store) Collection(name string) *Collection {
	return &Collection{store: s, name: name}
}

type Collection struct {
	store *Store
	name  string
}

// GetOne loads the value for key into v. The second return is false when the
// key does not exist.
func (c *Collection) GetOne(key string, v any) (bool, error) {
	row := c.store.db.QueryRow(
		`SELECT value FROM collections WHERE collection = ? AND key = ?`, c.name, key)

	var raw string
	err := row.Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("session: get %s/%s: %w", c.name, key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("session: decode %s/%s: %w", c.name, key, err)
	}
	return true, nil
}

// UpsertOne stores v as JSON under key, replacing any previous value.
func (c *Collection) UpsertOne(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("session: encode %s/%s: %w", c.name, key, err)
	}
	_, err = c.store.db.Exec(
		`INSERT INTO collections (collection, key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (collection, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		c.name, key, string(raw), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("session: upsert %s/%s: %w", c.name, key, err)
	}
	return nil
}

// Delete removes the value under key; deleting a missing key is not an error.
func (c *Collection) Delete(key string) error {
	_, err := c.store.db.Exec(
		`DELETE FROM collections WHERE collection = ? AND key = ?`, c.name, key)
	if err != nil {
		return fmt.Errorf("session: delete %s/%s: %w", c.name, key, err)
	}
	return nil
}

type contextKey struct{}

// WithKey tags ctx with the session key so tool handlers can resolve the
// caller's state without ambient globals.
func WithKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, contextKey{}, key)
}

// Key returns the session key from ctx, or "default" when none was set.
func Key(ctx context.Context) string {
	if key, ok := ctx.Value(contextKey{}).(string); ok && key != "" {
		return key
	}
	return "default"
}
