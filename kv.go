package darkframe

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"
)

// Storage keys for the three persisted JSON documents. The names match the
// localStorage keys used by the original site so an exported dump can be
// imported as-is.
const (
	keyPictures = "nafim_pics"
	keyPosts    = "nafim_blogs"
	keyAdminPW  = "nafim_admin_pw"
)

// ErrKeyNotFound is returned by KV.Get when the key has never been written.
var ErrKeyNotFound = errors.New("darkframe: key not found")

// KV is the durable key-value port behind the content store. Each key holds
// one JSON document. The store reads keys once at startup and writes the full
// document back after every mutation.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// SQLiteKV persists documents in a single-table SQLite database. This is the
// default backend.
type SQLiteKV struct {
	db *sql.DB
}

// NewSQLiteKV opens (or creates) the database at path, ensures the data
// directory exists, and creates the kv table.
func NewSQLiteKV(path string) (*SQLiteKV, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL so the admin's write never blocks page reads; busy_timeout so a
	// concurrent writer waits instead of failing with SQLITE_BUSY.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &SQLiteKV{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteKV) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);
`)
	return err
}

// Get returns the document stored under key.
func (s *SQLiteKV) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

// Set writes the document under key, replacing any previous value.
func (s *SQLiteKV) Set(key string, value []byte) error {
	_, err := s.db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// Close closes the underlying database connection.
func (s *SQLiteKV) Close() error {
	return s.db.Close()
}

// RedisKV persists documents as plain Redis strings. Selected by setting
// RedisAddr in SiteConfig.
type RedisKV struct {
	client *redis.Client
}

// NewRedisKV connects to the Redis server at addr.
func NewRedisKV(addr string) *RedisKV {
	return &RedisKV{client: redis.NewClient(&redis.Options{Addr: addr})}
}

// Get returns the document stored under key.
func (r *RedisKV) Get(key string) ([]byte, error) {
	data, err := r.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set writes the document under key with no expiry.
func (r *RedisKV) Set(key string, value []byte) error {
	return r.client.Set(context.Background(), key, value, 0).Err()
}

// Close closes the client connection pool.
func (r *RedisKV) Close() error {
	return r.client.Close()
}
