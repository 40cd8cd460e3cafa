// Package store persists OT file histories and the ReplDB key-value table.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goval-community/homeval/internal/config"
	"github.com/goval-community/homeval/internal/goval"
)

// ErrNotFound is returned when a key or file has no stored value.
var ErrNotFound = errors.New("not found")

// File is the cached state of an OT-linked file.
type File struct {
	Name     string
	CRC32    uint32
	Contents string
	History  []goval.OTPacket
}

// FileCache stores OT file state between links.
type FileCache interface {
	GetFile(ctx context.Context, name string) (*File, error)
	PutFile(ctx context.Context, f *File) error
}

// KV is the key-value store behind ReplDB.
type KV interface {
	Set(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// List returns the keys starting with prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Open opens the configured database. It returns nil when no database is
// configured.
func Open(cfg config.DatabaseConfig) (*SQLite, error) {
	switch cfg.Driver {
	case "":
		return nil, nil
	case "sqlite", "sqlite3":
		return OpenSQLite(cfg.Path)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// OpenKV picks the ReplDB backend: redis when configured, otherwise the
// sqlite database when one is open. It returns nil when neither is.
func OpenKV(ctx context.Context, cfg config.RedisConfig, db *SQLite) (KV, error) {
	if cfg.Addr != "" {
		return OpenRedis(ctx, cfg)
	}
	if db != nil {
		return db, nil
	}
	return nil, nil
}

func encodeHistory(history []goval.OTPacket) (string, error) {
	raw := make([][]byte, len(history))
	for i := range history {
		b, err := goval.MarshalPacket(&history[i])
		if err != nil {
			return "", fmt.Errorf("history packet %d: %w", i, err)
		}
		raw[i] = b
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("failed to encode history: %w", err)
	}
	return string(data), nil
}

func decodeHistory(data string) ([]goval.OTPacket, error) {
	if data == "" {
		return nil, nil
	}
	var raw [][]byte
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode history: %w", err)
	}
	history := make([]goval.OTPacket, 0, len(raw))
	for i, b := range raw {
		p, err := goval.UnmarshalPacket(b)
		if err != nil {
			return nil, fmt.Errorf("history packet %d: %w", i, err)
		}
		history = append(history, *p)
	}
	return history, nil
}
