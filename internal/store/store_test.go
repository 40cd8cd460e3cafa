package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goval-community/homeval/internal/config"
	"github.com/goval-community/homeval/internal/goval"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "homeval.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenDisabled(t *testing.T) {
	db, err := Open(config.DatabaseConfig{})
	require.NoError(t, err)
	assert.Nil(t, db)

	_, err = Open(config.DatabaseConfig{Driver: "postgres"})
	assert.Error(t, err)
}

func TestOpenKVWithoutBackend(t *testing.T) {
	kv, err := OpenKV(context.Background(), config.RedisConfig{}, nil)
	require.NoError(t, err)
	assert.Nil(t, kv)
}

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	_, err := db.GetFile(ctx, "a.txt")
	assert.ErrorIs(t, err, ErrNotFound)

	committed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	f := &File{
		Name:     "a.txt",
		CRC32:    0xdeadbeef,
		Contents: "hello!",
		History: []goval.OTPacket{
			{Version: 1, Op: []goval.OTOp{goval.Insert("hello")}, Crc32: 1, Committed: committed},
			{Version: 2, Op: []goval.OTOp{goval.Skip(5), goval.Insert("!")}, Crc32: 0xdeadbeef, Committed: committed, UserID: 9},
		},
	}
	require.NoError(t, db.PutFile(ctx, f))

	got, err := db.GetFile(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, f, got)

	f.Contents = "bye"
	f.History = f.History[:1]
	require.NoError(t, db.PutFile(ctx, f))
	got, err = db.GetFile(ctx, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "bye", got.Contents)
	assert.Len(t, got.History, 1)
}

func testKV(t *testing.T, kv KV) {
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, kv.Delete(ctx, "missing"), ErrNotFound)

	require.NoError(t, kv.Set(ctx, "user:2", "b"))
	require.NoError(t, kv.Set(ctx, "user:1", "a"))
	require.NoError(t, kv.Set(ctx, "other", "x"))
	require.NoError(t, kv.Set(ctx, "user:1", "a2"))

	v, err := kv.Get(ctx, "user:1")
	require.NoError(t, err)
	assert.Equal(t, "a2", v)

	keys, err := kv.List(ctx, "user:")
	require.NoError(t, err)
	assert.Equal(t, []string{"user:1", "user:2"}, keys)

	keys, err = kv.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"other", "user:1", "user:2"}, keys)

	require.NoError(t, kv.Delete(ctx, "user:1"))
	_, err = kv.Get(ctx, "user:1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSQLiteKV(t *testing.T) {
	testKV(t, openTestDB(t))
}

func TestSQLiteListTreatsPrefixLiterally(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, db.Set(ctx, "a%b", "1"))
	require.NoError(t, db.Set(ctx, "axb", "2"))

	keys, err := db.List(ctx, "a%")
	require.NoError(t, err)
	assert.Equal(t, []string{"a%b"}, keys)
}

// TestRedisKV needs a disposable redis server, e.g.
// HOMEVAL_TEST_REDIS=127.0.0.1:6379.
func TestRedisKV(t *testing.T) {
	addr := os.Getenv("HOMEVAL_TEST_REDIS")
	if addr == "" {
		t.Skip("HOMEVAL_TEST_REDIS not set")
	}
	prefix := "homeval-test:" + time.Now().Format("150405.000000") + ":"
	kv, err := OpenRedis(context.Background(), config.RedisConfig{Addr: addr, Prefix: prefix})
	require.NoError(t, err)
	defer kv.Close()

	testKV(t, kv)
}
