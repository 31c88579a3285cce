package store

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// exerciseStore runs the behaviour every backend must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "fronteditor:missing")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "fronteditor:a", `{"html":"a"}`))
	require.NoError(t, s.Set(ctx, "fronteditor:b", `{"html":"b"}`))
	require.NoError(t, s.Set(ctx, "other", "x"))

	v, err := s.Get(ctx, "fronteditor:a")
	require.NoError(t, err)
	require.Equal(t, `{"html":"a"}`, v)

	require.NoError(t, s.Set(ctx, "fronteditor:a", `{"html":"a2"}`))
	v, err = s.Get(ctx, "fronteditor:a")
	require.NoError(t, err)
	require.Equal(t, `{"html":"a2"}`, v)

	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	sort.Strings(keys)
	require.Equal(t, []string{"fronteditor:a", "fronteditor:b", "other"}, keys)

	require.NoError(t, s.Delete(ctx, "fronteditor:b"))
	require.NoError(t, s.Delete(ctx, "fronteditor:b"), "deleting a missing key is not an error")
	_, err = s.Get(ctx, "fronteditor:b")
	require.ErrorIs(t, err, ErrNotFound)

	keys, err = s.Keys(ctx)
	require.NoError(t, err)
	require.Len(t, keys, 2)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	exerciseStore(t, s)
}

func TestMemoryStoreKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	for _, k := range []string{"c", "a", "b"} {
		require.NoError(t, s.Set(ctx, k, "v"))
	}
	require.NoError(t, s.Set(ctx, "c", "v2"))
	keys, err := s.Keys(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a", "b"}, keys)
}

func TestBoltStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "store.db")
	s, err := OpenBolt(path)
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Close())

	reopened, err := OpenBolt(path)
	require.NoError(t, err)
	defer reopened.Close()
	v, err := reopened.Get(context.Background(), "fronteditor:a")
	require.NoError(t, err)
	require.Equal(t, `{"html":"a2"}`, v)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.sqlite")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()
	keys, err := reopened.Keys(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"fronteditor:a", "other"}, keys)
}

func TestSQLiteMemoryStore(t *testing.T) {
	s, err := OpenSQLiteMemory()
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("FRONTEDITOR_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("FRONTEDITOR_TEST_REDIS_ADDR not set")
	}
	db := 15
	if v := os.Getenv("FRONTEDITOR_TEST_REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		require.NoError(t, err)
		db = n
	}
	s, err := DialRedis(context.Background(), addr, "", db, 2*time.Second)
	require.NoError(t, err)
	defer s.Close()
	require.NoError(t, s.client.FlushDB(context.Background()).Err())
	exerciseStore(t, s)
}

func TestOpenSelectsBackend(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := Open(ctx, Options{BoltPath: filepath.Join(dir, "store.db")})
	require.NoError(t, err)
	require.IsType(t, &BoltStore{}, s)
	require.NoError(t, s.Close())

	s, err = Open(ctx, Options{Backend: "SQLite", SQLitePath: filepath.Join(dir, "store.sqlite")})
	require.NoError(t, err)
	require.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	s, err = Open(ctx, Options{Backend: BackendMemory})
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, s)

	_, err = Open(ctx, Options{Backend: "etcd"})
	require.Error(t, err)

	_, err = Open(ctx, Options{Backend: BackendRedis})
	require.Error(t, err)
}
