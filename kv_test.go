package darkframe

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "kv.db")
	kv, err := NewSQLiteKV(path)
	require.NoError(t, err, "NewSQLiteKV should create missing directories")
	defer kv.Close()

	_, err = kv.Get("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set("k", []byte(`{"a":1}`)))
	got, err := kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	require.NoError(t, kv.Set("k", []byte(`{"a":2}`)))
	got, err = kv.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), got, "Set should overwrite")
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	kv, err := NewSQLiteKV(path)
	require.NoError(t, err)
	require.NoError(t, kv.Set("doc", []byte("payload")))
	require.NoError(t, kv.Close())

	reopened, err := NewSQLiteKV(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, err := reopened.Get("doc")
	require.NoError(t, err)
	assert.Equal(t, []byte("payload"), got)
}
