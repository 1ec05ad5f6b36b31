package badger

import (
	"testing"

	badgerdb "github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sourcehire/candidex/storage"
)

func TestOpenBackend_InMemory(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestOpenBackend_FileSystem(t *testing.T) {
	tmpDir := t.TempDir()
	backend, err := OpenBackend(tmpDir, false)
	require.NoError(t, err)
	require.NotNil(t, backend)
	defer backend.Close()

	assert.False(t, backend.IsClosed())
}

func TestBackendClose(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	require.NotNil(t, backend)

	assert.False(t, backend.IsClosed())

	err = backend.Close()
	require.NoError(t, err)

	assert.True(t, backend.IsClosed())
}

func TestWithTx(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	t.Run("successful transaction", func(t *testing.T) {
		err := backend.WithTx(func(tx *badgerdb.Txn) error {
			if err := tx.Set([]byte("test:key"), []byte("value")); err != nil {
				return err
			}
			return tx.Commit()
		}, true)
		require.NoError(t, err)

		err = backend.WithTx(func(tx *badgerdb.Txn) error {
			item, err := tx.Get([]byte("test:key"))
			if err != nil {
				return err
			}
			return item.Value(func(val []byte) error {
				assert.Equal(t, []byte("value"), val)
				return nil
			})
		}, false)
		require.NoError(t, err)
	})

	t.Run("failed transaction discarded", func(t *testing.T) {
		testErr := assert.AnError
		err := backend.WithTx(func(tx *badgerdb.Txn) error {
			if err := tx.Set([]byte("test:discarded"), []byte("value")); err != nil {
				return err
			}
			return testErr
		}, true)
		assert.Equal(t, testErr, err)

		err = backend.WithTx(func(tx *badgerdb.Txn) error {
			_, err := tx.Get([]byte("test:discarded"))
			return err
		}, false)
		assert.ErrorIs(t, err, badgerdb.ErrKeyNotFound)
	})
}

func TestGetSequence(t *testing.T) {
	backend, err := OpenBackend("", true)
	require.NoError(t, err)
	defer backend.Close()

	seq, err := backend.GetSequence("test_sequence")
	require.NoError(t, err)
	require.NotNil(t, seq)
	defer seq.Release()

	id1, err := seq.Next()
	require.NoError(t, err)

	id2, err := seq.Next()
	require.NoError(t, err)

	assert.Greater(t, id2, id1)
}

func TestSchemaVersion(t *testing.T) {
	t.Run("reopen accepts current version", func(t *testing.T) {
		tmpDir := t.TempDir()

		backend, err := OpenBackend(tmpDir, false)
		require.NoError(t, err)
		require.NoError(t, backend.Close())

		backend, err = OpenBackend(tmpDir, false)
		require.NoError(t, err)
		require.NoError(t, backend.Close())
	})

	t.Run("foreign version rejected", func(t *testing.T) {
		tmpDir := t.TempDir()

		backend, err := OpenBackend(tmpDir, false)
		require.NoError(t, err)

		err = backend.WithTx(func(tx *badgerdb.Txn) error {
			if err := tx.Set(makeSchemaVersionKey(), []byte{schemaVersion + 1}); err != nil {
				return err
			}
			return tx.Commit()
		}, true)
		require.NoError(t, err)
		require.NoError(t, backend.Close())

		_, err = OpenBackend(tmpDir, false)
		assert.ErrorIs(t, err, storage.ErrSchemaVersion)
	})
}
