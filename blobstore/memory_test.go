package blobstore

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Open(ctx, "idx")
	require.ErrorIs(t, err, ErrNotFound)

	data := []byte("0123456789")
	require.NoError(t, store.Put(ctx, "idx", data))

	// Put copies its input.
	data[0] = 'X'

	blob, err := store.Open(ctx, "idx")
	require.NoError(t, err)
	defer blob.Close()
	assert.Equal(t, int64(10), blob.Size())

	buf := make([]byte, 4)
	n, err := blob.ReadAt(ctx, buf, 0)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(buf[:n]))

	n, err = blob.ReadAt(ctx, buf, 8)
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "89", string(buf[:n]))

	all, err := ReadAll(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(all))

	require.NoError(t, store.Put(ctx, "other", nil))
	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"idx", "other"}, names)

	require.NoError(t, store.Delete(ctx, "idx"))
	names, err = store.List(ctx, "i")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var g errgroup.Group
	for i := range 16 {
		g.Go(func() error {
			name := fmt.Sprintf("idx-%02d", i)
			if err := store.Put(ctx, name, []byte(name)); err != nil {
				return err
			}
			data, err := Get(ctx, store, name)
			if err != nil {
				return err
			}
			if string(data) != name {
				return fmt.Errorf("got %q, want %q", data, name)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	names, err := store.List(ctx, "idx-")
	require.NoError(t, err)
	assert.Len(t, names, 16)
}
