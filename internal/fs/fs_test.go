package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func dirNames(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}

func TestLocalFS(t *testing.T) {
	tmp := t.TempDir()
	lfs := LocalFS{}

	dir := filepath.Join(tmp, "subdir")
	assert.NoError(t, lfs.MkdirAll(dir, 0o755))

	fpath := filepath.Join(dir, "test.txt")
	f, err := lfs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)

	_, err = f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.NoError(t, f.Sync())

	info, err := f.Stat()
	assert.NoError(t, err)
	assert.Equal(t, int64(5), info.Size())
	assert.NoError(t, f.Close())

	entries, err := lfs.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)

	tf, err := lfs.CreateTemp(dir, "test.*"+TempSuffix)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(tf.Name(), TempSuffix))
	assert.Equal(t, dir, filepath.Dir(tf.Name()))
	require.NoError(t, tf.Close())
	require.NoError(t, lfs.Remove(tf.Name()))

	newPath := filepath.Join(dir, "renamed.txt")
	assert.NoError(t, lfs.Rename(fpath, newPath))

	assert.NoError(t, lfs.Remove(newPath))
	_, err = lfs.Stat(newPath)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "index")

	require.NoError(t, WriteFileAtomic(Default, path, []byte("first"), 0o644))
	require.NoError(t, WriteFileAtomic(Default, path, []byte("second"), 0o644))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	if filepath.Separator == '/' {
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	}
	assert.Equal(t, []string{"index"}, dirNames(t, filepath.Dir(path)))
}

func TestWriteFileAtomic_ConcurrentWriters(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "index")

	const writers = 16
	want := make(map[string]bool, writers)
	var g errgroup.Group
	for i := range writers {
		payload := fmt.Sprintf("payload-%02d-%s", i, strings.Repeat("x", 64*1024))
		want[payload] = true
		g.Go(func() error {
			return WriteFileAtomic(Default, path, []byte(payload), 0o644)
		})
	}
	require.NoError(t, g.Wait())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, want[string(data)], "file holds a torn or mixed write")
	assert.Equal(t, []string{"index"}, dirNames(t, dir))
}

func TestWriteFileAtomic_Faults(t *testing.T) {
	boom := errors.New("disk on fire")

	tests := []struct {
		name  string
		fault Fault
	}{
		{"write", Fault{FailAfterBytes: 3, Err: boom}},
		{"sync", Fault{FailAfterBytes: -1, FailOnSync: true, Err: boom}},
		{"close", Fault{FailAfterBytes: -1, FailOnClose: true, Err: boom}},
		{"rename", Fault{FailAfterBytes: -1, FailOnRename: true, Err: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index")
			require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

			ffs := NewFaultyFS(nil)
			ffs.AddRule(TempSuffix, tt.fault)

			err := WriteFileAtomic(ffs, path, []byte("replacement"), 0o644)
			assert.ErrorIs(t, err, boom)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "previous", string(data))
			assert.Equal(t, []string{"index"}, dirNames(t, filepath.Dir(path)))
		})
	}
}

func TestFaultyFS_PartialWrite(t *testing.T) {
	ffs := NewFaultyFS(LocalFS{})
	ffs.AddRule("faulty", Fault{FailAfterBytes: 5})

	fpath := filepath.Join(t.TempDir(), "faulty.txt")
	f, err := ffs.OpenFile(fpath, os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)

	n, err := f.Write([]byte("hello"))
	assert.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = f.Write([]byte("world"))
	assert.ErrorIs(t, err, ErrInjected)
	assert.Equal(t, 0, n)
	require.NoError(t, f.Close())

	// Files that match no rule are untouched.
	other := filepath.Join(t.TempDir(), "other.txt")
	g, err := ffs.OpenFile(other, os.O_CREATE|os.O_RDWR, 0o644)
	require.NoError(t, err)
	_, err = g.Write([]byte("no limits here"))
	assert.NoError(t, err)
	require.NoError(t, g.Close())
}
