package suggest

import (
	"errors"
	"fmt"

	"github.com/hupe1980/suggest/blobstore"
	"github.com/hupe1980/suggest/trie"
)

var (
	// ErrNotFound is returned by Open when no index exists at the location.
	ErrNotFound = errors.New("index not found")

	// ErrCorrupt is returned by Open and Read when the stored index cannot
	// be decoded.
	ErrCorrupt = errors.New("index is corrupt")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCorrupt) {
		return err
	}
	if errors.Is(err, blobstore.ErrNotFound) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	if errors.Is(err, trie.ErrCorrupt) {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return err
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, blobstore.ErrNotFound)
}
