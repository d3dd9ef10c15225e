package words

import (
	"fmt"
	"io/fs"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// CachedSource keeps the parsed list in memory and re-parses it only when
// the file's modification time or size changes. The file is still stat'ed
// on every call, so hot edits are seen by the next RandomWord or Contains.
type CachedSource struct {
	file    *FileSource
	shuffle shuffleFunc

	mu      sync.Mutex // guards the fields below
	list    []string
	modTime time.Time
	size    int64
	loaded  bool
}

// NewCachedSource wraps NewFileSource(fsys, name) with a change-aware cache.
func NewCachedSource(fsys fs.FS, name string) *CachedSource {
	return &CachedSource{file: NewFileSource(fsys, name), shuffle: rand.Shuffle}
}

// Load returns a copy of the cached list, refreshing it first if stale.
func (c *CachedSource) Load() ([]string, error) {
	info, err := fs.Stat(c.file.fsys, c.file.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded && info.ModTime().Equal(c.modTime) && info.Size() == c.size {
		return slices.Clone(c.list), nil
	}

	list, err := c.file.Load()
	if err != nil {
		return nil, err
	}
	c.list, c.modTime, c.size, c.loaded = list, info.ModTime(), info.Size(), true
	log.Debug().Str("file", c.file.name).Int("words", len(list)).Msg("word list reloaded")
	return slices.Clone(list), nil
}

// RandomWord picks from the cached list the same way FileSource does.
func (c *CachedSource) RandomWord() (string, error) {
	list, err := c.Load()
	if err != nil {
		return "", err
	}
	return pick(list, c.shuffle)
}

// Contains looks candidate up in the cached list; failures report false.
func (c *CachedSource) Contains(candidate string) bool {
	list, err := c.Load()
	if err != nil {
		log.Debug().Err(err).Str("file", c.file.name).Msg("word lookup failed; treating as not found")
		return false
	}
	return containsFold(list, candidate)
}
