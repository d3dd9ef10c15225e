// internal/words/words.go
//
// Word source for the game engine.
//
// Responsibilities:
//   - Read a JSON array of strings from a file system (disk or embedded).
//   - Normalize entries by dropping every non-letter rune (case is kept).
//   - Supply a uniformly random secret word (RandomWord) and a
//     case-insensitive membership test (Contains).
//
// The list is re-read and re-parsed on every call, so edits to the file are
// picked up without a restart. See CachedSource for a variant that only
// re-parses when the file changes.
//
// Errors:
//   ErrRead      the file cannot be opened or read
//   ErrParse     the document is not a JSON array
//   ErrEmptyList every entry normalized to the empty string
//
// Non-string array elements are skipped, not rejected.

package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
)

var (
	ErrRead      = errors.New("words: read word list")
	ErrParse     = errors.New("words: parse word list")
	ErrEmptyList = errors.New("words: no words found")
)

// Source is what the game engine needs from a word list.
type Source interface {
	// RandomWord picks a secret word uniformly at random.
	RandomWord() (string, error)

	// Contains reports whether candidate is in the list. Read or parse
	// failures report false.
	Contains(candidate string) bool
}

// shuffleFunc matches rand.Shuffle; tests swap it for a deterministic one.
type shuffleFunc func(n int, swap func(i, j int))

// FileSource reads the word list from name inside fsys on every call.
type FileSource struct {
	fsys    fs.FS
	name    string
	shuffle shuffleFunc
}

// NewFileSource returns a Source backed by the JSON document name in fsys.
// Use os.DirFS for files on disk and assets.FS for the embedded default.
func NewFileSource(fsys fs.FS, name string) *FileSource {
	return &FileSource{fsys: fsys, name: name, shuffle: rand.Shuffle}
}

// Load reads and parses the word list.
func (s *FileSource) Load() ([]string, error) {
	raw, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Parse(raw)
}

// RandomWord shuffles the whole list and pops the last element.
func (s *FileSource) RandomWord() (string, error) {
	list, err := s.Load()
	if err != nil {
		return "", err
	}
	return pick(list, s.shuffle)
}

// Contains re-reads the list and looks candidate up case-insensitively.
func (s *FileSource) Contains(candidate string) bool {
	list, err := s.Load()
	if err != nil {
		log.Debug().Err(err).Str("file", s.name).Msg("word lookup failed; treating as not found")
		return false
	}
	return containsFold(list, candidate)
}

// Parse decodes a JSON array and normalizes every string element.
func Parse(raw []byte) ([]string, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		var s string
		if err := json.Unmarshal(e, &s); err != nil {
			continue
		}
		out = append(out, Normalize(s))
	}
	return out, nil
}

// Normalize drops every rune that is not a letter.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, s)
}

// pick shuffles list in place and returns its last element.
// Empty strings stay candidates unless every entry is empty.
func pick(list []string, shuffle shuffleFunc) (string, error) {
	if allEmpty(list) {
		return "", ErrEmptyList
	}
	shuffle(len(list), func(i, j int) { list[i], list[j] = list[j], list[i] })
	return list[len(list)-1], nil
}

func allEmpty(list []string) bool {
	for _, w := range list {
		if w != "" {
			return false
		}
	}
	return true
}

func containsFold(list []string, candidate string) bool {
	candidate = strings.TrimSpace(candidate)
	for _, w := range list {
		if strings.EqualFold(w, candidate) {
			return true
		}
	}
	return false
}
