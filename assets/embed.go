package assets

import "embed"

// WordList is the name of the bundled word list inside FS.
const WordList = "wordle.json"

// FS holds the default word list used when WORDS_FILE is not set.
//
//go:embed wordle.json
var FS embed.FS
