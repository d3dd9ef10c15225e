// internal/game/engine.go
//
// Core game engine for the shared Wordle session.
// Responsibilities:
//   - Start a game from Idle with a random secret word and 5 attempts.
//   - Validate guesses in a fixed order: characters, length, dictionary.
//   - Score guesses letter by letter (hit/present/miss).
//   - Track state transitions: idle → in progress → idle (won/lost).
//
// Notes:
//   - The engine does not lock. Session serializes every call.
//   - Present is decided by plain membership in the secret. A letter that
//     occurs once in the secret can mark several guess positions present;
//     this differs from canonical Wordle and is kept on purpose.
package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-bot/internal/words"
)

const (
	MaxAttempts = 5
	WordLength  = 5

	// GuessCommand is the chat token stripped from the front of a guess.
	GuessCommand = "!guess"
)

// Engine applies commands to a State using a word source.
type Engine struct {
	words words.Source
}

// NewEngine returns an Engine that draws secrets and validates guesses
// against src.
func NewEngine(src words.Source) *Engine {
	return &Engine{words: src}
}

// Start begins a new game if st is Idle.
// On word source failure st is left Idle and StartFailed is returned.
func (e *Engine) Start(st *State) Event {
	if st.Phase == InProgress {
		return Event{Kind: EventAlreadyInProgress, Attempts: st.Attempts}
	}
	secret, err := e.words.RandomWord()
	if err != nil {
		log.Warn().Err(err).Msg("could not pick a secret word")
		return Event{Kind: EventStartFailed, Err: err}
	}
	*st = State{Phase: InProgress, Secret: secret, Attempts: MaxAttempts}
	log.Debug().Str("secret", secret).Msg("game started")
	return Event{Kind: EventGameStarted, Attempts: MaxAttempts}
}

// Guess applies one guess to st. raw may still carry the leading
// GuessCommand token.
//
// Validation rules (first match wins, state unchanged):
//   - no game in progress
//   - guess contains a non-letter
//   - guess is not WordLength letters long
//   - guess is not in the word list
//
// State transitions:
//   - guess equals the secret (any case) → Idle, Won.
//   - otherwise one attempt is spent; at 0 → Idle, Lost.
func (e *Engine) Guess(st *State, raw string) Event {
	if st.Phase != InProgress {
		return Event{Kind: EventNoGameInProgress}
	}

	guess := NormalizeGuess(raw)
	switch {
	case !isLetters(guess):
		return Event{Kind: EventInvalidCharacters, Attempts: st.Attempts}
	case utf8.RuneCountInString(guess) != WordLength:
		return Event{Kind: EventInvalidLength, Attempts: st.Attempts}
	case !e.words.Contains(guess):
		return Event{Kind: EventNotInDictionary, Attempts: st.Attempts}
	case strings.EqualFold(guess, st.Secret):
		*st = State{Phase: Idle}
		return Event{Kind: EventWon}
	}

	if st.Attempts > 0 {
		st.Attempts--
	}
	if st.Attempts == 0 {
		secret := st.Secret
		*st = State{Phase: Idle}
		return Event{Kind: EventLost, Word: secret}
	}
	return Event{
		Kind:     EventIncorrectGuess,
		Attempts: st.Attempts,
		Feedback: Evaluate(st.Secret, guess),
	}
}

// NormalizeGuess strips the leading GuessCommand token and surrounding
// whitespace.
func NormalizeGuess(raw string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), GuessCommand))
}

// Evaluate scores guess against secret, one mark per guess letter.
//
// For each position:
//   - Hit if the letters match.
//   - Present if the guess letter occurs anywhere in the secret.
//   - Miss otherwise.
//
// Letters are compared case-insensitively.
func Evaluate(secret, guess string) []Mark {
	s := foldRunes(secret)
	g := foldRunes(guess)
	res := make([]Mark, len(g))
	for i, r := range g {
		switch {
		case i < len(s) && s[i] == r:
			res[i] = MarkHit
		case containsRune(s, r):
			res[i] = MarkPresent
		default:
			res[i] = MarkMiss
		}
	}
	return res
}

// AllHit returns true if all marks are MarkHit.
func AllHit(m []Mark) bool {
	for _, x := range m {
		if x != MarkHit {
			return false
		}
	}
	return true
}

func foldRunes(s string) []rune {
	rs := []rune(s)
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

func containsRune(rs []rune, r rune) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// isLetters reports whether every rune of s is a letter. The empty string
// passes and is rejected by the length check instead.
func isLetters(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
