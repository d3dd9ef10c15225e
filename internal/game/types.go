// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - State: the single game slot (idle or in progress).
//   - Event: the one outcome every Start/Guess call reports.

package game

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Phase distinguishes the two shapes State can take.
type Phase int

const (
	Idle Phase = iota
	InProgress
)

func (p Phase) String() string {
	if p == InProgress {
		return "in_progress"
	}
	return "idle"
}

// State holds the game slot. Secret and Attempts are meaningful only while
// Phase is InProgress; Attempts stays within [0, MaxAttempts].
type State struct {
	Phase    Phase
	Secret   string // as loaded from the word list, letters only
	Attempts int    // attempts remaining
}

// EventKind names the outcome of a Start or Guess call.
type EventKind string

const (
	EventGameStarted       EventKind = "game_started"
	EventStartFailed       EventKind = "start_failed"
	EventAlreadyInProgress EventKind = "already_in_progress"

	EventNoGameInProgress  EventKind = "no_game_in_progress"
	EventInvalidCharacters EventKind = "invalid_characters"
	EventInvalidLength     EventKind = "invalid_length"
	EventNotInDictionary   EventKind = "not_in_dictionary"
	EventWon               EventKind = "won"
	EventLost              EventKind = "lost"
	EventIncorrectGuess    EventKind = "incorrect_guess"
)

// Event is what the engine reports back to the transport.
type Event struct {
	Kind     EventKind
	Attempts int    // remaining attempts (GameStarted, IncorrectGuess)
	Feedback []Mark // IncorrectGuess only
	Word     string // the secret, revealed on Lost
	Err      error  // StartFailed only
}
