package game

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/robalobadob/wordle/apps/go-bot/internal/words"
)

// fakeWords is a words.Source with a fixed secret and dictionary.
type fakeWords struct {
	secret  string
	err     error
	dict    []string
	picks   int
	lookups int
}

func (f *fakeWords) RandomWord() (string, error) {
	f.picks++
	return f.secret, f.err
}

func (f *fakeWords) Contains(w string) bool {
	f.lookups++
	for _, d := range f.dict {
		if strings.EqualFold(d, strings.TrimSpace(w)) {
			return true
		}
	}
	return false
}

func newFake() *fakeWords {
	return &fakeWords{
		secret: "CRANE",
		dict:   []string{"crane", "trace", "slate", "hello", "world", "pious", "llama", "eerie"},
	}
}

func started(t *testing.T, src *fakeWords) (*Engine, *State) {
	t.Helper()
	e := NewEngine(src)
	st := &State{}
	if ev := e.Start(st); ev.Kind != EventGameStarted {
		t.Fatalf("Start = %v, want game_started", ev.Kind)
	}
	return e, st
}

func TestEvaluate(t *testing.T) {
	H, P, M := MarkHit, MarkPresent, MarkMiss
	cases := []struct {
		secret, guess string
		want          []Mark
	}{
		{"CRANE", "TRACE", []Mark{M, H, H, P, H}},
		{"CRANE", "CRANE", []Mark{H, H, H, H, H}},
		{"CRANE", "PIOUS", []Mark{M, M, M, M, M}},
		// One A in the secret still marks every misplaced A present.
		{"CRANE", "LLAMA", []Mark{M, M, H, M, P}},
		{"ABBEY", "BBBBB", []Mark{P, H, H, P, P}},
		{"crane", "TRACE", []Mark{M, H, H, P, H}},
	}
	for _, tc := range cases {
		got := Evaluate(tc.secret, tc.guess)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Evaluate(%q, %q) = %v, want %v", tc.secret, tc.guess, got, tc.want)
		}
	}
}

func TestEvaluateSelfIsAllHit(t *testing.T) {
	for _, w := range []string{"crane", "LLAMA", "eerie", "Zesty"} {
		if m := Evaluate(w, w); !AllHit(m) || len(m) != 5 {
			t.Errorf("Evaluate(%q, %q) = %v", w, w, m)
		}
	}
}

func TestEvaluateDisjointIsAllMiss(t *testing.T) {
	pairs := [][2]string{{"crane", "pious"}, {"light", "works"}, {"abcde", "vwxyz"}}
	for _, p := range pairs {
		for _, m := range Evaluate(p[0], p[1]) {
			if m != MarkMiss {
				t.Errorf("Evaluate(%q, %q) has %v", p[0], p[1], m)
			}
		}
	}
}

func TestStart(t *testing.T) {
	_, st := started(t, newFake())
	if st.Phase != InProgress || st.Secret != "CRANE" || st.Attempts != MaxAttempts {
		t.Fatalf("state after start = %+v", *st)
	}
}

func TestStartWhileInProgressIsRejected(t *testing.T) {
	src := newFake()
	e, st := started(t, src)
	if ev := e.Guess(st, "!guess trace"); ev.Kind != EventIncorrectGuess {
		t.Fatalf("Guess = %v", ev.Kind)
	}
	src.secret = "SLATE"

	ev := e.Start(st)
	if ev.Kind != EventAlreadyInProgress {
		t.Fatalf("second Start = %v, want already_in_progress", ev.Kind)
	}
	if src.picks != 1 {
		t.Fatalf("secret drawn %d times, want 1", src.picks)
	}
	if st.Secret != "CRANE" || st.Attempts != MaxAttempts-1 {
		t.Fatalf("state changed: %+v", *st)
	}
}

func TestStartFailureLeavesIdle(t *testing.T) {
	src := newFake()
	src.err = words.ErrEmptyList
	e := NewEngine(src)
	st := &State{}

	ev := e.Start(st)
	if ev.Kind != EventStartFailed || !errors.Is(ev.Err, words.ErrEmptyList) {
		t.Fatalf("Start = %+v", ev)
	}
	if st.Phase != Idle {
		t.Fatalf("phase = %v, want idle", st.Phase)
	}

	src.err = nil
	if ev := e.Start(st); ev.Kind != EventGameStarted {
		t.Fatalf("retry Start = %v", ev.Kind)
	}
}

func TestGuessWhileIdle(t *testing.T) {
	src := newFake()
	e := NewEngine(src)
	st := &State{}
	ev := e.Guess(st, "!guess hello")
	if ev.Kind != EventNoGameInProgress {
		t.Fatalf("Guess = %v", ev.Kind)
	}
	if st.Phase != Idle || src.lookups != 0 {
		t.Fatalf("state %+v, lookups %d", *st, src.lookups)
	}
}

func TestGuessValidationOrder(t *testing.T) {
	cases := []struct {
		in   string
		want EventKind
	}{
		{"!guess cr4ne", EventInvalidCharacters},
		{"!guess cr ne", EventInvalidCharacters},
		{"!guess abc1", EventInvalidCharacters},
		{"!guess cran", EventInvalidLength},
		{"!guess cranes", EventInvalidLength},
		{"!guess", EventInvalidLength},
		{"!guess zzzzz", EventNotInDictionary},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			e, st := started(t, newFake())
			ev := e.Guess(st, tc.in)
			if ev.Kind != tc.want {
				t.Fatalf("Guess(%q) = %v, want %v", tc.in, ev.Kind, tc.want)
			}
			if st.Phase != InProgress || st.Attempts != MaxAttempts {
				t.Fatalf("state changed: %+v", *st)
			}
		})
	}
}

func TestGuessWinIsCaseInsensitive(t *testing.T) {
	e, st := started(t, newFake())
	if ev := e.Guess(st, "!guess   crane  "); ev.Kind != EventWon {
		t.Fatalf("Guess = %v, want won", ev.Kind)
	}
	if *st != (State{}) {
		t.Fatalf("state after win = %+v", *st)
	}
}

func TestGuessIncorrect(t *testing.T) {
	e, st := started(t, newFake())
	ev := e.Guess(st, "!guess TRACE")
	if ev.Kind != EventIncorrectGuess || ev.Attempts != 4 {
		t.Fatalf("Guess = %+v", ev)
	}
	want := []Mark{MarkMiss, MarkHit, MarkHit, MarkPresent, MarkHit}
	if !reflect.DeepEqual(ev.Feedback, want) {
		t.Fatalf("feedback = %v, want %v", ev.Feedback, want)
	}
}

func TestGuessLastAttemptLoses(t *testing.T) {
	src := newFake()
	e := NewEngine(src)
	st := &State{Phase: InProgress, Secret: "CRANE", Attempts: 1}
	ev := e.Guess(st, "!guess slate")
	if ev.Kind != EventLost || ev.Word != "CRANE" {
		t.Fatalf("Guess = %+v", ev)
	}
	if st.Phase != Idle || st.Attempts != 0 {
		t.Fatalf("state after loss = %+v", *st)
	}
}

func TestAttemptsStrictlyDecreaseAndNeverGoNegative(t *testing.T) {
	e, st := started(t, newFake())
	prev := st.Attempts
	for i := 0; i < MaxAttempts-1; i++ {
		ev := e.Guess(st, "!guess slate")
		if ev.Kind != EventIncorrectGuess {
			t.Fatalf("guess %d = %v", i, ev.Kind)
		}
		if st.Attempts >= prev || st.Attempts < 0 {
			t.Fatalf("attempts went %d → %d", prev, st.Attempts)
		}
		prev = st.Attempts
	}
	if ev := e.Guess(st, "!guess slate"); ev.Kind != EventLost {
		t.Fatalf("final guess = %v, want lost", ev.Kind)
	}
	if ev := e.Guess(st, "!guess slate"); ev.Kind != EventNoGameInProgress {
		t.Fatalf("guess after loss = %v", ev.Kind)
	}
	if st.Attempts != 0 {
		t.Fatalf("attempts = %d", st.Attempts)
	}
}

func TestNormalizeGuess(t *testing.T) {
	cases := map[string]string{
		"!guess crane":    "crane",
		"!guess   crane ": "crane",
		"!guesscrane":     "crane",
		"crane":           "crane",
		"!guess":          "",
	}
	for in, want := range cases {
		if got := NormalizeGuess(in); got != want {
			t.Errorf("NormalizeGuess(%q) = %q, want %q", in, got, want)
		}
	}
}
