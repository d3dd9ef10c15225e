// internal/bot/dispatch.go
//
// Routes chat commands to the shared game session.
//   - "!wordle"        starts a game (exact match)
//   - "!guess <word>"  submits a guess (prefix match)
// Everything else is ignored so the bot can sit in busy channels.

package bot

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-bot/internal/game"
	"github.com/robalobadob/wordle/apps/go-bot/internal/reply"
)

// StartCommand starts a new game.
const StartCommand = "!wordle"

// Game is the part of game.Session the dispatcher drives.
type Game interface {
	Start() game.Event
	Guess(text string) game.Event
}

// Dispatcher turns message text into reply text.
type Dispatcher struct {
	game Game
}

// NewDispatcher returns a Dispatcher bound to g.
func NewDispatcher(g Game) *Dispatcher {
	return &Dispatcher{game: g}
}

// Handle runs the command in content, if any. ok is false when content is
// not a command and nothing should be sent back.
func (d *Dispatcher) Handle(content string) (msg string, ok bool) {
	var ev game.Event
	switch {
	case content == StartCommand:
		ev = d.game.Start()
	case strings.HasPrefix(content, game.GuessCommand):
		ev = d.game.Guess(content)
	default:
		return "", false
	}

	lvl := zerolog.InfoLevel
	if ev.Err != nil {
		lvl = zerolog.WarnLevel
	}
	log.WithLevel(lvl).Err(ev.Err).
		Str("event", string(ev.Kind)).
		Int("attempts", ev.Attempts).
		Msg("command handled")
	return reply.Render(ev), true
}
