// internal/reply/reply.go
//
// Turns game events into the chat messages the bot sends.
// Feedback squares use Discord emoji shortcodes, which other chat clients
// show as plain text.

package reply

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-bot/internal/game"
)

const (
	squareHit     = ":green_square:"
	squarePresent = ":yellow_square:"
	squareMiss    = ":red_square:"
)

// Render returns the message for ev.
func Render(ev game.Event) string {
	switch ev.Kind {
	case game.EventGameStarted:
		return fmt.Sprintf("Wordle game started! You have %d attempts. Make a guess using `!guess <word>`.", ev.Attempts)
	case game.EventStartFailed:
		return "Could not start a Wordle game right now. Try `!wordle` again in a moment."
	case game.EventAlreadyInProgress:
		return "A Wordle game is already in progress. Make a guess using `!guess <word>`."
	case game.EventNoGameInProgress:
		return "No Wordle game is currently in progress. Start a game with `!wordle`."
	case game.EventInvalidCharacters:
		return ":skull: Invalid guess. Please provide a word containing only letters. :skull:"
	case game.EventInvalidLength:
		return fmt.Sprintf(":angry: Invalid guess length. Please provide a %d-letter word. :angry:", game.WordLength)
	case game.EventNotInDictionary:
		return ":man_facepalming: Invalid guess. The word is not in the wordle dictionary. :man_facepalming:"
	case game.EventWon:
		return "Congratulations! You guessed the word correctly! \n" +
			strings.TrimSpace(strings.Repeat(squareHit+" ", game.WordLength))
	case game.EventLost:
		return "Out of attempts! The correct word was: " + ev.Word
	case game.EventIncorrectGuess:
		return fmt.Sprintf("Incorrect guess. Attempts remaining: %d\n%s", ev.Attempts, Squares(ev.Feedback))
	}
	return ""
}

// Squares renders feedback as one emoji per letter, space separated.
func Squares(marks []game.Mark) string {
	var b strings.Builder
	for _, m := range marks {
		switch m {
		case game.MarkHit:
			b.WriteString(squareHit)
		case game.MarkPresent:
			b.WriteString(squarePresent)
		default:
			b.WriteString(squareMiss)
		}
		b.WriteByte(' ')
	}
	return b.String()
}
