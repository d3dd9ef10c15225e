// internal/discord/discord.go
//
// Discord transport for the bot.
// Responsibilities:
//   - Connect to the gateway with the guild/DM message and message-content intents.
//   - Forward every message (except the bot's own) to the command handler.
//   - Post the handler's reply to the channel the command came from.
//
// discordgo runs each event handler in its own goroutine, so commands reach
// the handler concurrently; the game session serializes them.

package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Intents the bot needs to read commands in guild channels and DMs.
const Intents = discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsMessageContent

// Handler answers a chat message. ok is false when nothing should be sent.
type Handler interface {
	Handle(content string) (msg string, ok bool)
}

// Bot owns one discordgo session.
type Bot struct {
	s *discordgo.Session
	h Handler
}

// New prepares a session for token without connecting.
func New(token string, h Handler) (*Bot, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	s.Identify.Intents = Intents

	b := &Bot{s: s, h: h}
	s.AddHandler(b.onReady)
	s.AddHandler(b.onMessage)
	return b, nil
}

// Run connects and blocks until ctx is cancelled, then disconnects.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.s.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	<-ctx.Done()
	log.Info().Msg("closing discord session")
	return b.s.Close()
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("discord connected")
}

func (b *Bot) onMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if !fromOther(selfID(s), m) {
		return
	}
	msg, ok := b.h.Handle(m.Content)
	if !ok {
		return
	}
	if _, err := s.ChannelMessageSend(m.ChannelID, msg); err != nil {
		log.Warn().Err(err).Str("channel", m.ChannelID).Msg("send reply")
	}
}

func selfID(s *discordgo.Session) string {
	if s == nil || s.State == nil || s.State.User == nil {
		return ""
	}
	return s.State.User.ID
}

// fromOther reports whether m was written by someone other than the bot.
func fromOther(self string, m *discordgo.MessageCreate) bool {
	if m == nil || m.Message == nil || m.Author == nil {
		return false
	}
	return m.Author.ID != self
}
