package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-bot/assets"
	"github.com/robalobadob/wordle/apps/go-bot/internal/bot"
	"github.com/robalobadob/wordle/apps/go-bot/internal/config"
	"github.com/robalobadob/wordle/apps/go-bot/internal/discord"
	"github.com/robalobadob/wordle/apps/go-bot/internal/game"
	"github.com/robalobadob/wordle/apps/go-bot/internal/httpserver"
	"github.com/robalobadob/wordle/apps/go-bot/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	sess := game.NewSession(game.NewEngine(wordSource(cfg)), nil)
	dispatcher := bot.NewDispatcher(sess)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 2)
	running := 0

	if cfg.HTTPAddr != "" {
		srv := httpserver.New(dispatcher, sess, cfg.GatewaySecret)
		log.Info().Str("addr", cfg.HTTPAddr).Bool("auth", cfg.GatewaySecret != "").Msg("starting http gateway")
		running++
		go func() { errc <- srv.Start(ctx, cfg.HTTPAddr) }()
	}
	if cfg.DiscordToken != "" {
		b, err := discord.New(cfg.DiscordToken, dispatcher)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create discord bot")
		}
		log.Info().Msg("starting discord bot")
		running++
		go func() { errc <- b.Run(ctx) }()
	}

	for ; running > 0; running-- {
		if err := <-errc; err != nil {
			log.Error().Err(err).Msg("transport exited")
			stop()
		}
	}
	log.Info().Msg("bye")
}

// wordSource picks the configured word list, falling back to the embedded one.
func wordSource(cfg config.Config) words.Source {
	var fsys fs.FS = assets.FS
	name := assets.WordList
	if cfg.WordsFile != "" {
		fsys, name = os.DirFS(filepath.Dir(cfg.WordsFile)), filepath.Base(cfg.WordsFile)
	}
	log.Info().Str("file", cfg.WordsFile).Bool("cache", cfg.WordsCache).Msg("word list")
	if cfg.WordsCache {
		return words.NewCachedSource(fsys, name)
	}
	return words.NewFileSource(fsys, name)
}
