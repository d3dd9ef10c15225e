// internal/httpserver/server.go
//
// HTTP command gateway for the Wordle bot.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Command endpoint: POST /commands relays chat text to the dispatcher
//     and returns the reply a chat client would show.
//   - Diagnostics: GET /state (never includes the secret word).
//
// Notes:
//   - When a gateway secret is configured, /commands and /state require an
//     HS256 bearer JWT signed with it. Without a secret they are open, which
//     is only meant for local development.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-bot/internal/game"
)

// Commander answers one chat message.
type Commander interface {
	Handle(content string) (msg string, ok bool)
}

// Snapshotter exposes the current game state.
type Snapshotter interface {
	Snapshot() game.State
}

// Server bundles router, command dispatcher and game view.
type Server struct {
	r      *chi.Mux
	cmd    Commander
	game   Snapshotter
	secret []byte
}

// New constructs a Server, installs middleware, and registers routes.
func New(cmd Commander, g Snapshotter, secret string) *Server {
	s := &Server{r: chi.NewRouter(), cmd: cmd, game: g, secret: []byte(secret)}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"wordle-bot","endpoints":["/health","POST /commands","/state"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Group(func(r chi.Router) {
		r.Use(s.requireGateway())
		r.Post("/commands", s.handleCommand)
		r.Get("/state", s.handleState)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	log.Info().Str("addr", addr).Msg("shutting down http gateway")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// requireGateway enforces a valid bearer JWT when a secret is configured.
func (s *Server) requireGateway() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(s.secret) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearer(r)
			if tokenStr == "" {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				return s.secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				log.Debug().Err(err).Msg("rejected gateway token")
				writeError(w, http.StatusUnauthorized, "invalid_token")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearer extracts a bearer token from the Authorization header.
func bearer(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// SignGatewayToken creates an HS256 JWT for subject that /commands accepts.
func SignGatewayToken(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	})
	return t.SignedString([]byte(secret))
}

// ----------------------------- handlers ------------------------------------

type commandReq struct {
	Content string `json:"content"`
}

type commandRes struct {
	Reply   string `json:"reply,omitempty"`
	Handled bool   `json:"handled"`
}

// handleCommand relays one chat message to the dispatcher.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	msg, ok := s.cmd.Handle(req.Content)
	_ = json.NewEncoder(w).Encode(commandRes{Reply: msg, Handled: ok})
}

type stateRes struct {
	State    string `json:"state"`
	Attempts int    `json:"attempts"`
}

// handleState reports whether a game is running and how many attempts remain.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	st := s.game.Snapshot()
	_ = json.NewEncoder(w).Encode(stateRes{State: st.Phase.String(), Attempts: st.Attempts})
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
