package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/kanau/tetracard/pkg/cache"
	apperrors "github.com/kanau/tetracard/pkg/errors"
	"github.com/kanau/tetracard/pkg/observability"
	"github.com/kanau/tetracard/pkg/render/card"
	"github.com/kanau/tetracard/pkg/render/sink"
	"github.com/kanau/tetracard/pkg/stats"
	"github.com/kanau/tetracard/pkg/tetraio"
)

// serveCommand creates the "serve" command running the HTTP preview server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered cards over HTTP",
		Long: `Start a preview server exposing rendered cards:

  GET /cards/user/{username}
  GET /cards/league/{username}
  GET /cards/leaderboard/{mode}?limit=10
  GET /cards/stats

Format and quality are selected with ?format=png|jpeg&quality=1-100.
Rendered cards are cached in memory for the configured TTL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Serve.Addr = addr
			}
			return c.runServer(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config, :8080)")
	return cmd
}

// cardServer handles card rendering requests. Rendered bytes are cached per
// subject and render options so repeated requests skip the fetch and draw.
type cardServer struct {
	logger   *log.Logger
	client   *tetraio.Client
	renderer *card.Renderer
	cards    cache.Cache
	keyer    cache.Keyer
	ttl      time.Duration
}

func (c *CLI) runServer(ctx context.Context, cfg *Config) error {
	s := &cardServer{
		logger:   c.Logger,
		client:   c.newClient(cfg),
		renderer: c.newRenderer(cfg),
		cards:    cache.NewMemoryCache(),
		keyer:    cache.NewDefaultKeyer(),
		ttl:      time.Duration(cfg.Serve.CardTTLSeconds) * time.Second,
	}
	defer s.cards.Close()

	srv := &http.Server{
		Addr:    cfg.Serve.Addr,
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("preview server listening", "addr", cfg.Serve.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *cardServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	r.Route("/cards", func(r chi.Router) {
		r.Get("/user/{username}", s.handleUser)
		r.Get("/league/{username}", s.handleLeague)
		r.Get("/leaderboard/{mode}", s.handleLeaderboard)
		r.Get("/stats", s.handleStats)
	})

	return r
}

// logRequests logs one line per request with the structured logger.
func (s *cardServer) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

// renderSpec is the per-request output selection parsed from the query.
type renderSpec struct {
	format  sink.Format
	quality int
}

func parseRenderSpec(r *http.Request) (renderSpec, error) {
	spec := renderSpec{format: sink.PNG, quality: 90}

	if f := r.URL.Query().Get("format"); f != "" {
		format, err := sink.ParseFormat(f)
		if err != nil {
			return spec, err
		}
		spec.format = format
	}
	if q := r.URL.Query().Get("quality"); q != "" {
		quality, err := strconv.Atoi(q)
		if err != nil {
			return spec, apperrors.New(apperrors.ErrCodeInvalidFormat, "quality %q is not a number", q)
		}
		spec.quality = quality
	}
	return spec, nil
}

func (s *cardServer) handleUser(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	s.serveCard(w, r, "user", username, func(ctx context.Context) (*image.NRGBA, error) {
		user, league, err := s.fetchProfile(ctx, username)
		if err != nil {
			return nil, err
		}
		return s.renderer.UserCard(user, league)
	})
}

func (s *cardServer) handleLeague(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	s.serveCard(w, r, "league", username, func(ctx context.Context) (*image.NRGBA, error) {
		user, league, err := s.fetchProfile(ctx, username)
		if err != nil {
			return nil, err
		}
		return s.renderer.LeagueCard(user, league)
	})
}

func (s *cardServer) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	mode, err := stats.ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	limit := 10
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil {
			limit = n
		}
	}

	subject := fmt.Sprintf("%s:%d", mode, limit)
	s.serveCard(w, r, "leaderboard", subject, func(ctx context.Context) (*image.NRGBA, error) {
		entries, err := s.client.Leaderboard(ctx, mode, limit)
		if err != nil {
			return nil, err
		}
		return s.renderer.Leaderboard(mode, entries, limit)
	})
}

func (s *cardServer) handleStats(w http.ResponseWriter, r *http.Request) {
	s.serveCard(w, r, "stats", "global", func(ctx context.Context) (*image.NRGBA, error) {
		serverStats, err := s.client.ServerStats(ctx)
		if err != nil {
			return nil, err
		}
		return s.renderer.ServerStats(serverStats)
	})
}

func (s *cardServer) fetchProfile(ctx context.Context, username string) (stats.User, *stats.LeagueSummary, error) {
	user, err := s.client.User(ctx, username)
	if err != nil {
		return stats.User{}, nil, err
	}
	league, err := s.client.League(ctx, username)
	if err != nil {
		return stats.User{}, nil, err
	}
	return user, league, nil
}

// serveCard renders (or recalls) a card and writes it with the right
// content type.
func (s *cardServer) serveCard(w http.ResponseWriter, r *http.Request, kind, subject string, render func(context.Context) (*image.NRGBA, error)) {
	spec, err := parseRenderSpec(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	key := s.keyer.CardKey(kind, subject, cache.CardKeyOpts{
		Format:  string(spec.format),
		Quality: spec.quality,
	})

	if data, ok, err := s.cards.Get(r.Context(), key); err == nil && ok {
		observability.Cache().OnHit(r.Context(), "card")
		w.Header().Set("Content-Type", sink.ContentType(spec.format))
		w.Header().Set("X-Cache", "hit")
		_, _ = w.Write(data)
		return
	}
	observability.Cache().OnMiss(r.Context(), "card")

	img, err := render(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := sink.Encode(&buf, img, sink.WithFormat(spec.format), sink.WithQuality(spec.quality)); err != nil {
		s.writeError(w, err)
		return
	}

	if s.cards.Set(r.Context(), key, buf.Bytes(), s.ttl) == nil {
		observability.Cache().OnSet(r.Context(), "card", buf.Len())
	}

	w.Header().Set("Content-Type", sink.ContentType(spec.format))
	w.Header().Set("X-Cache", "miss")
	_, _ = w.Write(buf.Bytes())
}

// writeError maps application error codes onto HTTP statuses.
func (s *cardServer) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidMode:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodePlayerNotFound:
		status = http.StatusNotFound
	case apperrors.ErrCodeNetwork, apperrors.ErrCodeTimeout:
		status = http.StatusBadGateway
	}

	var rl *apperrors.RateLimitedError
	if errors.As(err, &rl) {
		if rl.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(rl.RetryAfter))
		}
		status = http.StatusTooManyRequests
	}

	s.logger.Error("request failed", "error", err)
	http.Error(w, apperrors.UserMessage(err), status)
}
