// Package api exposes boards and layout operations over HTTP.
//
// # Overview
//
// The server is a thin shell around the packages that do the real work:
// [store] persists boards, [ops] applies layout operations, [render]
// produces artifacts, and [cache] keeps rendered artifacts warm. Handlers
// translate HTTP to those calls and coded errors back to status codes.
//
// # Routes
//
//	GET    /healthz                      liveness + version
//	GET    /v1/boards                    list boards
//	POST   /v1/boards                    create a board
//	GET    /v1/boards/{boardID}          fetch one board
//	DELETE /v1/boards/{boardID}          delete a board
//	POST   /v1/boards/{boardID}/ops      apply one operation or a batch
//	GET    /v1/boards/{boardID}/violations  validator report
//	GET    /v1/boards/{boardID}/render   svg | png | dot | json artifact
//	POST   /v1/migrate                   legacy rows -> components (stateless)
//
// Operation batches are all-or-nothing: on the first rejection nothing is
// persisted and the response is 409 with the rejection code. Mutations on
// one board are serialized by a per-board lock; reads are lock-free because
// the store hands out private copies.
//
// # Usage
//
//	srv := api.NewServer(api.Options{Addr: ":8080", Store: st, Cache: c})
//	err := srv.Start(ctx) // blocks until ctx is canceled
package api

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gridpush/gridpush/pkg/cache"
	"github.com/gridpush/gridpush/pkg/errors"
	"github.com/gridpush/gridpush/pkg/store"
)

const (
	// DefaultAddr is the listen address used when [Options.Addr] is unset.
	DefaultAddr = ":8080"

	readHeaderTimeout = 10 * time.Second
	requestTimeout    = 60 * time.Second
	shutdownTimeout   = 15 * time.Second

	// maxBodyBytes caps request bodies. Boards are small documents; a cap
	// this size only stops abuse, not legitimate payloads.
	maxBodyBytes = 1 << 20
)

// Server handles HTTP requests for boards.
type Server struct {
	addr   string
	store  store.Store
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
	locks  *boardLocks
}

// Options configures a [Server]. Zero fields get safe defaults: an
// in-memory store, a null cache, the default keyer, and a discarded logger.
type Options struct {
	Addr   string
	Store  store.Store
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewServer creates a server with defaults applied.
func NewServer(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.Logger == nil {
		opts.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Server{
		addr:   opts.Addr,
		store:  opts.Store,
		cache:  opts.Cache,
		keyer:  opts.Keyer,
		logger: opts.Logger,
		locks:  newBoardLocks(),
	}
}

// Handler builds the chi router with the full middleware stack.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/boards", func(r chi.Router) {
			r.Get("/", s.handleListBoards)
			r.Post("/", s.handleCreateBoard)

			r.Route("/{boardID}", func(r chi.Router) {
				r.Get("/", s.handleGetBoard)
				r.Delete("/", s.handleDeleteBoard)
				r.Post("/ops", s.handleApplyOps)
				r.Get("/violations", s.handleViolations)
				r.Get("/render", s.handleRender)
			})
		})
		r.Post("/migrate", s.handleMigrate)
	})

	return r
}

// Start runs the HTTP listener until ctx is canceled, then shuts down
// gracefully. Signal handling is the caller's job.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api server listening", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(errors.ErrCodeInternal, err, "api server")
	case <-ctx.Done():
	}

	s.logger.Info("api server shutting down")
	shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutCtx); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "api server shutdown")
	}
	return nil
}
