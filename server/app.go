package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/alovak/testcards/internal/cardgen"
	"github.com/alovak/testcards/internal/config"
	"github.com/alovak/testcards/internal/expiry"
	"github.com/alovak/testcards/internal/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

// App is the main application, it wires the generator into an HTTP server and is
// responsible for starting and stopping it.
type App struct {
	srv    *http.Server
	wg     *sync.WaitGroup
	Addr   string
	logger *slog.Logger
	config *config.Config
}

func NewApp(logger *slog.Logger, cfg *config.Config) *App {
	logger = logger.With(slog.String("app", "cardgen"))

	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &App{
		wg:     &sync.WaitGroup{},
		logger: logger,
		config: cfg,
	}
}

func (a *App) Start() error {
	a.logger.Info("starting app...")

	expiry.SetDefaultExpiryLocation(a.config.ExpiryLocation())

	router := chi.NewRouter()
	router.Use(middleware.NewStructuredLogger(a.logger))
	router.Use(chimw.Recoverer)

	gen := cardgen.NewGenerator(cardgen.WithYearsAhead(a.config.YearsAhead))
	api := NewAPI(NewService(gen, a.config), a.logger)
	api.AppendRoutes(router)

	router.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	l, err := net.Listen("tcp", a.config.HTTPAddr)
	if err != nil {
		return fmt.Errorf("listening tcp port: %w", err)
	}

	a.Addr = l.Addr().String()

	a.srv = &http.Server{
		Handler: router,
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.logger.Info("http server started", slog.String("addr", a.Addr))

		if err := a.srv.Serve(l); err != nil && err != http.ErrServerClosed {
			a.logger.Error("serving http", "err", err)
		}

		a.logger.Info("http server stopped")
	}()

	return nil
}

// Shutdown stops the server, waiting for in-flight requests until ctx is done.
func (a *App) Shutdown(ctx context.Context) {
	a.logger.Info("shutting down app...")

	if a.srv != nil {
		if err := a.srv.Shutdown(ctx); err != nil {
			a.logger.Error("shutting down http server", "err", err)
		}
	}

	a.wg.Wait()

	a.logger.Info("app stopped")
}
