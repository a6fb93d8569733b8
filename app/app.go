// Package app wires a router.Router behind net/http for the demo binary.
package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/searchktools/fast-router/config"
	"github.com/searchktools/fast-router/router"
)

// Handler is what callers register against a path; it receives the
// params the router captured for the match.
type Handler func(w http.ResponseWriter, r *http.Request, params []router.Param)

// App is the demo application instance: configuration, a router, and the
// handler table the router's opaque HandlerID indexes into.
type App struct {
	cfg      *config.Config
	rt       *router.Router
	handlers map[router.HandlerID]Handler
	nextID   router.HandlerID
	stats    *router.Stats
}

// New creates an application instance with a fresh, unbuilt router.
func New(cfg *config.Config) *App {
	return &App{
		cfg:      cfg,
		rt:       router.New(),
		handlers: make(map[router.HandlerID]Handler),
	}
}

// Router returns the underlying router for direct access (e.g. calling
// EnableStats before Run).
func (a *App) Router() *router.Router {
	return a.rt
}

// Handle registers a route, taking an explicit Method mask and
// MatchFamily rather than one wrapper per HTTP method, since this router
// supports four match families.
func (a *App) Handle(host, path string, methods router.Method, family router.MatchFamily, priority int32, h Handler) error {
	id := a.nextID
	a.nextID++
	a.handlers[id] = h
	return a.rt.Add(host, path, methods, family, priority, id)
}

// LoadRoutesFile loads a JSON route manifest from cfg.RoutesFile, if set.
// Handler IDs in the manifest are looked up in the handler table when a
// request matches. Handle assigns HandlerIDs itself, sequentially from 0
// in call order, so a manifest route only reaches a handler if its id is
// one Handle has assigned; otherwise the request gets a 500.
func (a *App) LoadRoutesFile() error {
	if a.cfg.RoutesFile == "" {
		return nil
	}
	data, err := os.ReadFile(a.cfg.RoutesFile)
	if err != nil {
		return fmt.Errorf("app: reading routes file: %w", err)
	}
	return a.rt.LoadManifestJSON(data)
}

// Run builds the router, starts the HTTP listener, and blocks until a
// shutdown signal arrives.
func (a *App) Run() error {
	if err := a.rt.Build(); err != nil {
		return err
	}
	a.stats = a.rt.EnableStats()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.Port),
		Handler:      http.HandlerFunc(a.serveHTTP),
		ReadTimeout:  time.Duration(a.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.WriteTimeout) * time.Second,
	}

	shutdown := make(chan struct{})
	go a.awaitSignal(srv, shutdown)

	log.Printf("🚀 Router demo server starting on port %d [%s]", a.cfg.Port, a.cfg.Env)
	log.Printf("⚡ Serving from a build-once radix/parametric/regex route index")

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-shutdown
	return nil
}

func (a *App) serveHTTP(w http.ResponseWriter, r *http.Request) {
	method := router.MethodFromString(r.Method)
	res, ok := a.rt.Match(r.Host, r.URL.Path, method)
	if !ok {
		http.NotFound(w, r)
		return
	}

	h, ok := a.handlers[res.Handler]
	if !ok {
		http.Error(w, "no handler registered for matched route", http.StatusInternalServerError)
		return
	}
	h(w, r, res.Params)
}

func (a *App) awaitSignal(srv *http.Server, shutdown chan<- struct{}) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("Signal received: %v. Shutting down...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}
	close(shutdown)
}
