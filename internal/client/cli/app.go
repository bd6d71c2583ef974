// Package cli is the interactive view layer of the inventario client. It
// consumes the session store, dashboard store and stock flow through their
// command interfaces and renders their state; no business rule lives here.
package cli

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/dcastanera/inventario/internal/client/api"
	"github.com/dcastanera/inventario/internal/client/config"
	"github.com/dcastanera/inventario/internal/client/repositories/tokens"
	"github.com/dcastanera/inventario/internal/client/services"
	"github.com/dcastanera/inventario/internal/client/storage"
	"github.com/dcastanera/inventario/internal/logging"
)

type App struct {
	config    *config.Config
	api       api.Client
	session   *services.SessionStore
	dashboard *services.DashboardStore
	stock     *services.StockService
	log       logging.Logger
	reader    *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	tokenStore := tokens.NewStore(db)
	apiClient := api.NewHTTPClient(cfg.APIBaseURL, tokenStore, log)

	return &App{
		config:    cfg,
		api:       apiClient,
		session:   services.NewSessionStore(apiClient, tokenStore, log),
		dashboard: services.NewDashboardStore(apiClient, log),
		stock:     services.NewStockService(apiClient, log),
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session, starts the dashboard refresh ticker, and hands
// control to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.session.LoadUser(ctx)

	go a.StartDashboardRefresher(ctx, a.config.DashboardRefreshInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) status() string {
	if user := a.session.User(); user != nil {
		return "(" + user.Email + ")"
	}
	return ""
}

// StartDashboardRefresher refetches the dashboard on a fixed interval while a
// session is active. The store itself has no timer; the view owns it.
func (a *App) StartDashboardRefresher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if !a.session.IsAuthenticated() {
				continue
			}
			// Failures only set the store's error flag; the banner is
			// rendered on the next `dashboard` command.
			_ = a.dashboard.Fetch(ctx)

		case <-ctx.Done():
			return
		}
	}
}
