package services

import (
	"context"
	"sync"

	"github.com/dcastanera/inventario/internal/client/api"
	"github.com/dcastanera/inventario/internal/client/models"
	"github.com/dcastanera/inventario/internal/logging"
)

// MsgDashboardError is the generic banner shown on any aggregation failure;
// the view does not distinguish which of the three reads failed.
const MsgDashboardError = "Error al cargar los datos del panel"

// DashboardSnapshot is one consistent set of dashboard data. All three parts
// come from the same fetch; the store never mixes old and new values.
type DashboardSnapshot struct {
	Metrics            models.DashboardMetrics
	TopProducts        []models.TopProduct
	RecentTransactions []models.RecentTransaction
}

// DashboardStore caches the last successful snapshot together with a loading
// flag and the last fetch error. It has no timer of its own; callers
// re-invoke Fetch on whatever interval they choose.
type DashboardStore struct {
	api api.Client
	log logging.Logger

	mu       sync.RWMutex
	snapshot DashboardSnapshot
	loading  bool
	err      error
}

func NewDashboardStore(client api.Client, log logging.Logger) *DashboardStore {
	return &DashboardStore{api: client, log: log}
}

// Snapshot returns the last committed snapshot.
func (d *DashboardStore) Snapshot() DashboardSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.snapshot
}

func (d *DashboardStore) Loading() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.loading
}

// Err returns the error of the last fetch, or nil if it succeeded.
func (d *DashboardStore) Err() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.err
}

// Fetch reloads metrics, top products and recent transactions. The three
// reads are independent; if any of them fails the whole fetch fails and the
// previous snapshot stays untouched. Results are committed all together.
func (d *DashboardStore) Fetch(ctx context.Context) error {
	d.mu.Lock()
	d.loading = true
	d.err = nil
	d.mu.Unlock()

	metrics, err := d.api.GetDashboardMetrics(ctx)
	if err != nil {
		return d.fail(ctx, err)
	}

	top, err := d.api.GetTopProducts(ctx)
	if err != nil {
		return d.fail(ctx, err)
	}

	recent, err := d.api.GetRecentTransactions(ctx)
	if err != nil {
		return d.fail(ctx, err)
	}

	d.mu.Lock()
	d.snapshot = DashboardSnapshot{
		Metrics:            *metrics,
		TopProducts:        top,
		RecentTransactions: recent,
	}
	d.loading = false
	d.mu.Unlock()
	return nil
}

func (d *DashboardStore) fail(ctx context.Context, err error) error {
	d.log.Error(ctx, "dashboard fetch failed", "error", err)
	d.mu.Lock()
	d.loading = false
	d.err = err
	d.mu.Unlock()
	return err
}
