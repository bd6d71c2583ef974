package cli

import (
	"context"
	"fmt"

	"github.com/dcastanera/inventario/internal/client/services"
)

// Dashboard refetches the aggregate metrics and renders the snapshot. On any
// fetch failure a single generic banner is shown; the previous snapshot, if
// any, is still printed since a failed fetch never partially overwrites it.
func (a *App) Dashboard(ctx context.Context) error {
	if err := a.dashboard.Fetch(ctx); err != nil {
		fmt.Println(services.MsgDashboardError)
	}

	snapshot := a.dashboard.Snapshot()

	fmt.Println("--- Dashboard ---")
	fmt.Printf("Products:            %d\n", snapshot.Metrics.TotalProducts)
	fmt.Printf("Inventory value:     %.2f\n", snapshot.Metrics.TotalValue)
	fmt.Printf("Transactions (24h):  %d\n", snapshot.Metrics.RecentTransactions)
	fmt.Printf("Low stock products:  %d\n", snapshot.Metrics.LowStockProducts)

	if len(snapshot.TopProducts) > 0 {
		fmt.Println("\nTop products:")
		for _, p := range snapshot.TopProducts {
			fmt.Printf("  %-24s  %d transactions\n", p.Name, p.Transactions)
		}
	}

	if len(snapshot.RecentTransactions) > 0 {
		fmt.Println("\nRecent transactions:")
		for _, tx := range snapshot.RecentTransactions {
			fmt.Printf("  %-24s  %-4s  %+d  %s\n",
				tx.ProductName, tx.Type, tx.QuantityChange, tx.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	return nil
}
