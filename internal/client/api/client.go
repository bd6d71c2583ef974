// Package api is the single chokepoint for all calls to the inventario
// backend. It attaches bearer-token authentication, normalizes every failure
// into *Error, and invalidates the stored credential whenever the server
// answers 401.
package api

import (
	"context"

	"github.com/dcastanera/inventario/internal/client/models"
)

// Client is the full operation surface of the remote service, grouped by
// resource: auth, products, transactions and dashboard.
type Client interface {
	// auth
	Register(ctx context.Context, email, password, fullName string) (*models.LoginResponse, error)
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	GetCurrentUser(ctx context.Context) (*models.Profile, error)

	// products
	GetProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, product models.NewProduct) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// transactions
	GetTransactions(ctx context.Context) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, tx models.NewTransaction) (*models.Transaction, error)

	// dashboard
	GetDashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error)
	GetTopProducts(ctx context.Context) ([]models.TopProduct, error)
	GetRecentTransactions(ctx context.Context) ([]models.RecentTransaction, error)
}

// TokenStore is the credential surface the client needs: read the persisted
// bearer token and clear it when the server reports the session invalid.
// The session layer owns the rest of the token lifecycle.
type TokenStore interface {
	Access(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
}
