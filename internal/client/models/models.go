// Package models defines the wire types exchanged with the inventario
// backend. The server owns all of these records; the client only holds
// transient copies.
package models

import "time"

// TransactionType is the direction of a stock movement.
type TransactionType string

const (
	TransactionIn  TransactionType = "IN"
	TransactionOut TransactionType = "OUT"
)

// Profile is the authenticated user's identity as returned by /auth/me.
type Profile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Product is a server-owned inventory record.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProduct is the creation payload: a Product minus id and timestamps.
type NewProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	CreatedBy   string  `json:"created_by"`
}

// ProductUpdate is a partial update; nil fields are left untouched by the
// server.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Quantity    *int     `json:"quantity,omitempty"`
	Price       *float64 `json:"price,omitempty"`
}

// Transaction is an append-only stock movement record. QuantityChange is
// signed; Type carries the direction redundantly and the two must agree.
type Transaction struct {
	ID             string          `json:"id"`
	ProductID      string          `json:"product_id"`
	QuantityChange int             `json:"quantity_change"`
	Type           TransactionType `json:"type"`
	CreatedBy      string          `json:"created_by"`
	CreatedAt      time.Time       `json:"created_at"`
}

// NewTransaction is the creation payload for a stock movement.
type NewTransaction struct {
	ProductID      string          `json:"product_id"`
	QuantityChange int             `json:"quantity_change"`
	Type           TransactionType `json:"type"`
	CreatedBy      string          `json:"created_by"`
}

// LoginUser is the identity embedded in an auth response.
type LoginUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// LoginResponse is returned by both /auth/login and /auth/register.
type LoginResponse struct {
	User        LoginUser `json:"user"`
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
}

// DashboardMetrics are the aggregate counters shown on the dashboard.
type DashboardMetrics struct {
	TotalProducts      int     `json:"total_products"`
	TotalValue         float64 `json:"total_value"`
	RecentTransactions int     `json:"recent_transactions"`
	LowStockProducts   int     `json:"low_stock_products"`
}

// TopProduct is a dashboard row: a product and its transaction count.
type TopProduct struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Transactions int    `json:"transactions"`
}

// RecentTransaction is a dashboard row joining a movement with its product
// name.
type RecentTransaction struct {
	ID             string          `json:"id"`
	ProductName    string          `json:"product_name"`
	QuantityChange int             `json:"quantity_change"`
	Type           TransactionType `json:"type"`
	CreatedAt      time.Time       `json:"created_at"`
}
