package services

import (
	"context"
	"fmt"

	"github.com/dcastanera/inventario/internal/client/api"
	"github.com/dcastanera/inventario/internal/client/models"
	"github.com/dcastanera/inventario/internal/common"
	"github.com/dcastanera/inventario/internal/logging"
)

// PartialStockError reports a stock movement whose log entry was written but
// whose product update failed. The log entry is not compensated; the caller
// is told the operation did not fully succeed.
type PartialStockError struct {
	Transaction *models.Transaction
	Err         error
}

func (e *PartialStockError) Error() string {
	return fmt.Sprintf("stock movement logged but product update failed: %v", e.Err)
}

func (e *PartialStockError) Unwrap() error { return e.Err }

// StockService performs the compound stock movement operation: append a
// transaction record, then update the owning product's quantity.
type StockService struct {
	api api.Client
	log logging.Logger
}

func NewStockService(client api.Client, log logging.Logger) *StockService {
	return &StockService{api: client, log: log}
}

// Submit records a stock movement of the given magnitude and direction
// against product, on behalf of actorID.
//
// The quantity invariant is enforced locally before any remote call: if the
// movement would drive the quantity below zero, Submit fails with
// common.ErrInsufficientStock and no request is issued. Likewise a missing
// acting identity fails with common.ErrAuthRequired without network I/O.
//
// The transaction log is written first, the product second. If the product
// update fails after the log write, Submit returns *PartialStockError. On
// success the caller should refetch the product list from the server rather
// than trust the locally computed quantity.
func (s *StockService) Submit(ctx context.Context, product models.Product, magnitude int, direction models.TransactionType, actorID string) (*models.Product, error) {
	if magnitude <= 0 {
		return nil, fmt.Errorf("magnitude must be positive, got %d", magnitude)
	}

	change := magnitude
	if direction == models.TransactionOut {
		change = -magnitude
	}
	newQuantity := product.Quantity + change

	if newQuantity < 0 {
		return nil, common.ErrInsufficientStock
	}
	if actorID == "" {
		return nil, common.ErrAuthRequired
	}

	tx, err := s.api.CreateTransaction(ctx, models.NewTransaction{
		ProductID:      product.ID,
		QuantityChange: change,
		Type:           direction,
		CreatedBy:      actorID,
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.api.UpdateProduct(ctx, product.ID, models.ProductUpdate{Quantity: &newQuantity})
	if err != nil {
		s.log.Error(ctx, "product update failed after movement was logged",
			"product_id", product.ID, "transaction_id", tx.ID, "error", err)
		return nil, &PartialStockError{Transaction: tx, Err: err}
	}

	return updated, nil
}
