package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dcastanera/inventario/internal/client/models"
	"github.com/dcastanera/inventario/internal/client/services"
	"github.com/dcastanera/inventario/internal/common"
)

// User-facing messages for the stock movement form, matching the backend's
// locale.
const (
	msgInsufficientStock = "Stock insuficiente para esta transacción"
	msgAuthRequired      = "Error de autenticación. Por favor, vuelve a iniciar sesión."
	msgMovementFailed    = "Error al procesar la transacción. Por favor, inténtalo de nuevo."
)

// Move records a stock movement against a product. The product's current
// quantity comes from a fresh listing, and after a successful movement the
// listing is refetched from the server, which is the source of truth for the
// final quantity.
func (a *App) Move(ctx context.Context) error {
	products, err := a.api.GetProducts(ctx)
	if err != nil {
		return err
	}

	id, err := getSimpleText(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}

	var product *models.Product
	for i := range products {
		if products[i].ID == id {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return fmt.Errorf("unknown product id %q", id)
	}
	fmt.Printf("%s — current stock: %d\n", product.Name, product.Quantity)

	text, err := getSimpleText(a.reader, "Direction (in/out)", os.Stdout)
	if err != nil {
		return err
	}
	direction := models.TransactionIn
	if strings.EqualFold(text, "out") {
		direction = models.TransactionOut
	}

	magnitude, err := GetInt(a.reader, "Quantity", os.Stdout)
	if err != nil {
		return err
	}

	actorID := ""
	if user := a.session.User(); user != nil {
		actorID = user.ID
	}

	if _, err := a.stock.Submit(ctx, *product, magnitude, direction, actorID); err != nil {
		var partial *services.PartialStockError
		switch {
		case errors.Is(err, common.ErrInsufficientStock):
			fmt.Println(msgInsufficientStock)
		case errors.Is(err, common.ErrAuthRequired):
			fmt.Println(msgAuthRequired)
		case errors.As(err, &partial):
			fmt.Println(msgMovementFailed)
		}
		return err
	}

	fmt.Println("Movement recorded.")
	return a.Products(ctx)
}
