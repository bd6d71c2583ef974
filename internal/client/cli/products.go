package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dcastanera/inventario/internal/client/models"
	"github.com/dcastanera/inventario/internal/common"
)

// Products lists all products.
func (a *App) Products(ctx context.Context) error {
	products, err := a.api.GetProducts(ctx)
	if err != nil {
		return err
	}

	if len(products) == 0 {
		fmt.Println("No products yet.")
		return nil
	}

	fmt.Printf("%-36s  %-24s  %8s  %10s\n", "ID", "NAME", "QUANTITY", "PRICE")
	for _, p := range products {
		fmt.Printf("%-36s  %-24s  %8d  %10.2f\n", p.ID, p.Name, p.Quantity, p.Price)
	}
	return nil
}

// AddProduct prompts for the new product's fields and creates it.
func (a *App) AddProduct(ctx context.Context) error {
	user := a.session.User()
	if user == nil {
		return common.ErrAuthRequired
	}

	name, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getSimpleText(a.reader, "Description (optional)", os.Stdout)
	if err != nil {
		return err
	}
	quantity, err := GetInt(a.reader, "Initial quantity", os.Stdout)
	if err != nil {
		return err
	}
	price, err := GetFloat(a.reader, "Unit price", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.api.CreateProduct(ctx, models.NewProduct{
		Name:        name,
		Description: description,
		Quantity:    quantity,
		Price:       price,
		CreatedBy:   user.ID,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created product %s (%s)\n", created.Name, created.ID)
	return nil
}

// EditProduct prompts for a product id and new field values; empty input
// keeps the current value.
func (a *App) EditProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}

	var patch models.ProductUpdate

	if name, err := getSimpleText(a.reader, "New name (empty to keep)", os.Stdout); err != nil {
		return err
	} else if name != "" {
		patch.Name = &name
	}

	if description, err := getSimpleText(a.reader, "New description (empty to keep)", os.Stdout); err != nil {
		return err
	} else if description != "" {
		patch.Description = &description
	}

	if text, err := getSimpleText(a.reader, "New price (empty to keep)", os.Stdout); err != nil {
		return err
	} else if text != "" {
		price, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", text)
		}
		patch.Price = &price
	}

	updated, err := a.api.UpdateProduct(ctx, id, patch)
	if err != nil {
		return err
	}

	fmt.Printf("Updated product %s\n", updated.ID)
	return nil
}

// DeleteProduct prompts for a product id and deletes it.
func (a *App) DeleteProduct(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.api.DeleteProduct(ctx, id); err != nil {
		return err
	}

	fmt.Printf("Deleted product %s\n", id)
	return nil
}

// Transactions lists the full stock movement log.
func (a *App) Transactions(ctx context.Context) error {
	txs, err := a.api.GetTransactions(ctx)
	if err != nil {
		return err
	}

	if len(txs) == 0 {
		fmt.Println("No transactions yet.")
		return nil
	}

	fmt.Printf("%-36s  %-36s  %-4s  %8s  %s\n", "ID", "PRODUCT", "TYPE", "CHANGE", "DATE")
	for _, tx := range txs {
		fmt.Printf("%-36s  %-36s  %-4s  %+8d  %s\n",
			tx.ID, tx.ProductID, tx.Type, tx.QuantityChange, tx.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
