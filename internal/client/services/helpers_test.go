package services

import (
	"context"
	"errors"

	"github.com/dcastanera/inventario/internal/client/api"
	"github.com/dcastanera/inventario/internal/client/models"
	"github.com/dcastanera/inventario/internal/logging"
)

// nopLogger discards everything; services under test log only incidentally.
type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (l nopLogger) With(...any) logging.Logger          { return l }

// fakeClient implements api.Client for unit tests. Calls records method
// names in invocation order so tests can assert both counts and sequencing.
type fakeClient struct {
	Calls []string

	RegisterRet *models.LoginResponse
	RegisterErr error

	LoginRet *models.LoginResponse
	LoginErr error

	LogoutErr error

	CurrentUserRet *models.Profile
	CurrentUserErr error

	ProductsRet []models.Product
	ProductsErr error

	CreateProductRet *models.Product
	CreateProductErr error

	UpdateProductRet *models.Product
	UpdateProductErr error

	DeleteProductErr error

	TransactionsRet []models.Transaction
	TransactionsErr error

	CreateTransactionRet *models.Transaction
	CreateTransactionErr error

	MetricsRet *models.DashboardMetrics
	MetricsErr error

	TopProductsRet []models.TopProduct
	TopProductsErr error

	RecentRet []models.RecentTransaction
	RecentErr error

	// captured arguments
	LastLoginEmail        string
	LastLoginPassword     string
	LastRegisterEmail     string
	LastRegisterFullName  string
	LastUpdateProductID   string
	LastUpdateProduct     models.ProductUpdate
	LastCreateTransaction models.NewTransaction
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) record(name string) { f.Calls = append(f.Calls, name) }

func (f *fakeClient) Register(ctx context.Context, email, password, fullName string) (*models.LoginResponse, error) {
	f.record("Register")
	f.LastRegisterEmail = email
	f.LastRegisterFullName = fullName
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	f.record("Login")
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Logout(ctx context.Context) error {
	f.record("Logout")
	return f.LogoutErr
}

func (f *fakeClient) GetCurrentUser(ctx context.Context) (*models.Profile, error) {
	f.record("GetCurrentUser")
	return f.CurrentUserRet, f.CurrentUserErr
}

func (f *fakeClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	f.record("GetProducts")
	return f.ProductsRet, f.ProductsErr
}

func (f *fakeClient) CreateProduct(ctx context.Context, product models.NewProduct) (*models.Product, error) {
	f.record("CreateProduct")
	return f.CreateProductRet, f.CreateProductErr
}

func (f *fakeClient) UpdateProduct(ctx context.Context, id string, patch models.ProductUpdate) (*models.Product, error) {
	f.record("UpdateProduct")
	f.LastUpdateProductID = id
	f.LastUpdateProduct = patch
	return f.UpdateProductRet, f.UpdateProductErr
}

func (f *fakeClient) DeleteProduct(ctx context.Context, id string) error {
	f.record("DeleteProduct")
	return f.DeleteProductErr
}

func (f *fakeClient) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	f.record("GetTransactions")
	return f.TransactionsRet, f.TransactionsErr
}

func (f *fakeClient) CreateTransaction(ctx context.Context, tx models.NewTransaction) (*models.Transaction, error) {
	f.record("CreateTransaction")
	f.LastCreateTransaction = tx
	return f.CreateTransactionRet, f.CreateTransactionErr
}

func (f *fakeClient) GetDashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error) {
	f.record("GetDashboardMetrics")
	return f.MetricsRet, f.MetricsErr
}

func (f *fakeClient) GetTopProducts(ctx context.Context) ([]models.TopProduct, error) {
	f.record("GetTopProducts")
	return f.TopProductsRet, f.TopProductsErr
}

func (f *fakeClient) GetRecentTransactions(ctx context.Context) ([]models.RecentTransaction, error) {
	f.record("GetRecentTransactions")
	return f.RecentRet, f.RecentErr
}

// fakeTokenStore implements TokenStore in memory.
type fakeTokenStore struct {
	Token     string
	TokenType string

	AccessErr error
	SaveErr   error
	ClearErr  error

	SaveCalls  int
	ClearCalls int
}

func (f *fakeTokenStore) Access(ctx context.Context) (string, error) {
	return f.Token, f.AccessErr
}

func (f *fakeTokenStore) Save(ctx context.Context, accessToken, tokenType string) error {
	f.SaveCalls++
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.Token = accessToken
	f.TokenType = tokenType
	return nil
}

func (f *fakeTokenStore) Clear(ctx context.Context) error {
	f.ClearCalls++
	if f.ClearErr != nil {
		return f.ClearErr
	}
	f.Token = ""
	f.TokenType = ""
	return nil
}

var errBoom = errors.New("boom")
