package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/dcastanera/inventario/internal/client/models"
	"github.com/dcastanera/inventario/internal/common"
	"github.com/dcastanera/inventario/internal/logging"
)

// HTTPClient implements Client over plain JSON/HTTP.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
	log     logging.Logger
}

func NewHTTPClient(baseURL string, tokens TokenStore, log logging.Logger) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

// authHeader builds the Authorization header value. It fails with
// common.ErrAuthRequired when no token is persisted; callers must not issue
// the network call on that failure.
func (c *HTTPClient) authHeader(ctx context.Context) (string, error) {
	token, err := c.tokens.Access(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", common.ErrAuthRequired
	}
	return "Bearer " + token, nil
}

// send issues one HTTP call and decodes the response into out (out may be nil
// for calls without a body). Authenticated calls short-circuit before any
// network I/O when no token is available. Every failure leaves this method as
// either common.ErrAuthRequired or *Error.
func (c *HTTPClient) send(ctx context.Context, method, path string, body any, out any, authed bool) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Message: err.Error()}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	if authed {
		header, err := c.authHeader(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", header)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return c.normalizeError(ctx, resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Message: err.Error(), Status: resp.StatusCode}
	}
	return nil
}

// normalizeError turns a non-2xx response into *Error. A 401, whichever
// operation produced it, clears the persisted token before the error is
// returned: the session is no longer valid process-wide.
func (c *HTTPClient) normalizeError(ctx context.Context, resp *http.Response) error {
	apiErr := &Error{Message: msgGenericError, Status: resp.StatusCode}

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.tokens.Clear(ctx); err != nil {
			c.log.Warn(ctx, "failed to clear stored token", "error", err)
		}
	}

	var body struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if resp.StatusCode == http.StatusUnauthorized {
			apiErr.Message = msgSessionExpired
		}
		return apiErr
	}

	switch {
	case body.Detail != "":
		apiErr.Message = body.Detail
	case body.Message != "":
		apiErr.Message = body.Message
	}
	return apiErr
}

// --- auth ---

func (c *HTTPClient) Register(ctx context.Context, email, password, fullName string) (*models.LoginResponse, error) {
	payload := map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
	}
	var resp models.LoginResponse
	if err := c.send(ctx, http.MethodPost, "/auth/register", payload, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates via query parameters, as the backend expects.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	query := url.Values{}
	query.Set("email", email)
	query.Set("password", password)

	var resp models.LoginResponse
	if err := c.send(ctx, http.MethodPost, "/auth/login?"+query.Encode(), nil, &resp, false); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	var resp struct {
		Message string `json:"message"`
	}
	return c.send(ctx, http.MethodPost, "/auth/logout", nil, &resp, true)
}

func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := c.send(ctx, http.MethodGet, "/auth/me", nil, &profile, true); err != nil {
		return nil, err
	}
	return &profile, nil
}

// --- products ---

func (c *HTTPClient) GetProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.send(ctx, http.MethodGet, "/products", nil, &products, true); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, product models.NewProduct) (*models.Product, error) {
	var created models.Product
	if err := c.send(ctx, http.MethodPost, "/products", product, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id string, patch models.ProductUpdate) (*models.Product, error) {
	var updated models.Product
	if err := c.send(ctx, http.MethodPut, "/products/"+url.PathEscape(id), patch, &updated, true); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *HTTPClient) DeleteProduct(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/products/"+url.PathEscape(id), nil, nil, true)
}

// --- transactions ---

func (c *HTTPClient) GetTransactions(ctx context.Context) ([]models.Transaction, error) {
	var txs []models.Transaction
	if err := c.send(ctx, http.MethodGet, "/transactions", nil, &txs, true); err != nil {
		return nil, err
	}
	return txs, nil
}

func (c *HTTPClient) CreateTransaction(ctx context.Context, tx models.NewTransaction) (*models.Transaction, error) {
	var created models.Transaction
	if err := c.send(ctx, http.MethodPost, "/transactions", tx, &created, true); err != nil {
		return nil, err
	}
	return &created, nil
}

// --- dashboard ---

func (c *HTTPClient) GetDashboardMetrics(ctx context.Context) (*models.DashboardMetrics, error) {
	var metrics models.DashboardMetrics
	if err := c.send(ctx, http.MethodGet, "/dashboard/metrics", nil, &metrics, true); err != nil {
		return nil, err
	}
	return &metrics, nil
}

func (c *HTTPClient) GetTopProducts(ctx context.Context) ([]models.TopProduct, error) {
	var top []models.TopProduct
	if err := c.send(ctx, http.MethodGet, "/dashboard/top-products", nil, &top, true); err != nil {
		return nil, err
	}
	return top, nil
}

func (c *HTTPClient) GetRecentTransactions(ctx context.Context) ([]models.RecentTransaction, error) {
	var recent []models.RecentTransaction
	if err := c.send(ctx, http.MethodGet, "/dashboard/recent-transactions", nil, &recent, true); err != nil {
		return nil, err
	}
	return recent, nil
}

var _ Client = (*HTTPClient)(nil)
