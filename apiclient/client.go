// Package apiclient is a small Go client for the Dresscollections REST API.
//
// Every request carries a JSON body, an Authorization: Bearer header when a
// token is set, and decodes the standard response envelope. Non-2xx replies
// come back as *Error.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/developer2iverto/Dresscollections-sub000/models"
)

const defaultTimeout = 15 * time.Second

// Error is returned for any non-2xx response.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an *Error with the given status code.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client

	// MaxRetries bounds retries of GET requests on transport errors and 5xx.
	MaxRetries uint64
}

// New returns a client for baseURL, e.g. http://localhost:8081/api/v1.
func New(baseURL, token string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		Token:      token,
		HTTP:       &http.Client{Timeout: defaultTimeout},
		MaxRetries: 2,
	}
}

type envelope struct {
	Message string               `json:"message"`
	Data    json.RawMessage      `json:"data"`
	Error   json.RawMessage      `json:"error"`
	Details []models.ErrorDetail `json:"details"`
	Meta    *models.Pagination   `json:"meta"`
}

// errorMessage builds the error text: the error string (or message), then
// every detail msg, joined with "; ".
func (e envelope) errorMessage(status int) string {
	parts := make([]string, 0, len(e.Details)+1)

	var errText string
	if len(e.Error) > 0 && json.Unmarshal(e.Error, &errText) == nil && errText != "" {
		parts = append(parts, errText)
	} else if e.Message != "" {
		parts = append(parts, e.Message)
	}
	for _, d := range e.Details {
		if d.Msg != "" {
			parts = append(parts, d.Msg)
		}
	}
	if len(parts) == 0 {
		return http.StatusText(status)
	}
	return strings.Join(parts, "; ")
}

// Do sends one request and decodes the envelope's data into out (if non-nil).
func (c *Client) Do(ctx context.Context, method, path string, body, out any) (*models.Pagination, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
	}

	var env envelope
	op := func() error {
		var err error
		env, err = c.send(ctx, method, path, payload)
		if err == nil {
			return nil
		}
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
			return backoff.Permanent(err)
		}
		return err
	}

	var err error
	if method == http.MethodGet && c.MaxRetries > 0 {
		b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.MaxRetries), ctx)
		err = backoff.Retry(op, b)
	} else {
		err = op()
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			err = perm.Err
		}
	}
	if err != nil {
		return nil, err
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, errors.Wrap(err, "decode response data")
		}
	}
	return env.Meta, nil
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (envelope, error) {
	var env envelope

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return env, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return env, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return env, errors.Wrap(err, "read response body")
	}
	if len(raw) > 0 {
		if jsonErr := json.Unmarshal(raw, &env); jsonErr != nil && resp.StatusCode < 300 {
			return env, errors.Wrap(jsonErr, "decode response")
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return env, &Error{StatusCode: resp.StatusCode, Message: env.errorMessage(resp.StatusCode)}
	}
	return env, nil
}

// ════════════════════════════════════════════════════════════
// Storefront
// ════════════════════════════════════════════════════════════

type ProductQuery struct {
	MainCategory string
	Category     string
	Search       string
	Sort         string
	Page         int
	Limit        int
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("mainCategory", q.MainCategory)
	set("category", q.Category)
	set("search", q.Search)
	set("sort", q.Sort)
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	return v
}

func (c *Client) ListProducts(ctx context.Context, q ProductQuery) ([]models.StorefrontProductResponse, *models.Pagination, error) {
	path := "/store/products"
	if enc := q.values().Encode(); enc != "" {
		path += "?" + enc
	}
	var products []models.StorefrontProductResponse
	meta, err := c.Do(ctx, http.MethodGet, path, nil, &products)
	return products, meta, err
}

func (c *Client) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if _, err := c.Do(ctx, http.MethodGet, "/store/products/"+url.PathEscape(id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) GetFilters(ctx context.Context) (*models.FilterFacets, error) {
	var facets models.FilterFacets
	if _, err := c.Do(ctx, http.MethodGet, "/store/products/filters", nil, &facets); err != nil {
		return nil, err
	}
	return &facets, nil
}

func (c *Client) GetCategories(ctx context.Context) ([]models.StorefrontCategory, error) {
	var tree []models.StorefrontCategory
	_, err := c.Do(ctx, http.MethodGet, "/store/categories", nil, &tree)
	return tree, err
}

func (c *Client) CatalogStatus(ctx context.Context) (*models.CatalogStatus, error) {
	var status models.CatalogStatus
	if _, err := c.Do(ctx, http.MethodGet, "/store/catalog/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ════════════════════════════════════════════════════════════
// CMS
// ════════════════════════════════════════════════════════════

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLogin signs in and stores the returned token on the client.
func (c *Client) AdminLogin(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	if _, err := c.Do(ctx, http.MethodPost, "/admin/login", adminLoginRequest{Email: email, Password: password}, &out); err != nil {
		return err
	}
	if out.Token == "" {
		return errors.New("login response carried no token")
	}
	c.Token = out.Token
	return nil
}

func (c *Client) CreateProduct(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	var product models.Product
	if _, err := c.Do(ctx, http.MethodPost, "/admin/products", input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (*models.Product, error) {
	var product models.Product
	if _, err := c.Do(ctx, http.MethodPatch, "/admin/products/"+url.PathEscape(id), patch, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.Do(ctx, http.MethodDelete, "/admin/products/"+url.PathEscape(id), nil, nil)
	return err
}

func (c *Client) ApplyOffer(ctx context.Context, req models.ApplyOfferRequest) (*models.ActiveOffer, error) {
	var active models.ActiveOffer
	if _, err := c.Do(ctx, http.MethodPost, "/admin/offers/apply", req, &active); err != nil {
		return nil, err
	}
	return &active, nil
}

func (c *Client) ResetOffers(ctx context.Context) error {
	_, err := c.Do(ctx, http.MethodPost, "/admin/offers/reset", nil, nil)
	return err
}

func (c *Client) ReloadCatalog(ctx context.Context) (*models.CatalogStatus, error) {
	var status models.CatalogStatus
	if _, err := c.Do(ctx, http.MethodPost, "/admin/catalog/reload", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ════════════════════════════════════════════════════════════
// Shared dev catalog
// ════════════════════════════════════════════════════════════

func (c *Client) GetDevCatalog(ctx context.Context) (*models.CatalogSnapshot, error) {
	var snap models.CatalogSnapshot
	if _, err := c.Do(ctx, http.MethodGet, "/dev/catalog", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// PutDevCatalog replaces the shared catalog. A stale updatedAt yields an
// *Error with status 409.
func (c *Client) PutDevCatalog(ctx context.Context, products []models.Product, updatedAt *time.Time) (*models.CatalogSnapshot, error) {
	if products == nil {
		products = []models.Product{}
	}
	var snap models.CatalogSnapshot
	req := models.PutCatalogRequest{Products: products, UpdatedAt: updatedAt}
	if _, err := c.Do(ctx, http.MethodPut, "/dev/catalog", req, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
