// Package client is the terminal client's view of the shutterfolio API.
// It keeps the session cookie in a cookie jar and reports failures as
// AuthError, ReadError or WriteError.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/shutterfolio/backend/internal/contactform"
	"github.com/shutterfolio/backend/internal/dashboard"
	"github.com/shutterfolio/backend/internal/gallery"
	"github.com/shutterfolio/backend/internal/model"
	"github.com/shutterfolio/backend/internal/session"
)

// Collection names used in errors.
const (
	collectionPortfolio = "portfolio"
	collectionContacts  = "contacts"
	collectionReviews   = "reviews"
)

// contactPageSize matches the largest page the admin contacts route serves.
const contactPageSize = 200

// Client talks to the API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var (
	_ dashboard.Store       = (*Client)(nil)
	_ gallery.Source        = (*Client)(nil)
	_ contactform.Sender    = (*Client)(nil)
	_ session.Authenticator = (*Client)(nil)
)

// New creates a Client for baseURL with its own cookie jar. httpClient may
// be nil; its Jar is replaced either way.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("client: base url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	hc := &http.Client{Timeout: 15 * time.Second}
	if httpClient != nil {
		copied := *httpClient
		hc = &copied
	}
	hc.Jar = jar
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), httpClient: hc}, nil
}

// do sends a request with an optional JSON body and decodes a JSON response
// into out when out is non-nil. Non-2xx responses become *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var e struct {
			Error string `json:"error"`
		}
		if json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&e) == nil {
			apiErr.Code = e.Error
		}
		return apiErr
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Auth
// ---------------------------------------------------------------------------

type sessionBody struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email"`
}

// CurrentUser asks the server who the session cookie belongs to.
func (c *Client) CurrentUser(ctx context.Context) (string, bool, error) {
	var s sessionBody
	if err := c.do(ctx, http.MethodGet, "/api/auth/session", nil, &s); err != nil {
		return "", false, &AuthError{Err: err}
	}
	return s.Email, s.Authenticated, nil
}

// SignIn exchanges credentials for a session cookie. A rejected pair is
// an AuthError wrapping ErrInvalidCredentials.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	var s sessionBody
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{"email": email, "password": password}, &s)
	if IsUnauthorized(err) {
		return "", &AuthError{Err: ErrInvalidCredentials}
	}
	if err != nil {
		return "", &AuthError{Err: err}
	}
	return s.Email, nil
}

// SignOut clears the session cookie.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil); err != nil {
		return &AuthError{Err: err}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Public reads
// ---------------------------------------------------------------------------

type itemsBody struct {
	Items []*model.PortfolioItem `json:"items"`
}

type reviewsBody struct {
	Reviews []*model.Review `json:"reviews"`
}

// Portfolio returns every portfolio item.
func (c *Client) Portfolio(ctx context.Context) ([]*model.PortfolioItem, error) {
	return c.listItems(ctx, "/api/portfolio")
}

// Featured returns the carousel items.
func (c *Client) Featured(ctx context.Context) ([]*model.PortfolioItem, error) {
	return c.listItems(ctx, "/api/portfolio/featured")
}

// Reviews returns every review.
func (c *Client) Reviews(ctx context.Context) ([]*model.Review, error) {
	return c.listReviews(ctx, "/api/reviews")
}

func (c *Client) listItems(ctx context.Context, path string) ([]*model.PortfolioItem, error) {
	var body itemsBody
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, &ReadError{Collection: collectionPortfolio, Err: err}
	}
	return body.Items, nil
}

func (c *Client) listReviews(ctx context.Context, path string) ([]*model.Review, error) {
	var body reviewsBody
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return nil, &ReadError{Collection: collectionReviews, Err: err}
	}
	return body.Reviews, nil
}

// SubmitContact sends the public contact form.
func (c *Client) SubmitContact(ctx context.Context, msg *model.ContactMessage) error {
	var out struct {
		ID string `json:"id"`
	}
	req := map[string]string{
		"name":    msg.Name,
		"email":   msg.Email,
		"phone":   msg.Phone,
		"date":    msg.Date,
		"message": msg.Message,
	}
	if err := c.do(ctx, http.MethodPost, "/api/contact", req, &out); err != nil {
		return &WriteError{Op: "create", Collection: collectionContacts, Err: err}
	}
	msg.ID = out.ID
	return nil
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

// ListPortfolio reads the portfolio through the admin API.
func (c *Client) ListPortfolio(ctx context.Context) ([]*model.PortfolioItem, error) {
	return c.listItems(ctx, "/api/admin/portfolio")
}

// ListReviews reads reviews through the admin API.
func (c *Client) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return c.listReviews(ctx, "/api/admin/reviews")
}

// ListContacts returns every inbox message newest first. The admin route
// serves at most contactPageSize messages per request, so pages are read
// by offset until one comes back short.
func (c *Client) ListContacts(ctx context.Context) ([]*model.ContactMessage, error) {
	messages := []*model.ContactMessage{}
	for offset := 0; ; offset += contactPageSize {
		var body struct {
			Messages []*model.ContactMessage `json:"messages"`
		}
		path := fmt.Sprintf("/api/admin/contacts?limit=%d&offset=%d", contactPageSize, offset)
		if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
			return nil, &ReadError{Collection: collectionContacts, Err: err}
		}
		messages = append(messages, body.Messages...)
		if len(body.Messages) < contactPageSize {
			return messages, nil
		}
	}
}

// CreatePortfolioItem adds an item; item.ID is set from the response.
func (c *Client) CreatePortfolioItem(ctx context.Context, item *model.PortfolioItem) error {
	var created model.PortfolioItem
	if err := c.do(ctx, http.MethodPost, "/api/admin/portfolio", item, &created); err != nil {
		return &WriteError{Op: "create", Collection: collectionPortfolio, Err: err}
	}
	item.ID = created.ID
	return nil
}

// CreateReview adds a review; review.ID is set from the response.
func (c *Client) CreateReview(ctx context.Context, review *model.Review) error {
	var created model.Review
	if err := c.do(ctx, http.MethodPost, "/api/admin/reviews", review, &created); err != nil {
		return &WriteError{Op: "create", Collection: collectionReviews, Err: err}
	}
	review.ID = created.ID
	return nil
}

// DeletePortfolioItem removes an item by id.
func (c *Client) DeletePortfolioItem(ctx context.Context, id string) error {
	return c.delete(ctx, collectionPortfolio, "/api/admin/portfolio/", id)
}

// DeleteContact removes an inbox message by id.
func (c *Client) DeleteContact(ctx context.Context, id string) error {
	return c.delete(ctx, collectionContacts, "/api/admin/contacts/", id)
}

// DeleteReview removes a review by id.
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.delete(ctx, collectionReviews, "/api/admin/reviews/", id)
}

func (c *Client) delete(ctx context.Context, collection, prefix, id string) error {
	if id == "" {
		return &WriteError{Op: "delete", Collection: collection, Err: errors.New("empty id")}
	}
	if err := c.do(ctx, http.MethodDelete, prefix+url.PathEscape(id), nil, nil); err != nil {
		return &WriteError{Op: "delete", Collection: collection, Err: err}
	}
	return nil
}
