// Package directory talks to the external user-directory service over a
// dummyjson-compatible HTTP contract. The service is a public mock: write
// calls report success but their effects are not guaranteed to be visible
// on a later List. Callers treat it as an unreliable collaborator behind
// this narrow interface and commit local state only on reported success.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"cema-admin/internal/domain"
)

// seedLimit caps how many directory records seed the user collection.
const seedLimit = 10

type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *log.Logger
}

func New(baseURL string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type CreateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

type UpdateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type listResponse struct {
	Users []struct {
		ID        int64  `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	} `json:"users"`
}

// List fetches directory records and maps them to user accounts. Only the
// first ten are taken, and the first is always relabeled admin regardless
// of what the directory says.
func (c *Client) List(ctx context.Context) ([]domain.UserAccount, error) {
	body, err := c.do(ctx, http.MethodGet, "/users", nil)
	if err != nil {
		return nil, err
	}

	var resp listResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	records := resp.Users
	if len(records) > seedLimit {
		records = records[:seedLimit]
	}
	users := make([]domain.UserAccount, 0, len(records))
	for i, u := range records {
		role := domain.RoleClient
		if i == 0 {
			role = domain.RoleAdmin
		}
		users = append(users, domain.UserAccount{
			ID:       u.ID,
			Name:     strings.TrimSpace(u.FirstName + " " + u.LastName),
			Email:    u.Email,
			Role:     role,
			JoinDate: "2024-01-01",
			Status:   "active",
		})
	}
	return users, nil
}

func (c *Client) Create(ctx context.Context, in CreateRequest) error {
	_, err := c.do(ctx, http.MethodPost, "/users/add", in)
	return err
}

func (c *Client) Update(ctx context.Context, id int64, in UpdateRequest) error {
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), in)
	return err
}

func (c *Client) PatchRole(ctx context.Context, id int64, role string) error {
	_, err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", id), map[string]string{"role": role})
	return err
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	return err
}

// do issues one request. Any transport error or non-2xx status maps to
// ErrRemoteUnavailable; success bodies are logged and returned without
// further validation.
func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %v: %w", method, path, err, domain.ErrRemoteUnavailable)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: read body: %v: %w", method, path, err, domain.ErrRemoteUnavailable)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s %s: status %d: %w", method, path, resp.StatusCode, domain.ErrRemoteUnavailable)
	}

	c.logger.Printf("directory: %s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(raw))
	return raw, nil
}
