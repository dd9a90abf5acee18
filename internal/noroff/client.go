// Package noroff is a typed client for the Noroff v2 API (auth, Holidaze venues, profiles, bookings).
package noroff

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"holidaze/internal/config"
	"holidaze/internal/lib/logger/sl"

	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

const headerAPIKey = "X-Noroff-API-Key"

type Client struct {
	baseURL  string
	apiKey   string
	http     *http.Client
	limiter  *rate.Limiter
	validate *validator.Validate
	log      *slog.Logger
}

func New(cfg config.API, log *slog.Logger) (*Client, error) {
	const op = "noroff.New"

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrMissingAPIKey)
	}

	limit := rate.Inf
	if cfg.RateLimit > 0 {
		limit = rate.Limit(cfg.RateLimit)
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.APIKey,
		http:     &http.Client{Timeout: cfg.Timeout},
		limiter:  rate.NewLimiter(limit, burst),
		validate: validator.New(),
		log:      log.With(slog.String("component", "noroff")),
	}, nil
}

type Meta struct {
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	IsFirstPage bool `json:"isFirstPage"`
	IsLastPage  bool `json:"isLastPage"`
	CurrentPage int  `json:"currentPage"`
	PageCount   int  `json:"pageCount"`
	TotalCount  int  `json:"totalCount"`
}

type envelope[T any] struct {
	Data T    `json:"data"`
	Meta Meta `json:"meta"`
}

// do sends the request and returns the raw body, or nil for empty and non-JSON answers.
func (c *Client) do(ctx context.Context, method, endpoint, token string, body any) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerAPIKey, c.apiKey)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log := c.log.With(slog.String("method", method), slog.String("endpoint", endpoint))
	log.Debug("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, raw)
		log.Warn("api error", slog.Int("status", resp.StatusCode), sl.Err(apiErr))
		return nil, apiErr
	}

	if resp.StatusCode == http.StatusNoContent ||
		len(bytes.TrimSpace(raw)) == 0 ||
		!strings.Contains(resp.Header.Get("Content-Type"), "application/json") {
		return nil, nil
	}

	return raw, nil
}

// exec runs a request whose response body is irrelevant.
func (c *Client) exec(ctx context.Context, method, endpoint, token string, body any) error {
	_, err := c.do(ctx, method, endpoint, token, body)
	return err
}

func one[T any](ctx context.Context, c *Client, method, endpoint, token string, body any) (*T, error) {
	raw, err := c.do(ctx, method, endpoint, token, body)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: errEmptyResponse}
	}

	var env envelope[T]
	if err = json.Unmarshal(raw, &env); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}

	if err = c.validate.Struct(env.Data); err != nil {
		return nil, &DecodeError{Endpoint: endpoint, Err: err}
	}

	return &env.Data, nil
}

// many decodes a list, dropping elements that fail to decode or validate.
// The returned count is the number of elements the API sent.
func many[T any](ctx context.Context, c *Client, endpoint, token string) ([]T, Meta, int, error) {
	raw, err := c.do(ctx, http.MethodGet, endpoint, token, nil)
	if err != nil {
		return nil, Meta{}, 0, err
	}
	if raw == nil {
		return nil, Meta{}, 0, nil
	}

	var env envelope[[]json.RawMessage]
	if err = json.Unmarshal(raw, &env); err != nil {
		return nil, Meta{}, 0, &DecodeError{Endpoint: endpoint, Err: err}
	}

	items := make([]T, 0, len(env.Data))
	for i, item := range env.Data {
		var v T
		if err = json.Unmarshal(item, &v); err == nil {
			err = c.validate.Struct(v)
		}
		if err != nil {
			c.log.Warn("dropping invalid item",
				slog.String("endpoint", endpoint),
				slog.Int("index", i),
				sl.Err(err),
			)
			continue
		}
		items = append(items, v)
	}

	return items, env.Meta, len(env.Data), nil
}
