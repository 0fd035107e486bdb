// Package client talks to the transliteration web API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jusunglee/cyrtranslit/internal/transliteration"
)

// ErrUnsupportedDirection is returned when the server rejects a direction
// the chosen standard cannot do (HTTP 422).
var ErrUnsupportedDirection = transliteration.ErrUnsupportedDirection

// APIError is any non-2xx response other than 422.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type ConvertRequest struct {
	Text      string `json:"text"`
	Standard  string `json:"standard"`
	Direction string `json:"direction,omitempty"`
}

type ConvertResult struct {
	ID        int64  `json:"id,omitempty"`
	Standard  string `json:"standard"`
	Direction string `json:"direction"`
	Result    string `json:"result"`
}

type Conversion struct {
	ID        int64  `json:"id"`
	Standard  string `json:"standard"`
	Direction string `json:"direction"`
	Input     string `json:"input"`
	Output    string `json:"output"`
	CreatedAt string `json:"created_at"`
}

func (c *Client) Standards(ctx context.Context) ([]transliteration.Info, error) {
	var resp struct {
		Data []transliteration.Info `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/standards", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) Convert(ctx context.Context, req ConvertRequest) (ConvertResult, error) {
	var out ConvertResult
	err := c.do(ctx, http.MethodPost, "/api/v1/convert", req, &out)
	return out, err
}

func (c *Client) Conversion(ctx context.Context, id int64) (Conversion, error) {
	var out Conversion
	err := c.do(ctx, http.MethodGet, "/api/v1/conversions/"+strconv.FormatInt(id, 10), nil, &out)
	return out, err
}

// Conversions returns one page of history, optionally for one standard.
func (c *Client) Conversions(ctx context.Context, standard string, page, limit int) ([]Conversion, int64, error) {
	q := url.Values{}
	if standard != "" {
		q.Set("standard", standard)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/v1/conversions"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp struct {
		Data       []Conversion `json:"data"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Data, resp.Pagination.Total, nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var r io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		r = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var e struct {
			Error  string `json:"error"`
			Status string `json:"status"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		msg := e.Error
		if msg == "" {
			msg = e.Status
		}
		if resp.StatusCode == http.StatusUnprocessableEntity {
			return fmt.Errorf("%w: %s", ErrUnsupportedDirection, msg)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
