package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/alovak/testcards/server/models"
)

// Client talks to a running card server.
type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

func (c *Client) Types(ctx context.Context) ([]models.CardType, error) {
	var types []models.CardType
	if err := c.do(ctx, http.MethodGet, c.Base+"/types", http.StatusOK, &types); err != nil {
		return nil, fmt.Errorf("types: %w", err)
	}
	return types, nil
}

// IssueCards requests a JSON batch.
func (c *Client) IssueCards(ctx context.Context, req models.IssueCards) (*models.Batch, error) {
	u, err := url.Parse(c.Base + "/cards")
	if err != nil {
		return nil, fmt.Errorf("parse base: %w", err)
	}
	q := u.Query()
	if req.Type != "" {
		q.Set("type", req.Type)
	}
	if req.Count > 0 {
		q.Set("count", strconv.Itoa(req.Count))
	}
	if req.Years > 0 {
		q.Set("years", strconv.Itoa(req.Years))
	}
	if req.Unique {
		q.Set("unique", "true")
	}
	u.RawQuery = q.Encode()

	batch := &models.Batch{}
	if err := c.do(ctx, http.MethodPost, u.String(), http.StatusCreated, batch); err != nil {
		return nil, fmt.Errorf("issue cards: %w", err)
	}
	return batch, nil
}

// Validate checks number, and cardFace when it is not empty.
func (c *Client) Validate(ctx context.Context, number, cardFace string) (*models.Validation, error) {
	u, err := url.Parse(c.Base + "/validate")
	if err != nil {
		return nil, fmt.Errorf("parse base: %w", err)
	}
	q := u.Query()
	q.Set("number", number)
	if cardFace != "" {
		q.Set("expiry", cardFace)
	}
	u.RawQuery = q.Encode()

	res := &models.Validation{}
	if err := c.do(ctx, http.MethodGet, u.String(), http.StatusOK, res); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return res, nil
}

func (c *Client) do(ctx context.Context, method, target string, want int, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
