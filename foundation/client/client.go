// Package client provides programmatic access to the classroom service API.
// The classctl tooling is built on top of it.
package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// Client wraps HTTP access to a classroom service.
type Client struct {
	rest *resty.Client
}

// New constructs a client for the service at the specified base url.
func New(url string) *Client {
	rest := resty.New().
		SetBaseURL(url).
		SetHeader("Content-Type", "application/json")

	return &Client{rest: rest}
}

// RegisterStudent adds a student to the classroom registry. It reports
// whether the student was newly registered.
func (c *Client) RegisterStudent(ctx context.Context, name string) (bool, error) {
	var result struct {
		Name       string `json:"name"`
		Registered bool   `json:"registered"`
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{"name": name}).
		SetResult(&result).
		SetError(&errorResponse{}).
		Post("/v1/students")
	if err != nil {
		return false, err
	}
	if resp.IsError() {
		return false, toError(resp)
	}

	return result.Registered, nil
}

// Students returns the set of registered students.
func (c *Client) Students(ctx context.Context) ([]string, error) {
	var students []string

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&students).
		SetError(&errorResponse{}).
		Get("/v1/students")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, toError(resp)
	}

	return students, nil
}

// AddCertificate stages a certificate for the next mined block. It returns
// the number of records now pending.
func (c *Client) AddCertificate(ctx context.Context, student string, course string) (int, error) {
	var result struct {
		Status  string `json:"status"`
		Pending int    `json:"pending"`
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{"student": student, "course": course}).
		SetResult(&result).
		SetError(&errorResponse{}).
		Post("/v1/certificates")
	if err != nil {
		return 0, err
	}
	if resp.IsError() {
		return 0, toError(resp)
	}

	return result.Pending, nil
}

// Mine asks the service to mine the staged certificates into a new block.
// It reports false without error when nothing was staged.
func (c *Client) Mine(ctx context.Context) (Block, bool, error) {
	var block Block

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&block).
		SetError(&errorResponse{}).
		Post("/v1/mine")
	if err != nil {
		return Block{}, false, err
	}
	if resp.IsError() {
		return Block{}, false, toError(resp)
	}

	// The service answers 200 with a status message when the buffer was
	// empty, and 201 with the new block when it mined one.
	if resp.StatusCode() != http.StatusCreated {
		return Block{}, false, nil
	}

	return block, true, nil
}

// Award issues one coin from the teacher account to a student.
func (c *Client) Award(ctx context.Context, student string, reason string) (Block, error) {
	var block Block

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(map[string]string{"student": student, "reason": reason}).
		SetResult(&block).
		SetError(&errorResponse{}).
		Post("/v1/awards")
	if err != nil {
		return Block{}, err
	}
	if resp.IsError() {
		return Block{}, toError(resp)
	}

	return block, nil
}

// SendCoins moves coins between two registered students.
func (c *Client) SendCoins(ctx context.Context, from string, to string, amount uint, note string) (Block, error) {
	var block Block

	body := struct {
		From   string `json:"from"`
		To     string `json:"to"`
		Amount uint   `json:"amount"`
		Note   string `json:"note"`
	}{
		From:   from,
		To:     to,
		Amount: amount,
		Note:   note,
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&block).
		SetError(&errorResponse{}).
		Post("/v1/transfers")
	if err != nil {
		return Block{}, err
	}
	if resp.IsError() {
		return Block{}, toError(resp)
	}

	return block, nil
}

// Chain returns every block in the chain.
func (c *Client) Chain(ctx context.Context) ([]Block, error) {
	var blocks []Block

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&blocks).
		SetError(&errorResponse{}).
		Get("/v1/chain")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, toError(resp)
	}

	return blocks, nil
}

// Balances returns the balances for every participant on the chain.
func (c *Client) Balances(ctx context.Context) ([]Balance, error) {
	var balances []Balance

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&balances).
		SetError(&errorResponse{}).
		Get("/v1/balances")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, toError(resp)
	}

	return balances, nil
}

// Balance returns the balance for one participant.
func (c *Client) Balance(ctx context.Context, account string) (Balance, error) {
	var balance Balance

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&balance).
		SetError(&errorResponse{}).
		Get(fmt.Sprintf("/v1/balances/%s", account))
	if err != nil {
		return Balance{}, err
	}
	if resp.IsError() {
		return Balance{}, toError(resp)
	}

	return balance, nil
}

// Leaderboard returns every participant ordered by balance.
func (c *Client) Leaderboard(ctx context.Context) ([]Standing, error) {
	var standings []Standing

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&standings).
		SetError(&errorResponse{}).
		Get("/v1/leaderboard")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, toError(resp)
	}

	return standings, nil
}

// VerifyCertificate returns every certificate issued to a student.
func (c *Client) VerifyCertificate(ctx context.Context, student string) ([]Proof, error) {
	var proofs []Proof

	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&proofs).
		SetError(&errorResponse{}).
		Get(fmt.Sprintf("/v1/certificates/verify/%s", student))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, toError(resp)
	}

	return proofs, nil
}

// =============================================================================

// toError converts a non-2xx response into an error carrying the service's
// own message when one was provided.
func toError(resp *resty.Response) error {
	if er, ok := resp.Error().(*errorResponse); ok && er.Error != "" {
		return fmt.Errorf("classroom service: %s", er.Error)
	}

	return fmt.Errorf("classroom service: unexpected status %s", resp.Status())
}
