package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bookhive/lending-service/config"
	"github.com/bookhive/lending-service/internal/service"
	"github.com/bookhive/lending-service/pkg/cbreaker"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var _ service.PaymentGateway = (*Client)(nil)

// Client talks to the external payment provider over HTTP. Transport faults
// and non-200 responses come back as errors; a decline is a clean false.
type Client struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.Payment
	cb     cbreaker.CircuitBreaker
}

func NewClient(log *zap.Logger, cfg config.Payment) *Client {
	return &Client{
		log:    log.Named("payments"),
		client: &http.Client{Timeout: cfg.Timeout},
		cfg:    cfg,
		cb:     cbreaker.New(10, time.Second*30, 0.5, 3),
	}
}

type chargeRequest struct {
	PatronID string  `json:"patronId"`
	Amount   float64 `json:"amount"`
}

type refundRequest struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
}

type providerResponse struct {
	Approved      bool   `json:"approved"`
	TransactionID string `json:"transactionId,omitempty"`
}

func (c *Client) ProcessPayment(ctx context.Context, patronID string, amount float64) (bool, error) {
	var resp providerResponse
	if err := c.cb.Call(func() error {
		return c.post(ctx, "/api/v1/charges", chargeRequest{PatronID: patronID, Amount: amount}, &resp)
	}); err != nil {
		return false, err
	}
	c.log.Debug("charge processed",
		zap.String("transactionId", resp.TransactionID),
		zap.Bool("approved", resp.Approved))
	return resp.Approved, nil
}

func (c *Client) RefundPayment(ctx context.Context, transactionID string, amount float64) (bool, error) {
	var resp providerResponse
	if err := c.cb.Call(func() error {
		return c.post(ctx, "/api/v1/refunds", refundRequest{TransactionID: transactionID, Amount: amount}, &resp)
	}); err != nil {
		return false, err
	}
	return resp.Approved, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	b := bytes.NewBuffer(nil)
	if err := json.NewEncoder(b).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("http://%s%s", net.JoinHostPort(c.cfg.Host, c.cfg.Port), path), b)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("payment provider status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
