// Package payment checks whether a token's DEX listing order has been paid.
package payment

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://api.dexscreener.com/orders/v1"
	DefaultChain   = "solana"
)

// User-facing messages for the three failure paths.
const (
	MsgEmptyIdentifier = "Please enter a valid Solana token address."
	MsgRejectedDefault = "Something went wrong"
	MsgFetchFailed     = "Failed to fetch token information. Please try again later."
)

type Status int

const (
	StatusError Status = iota
	StatusPaid
	StatusNotPaid
)

func (s Status) String() string {
	switch s {
	case StatusPaid:
		return "Paid"
	case StatusNotPaid:
		return "Not Paid"
	default:
		return "Error"
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of one check. Message is only set for StatusError.
type Result struct {
	Status     Status    `json:"status"`
	Message    string    `json:"error,omitempty"`
	Identifier string    `json:"identifier"`
	CheckedAt  time.Time `json:"checked_at"`
}

// OK reports whether the check reached a Paid/Not Paid decision.
func (r Result) OK() bool {
	return r.Status != StatusError
}

// Doer is the part of *http.Client the checker needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Checker struct {
	baseURL string
	chain   string
	client  Doer
	logger  *zap.Logger
	now     func() time.Time
}

type Option func(*Checker)

func WithBaseURL(u string) Option {
	return func(c *Checker) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

func WithChain(chain string) Option {
	return func(c *Checker) {
		if chain != "" {
			c.chain = chain
		}
	}
}

func WithClient(d Doer) Option {
	return func(c *Checker) {
		if d != nil {
			c.client = d
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		baseURL: DefaultBaseURL,
		chain:   DefaultChain,
		client:  http.DefaultClient,
		logger:  zap.NewNop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL queried for identifier.
func (c *Checker) Endpoint(identifier string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, c.chain, url.PathEscape(identifier))
}

// Check issues exactly one GET for a non-empty identifier and maps the answer
// to Paid, Not Paid or Error. It never retries and caches nothing.
func (c *Checker) Check(ctx context.Context, identifier string) Result {
	identifier = strings.TrimSpace(identifier)
	res := Result{Identifier: identifier, CheckedAt: c.now()}

	if identifier == "" {
		res.Message = MsgEmptyIdentifier
		return res
	}

	log := c.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("identifier", identifier),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Endpoint(identifier), nil)
	if err != nil {
		log.Warn("Failed to build request", zap.Error(err))
		res.Message = MsgFetchFailed
		return res
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn("Orders request failed", zap.Error(err))
		res.Message = MsgFetchFailed
		return res
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Warn("Failed to read orders response", zap.Int("status_code", resp.StatusCode), zap.Error(err))
		res.Message = MsgFetchFailed
		return res
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, ok := rejectionMessage(body)
		if !ok {
			log.Warn("Undecodable error response", zap.Int("status_code", resp.StatusCode))
			res.Message = MsgFetchFailed
			return res
		}
		if msg == "" {
			msg = MsgRejectedDefault
		}
		log.Info("Orders request rejected", zap.Int("status_code", resp.StatusCode), zap.String("message", msg))
		res.Message = "Error: " + msg
		return res
	}

	orders, err := decodeOrders(body)
	if errors.Is(err, errNullOrder) && IsPaid(orders) {
		err = nil
	}
	if err != nil {
		log.Warn("Undecodable orders response", zap.Int("status_code", resp.StatusCode), zap.Error(err))
		res.Message = MsgFetchFailed
		return res
	}

	if IsPaid(orders) {
		res.Status = StatusPaid
	} else {
		res.Status = StatusNotPaid
	}
	log.Debug("Payment status resolved", zap.Int("orders", len(orders)), zap.Stringer("status", res.Status))
	return res
}
