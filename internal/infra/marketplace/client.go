package marketplace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"wedding-console/internal/infra"
	"wedding-console/internal/pkg/clock"
	"wedding-console/internal/pkg/config"
	"wedding-console/internal/pkg/errs"
)

// TokenCookieName is the cookie the marketplace reads its JWT from.
const TokenCookieName = "access_token"

// Client talks to the marketplace REST API, which owns accounts, catalogs,
// bookings and payments.
type Client struct {
	baseURL string
	hc      *http.Client
	clock   clock.Clock
	logger  *slog.Logger
}

func NewClient(cfg config.MarketplaceConfig, clk clock.Clock, logger *slog.Logger) *Client {
	return NewClientWithHTTP(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, clk, logger)
}

func NewClientWithHTTP(baseURL string, hc *http.Client, clk clock.Clock, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      hc,
		clock:   clk,
		logger:  logger,
	}
}

type request struct {
	method string
	path   string
	token  string
	body   any
}

// do sends the request and decodes a 2xx JSON body into out (when non-nil).
// The response is returned with its body already closed so callers can read
// headers and cookies.
func (c *Client) do(ctx context.Context, r request, out any) (*http.Response, error) {
	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to encode marketplace request", err, infra.KindUpstreamFailure)
		}
		body = bytes.NewReader(buf)
	}

	hr, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, body)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build marketplace request", err, infra.KindUpstreamFailure)
	}

	hr.Header.Set("Accept", "application/json")
	if r.body != nil {
		hr.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		hr.AddCookie(&http.Cookie{Name: TokenCookieName, Value: r.token})
	}

	hresp, err := c.hc.Do(hr)
	if err != nil {
		c.logger.Error("marketplaceへのリクエストに失敗しました",
			"method", r.method,
			"path", r.path,
			"error", err.Error())
		return nil, infra.WrapRepoErr("marketplace request failed", err, infra.KindUpstreamFailure)
	}
	defer hresp.Body.Close()

	respBody, err := io.ReadAll(hresp.Body)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read marketplace response", err, infra.KindUpstreamFailure)
	}

	if hresp.StatusCode < 200 || hresp.StatusCode > 299 {
		return hresp, c.statusError(r, hresp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 && hresp.StatusCode != http.StatusNoContent {
		if err := json.Unmarshal(respBody, out); err != nil {
			return hresp, infra.WrapRepoErr("failed to decode marketplace response", err, infra.KindUpstreamFailure)
		}
	}

	return hresp, nil
}

func (c *Client) statusError(r request, status int, body []byte) error {
	detail := parseDetail(body)

	var kind infra.RepositoryErrorKind
	switch {
	case status == http.StatusUnauthorized:
		kind = infra.KindUpstreamUnauthorized
	case status == http.StatusForbidden:
		kind = infra.KindUpstreamForbidden
	case status == http.StatusNotFound:
		kind = infra.KindNotFound
	case status >= 400 && status < 500:
		kind = infra.KindUpstreamRejected
	default:
		kind = infra.KindUpstreamFailure
	}

	c.logger.Warn("marketplaceがエラーを返しました",
		"method", r.method,
		"path", r.path,
		"status", status,
		"detail", detail)

	cause := errs.WithDetail(errs.New(http.StatusText(status)), detail)
	return infra.WrapRepoErr(fmt.Sprintf("marketplace %s %s returned %d", r.method, r.path, status), cause, kind)
}

// parseDetail reads the marketplace's {"detail": ...} body. Detail is either
// a message or a list of field validation errors.
func parseDetail(body []byte) string {
	var env struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &env); err != nil || len(env.Detail) == 0 {
		return strings.TrimSpace(string(body))
	}

	var msg string
	if err := json.Unmarshal(env.Detail, &msg); err == nil {
		return msg
	}

	var items []struct {
		Loc []any  `json:"loc"`
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(env.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, it := range items {
			if len(it.Loc) > 0 {
				msgs = append(msgs, fmt.Sprintf("%v: %s", it.Loc[len(it.Loc)-1], it.Msg))
				continue
			}
			msgs = append(msgs, it.Msg)
		}
		return strings.Join(msgs, "; ")
	}

	return string(env.Detail)
}
