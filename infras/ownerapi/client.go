package ownerapi

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=./mocks/client_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"salondash/config"
	"salondash/infras/otel"
	"salondash/shared/constant"
	"salondash/shared/failure"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	otelMethodAttribute = "http.method"
	otelPathAttribute   = "http.path"
	otelStatusAttribute = "http.status_code"
)

// SessionAccessor gives the client the bearer token of the current session and is told
// when the salon backend rejects it.
type SessionAccessor interface {
	Token(ctx context.Context) (string, error)
	OnUnauthorized(ctx context.Context)
}

// Request describes one call to the salon backend. Anonymous requests carry no bearer token.
type Request struct {
	Method    string
	Path      string
	Query     url.Values
	Body      any
	Anonymous bool
}

type Client interface {
	Do(ctx context.Context, req Request, out any) error
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	accessor   SessionAccessor
	metrics    *Metrics
	otel       otel.Otel
}

// NewHTTPClient builds the shared transport used by every session client.
func NewHTTPClient(cfg *config.Config) *http.Client {
	timeout := time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &http.Client{Timeout: timeout}
}

func NewClient(baseURL string, httpClient *http.Client, accessor SessionAccessor, metrics *Metrics, ot otel.Otel) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		accessor:   accessor,
		metrics:    metrics,
		otel:       ot,
	}
}

// Do sends req and decodes the response envelope into out. Data keys sit next to "ok" in the
// envelope, so out is decoded from the whole body.
func (c *HTTPClient) Do(ctx context.Context, req Request, out any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".ownerapi.Do")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(otelMethodAttribute, req.Method)
	scope.SetAttribute(otelPathAttribute, req.Path)

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return err
	}

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.observe(req.Method, req.Path, "error", time.Since(started))

		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("request %s %s: %w", req.Method, req.Path, ctxErr)
		}

		log.Error().Err(err).Str("method", req.Method).Str("path", req.Path).Msg("salon backend unreachable")

		return failure.BadGateway(constant.MessageNetworkError) //nolint:wrapcheck
	}
	defer resp.Body.Close()

	c.metrics.observe(req.Method, req.Path, strconv.Itoa(resp.StatusCode), time.Since(started))
	scope.SetAttribute(otelStatusAttribute, resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized && !req.Anonymous {
		if c.accessor != nil {
			c.accessor.OnUnauthorized(ctx)
		}

		return failure.Unauthorized(constant.MessageSessionExpired) //nolint:wrapcheck
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return failure.TooManyRequests(constant.MessageRateLimited) //nolint:wrapcheck
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure.BadGateway(fmt.Sprintf("failed to read response: %v", err)) //nolint:wrapcheck
	}

	var env envelope
	if len(bytes.TrimSpace(body)) > 0 {
		if err = json.Unmarshal(body, &env); err != nil {
			log.Error().Err(err).Int("status", resp.StatusCode).Str("path", req.Path).Msg("salon backend sent a malformed body")

			return failure.BadGateway(fmt.Sprintf("unexpected response from server (status %d)", resp.StatusCode)) //nolint:wrapcheck
		}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices || !env.succeeded() {
		return env.failure(resp.StatusCode)
	}

	if out == nil || len(body) == 0 {
		return nil
	}

	if err = json.Unmarshal(body, out); err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("failed to decode salon backend response")

		return failure.BadGateway(fmt.Sprintf("unexpected response shape: %v", err)) //nolint:wrapcheck
	}

	return nil
}

func (c *HTTPClient) newRequest(ctx context.Context, req Request) (*http.Request, error) {
	endpoint := c.baseURL + req.Path
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, failure.InternalError(fmt.Errorf("failed to encode request body: %w", err)) //nolint:wrapcheck
		}

		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, failure.InternalError(fmt.Errorf("failed to create request: %w", err)) //nolint:wrapcheck
	}

	httpReq.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)
	if body != nil {
		httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	}

	if req.Anonymous {
		return httpReq, nil
	}

	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set(constant.RequestHeaderAuthorization, constant.BearerPrefix+token)

	return httpReq, nil
}

func (c *HTTPClient) token(ctx context.Context) (string, error) {
	if c.accessor == nil {
		return "", failure.Unauthorized(constant.MessageSessionExpired) //nolint:wrapcheck
	}

	token, err := c.accessor.Token(ctx)
	if err != nil {
		if failure.IsUnauthorized(err) {
			return "", err
		}

		return "", fmt.Errorf("failed to read session token: %w", err)
	}

	if token == "" {
		return "", failure.Unauthorized(constant.MessageSessionExpired) //nolint:wrapcheck
	}

	return token, nil
}

// IsNetworkError reports whether err came from an unreachable backend.
func IsNetworkError(err error) bool {
	var fail *failure.Failure

	return errors.As(err, &fail) && fail.Code == http.StatusBadGateway && fail.Message == constant.MessageNetworkError
}
