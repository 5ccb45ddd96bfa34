package apiclient

// Package apiclient is the single configured request pipeline for every
// upstream CRM call. It owns the base URL, the fixed request timeout, and
// the two interceptor stages: outbound (attach the bearer token read from
// the persisted session store) and inbound (normalize errors; on an
// upstream 401 clear the persisted token and signal authorization expiry
// to the application shell).

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/auroracrm/console/internal/errors"
	"github.com/auroracrm/console/internal/ports"
)

// DefaultTimeout is the fixed per-request timeout. Requests exceeding it
// fail fast rather than hang.
const DefaultTimeout = 15 * time.Second

// AuthExpiredFunc is invoked by the inbound interceptor after an upstream
// 401 has cleared the persisted token. It runs exactly once per failing
// call and must be safe to invoke repeatedly (concurrent calls may each
// receive a 401).
type AuthExpiredFunc func(ctx context.Context, sid string)

// Options configures a Client.
type Options struct {
	// BaseURL is the upstream API root, e.g. "https://crm.example.com/api/".
	BaseURL string
	// Tokens is the persisted token store the outbound interceptor reads
	// from. Nil disables token attachment (all calls anonymous).
	Tokens ports.TokenStore
	// OnAuthExpired is the expiry signal hook. Optional.
	OnAuthExpired AuthExpiredFunc
	// HTTPClient overrides the default 15s-timeout client. For tests.
	HTTPClient *http.Client
	// Logger for silent-failure and expiry logging. Defaults to slog.Default.
	Logger *slog.Logger
}

// Client is a shared upstream request pipeline. One Client exists per
// upstream base URL; all feature adapters go through it.
type Client struct {
	base          string
	http          *http.Client
	tokens        ports.TokenStore
	onAuthExpired AuthExpiredFunc
	logger        *slog.Logger
}

// New constructs a Client. The base URL must be absolute.
func New(opts Options) (*Client, error) {
	base := strings.TrimSuffix(opts.BaseURL, "/")
	u, err := url.Parse(base)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("invalid base URL %q", opts.BaseURL)
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		base:          base,
		http:          hc,
		tokens:        opts.Tokens,
		onAuthExpired: opts.OnAuthExpired,
		logger:        logger,
	}, nil
}

// Get issues a GET with optional query parameters and decodes the JSON
// response into out (which may be nil).
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, request{method: http.MethodGet, path: path, query: query}, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, request{method: http.MethodPost, path: path, body: body}, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, request{method: http.MethodPut, path: path, body: body}, out)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, request{method: http.MethodPatch, path: path, body: body}, out)
}

// request groups the pieces of one upstream call.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
}

func (c *Client) doJSON(ctx context.Context, req request, out any) error {
	var rdr io.Reader
	if req.body != nil {
		buf, err := json.Marshal(req.body)
		if err != nil {
			return errors.Wrap(err, errors.ErrCodeInternal, "encode request body")
		}
		rdr = bytes.NewReader(buf)
	}

	httpReq, err := c.newRequest(ctx, req, rdr)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.execute(httpReq, out)
}

// PostMultipart issues a multipart/form-data POST built by fill and
// decodes the JSON response into out.
func (c *Client) PostMultipart(ctx context.Context, path string, fill func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := fill(mw); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "build multipart body")
	}
	if err := mw.Close(); err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "finalize multipart body")
	}

	httpReq, err := c.newRequest(ctx, request{method: http.MethodPost, path: path}, &buf)
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())

	return c.execute(httpReq, out)
}

// newRequest builds the http.Request and runs the outbound interceptor:
// read the current token from the persisted store (not from the session
// service) and attach it as a bearer header when present.
func (c *Client) newRequest(ctx context.Context, req request, body io.Reader) (*http.Request, error) {
	u := c.base + "/" + strings.TrimPrefix(req.path, "/")
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "build request")
	}

	if c.tokens != nil {
		sid := SessionIDFrom(ctx)
		if token, ok := c.tokens.Token(ctx, sid); ok && token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return httpReq, nil
}

// execute runs the call and the inbound interceptor: 2xx passes through,
// a 401 clears the persisted token and signals expiry, everything else
// becomes a normalized upstream error exposing the server's message.
func (c *Client) execute(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		// No response was received: surface the raw transport error text.
		return errors.Wrap(err, errors.ErrCodeUpstream, transportMessage(err))
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.WarnContext(req.Context(), "close response body", "error", cerr)
		}
	}()

	body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode == http.StatusUnauthorized {
		return c.expireAuthorization(req.Context())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Upstream(resp.StatusCode, bodyMessage(body, resp.StatusCode))
	}

	if readErr != nil {
		return errors.Wrap(readErr, errors.ErrCodeUpstream, "read response body")
	}
	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrap(err, errors.ErrCodeUpstream, "malformed response body")
	}
	return nil
}

// expireAuthorization clears the persisted token for the calling session
// and fires the expiry hook. Runs once per failing call; the hook must
// tolerate repeats from concurrent 401s.
func (c *Client) expireAuthorization(ctx context.Context) error {
	sid := SessionIDFrom(ctx)
	if c.tokens != nil {
		c.tokens.RemoveToken(ctx, sid)
	}
	if c.onAuthExpired != nil {
		c.onAuthExpired(ctx, sid)
	}
	c.logger.InfoContext(ctx, "authorization expired", "session", sid)
	return errors.AuthExpired()
}

// maxErrorBody bounds how much of a response body is read for message
// extraction.
const maxErrorBody = 1 << 20

const bodyMessageExpr = `message || error || detail || data.message`

// bodyMessage extracts a human-readable message from an upstream error
// body, falling back to a generic status line.
func bodyMessage(body []byte, status int) string {
	if len(body) > 0 {
		var decoded any
		if err := json.Unmarshal(body, &decoded); err == nil {
			if v, err := jmespath.Search(bodyMessageExpr, decoded); err == nil {
				if msg, ok := v.(string); ok && msg != "" {
					return msg
				}
			}
		}
	}
	return fmt.Sprintf("request failed with status %d", status)
}

// transportMessage strips the url.Error wrapper noise down to the cause.
func transportMessage(err error) string {
	var uerr *url.Error
	if ok := stderrors.As(err, &uerr); ok && uerr.Err != nil {
		return uerr.Err.Error()
	}
	return err.Error()
}
