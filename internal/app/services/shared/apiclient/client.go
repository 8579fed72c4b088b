package apiclient

import (
	"bytes"
	"context"
	"docai-portal/internal/app/contracts"
	"docai-portal/internal/pkg/constvars"
	"docai-portal/internal/pkg/exceptions"
	"docai-portal/internal/pkg/utils"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Doer sends one HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware wraps a Doer with cross-cutting behaviour.
type Middleware func(next Doer) Doer

type Config struct {
	BaseURL              string
	HTTPClient           Doer
	Storage              contracts.DurableStorage
	Notifier             contracts.Notifier
	Logger               *zap.Logger
	MaxRequestsPerSecond int
}

type Option func(*options)

type options struct {
	extra []Middleware
}

// WithMiddleware adds a middleware innermost, right above the transport.
func WithMiddleware(middleware Middleware) Option {
	return func(o *options) {
		o.extra = append(o.extra, middleware)
	}
}

// Client talks to the REST backend. The middleware chain is fixed at
// construction: error handling outermost, then the bearer token, then the
// optional rate limit and extras.
type Client struct {
	baseURL string
	doer    Doer
	log     *zap.Logger
}

func New(cfg Config, opts ...Option) *Client {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	chain := []Middleware{
		ErrorHandling(cfg.Storage, cfg.Notifier, logger),
		BearerToken(cfg.Storage),
	}
	if cfg.MaxRequestsPerSecond > 0 {
		chain = append(chain, RateLimit(cfg.MaxRequestsPerSecond))
	}
	chain = append(chain, o.extra...)

	doer := httpClient
	for i := len(chain) - 1; i >= 0; i-- {
		doer = chain[i](doer)
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		doer:    doer,
		log:     logger,
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

// do sends a JSON request and decodes a JSON response into out when out is
// not nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.log.Debug("apiclient.Client.do called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reader)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	return c.send(req, path, out)
}

// doMultipart uploads a file along with plain form fields.
func (c *Client) doMultipart(ctx context.Context, path string, fields [][2]string, fileField, fileName, contentType string, file io.Reader, out interface{}) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.log.Debug("apiclient.Client.doMultipart called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
	)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if contentType == "" {
		contentType = constvars.MIMEOctetStream
	}
	header := make(textproto.MIMEHeader)
	header.Set(constvars.HeaderContentDisposition, fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fileField, escapeQuotes(fileName)))
	header.Set(constvars.HeaderContentType, contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	for _, field := range fields {
		if err := writer.WriteField(field[0], field[1]); err != nil {
			return exceptions.ErrCreateHTTPRequest(err)
		}
	}
	if err := writer.Close(); err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), &body)
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, writer.FormDataContentType())

	return c.send(req, path, out)
}

// download fetches a binary body.
func (c *Client) download(ctx context.Context, path string) ([]byte, http.Header, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, nil), nil)
	if err != nil {
		return nil, nil, exceptions.ErrCreateHTTPRequest(err)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, exceptions.ErrDecodeResponse(err, path)
	}
	return content, resp.Header, nil
}

func (c *Client) send(req *http.Request, path string, out interface{}) error {
	resp, err := c.doer.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return exceptions.ErrDecodeResponse(err, path)
	}

	c.log.Debug("apiclient.Client.send succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(req.Context())),
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
	)
	return nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func pageQuery(page, limit int) url.Values {
	query := url.Values{}
	if page > 0 {
		query.Set("page", itoa(page))
	}
	if limit > 0 {
		query.Set("limit", itoa(limit))
	}
	return query
}
