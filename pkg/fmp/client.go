// Package fmp is a client for the Financial Modeling Prep REST API. Every
// endpoint is described by a row of the catalog; responses are either
// returned untouched or run through the frame normalization pipeline.
package fmp

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/seenimoa/fmpkit/internal/endpoint"
	"github.com/seenimoa/fmpkit/internal/infra"
	"github.com/seenimoa/fmpkit/pkg/frame"
)

const (
	DefaultBaseURLV3 = "https://financialmodelingprep.com/api/v3/"
	DefaultBaseURLV4 = "https://financialmodelingprep.com/api/v4/"

	userAgent = "fmpkit"
)

// Config is the explicit client configuration.
type Config struct {
	APIKey     string
	BaseURLV3  string
	BaseURLV4  string
	OutputPath string        // default directory for saved tables
	Timeout    time.Duration // 0 keeps the HTTP client default
	RateLimit  float64       // requests per second, 0 disables pacing
}

type settings struct {
	cfg        Config
	httpClient *http.Client
	logger     *zerolog.Logger
	registry   *endpoint.Registry
}

// Option customizes a Client.
type Option func(*settings)

// WithBaseURLs overrides the v3 and v4 base URLs. Empty values are ignored.
func WithBaseURLs(v3, v4 string) Option {
	return func(s *settings) {
		if v3 != "" {
			s.cfg.BaseURLV3 = v3
		}
		if v4 != "" {
			s.cfg.BaseURLV4 = v4
		}
	}
}

// WithHTTPClient sets the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option { return func(s *settings) { s.httpClient = c } }

func WithTimeout(d time.Duration) Option { return func(s *settings) { s.cfg.Timeout = d } }

func WithRateLimit(perSecond float64) Option { return func(s *settings) { s.cfg.RateLimit = perSecond } }

// WithLogger sets the logger used when the request context carries none.
func WithLogger(l zerolog.Logger) Option { return func(s *settings) { s.logger = &l } }

func WithOutputPath(dir string) Option { return func(s *settings) { s.cfg.OutputPath = dir } }

// WithRegistry replaces the built-in catalog.
func WithRegistry(r *endpoint.Registry) Option { return func(s *settings) { s.registry = r } }

// Client talks to the FMP API. It is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURLs   map[endpoint.Version]string
	http       *resty.Client
	limiter    *infra.RateLimiter
	registry   *endpoint.Registry
	logger     zerolog.Logger
	outputPath string
}

// New creates a client with default settings and the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	return NewFromConfig(Config{APIKey: apiKey}, opts...)
}

// NewFromConfig creates a client from an explicit configuration. Options are
// applied on top of cfg.
func NewFromConfig(cfg Config, opts ...Option) (*Client, error) {
	s := &settings{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	cfg = s.cfg

	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.BaseURLV3 == "" {
		cfg.BaseURLV3 = DefaultBaseURLV3
	}
	if cfg.BaseURLV4 == "" {
		cfg.BaseURLV4 = DefaultBaseURLV4
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = "."
	}

	c := &Client{
		apiKey: cfg.APIKey,
		baseURLs: map[endpoint.Version]string{
			endpoint.V3: strings.TrimRight(cfg.BaseURLV3, "/"),
			endpoint.V4: strings.TrimRight(cfg.BaseURLV4, "/"),
		},
		http: infra.NewHTTPClient(infra.HTTPOptions{
			Timeout:   cfg.Timeout,
			Client:    s.httpClient,
			UserAgent: userAgent,
		}),
		limiter:    infra.NewRateLimiter(cfg.RateLimit, 1),
		registry:   s.registry,
		logger:     zerolog.Nop(),
		outputPath: cfg.OutputPath,
	}
	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	if s.logger != nil {
		c.logger = *s.logger
	}
	return c, nil
}

// Registry returns the endpoint registry used by the client.
func (c *Client) Registry() *endpoint.Registry { return c.registry }

// Endpoint looks up a catalog entry by name.
func (c *Client) Endpoint(name string) (Endpoint, error) { return c.registry.Get(name) }

// Endpoints lists the catalog sorted by name.
func (c *Client) Endpoints() []Endpoint { return c.registry.List() }

// --- Response shapes ---

// Raw returns the response body untouched.
func (c *Client) Raw(ctx context.Context, name string, params QueryParams) (json.RawMessage, error) {
	ep, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}
	body, err := c.fetch(ctx, ep, params)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// Table fetches a table or record endpoint and runs it through the
// normalization pipeline. The endpoint's index, ignore, transpose and key
// mode defaults apply first; opts override them. Saved tables default to
// the client's output path and the endpoint name as the file name.
func (c *Client) Table(ctx context.Context, name string, params QueryParams, opts ...frame.Option) (*frame.Table, error) {
	ep, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}
	if ep.Shape == endpoint.ShapeRaw {
		return nil, fmt.Errorf("%s returns %s data: %w", ep.Name, ep.Shape, ErrShapeMismatch)
	}
	ctx = c.withLogger(ctx)

	records, err := c.records(ctx, ep, params)
	if err != nil {
		return nil, err
	}
	if ep.Shape == endpoint.ShapeRecord && len(records) > 1 {
		records = records[:1]
	}

	o := frame.NewOptions(append(c.defaults(ep), opts...)...)
	t, err := frame.Process(ctx, records, o)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ep.Name, err)
	}
	return t, nil
}

func (c *Client) defaults(ep Endpoint) []frame.Option {
	opts := []frame.Option{
		frame.WithOutputPath(c.outputPath),
		frame.WithFilename(ep.Name),
	}
	if ep.Index != "" {
		opts = append(opts, frame.WithIndex(ep.Index))
	}
	if len(ep.Ignore) > 0 {
		opts = append(opts, frame.WithIgnore(ep.Ignore...))
	}
	if ep.Transpose {
		opts = append(opts, frame.WithTranspose(true))
	}
	if ep.TTM {
		opts = append(opts, frame.WithKeyMode(frame.KeyModeTTM))
	}
	return opts
}

// Record returns the first record of the response with snake_case keys.
func (c *Client) Record(ctx context.Context, name string, params QueryParams) (frame.Record, error) {
	ep, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}
	if ep.Shape == endpoint.ShapeRaw {
		return nil, fmt.Errorf("%s returns %s data: %w", ep.Name, ep.Shape, ErrShapeMismatch)
	}
	records, err := c.records(c.withLogger(ctx), ep, params)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", ep.Name, ErrNoData)
	}
	mode := frame.KeyModeDefault
	if ep.TTM {
		mode = frame.KeyModeTTM
	}
	return frame.SnakeKeys(records[0], mode), nil
}

// Float extracts one number from the response. path is a gjson path such as
// "0.marketCap", evaluated after the endpoint's data path.
func (c *Client) Float(ctx context.Context, name string, params QueryParams, path string) (float64, error) {
	v, ep, err := c.lookup(ctx, name, params, path)
	if err != nil {
		return 0, err
	}
	switch v.Type {
	case gjson.Number:
		return v.Num, nil
	case gjson.String:
		f, err := strconv.ParseFloat(v.Str, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: %s is not a number: %q", ep, path, v.Str)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%s: %s is not a number: %s", ep, path, v.Raw)
	}
}

// Strings extracts a list of strings from the response, e.g. "0.peersList".
func (c *Client) Strings(ctx context.Context, name string, params QueryParams, path string) ([]string, error) {
	v, ep, err := c.lookup(ctx, name, params, path)
	if err != nil {
		return nil, err
	}
	if !v.IsArray() {
		return []string{v.String()}, nil
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s: %w", ep, ErrNoData)
	}
	return out, nil
}

// Ping requests a single quote to check connectivity and the API key.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Raw(ctx, "quote", QueryParams{endpoint.ParamSymbol: "AAPL"})
	return err
}

func (c *Client) lookup(ctx context.Context, name string, params QueryParams, path string) (gjson.Result, string, error) {
	ep, err := c.registry.Get(name)
	if err != nil {
		return gjson.Result{}, name, err
	}
	body, err := c.fetch(ctx, ep, params)
	if err != nil {
		return gjson.Result{}, ep.Name, err
	}
	res, err := locate(ep, body)
	if err != nil {
		return gjson.Result{}, ep.Name, err
	}
	v := res.Get(path)
	if !v.Exists() || v.Type == gjson.Null {
		return gjson.Result{}, ep.Name, fmt.Errorf("%s: %s: %w", ep.Name, path, ErrNoData)
	}
	return v, ep.Name, nil
}

// --- Transport ---

func (c *Client) records(ctx context.Context, ep Endpoint, params QueryParams) ([]frame.Record, error) {
	body, err := c.fetch(ctx, ep, params)
	if err != nil {
		return nil, err
	}
	res, err := locate(ep, body)
	if err != nil {
		return nil, err
	}
	records, err := frame.FromResult(res)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ep.Name, err)
	}
	return records, nil
}

func locate(ep Endpoint, body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%s: invalid JSON response", ep.Name)
	}
	res := gjson.ParseBytes(body)
	if ep.DataPath != "" {
		res = res.Get(ep.DataPath)
	}
	return res, nil
}

func (c *Client) fetch(ctx context.Context, ep Endpoint, params QueryParams) ([]byte, error) {
	path, query, err := ep.Build(params)
	if err != nil {
		return nil, err
	}
	base, ok := c.baseURLs[ep.Version]
	if !ok {
		return nil, fmt.Errorf("%s: unknown API version %q", ep.Name, ep.Version)
	}
	u := base + "/" + path
	query.Set("apikey", c.apiKey)

	ctx = c.withLogger(ctx)
	log := zerolog.Ctx(ctx)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%s: rate limiter: %w", ep.Name, err)
	}

	log.Debug().Str("endpoint", ep.Name).Str("url", u).Msg("request")
	body, status, err := infra.DoGet(ctx, c.http, u, query, nil)
	if err != nil {
		log.Error().Err(err).Str("endpoint", ep.Name).Str("url", u).Msg("request failed")
		return nil, fmt.Errorf("%s: %w", ep.Name, err)
	}
	if status != http.StatusOK {
		log.Error().Int("status", status).Str("endpoint", ep.Name).Str("url", u).Msg("unexpected status")
		return nil, &APIRequestError{StatusCode: status, Endpoint: ep.Name}
	}
	return body, nil
}

// withLogger attaches the client logger unless ctx already carries one.
func (c *Client) withLogger(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if zerolog.Ctx(ctx).GetLevel() == zerolog.Disabled {
		return c.logger.WithContext(ctx)
	}
	return ctx
}
