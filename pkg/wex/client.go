package wex

import (
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultBaseURL is the production exchange endpoint.
	DefaultBaseURL = "https://wex.nz"

	// DefaultDepthLimit matches the exchange's default order book depth.
	DefaultDepthLimit = 150

	tradePath  = "/tapi"
	publicPath = "/api/3"

	// Only HTTP 5xx responses are retried, at most defaultRetryLimit times
	// after the first attempt, with a fixed wait in between.
	defaultRetryLimit = 3
	defaultRetryWait  = time.Second
)

// Config configures a Client. APIKey and APISecret may be left empty when
// only the public market-data endpoints are used.
type Config struct {
	BaseURL   string        // defaults to DefaultBaseURL
	APIKey    string        // opaque key sent in the Key header
	APISecret string        // HMAC key, never transmitted
	ProxyURL  string        // optional outbound proxy, e.g. http://127.0.0.1:3128
	Timeout   time.Duration // per-attempt HTTP timeout, defaults to 30s
	Logger    *logrus.Entry // defaults to the standard logger
}

// Client talks to the exchange's authenticated trade API and public
// market-data API. It holds immutable credentials and is safe for concurrent
// use; nonce ordering is only guaranteed between calls on the same instance.
type Client struct {
	key    string
	secret string
	http   *resty.Client
	nonce  nonceSource
	log    *logrus.Entry

	retryLimit int
	retryWait  time.Duration
}

// New builds a client bound to the given credentials. No network I/O happens
// here.
func New(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	transport, err := newTransport(baseURL, cfg.ProxyURL, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}

	return &Client{
		key:        cfg.APIKey,
		secret:     cfg.APISecret,
		http:       transport,
		log:        log,
		retryLimit: defaultRetryLimit,
		retryWait:  defaultRetryWait,
	}, nil
}
