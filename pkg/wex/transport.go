package wex

import (
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// newTransport builds the resty client every request goes through. Resty
// never turns a non-2xx status into an error, so status classification stays
// in this package. No retry is configured here either; the dispatch loops own
// that policy.
func newTransport(baseURL, proxyURL string, timeout time.Duration) (*resty.Client, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "gowex client")

	if proxyURL != "" {
		u, err := url.Parse(proxyURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, errors.Errorf("invalid proxy url %q", proxyURL)
		}
		rc.SetProxy(proxyURL)
	}

	return rc, nil
}
