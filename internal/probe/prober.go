// Package probe performs bounded-time availability checks against stream
// URLs. One check per URL, no retries; failures are returned as data.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// defaultRTMPPort is used when an rtmp URL does not name a port.
const defaultRTMPPort = "1935"

// Prober issues availability checks with a hard per-check timeout. The
// zero value is not usable; construct with [New].
type Prober struct {
	client  *http.Client
	dialer  *net.Dialer
	timeout time.Duration
}

// New returns a Prober whose checks give up after timeout.
func New(timeout time.Duration) *Prober {
	return &Prober{
		client:  &http.Client{Timeout: timeout},
		dialer:  &net.Dialer{Timeout: timeout},
		timeout: timeout,
	}
}

// Check probes rawURL once and classifies it. It never returns an error:
// transport failures, timeouts and bad statuses all come back as an
// unavailable Result. http/https URLs get a HEAD request; rtmp URLs get a
// TCP dial to the host, since net/http cannot speak the protocol but a
// listening port is still a meaningful existence check.
func (p *Prober) Check(ctx context.Context, rawURL string) Result {
	start := time.Now()
	res := Result{URL: rawURL}

	if strings.HasPrefix(strings.ToLower(rawURL), "rtmp://") {
		res.Available, res.Detail = p.checkRTMP(ctx, rawURL)
	} else {
		res.Available, res.StatusCode, res.Detail = p.checkHTTP(ctx, rawURL)
	}

	res.Latency = time.Since(start)
	return res
}

// checkHTTP issues a single HEAD request and classifies the response.
func (p *Prober) checkHTTP(ctx context.Context, rawURL string) (bool, int, string) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false, 0, describeErr(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false, 0, describeErr(err)
	}
	resp.Body.Close()

	detail := fmt.Sprintf("HTTP %d", resp.StatusCode)
	return available(resp.StatusCode), resp.StatusCode, detail
}

// checkRTMP dials the URL's host over TCP within the probe timeout.
func (p *Prober) checkRTMP(ctx context.Context, rawURL string) (bool, string) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return false, "invalid rtmp URL"
	}

	port := u.Port()
	if port == "" {
		port = defaultRTMPPort
	}
	addr := net.JoinHostPort(u.Hostname(), port)

	conn, err := p.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return false, describeErr(err)
	}
	conn.Close()
	return true, "rtmp port open"
}

// available reports whether an HTTP status counts as a live stream.
// Success and redirect classes both do; 4xx/5xx do not.
func available(status int) bool {
	return status >= 200 && status < 400
}

// describeErr turns a transport error into a short report-friendly string.
// Go's url.Error wrapping repeats the method and full URL, which the report
// already shows on the next line, so unwrap to the cause where possible.
func describeErr(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		err = urlErr.Err
	}
	return err.Error()
}
