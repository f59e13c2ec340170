package adapters

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"depaudit/internal/policies"
	"depaudit/internal/ports"
	"depaudit/internal/types"
)

// Some download hosts reject Go's default client identification, so
// the probe presents itself as a current desktop browser.
const probeUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const defaultProbeTimeout = 30 * time.Second

// URLProbeAdapter answers reachability questions with a single HEAD
// request per URL, following redirects. No retries: one probe per
// package per run is definitive.
type URLProbeAdapter struct {
	Overrides policies.Overrides
	Timeout   time.Duration
	client    *http.Client
}

func NewURLProbeAdapter(overrides policies.Overrides, timeout time.Duration) URLProbeAdapter {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return URLProbeAdapter{
		Overrides: overrides,
		Timeout:   timeout,
		client:    &http.Client{Timeout: timeout},
	}
}

func (a URLProbeAdapter) Check(ctx context.Context, rawURL string, packageName string) types.ProbeOutcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return types.ProbeOutcome{Message: fmt.Sprintf("Error: %v", err)}
	}
	req.Header.Set("User-Agent", probeUserAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer resp.Body.Close()

	outcome := a.classifyStatus(resp.StatusCode, packageName)
	log.Debug().
		Str("package", packageName).
		Str("url", rawURL).
		Int("status", resp.StatusCode).
		Bool("reachable", outcome.Reachable).
		Msg("url probed")
	return outcome
}

func (a URLProbeAdapter) classifyStatus(status int, packageName string) types.ProbeOutcome {
	switch {
	case status == http.StatusOK:
		return types.ProbeOutcome{Reachable: true, StatusCode: status, Message: "Ok"}
	case status == http.StatusNotFound:
		return types.ProbeOutcome{StatusCode: status, Message: "Not Found"}
	case status == http.StatusTeapot && a.Overrides.TeapotAllowed(packageName):
		// The host misreports availability with a joke status code
		// while the archive is actually present.
		return types.ProbeOutcome{Reachable: true, StatusCode: status, Message: "Ok (418 - special case)"}
	default:
		return types.ProbeOutcome{StatusCode: status, Message: fmt.Sprintf("HTTP %d", status)}
	}
}

func classifyTransportError(err error) types.ProbeOutcome {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		switch {
		case urlErr.Timeout():
			return types.ProbeOutcome{Message: "Timeout"}
		case strings.Contains(urlErr.Err.Error(), "stopped after"):
			// net/http reports an exceeded redirect chain as
			// "stopped after N redirects".
			return types.ProbeOutcome{Message: "Too Many Redirects"}
		}
		var opErr *net.OpError
		if errors.As(urlErr.Err, &opErr) {
			return types.ProbeOutcome{Message: "Connection Error"}
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return types.ProbeOutcome{Message: "Timeout"}
	}
	return types.ProbeOutcome{Message: fmt.Sprintf("Error: %v", err)}
}

var _ ports.ProbePort = URLProbeAdapter{}
