package storefront

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	readyTimeout      = 2 * time.Second
	readyProbeTimeout = 700 * time.Millisecond
)

type Upstream struct {
	Name    string
	BaseURL string
}

// ReadyChecker probes each upstream's /readyz in order.
type ReadyChecker struct {
	Upstreams []Upstream
	Client    *http.Client
}

func NewReadyChecker(c *http.Client, upstreams ...Upstream) *ReadyChecker {
	if c == nil {
		c = http.DefaultClient
	}
	for i := range upstreams {
		upstreams[i].BaseURL = trimBase(upstreams[i].BaseURL)
	}
	return &ReadyChecker{Upstreams: upstreams, Client: c}
}

// Check returns the name of the first upstream that is not ready.
func (rc *ReadyChecker) Check(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	for _, u := range rc.Upstreams {
		if err := rc.probe(ctx, u.BaseURL+"/readyz"); err != nil {
			return u.Name, err
		}
	}
	return "", nil
}

func (rc *ReadyChecker) probe(ctx context.Context, url string) error {
	cctx, cancel := context.WithTimeout(ctx, readyProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := rc.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status=%d", resp.StatusCode)
	}
	return nil
}
