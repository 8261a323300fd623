// Package fetch polls the timing system's result feed and hands each
// fetched document to the ingester.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/okian/splitboard/pkg/logger"
	"github.com/okian/splitboard/pkg/metrics"
)

// Default poller configuration constants.
const (
	defaultInterval    = 30 * time.Second
	defaultHTTPTimeout = 10 * time.Second
)

// Ingester consumes one raw feed document per cycle.
type Ingester interface {
	Ingest(ctx context.Context, raw []byte) error
}

// Poller fetches the feed on a fixed interval. Cycles never overlap: each
// fetch-and-ingest runs to completion before the next tick is taken, and a
// failed cycle just leaves the previous board in place.
type Poller struct {
	url      string
	interval time.Duration
	client   *http.Client
	ingester Ingester
	logger   logger.Logger
}

// New constructs a Poller for the given feed URL.
func New(url string, ingester Ingester, opts ...Option) *Poller {
	p := &Poller{
		url:      url,
		interval: defaultInterval,
		client:   &http.Client{Timeout: defaultHTTPTimeout},
		ingester: ingester,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = logger.Get().Named("fetch")
	}

	return p
}

// Run fetches once immediately, then on every tick until ctx is canceled.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info(ctx, "poller started",
		logger.String("url", p.url),
		logger.Duration("interval", p.interval),
	)

	p.cycle(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info(ctx, "poller stopped")
			return
		case <-ticker.C:
			p.cycle(ctx)
		}
	}
}

// cycle runs one fetch-and-ingest pass. The cycle id ties the fetch, the
// ingest and any failure together in the logs.
func (p *Poller) cycle(ctx context.Context) {
	cycleID := uuid.NewString()
	metrics.RecordPollCycle()

	raw, err := p.get(ctx)
	if err != nil {
		metrics.RecordPollError()
		p.logger.Warn(ctx, "feed fetch failed; keeping previous board",
			logger.String("cycle", cycleID),
			logger.Error(err),
		)
		return
	}

	if err := p.ingester.Ingest(ctx, raw); err != nil {
		metrics.RecordPollError()
		p.logger.Warn(ctx, "feed rejected; keeping previous board",
			logger.String("cycle", cycleID),
			logger.Error(err),
		)
		return
	}

	p.logger.Debug(ctx, "cycle complete",
		logger.String("cycle", cycleID),
		logger.Int("bytes", len(raw)),
	)
}

func (p *Poller) get(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// The timing system serves the same path for every fetch; make sure
	// intermediaries do not hand us a stale document.
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed: unexpected status %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}
	return raw, nil
}
