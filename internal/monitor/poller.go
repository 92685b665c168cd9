package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/iryanin/redfish-monitor/internal/logger"
	"github.com/iryanin/redfish-monitor/internal/redfish"
)

// Poller fetches sensor readings from every controller on a fixed interval
// and installs each cycle's complete result in the Store. It never retries,
// never refreshes tokens, and never surfaces per-controller failures beyond
// the store's failure reasons; a permanently failing controller is simply
// re-polled every cycle.
type Poller struct {
	client   *redfish.Client
	store    *Store
	addrs    []string
	tokens   []string
	interval time.Duration
	timeout  time.Duration
	log      logger.Logger
}

// cycleOutcome is the tagged per-controller result of one cycle. Only
// presence or absence is externally observable, but keeping the reason makes
// the "why is this controller missing" path testable.
type cycleOutcome struct {
	addr    string
	reading redfish.Reading
	err     error
}

// NewPoller creates a poller over parallel address/token slices (index i of
// tokens authenticates index i of addrs).
func NewPoller(client *redfish.Client, store *Store, addrs, tokens []string, interval, timeout time.Duration, log logger.Logger) *Poller {
	if log == nil {
		log = logger.Noop()
	}
	return &Poller{
		client:   client,
		store:    store,
		addrs:    addrs,
		tokens:   tokens,
		interval: interval,
		timeout:  timeout,
		log:      log,
	}
}

// Run polls until ctx is cancelled. The first cycle starts immediately; after
// that the ticker fires on interval boundaries measured from cycle start, so
// a slow cycle eats into or skips the following sleep instead of drifting the
// schedule forward.
func (p *Poller) Run(ctx context.Context) {
	p.Cycle(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Cycle(ctx)
		}
	}
}

// Cycle performs one complete poll of every controller and atomically
// replaces the store's snapshot with the result. Controllers are polled in
// parallel with a per-controller timeout; nothing is published until every
// outcome is in, so readers never see a mix of two cycles.
func (p *Poller) Cycle(ctx context.Context) {
	outcomes := make(chan cycleOutcome, len(p.addrs))

	var wg sync.WaitGroup
	for i, addr := range p.addrs {
		wg.Add(1)
		go func(addr, token string) {
			defer wg.Done()

			reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()

			reading, err := p.client.Sensors(reqCtx, addr, token)
			outcomes <- cycleOutcome{addr: addr, reading: reading, err: err}
		}(addr, p.tokens[i])
	}
	wg.Wait()
	close(outcomes)

	snap := make(redfish.Snapshot, len(p.addrs))
	failures := make(map[string]string)
	for outcome := range outcomes {
		if outcome.err != nil {
			// Absorbed: the controller is absent from this snapshot.
			p.log.Debug("poll %s: %v", outcome.addr, outcome.err)
			failures[outcome.addr] = outcome.err.Error()
			continue
		}
		snap[outcome.addr] = outcome.reading
	}

	p.store.Replace(snap, failures)
}

// Controllers returns the fixed address list being polled.
func (p *Poller) Controllers() []string {
	return p.addrs
}
