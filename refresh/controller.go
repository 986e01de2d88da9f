// Package refresh owns the polling loop: every tick fetches a fresh
// snapshot, feeds it into the view-state store and applies the
// degrade-to-cache failure policy. The poll interval is fixed with no
// backoff; that is the accepted contract of this pipeline, not an
// oversight.
package refresh

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/DanaramPradeep/crypto-tracker/coingecko"
	"github.com/DanaramPradeep/crypto-tracker/config"
	"github.com/DanaramPradeep/crypto-tracker/events"
	"github.com/DanaramPradeep/crypto-tracker/metrics"
	"github.com/DanaramPradeep/crypto-tracker/scheduler"
	"github.com/DanaramPradeep/crypto-tracker/store"
)

// HeaderStats carries the two header figures recomputed on each
// successful refresh
type HeaderStats struct {
	TotalMarketCap float64   `json:"total_market_cap"`
	LastUpdated    time.Time `json:"last_updated"`
}

// Controller drives the snapshot refresh cycle
type Controller struct {
	config        *config.Config
	apiClient     coingecko.Client
	store         *store.Store
	events        *events.SubscriptionManager
	metricsWriter *metrics.MetricsWriter
	scheduler     *scheduler.Scheduler

	mu          sync.Mutex
	state       State
	notice      string
	lastErr     string
	header      HeaderStats
	hasData     bool
	noticeTimer *time.Timer

	// Request generations guard against a stale fetch overwriting a newer
	// one: results apply in completion order and a result whose generation
	// is older than the last applied one is discarded.
	nextGen    uint64
	appliedGen uint64
}

// NewController creates a refresh controller wired to the given store
func NewController(cfg *config.Config, apiClient coingecko.Client, st *store.Store, sm *events.SubscriptionManager) *Controller {
	c := &Controller{
		config:        cfg,
		apiClient:     apiClient,
		store:         st,
		events:        sm,
		metricsWriter: metrics.NewMetricsWriter(metrics.ServiceRefresh),
		state:         StateIdle,
	}
	c.scheduler = scheduler.New(cfg.Tracker.GetRefreshInterval(), c.tick)
	return c
}

// Start implements core.Interface. The first tick runs immediately.
func (c *Controller) Start(ctx context.Context) error {
	if c.store == nil {
		return fmt.Errorf("store dependency not provided")
	}

	log.Printf("Refresh: starting poll loop with interval %v for %d coins",
		c.config.Tracker.GetRefreshInterval(), len(c.config.Tracker.CoinIDs))
	c.scheduler.Start(ctx, true)
	return nil
}

// Stop implements core.Interface
func (c *Controller) Stop() {
	c.scheduler.Stop()

	c.mu.Lock()
	if c.noticeTimer != nil {
		c.noticeTimer.Stop()
		c.noticeTimer = nil
	}
	c.mu.Unlock()
}

// Retry re-triggers a tick immediately. It is the manual recovery action of
// the blocking failed state; issuing it in any other state just moves the
// next poll forward.
func (c *Controller) Retry() {
	log.Printf("Refresh: manual retry requested")
	c.scheduler.TriggerNow()
}

// Status returns the controller state for the presentation boundary
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		State:  c.state,
		Notice: c.notice,
		Error:  c.lastErr,
	}
}

// Header returns the last computed header statistics
func (c *Controller) Header() HeaderStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.header
}

// Healthy reports whether at least one snapshot has been applied
func (c *Controller) Healthy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasData
}

// tick runs one refresh cycle
func (c *Controller) tick(ctx context.Context) {
	defer c.metricsWriter.TrackRefreshCycle()()

	c.mu.Lock()
	c.nextGen++
	gen := c.nextGen
	c.setStateLocked(StateLoading)
	c.mu.Unlock()
	c.events.Emit()

	coins, err := c.apiClient.FetchMarkets(ctx, c.config.Tracker.CoinIDs)

	c.mu.Lock()
	if gen <= c.appliedGen {
		// A newer request already completed; this result is superseded
		c.mu.Unlock()
		log.Printf("Refresh: discarding superseded result (generation %d)", gen)
		return
	}
	c.appliedGen = gen

	if err != nil {
		c.applyFailureLocked(err)
		c.mu.Unlock()
		c.events.Emit()
		return
	}

	var totalMarketCap float64
	for _, coin := range coins {
		totalMarketCap += coin.MarketCap
	}
	c.header = HeaderStats{
		TotalMarketCap: totalMarketCap,
		LastUpdated:    time.Now(),
	}
	c.hasData = true
	c.lastErr = ""
	c.clearNoticeLocked()
	c.setStateLocked(StateSuccess)
	c.mu.Unlock()

	// ApplySnapshot emits on the shared manager itself
	c.store.ApplySnapshot(coins)
	c.metricsWriter.RecordSnapshotSize(len(coins))

	log.Printf("Refresh: applied snapshot with %d coins, total market cap %.0f",
		len(coins), totalMarketCap)
}

// applyFailureLocked implements the failure policy: degrade when cached data
// exists, block when it never did. The poll loop continues either way.
func (c *Controller) applyFailureLocked(err error) {
	if c.hasData {
		log.Printf("Refresh: fetch failed, keeping last good snapshot: %v", err)
		c.notice = "Refresh failed; showing last known data"
		c.setStateLocked(StateDegraded)
		c.scheduleNoticeDismissLocked()
		return
	}

	log.Printf("Refresh: fetch failed with no prior data: %v", err)
	c.lastErr = err.Error()
	c.setStateLocked(StateFailed)
}

// scheduleNoticeDismissLocked arms the transient notice's auto-dismiss
func (c *Controller) scheduleNoticeDismissLocked() {
	if c.noticeTimer != nil {
		c.noticeTimer.Stop()
	}
	c.noticeTimer = time.AfterFunc(c.config.Tracker.GetNoticeDuration(), func() {
		c.mu.Lock()
		c.notice = ""
		if c.state == StateDegraded {
			c.setStateLocked(StateSuccess)
		}
		c.mu.Unlock()
		c.events.Emit()
	})
}

func (c *Controller) clearNoticeLocked() {
	c.notice = ""
	if c.noticeTimer != nil {
		c.noticeTimer.Stop()
		c.noticeTimer = nil
	}
}

func (c *Controller) setStateLocked(state State) {
	c.state = state
	c.metricsWriter.RecordRefreshState(int(state))
}
