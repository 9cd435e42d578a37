package poller

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"market-viewer/src/helpers"
	"market-viewer/src/interfaces"
	"market-viewer/src/logger"
	"market-viewer/src/models"
	"market-viewer/src/utils"
)

// DefaultInterval is the refresh period when none is configured.
const DefaultInterval = 5 * time.Minute

// attemptHistory is how many completed fetches Attempts reports.
const attemptHistory = 20

var (
	// ErrNotStarted is returned by RefreshNow before Start.
	ErrNotStarted = errors.New("poller: not started")
	// ErrStopped is returned once Stop has been called or the Start context
	// has been cancelled.
	ErrStopped = errors.New("poller: stopped")
)

// Config holds controller settings.
type Config struct {
	Interval     time.Duration // Refresh period (default: 5m)
	FetchTimeout time.Duration // Per-fetch deadline, 0 for none
}

type fetchResult struct {
	reason  string
	started time.Time
	snap    *models.MSnapshot
	err     error
}

// tickerFunc creates the repeating timer. Tests replace it with a manual channel.
type tickerFunc func(d time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// -----------------------------------------------------------------------------

// Controller owns the polling state. All transitions happen on the run
// goroutine; readers only ever see fully published states.
type Controller struct {
	cfg    Config
	source interfaces.ISnapshotSource
	logger *logger.Logger

	now       func() time.Time
	newTicker tickerFunc

	state atomic.Pointer[models.MPollingState]

	mu        sync.Mutex
	started   bool
	stopped   bool
	listeners []func(models.MPollingState)

	histMu   sync.Mutex
	attempts *utils.RingBuffer[models.MFetchAttempt]

	refresh chan struct{}
	results chan fetchResult
	quit    chan struct{}
	done    chan struct{}
}

var _ interfaces.IStateProvider = (*Controller)(nil)

// New creates an idle controller.
func New(cfg Config, source interfaces.ISnapshotSource, log *logger.Logger) *Controller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	c := &Controller{
		cfg:       cfg,
		source:    source,
		logger:    log,
		now:       time.Now,
		newTicker: realTicker,
		attempts:  utils.NewRingBuffer[models.MFetchAttempt](attemptHistory),
		refresh:   make(chan struct{}, 1),
		// one fetch at most is ever in flight, so one slot lets it finish
		// without a reader after Stop
		results: make(chan fetchResult, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	c.state.Store(&models.MPollingState{Status: models.StatusIdle})
	return c
}

// -----------------------------------------------------------------------------

// State returns the current polling state.
func (c *Controller) State() models.MPollingState {
	return *c.state.Load()
}

// Subscribe registers fn to be called with every published state. Listeners
// run on the controller goroutine and must not block.
func (c *Controller) Subscribe(fn func(models.MPollingState)) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// Attempts returns the most recent completed fetches, oldest first. Results
// discarded by Stop are not recorded.
func (c *Controller) Attempts() []models.MFetchAttempt {
	c.histMu.Lock()
	defer c.histMu.Unlock()
	return c.attempts.GetAll()
}

// -----------------------------------------------------------------------------

// Start moves Idle to Loading, dispatches the first fetch and arms the timer.
// Further calls while running are no-ops. A stopped controller cannot restart.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return ErrStopped
	}
	if c.started {
		c.mu.Unlock()
		return nil
	}
	c.started = true
	c.mu.Unlock()

	ticks, stopTicker := c.newTicker(c.cfg.Interval)
	c.dispatch(ctx, "start")
	go c.run(ctx, ticks, stopTicker)

	c.logger.Info("Polling %s every %s", c.source.Name(), c.cfg.Interval)
	return nil
}

// RefreshNow requests an immediate fetch. While a fetch is in flight the
// request is folded into a single follow-up fetch.
func (c *Controller) RefreshNow() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.stopped:
		return ErrStopped
	case !c.started:
		return ErrNotStarted
	}

	select {
	case c.refresh <- struct{}{}:
	default:
		// a refresh is already queued
	}
	return nil
}

// Stop disarms the timer and waits for the controller goroutine to exit. An
// in-flight fetch is not aborted, but its result is discarded. Safe to call
// more than once.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.stopped {
		// already stopped, possibly by context cancellation: still wait for
		// the timer to be disarmed
		wasStarted := c.started
		c.mu.Unlock()
		if wasStarted {
			<-c.done
		}
		return
	}
	c.stopped = true
	wasStarted := c.started
	close(c.quit)
	c.mu.Unlock()

	if wasStarted {
		<-c.done
	}
	c.logger.Info("Polling stopped")
}

// -----------------------------------------------------------------------------

func (c *Controller) run(ctx context.Context, ticks <-chan time.Time, stopTicker func()) {
	defer close(c.done)
	defer stopTicker()

	inFlight := true // Start dispatched the first fetch
	pending := false

	for {
		// quit takes priority over anything else that is ready
		select {
		case <-c.quit:
			return
		default:
		}

		select {
		case <-c.quit:
			return

		case <-ctx.Done():
			c.mu.Lock()
			c.stopped = true
			c.mu.Unlock()
			c.logger.Info("Polling stopped: %v", ctx.Err())
			return

		case <-ticks:
			if inFlight {
				c.logger.Debug("Tick skipped, fetch in flight")
				continue
			}
			inFlight = true
			c.dispatch(ctx, "tick")

		case <-c.refresh:
			if inFlight {
				pending = true
				continue
			}
			inFlight = true
			c.dispatch(ctx, "manual")

		case res := <-c.results:
			select {
			case <-c.quit:
				return
			default:
			}
			inFlight = false
			c.apply(res)
			if pending {
				pending = false
				inFlight = true
				c.dispatch(ctx, "queued")
			}
		}
	}
}

// dispatch publishes Loading and starts one fetch. Only the run goroutine (or
// Start, before run exists) calls it, which keeps fetches strictly serial.
func (c *Controller) dispatch(ctx context.Context, reason string) {
	started := c.now()
	next := c.State()
	next.Status = models.StatusLoading
	next.LastAttempt = started
	c.publish(next)

	c.logger.Debug("Fetching snapshot (%s)", reason)
	go func() {
		fctx := ctx
		if c.cfg.FetchTimeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(ctx, c.cfg.FetchTimeout)
			defer cancel()
		}
		snap, err := c.source.Fetch(fctx)
		if err == nil && snap == nil {
			err = helpers.NewEmptyDataError([]string{"gold", "currency", "cryptocurrency"})
		}
		c.results <- fetchResult{reason: reason, started: started, snap: snap, err: err}
	}()
}

// apply turns a fetch result into Ready or Error. A failure keeps the
// previously held snapshot.
func (c *Controller) apply(res fetchResult) {
	c.record(res)
	next := c.State()

	if res.err != nil {
		next.Status = models.StatusError
		next.Error = res.err.Error()
		next.ConsecutiveFailures++
		c.logger.Warning("Fetch failed (%s, %d in a row): %v",
			helpers.ErrorKind(res.err), next.ConsecutiveFailures, res.err)
		c.publish(next)
		return
	}

	snap := res.snap
	if snap.CapturedAt.IsZero() {
		cp := *snap
		cp.CapturedAt = c.now()
		snap = &cp
	}
	next.Status = models.StatusReady
	next.Error = ""
	next.Snapshot = snap
	next.LastSuccess = snap.CapturedAt
	next.ConsecutiveFailures = 0
	c.publish(next)

	c.logger.Info("Snapshot updated: %d gold, %d currency, %d crypto",
		len(snap.Gold), len(snap.Currency), len(snap.Crypto))
}

func (c *Controller) record(res fetchResult) {
	a := models.MFetchAttempt{
		Reason:     res.reason,
		StartedAt:  res.started,
		DurationMs: c.now().Sub(res.started).Milliseconds(),
		Outcome:    "ok",
	}
	if res.err != nil {
		a.Outcome = helpers.ErrorKind(res.err)
		a.Error = res.err.Error()
	}

	c.histMu.Lock()
	c.attempts.Append(a)
	c.histMu.Unlock()
}

func (c *Controller) publish(s models.MPollingState) {
	c.state.Store(&s)

	c.mu.Lock()
	listeners := append([]func(models.MPollingState){}, c.listeners...)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(s)
	}
}
