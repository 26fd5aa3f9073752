package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DailyTriggerConfig sets when a DailyTrigger fires
type DailyTriggerConfig struct {
	Hour   int
	Minute int
	// CheckInterval is how often the clock is compared with Hour:Minute
	CheckInterval time.Duration
}

// DailyTrigger submits a fixed set of job kinds once per day at a local
// wall-clock time
type DailyTrigger struct {
	config    DailyTriggerConfig
	scheduler *Scheduler
	kinds     []JobKind
	logger    *zap.Logger
	now       func() time.Time

	cancel      context.CancelFunc
	wg          sync.WaitGroup
	mu          sync.Mutex
	isRunning   bool
	lastRunDate string
}

// NewDailyTrigger creates a trigger for kinds
func NewDailyTrigger(config DailyTriggerConfig, scheduler *Scheduler, logger *zap.Logger, kinds ...JobKind) *DailyTrigger {
	if config.CheckInterval <= 0 {
		config.CheckInterval = time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DailyTrigger{
		config:    config,
		scheduler: scheduler,
		kinds:     kinds,
		logger:    logger,
		now:       time.Now,
	}
}

// Start begins watching the clock
func (d *DailyTrigger) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.isRunning {
		return nil
	}
	d.isRunning = true

	ctx, d.cancel = context.WithCancel(ctx)
	d.wg.Add(1)
	go d.runLoop(ctx)

	d.logger.Info("Daily trigger started",
		zap.Int("hour", d.config.Hour),
		zap.Int("minute", d.config.Minute),
		zap.Duration("check_interval", d.config.CheckInterval),
	)
	return nil
}

// Stop halts the trigger, bounded by ctx
func (d *DailyTrigger) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.isRunning {
		d.mu.Unlock()
		return nil
	}
	d.isRunning = false
	d.cancel()
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *DailyTrigger) runLoop(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.tick()
		}
	}
}

// tick submits the jobs if the clock reads Hour:Minute and they have not
// run yet today. It reports whether anything was submitted.
func (d *DailyTrigger) tick() bool {
	now := d.now()
	if now.Hour() != d.config.Hour || now.Minute() != d.config.Minute {
		return false
	}

	today := now.Format(time.DateOnly)
	d.mu.Lock()
	if d.lastRunDate == today {
		d.mu.Unlock()
		return false
	}
	d.lastRunDate = today
	d.mu.Unlock()

	for _, kind := range d.kinds {
		if _, err := d.scheduler.SubmitKind(kind); err != nil {
			d.logger.Error("Failed to submit daily job",
				zap.String("kind", string(kind)),
				zap.Error(err),
			)
		}
	}
	return true
}
