package reservations

import (
	"context"
	"time"

	"flightly/pkg/logger"
)

// Sweeper periodically cancels deferred-slip reservations whose slip
// was never settled and whose flight is about to depart. It is the
// system's only writer besides user-facing cancellation, and both go
// through the same guarded primitive, so the two can race safely.
type Sweeper struct {
	service Service
	config  *SweeperConfig
	done    chan struct{}
	log     *logger.Logger
}

// SweeperConfig contains configuration for the expiration sweeper.
type SweeperConfig struct {
	Interval     time.Duration
	ExpiryWindow time.Duration
	RunOnStartup bool
}

// DefaultSweeperConfig returns default sweeper configuration
func DefaultSweeperConfig() *SweeperConfig {
	return &SweeperConfig{
		Interval:     1 * time.Hour,
		ExpiryWindow: 24 * time.Hour,
		RunOnStartup: true,
	}
}

// NewSweeper creates a sweeper over the reservation service.
func NewSweeper(service Service, config *SweeperConfig) *Sweeper {
	if config == nil {
		config = DefaultSweeperConfig()
	}

	return &Sweeper{
		service: service,
		config:  config,
		done:    make(chan struct{}),
		log:     logger.GetDefault(),
	}
}

// Start launches the sweep loop in its own goroutine.
func (sw *Sweeper) Start(ctx context.Context) {
	go sw.run(ctx)
	sw.log.Info("expiration sweeper started",
		"interval", sw.config.Interval.String(),
		"expiry_window", sw.config.ExpiryWindow.String(),
	)
}

// Stop terminates the sweep loop.
func (sw *Sweeper) Stop() {
	close(sw.done)
	sw.log.Info("expiration sweeper stopped")
}

func (sw *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(sw.config.Interval)
	defer ticker.Stop()

	if sw.config.RunOnStartup {
		sw.sweep(ctx)
	}

	for {
		select {
		case <-ticker.C:
			sw.sweep(ctx)
		case <-sw.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (sw *Sweeper) sweep(ctx context.Context) {
	start := time.Now()

	cancelled, err := sw.service.CancelExpired(ctx, start, sw.config.ExpiryWindow)
	if err != nil {
		sw.log.WithError(err).Error("expiration sweep failed")
		return
	}

	if cancelled > 0 {
		sw.log.Info("expiration sweep cancelled reservations",
			"cancelled", cancelled,
			"duration", time.Since(start).String(),
		)
	}
}
