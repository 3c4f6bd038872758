package timing

import "time"

// Limiter controls the pacing of the host frame loop.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	WaitForNextFrame()

	// Stop releases any resources held by the limiter.
	Stop()
}

// FrameDuration is the target duration of a single host frame, matching
// the ~60 Hz cadence of the render delay.
const FrameDuration = RenderDelay

// NewTickerLimiter paces the loop with a time.Ticker.
func NewTickerLimiter() Limiter {
	ticker := time.NewTicker(FrameDuration)
	return &tickerLimiter{ticker: ticker}
}

type tickerLimiter struct {
	ticker *time.Ticker
}

func (t *tickerLimiter) WaitForNextFrame() {
	<-t.ticker.C
}

func (t *tickerLimiter) Stop() {
	t.ticker.Stop()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Stop()             {}
