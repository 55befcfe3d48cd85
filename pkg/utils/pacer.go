package utils

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Pacer keeps a fixed pause between the end of one request and the start of
// the next. Callers Wait before a request and call Done once it returns,
// whether it succeeded or not.
type Pacer struct {
	mu      sync.Mutex
	every   rate.Limit
	limiter *rate.Limiter
}

// NewPacer returns a Pacer whose first Wait does not block. A zero delay
// disables pacing.
func NewPacer(delay time.Duration) *Pacer {
	every := rate.Every(delay)
	return &Pacer{
		every:   every,
		limiter: rate.NewLimiter(every, 1),
	}
}

// Wait blocks until the pause after the previous request has elapsed or ctx
// is done.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	limiter := p.limiter
	p.mu.Unlock()
	return limiter.Wait(ctx)
}

// Done starts the pause. The next Wait returns no earlier than one delay
// from now, however long the request took.
func (p *Pacer) Done() {
	limiter := rate.NewLimiter(p.every, 1)
	limiter.AllowN(time.Now(), 1)

	p.mu.Lock()
	p.limiter = limiter
	p.mu.Unlock()
}
