package httputil

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// HostLimiter paces outgoing requests per upstream host.
// A nil *HostLimiter, or one created with a non-positive rate, never blocks.
type HostLimiter struct {
	perSecond float64
	burst     int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewHostLimiter creates a limiter allowing perSecond requests per host with
// the given burst. A perSecond of 0 disables limiting.
func NewHostLimiter(perSecond float64, burst int) *HostLimiter {
	return &HostLimiter{
		perSecond: perSecond,
		burst:     max(burst, 1),
		limiters:  make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to rawURL's host is allowed or ctx is done.
func (h *HostLimiter) Wait(ctx context.Context, rawURL string) error {
	if h == nil || h.perSecond <= 0 {
		return nil
	}
	host := rawURL
	if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
		host = u.Host
	}
	return h.limiter(host).Wait(ctx)
}

func (h *HostLimiter) limiter(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()
	l, ok := h.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(h.perSecond), h.burst)
		h.limiters[host] = l
	}
	return l
}
