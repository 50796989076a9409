package portalclient

import (
	"sync"
	"time"
)

// BannerRotator cycles through a fixed banner sequence by index modulo
// length. It owns its ticker: callers must Stop it on teardown, after which
// no further callbacks fire.
type BannerRotator struct {
	banners  []Banner
	interval time.Duration

	mu    sync.Mutex
	index int
	stop  chan struct{}
	once  sync.Once
}

// NewBannerRotator prepares a rotator over the active banners of settings.
// The slide interval comes from the settings; a non-positive value falls back
// to the default.
func NewBannerRotator(settings BannerSettings) *BannerRotator {
	var active []Banner
	for _, b := range settings.Banners {
		if b.IsActive {
			active = append(active, b)
		}
	}

	interval := time.Duration(settings.SlideIntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = 3 * time.Second
	}

	return &BannerRotator{
		banners:  active,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Current returns the banner at the rotation cursor.
func (r *BannerRotator) Current() (Banner, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.banners) == 0 {
		return Banner{}, false
	}
	return r.banners[r.index], true
}

// Advance moves the cursor to the next banner, wrapping around.
func (r *BannerRotator) Advance() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.banners) == 0 {
		return
	}
	r.index = (r.index + 1) % len(r.banners)
}

// Start begins auto-rotation, invoking onChange with each new banner. It is a
// no-op for empty or single-banner sequences.
func (r *BannerRotator) Start(onChange func(Banner)) {
	if len(r.banners) < 2 {
		return
	}

	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.stop:
				return
			case <-ticker.C:
				r.Advance()
				if current, ok := r.Current(); ok && onChange != nil {
					onChange(current)
				}
			}
		}
	}()
}

// Stop cancels auto-rotation. Safe to call more than once.
func (r *BannerRotator) Stop() {
	r.once.Do(func() { close(r.stop) })
}
