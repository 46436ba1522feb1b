package service

import (
	"sync"
	"time"

	"chaosguard/internal/domain"

	"go.uber.org/zap"
)

// SpamConfig holds the sliding-window parameters
type SpamConfig struct {
	Limit        int           // messages allowed inside the window
	Window       time.Duration // trailing window size
	MuteDuration time.Duration // mute length on violation
}

// userWindow is the recent message timestamps of one user.
// Guarded by its own mutex so users never contend with each other.
type userWindow struct {
	mu    sync.Mutex
	times []time.Time
}

// SpamDetector tracks message bursts per user across all chats.
// State is process-local and lost on restart.
type SpamDetector struct {
	cfg    SpamConfig
	logger *zap.Logger
	now    func() time.Time

	mu      sync.RWMutex
	windows map[int64]*userWindow
}

// NewSpamDetector creates a new spam detector
func NewSpamDetector(cfg SpamConfig, logger *zap.Logger) *SpamDetector {
	return &SpamDetector{
		cfg:     cfg,
		logger:  logger,
		now:     time.Now,
		windows: make(map[int64]*userWindow),
	}
}

// Check records one message from the user and decides whether the user
// exceeded the burst limit. Timestamps older than the window are pruned
// first, then the current one is appended; a mute verdict is emitted
// when the window holds more than Limit entries.
func (d *SpamDetector) Check(userID int64) domain.Verdict {
	w := d.window(userID)

	w.mu.Lock()
	defer w.mu.Unlock()

	now := d.now()
	cutoff := now.Add(-d.cfg.Window)

	kept := w.times[:0]
	for _, t := range w.times {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	w.times = append(kept, now)

	if len(w.times) <= d.cfg.Limit {
		return domain.NoAction()
	}

	d.logger.Info("Spam limit exceeded",
		zap.Int64("user_id", userID),
		zap.Int("messages_in_window", len(w.times)),
	)

	return domain.Verdict{
		Action:  domain.ActionMute,
		Notice:  "🚫 Spam is not allowed here. You have been muted temporarily.",
		MuteFor: d.cfg.MuteDuration,
	}
}

// window returns the per-user window, creating it on first message
func (d *SpamDetector) window(userID int64) *userWindow {
	d.mu.RLock()
	w, ok := d.windows[userID]
	d.mu.RUnlock()
	if ok {
		return w
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if w, ok = d.windows[userID]; ok {
		return w
	}
	w = &userWindow{}
	d.windows[userID] = w
	return w
}

// SweepIdle drops windows whose newest entry left the trailing window,
// keeping memory bounded to recently active users
func (d *SpamDetector) SweepIdle() int {
	cutoff := d.now().Add(-d.cfg.Window)

	d.mu.Lock()
	defer d.mu.Unlock()

	removed := 0
	for userID, w := range d.windows {
		w.mu.Lock()
		idle := len(w.times) == 0 || !w.times[len(w.times)-1].After(cutoff)
		w.mu.Unlock()
		if idle {
			delete(d.windows, userID)
			removed++
		}
	}

	return removed
}
