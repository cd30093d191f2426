package autoclicker

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Service owns the shared session state and runs at most one click loop at a
// time. The UI, the global hotkey listener and the loop itself all go through
// the same mutex; the lock is never held across a sleep or a capability call.
type Service struct {
	pointer Pointer
	sampler Sampler
	logger  Logger

	mu            sync.Mutex
	cfg           Config
	enabled       bool
	sessionID     uint32
	buttonPressed bool
	startTime     time.Time
	totalClicks   uint32
	lastColor     RGB
	lastErr       error

	wg sync.WaitGroup
}

// Stats is a point-in-time snapshot of the session state for display.
type Stats struct {
	Enabled       bool
	TotalClicks   uint32
	StartTime     time.Time
	ButtonPressed bool
	LastColor     RGB
	LastErr       error
}

// NewService validates and normalizes cfg. The sampler may be nil; the color
// gate then falls back to the last known sample (initially black), matching
// the sampling-failure rule.
func NewService(cfg Config, pointer Pointer, sampler Sampler, logger Logger) (*Service, error) {
	if pointer == nil {
		return nil, fmt.Errorf("pointer is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if err := normalizeConfig(&cfg); err != nil {
		return nil, err
	}

	return &Service{
		pointer: pointer,
		sampler: sampler,
		logger:  logger,
		cfg:     cfg,
	}, nil
}

func normalizeConfig(cfg *Config) error {
	switch cfg.Button {
	case ButtonLeft, ButtonMiddle, ButtonRight:
	default:
		return fmt.Errorf("invalid button %d", cfg.Button)
	}
	switch cfg.ClickMode {
	case ClickSingle, ClickDouble, ClickToggle:
	default:
		return fmt.Errorf("invalid click mode %d", cfg.ClickMode)
	}
	switch cfg.LimitMode {
	case LimitNone, LimitClicks, LimitTime:
	default:
		return fmt.Errorf("invalid limit mode %d", cfg.LimitMode)
	}
	if cfg.LimitMode == LimitTime && cfg.LimitSeconds < 0 {
		return fmt.Errorf("limit seconds must be >= 0")
	}

	cfg.RandomMax = clampSeconds(cfg.RandomMax, 0, 3600)
	cfg.RandomMin = clampSeconds(cfg.RandomMin, 0, cfg.RandomMax)
	return nil
}

func clampSeconds(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Start honors Config.StartEnabled.
func (s *Service) Start() {
	s.mu.Lock()
	start := s.cfg.StartEnabled
	s.mu.Unlock()
	if start {
		s.SetEnabled(true)
	}
}

// Stop disables the clicker and waits for the loop goroutine to exit. The
// wait is bounded by the current tick's sleep.
func (s *Service) Stop() {
	s.SetEnabled(false)
	s.wg.Wait()
}

func (s *Service) IsEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Toggle flips the enabled flag and returns the new state. This is the entry
// point for both the UI button and the global hotkey.
func (s *Service) Toggle() bool {
	enabled := !s.IsEnabled()
	s.SetEnabled(enabled)
	return enabled
}

// SetEnabled requests a run-state change. Enabling starts a fresh session:
// counters reset, the session id bumps (invalidating any loop instance still
// mid-sleep) and a new loop goroutine spawns. Disabling is cooperative; the
// running loop observes it at the top of its next tick. A button left held by
// the previous session is force-released on either edge.
func (s *Service) SetEnabled(enabled bool) {
	s.mu.Lock()
	if s.enabled == enabled {
		s.mu.Unlock()
		return
	}

	stale := s.buttonPressed
	button := s.cfg.Button
	s.buttonPressed = false

	if !enabled {
		s.enabled = false
		s.mu.Unlock()
		if stale {
			s.releaseButton(button)
		}
		return
	}

	s.enabled = true
	s.sessionID++
	s.totalClicks = 0
	s.startTime = time.Now()
	s.lastErr = nil
	id := s.sessionID
	s.mu.Unlock()

	if stale {
		s.releaseButton(button)
	}

	s.logger.Info("Session started", "session", id)
	s.wg.Add(1)
	go s.run(id)
}

// SetConfig replaces the session configuration. Rejected while a session is
// running; the loop reads its config once per tick and a mid-session swap
// would tear the limit and interval semantics.
func (s *Service) SetConfig(cfg Config) error {
	if err := normalizeConfig(&cfg); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.enabled {
		return fmt.Errorf("cannot change configuration while enabled")
	}
	s.cfg = cfg
	return nil
}

func (s *Service) Config() Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Enabled:       s.enabled,
		TotalClicks:   s.totalClicks,
		StartTime:     s.startTime,
		ButtonPressed: s.buttonPressed,
		LastColor:     s.lastColor,
		LastErr:       s.lastErr,
	}
}

// run is one loop instance, bound to the session id captured at spawn. Tick
// order: staleness check, limit check, gate, action, delay.
func (s *Service) run(id uint32) {
	defer s.wg.Done()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		s.mu.Lock()
		if !s.enabled || s.sessionID != id {
			// Superseded or disabled externally. A newer session owns the
			// button state now, so no release here.
			s.mu.Unlock()
			return
		}

		cfg := s.cfg
		if cfg.limitReached(s.totalClicks, s.startTime, time.Now()) {
			s.enabled = false
			pressed := s.buttonPressed
			s.buttonPressed = false
			s.mu.Unlock()

			if pressed {
				s.releaseButton(cfg.Button)
			}
			s.logger.Info("Limit reached, session stopped", "session", id)
			return
		}
		lastColor := s.lastColor
		s.mu.Unlock()

		fire := true
		if cfg.ColorGate {
			sampled := s.sampleColor(id, lastColor)
			fire = cfg.gateAllows(sampled)
		}
		if fire && cfg.GatePredicate != nil {
			fire = cfg.GatePredicate()
		}

		if fire {
			if !s.fire(id, cfg) {
				return
			}
		}

		time.Sleep(cfg.nextDelay(rng))
	}
}

// sampleColor queries the screen under the pointer. On failure the previous
// successful sample is reused; sampling is never fatal.
func (s *Service) sampleColor(id uint32, last RGB) RGB {
	if s.sampler == nil {
		return last
	}
	sampled, err := s.sampler.SampleCursorColor()
	if err != nil {
		s.logger.Debug("Color sample failed, reusing last", "err", err)
		return last
	}

	s.mu.Lock()
	if s.sessionID == id {
		s.lastColor = sampled
	}
	s.mu.Unlock()
	return sampled
}

// fire performs one action and updates the counters. Returns false when the
// loop must exit: either the session went stale under the lock, or the
// pointer capability failed, which is fatal to the session.
func (s *Service) fire(id uint32, cfg Config) bool {
	press := false
	if cfg.ClickMode == ClickToggle {
		s.mu.Lock()
		if !s.enabled || s.sessionID != id {
			s.mu.Unlock()
			return false
		}
		s.buttonPressed = !s.buttonPressed
		press = s.buttonPressed
		s.mu.Unlock()
	}

	var err error
	switch cfg.ClickMode {
	case ClickToggle:
		if press {
			err = s.pointer.Press(cfg.Button)
		} else {
			err = s.pointer.Release(cfg.Button)
		}
	case ClickDouble:
		if err = s.pointer.Click(cfg.Button); err == nil {
			err = s.pointer.Click(cfg.Button)
		}
	default:
		err = s.pointer.Click(cfg.Button)
	}

	if err != nil {
		s.mu.Lock()
		if s.sessionID == id {
			s.enabled = false
			s.buttonPressed = false
			s.lastErr = err
		}
		s.mu.Unlock()
		s.logger.Error("Pointer injection failed, session aborted", "session", id, "err", err)
		return false
	}

	s.mu.Lock()
	if s.sessionID == id {
		s.totalClicks++
	}
	s.mu.Unlock()
	return true
}

func (s *Service) releaseButton(button Button) {
	if err := s.pointer.Release(button); err != nil {
		s.logger.Warn("Failed to release held button", "button", button, "err", err)
	}
}
