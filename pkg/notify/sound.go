// Package notify plays audio cues at review milestones.
package notify

import (
	"sync"
	"time"

	"github.com/gen2brain/beeep"
)

// BeepProvider interface for sound beep functionality.
type BeepProvider interface {
	Beep(frequency float64, duration int) error
}

// RealBeepProvider implements BeepProvider using the beeep library.
type RealBeepProvider struct{}

func (r *RealBeepProvider) Beep(frequency float64, duration int) error {
	return beeep.Beep(frequency, duration)
}

// FakeBeepProvider implements BeepProvider for testing without actual sound.
type FakeBeepProvider struct {
	CallCount int
	LastFreq  float64
	LastDur   int
	Calls     []BeepCall
	mu        sync.Mutex
}

// BeepCall records one fake beep invocation.
type BeepCall struct {
	Frequency float64
	Duration  int
}

func (f *FakeBeepProvider) Beep(frequency float64, duration int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CallCount++
	f.LastFreq = frequency
	f.LastDur = duration
	f.Calls = append(f.Calls, BeepCall{Frequency: frequency, Duration: duration})

	return nil
}

// WaitForCalls waits until the given number of beep calls has been made.
// Beeps play on background goroutines, so tests need a rendezvous before
// asserting.
func (f *FakeBeepProvider) WaitForCalls(expectedCalls int) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		f.mu.Lock()
		count := f.CallCount
		f.mu.Unlock()
		if count >= expectedCalls {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
}

// SoundConfig holds sound notification settings.
type SoundConfig struct {
	Enabled   bool
	Frequency int
	Duration  time.Duration
	BeepDelay time.Duration
}

// DefaultSoundConfig returns the default sound configuration.
func DefaultSoundConfig() SoundConfig {
	return SoundConfig{
		Enabled:   true,
		Frequency: 800,
		Duration:  200 * time.Millisecond,
		BeepDelay: 50 * time.Millisecond,
	}
}

// SoundNotifier handles audio notifications for review events.
type SoundNotifier struct {
	config   SoundConfig
	provider BeepProvider
}

// NewSoundNotifier creates a sound notifier with the real beep provider.
func NewSoundNotifier(config SoundConfig) *SoundNotifier {
	return &SoundNotifier{
		config:   config,
		provider: &RealBeepProvider{},
	}
}

// NewSoundNotifierWithProvider creates a sound notifier with a custom
// provider, for tests.
func NewSoundNotifierWithProvider(config SoundConfig, provider BeepProvider) *SoundNotifier {
	return &SoundNotifier{
		config:   config,
		provider: provider,
	}
}

// PlayReviewCompleteSound plays a short cue when a review finishes clean.
func (s *SoundNotifier) PlayReviewCompleteSound() {
	if !s.config.Enabled {
		return
	}

	go func() {
		_ = s.provider.Beep(float64(s.config.Frequency), int(s.config.Duration.Milliseconds())) //nolint:errcheck // feedback errors are not critical
	}()
}

// PlayCriticalFindingSound plays a low double beep when a review surfaces
// critical findings.
func (s *SoundNotifier) PlayCriticalFindingSound() {
	if !s.config.Enabled {
		return
	}

	go func() {
		_ = s.provider.Beep(400.0, 300) //nolint:errcheck // feedback errors are not critical
		if s.config.BeepDelay > 0 {
			timer := time.NewTimer(s.config.BeepDelay)
			<-timer.C
		}
		_ = s.provider.Beep(400.0, 300) //nolint:errcheck // feedback errors are not critical
	}()
}

// SetEnabled enables or disables sound notifications.
func (s *SoundNotifier) SetEnabled(enabled bool) {
	s.config.Enabled = enabled
}

// IsEnabled returns whether sound notifications are enabled.
func (s *SoundNotifier) IsEnabled() bool {
	return s.config.Enabled
}
