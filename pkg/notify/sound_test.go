package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() SoundConfig {
	return SoundConfig{
		Enabled:   true,
		Frequency: 800,
		Duration:  200 * time.Millisecond,
		BeepDelay: 0,
	}
}

func TestPlayReviewCompleteSound(t *testing.T) {
	provider := &FakeBeepProvider{}
	notifier := NewSoundNotifierWithProvider(testConfig(), provider)

	notifier.PlayReviewCompleteSound()
	provider.WaitForCalls(1)

	assert.Equal(t, 1, provider.CallCount)
	assert.Equal(t, 800.0, provider.LastFreq)
	assert.Equal(t, 200, provider.LastDur)
}

func TestPlayCriticalFindingSound(t *testing.T) {
	provider := &FakeBeepProvider{}
	notifier := NewSoundNotifierWithProvider(testConfig(), provider)

	notifier.PlayCriticalFindingSound()
	provider.WaitForCalls(2)

	assert.Equal(t, 2, provider.CallCount)
	assert.Equal(t, 400.0, provider.LastFreq)
}

func TestDisabledNotifierIsSilent(t *testing.T) {
	provider := &FakeBeepProvider{}
	config := testConfig()
	config.Enabled = false
	notifier := NewSoundNotifierWithProvider(config, provider)

	notifier.PlayReviewCompleteSound()
	notifier.PlayCriticalFindingSound()

	assert.Equal(t, 0, provider.CallCount)
	assert.False(t, notifier.IsEnabled())
}

func TestSetEnabled(t *testing.T) {
	notifier := NewSoundNotifier(DefaultSoundConfig())

	notifier.SetEnabled(false)
	assert.False(t, notifier.IsEnabled())

	notifier.SetEnabled(true)
	assert.True(t, notifier.IsEnabled())
}
