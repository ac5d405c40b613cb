package cli

import (
	"strings"

	"github.com/yildizm/LaunchDash/internal/emoji"
)

// GetEmoji is a wrapper for the shared emoji package
func GetEmoji(key string) string {
	return emoji.GetEmoji(key)
}

// GetOutcomeEmoji returns the success or failure marker
func GetOutcomeEmoji(success bool) string {
	if success {
		return GetEmoji("success")
	}
	return GetEmoji("failure")
}

// CreateRateBar renders a ten cell bar for a rate in [0,1], with an ASCII
// fallback when emojis are disabled
func CreateRateBar(rate float64) string {
	switch {
	case rate < 0:
		rate = 0
	case rate > 1:
		rate = 1
	}
	barLength := int(rate * 10)

	if isEmojiDisabled() {
		return "[" + strings.Repeat("#", barLength) + strings.Repeat("-", 10-barLength) + "]"
	}
	return strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)
}
