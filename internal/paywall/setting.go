// Package paywall decides whether a post is paid and how much of it a viewer
// who has not bought it may see.
package paywall

import (
	"encoding/json"
	"math"
)

// PaymentSetting is the per-post paywall configuration. A nil setting means
// the post is free.
type PaymentSetting struct {
	// Enabled is 1 when the paywall is on. Any other value, including a
	// boolean true on the wire, leaves the post free.
	Enabled int `json:"enabled"`
	// FreePreviewCount is how many leading images stay visible.
	FreePreviewCount int `json:"free_preview_count"`
}

// UnmarshalJSON accepts both free_preview_count and freePreviewCount.
// Values that are not numbers decode as 0.
func (s *PaymentSetting) UnmarshalJSON(data []byte) error {
	var raw struct {
		Enabled json.RawMessage `json:"enabled"`
		Snake   json.RawMessage `json:"free_preview_count"`
		Camel   json.RawMessage `json:"freePreviewCount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	s.Enabled = intOrZero(raw.Enabled)
	s.FreePreviewCount = normalizePreviewCount(intOrZero(raw.Snake), intOrZero(raw.Camel))
	return nil
}

func normalizePreviewCount(snake, camel int) int {
	n := snake
	if n == 0 {
		n = camel
	}
	if n < 0 {
		return 0
	}
	return n
}

func intOrZero(raw json.RawMessage) int {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0
	}
	if math.IsNaN(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

func IsPaid(setting *PaymentSetting) bool {
	return setting != nil && setting.Enabled == 1
}

func FreePreviewCount(setting *PaymentSetting) int {
	if setting == nil || setting.FreePreviewCount < 0 {
		return 0
	}
	return setting.FreePreviewCount
}

// ShouldProtect reports whether the viewer gets the redacted form.
func ShouldProtect(setting *PaymentSetting, isAuthor, hasPurchased bool) bool {
	return IsPaid(setting) && !isAuthor && !hasPurchased
}
