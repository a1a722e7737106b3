package util

import (
	"fmt"
	"net/url"
	"time"
)

// MaskPhone replaces every digit that is directly followed by four more digits with '*',
// so "+34600111222" becomes "+*******1222".
func MaskPhone(phone string) string {
	masked := []byte(phone)
	run := 0
	// walk backwards counting the contiguous digits that follow each position
	for i := len(masked) - 1; i >= 0; i-- {
		if !isDigit(phone[i]) {
			run = 0

			continue
		}
		if run >= 4 {
			masked[i] = '*'
		}
		run++
	}

	return string(masked)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// RedactURL strips credentials, path and query from a URL for logging.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "<redacted>"
	}

	return u.Scheme + "://" + u.Host + "/..."
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
