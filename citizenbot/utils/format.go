package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/worldcitizen/citizen-bot/citizenbot/config"
)

func FormatNumber(n int64) string {
	str := strconv.FormatInt(n, 10)
	if n < 0 {
		str = str[1:]
	}

	var result []byte
	for i := len(str) - 1; i >= 0; i-- {
		if (len(str)-i-1)%3 == 0 && i != len(str)-1 {
			result = append([]byte{','}, result...)
		}
		result = append([]byte{str[i]}, result...)
	}

	if n < 0 {
		return "-" + string(result)
	}
	return string(result)
}

// ProgressBar draws percent (0-100) as a fixed-width bar.
func ProgressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * config.ProgressBarLength / 100
	return strings.Repeat(config.ProgressFilled, filled) +
		strings.Repeat(config.ProgressEmpty, config.ProgressBarLength-filled)
}

// FormatCooldown renders a wait like "1h 5m" or "42s".
func FormatCooldown(d time.Duration) string {
	d = d.Round(time.Second)
	switch {
	case d >= time.Hour:
		return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
	case d >= time.Minute:
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

func Ptr[T any](v T) *T {
	return &v
}
