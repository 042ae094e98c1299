// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// FormatMoney formats an amount with a dollar sign and grouped digits,
// keeping up to two fraction digits.
// e.g., 1234.5 -> "$1,234.5", 2000 -> "$2,000"
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoney(-amount)
	}
	return "$" + printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
}

// FormatElapsed formats a duration for progress messages.
// e.g., 1.234s -> "1.2s", 75s -> "1m 15s"
func FormatElapsed(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	secs := int64(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// SplitTime separates a schedule time such as "09:00 AM" into its clock part
// and meridiem. Times without a space return an empty suffix.
func SplitTime(s string) (clock, suffix string) {
	parts := strings.Split(strings.TrimSpace(s), " ")
	clock = parts[0]
	if len(parts) > 1 {
		suffix = parts[1]
	}
	return clock, suffix
}

// PageLabel is the page indicator text: "START" on the cover, "k / N" on day pages.
func PageLabel(page, totalPages int) string {
	if page == 0 {
		return "START"
	}
	return fmt.Sprintf("%d / %d", page, totalPages-1)
}
