package utils

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	seoul  = loadSeoul()
	korean = message.NewPrinter(language.Korean)
)

func loadSeoul() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}

// FormatWon renders an amount in won with thousands separators, e.g. 12000 -> "12,000원"
func FormatWon(amount int64) string {
	return FormatNumber(amount) + "원"
}

// FormatNumber inserts thousands separators the Korean way, e.g. 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	return korean.Sprintf("%d", n)
}

// FormatDate renders t in Korean local time as "2006.01.02". The zero time renders as "-".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(seoul).Format("2006.01.02")
}

// FormatDateTime renders t in Korean local time as "2006.01.02 15:04"
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(seoul).Format("2006.01.02 15:04")
}

// FormatPhone hyphenates Korean phone numbers. Input that is not a known shape is returned unchanged.
func FormatPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()

	switch {
	case strings.HasPrefix(d, "02") && len(d) == 9:
		return d[:2] + "-" + d[2:5] + "-" + d[5:]
	case strings.HasPrefix(d, "02") && len(d) == 10:
		return d[:2] + "-" + d[2:6] + "-" + d[6:]
	case len(d) == 11:
		return d[:3] + "-" + d[3:7] + "-" + d[7:]
	case len(d) == 10:
		return d[:3] + "-" + d[3:6] + "-" + d[6:]
	case len(d) == 8 && strings.HasPrefix(d, "1"):
		// representative numbers such as 1588-1234
		return d[:4] + "-" + d[4:]
	}
	return raw
}
