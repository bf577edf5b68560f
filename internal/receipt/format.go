package receipt

import (
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer renders localized numbers (decimal separator, thousands
// grouping) for currency amounts. The site is English-language, so
// the locale is fixed rather than negotiated per request.
var printer = message.NewPrinter(language.English)

const (
	longDateLayout    = "January 2, 2006"
	orderNumberPrefix = "GDC25"
)

// FormatAmount renders an amount given in minor currency units (cents)
// as a display string, e.g. 30500/"chf" -> "CHF 305.00". The currency
// code is normalized to uppercase. Amounts are expected to be >= 0;
// negative input is a data error upstream and is rendered as-is.
func FormatAmount(amountMinor int64, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = "CHF"
	}
	return printer.Sprintf("%s %.2f", code, float64(amountMinor)/100)
}

// FormatDate renders a timestamp as a long human-readable date,
// e.g. "March 7, 2025".
func FormatDate(t time.Time) string {
	return t.UTC().Format(longDateLayout)
}

// FormatBookingDate renders a stored booking date (YYYY-MM-DD) as a
// long date. Unparseable input is returned verbatim so the formatter
// never fails.
func FormatBookingDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format(longDateLayout)
}

// FormatDuration renders a booked duration in hours with the unit
// pluralized, e.g. "1 hour", "2 hours". The boundary is > 1, not != 1,
// so fractional durations like 0.5 stay singular.
func FormatDuration(hours float64) string {
	n := strconv.FormatFloat(hours, 'f', -1, 64)
	if hours > 1 {
		return n + " hours"
	}
	return n + " hour"
}

// FormatTimeRange joins stored start and end times verbatim. The store
// holds venue-local wall-clock strings, so no timezone conversion is
// applied.
func FormatTimeRange(start, end string) string {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" && end == "" {
		return ""
	}
	return start + " - " + end
}

// OrderNumber derives the human-readable order reference shown on
// receipts and confirmation emails: GDC25-<YYYYMMDD>-<LAST6>, where
// LAST6 is the uppercased tail of the source record's identifier.
// It is deterministic for a given input but intentionally not unique;
// nothing may key on it.
func OrderNumber(createdAt time.Time, sourceID string) string {
	return orderNumberPrefix + "-" + createdAt.UTC().Format("20060102") + "-" + strings.ToUpper(last6(sourceID))
}

func last6(id string) string {
	if len(id) <= 6 {
		return id
	}
	return id[len(id)-6:]
}
