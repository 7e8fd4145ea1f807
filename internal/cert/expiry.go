package cert

import "time"

// Certificates expire 23 calendar months after the training date.
const expiryOffsetMonths = 23

const dateLayout = "2006-01-02"

// ComputeExpiry adds the expiry offset to a training date, preserving the
// day of month. When the target month is shorter, the day clamps to that
// month's last day (2024-03-31 expires 2026-02-28).
func ComputeExpiry(training time.Time) time.Time {
	year, month, day := training.Date()

	total := int(month) - 1 + expiryOffsetMonths
	year += total / 12
	month = time.Month(total%12 + 1)

	if last := lastDayOfMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, training.Location())
}

// ComputeExpiryString is the form-facing variant: an empty or unparseable
// training date yields an empty expiry.
func ComputeExpiryString(training string) string {
	t, err := time.Parse(dateLayout, training)
	if err != nil {
		return ""
	}
	return ComputeExpiry(t).Format(dateLayout)
}

func lastDayOfMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
