package resolver

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "20060102"

// validateDates accepts an 8-digit calendar date (YYYYMMDD) or an
// inclusive range (YYYYMMDD-YYYYMMDD). Values that do not name real
// calendar dates are rejected here rather than at the transport layer.
func validateDates(value string) error {
	if start, end, ok := strings.Cut(value, "-"); ok {
		from, err := parseDate(start)
		if err != nil {
			return err
		}
		to, err := parseDate(end)
		if err != nil {
			return err
		}
		if to.Before(from) {
			return fmt.Errorf("range end %s precedes start %s", end, start)
		}
		return nil
	}
	_, err := parseDate(value)
	return err
}

func parseDate(value string) (time.Time, error) {
	if len(value) != len(dateLayout) {
		return time.Time{}, fmt.Errorf("date %q must be 8 digits (YYYYMMDD)", value)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not a calendar date", value)
	}
	return t, nil
}

// FormatDate renders a time as the upstream YYYYMMDD date filter value.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDateRange renders an inclusive date range filter value.
func FormatDateRange(start, end time.Time) string {
	return FormatDate(start) + "-" + FormatDate(end)
}
