package utils

import (
	"fmt"
	"strconv"
	"time"
)

// FormatLongDateTime renders t in a long human-readable form,
// e.g. "April 1st 2021, 7:30 pm".
func FormatLongDateTime(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	meridiem := "am"
	if t.Hour() >= 12 {
		meridiem = "pm"
	}
	return fmt.Sprintf("%s %s %d, %d:%02d %s",
		t.Month().String(), Ordinal(t.Day()), t.Year(), hour, t.Minute(), meridiem)
}

// Ordinal returns n with its English ordinal suffix (1st, 2nd, 3rd, 11th...).
func Ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// teens always take "th"
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return strconv.Itoa(n) + suffix
}
