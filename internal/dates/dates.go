// Package dates renders and compares calendar dates in the fixed IST
// offset used across the pipeline.
package dates

import "time"

// IST is the fixed UTC+5:30 offset. Feed timestamps arrive in arbitrary
// zones and are converted here before formatting, so every date in the
// output refers to the same calendar.
var IST = time.FixedZone("IST", 5*3600+30*60)

const dayFormat = "2006-01-02"

// YMD renders t as YYYY-MM-DD in IST.
func YMD(t time.Time) string {
	return t.In(IST).Format(dayFormat)
}

// Day truncates t to midnight of its calendar day in IST.
func Day(t time.Time) time.Time {
	t = t.In(IST)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, IST)
}

// WithinDays reports whether the YYYY-MM-DD string dstr falls within n
// calendar days of today, inclusive. A date that does not parse is kept:
// the filter fails open rather than dropping an entry it cannot judge.
func WithinDays(dstr string, today time.Time, n int) bool {
	d, err := time.ParseInLocation(dayFormat, dstr, IST)
	if err != nil {
		return true
	}
	diff := int(Day(today).Sub(Day(d)).Hours() / 24)
	return diff <= n
}
