package roster

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Cells are read from the workbook with raw values, so a native date
// or time cell arrives here as an Excel serial number ("45355",
// "0.5833", "45355.5833") rather than formatted text. The coercers
// below accept the serial form first and then fall through an ordered
// list of text layouts, mirroring how the feed treats typed and texty
// spreadsheets the same.

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006", // day-first wins over month-first for ambiguous values
	"01/02/2006",
}

var timeLayouts = []string{
	"15:04",
	"15:04:05",
}

var isoLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Date serials below this are far more likely stray numbers (a year
// typed into a date column, a count) than schedule dates; 20000 is
// late 1954.
const minDateSerial = 20000

// ToDate coerces a raw cell into a calendar date. The boolean is false
// when the cell is empty or no supported form parses.
func ToDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if f >= minDateSerial {
			if t, cerr := excelize.ExcelDateToTime(f, false); cerr == nil {
				return dateOnly(t), true
			}
		}
		// Numeric but not a plausible date serial.
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}
	return time.Time{}, false
}

// ToTime coerces a raw cell into a clock time carried on the zero
// date. Serial (native) values are truncated to minute precision;
// textual "15:04:05" keeps its seconds, which the instant combiner
// drops later.
func ToTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		// Native time and datetime cells carry a day fraction;
		// integer-only text like "14" is not a time.
		if f >= 0 && strings.Contains(s, ".") {
			if t, cerr := excelize.ExcelDateToTime(f, false); cerr == nil {
				return clockOnly(t.Hour(), t.Minute(), 0), true
			}
		}
		return time.Time{}, false
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return clockOnly(t.Hour(), t.Minute(), t.Second()), true
		}
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return clockOnly(t.Hour(), t.Minute(), 0), true
		}
	}
	return time.Time{}, false
}

// ToBool reports whether the cell is one of the accepted truthy
// spellings. Anything else, including absence, is false.
func ToBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "transparent", "free":
		return true
	}
	return false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func clockOnly(h, m, s int) time.Time {
	return time.Date(0, 1, 1, h, m, s, 0, time.UTC)
}
