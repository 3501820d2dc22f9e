package roster

import (
	"testing"
	"time"
)

func TestMapColumns(t *testing.T) {
	headers := []string{"  Course Code ", "TITLE", "Start Date", "start time", "Place", "Link"}
	cols := MapColumns(headers)

	want := map[Field]int{
		FieldCourse:    0,
		FieldTitle:     1,
		FieldStartDate: 2,
		FieldStartTime: 3,
		FieldLocation:  4,
		FieldURL:       5,
		FieldEndDate:   -1,
		FieldUID:       -1,
		FieldTimezone:  -1,
	}
	for field, idx := range want {
		if got := cols[field]; got != idx {
			t.Errorf("field %d: got column %d, want %d", field, got, idx)
		}
	}
}

func TestMapColumnsAliasPriority(t *testing.T) {
	// "start date" is preferred over the shorter "start" alias even
	// when "start" appears first in the header row.
	cols := MapColumns([]string{"Start", "Start Date"})
	if got := cols[FieldStartDate]; got != 1 {
		t.Errorf("got column %d, want 1", got)
	}
}

func TestValue(t *testing.T) {
	cols := MapColumns([]string{"Title", "Location"})
	row := []string{"  Intro Lecture  "}

	if got := cols.Value(row, FieldTitle); got != "Intro Lecture" {
		t.Errorf("got %q", got)
	}
	// Row shorter than the header: reads as empty, not out of range.
	if got := cols.Value(row, FieldLocation); got != "" {
		t.Errorf("got %q, want empty", got)
	}
	if got := cols.Value(row, FieldUID); got != "" {
		t.Errorf("unmapped field: got %q, want empty", got)
	}
}

func TestEmpty(t *testing.T) {
	if !Empty([]string{"", "  ", ""}) {
		t.Error("blank row should be empty")
	}
	if Empty([]string{"", "x"}) {
		t.Error("row with content should not be empty")
	}
	if !Empty(nil) {
		t.Error("nil row should be empty")
	}
}

func TestToDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-03-04", "2024-03-04", true},
		// Ambiguous day/month resolves day-first by policy.
		{"01/02/2024", "2024-02-01", true},
		{"13/05/2024", "2024-05-13", true},
		// Month-first only when day-first cannot parse.
		{"05/13/2024", "2024-05-13", true},
		// ISO datetime fallback.
		{"2024-03-04T14:00:00", "2024-03-04", true},
		// Native date cell read raw: Excel serial for 2024-03-04.
		{"45355", "2024-03-04", true},
		// A bare year or other small number is not a date serial.
		{"2024", "", false},
		{"7", "", false},
		{"not a date", "", false},
		{"", "", false},
		{"   ", "", false},
	}

	for _, tc := range tests {
		got, ok := ToDate(tc.in)
		if ok != tc.ok {
			t.Errorf("ToDate(%q): ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got.Format("2006-01-02") != tc.want {
			t.Errorf("ToDate(%q) = %s, want %s", tc.in, got.Format("2006-01-02"), tc.want)
		}
	}
}

func TestToTime(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"14:00", "14:00:00", true},
		{"9:05", "09:05:00", true},
		// Seconds survive parsing; the instant combiner drops them.
		{"14:00:30", "14:00:30", true},
		// Native time cell read raw: serial fraction of a day.
		{"0.5", "12:00:00", true},
		{"0.75", "18:00:00", true},
		{"2024-03-04T14:00:00", "14:00:00", true},
		// Integer-only text is not a clock time, unlike a real serial
		// fraction.
		{"14", "", false},
		{"45355", "", false},
		{"25:00", "", false},
		{"garbage", "", false},
		{"", "", false},
	}

	for _, tc := range tests {
		got, ok := ToTime(tc.in)
		if ok != tc.ok {
			t.Errorf("ToTime(%q): ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got.Format(time.TimeOnly) != tc.want {
			t.Errorf("ToTime(%q) = %s, want %s", tc.in, got.Format(time.TimeOnly), tc.want)
		}
	}
}

func TestToBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", " yes ", "Y", "1", "transparent", "FREE"} {
		if !ToBool(s) {
			t.Errorf("ToBool(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "no", "0", "false", "opaque", "maybe"} {
		if ToBool(s) {
			t.Errorf("ToBool(%q) = true, want false", s)
		}
	}
}
