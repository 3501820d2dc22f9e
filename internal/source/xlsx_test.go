package source

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"classfeed/internal/roster"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.xlsx")

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetRow("Sheet1", "A1", &[]any{"Title", "Start Date", "Start Time"})
	// A native date cell and a text time cell, as institutions mix them.
	f.SetSheetRow("Sheet1", "A2", &[]any{"Intro Lecture", time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), "14:00"})
	f.SetSheetRow("Sheet1", "A3", &[]any{"Orientation", "2024-03-06", ""})

	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadWorkbook(t *testing.T) {
	path := writeWorkbook(t)

	table, err := LoadWorkbook(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Headers) != 3 || table.Headers[0] != "Title" {
		t.Fatalf("headers = %v", table.Headers)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("rows = %d", len(table.Rows))
	}

	cols := roster.MapColumns(table.Headers)

	// The native date cell arrives as a raw serial and must still
	// coerce to the right calendar date.
	d, ok := roster.ToDate(cols.Value(table.Rows[0], roster.FieldStartDate))
	if !ok || d.Format("2006-01-02") != "2024-03-04" {
		t.Errorf("native date cell: ok=%v d=%v raw=%q", ok, d, cols.Value(table.Rows[0], roster.FieldStartDate))
	}

	clock, ok := roster.ToTime(cols.Value(table.Rows[0], roster.FieldStartTime))
	if !ok || clock.Format("15:04") != "14:00" {
		t.Errorf("time cell: ok=%v clock=%v", ok, clock)
	}

	d, ok = roster.ToDate(cols.Value(table.Rows[1], roster.FieldStartDate))
	if !ok || d.Format("2006-01-02") != "2024-03-06" {
		t.Errorf("text date cell: ok=%v d=%v", ok, d)
	}
}

func TestLoadWorkbookMissingFile(t *testing.T) {
	if _, err := LoadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"), ""); err == nil {
		t.Error("missing workbook should be a boundary failure")
	}
}

func TestLoadWorkbookMissingSheet(t *testing.T) {
	path := writeWorkbook(t)
	if _, err := LoadWorkbook(path, "No Such Sheet"); err == nil {
		t.Error("missing sheet should be a boundary failure")
	}
}
