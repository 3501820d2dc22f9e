// Package roster maps heterogeneous spreadsheet headers onto the fixed
// set of semantic schedule fields and coerces raw cell values into
// dates, times and booleans. All lookups degrade to sentinels; the
// feed builder decides whether a row is accepted.
package roster

import "strings"

// Field is one of the canonical schedule columns.
type Field int

const (
	FieldUID Field = iota
	FieldCourse
	FieldTitle
	FieldCategory
	FieldStartDate
	FieldStartTime
	FieldEndDate
	FieldEndTime
	FieldTimezone
	FieldLocation
	FieldDescription
	FieldURL
	FieldTransparent
)

// aliases lists the accepted header spellings per field, matched
// case-insensitively after trimming.
var aliases = map[Field][]string{
	FieldUID:         {"unique id", "uid"},
	FieldCourse:      {"course code", "course", "code"},
	FieldTitle:       {"title", "event title", "headline", "event headline"},
	FieldCategory:    {"category"},
	FieldStartDate:   {"start date", "start"},
	FieldStartTime:   {"start time"},
	FieldEndDate:     {"end date"},
	FieldEndTime:     {"end time"},
	FieldTimezone:    {"timezone", "tz"},
	FieldLocation:    {"location", "place"},
	FieldDescription: {"description", "notes", "note"},
	FieldURL:         {"link", "url"},
	FieldTransparent: {"transparent", "transp"},
}

// Table is a materialized worksheet: one header row plus data rows.
// Data rows may be shorter than the header row; missing cells read as
// empty.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Columns maps each canonical field to its column index, or -1 when no
// alias matched any header.
type Columns map[Field]int

// MapColumns resolves the header row against the alias table. The
// first alias that matches a header wins for each field.
func MapColumns(headers []string) Columns {
	norm := make(map[string]int, len(headers))
	for i, h := range headers {
		key := normalize(h)
		if _, seen := norm[key]; !seen {
			norm[key] = i
		}
	}

	cols := make(Columns, len(aliases))
	for field, names := range aliases {
		cols[field] = -1
		for _, name := range names {
			if i, ok := norm[normalize(name)]; ok {
				cols[field] = i
				break
			}
		}
	}
	return cols
}

// Value returns the trimmed cell for a field, or "" when the field is
// not mapped or the row is too short.
func (c Columns) Value(row []string, f Field) string {
	i, ok := c[f]
	if !ok || i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Empty reports whether every cell in the row is blank.
func Empty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
