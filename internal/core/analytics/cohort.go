package analytics

import (
	"fmt"
	"sort"
)

// DefaultWeekOffsets are the week columns of the cohort table
var DefaultWeekOffsets = []int{0, 1, 2, 3, 4, 8, 12}

// MissingCell is rendered for weeks that have not been observed yet
const MissingCell = "-"

// CohortRow is one signup cohort with its observed weekly retention.
// Weeks absent from Weekly have not been observed yet.
type CohortRow struct {
	Label  string
	Size   int
	Weekly map[int]float64
}

// NewCohortRow validates a cohort at the boundary: tracked weeks only,
// non-negative size and finite values.
func NewCohortRow(label string, size int, weekly map[int]float64) (CohortRow, error) {
	if size < 0 {
		return CohortRow{}, fmt.Errorf("cohort %q size %d: %w", label, size, ErrNegativeCount)
	}

	observed := make(map[int]float64, len(weekly))
	for week, v := range weekly {
		if !isTrackedWeek(week) {
			return CohortRow{}, fmt.Errorf("cohort %q week %d: %w", label, week, ErrInvalidWeek)
		}
		if !isFinite(v) {
			return CohortRow{}, fmt.Errorf("cohort %q week %d: %w", label, week, ErrNonFinite)
		}
		observed[week] = v
	}

	return CohortRow{Label: label, Size: size, Weekly: observed}, nil
}

// Value returns the retention observed at a week offset
func (r CohortRow) Value(week int) NullPercent {
	v, ok := r.Weekly[week]
	if !ok {
		return NullPercent{}
	}
	return Percent(v)
}

// ObservedPrefix reports whether no observed week follows an unobserved one
func ObservedPrefix(row CohortRow, weeks []int) bool {
	gap := false
	for _, w := range orderedWeeks(weeks) {
		if row.Value(w).Valid {
			if gap {
				return false
			}
			continue
		}
		gap = true
	}
	return true
}

// CohortCell is one display-ready cell of the cohort grid
type CohortCell struct {
	Week    int           `json:"week"`
	Value   NullPercent   `json:"value"`
	Band    RetentionBand `json:"band"`
	Display string        `json:"display"`
}

// CohortGridRow is one cohort projected onto the week columns
type CohortGridRow struct {
	Cohort      string       `json:"cohort"`
	Size        int          `json:"size"`
	SizeDisplay string       `json:"size_display"`
	Cells       []CohortCell `json:"cells"`
	Contiguous  bool         `json:"contiguous"` // false when an observed week follows a gap
}

// CohortGrid is the rectangular cohort retention table
type CohortGrid struct {
	Weeks   []int             `json:"weeks"`
	Headers []string          `json:"headers"`
	Rows    []CohortGridRow   `json:"rows"`
	Legend  []BandLegendEntry `json:"legend"`
}

// ProjectCohorts lays cohorts out on the given week columns (DefaultWeekOffsets when empty).
// Unobserved weeks become no-data cells; nothing is interpolated.
func ProjectCohorts(rows []CohortRow, weeks []int) CohortGrid {
	if len(weeks) == 0 {
		weeks = DefaultWeekOffsets
	}
	cols := append([]int(nil), weeks...)

	headers := make([]string, 0, len(cols))
	for _, w := range cols {
		headers = append(headers, WeekHeader(w))
	}

	grid := CohortGrid{
		Weeks:   cols,
		Headers: headers,
		Rows:    make([]CohortGridRow, 0, len(rows)),
		Legend:  RetentionLegend(),
	}

	for _, row := range rows {
		cells := make([]CohortCell, 0, len(cols))
		for _, w := range cols {
			v := row.Value(w)
			cell := CohortCell{Week: w, Value: v, Band: BandFor(v), Display: MissingCell}
			if v.Valid {
				cell.Display = FormatPercent(v.Value)
			}
			cells = append(cells, cell)
		}

		grid.Rows = append(grid.Rows, CohortGridRow{
			Cohort:      row.Label,
			Size:        row.Size,
			SizeDisplay: FormatCount(int64(row.Size)),
			Cells:       cells,
			Contiguous:  ObservedPrefix(row, cols),
		})
	}

	return grid
}

// WeekHeader is the column title of a week offset
func WeekHeader(week int) string {
	return fmt.Sprintf("Week %d", week)
}

func isTrackedWeek(week int) bool {
	for _, w := range DefaultWeekOffsets {
		if w == week {
			return true
		}
	}
	return false
}

func orderedWeeks(weeks []int) []int {
	if len(weeks) == 0 {
		weeks = DefaultWeekOffsets
	}
	out := append([]int(nil), weeks...)
	sort.Ints(out)
	return out
}
