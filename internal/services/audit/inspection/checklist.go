package inspection

import (
	"sort"
	"strconv"
)

// ChecklistRow is a checklist projection entry: the source row augmented
// with its computed severity.
type ChecklistRow struct {
	Row
	Severity int `json:"severity"`
}

// Checklist projects rows into the implementation checklist: every row not at
// target score, including "N/A" and unscored rows, ordered by ascending
// numeric priority (missing priority sorts last) with descending severity as
// the tie-break. The projection is derived, never stored.
func Checklist(rows []Row) []ChecklistRow {
	projected := make([]ChecklistRow, 0, len(rows))
	for _, row := range rows {
		if row.Score == TargetScore {
			continue
		}
		projected = append(projected, ChecklistRow{Row: row, Severity: Severity(row.Score)})
	}

	sort.SliceStable(projected, func(i, j int) bool {
		left, leftOK := parsePriority(projected[i].Priority)
		right, rightOK := parsePriority(projected[j].Priority)
		if leftOK != rightOK {
			return leftOK
		}
		if leftOK && left != right {
			return left < right
		}
		return projected[i].Severity > projected[j].Severity
	})
	return projected
}

// AutoPrioritize returns a copy of rows where every checklist row is assigned
// priority "1".."N" by descending severity, ties broken by original relative
// order. Rows already at target score keep their priority untouched.
func AutoPrioritize(rows []Row) []Row {
	updated := make([]Row, len(rows))
	copy(updated, rows)

	indexes := make([]int, 0, len(updated))
	for i, row := range updated {
		if row.Score != TargetScore {
			indexes = append(indexes, i)
		}
	}
	sort.SliceStable(indexes, func(a, b int) bool {
		return Severity(updated[indexes[a]].Score) > Severity(updated[indexes[b]].Score)
	})
	for rank, idx := range indexes {
		updated[idx].Priority = strconv.Itoa(rank + 1)
	}
	return updated
}

func parsePriority(priority string) (float64, bool) {
	if priority == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(priority, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
