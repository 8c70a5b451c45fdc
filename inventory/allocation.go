package inventory

import (
	"sort"
	"strings"

	"gitlab.com/nunet/opencompute-monitor/models"
)

// AllocatedSet holds the hotkeys at least one validator reports as allocated.
type AllocatedSet map[string]struct{}

func NewAllocatedSet(ids []string) AllocatedSet {
	set := make(AllocatedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s AllocatedSet) Contains(hotkey string) bool {
	_, ok := s[hotkey]
	return ok
}

// Members returns the set's hotkeys sorted.
func (s AllocatedSet) Members() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Classify reports whether hotkey is reserved by a validator.
func Classify(hotkey string, allocated AllocatedSet) string {
	if allocated.Contains(hotkey) {
		return models.StatusReserved
	}
	return models.StatusAvailable
}

// ClassifyRows sets the status of every row, placeholder rows included.
func ClassifyRows(rows []models.NormalizedRow, allocated AllocatedSet) {
	for i := range rows {
		rows[i].Status = Classify(rows[i].Hotkey, allocated)
	}
}

// FilterByStatus keeps the rows whose status matches, case-insensitively. An
// empty status keeps every row.
func FilterByStatus(rows []models.NormalizedRow, status string) []models.NormalizedRow {
	if status == "" {
		return rows
	}
	out := []models.NormalizedRow{}
	for _, row := range rows {
		if strings.EqualFold(row.Status, status) {
			out = append(out, row)
		}
	}
	return out
}
