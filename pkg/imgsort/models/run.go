// Package models defines the result structures produced by an organizer run.
package models

// RunSummary represents the outcome of a whole run over the input tree.
type RunSummary struct {
	// Spreadsheet is the lookup spreadsheet path, empty when none was found.
	Spreadsheet string `json:"spreadsheet,omitempty"`
	// Folders contains one entry per enumerated folder, in processing order.
	Folders []FolderResult `json:"folders"`
}

// Totals sums matched, unmatched and failed images over all folders.
func (s *RunSummary) Totals() (matched, unmatched, failed int) {
	for _, f := range s.Folders {
		matched += len(f.Matched)
		unmatched += len(f.Unmatched)
		failed += len(f.Failed)
	}
	return
}
