package models

// FolderResult represents what happened to a single input folder.
type FolderResult struct {
	// Input is the folder that was scanned.
	Input string `json:"input"`
	// Output is the folder's output root (empty when skipped).
	Output string `json:"output,omitempty"`
	// Skipped is true when the folder held no recognized images.
	Skipped bool `json:"skipped,omitempty"`
	// Matched contains images renamed to their barcode.
	Matched []ImageRecord `json:"matched,omitempty"`
	// Unmatched contains images written under their own basename.
	Unmatched []ImageRecord `json:"unmatched,omitempty"`
	// NotFound lists basenames routed to not_found, in discovery order.
	NotFound []string `json:"not_found,omitempty"`
	// Failed contains images that could not be decoded, transformed or written.
	Failed []ImageFailure `json:"failed,omitempty"`
	// Report is the path of the not-found report, if one was written.
	Report string `json:"report,omitempty"`
}
