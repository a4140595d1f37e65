package models

// ImageRecord represents a single image written to the output tree.
type ImageRecord struct {
	// Source is the input file path.
	Source string `json:"source"`
	// Basename is the file name without its extension.
	Basename string `json:"basename"`
	// Found reports whether a barcode matched.
	Found bool `json:"found"`
	// Barcode is the matched barcode value (empty when not found).
	Barcode string `json:"barcode,omitempty"`
	// Destination is the written JPEG path.
	Destination string `json:"destination"`
}

// ImageFailure represents an image skipped because of an error.
type ImageFailure struct {
	// Source is the input file path.
	Source string `json:"source"`
	// Stage is the step that failed: decode, transform or write.
	Stage string `json:"stage"`
	// Error is the error message.
	Error string `json:"error"`
}
