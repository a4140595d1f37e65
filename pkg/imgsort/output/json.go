// Package output serializes run results for machine consumption.
package output

import (
	"encoding/json"

	"github.com/ukaji3/imgsort-go/pkg/imgsort/models"
)

// ToJSON converts a run summary to JSON.
func ToJSON(summary *models.RunSummary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(summary, "", "  ")
	}
	return json.Marshal(summary)
}
