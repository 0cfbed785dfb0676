// Package dataset ships the bundled default inspection dataset.
package dataset

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
)

//go:embed default_dataset.json
var defaultJSON []byte

// Default returns a fresh copy of the bundled inspection dataset with ids
// assigned sequentially at load time. Every call decodes the embedded payload
// again so callers can never mutate the default in place.
func Default() ([]inspection.Row, error) {
	var rows []inspection.Row
	if err := json.Unmarshal(defaultJSON, &rows); err != nil {
		return nil, fmt.Errorf("decode bundled dataset: %w", err)
	}
	for i := range rows {
		rows[i].ID = i + 1
	}
	return rows, nil
}
