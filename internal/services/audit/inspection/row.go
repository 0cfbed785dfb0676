// Package inspection models technical SEO inspection elements.
//
// A row is one audited check item. Rows are metadata-first: handlers and
// projections consume these records, persistence lives in the storage
// subpackages.
package inspection

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TargetScore is the score treated as passing. Rows at target are excluded
// from the implementation checklist and never consume recommendation calls.
const TargetScore = "9"

// Row field names accepted by Apply. They match the JSON wire names.
const (
	FieldInspectionElement = "inspectionElement"
	FieldIssueCategory     = "issueCategory"
	FieldIssueSubCategory  = "issueSubCategory"
	FieldSkillset          = "skillset"
	FieldScore             = "score"
	FieldPriority          = "priority"
	FieldAnalysis          = "analysis"
	FieldRecommendations   = "recommendations"
	FieldImplementer       = "implementer"
	FieldCheck             = "check"
)

// ErrUnknownField indicates an update referenced a field that does not exist.
var ErrUnknownField = errors.New("unknown row field")

// Row is one inspection element record.
type Row struct {
	ID                int    `json:"id"`
	InspectionElement string `json:"inspectionElement"`
	IssueCategory     string `json:"issueCategory"`
	IssueSubCategory  string `json:"issueSubCategory"`
	Skillset          string `json:"skillset"`
	Score             string `json:"score"`
	Priority          string `json:"priority"`
	Analysis          string `json:"analysis"`
	Recommendations   string `json:"recommendations"`
	Implementer       string `json:"implementer"`
	Check             bool   `json:"check"`
}

// Apply sets one field by wire name. Score values are normalized, never
// rejected; check accepts booleans and common string renderings. The ID is
// immutable and not addressable through Apply.
func (r *Row) Apply(field string, value any) error {
	switch field {
	case FieldInspectionElement:
		r.InspectionElement = asString(value)
	case FieldIssueCategory:
		r.IssueCategory = asString(value)
	case FieldIssueSubCategory:
		r.IssueSubCategory = asString(value)
	case FieldSkillset:
		r.Skillset = asString(value)
	case FieldScore:
		r.Score = NormalizeScore(value)
	case FieldPriority:
		r.Priority = strings.TrimSpace(asString(value))
	case FieldAnalysis:
		r.Analysis = asString(value)
	case FieldRecommendations:
		r.Recommendations = asString(value)
	case FieldImplementer:
		r.Implementer = asString(value)
	case FieldCheck:
		r.Check = asBool(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return nil
}

// UpdateField returns a copy of rows with exactly one row's field replaced.
// An unknown id is a no-op, not an error.
func UpdateField(rows []Row, id int, field string, value any) ([]Row, error) {
	updated := make([]Row, len(rows))
	copy(updated, rows)
	for i := range updated {
		if updated[i].ID != id {
			continue
		}
		if err := updated[i].Apply(field, value); err != nil {
			return nil, err
		}
		break
	}
	return updated, nil
}

func asString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func asBool(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		parsed, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
		return err == nil && parsed
	case float64:
		return v != 0
	default:
		return false
	}
}
