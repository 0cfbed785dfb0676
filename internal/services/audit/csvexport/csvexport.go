// Package csvexport renders inspection rows as the audit workbook CSV.
//
// The column layout and quoting behavior are part of the export contract:
// fields are wrapped in double quotes, with internal quotes doubled, if and
// only if they contain a comma, a double quote or a newline. The check flag
// renders as TRUE/FALSE and the target score column is the constant "9".
package csvexport

import (
	"strings"

	"github.com/seoforge/auditdesk/internal/services/audit/inspection"
)

// Header is the fixed export header row.
const Header = "X/√,INSPECTION ELEMENT,PRIORITY,ISSUE CATEGORY,ISSUE SUB-CATEGORY,SKILLSET,SCORE,TARGET SCORE,ANALYSIS,RECOMMENDATIONS,IMPLEMENTER"

// Marshal renders rows as CSV text, one newline-joined line per row after
// the header.
func Marshal(rows []inspection.Row) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, Header)
	for _, row := range rows {
		fields := []string{
			checkField(row.Check),
			escapeField(row.InspectionElement),
			escapeField(row.Priority),
			escapeField(row.IssueCategory),
			escapeField(row.IssueSubCategory),
			escapeField(row.Skillset),
			escapeField(row.Score),
			inspection.TargetScore,
			escapeField(row.Analysis),
			escapeField(row.Recommendations),
			escapeField(row.Implementer),
		}
		lines = append(lines, strings.Join(fields, ","))
	}
	return strings.Join(lines, "\n")
}

func checkField(check bool) string {
	if check {
		return "TRUE"
	}
	return "FALSE"
}

func escapeField(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
