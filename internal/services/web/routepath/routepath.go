// Package routepath centralizes web route path constants.
package routepath

const (
	// Root is the web root path.
	Root = "/"
	// Health is the liveness probe path.
	Health = "/up"

	// Dataset lists the audit dataset.
	Dataset = "/api/dataset"
	// DatasetReset restores the bundled default dataset.
	DatasetReset = "/api/dataset/reset"
	// DatasetExport downloads the dataset as CSV.
	DatasetExport = "/api/dataset/export"
	// DatasetRowPattern matches single-row field updates.
	DatasetRowPattern = "/api/dataset/rows/{id}"

	// Checklist lists the prioritized work view.
	Checklist = "/api/checklist"
	// ChecklistPrioritize assigns severity-ranked priorities.
	ChecklistPrioritize = "/api/checklist/prioritize"
	// ChecklistExport downloads the checklist as CSV.
	ChecklistExport = "/api/checklist/export"

	// Recommendation generates remediation guidance for one finding.
	Recommendation = "/api/recommendation"
)
