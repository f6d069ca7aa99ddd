package output

// CheckSummary holds aggregate statistics for a validation run.
type CheckSummary struct {
	TemplatesChecked int `json:"templates_checked"`
	TemplatesSkipped int `json:"templates_skipped"`
	FilesChecked     int `json:"files_checked"`
	TotalIssues      int `json:"total_issues"`
	Errors           int `json:"errors"`
	Warnings         int `json:"warnings"`
	Info             int `json:"info"`
	Hints            int `json:"hints"`
}

// CheckViolation is the JSON representation of a single finding.
type CheckViolation struct {
	CheckID  string            `json:"check_id"`
	Severity string            `json:"severity"`
	Message  string            `json:"message"`
	File     string            `json:"file,omitempty"`
	Line     int               `json:"line,omitempty"`
	Columns  map[string]string `json:"columns,omitempty"`
}

// CheckFileResult holds the findings for one export file.
type CheckFileResult struct {
	Path       string           `json:"path"`
	Rows       int              `json:"rows"`
	Violations []CheckViolation `json:"violations,omitempty"`
}

// CheckTemplateResult holds per-template results.
type CheckTemplateResult struct {
	Tag    string            `json:"tag"`
	Status string            `json:"status"`
	Reason string            `json:"reason,omitempty"`
	Files  []CheckFileResult `json:"files,omitempty"`
}

// CheckOutput is the complete JSON output structure for check results.
type CheckOutput struct {
	Summary   CheckSummary          `json:"summary"`
	Templates []CheckTemplateResult `json:"templates"`
	Fileset   []CheckViolation      `json:"fileset,omitempty"`
}
