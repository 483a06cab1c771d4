package domain

import "time"

// CheckCode identifies why a pre-flight file check failed.
type CheckCode string

// Pre-flight check failure codes.
const (
	CheckEmptyPath           CheckCode = "EMPTY_PATH"
	CheckNotFound            CheckCode = "NOT_FOUND"
	CheckInvalidPath         CheckCode = "INVALID_PATH"
	CheckTooLarge            CheckCode = "TOO_LARGE"
	CheckEmptyFile           CheckCode = "EMPTY_FILE"
	CheckDangerousExtension  CheckCode = "DANGEROUS_EXTENSION"
	CheckExtensionNotAllowed CheckCode = "EXTENSION_NOT_ALLOWED"
)

// CheckResult is the typed verdict of a single pre-flight check.
// Expected failure modes are values, never errors.
type CheckResult struct {
	OK     bool
	Code   CheckCode
	Reason string
}

// CheckOK returns a passing verdict.
func CheckOK() CheckResult {
	return CheckResult{OK: true}
}

// CheckFailed returns a failing verdict with a code and reason.
func CheckFailed(code CheckCode, reason string) CheckResult {
	return CheckResult{Code: code, Reason: reason}
}

// ValidationSummary is the ephemeral result of pre-flight file checks.
// Warnings are non-fatal; a summary can be valid and still carry warnings.
type ValidationSummary struct {
	FilePath      string
	FileSizeBytes int64
	FileExtension string
	IsValid       bool

	// Code and Reason are set when IsValid is false.
	Code   CheckCode
	Reason string

	// Warnings accumulate in check order.
	Warnings []string
}

// ValidationIssue is a single typed problem found while grading output.
type ValidationIssue struct {
	// Type is one of "Missing", "Incorrect", "Formatting", "Error", "Other".
	Type string `json:"type"`

	// Field names the template field or section concerned.
	Field string `json:"field"`

	// Description says what is wrong.
	Description string `json:"description"`

	// Severity is "Low", "Medium" or "High".
	Severity string `json:"severity"`
}

// ValidationResult is the structured grading report for one generated output.
type ValidationResult struct {
	IsValid         bool              `json:"isValid"`
	ConfidenceScore float64           `json:"confidenceScore"`
	Summary         string            `json:"summary"`
	Issues          []ValidationIssue `json:"issues"`
	ExtractedFields map[string]string `json:"extractedFields"`
	Recommendation  string            `json:"recommendation"`

	// ValidatedAt stamps when grading completed.
	ValidatedAt time.Time `json:"-"`

	// RawResponse retains the unparsed completion-service text for audit.
	RawResponse string `json:"-"`
}

// ValidationRequest names the three artifacts to grade together.
type ValidationRequest struct {
	OriginalPath  string
	TemplatePath  string
	GeneratedPath string
}

// DocumentValidationResult pairs a grading report with its inputs.
type DocumentValidationResult struct {
	DocumentPath string
	TemplateName string
	Result       ValidationResult
}

// BatchValidationResult aggregates per-document grading reports.
// Results preserves the input order of the batch requests.
type BatchValidationResult struct {
	TotalDocuments         int
	ValidDocuments         int
	InvalidDocuments       int
	AverageConfidenceScore float64
	Results                []DocumentValidationResult
	CompletedAt            time.Time
}
