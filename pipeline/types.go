// Package pipeline processes batches of sensor packages and writes summary
// artifacts (JSON, CSV or parquet, plus a rendered text report).
package pipeline

import ftracker "github.com/lucasjlepore/fit-tracker"

// Options configures one batch run.
type Options struct {
	// Packages is the in-memory input batch; ignored when InputPath is set.
	Packages []Package
	// InputPath points to a JSONL file with one package object per line.
	InputPath string
	OutDir    string
	Format    string // parquet|csv
	Overwrite bool
}

// Package is one sensor package: a workout code plus ordered readings.
type Package struct {
	Code     string    `json:"workout_type"`
	Readings []float64 `json:"readings"`
}

// SummaryRow is one computed workout summary in batch order.
type SummaryRow struct {
	Index int    `json:"index"`
	Code  string `json:"workout_type"`
	ftracker.InfoMessage
	Rendered string `json:"rendered"`
}

// Result returns generated output paths.
type Result struct {
	OutputDir     string `json:"output_dir"`
	SummariesPath string `json:"summaries_path"`
	JSONPath      string `json:"json_path"`
	ReportPath    string `json:"report_path"`
	PackageCount  int    `json:"package_count"`
}
