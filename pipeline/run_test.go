package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	ftracker "github.com/lucasjlepore/fit-tracker"
)

var demoPackages = []Package{
	{Code: "SWM", Readings: []float64{720, 1, 80, 25, 40}},
	{Code: "RUN", Readings: []float64{15000, 1, 75}},
	{Code: "WLK", Readings: []float64{9000, 1, 75, 180}},
}

func TestRunWritesArtifacts(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	res, err := Run(Options{
		Packages: demoPackages,
		OutDir:   outDir,
		Format:   "csv",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.PackageCount != len(demoPackages) {
		t.Fatalf("package count mismatch: got %d want %d", res.PackageCount, len(demoPackages))
	}

	f, err := os.Open(res.SummariesPath)
	if err != nil {
		t.Fatalf("open summaries csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read summaries csv: %v", err)
	}
	if len(rows) != len(demoPackages)+1 {
		t.Fatalf("unexpected csv row count: %d", len(rows))
	}
	wantHeader := []string{"index", "workout_type", "training_type", "duration_h", "distance_km", "mean_speed_kmh", "calories_kcal"}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Fatalf("unexpected header column %d: got %q want %q", i, rows[0][i], col)
		}
	}

	var summaries []SummaryRow
	data, err := os.ReadFile(res.JSONPath)
	if err != nil {
		t.Fatalf("read summaries json: %v", err)
	}
	if err := json.Unmarshal(data, &summaries); err != nil {
		t.Fatalf("unmarshal summaries json: %v", err)
	}
	if len(summaries) != len(demoPackages) {
		t.Fatalf("unexpected summary count: %d", len(summaries))
	}
	for i, s := range summaries {
		if s.Index != i+1 {
			t.Fatalf("summary %d out of order: index %d", i, s.Index)
		}
		if s.Code != demoPackages[i].Code {
			t.Fatalf("summary %d code mismatch: got %q want %q", i, s.Code, demoPackages[i].Code)
		}
	}
	if summaries[1].TrainingType != "Running" {
		t.Fatalf("unexpected training type: %q", summaries[1].TrainingType)
	}

	report, err := os.ReadFile(res.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(report), "\n"), "\n")
	if len(lines) != len(demoPackages) {
		t.Fatalf("unexpected report line count: %d", len(lines))
	}
	for i, line := range lines {
		if line != summaries[i].Rendered {
			t.Fatalf("report line %d does not match summary order:\n%s\n%s", i, line, summaries[i].Rendered)
		}
	}
}

func TestRunLoadsPackagesFromJSONL(t *testing.T) {
	tmp := t.TempDir()
	inPath := filepath.Join(tmp, "packages.jsonl")
	var b strings.Builder
	for _, pkg := range demoPackages {
		line, err := json.Marshal(pkg)
		if err != nil {
			t.Fatalf("marshal package: %v", err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(inPath, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write packages jsonl: %v", err)
	}

	res, err := Run(Options{
		InputPath: inPath,
		OutDir:    filepath.Join(tmp, "out"),
		Format:    "csv",
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.PackageCount != len(demoPackages) {
		t.Fatalf("package count mismatch: got %d", res.PackageCount)
	}
}

func TestRunAbortsOnFirstInvalidPackage(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	_, err := Run(Options{
		Packages: []Package{
			{Code: "RUN", Readings: []float64{15000, 1, 75}},
			{Code: "XYZ", Readings: []float64{1, 2, 3}},
			{Code: "SWM", Readings: []float64{720, 1, 80, 25, 40}},
		},
		OutDir: outDir,
		Format: "csv",
	})
	if !errors.Is(err, ftracker.ErrUnknownWorkoutType) {
		t.Fatalf("expected unknown workout type error, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "package 2") {
		t.Fatalf("error should name the failing package: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(outDir, "summaries.json")); !os.IsNotExist(statErr) {
		t.Fatalf("no artifacts expected after abort")
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	_, err := Run(Options{
		Packages: demoPackages,
		OutDir:   t.TempDir(),
		Format:   "xml",
	})
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}

func TestRunRefusesNonEmptyOutDirWithoutOverwrite(t *testing.T) {
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outDir, "existing.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("seed out dir: %v", err)
	}
	_, err := Run(Options{
		Packages: demoPackages,
		OutDir:   outDir,
		Format:   "csv",
	})
	if err == nil || !strings.Contains(err.Error(), "not empty") {
		t.Fatalf("expected non-empty dir error, got %v", err)
	}
}
