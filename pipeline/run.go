package pipeline

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	ftracker "github.com/lucasjlepore/fit-tracker"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"
)

// Run computes summaries for every package in the batch and writes all
// artifacts. The first invalid package aborts the whole run.
func Run(opts Options) (*Result, error) {
	if strings.TrimSpace(opts.OutDir) == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "parquet"
	}
	if format != "parquet" && format != "csv" {
		return nil, fmt.Errorf("unsupported format %q (expected parquet|csv)", format)
	}

	packages := opts.Packages
	if strings.TrimSpace(opts.InputPath) != "" {
		loaded, err := loadPackages(opts.InputPath)
		if err != nil {
			return nil, fmt.Errorf("load packages: %w", err)
		}
		packages = loaded
	}
	if len(packages) == 0 {
		return nil, fmt.Errorf("no packages to process")
	}

	if err := prepareOutDir(opts.OutDir, opts.Overwrite); err != nil {
		return nil, err
	}

	rows := make([]SummaryRow, 0, len(packages))
	for i, pkg := range packages {
		training, err := ftracker.ReadPackage(pkg.Code, pkg.Readings)
		if err != nil {
			return nil, fmt.Errorf("package %d: %w", i+1, err)
		}
		info := ftracker.Summarize(training)
		rows = append(rows, SummaryRow{
			Index:       i + 1,
			Code:        pkg.Code,
			InfoMessage: info,
			Rendered:    info.Message(),
		})
	}

	summariesPath := filepath.Join(opts.OutDir, "summaries."+format)
	switch format {
	case "csv":
		if err := writeSummariesCSV(summariesPath, rows); err != nil {
			return nil, fmt.Errorf("write summaries csv: %w", err)
		}
	case "parquet":
		if err := writeSummariesParquet(summariesPath, rows); err != nil {
			return nil, fmt.Errorf("write summaries parquet: %w", err)
		}
	}

	jsonPath := filepath.Join(opts.OutDir, "summaries.json")
	if err := writeJSON(jsonPath, rows); err != nil {
		return nil, fmt.Errorf("write summaries.json: %w", err)
	}

	reportPath := filepath.Join(opts.OutDir, "report.txt")
	if err := writeReport(reportPath, rows); err != nil {
		return nil, fmt.Errorf("write report.txt: %w", err)
	}

	return &Result{
		OutputDir:     opts.OutDir,
		SummariesPath: summariesPath,
		JSONPath:      jsonPath,
		ReportPath:    reportPath,
		PackageCount:  len(rows),
	}, nil
}

func prepareOutDir(dir string, overwrite bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if overwrite {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		return fmt.Errorf("output directory %s is not empty (use overwrite)", dir)
	}
	return nil
}

func loadPackages(path string) ([]Package, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	packages := make([]Package, 0, 64)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var pkg Package
		if err := json.Unmarshal(line, &pkg); err != nil {
			return nil, fmt.Errorf("unmarshal jsonl line: %w", err)
		}
		packages = append(packages, pkg)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return packages, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeReport(path string, rows []SummaryRow) error {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row.Rendered)
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func writeSummariesCSV(path string, rows []SummaryRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := []string{
		"index", "workout_type", "training_type", "duration_h", "distance_km", "mean_speed_kmh", "calories_kcal",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			strconv.Itoa(row.Index),
			row.Code,
			row.TrainingType,
			formatFloat(row.DurationHours),
			formatFloat(row.DistanceKM),
			formatFloat(row.SpeedKMH),
			formatFloat(row.CaloriesKCal),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

type summaryParquetRow struct {
	Index        int64   `parquet:"name=index, type=INT64"`
	Code         string  `parquet:"name=workout_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	TrainingType string  `parquet:"name=training_type, type=BYTE_ARRAY, convertedtype=UTF8, encoding=PLAIN_DICTIONARY"`
	DurationH    float64 `parquet:"name=duration_h, type=DOUBLE"`
	DistanceKM   float64 `parquet:"name=distance_km, type=DOUBLE"`
	SpeedKMH     float64 `parquet:"name=mean_speed_kmh, type=DOUBLE"`
	CaloriesKCal float64 `parquet:"name=calories_kcal, type=DOUBLE"`
}

func writeSummariesParquet(path string, rows []SummaryRow) error {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	pw, err := writer.NewParquetWriter(fw, new(summaryParquetRow), 4)
	if err != nil {
		return err
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, row := range rows {
		out := summaryParquetRow{
			Index:        int64(row.Index),
			Code:         row.Code,
			TrainingType: row.TrainingType,
			DurationH:    row.DurationHours,
			DistanceKM:   row.DistanceKM,
			SpeedKMH:     row.SpeedKMH,
			CaloriesKCal: row.CaloriesKCal,
		}
		if err := pw.Write(out); err != nil {
			_ = pw.WriteStop()
			_ = fw.Close()
			return err
		}
	}
	if err := pw.WriteStop(); err != nil {
		_ = fw.Close()
		return err
	}
	return fw.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
