package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasjlepore/fit-tracker/pipeline"
)

func main() {
	var (
		inPath    = flag.String("in", "", "Path to input packages JSONL file")
		outDir    = flag.String("out", "", "Output directory")
		format    = flag.String("format", "parquet", "Summary table format: parquet|csv")
		overwrite = flag.Bool("overwrite", true, "Allow writing into non-empty output directories")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s --in packages.jsonl --out outdir [--format parquet|csv]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if strings.TrimSpace(*inPath) == "" || strings.TrimSpace(*outDir) == "" {
		flag.Usage()
		os.Exit(2)
	}

	result, err := pipeline.Run(pipeline.Options{
		InputPath: *inPath,
		OutDir:    *outDir,
		Format:    *format,
		Overwrite: *overwrite,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ftracker_batch failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ftracker_batch complete\n")
	fmt.Printf("Output dir:  %s\n", result.OutputDir)
	fmt.Printf("summaries:   %s\n", result.SummariesPath)
	fmt.Printf("json:        %s\n", result.JSONPath)
	fmt.Printf("report:      %s\n", result.ReportPath)
	fmt.Printf("packages:    %d\n", result.PackageCount)
}
