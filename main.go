package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/olehluchkiv/zoointake/internal/animal"
	"github.com/olehluchkiv/zoointake/internal/census"
	"github.com/olehluchkiv/zoointake/internal/intake"
	"github.com/olehluchkiv/zoointake/internal/logging"
	"github.com/olehluchkiv/zoointake/internal/report"
)

const (
	inputFile  = "arrivingAnimals.txt"
	outputFile = "newAnimals.txt"
)

func main() {
	logger := logging.Setup(os.Stderr, slog.LevelWarn)
	os.Exit(run(".", os.Stdout, os.Stderr, logger))
}

// run converts dir/arrivingAnimals.txt into dir/newAnimals.txt and returns
// the process exit code.
func run(dir string, stdout, stderr io.Writer, logger *slog.Logger) int {
	// Step 1: Read and classify every arrival.
	animals, err := loadAnimals(filepath.Join(dir, inputFile), logger)
	if err != nil {
		logger.Error("failed to read input", "error", err)
		fmt.Fprintln(stderr, "Error: Could not open input file.")
		return 1
	}

	// Step 2: Group by species.
	c := census.Tally(animals)
	logger.Info("tallied animals", "species", len(c.Groups), "total", c.Total())

	// Step 3: Render and write the report.
	content := report.Render(c)
	if err := report.WriteFile(filepath.Join(dir, outputFile), content); err != nil {
		logger.Error("failed to write report", "error", err)
		fmt.Fprintln(stderr, "Error: Could not open output file.")
		return 1
	}

	fmt.Fprintf(stdout, "Animal processing complete. Report generated in %s\n", outputFile)
	return 0
}

// loadAnimals reads the arrivals file and classifies every parsed record.
// The file is closed before returning on every path.
func loadAnimals(path string, logger *slog.Logger) ([]animal.Animal, error) {
	f, err := intake.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := intake.ReadAll(f, logger)
	if err != nil {
		return nil, err
	}

	animals := make([]animal.Animal, 0, len(records))
	for _, rec := range records {
		a := animal.Classify(rec.Species, rec.Name, rec.Age)
		logger.Debug("classified arrival", "name", a.Name, "species", a.Species, "kind", a.Kind.String())
		animals = append(animals, a)
	}
	return animals, nil
}
