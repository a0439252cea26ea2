package intake

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Open opens the arrivals file for reading.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", path, err)
	}
	return f, nil
}

// ReadAll parses every line of r in order. Malformed lines are skipped and
// logged at debug level. Only '\n' separates lines, so a trailing '\r'
// stays part of the species.
func ReadAll(r io.Reader, logger *slog.Logger) ([]Record, error) {
	br := bufio.NewReader(r)
	var records []Record
	lineNo := 0
	skipped := 0

	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lineNo++
			line = strings.TrimSuffix(line, "\n")
			if rec, ok := ParseLine(line); ok {
				records = append(records, rec)
			} else {
				skipped++
				logger.Debug("skipping malformed line", "line", lineNo, "text", line)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return records, fmt.Errorf("read line %d: %w", lineNo+1, err)
		}
	}

	logger.Info("read arrivals", "records", len(records), "skipped", skipped)
	return records, nil
}
