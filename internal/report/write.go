package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const filePerm = 0o644

// WriteFile replaces path with content. The report is written to a
// temporary file next to path and renamed into place only once it is
// complete, so a failed run never leaves a partial report behind.
func WriteFile(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp-"+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("open output %s: %w", path, err)
	}
	tmpPath := tmp.Name()

	fail := func(err error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write output %s: %w", path, err)
	}

	if err := tmp.Chmod(filePerm); err != nil {
		return fail(err)
	}
	bw := bufio.NewWriter(tmp)
	if _, err := io.Copy(bw, strings.NewReader(content)); err != nil {
		return fail(err)
	}
	if err := bw.Flush(); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write output %s: %w", path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace output %s: %w", path, err)
	}
	return nil
}
