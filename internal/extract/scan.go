package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListStatements returns the PDF files in dir, sorted by name so output row
// order is reproducible given the same input set. Matching on the ".pdf"
// suffix is case-insensitive. An empty directory yields an empty list, not
// an error.
func ListStatements(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading statements dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
