package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"toolbox/internal/scrapers/quotes"
)

const DefaultFilename = "quotes.csv"

var ErrNothingToExport = errors.New("nothing to export")

var header = []string{"Text", "Author", "Tags"}

// WriteCSV writes a header row and one row per quote, tags are joined by ", ".
func WriteCSV(w io.Writer, items []quotes.Quote) error {
	writer := csv.NewWriter(w)
	err := writer.Write(header)
	if err != nil {
		return err
	}
	for _, q := range items {
		err = writer.Write([]string{q.Text, q.Author, strings.Join(q.Tags, ", ")})
		if err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteFile exports items to path, replacing anything already there. It
// returns the number of exported quotes, an empty list is ErrNothingToExport
// and leaves the filesystem untouched.
func WriteFile(path string, items []quotes.Quote) (int, error) {
	if len(items) == 0 {
		return 0, ErrNothingToExport
	}
	if path == "" {
		path = DefaultFilename
	}

	dir := filepath.Dir(path)
	err := os.MkdirAll(dir, 0777)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}
	err = WriteCSV(f, items)
	if err != nil {
		f.Close()
		return 0, fmt.Errorf("export: write %s: %w", path, err)
	}
	err = f.Close()
	if err != nil {
		return 0, fmt.Errorf("export: close %s: %w", path, err)
	}
	return len(items), nil
}
