package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadRows picks a parser by extension and returns the sheet as raw rows,
// header row included.
func ReadRows(r io.Reader, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	case ".csv", ".txt", "":
		return readCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}
