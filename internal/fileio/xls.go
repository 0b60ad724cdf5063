package fileio

import (
	"bytes"
	"errors"
	"io"
	"strings"

	xls "github.com/extrame/xls"
)

// computeMaxCols probes a bounded number of columns per row and keeps the
// widest non-empty extent; Row.LastCol() is unreliable on legacy sheets.
func computeMaxCols(sheet *xls.WorkSheet) int {
	const probeMax = 512
	maxCols := 0
	for i := 0; i <= int(sheet.MaxRow); i++ {
		r := sheet.Row(i)
		if r == nil {
			continue
		}
		for j := 0; j < probeMax; j++ {
			if strings.TrimSpace(r.Col(j)) != "" && j+1 > maxCols {
				maxCols = j + 1
			}
		}
	}
	if maxCols == 0 {
		maxCols = 1
	}
	return maxCols
}

func readXLS(r io.Reader) ([][]string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// legacy exports are usually Big5, occasionally UTF-8 already
	var wb *xls.WorkBook
	tryCharsets := []string{"utf-8", "big5"}
	var lastErr error
	for _, ch := range tryCharsets {
		wb, err = xls.OpenReader(bytes.NewReader(b), ch)
		if err == nil && wb != nil {
			lastErr = nil
			break
		}
		lastErr = err
	}
	if wb == nil {
		if lastErr == nil {
			lastErr = errors.New("xls: failed to open workbook")
		}
		return nil, lastErr
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return nil, nil
	}

	maxCols := computeMaxCols(sheet)
	rows := make([][]string, 0, int(sheet.MaxRow)+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		cols := make([]string, maxCols)
		if row != nil {
			for j := 0; j < maxCols; j++ {
				cols[j] = row.Col(j)
			}
		}
		rows = append(rows, cols)
	}
	return rows, nil
}
