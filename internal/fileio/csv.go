package fileio

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV reads delimited text, auto-detecting encoding and converting to UTF-8.
// UTF-8 (with or without BOM) and Big5 are supported out of the box.
func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)

	// Strip a UTF-8 BOM if present
	if peek, _ := br.Peek(3); bytes.Equal(peek, utf8BOM) {
		_, _ = br.Discard(3)
	}

	// Peek a bit to detect encoding
	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	var dec io.Reader = br
	switch cs {
	case "big5", "big-5":
		dec = transform.NewReader(br, traditionalchinese.Big5.NewDecoder())
	default:
		// assume UTF-8
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
