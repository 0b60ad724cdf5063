package service

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// minTextLayerChars is how much extractable text a page must carry before
// its text layer is trusted over OCR.
const minTextLayerChars = 50

// pdfTextLayer tries to read the embedded text layer of every page. The
// whole document is considered text-based only when every single page
// yields enough text; a scanned page anywhere sends the document to OCR.
func pdfTextLayer(data []byte) (pages []string, allPagesHaveText bool) {
	// the pdf package panics on some malformed files; treat those as scanned
	defer func() {
		if recover() != nil {
			pages, allPagesHaveText = nil, false
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, false
	}

	total := r.NumPage()
	if total == 0 {
		return nil, false
	}
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if len(strings.TrimSpace(text)) > minTextLayerChars {
			pages = append(pages, text)
		}
	}
	return pages, len(pages) > 0 && len(pages) == total
}
