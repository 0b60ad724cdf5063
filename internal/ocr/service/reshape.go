package service

import (
	"math"
	"strings"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"

	"github.com/uncleben006/invoice-agent/internal/ocr/model"
)

// reshapeAnnotation flattens a Vision response into the paragraph-level
// result the API exposes. Paragraph geometry comes from the full text
// annotation; when it carries no blocks the per-word text annotations are
// used as a fallback.
func reshapeAnnotation(resp *visionpb.AnnotateImageResponse) model.Result {
	res := model.Result{Paragraphs: []model.Paragraph{}}

	if fta := resp.GetFullTextAnnotation(); fta != nil {
		res.Text = fta.GetText()
	}
	if res.Text == "" && len(resp.GetTextAnnotations()) > 0 {
		res.Text = resp.GetTextAnnotations()[0].GetDescription()
	}

	pages := resp.GetFullTextAnnotation().GetPages()
	if len(pages) > 0 {
		// only the first page carries dimensions for single-image input
		page := pages[0]
		res.Width = page.GetWidth()
		res.Height = page.GetHeight()

		count := 0
		for _, block := range page.GetBlocks() {
			for _, para := range block.GetParagraphs() {
				count++
				var sb strings.Builder
				for _, word := range para.GetWords() {
					for _, sym := range word.GetSymbols() {
						sb.WriteString(sym.GetText())
					}
					sb.WriteString(" ")
				}
				if para.GetBoundingBox() == nil {
					continue
				}
				res.Paragraphs = append(res.Paragraphs, model.Paragraph{
					Text:        strings.TrimSpace(sb.String()),
					BoundingBox: toBox(para.GetBoundingBox()),
					Confidence:  toPercent(para.GetConfidence()),
					ParagraphID: count,
					BlockType:   block.GetBlockType().String(),
				})
			}
		}
	}

	// fallback: individual text annotations (first entry is the full text)
	if len(res.Paragraphs) == 0 && len(resp.GetTextAnnotations()) > 1 {
		for i, ta := range resp.GetTextAnnotations()[1:] {
			if ta.GetBoundingPoly() == nil {
				continue
			}
			res.Paragraphs = append(res.Paragraphs, model.Paragraph{
				Text:        ta.GetDescription(),
				BoundingBox: toBox(ta.GetBoundingPoly()),
				Confidence:  toPercent(ta.GetConfidence()),
				ParagraphID: i + 1,
				BlockType:   "TEXT_ANNOTATION",
			})
		}
	}

	return res
}

func toBox(poly *visionpb.BoundingPoly) model.BoundingBox {
	box := model.BoundingBox{Vertices: make([]model.Vertex, 0, len(poly.GetVertices()))}
	for _, v := range poly.GetVertices() {
		box.Vertices = append(box.Vertices, model.Vertex{X: v.GetX(), Y: v.GetY()})
	}
	return box
}

func toPercent(confidence float32) float64 {
	if confidence <= 0 {
		return 0
	}
	return math.Round(float64(confidence)*10000) / 100
}
