package service

import (
	"testing"

	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"github.com/stretchr/testify/require"
)

func box(coords ...int32) *visionpb.BoundingPoly {
	poly := &visionpb.BoundingPoly{}
	for i := 0; i+1 < len(coords); i += 2 {
		poly.Vertices = append(poly.Vertices, &visionpb.Vertex{X: coords[i], Y: coords[i+1]})
	}
	return poly
}

func word(text string) *visionpb.Word {
	w := &visionpb.Word{}
	for _, r := range text {
		w.Symbols = append(w.Symbols, &visionpb.Symbol{Text: string(r)})
	}
	return w
}

func TestReshapeAnnotation(t *testing.T) {
	t.Run("paragraphs from full text annotation", func(t *testing.T) {
		resp := &visionpb.AnnotateImageResponse{
			FullTextAnnotation: &visionpb.TextAnnotation{
				Text: "統一發票\n豬肉絲",
				Pages: []*visionpb.Page{{
					Width:  800,
					Height: 600,
					Blocks: []*visionpb.Block{{
						BlockType: visionpb.Block_TEXT,
						Paragraphs: []*visionpb.Paragraph{
							{
								Words:       []*visionpb.Word{word("統一發票")},
								Confidence:  0.987,
								BoundingBox: box(0, 0, 100, 0, 100, 20, 0, 20),
							},
							{
								Words:       []*visionpb.Word{word("豬肉絲")},
								Confidence:  0.5,
								BoundingBox: box(0, 30, 80, 30, 80, 50, 0, 50),
							},
						},
					}},
				}},
			},
		}

		res := reshapeAnnotation(resp)
		require.Equal(t, "統一發票\n豬肉絲", res.Text)
		require.Equal(t, int32(800), res.Width)
		require.Equal(t, int32(600), res.Height)
		require.Len(t, res.Paragraphs, 2)

		p := res.Paragraphs[0]
		require.Equal(t, "統一發票", p.Text)
		require.Equal(t, 98.7, p.Confidence)
		require.Equal(t, 1, p.ParagraphID)
		require.Equal(t, "TEXT", p.BlockType)
		require.Len(t, p.BoundingBox.Vertices, 4)
		require.Equal(t, int32(100), p.BoundingBox.Vertices[1].X)

		require.Equal(t, 2, res.Paragraphs[1].ParagraphID)
		require.Equal(t, 50.0, res.Paragraphs[1].Confidence)
	})

	t.Run("multi-word paragraphs join with spaces", func(t *testing.T) {
		resp := &visionpb.AnnotateImageResponse{
			FullTextAnnotation: &visionpb.TextAnnotation{
				Text: "whole milk",
				Pages: []*visionpb.Page{{
					Blocks: []*visionpb.Block{{
						Paragraphs: []*visionpb.Paragraph{{
							Words:       []*visionpb.Word{word("whole"), word("milk")},
							BoundingBox: box(0, 0, 10, 10),
						}},
					}},
				}},
			},
		}
		res := reshapeAnnotation(resp)
		require.Len(t, res.Paragraphs, 1)
		require.Equal(t, "whole milk", res.Paragraphs[0].Text)
	})

	t.Run("falls back to text annotations when no blocks", func(t *testing.T) {
		resp := &visionpb.AnnotateImageResponse{
			TextAnnotations: []*visionpb.EntityAnnotation{
				{Description: "統一發票 豬肉絲"},
				{Description: "統一發票", BoundingPoly: box(0, 0, 10, 10), Confidence: 0.9},
				{Description: "豬肉絲", BoundingPoly: box(0, 20, 10, 30)},
			},
		}

		res := reshapeAnnotation(resp)
		require.Equal(t, "統一發票 豬肉絲", res.Text)
		require.Len(t, res.Paragraphs, 2)
		require.Equal(t, "TEXT_ANNOTATION", res.Paragraphs[0].BlockType)
		require.Equal(t, 90.0, res.Paragraphs[0].Confidence)
		require.Equal(t, 0.0, res.Paragraphs[1].Confidence)
	})

	t.Run("empty response", func(t *testing.T) {
		res := reshapeAnnotation(&visionpb.AnnotateImageResponse{})
		require.Empty(t, res.Text)
		require.NotNil(t, res.Paragraphs)
		require.Empty(t, res.Paragraphs)
	})
}

func TestToPercent(t *testing.T) {
	require.Equal(t, 0.0, toPercent(0))
	require.Equal(t, 0.0, toPercent(-1))
	require.Equal(t, 100.0, toPercent(1))
	require.Equal(t, 98.7, toPercent(0.987))
}
