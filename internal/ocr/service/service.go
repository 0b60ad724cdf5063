package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/uncleben006/invoice-agent/internal/ocr/model"
)

// maxOCRPages caps how many PDF pages are sent to the OCR backend.
const maxOCRPages = 5

// ErrNoText is returned when neither the text layer nor OCR produced
// usable text for a PDF.
var ErrNoText = errors.New("no usable text could be extracted")

// ErrUnavailable is returned when no OCR backend is configured; everything
// that does not need one (the PDF text-layer path included) keeps working.
var ErrUnavailable = errors.New("ocr backend is not configured")

// Service downloads source files and turns them into normalized OCR results.
type Service struct {
	annotator   Annotator
	client      *http.Client
	maxDownload int64
	log         zerolog.Logger
}

func New(annotator Annotator, downloadTimeout time.Duration, maxDownloadBytes int64, logger zerolog.Logger) *Service {
	return &Service{
		annotator:   annotator,
		client:      &http.Client{Timeout: downloadTimeout},
		maxDownload: maxDownloadBytes,
		log:         logger,
	}
}

// ExtractText downloads the file behind url and extracts text plus
// positional metadata. Images (and unknown types) go straight to the OCR
// backend; PDFs are served from their text layer when every page has one,
// otherwise the document itself is OCRed.
func (s *Service) ExtractText(ctx context.Context, url, fileType string) (model.Result, error) {
	s.log.Info().Str("url", url).Str("file_type", fileType).Msg("ocr extract start")

	content, err := s.download(ctx, url)
	if err != nil {
		return model.Result{}, err
	}

	switch {
	case strings.HasPrefix(fileType, "image/"):
		return s.processImage(ctx, content, url)
	case fileType == "application/pdf":
		return s.processPDF(ctx, content, url)
	default:
		s.log.Warn().Str("file_type", fileType).Msg("unknown file type, treating as image")
		return s.processImage(ctx, content, url)
	}
}

// ExtractBatch runs ExtractText for each file; a failure is recorded on
// its item and does not abort the batch.
func (s *Service) ExtractBatch(ctx context.Context, files []model.BatchFile) []model.BatchItem {
	s.log.Info().Int("files", len(files)).Msg("ocr batch start")

	items := make([]model.BatchItem, 0, len(files))
	ok := 0
	for _, f := range files {
		item := model.BatchItem{Filename: f.Filename, Mimetype: f.Mimetype}
		res, err := s.ExtractText(ctx, f.Link, f.Mimetype)
		if err != nil {
			s.log.Error().Err(err).Str("filename", f.Filename).Msg("batch file failed")
			item.Error = err.Error()
		} else {
			item.Result = res
			item.Success = true
			ok++
		}
		items = append(items, item)
	}

	s.log.Info().Int("ok", ok).Int("total", len(files)).Msg("ocr batch done")
	return items
}

func (s *Service) Close() error {
	if s.annotator == nil {
		return nil
	}
	return s.annotator.Close()
}

func (s *Service) download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("bad url %q: %w", url, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %q: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download %q: unexpected status %d", url, resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, s.maxDownload+1))
	if err != nil {
		return nil, fmt.Errorf("download %q: %w", url, err)
	}
	if int64(len(content)) > s.maxDownload {
		return nil, fmt.Errorf("download %q: file exceeds %d bytes", url, s.maxDownload)
	}
	s.log.Info().Int("bytes", len(content)).Msg("download ok")
	return content, nil
}

func (s *Service) processImage(ctx context.Context, img []byte, url string) (model.Result, error) {
	if s.annotator == nil {
		return model.Result{}, ErrUnavailable
	}
	resp, err := s.annotator.AnnotateImage(ctx, img)
	if err != nil {
		return model.Result{}, err
	}
	res := reshapeAnnotation(resp)
	res.FileURL = url
	s.log.Info().Int("text_len", len(res.Text)).Int("paragraphs", len(res.Paragraphs)).Msg("image ocr done")
	return res, nil
}

func (s *Service) processPDF(ctx context.Context, data []byte, url string) (model.Result, error) {
	if pages, all := pdfTextLayer(data); all {
		s.log.Info().Int("pages", len(pages)).Msg("pdf has full text layer")
		return model.Result{
			Text:       strings.Join(pages, "\n\n"),
			Paragraphs: []model.Paragraph{},
			FileURL:    url,
		}, nil
	}

	s.log.Info().Msg("pdf lacks a full text layer, running ocr")
	if s.annotator == nil {
		return model.Result{}, ErrUnavailable
	}
	pageNums := make([]int32, 0, maxOCRPages)
	for i := int32(1); i <= maxOCRPages; i++ {
		pageNums = append(pageNums, i)
	}
	responses, err := s.annotator.AnnotateFile(ctx, data, "application/pdf", pageNums)
	if err != nil {
		return model.Result{}, err
	}

	var texts []string
	for i, resp := range responses {
		if resp.Error != nil {
			s.log.Error().Str("message", resp.Error.GetMessage()).Int("page", i+1).Msg("page ocr failed")
			continue
		}
		page := reshapeAnnotation(resp)
		if len(strings.TrimSpace(page.Text)) > minTextLayerChars {
			texts = append(texts, page.Text)
		} else {
			s.log.Warn().Int("page", i+1).Msg("page ocr produced too little text")
		}
	}
	if len(texts) == 0 {
		return model.Result{}, fmt.Errorf("%w: pdf %q", ErrNoText, url)
	}

	res := model.Result{
		Text:       strings.Join(texts, "\n\n"),
		Paragraphs: []model.Paragraph{},
		FileURL:    url,
	}
	s.log.Info().Int("text_len", len(res.Text)).Msg("pdf ocr done")
	return res, nil
}
