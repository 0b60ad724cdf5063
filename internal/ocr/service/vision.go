package service

import (
	"context"
	"errors"
	"fmt"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
	"google.golang.org/api/option"
)

// languageHints covers the invoices this service sees in practice.
var languageHints = []string{"zh-Hant", "en"}

// Annotator is the narrow slice of the Vision API the OCR service needs.
// Tests substitute a fake so no cloud credentials are required.
type Annotator interface {
	AnnotateImage(ctx context.Context, img []byte) (*visionpb.AnnotateImageResponse, error)
	AnnotateFile(ctx context.Context, data []byte, mimeType string, pages []int32) ([]*visionpb.AnnotateImageResponse, error)
	Close() error
}

type visionAnnotator struct {
	client *vision.ImageAnnotatorClient
}

// NewVisionAnnotator builds an Annotator backed by Google Cloud Vision using
// a service-account credentials file.
func NewVisionAnnotator(ctx context.Context, credentialsPath string) (Annotator, error) {
	client, err := vision.NewImageAnnotatorClient(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("create vision client: %w", err)
	}
	return &visionAnnotator{client: client}, nil
}

func documentFeature() []*visionpb.Feature {
	return []*visionpb.Feature{{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION}}
}

func (v *visionAnnotator) AnnotateImage(ctx context.Context, img []byte) (*visionpb.AnnotateImageResponse, error) {
	resp, err := v.client.BatchAnnotateImages(ctx, &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image:        &visionpb.Image{Content: img},
			Features:     documentFeature(),
			ImageContext: &visionpb.ImageContext{LanguageHints: languageHints},
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("vision annotate image: %w", err)
	}
	if len(resp.Responses) == 0 {
		return nil, errors.New("vision returned no responses")
	}
	r := resp.Responses[0]
	if r.Error != nil {
		return nil, fmt.Errorf("vision api error: %s", r.Error.GetMessage())
	}
	return r, nil
}

func (v *visionAnnotator) AnnotateFile(ctx context.Context, data []byte, mimeType string, pages []int32) ([]*visionpb.AnnotateImageResponse, error) {
	resp, err := v.client.BatchAnnotateFiles(ctx, &visionpb.BatchAnnotateFilesRequest{
		Requests: []*visionpb.AnnotateFileRequest{{
			InputConfig:  &visionpb.InputConfig{Content: data, MimeType: mimeType},
			Features:     documentFeature(),
			ImageContext: &visionpb.ImageContext{LanguageHints: languageHints},
			Pages:        pages,
		}},
	})
	if err != nil {
		return nil, fmt.Errorf("vision annotate file: %w", err)
	}
	if len(resp.Responses) == 0 {
		return nil, errors.New("vision returned no responses")
	}
	fr := resp.Responses[0]
	if fr.Error != nil {
		return nil, fmt.Errorf("vision api error: %s", fr.Error.GetMessage())
	}
	return fr.Responses, nil
}

func (v *visionAnnotator) Close() error { return v.client.Close() }
