// Package vision implements the annotation stage on the Google Cloud
// Vision images:annotate API.
package vision

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"google.golang.org/api/option"
	visionapi "google.golang.org/api/vision/v1"

	"nameplate-relay/internal/pipeline"
)

const stage = "annotate"

// Client calls the Vision API with text detection and label detection
// requested in a single round trip.
type Client struct {
	svc *visionapi.Service
}

// New builds a client. Credentials come in through opts: a service
// account key file or an API key, chosen by the caller.
func New(ctx context.Context, opts ...option.ClientOption) (*Client, error) {
	svc, err := visionapi.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{svc: svc}, nil
}

// Annotate implements pipeline.Annotator. An empty payload fails before
// any network call; OCR success with no text is terminal.
func (c *Client) Annotate(ctx context.Context, image []byte) (pipeline.Annotation, error) {
	if len(image) == 0 {
		return pipeline.Annotation{}, pipeline.NewInputError(stage, "empty image payload")
	}

	req := &visionapi.BatchAnnotateImagesRequest{
		Requests: []*visionapi.AnnotateImageRequest{{
			Image: &visionapi.Image{Content: base64.StdEncoding.EncodeToString(image)},
			Features: []*visionapi.Feature{
				{Type: "TEXT_DETECTION"},
				{Type: "LABEL_DETECTION"},
			},
		}},
	}

	resp, err := c.svc.Images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return pipeline.Annotation{}, pipeline.NewUpstreamError(stage, err)
	}
	if len(resp.Responses) == 0 {
		return pipeline.Annotation{}, pipeline.NewUpstreamError(stage, errors.New("empty annotate response"))
	}
	res := resp.Responses[0]
	if res.Error != nil {
		return pipeline.Annotation{}, pipeline.NewUpstreamError(stage, errors.New(res.Error.Message))
	}
	if res.FullTextAnnotation == nil || strings.TrimSpace(res.FullTextAnnotation.Text) == "" {
		return pipeline.Annotation{}, pipeline.NewNoTextError(stage)
	}

	labels := make([]string, 0, len(res.LabelAnnotations))
	for _, la := range res.LabelAnnotations {
		labels = append(labels, strings.ToLower(la.Description))
	}
	return pipeline.Annotation{
		Text:   res.FullTextAnnotation.Text,
		Labels: labels,
	}, nil
}
