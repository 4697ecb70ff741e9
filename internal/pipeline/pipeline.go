// Package pipeline defines the stage contracts for the image relay:
// an annotator that extracts text and labels from an uploaded photo,
// and a formatter that coerces the extracted text into a structured
// equipment record. Implementations live in their provider packages;
// the relay endpoint composes them per request.
package pipeline

import "context"

// Annotation is the outcome of one OCR/label-detection call. Labels are
// lower-cased; their order reflects provider confidence and carries no
// meaning downstream.
type Annotation struct {
	Text   string
	Labels []string
}

// Annotator extracts text and content labels from raw image bytes.
type Annotator interface {
	Annotate(ctx context.Context, image []byte) (Annotation, error)
}

// Formatter turns extracted nameplate text into structured record text.
// The returned string is the model's output verbatim; parsing it into a
// record is the caller's concern.
type Formatter interface {
	Format(ctx context.Context, text string) (string, error)
}
