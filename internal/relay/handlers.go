package relay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"nameplate-relay/internal/pipeline"
	"nameplate-relay/internal/record"
)

// handleProcessImage runs the per-request state machine: receive ->
// annotate -> validate -> format -> respond. Terminal on first failure;
// exactly one response is written per request.
func (s *Server) handleProcessImage(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("image")
	if err != nil {
		s.metrics.IncImages("no_file")
		s.respondWithJSON(w, http.StatusBadRequest, map[string]string{"error": "No image file received"})
		return
	}
	defer file.Close()

	buf, err := io.ReadAll(file)
	if err != nil {
		s.metrics.IncImages("no_file")
		s.respondWithJSON(w, http.StatusBadRequest, map[string]string{"error": "No image file received"})
		return
	}

	s.logger.Info("received file",
		zap.String("name", header.Filename),
		zap.Int64("size", header.Size),
		zap.String("media_type", header.Header.Get("Content-Type")))

	ann, err := s.annotate(r.Context(), buf)
	if err != nil {
		s.metrics.IncImages("annotate_failed")
		s.logger.Error("annotation failed", zap.Error(err))
		s.respondProcessingError(w, err)
		return
	}

	if !ValidLabels(ann.Labels) {
		s.metrics.IncImages("rejected")
		s.logger.Info("image content rejected", zap.Strings("labels", ann.Labels))
		s.respondWithJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid image content"})
		return
	}

	raw, err := s.format(r.Context(), ann.Text)
	if err != nil {
		s.metrics.IncImages("format_failed")
		s.logger.Error("formatting failed", zap.Error(err))
		s.respondProcessingError(w, err)
		return
	}

	s.metrics.IncImages("ok")

	// Malformed model output degrades to the raw text instead of
	// failing the request.
	var data any = raw
	if rec, ok := record.Parse(raw); ok {
		data = rec
	}
	s.respondWithJSON(w, http.StatusOK, map[string]any{"success": true, "data": data})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// annotate and format wrap the provider calls with their per-stage
// timeouts; both contexts derive from the request context so a client
// disconnect aborts the in-flight call. A hit deadline surfaces as the
// provider error it turns into.
func (s *Server) annotate(ctx context.Context, image []byte) (pipeline.Annotation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.annotateTimeout)
	defer cancel()
	start := time.Now()
	ann, err := s.annotator.Annotate(ctx, image)
	s.metrics.ObserveStage("annotate", time.Since(start))
	return ann, err
}

func (s *Server) format(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.formatTimeout)
	defer cancel()
	start := time.Now()
	out, err := s.formatter.Format(ctx, text)
	s.metrics.ObserveStage("format", time.Since(start))
	return out, err
}

func (s *Server) respondProcessingError(w http.ResponseWriter, err error) {
	s.respondWithJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "Error processing image",
		"details": errorDetails(err),
	})
}

// errorDetails surfaces the provider's own message in the envelope,
// without the stage/kind prefix of the pipeline error.
func errorDetails(err error) string {
	var pe *pipeline.Error
	if errors.As(err, &pe) {
		if pe.Err != nil {
			return pe.Err.Error()
		}
		return pe.Message
	}
	return err.Error()
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
