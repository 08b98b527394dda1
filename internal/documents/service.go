package documents

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"legaldecode-backend/internal/extract"
	"legaldecode-backend/internal/llm"
	"legaldecode-backend/internal/shared/metrics"
	"legaldecode-backend/internal/shared/storage/object"
	"legaldecode-backend/internal/shared/telemetry"
)

const (
	// fileURLPlaceholder is stored when upload retention is disabled: bytes
	// are processed for extraction but not kept.
	fileURLPlaceholder = "placeholder"

	originalTextNote = "Decoded via model vision; no local text layer"
)

// Service orchestrates document ingestion: encode the upload, call the model
// gateway once, validate the structured result, persist. All collaborators
// are injected so the workflow can run against fakes in tests.
type Service struct {
	Repo Repo
	LLM  llm.Client
	// Store receives the raw upload when RetainUploads is set. Retention is
	// an explicit configuration choice; the default is to process without
	// keeping the bytes.
	Store         object.ObjectStore
	RetainUploads bool
}

// DecodeRequest carries one upload through the ingestion workflow.
type DecodeRequest struct {
	UserID   string
	FileName string
	MimeType string
	Language string
	Data     []byte
}

// Decode runs the ingestion workflow for one uploaded document. A failure at
// any step aborts without persisting a record.
func (s *Service) Decode(ctx context.Context, req DecodeRequest) (Document, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return Document{}, ErrUnauthorized
	}
	if req.FileName == "" || len(req.Data) == 0 {
		return Document{}, fmt.Errorf("%w: file is required", ErrInvalidInput)
	}

	mimeType := strings.TrimSpace(req.MimeType)
	if mimeType == "" {
		mimeType = http.DetectContentType(req.Data)
	}

	metrics.IncDecodeStarted()
	start := time.Now()

	dataURL := llm.EncodeDataURL(mimeType, base64.StdEncoding.EncodeToString(req.Data))

	raw, err := s.LLM.DecodeDocument(ctx, llm.DecodeInput{
		FileDataURL: dataURL,
		Language:    req.Language,
	})
	if err != nil {
		metrics.IncDecodeFailed()
		return Document{}, fmt.Errorf("%w: %v", ErrGateway, err)
	}

	extracted, err := ParseExtractedData(raw)
	if err != nil {
		metrics.IncDecodeFailed()
		return Document{}, err
	}

	doc := Document{
		UserID:        req.UserID,
		Title:         req.FileName,
		OriginalName:  req.FileName,
		MimeType:      mimeType,
		FileURL:       fileURLPlaceholder,
		ExtractedData: extracted,
		OriginalText:  s.originalText(ctx, req, mimeType),
	}

	if s.RetainUploads && s.Store != nil {
		storageKey, _, _, err := s.Store.Save(ctx, req.UserID, req.FileName, bytes.NewReader(req.Data))
		if err != nil {
			metrics.IncDecodeFailed()
			return Document{}, fmt.Errorf("%w: retain upload: %v", ErrStorage, err)
		}
		doc.FileURL = storageKey
	}

	stored, err := s.Repo.Create(ctx, doc)
	if err != nil {
		metrics.IncDecodeFailed()
		return Document{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	metrics.IncDecodeCompleted()
	metrics.ObserveDecodeDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return stored, nil
}

// originalText prefers the PDF text layer when one exists; scanned documents
// and images fall back to a provenance note.
func (s *Service) originalText(ctx context.Context, req DecodeRequest, mimeType string) string {
	text, err := extract.TextFromBytes(ctx, req.Data, mimeType)
	if err != nil || strings.TrimSpace(text) == "" {
		if err != nil && strings.EqualFold(mimeType, "application/pdf") {
			telemetry.Warn("decode.text_layer_unavailable", map[string]any{
				"file":  req.FileName,
				"error": err.Error(),
			})
		}
		return originalTextNote
	}
	return text
}

// List returns the user's documents, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]Document, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthorized
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Get fetches a document and verifies ownership. Documents belonging to a
// different user surface ErrNotOwner rather than the record.
func (s *Service) Get(ctx context.Context, userID string, id int64) (Document, error) {
	if strings.TrimSpace(userID) == "" {
		return Document{}, ErrUnauthorized
	}
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Document{}, err
	}
	if doc.UserID != userID {
		return Document{}, ErrNotOwner
	}
	return doc, nil
}

// Delete removes a document after verifying it exists and is owned by userID.
func (s *Service) Delete(ctx context.Context, userID string, id int64) error {
	if strings.TrimSpace(userID) == "" {
		return ErrUnauthorized
	}
	doc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.UserID != userID {
		return ErrNotOwner
	}
	return s.Repo.DeleteByID(ctx, id)
}
