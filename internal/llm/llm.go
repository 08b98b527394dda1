package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Client abstracts vision-capable LLM providers for document decoding.
type Client interface {
	DecodeDocument(ctx context.Context, input DecodeInput) (json.RawMessage, error)
}

// DecodeInput captures the inputs for a single document decode request.
type DecodeInput struct {
	// FileDataURL is the uploaded file embedded as a data: URI
	// (mime type + base64 payload).
	FileDataURL string
	// Language is the natural language the structured summary should be
	// written in.
	Language string
}

// EncodeDataURL builds the embedded-file representation sent to the provider.
func EncodeDataURL(mimeType string, b64 string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, b64)
}

// ErrEmptyResponse is returned when the provider responds without content.
var ErrEmptyResponse = errors.New("llm response empty")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// DecodeDocument always fails; the placeholder has no provider behind it.
func (PlaceholderClient) DecodeDocument(ctx context.Context, input DecodeInput) (json.RawMessage, error) {
	_ = ctx
	_ = input
	return nil, errors.New("LLM not configured")
}
