package extract

import (
	"context"
	"testing"
)

func TestTextFromBytesRejectsNonPDF(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte{0x89, 'P', 'N', 'G'}, "image/png")
	if err == nil {
		t.Fatalf("expected error for non-pdf mime type")
	}
}

func TestTextFromBytesHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := TextFromBytes(ctx, []byte("%PDF-1.4"), "application/pdf")
	if err == nil {
		t.Fatalf("expected context error")
	}
}

func TestNormalizeMimeTypeStripsParams(t *testing.T) {
	if got := normalizeMimeType("Application/PDF; charset=binary"); got != "application/pdf" {
		t.Fatalf("normalizeMimeType = %q", got)
	}
}

func TestTextFromBytesRejectsTruncatedPDF(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte("%PDF-1.4 not really"), "application/pdf")
	if err == nil {
		t.Fatalf("expected error for truncated pdf")
	}
}
