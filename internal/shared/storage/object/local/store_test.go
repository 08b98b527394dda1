package local

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func TestSaveAndOpenRoundtrip(t *testing.T) {
	store := New(t.TempDir())

	payload := []byte("%PDF-1.4 test payload")
	key, size, mimeType, err := store.Save(context.Background(), "guest:abc", "my notice.pdf", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len(payload)) {
		t.Fatalf("expected size %d, got %d", len(payload), size)
	}
	if mimeType == "" {
		t.Fatalf("expected detected mime type")
	}
	if strings.Contains(key, "guest:abc") {
		t.Fatalf("storage key leaks raw user id: %q", key)
	}

	rc, err := store.Open(context.Background(), key)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("stored bytes differ from input")
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	for _, key := range []string{"../secrets.txt", "/etc/passwd"} {
		if _, err := store.Open(context.Background(), key); err == nil {
			t.Fatalf("expected error for key %q", key)
		}
	}
}
