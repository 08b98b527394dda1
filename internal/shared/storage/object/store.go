package object

import (
	"context"
	"io"
)

// ObjectStore is the retention backend for uploaded legal documents. Save
// returns the storage key recorded as the document's fileUrl, along with the
// detected size and MIME type of the stored bytes.
type ObjectStore interface {
	Save(ctx context.Context, userId string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
