package documents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateReturnsAssignedIdentity(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO documents").
		WithArgs(
			"user-1",
			"notice.pdf",
			"notice.pdf",
			"application/pdf",
			"placeholder",
			sqlmock.AnyArg(), // extracted_data
			sqlmock.AnyArg(), // original_text
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), created))

	doc, err := repo.Create(context.Background(), Document{
		UserID:       "user-1",
		Title:        "notice.pdf",
		OriginalName: "notice.pdf",
		MimeType:     "application/pdf",
		FileURL:      "placeholder",
		ExtractedData: ExtractedData{
			Summary: "s",
			Urgency: UrgencyLow,
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if doc.ID != 7 {
		t.Fatalf("expected assigned id 7, got %d", doc.ID)
	}
	if !doc.CreatedAt.Equal(created) {
		t.Fatalf("expected database created_at, got %v", doc.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByUserScansRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	cols := []string{"id", "user_id", "title", "original_name", "mime_type", "file_url", "extracted_data", "original_text", "created_at"}
	now := time.Now().UTC()

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), "user-1", "b.pdf", "b.pdf", "application/pdf", "placeholder", []byte(`{"summary":"b","urgency":"High"}`), nil, now).
			AddRow(int64(1), "user-1", "a.pdf", "a.pdf", "application/pdf", "placeholder", []byte(`{"summary":"a","urgency":"Low"}`), "page text", now.Add(-time.Hour)))

	docs, err := repo.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	if docs[0].ExtractedData.Urgency != UrgencyHigh {
		t.Fatalf("expected extracted_data decoded, got %+v", docs[0].ExtractedData)
	}
	if docs[0].OriginalText != "" {
		t.Fatalf("expected empty original text for NULL column, got %q", docs[0].OriginalText)
	}
	if docs[1].OriginalText != "page text" {
		t.Fatalf("expected original text scanned, got %q", docs[1].OriginalText)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDMapsMissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	cols := []string{"id", "user_id", "title", "original_name", "mime_type", "file_url", "extracted_data", "original_text", "created_at"}

	mock.ExpectQuery("SELECT (.+) FROM documents").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(cols))

	_, err = repo.GetByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoDeleteByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectExec("DELETE FROM documents").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteByID(context.Background(), 7); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
