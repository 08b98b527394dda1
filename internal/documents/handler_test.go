package documents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"legaldecode-backend/internal/documents"
	"legaldecode-backend/internal/llm"
	"legaldecode-backend/internal/shared/config"
	"legaldecode-backend/internal/shared/server"
)

const stubModelOutput = `{
  "summary": "Eviction notice demanding the premises be vacated.",
  "keyPoints": ["Vacate within 30 days", "Rent arrears claimed"],
  "actionPlan": "Reply through a lawyer before the deadline.",
  "extractedFields": {"sender": "Advocate R. Sharma", "deadline": "30 days"},
  "detectedDocType": "Eviction Notice",
  "categoryTag": "Property",
  "urgency": "High"
}`

type stubClient struct {
	raw string
	err error
}

func (s stubClient) DecodeDocument(ctx context.Context, input llm.DecodeInput) (json.RawMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return json.RawMessage(s.raw), nil
}

func newTestRouter(client llm.Client) (*gin.Engine, *documents.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := documents.NewMemoryRepo()
	svc := &documents.Service{Repo: repo, LLM: client}
	cfg := config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:5173"},
		Env:             "dev",
	}
	router := server.NewRouter(server.RouterDeps{
		Config:          cfg,
		DocumentHandler: documents.NewHandler(svc),
	})
	return router, repo
}

func uploadRequest(t *testing.T, guestID, fileName, language string, contents []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write(contents); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			t.Fatalf("write language field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", guestID)
	return req
}

type documentPayload struct {
	ID            int64  `json:"id"`
	UserID        string `json:"userId"`
	Title         string `json:"title"`
	OriginalName  string `json:"originalName"`
	MimeType      string `json:"mimeType"`
	FileURL       string `json:"fileUrl"`
	ExtractedData struct {
		Summary         string `json:"summary"`
		Urgency         string `json:"urgency"`
		DetectedDocType string `json:"detectedDocType"`
	} `json:"extractedData"`
	CreatedAt string `json:"createdAt"`
}

func TestUploadDecodeAndFetch(t *testing.T) {
	router, _ := newTestRouter(stubClient{raw: stubModelOutput})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "tester-1", "notice.pdf", "Hindi", []byte("%PDF-1.4 fake")))

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created documentPayload
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.ID <= 0 {
		t.Fatalf("expected assigned id, got %d", created.ID)
	}
	if created.UserID != "guest:tester-1" {
		t.Fatalf("expected guest identity, got %q", created.UserID)
	}
	if created.ExtractedData.Urgency != "High" {
		t.Fatalf("expected urgency High, got %q", created.ExtractedData.Urgency)
	}
	if created.CreatedAt == "" {
		t.Fatalf("expected createdAt in response")
	}

	reqGet := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/documents/%d", created.ID), nil)
	reqGet.Header.Set("X-Guest-Id", "tester-1")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", respGet.Code)
	}
	var fetched documentPayload
	if err := json.NewDecoder(respGet.Body).Decode(&fetched); err != nil {
		t.Fatalf("decode get response: %v", err)
	}
	if fetched.ID != created.ID || fetched.ExtractedData.Summary != created.ExtractedData.Summary {
		t.Fatalf("fetched document differs from created one")
	}
}

func TestUploadWithoutFile(t *testing.T) {
	router, repo := newTestRouter(stubClient{raw: stubModelOutput})

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	_ = writer.WriteField("language", "English")
	_ = writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-Guest-Id", "tester-2")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}

	docs, _ := repo.ListByUser(context.Background(), "guest:tester-2")
	if len(docs) != 0 {
		t.Fatalf("expected no records, got %d", len(docs))
	}
}

func TestUploadWithoutIdentity(t *testing.T) {
	router, _ := newTestRouter(stubClient{raw: stubModelOutput})

	req := uploadRequest(t, "tester-3", "notice.pdf", "", []byte("bytes"))
	req.Header.Del("X-Guest-Id")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestUploadModelOutputNotJSON(t *testing.T) {
	router, repo := newTestRouter(stubClient{raw: "Sorry, the scan is unreadable."})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, uploadRequest(t, "tester-4", "notice.pdf", "", []byte("bytes")))

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	var payload struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if payload.Error.Code != "PARSE_ERROR" {
		t.Fatalf("expected PARSE_ERROR, got %q", payload.Error.Code)
	}

	docs, _ := repo.ListByUser(context.Background(), "guest:tester-4")
	if len(docs) != 0 {
		t.Fatalf("expected no records after parse failure, got %d", len(docs))
	}
}

func TestListReturnsOnlyOwnDocuments(t *testing.T) {
	router, repo := newTestRouter(stubClient{raw: stubModelOutput})

	repo.Create(context.Background(), documents.Document{UserID: "guest:alice", Title: "a.pdf"})
	repo.Create(context.Background(), documents.Document{UserID: "guest:bob", Title: "b.pdf"})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents", nil)
	req.Header.Set("X-Guest-Id", "alice")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var docs []documentPayload
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(docs) != 1 || docs[0].Title != "a.pdf" {
		t.Fatalf("expected only alice's document, got %+v", docs)
	}
}

func TestGetForeignDocument(t *testing.T) {
	router, repo := newTestRouter(stubClient{raw: stubModelOutput})

	created, _ := repo.Create(context.Background(), documents.Document{UserID: "guest:alice", Title: "a.pdf"})

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/documents/%d", created.ID), nil)
	req.Header.Set("X-Guest-Id", "bob")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for foreign document, got %d", resp.Code)
	}
}

func TestDeleteThenFetch(t *testing.T) {
	router, repo := newTestRouter(stubClient{raw: stubModelOutput})

	created, _ := repo.Create(context.Background(), documents.Document{UserID: "guest:alice", Title: "a.pdf"})

	reqDel := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/v1/documents/%d", created.ID), nil)
	reqDel.Header.Set("X-Guest-Id", "alice")
	respDel := httptest.NewRecorder()
	router.ServeHTTP(respDel, reqDel)

	if respDel.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", respDel.Code)
	}

	reqGet := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/v1/documents/%d", created.ID), nil)
	reqGet.Header.Set("X-Guest-Id", "alice")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)

	if respGet.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", respGet.Code)
	}
}

func TestGetBadIdentifier(t *testing.T) {
	router, _ := newTestRouter(stubClient{raw: stubModelOutput})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/not-a-number", nil)
	req.Header.Set("X-Guest-Id", "alice")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for malformed id, got %d", resp.Code)
	}
}

func TestHealthNeedsNoIdentity(t *testing.T) {
	router, _ := newTestRouter(stubClient{raw: stubModelOutput})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}
