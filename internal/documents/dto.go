package documents

import "time"

// DocumentResponse is the outward-facing representation of a document.
type DocumentResponse struct {
	ID            int64         `json:"id"`
	UserID        string        `json:"userId"`
	Title         string        `json:"title"`
	OriginalName  string        `json:"originalName"`
	MimeType      string        `json:"mimeType"`
	FileURL       string        `json:"fileUrl"`
	ExtractedData ExtractedData `json:"extractedData"`
	OriginalText  string        `json:"originalText,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

func toResponse(doc Document) DocumentResponse {
	return DocumentResponse{
		ID:            doc.ID,
		UserID:        doc.UserID,
		Title:         doc.Title,
		OriginalName:  doc.OriginalName,
		MimeType:      doc.MimeType,
		FileURL:       doc.FileURL,
		ExtractedData: doc.ExtractedData,
		OriginalText:  doc.OriginalText,
		CreatedAt:     doc.CreatedAt,
	}
}

func toResponseList(docs []Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		out = append(out, toResponse(doc))
	}
	return out
}
