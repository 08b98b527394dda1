package documents

import "time"

// Urgency levels the decoder contract allows. Anything else from the model is
// a contract violation and rejected before persistence.
const (
	UrgencyLow    = "Low"
	UrgencyMedium = "Medium"
	UrgencyHigh   = "High"
)

// Document is a decoded legal document owned by a user. Records are written
// once at creation and never updated; the only mutation is deletion.
type Document struct {
	ID            int64
	UserID        string
	Title         string
	OriginalName  string
	MimeType      string
	FileURL       string
	ExtractedData ExtractedData
	OriginalText  string
	CreatedAt     time.Time
}

// ExtractedData is the structured summary produced by the model.
type ExtractedData struct {
	Summary         string          `json:"summary"`
	KeyPoints       []string        `json:"keyPoints"`
	ActionPlan      string          `json:"actionPlan"`
	ExtractedFields ExtractedFields `json:"extractedFields"`
	DetectedDocType string          `json:"detectedDocType"`
	CategoryTag     string          `json:"categoryTag"`
	Urgency         string          `json:"urgency"`
}

// ExtractedFields are the optional notice fields the model may identify.
type ExtractedFields struct {
	Sender   string   `json:"sender,omitempty"`
	Receiver string   `json:"receiver,omitempty"`
	Date     string   `json:"date,omitempty"`
	Deadline string   `json:"deadline,omitempty"`
	Subject  string   `json:"subject,omitempty"`
	Demands  []string `json:"demands,omitempty"`
}
