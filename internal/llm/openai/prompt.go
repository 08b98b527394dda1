package openai

import (
	"fmt"
	"strings"
)

const promptTemplate = `You are a legal document decoder for Indian citizens.
Decode the attached legal document.
Output Language: %[1]s.

Analyze the document and provide a JSON response with the following structure:
{
  "summary": "5-7 lines simple summary in %[1]s, no jargon",
  "keyPoints": ["point 1", "point 2", ...],
  "actionPlan": "Consult a lawyer.",
  "extractedFields": {
    "sender": "Name of sender",
    "receiver": "Name of receiver",
    "date": "Date of notice",
    "deadline": "Deadline date or duration",
    "subject": "Subject of notice",
    "demands": ["demand 1", "demand 2"]
  },
  "detectedDocType": "Legal Notice / Court Order / etc.",
  "categoryTag": "Money / Property / Employment / Family / Business / Other",
  "urgency": "High / Medium / Low"
}

Strictly return JSON only.`

// BuildPrompt renders the decode instruction prompt. The target language is
// the only variable; everything else is fixed so identical uploads produce
// identical prompts.
func BuildPrompt(language string) string {
	lang := strings.TrimSpace(language)
	if lang == "" {
		lang = "English"
	}
	return fmt.Sprintf(promptTemplate, lang)
}
