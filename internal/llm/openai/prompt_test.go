package openai

import (
	"strings"
	"testing"
)

func TestBuildPromptCarriesLanguage(t *testing.T) {
	prompt := BuildPrompt("Hindi")
	if !strings.Contains(prompt, "Output Language: Hindi.") {
		t.Fatalf("expected output language line, got:\n%s", prompt)
	}
	if !strings.Contains(prompt, "simple summary in Hindi") {
		t.Fatalf("expected summary instruction in the target language")
	}
	if !strings.Contains(prompt, "Strictly return JSON only.") {
		t.Fatalf("expected JSON-only instruction")
	}
}

func TestBuildPromptDefaultsToEnglish(t *testing.T) {
	for _, language := range []string{"", "   "} {
		prompt := BuildPrompt(language)
		if !strings.Contains(prompt, "Output Language: English.") {
			t.Fatalf("expected English default for %q", language)
		}
	}
}

func TestBuildPromptIsDeterministic(t *testing.T) {
	if BuildPrompt("Tamil") != BuildPrompt("Tamil") {
		t.Fatalf("expected identical prompts for identical inputs")
	}
}
