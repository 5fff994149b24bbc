package google

import (
	"testing"

	"google.golang.org/genai"
)

func TestJoinText(t *testing.T) {
	parts := []*genai.Part{
		genai.NewPartFromText("A narrow alley "),
		{InlineData: &genai.Blob{MIMEType: "image/png"}},
		genai.NewPartFromText("with a red bicycle."),
	}

	if got := joinText(parts); got != "A narrow alley with a red bicycle." {
		t.Fatalf("unexpected text %q", got)
	}
}

func TestJoinTextEmpty(t *testing.T) {
	if got := joinText(nil); got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}
