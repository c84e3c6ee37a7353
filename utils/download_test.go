package utils

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	if !IsValidUrl("https://example.com/assets/favicon.svg") {
		t.Errorf("A valid URL should have been provided")
	}
}

func TestUtils_ShouldRejectInvalidUrl(t *testing.T) {
	for _, uri := range []string{"favicon.svg", "./testdata/favicon.svg", "-", ""} {
		if IsValidUrl(uri) {
			t.Errorf("%q should not be a valid URL", uri)
		}
	}
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	sampleVector := filepath.Join("..", "testdata", "favicon.svg")

	ftype, err := DetectContentType(sampleVector)
	if err != nil {
		t.Fatalf("could not detect the content type: %v", err)
	}

	ct := ftype.(string)
	if !strings.Contains(ct, "xml") && !strings.Contains(ct, "text") {
		t.Errorf("an SVG source should be sniffed as XML or text, got %q", ct)
	}
}
