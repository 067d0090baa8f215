package utils

import (
	"strings"
	"testing"
)

func TestGenerateShortToken(t *testing.T) {
	token := GenerateShortToken(6)
	if len(token) != 12 {
		t.Fatalf("token length = %d, want 12", len(token))
	}
	for _, c := range token {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Errorf("unexpected character %q in token %q", c, token)
		}
	}
}

func TestGenerateShortTokenUniqueness(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token := GenerateShortToken(6)
		if seen[token] {
			t.Fatalf("duplicate token %q after %d draws", token, i)
		}
		seen[token] = true
	}
}
