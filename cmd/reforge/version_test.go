package main

import (
	"strings"
	"testing"
)

func TestRenderVersionJSONIsPlain(t *testing.T) {
	var sb strings.Builder
	if err := renderVersionJSON(&sb, collectVersionInfo()); err != nil {
		t.Fatalf("renderVersionJSON failed: %v", err)
	}
	got := sb.String()
	if strings.ContainsRune(got, '\x1b') {
		t.Errorf("JSON output must not contain escape sequences, got %q", got)
	}
	if !strings.Contains(got, `"version"`) {
		t.Errorf("Expected a version field, got %q", got)
	}
}

func TestRenderVersionPrettyPlain(t *testing.T) {
	var sb strings.Builder
	renderVersionPretty(&sb, versionInfo{Version: "1.2.3"}, false)
	if got := sb.String(); got != "reforge 1.2.3\n" {
		t.Errorf("Expected a plain render, got %q", got)
	}
}
