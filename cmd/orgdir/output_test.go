package main

import (
	"strings"
	"testing"
)

func TestRenderTableKeepsHeaderCase(t *testing.T) {
	out := renderTable(
		[]string{"Category", "Files", "Would move", "Failed"},
		[][]string{{"Images", "2", "2"}},
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	)

	requireContains(t, out, "Category")
	requireContains(t, out, "Would move")
	if strings.Contains(out, "WOULD MOVE") || strings.Contains(out, "CATEGORY") {
		t.Fatalf("headers were upper-cased:\n%s", out)
	}
	requireContains(t, out, "Images")
}

func TestRenderTableNoColumns(t *testing.T) {
	if out := renderTable(nil, [][]string{{"x"}}, nil); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
