package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintHelpers(t *testing.T) {
	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		want  string
	}{
		{"success", func(b *bytes.Buffer) { printSuccess(b, "mapped %d", 2) }, "mapped 2"},
		{"warning", func(b *bytes.Buffer) { printWarning(b, "Util has %d versions", 2) }, "Util has 2 versions"},
		{"info", func(b *bytes.Buffer) { printInfo(b, "Output") }, "Output"},
		{"detail", func(b *bytes.Buffer) { printDetail(b, "1.0, 2.0") }, "1.0, 2.0"},
		{"file", func(b *bytes.Buffer) { printFile(b, "/src/output.dgml") }, "/src/output.dgml"},
		{"key value", func(b *bytes.Buffer) { printKeyValue(b, "total time", "1s") }, "1s"},
		{"number", func(b *bytes.Buffer) { printNumber(b, "projects", 3) }, "3"},
		{"done", func(b *bytes.Buffer) { printDone(b) }, "Done"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output %q missing %q", buf.String(), tt.want)
			}
			if !strings.HasSuffix(buf.String(), "\n") {
				t.Error("output should end with a newline")
			}
		})
	}
}

func TestPluralize(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 solutions"},
		{1, "1 solution"},
		{3, "3 solutions"},
	}
	for _, tt := range tests {
		if got := pluralize(tt.n, "solution"); got != tt.want {
			t.Errorf("pluralize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
