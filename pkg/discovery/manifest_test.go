package discovery

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/slngraph/pkg/deps"
	"github.com/matzehuels/slngraph/pkg/errors"
)

func TestParseManifest(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		want []deps.Dependency
	}{
		{
			name: "empty packages",
			xml:  `<packages />`,
			want: nil,
		},
		{
			name: "packages in order",
			xml: `<?xml version="1.0" encoding="utf-8"?>
<packages>
  <package id="Newtonsoft.Json" version="12.0.3" targetFramework="net472" />
  <package id="log4net" version="2.0.8" targetFramework="net472" />
</packages>`,
			want: []deps.Dependency{
				deps.PackageDependency("Newtonsoft.Json", "12.0.3"),
				deps.PackageDependency("log4net", "2.0.8"),
			},
		},
		{
			name: "versions kept verbatim",
			xml:  `<packages><package id="Json" version=" 1.0-RC " /></packages>`,
			want: []deps.Dependency{deps.PackageDependency("Json", " 1.0-RC ")},
		},
		{
			name: "windows-1252 declaration",
			xml:  `<?xml version="1.0" encoding="windows-1252"?><packages><package id="Caf` + "\xE9" + `" version="1.0" /></packages>`,
			want: []deps.Dependency{deps.PackageDependency("Café", "1.0")},
		},
		{
			name: "empty version attribute is a version",
			xml:  `<packages><package id="Json" version="" /></packages>`,
			want: []deps.Dependency{deps.PackageDependency("Json", "")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseManifest([]byte(tt.xml))
			if err != nil {
				t.Fatalf("ParseManifest() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseManifest() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseManifest_MissingAttributes(t *testing.T) {
	tests := []struct {
		name string
		xml  string
	}{
		{"missing id", `<packages><package version="1.0" /></packages>`},
		{"missing version", `<packages><package id="Json" /></packages>`},
		{"attribute case matters", `<packages><package Id="Json" Version="1.0" /></packages>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.xml))
			if !errors.Is(err, errors.ErrCodeInvalidManifest) {
				t.Errorf("ParseManifest() error = %v, want %v", err, errors.ErrCodeInvalidManifest)
			}
		})
	}
}
