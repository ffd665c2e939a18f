package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/slngraph/pkg/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// fixture lays out one solution with two projects, one of which
// references the other and a package through packages.config.
func fixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "App.sln"), "")
	writeFile(t, filepath.Join(root, "Core", "Core.csproj"), `<Project Sdk="Microsoft.NET.Sdk"></Project>`)
	writeFile(t, filepath.Join(root, "Web", "Web.csproj"), `<Project>
  <ItemGroup>
    <ProjectReference Include="..\Core\Core.csproj"><Name>Core</Name></ProjectReference>
  </ItemGroup>
</Project>`)
	writeFile(t, filepath.Join(root, "Web", "packages.config"), `<packages><package id="Json" version="1.0" /></packages>`)
	return root
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errw bytes.Buffer
	c := New(&out, &errw, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errw)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestRoot_UsageOnWrongArgumentCount(t *testing.T) {
	root := fixture(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{root, root}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute() error = %v, want nil", err)
			}
			if !strings.Contains(out, "Usage: slngraph <directory>") {
				t.Errorf("output missing usage line:\n%s", out)
			}
			if !strings.HasSuffix(strings.TrimSpace(out), "Done") {
				t.Errorf("usage output should end with Done:\n%s", out)
			}
			if exists(filepath.Join(root, "output.dgml")) {
				t.Error("usage path should not write output")
			}
		})
	}
}

func TestRoot_WritesDGML(t *testing.T) {
	root := fixture(t)

	out, err := execute(t, root)
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "output.dgml"))
	if err != nil {
		t.Fatalf("output.dgml not written: %v", err)
	}
	for _, want := range []string{
		`<Node Id="sln:App" Label="App" Group="Expanded" Category="Solution"></Node>`,
		`<Link Source="Web" Target="Core"></Link>`,
		`<Link Source="Web" Target="Json[1.0]"></Link>`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output.dgml missing %q", want)
		}
	}

	for _, want := range []string{"1 solution", "projects", "output.dgml", "Done"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "Done") {
		t.Errorf("summary should end with Done:\n%s", out)
	}
}

func TestRoot_ReportsConflicts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "A.sln"), "")
	writeFile(t, filepath.Join(root, "a", "P", "P.csproj"), `<Project />`)
	writeFile(t, filepath.Join(root, "a", "P", "packages.config"), `<packages><package id="Util" version="1.0" /></packages>`)
	writeFile(t, filepath.Join(root, "b", "B.sln"), "")
	writeFile(t, filepath.Join(root, "b", "Q", "Q.csproj"), `<Project />`)
	writeFile(t, filepath.Join(root, "b", "Q", "packages.config"), `<packages><package id="Util" version="2.0" /></packages>`)

	out, err := execute(t, root)
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	for _, want := range []string{"Util has 2 versions", "1.0, 2.0"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRoot_FormatFlag(t *testing.T) {
	root := fixture(t)

	if _, err := execute(t, "-f", "dgml,dot,json", "--output-name", "deps", root); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	for _, name := range []string{"deps.dgml", "deps.dot", "deps.json"} {
		if !exists(filepath.Join(root, name)) {
			t.Errorf("%s not written", name)
		}
	}
	if exists(filepath.Join(root, "output.dgml")) {
		t.Error("default output name should not be used")
	}
}

func TestRoot_InvalidFormatWritesNothing(t *testing.T) {
	root := fixture(t)

	_, err := execute(t, "--format", "gif", root)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("execute() error = %v, want %v", err, errors.ErrCodeInvalidInput)
	}
	if exists(filepath.Join(root, "output.dgml")) {
		t.Error("failed run should not write output")
	}
}

func TestRoot_MissingDirectory(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "missing"))
	if !errors.Has(err, errors.ErrCodeFileNotFound) {
		t.Errorf("execute() error = %v, want %v", err, errors.ErrCodeFileNotFound)
	}
}

func TestExitCode(t *testing.T) {
	root := fixture(t)
	writeFile(t, filepath.Join(root, "Web", "packages.config"), `<packages><package version="1.0" /></packages>`)

	tests := []struct {
		name  string
		level log.Level
		want  []string
	}{
		{"info", LogInfo, []string{"Error: parse ", `package entry 1 missing "id" attribute`}},
		{"debug", LogDebug, []string{"INVALID_MANIFEST", `package entry 1 missing "id" attribute`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errw bytes.Buffer
			c := New(&out, &errw, tt.level)
			cmd := c.RootCommand()
			cmd.SetArgs([]string{root})

			if code := c.ExitCode(cmd.ExecuteContext(context.Background())); code != 1 {
				t.Errorf("ExitCode() = %d, want 1", code)
			}
			for _, want := range tt.want {
				if !strings.Contains(errw.String(), want) {
					t.Errorf("stderr lacks %q:\n%s", want, errw.String())
				}
			}
		})
	}
}

func TestExitCode_Status(t *testing.T) {
	var errw bytes.Buffer
	c := New(&bytes.Buffer{}, &errw, LogInfo)

	if code := c.ExitCode(nil); code != 0 {
		t.Errorf("ExitCode(nil) = %d, want 0", code)
	}
	if code := c.ExitCode(fmt.Errorf("discover: %w", context.Canceled)); code != 130 {
		t.Errorf("ExitCode(canceled) = %d, want 130", code)
	}
	if errw.Len() != 0 {
		t.Errorf("nothing should be printed for nil or cancellation, got %q", errw.String())
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	root := fixture(t)
	writeFile(t, filepath.Join(root, configFileName), `
output_name = "graph"
formats = ["dgml", "dot"]
layout = "ForceDirected"
`)

	if _, err := execute(t, root); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(root, "graph.dgml"))
	if err != nil {
		t.Fatalf("graph.dgml not written: %v", err)
	}
	if !strings.Contains(string(data), `Layout="ForceDirected"`) {
		t.Errorf("config layout not applied:\n%s", data)
	}
	if !exists(filepath.Join(root, "graph.dot")) {
		t.Error("graph.dot not written")
	}
}

func TestRoot_FlagsOverrideConfig(t *testing.T) {
	root := fixture(t)
	cfg := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, cfg, `output_name = "fromfile"`)

	if _, err := execute(t, "--config", cfg, "--output-name", "fromflag", root); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !exists(filepath.Join(root, "fromflag.dgml")) {
		t.Error("flag value should win over config file")
	}
	if exists(filepath.Join(root, "fromfile.dgml")) {
		t.Error("config value should be overridden")
	}
}

func TestRoot_ZoomLevel(t *testing.T) {
	tests := []struct {
		name   string
		config string
		args   []string
		want   string
	}{
		{"default", "", nil, `ZoomLevel="-1"`},
		{"zero flag", "", []string{"--zoom", "0"}, `ZoomLevel="0"`},
		{"zero in config", "zoom_level = 0.0", nil, `ZoomLevel="0"`},
		{"flag over config", "zoom_level = 0.0", []string{"--zoom", "2.5"}, `ZoomLevel="2.5"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := fixture(t)
			if tt.config != "" {
				writeFile(t, filepath.Join(root, configFileName), tt.config)
			}
			if _, err := execute(t, append(tt.args, root)...); err != nil {
				t.Fatalf("execute() error: %v", err)
			}
			data, err := os.ReadFile(filepath.Join(root, "output.dgml"))
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(string(data), tt.want) {
				t.Errorf("output.dgml lacks %s:\n%s", tt.want, data)
			}
		})
	}
}

func TestRoot_MetricsFile(t *testing.T) {
	root := fixture(t)
	metricsPath := filepath.Join(t.TempDir(), "slngraph.prom")

	if _, err := execute(t, "--metrics-file", metricsPath, root); err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	data, err := os.ReadFile(metricsPath)
	if err != nil {
		t.Fatalf("metrics file not written: %v", err)
	}
	for _, want := range []string{"slngraph_solutions 1", "slngraph_projects 2", "slngraph_version_conflicts 0"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics missing %q:\n%s", want, data)
		}
	}
}

func TestRoot_Version(t *testing.T) {
	out, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("execute() error: %v", err)
	}
	if !strings.Contains(out, "slngraph version") {
		t.Errorf("version output = %q", out)
	}
}
