package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arcanaland/cardface/internal/card"
)

const validTheme = `
[theme]
id = "felt"
name = "Felt"
version = "1.0"
schema_version = "1.0"

[card]
border_color = "darkgreen"
`

func themeDir(t *testing.T, body string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "felt")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "theme.toml"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func contains(list []string, sub string) bool {
	for _, s := range list {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func TestValidTheme(t *testing.T) {
	dir := themeDir(t, validTheme)
	if err := os.MkdirAll(filepath.Join(dir, "previews"), 0755); err != nil {
		t.Fatal(err)
	}
	for _, c := range card.All() {
		if err := os.WriteFile(filepath.Join(dir, "previews", c.ID()+".svg"), []byte("<svg/>"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if len(results.Errors) != 0 || len(results.Warnings) != 0 {
		t.Errorf("results = %+v, want clean", results)
	}
}

func TestMissingThemeToml(t *testing.T) {
	if _, err := NewValidator(t.TempDir()).Validate(); err == nil {
		t.Error("Validate succeeded without theme.toml")
	}
}

func TestMalformedThemeToml(t *testing.T) {
	if _, err := NewValidator(themeDir(t, "[theme\n")).Validate(); err == nil {
		t.Error("Validate succeeded on malformed TOML")
	}
}

func TestThemeErrors(t *testing.T) {
	dir := themeDir(t, `
[theme]
name = "Broken"
schema_version = "2.0"
shiny = true

[card]
border_width = 60
border_color = "plaid"

[label]
font_size = 0
font_style = "wavy"
`)

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}

	for _, want := range []string{
		"theme.id is required",
		"theme.version is required",
		"unsupported schema_version: 2.0",
		"leaves no face",
		"card.border_color",
		"label.font_size must be positive",
		"unsupported label.font_style: wavy",
	} {
		if !contains(results.Errors, want) {
			t.Errorf("missing error %q in %v", want, results.Errors)
		}
	}

	for _, want := range []string{"unknown key in theme.toml: theme.shiny", "previews directory not found"} {
		if !contains(results.Warnings, want) {
			t.Errorf("missing warning %q in %v", want, results.Warnings)
		}
	}
}

func TestMissingPreviews(t *testing.T) {
	dir := themeDir(t, validTheme)
	if err := os.MkdirAll(filepath.Join(dir, "previews"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "previews", "hearts.queen.png"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	results, err := NewValidator(dir).Validate()
	if err != nil {
		t.Fatal(err)
	}
	if !contains(results.Warnings, "missing previews: AS") {
		t.Errorf("warnings = %v", results.Warnings)
	}
	if contains(results.Warnings, "QH") {
		t.Error("present preview reported missing")
	}
}
