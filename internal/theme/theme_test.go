package theme

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTheme(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "theme.toml"), []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefault(t *testing.T) {
	th := Default()
	if th.Card.Width != 100 || th.Card.Height != 140 {
		t.Errorf("default size = %vx%v, want 100x140", th.Card.Width, th.Card.Height)
	}
	if th.Card.BorderColor != "darkgray" || th.Card.FaceColor != "white" {
		t.Errorf("default colours = %s/%s", th.Card.BorderColor, th.Card.FaceColor)
	}
	if th.Label.Offset != 4 || th.Label.FontSize != 16 {
		t.Errorf("default label = %+v", th.Label)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "midnight")
	writeTheme(t, dir, `
[theme]
id = "midnight"
name = "Midnight"
version = "1.0"
schema_version = "1.0"

[card]
border_color = "navy"
width = 200
`)

	th, err := Load(dir)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if th.Info.Name != "Midnight" || th.Card.BorderColor != "navy" || th.Card.Width != 200 {
		t.Errorf("loaded theme = %+v", th)
	}
	if th.Card.FaceColor != "white" || th.Card.Height != 140 {
		t.Errorf("unset keys lost their defaults: %+v", th.Card)
	}
	if th.Path != dir {
		t.Errorf("Path = %s, want %s", th.Path, dir)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("Load of empty directory succeeded")
	}
}

func TestResolve(t *testing.T) {
	lib := t.TempDir()
	writeTheme(t, filepath.Join(lib, "felt"), "[theme]\nname = \"Felt\"\n")

	th, err := Resolve(lib, "")
	if err != nil || th.Info.ID != DefaultName {
		t.Errorf("Resolve(\"\") = %+v, %v; want built-in", th, err)
	}

	th, err = Resolve(lib, "felt")
	if err != nil || th.Info.Name != "Felt" {
		t.Errorf("Resolve(felt) = %+v, %v", th, err)
	}

	if _, err := Resolve(lib, "nope"); err == nil {
		t.Error("Resolve(nope) succeeded")
	}
}

func TestResolveEmptyNameUsesLibraryClassic(t *testing.T) {
	lib := t.TempDir()
	classic := Default()
	classic.Card.FaceColor = "ivory"
	if err := Write(filepath.Join(lib, DefaultName), classic); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"", DefaultName} {
		th, err := Resolve(lib, name)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", name, err)
		}
		if th.Card.FaceColor != "ivory" || th.Path != filepath.Join(lib, DefaultName) {
			t.Errorf("Resolve(%q) = %+v, want the library's classic theme", name, th)
		}
	}
}

func TestListAndWrite(t *testing.T) {
	lib := t.TempDir()
	b := Default()
	b.Info.Name = "Bravo"
	if err := Write(filepath.Join(lib, "bravo"), b); err != nil {
		t.Fatal(err)
	}
	a := Default()
	a.Info.Name = "Alpha"
	if err := Write(filepath.Join(lib, "alpha"), a); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(lib, "junk"), 0755); err != nil {
		t.Fatal(err)
	}

	entries, err := List(lib)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "Alpha" || entries[1].Dir != "bravo" {
		t.Errorf("List = %+v", entries)
	}
}

func TestOverride(t *testing.T) {
	base := Default()
	th, err := base.Override([]string{"card.width=200", "label.font_family = Inter", "card.border_color=navy"})
	if err != nil {
		t.Fatalf("Override error: %v", err)
	}
	if th.Card.Width != 200 || th.Label.FontFamily != "Inter" || th.Card.BorderColor != "navy" {
		t.Errorf("override not applied: %+v", th)
	}
	if th.Card.Height != 140 || th.Label.FontSize != 16 {
		t.Errorf("untouched keys changed: %+v", th)
	}
	if base.Card.Width != 100 {
		t.Error("Override mutated the receiver")
	}
}

func TestOverrideErrors(t *testing.T) {
	for _, a := range []string{"card.width", "width=3", "card.depth=3", "card.width=wide"} {
		if _, err := Default().Override([]string{a}); err == nil {
			t.Errorf("Override(%q) succeeded, want error", a)
		}
	}
}
