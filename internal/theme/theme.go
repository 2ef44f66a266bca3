package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
)

// DefaultName is the built-in theme that needs no theme.toml
const DefaultName = "classic"

// SchemaVersion is the only theme.toml schema this build understands
const SchemaVersion = "1.0"

// Theme describes how a card face is drawn. The suit colours, glyphs and
// pip layouts are fixed; a theme only styles the frame and the labels.
type Theme struct {
	Info  InfoSection  `toml:"theme"`
	Card  CardSection  `toml:"card"`
	Label LabelSection `toml:"label"`

	// Path is the directory the theme was loaded from, empty for built-ins
	Path string `toml:"-"`
}

type InfoSection struct {
	ID            string `toml:"id"`
	Name          string `toml:"name"`
	Version       string `toml:"version"`
	SchemaVersion string `toml:"schema_version"`
	Author        string `toml:"author"`
	Description   string `toml:"description"`
}

type CardSection struct {
	Width             float64 `toml:"width"`
	Height            float64 `toml:"height"`
	CornerRadius      float64 `toml:"corner_radius"`
	InnerCornerRadius float64 `toml:"inner_corner_radius"`
	BorderWidth       float64 `toml:"border_width"`
	BorderColor       string  `toml:"border_color"`
	FaceColor         string  `toml:"face_color"`
}

type LabelSection struct {
	FontFamily string  `toml:"font_family"`
	FontSize   float64 `toml:"font_size"`
	FontStyle  string  `toml:"font_style"`
	Offset     float64 `toml:"offset"`
}

// Default returns the built-in classic theme
func Default() *Theme {
	return &Theme{
		Info: InfoSection{
			ID:            DefaultName,
			Name:          "Classic",
			Version:       "1.0",
			SchemaVersion: SchemaVersion,
			Description:   "Dark grey border, white face, bold corner indices",
		},
		Card: CardSection{
			Width:             100,
			Height:            140,
			CornerRadius:      5,
			InnerCornerRadius: 4,
			BorderWidth:       1,
			BorderColor:       "darkgray",
			FaceColor:         "white",
		},
		Label: LabelSection{
			FontFamily: "Roboto",
			FontSize:   16,
			FontStyle:  "bold",
			Offset:     4,
		},
	}
}

// Load reads theme.toml from a theme directory. Keys missing from the
// file keep their classic values.
func Load(themePath string) (*Theme, error) {
	themeTomlPath := filepath.Join(themePath, "theme.toml")
	if _, err := os.Stat(themeTomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("theme.toml not found in %s", themePath)
	}

	th := Default()
	if _, err := toml.DecodeFile(themeTomlPath, th); err != nil {
		return nil, fmt.Errorf("error parsing theme.toml: %w", err)
	}
	th.Path = themePath

	return th, nil
}

// Resolve finds a theme by name in the library, then as a path. An empty
// name means the classic theme, which always resolves.
func Resolve(libraryPath, name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	if name == DefaultName {
		if _, err := os.Stat(filepath.Join(libraryPath, DefaultName, "theme.toml")); err != nil {
			return Default(), nil
		}
	}

	candidate := filepath.Join(libraryPath, name)
	if _, err := os.Stat(candidate); err == nil {
		return Load(candidate)
	}

	if _, err := os.Stat(name); err == nil {
		return Load(name)
	}

	return nil, fmt.Errorf("theme not found: %s", name)
}

// Entry is one theme found in a library directory
type Entry struct {
	Dir  string
	Name string
	Path string
}

// List returns the valid themes in a library directory, sorted by
// directory name. Entries that fail to load are skipped.
func List(libraryPath string) ([]Entry, error) {
	resolved, err := filepath.EvalSymlinks(libraryPath)
	if err != nil {
		return nil, fmt.Errorf("error resolving theme library: %w", err)
	}

	entries, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("error reading theme library: %w", err)
	}

	var themes []Entry
	for _, entry := range entries {
		entryPath := filepath.Join(resolved, entry.Name())
		info, err := os.Stat(entryPath)
		if err != nil || !info.IsDir() {
			continue
		}

		th, err := Load(entryPath)
		if err != nil {
			continue
		}
		themes = append(themes, Entry{Dir: entry.Name(), Name: th.Info.Name, Path: entryPath})
	}

	sort.Slice(themes, func(i, j int) bool { return themes[i].Dir < themes[j].Dir })
	return themes, nil
}

// Write stores the theme as theme.toml inside dir, creating it if needed
func Write(dir string, th *Theme) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating theme directory: %w", err)
	}

	file, err := os.Create(filepath.Join(dir, "theme.toml"))
	if err != nil {
		return fmt.Errorf("error creating theme.toml: %w", err)
	}
	defer file.Close()

	if err := toml.NewEncoder(file).Encode(th); err != nil {
		return fmt.Errorf("error encoding theme: %w", err)
	}
	return nil
}

// Override applies "section.key=value" assignments, such as
// card.width=200 or label.font_family=Inter, on a copy of the theme.
func (t *Theme) Override(assignments []string) (*Theme, error) {
	tree := map[string]interface{}{}
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("invalid override %q (expected section.key=value)", a)
		}
		section, field, ok := strings.Cut(strings.TrimSpace(key), ".")
		if !ok || section == "" || field == "" {
			return nil, fmt.Errorf("invalid override key %q (expected section.key)", key)
		}

		sub, _ := tree[section].(map[string]interface{})
		if sub == nil {
			sub = map[string]interface{}{}
			tree[section] = sub
		}
		sub[field] = strings.TrimSpace(value)
	}

	out := *t
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "toml",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(tree); err != nil {
		return nil, fmt.Errorf("error applying overrides: %w", err)
	}
	return &out, nil
}
