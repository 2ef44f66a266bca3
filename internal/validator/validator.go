package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/paint"
	"github.com/arcanaland/cardface/internal/theme"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ThemePath string
	Results   ValidationResults

	theme *theme.Theme
}

func NewValidator(themePath string) *Validator {
	return &Validator{
		ThemePath: themePath,
		Results:   ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.validateThemeToml(); err != nil {
		return v.Results, err
	}

	v.validateInfo()
	v.validateCard()
	v.validateColors()
	v.validateLabel()
	v.validatePreviews()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...interface{}) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...interface{}) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateThemeToml() error {
	themeTomlPath := filepath.Join(v.ThemePath, "theme.toml")
	if _, err := os.Stat(themeTomlPath); os.IsNotExist(err) {
		return fmt.Errorf("theme.toml not found in %s", v.ThemePath)
	}

	// Decode once more on its own to catch keys the theme does not know
	var raw theme.Theme
	md, err := toml.DecodeFile(themeTomlPath, &raw)
	if err != nil {
		return fmt.Errorf("error parsing theme.toml: %w", err)
	}
	for _, key := range md.Undecoded() {
		v.warnf("unknown key in theme.toml: %s", key.String())
	}

	th, err := theme.Load(v.ThemePath)
	if err != nil {
		return err
	}
	v.theme = th
	return nil
}

func (v *Validator) validateInfo() {
	info := v.theme.Info

	if info.ID == "" {
		v.errorf("theme.id is required in theme.toml")
	}

	if info.Name == "" {
		v.errorf("theme.name is required in theme.toml")
	}

	if info.Version == "" {
		v.errorf("theme.version is required in theme.toml")
	}

	if info.SchemaVersion == "" {
		v.errorf("theme.schema_version is required in theme.toml")
	} else if info.SchemaVersion != theme.SchemaVersion {
		v.errorf("unsupported schema_version: %s (supported: %s)", info.SchemaVersion, theme.SchemaVersion)
	}

	if info.ID != "" && info.ID != filepath.Base(v.ThemePath) {
		v.warnf("theme.id %q does not match directory name %q", info.ID, filepath.Base(v.ThemePath))
	}
}

// validateCard checks the frame geometry
func (v *Validator) validateCard() {
	c := v.theme.Card

	if c.Width <= 0 || c.Height <= 0 {
		v.errorf("card.width and card.height must be positive (got %vx%v)", c.Width, c.Height)
		return
	}

	if c.BorderWidth < 0 {
		v.errorf("card.border_width must not be negative")
	} else if 2*c.BorderWidth >= c.Width || 2*c.BorderWidth >= c.Height {
		v.errorf("card.border_width %v leaves no face inside a %vx%v card", c.BorderWidth, c.Width, c.Height)
	}

	if c.CornerRadius < 0 || c.InnerCornerRadius < 0 {
		v.errorf("corner radii must not be negative")
	}
	if c.InnerCornerRadius > c.CornerRadius {
		v.warnf("card.inner_corner_radius %v is larger than card.corner_radius %v", c.InnerCornerRadius, c.CornerRadius)
	}

	if ratio := c.Height / c.Width; ratio < 1.2 || ratio > 1.6 {
		v.warnf("card aspect ratio %.2f is outside the usual 1.2-1.6 range", ratio)
	}
}

// validateColors checks every colour name resolves
func (v *Validator) validateColors() {
	colors := map[string]string{
		"card.border_color": v.theme.Card.BorderColor,
		"card.face_color":   v.theme.Card.FaceColor,
	}

	for key, value := range colors {
		if _, err := paint.Parse(value); err != nil {
			v.errorf("%s: %v", key, err)
		}
	}

	if strings.EqualFold(v.theme.Card.FaceColor, "red") || strings.EqualFold(v.theme.Card.FaceColor, "black") {
		v.warnf("card.face_color %s hides the %s pips", v.theme.Card.FaceColor, strings.ToLower(v.theme.Card.FaceColor))
	}
}

func (v *Validator) validateLabel() {
	l := v.theme.Label

	if l.FontSize <= 0 {
		v.errorf("label.font_size must be positive")
	}
	if l.FontFamily == "" {
		v.warnf("label.font_family is empty; renderers will fall back to their default font")
	}

	switch l.FontStyle {
	case "", "normal", "bold", "italic", "italic bold", "bold italic":
	default:
		v.errorf("unsupported label.font_style: %s", l.FontStyle)
	}

	if l.Offset < v.theme.Card.BorderWidth {
		v.warnf("label.offset %v places the corner index on the border", l.Offset)
	}
	if l.Offset+l.FontSize > v.theme.Card.Height/2 {
		v.errorf("corner indices overlap: label.offset + label.font_size exceeds half the card height")
	}
}

// validatePreviews checks optional pre-rendered faces in previews/
func (v *Validator) validatePreviews() {
	previewDir := filepath.Join(v.ThemePath, "previews")
	if _, err := os.Stat(previewDir); os.IsNotExist(err) {
		v.warnf("previews directory not found")
		return
	}

	missing := []string{}
	for _, c := range card.All() {
		found := false
		for _, ext := range []string{".svg", ".png"} {
			if _, err := os.Stat(filepath.Join(previewDir, c.ID()+ext)); err == nil {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, c.Code())
		}
	}

	if len(missing) > 0 {
		v.warnf("missing previews: %s", strings.Join(missing, ", "))
	}
}
