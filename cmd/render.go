package cmd

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/raster"
	"github.com/arcanaland/cardface/internal/scene"
	"github.com/arcanaland/cardface/internal/theme"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var renderCmd = &cobra.Command{
	Use:   "render [card]",
	Short: "Render a card face to SVG or PNG",
	Long: `Render draws a card face and writes it as SVG or PNG.
Cards are named by short code (QH, 10S, TD) or by id (hearts.queen).
Without --output the image is written to standard output.

Examples:
  cardface render QH -o queen.svg
  cardface render 7C --format png --scale 3 -o seven.png
  cardface render AS --theme ./my-theme --set card.face_color=ivory
  cardface render --all --format png -o ./faces`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		scale, _ := cmd.Flags().GetFloat64("scale")

		if all == (len(args) == 1) {
			return fmt.Errorf("give either one card or --all")
		}
		if format == "" && !all {
			format = strings.TrimPrefix(filepath.Ext(output), ".")
		}
		if format == "" {
			format = "svg"
		}
		if format != "svg" && format != "png" {
			return fmt.Errorf("unsupported format: %s (expected svg or png)", format)
		}

		th, err := loadTheme(cmd)
		if err != nil {
			return err
		}

		if all {
			if output == "" {
				return fmt.Errorf("--all needs an output directory (-o)")
			}
			if err := os.MkdirAll(output, 0755); err != nil {
				return fmt.Errorf("error creating output directory: %w", err)
			}
			for _, c := range card.All() {
				props, err := cardProps(cmd, th, c)
				if err != nil {
					return err
				}
				path := filepath.Join(output, c.ID()+"."+format)
				if err := renderToFile(path, props, th, format, scale); err != nil {
					return err
				}
			}
			logger.Info("rendered deck", zap.String("dir", output), zap.String("format", format))
			return nil
		}

		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}
		props, err := cardProps(cmd, th, c)
		if err != nil {
			return err
		}

		if output == "" {
			return encodeFace(os.Stdout, scene.Render(props, th), format, scale)
		}
		if err := renderToFile(output, props, th, format, scale); err != nil {
			return err
		}
		logger.Info("rendered card", zap.String("card", c.Code()), zap.String("file", output))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("output", "o", "", "Output file, or directory with --all")
	renderCmd.Flags().StringP("format", "f", "", "Output format: svg or png (default from the output extension, else svg)")
	renderCmd.Flags().Float64("scale", 1, "Pixel scale for PNG output")
	renderCmd.Flags().Bool("all", false, "Render all 52 cards into the output directory")
	addFaceFlags(renderCmd)
}

// addFaceFlags registers the flags shared by every command that draws a card
func addFaceFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("theme", "t", "", "Theme from your theme library or a path to a theme")
	cmd.Flags().StringArray("set", nil, "Override a theme value, e.g. --set card.border_color=navy (repeatable)")
	cmd.Flags().Float64("width", 0, "Card width (default from config, then theme)")
	cmd.Flags().Float64("height", 0, "Card height (default from config, then theme)")
}

// loadTheme resolves --theme (or the configured default) and applies --set
func loadTheme(cmd *cobra.Command) (*theme.Theme, error) {
	name, _ := cmd.Flags().GetString("theme")
	if name == "" && cfg != nil {
		name = cfg.DefaultTheme
	}

	th, err := theme.Resolve(config.GetThemeLibraryPath(), name)
	if err != nil {
		return nil, err
	}

	overrides, _ := cmd.Flags().GetStringArray("set")
	if len(overrides) > 0 {
		if th, err = th.Override(overrides); err != nil {
			return nil, err
		}
	}

	logger.Debug("theme resolved",
		zap.String("id", th.Info.ID),
		zap.String("path", th.Path),
		zap.Strings("overrides", overrides))
	return th, nil
}

// cardProps sizes a card from the flags, then the config, then the theme
func cardProps(cmd *cobra.Command, th *theme.Theme, c card.Card) (scene.Props, error) {
	w, h := th.Card.Width, th.Card.Height
	if cfg != nil && cfg.CardWidth > 0 && cfg.CardHeight > 0 {
		w, h = cfg.CardWidth, cfg.CardHeight
	}
	if fw, _ := cmd.Flags().GetFloat64("width"); fw > 0 {
		w = fw
	}
	if fh, _ := cmd.Flags().GetFloat64("height"); fh > 0 {
		h = fh
	}
	props := scene.Props{Suit: c.Suit, Rank: c.Rank, Width: w, Height: h}
	return props, props.CheckSize()
}

func renderToFile(path string, props scene.Props, th *theme.Theme, format string, scale float64) error {
	var buf bytes.Buffer
	if err := encodeFace(&buf, scene.Render(props, th), format, scale); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

func encodeFace(w io.Writer, root scene.Node, format string, scale float64) error {
	if format == "svg" {
		return scene.EncodeSVG(w, root)
	}

	img, err := raster.Render(root, scale)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("error encoding png: %w", err)
	}
	return nil
}
