package cmd

import (
	"crypto/md5"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/arcanaland/cardface/internal/ansi"
	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/face"
	"github.com/arcanaland/cardface/internal/raster"
	"github.com/arcanaland/cardface/internal/scene"
	"github.com/arcanaland/cardface/internal/theme"
)

// raster scale used before downsampling to terminal cells
const showScale = 2

var showCmd = &cobra.Command{
	Use:   "show [card]",
	Short: "Display a card face in the terminal with ANSI art",
	Long: `Show renders a card face as truecolor ANSI art next to a summary of the
card: its suit, rank, colour and pip count.

Examples:
  cardface show QH
  cardface show --cols 32 hearts.seven
  cardface show --theme felt --set card.face_color=ivory AS`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		th, err := loadTheme(cmd)
		if err != nil {
			return err
		}

		cols, _ := cmd.Flags().GetInt("cols")
		props, err := cardProps(cmd, th, c)
		if err != nil {
			return err
		}

		art, err := cachedAnsi(props, th, cols)
		if err != nil {
			return fmt.Errorf("error generating ANSI art: %w", err)
		}

		displayCard(c, th, art)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().Int("cols", 24, "Width of the ANSI art in terminal columns")
	addFaceFlags(showCmd)
}

// cachedAnsi returns the ANSI art for a card, generating it into the cache
// directory the first time a card, theme and size combination is shown.
func cachedAnsi(props scene.Props, th *theme.Theme, cols int) (string, error) {
	if cols < 4 {
		cols = 4
	}
	// Terminal cells are about twice as tall as wide
	rows := int(float64(cols)*props.Height/props.Width/2 + 0.5)

	var key strings.Builder
	fmt.Fprintf(&key, "%s|%vx%v|%dx%d\n", card.Card{Suit: props.Suit, Rank: props.Rank}.Code(),
		props.Width, props.Height, cols, rows)
	if err := toml.NewEncoder(&key).Encode(th); err != nil {
		return "", err
	}

	cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")
	cachePath := filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key.String()))))

	if data, err := os.ReadFile(cachePath); err == nil {
		logger.Debug("ansi cache hit", zap.String("path", cachePath))
		return string(data), nil
	}

	img, err := raster.Render(scene.Render(props, th), showScale)
	if err != nil {
		return "", err
	}
	art := ansi.FromImage(img, cols, rows, color.Black)

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		logger.Warn("cannot create ANSI cache directory", zap.Error(err))
		return art, nil
	}
	if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
		logger.Warn("cannot write ANSI cache", zap.String("path", cachePath), zap.Error(err))
	}
	return art, nil
}

func suitSymbol(s card.Suit) string {
	switch s {
	case card.Spades:
		return "♠"
	case card.Clubs:
		return "♣"
	case card.Diamonds:
		return "♦"
	case card.Hearts:
		return "♥"
	default:
		return "•"
	}
}

// displayCard prints the ANSI art with the card information to its right
func displayCard(c card.Card, th *theme.Theme, art string) {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	artWidth := 0
	for _, line := range artLines {
		if w := ansi.Width(line); w > artWidth {
			artWidth = w
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}

	suitColor := face.SuitColor(c.Suit)
	symbol := colorize.HiWhiteString(suitSymbol(c.Suit))
	if suitColor == "red" {
		symbol = colorize.HiRedString(suitSymbol(c.Suit))
	}

	info := []string{
		colorize.CyanString("Card:  ") + colorize.HiWhiteString(c.Name()),
		colorize.CyanString("Code:  ") + colorize.HiWhiteString(c.Code()),
		colorize.CyanString("ID:    ") + colorize.HiWhiteString(c.ID()),
		colorize.CyanString("Suit:  ") + colorize.HiWhiteString("%s · ", c.Suit) + symbol,
		colorize.CyanString("Color: ") + colorize.HiWhiteString(suitColor),
		colorize.CyanString("Pips:  ") + colorize.HiWhiteString("%d", len(face.Layout(c.Rank))),
		colorize.CyanString("Theme: ") + colorize.HiWhiteString("%s (%s)", th.Info.Name, th.Info.ID),
	}

	spacing := 4
	infoStart := artWidth + spacing
	// Drop the info column when the terminal is too narrow for it
	if width-infoStart < 20 {
		info = nil
	}

	fmt.Println()
	for i := 0; i < max(len(artLines), len(info)); i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			fmt.Print(strings.Repeat(" ", infoStart-ansi.Width(artLines[i])))
		} else {
			fmt.Print(strings.Repeat(" ", infoStart))
		}
		if i < len(info) {
			fmt.Print(info[i])
		}
		fmt.Println()
	}
	fmt.Println()
}
