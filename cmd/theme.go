package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/scene"
	"github.com/arcanaland/cardface/internal/theme"
)

// themeCmd represents the theme command group
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage card themes in your theme library",
	Long:  `Commands for managing card themes in your theme library.`,
}

var themeListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available themes in your theme library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetThemeLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Theme library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'cardface theme init' to create it.")
			return nil
		}

		defaultTheme := cfg.DefaultTheme

		themes, err := theme.List(libraryPath)
		if err != nil {
			return err
		}

		builtin := true
		for _, t := range themes {
			if t.Dir == theme.DefaultName {
				builtin = false
			}
		}
		if builtin {
			printThemeEntry(theme.DefaultName, theme.Default().Info.Name+", built-in", defaultTheme)
		}

		for _, t := range themes {
			printThemeEntry(t.Dir, t.Name, defaultTheme)
		}

		if len(themes) == 0 {
			fmt.Println("\nYou can add themes by copying them to:", libraryPath)
		}
		return nil
	},
}

func printThemeEntry(dir, name, defaultTheme string) {
	if dir == defaultTheme {
		fmt.Printf("* %s (%s) %s\n", colorize.HiWhiteString(dir), name, colorize.GreenString("[DEFAULT]"))
	} else {
		fmt.Printf("  %s (%s)\n", dir, name)
	}
}

var themeSetDefaultCmd = &cobra.Command{
	Use:   "set-default [theme_name]",
	Short: "Set the default theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// Make sure it resolves before storing it
		if _, err := theme.Resolve(config.GetThemeLibraryPath(), name); err != nil {
			return fmt.Errorf("not a valid theme: %w", err)
		}

		if err := config.SetDefaultTheme(name); err != nil {
			return fmt.Errorf("error setting default theme: %w", err)
		}

		fmt.Printf("Default theme set to: %s\n", name)
		return nil
	},
}

var themeInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the theme library with an editable copy of the classic theme",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetThemeLibraryPath()
		classicPath := filepath.Join(libraryPath, theme.DefaultName)

		if _, err := os.Stat(filepath.Join(classicPath, "theme.toml")); err == nil {
			fmt.Println("Theme library already initialized at:", libraryPath)
		} else {
			if err := theme.Write(classicPath, theme.Default()); err != nil {
				return err
			}
			fmt.Println("Theme library initialized at:", libraryPath)
			fmt.Println("You can now add themes by copying them to this directory.")
		}

		if previews, _ := cmd.Flags().GetBool("previews"); previews {
			th, err := theme.Load(classicPath)
			if err != nil {
				return err
			}
			if err := writePreviews(filepath.Join(classicPath, "previews"), th); err != nil {
				return err
			}
			fmt.Println("Previews written to:", filepath.Join(classicPath, "previews"))
		}

		fmt.Println("Config file at:", config.GetConfigFilePath())
		return nil
	},
}

// writePreviews renders every card of a theme as SVG into dir
func writePreviews(dir string, th *theme.Theme) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating previews directory: %w", err)
	}
	for _, c := range card.All() {
		props := scene.Props{Suit: c.Suit, Rank: c.Rank, Width: th.Card.Width, Height: th.Card.Height}
		if err := props.CheckSize(); err != nil {
			return err
		}
		if err := renderToFile(filepath.Join(dir, c.ID()+".svg"), props, th, "svg", 1); err != nil {
			return err
		}
	}
	logger.Debug("previews written", zap.String("dir", dir), zap.Int("count", len(card.All())))
	return nil
}

func init() {
	RootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeSetDefaultCmd)
	themeCmd.AddCommand(themeInitCmd)

	themeInitCmd.Flags().Bool("previews", false, "Also render SVG previews of all 52 cards")
}
