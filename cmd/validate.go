package cmd

import (
	"fmt"
	"os"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardface/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a theme directory",
	Long: `Validate checks that a theme directory holds a well-formed theme.toml:
required metadata, a card frame that leaves room for the face, colours that
resolve, corner indices that fit, and optional previews for all 52 cards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		themePath := args[0]

		if _, err := os.Stat(themePath); os.IsNotExist(err) {
			return fmt.Errorf("theme directory not found: %s", themePath)
		}

		results, err := validator.NewValidator(themePath).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("%s Theme '%s' is valid.\n", colorize.GreenString("✔"), themePath)
		} else {
			fmt.Printf("%s Theme '%s' has %d validation errors:\n", colorize.RedString("✘"), themePath, len(results.Errors))
			for i, e := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println()
			fmt.Println(colorize.YellowString("Warnings:"))
			for i, w := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, w)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
