package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/scene"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var sceneCmd = &cobra.Command{
	Use:   "scene [card]",
	Short: "Print the visual tree of a card face",
	Long: `Scene prints the tree of drawing primitives a card face is composed of:
the border and face rectangles, one path per pip and the two corner labels.
Positions are relative to the enclosing group.`,
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

		props, err := cardProps(cmd, th, c)
		if err != nil {
			return err
		}
		root := scene.Render(props, th)

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "yaml":
			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(root)
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(root)
		default:
			return fmt.Errorf("unsupported format: %s (expected yaml or json)", format)
		}
	},
}

func init() {
	RootCmd.AddCommand(sceneCmd)

	sceneCmd.Flags().StringP("format", "f", "yaml", "Output format: yaml or json")
	addFaceFlags(sceneCmd)
}
