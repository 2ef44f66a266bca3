package cmd

import (
	"fmt"

	"github.com/arcanaland/cardface/internal/config"
	"github.com/arcanaland/cardface/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger = logging.Nop()
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cardface",
	Short: "Render and play with standard playing card faces",
	Long: `Cardface draws the faces of the 52 standard playing cards: corner indices,
pip layouts and suit glyphs, styled by themes kept in your theme library.
Faces can be exported as SVG or PNG, previewed in the terminal, served over
HTTP or dragged around an interactive table.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = c

		level := cfg.LogLevel
		if cmd.Flags().Changed("log-level") {
			level, _ = cmd.Flags().GetString("log-level")
		}
		l, err := logging.New(level)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("config loaded", zap.String("path", config.GetConfigFilePath()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	RootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		return fmt.Errorf("cardface: %w", err)
	}
	return nil
}
