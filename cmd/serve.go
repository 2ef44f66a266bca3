package cmd

import (
	"github.com/arcanaland/cardface/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rendered card faces over HTTP",
	Long: `Serve starts an HTTP server that renders card faces on request.

Endpoints:
  GET /healthz
  GET /cards                      list of all 52 cards
  GET /cards/:card[.svg|.png|.json|.yaml]?width=&height=&scale=

Examples:
  cardface serve
  cardface serve --addr 127.0.0.1:9000 --theme felt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := loadTheme(cmd)
		if err != nil {
			return err
		}

		debug, _ := cmd.Flags().GetBool("debug")
		if !debug {
			gin.SetMode(gin.ReleaseMode)
		}

		addr, _ := cmd.Flags().GetString("addr")
		logger.Info("serving card faces", zap.String("addr", addr), zap.String("theme", th.Info.ID))
		return server.New(th, logger).Router().Run(addr)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8000", "Address to listen on")
	serveCmd.Flags().Bool("debug", false, "Run gin in debug mode")
	serveCmd.Flags().StringP("theme", "t", "", "Theme from your theme library or a path to a theme")
	serveCmd.Flags().StringArray("set", nil, "Override a theme value, e.g. --set card.border_color=navy (repeatable)")
}
