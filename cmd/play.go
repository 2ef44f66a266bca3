package cmd

import (
	"github.com/arcanaland/cardface/internal/card"
	"github.com/arcanaland/cardface/internal/viewer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var defaultHand = []string{"AS", "KH", "QD", "JC", "10S", "7H", "2C"}

var playCmd = &cobra.Command{
	Use:   "play [cards...]",
	Short: "Open a table window and drag cards around",
	Long: `Play opens a window with the given cards laid out on a table.
Press a card with the primary button or a touch to bring it to the front,
and drag it with any button to move it.

Examples:
  cardface play
  cardface play AS KS QS JS 10S
  cardface play --all --window-width 1600 --window-height 1000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		var cards []card.Card
		if all {
			cards = card.All()
		} else {
			if len(args) == 0 {
				args = defaultHand
			}
			for _, a := range args {
				c, err := card.Parse(a)
				if err != nil {
					return err
				}
				cards = append(cards, c)
			}
		}

		th, err := loadTheme(cmd)
		if err != nil {
			return err
		}

		// Size from the flags and config, the same way render does
		props, err := cardProps(cmd, th, card.Card{Suit: card.Spades, Rank: card.Ace})
		if err != nil {
			return err
		}
		ww, _ := cmd.Flags().GetInt("window-width")
		wh, _ := cmd.Flags().GetInt("window-height")

		g := viewer.New(cards, viewer.Options{
			ScreenWidth:  ww,
			ScreenHeight: wh,
			CardWidth:    props.Width,
			CardHeight:   props.Height,
			DragDistance: cfg.DragDistance,
			Theme:        th,
			Logger:       logger,
		})

		logger.Info("opening table", zap.Int("cards", len(cards)), zap.String("theme", th.Info.ID))
		return viewer.Run(g)
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().Bool("all", false, "Deal all 52 cards")
	playCmd.Flags().Int("window-width", 1280, "Window width")
	playCmd.Flags().Int("window-height", 800, "Window height")
	addFaceFlags(playCmd)
}
