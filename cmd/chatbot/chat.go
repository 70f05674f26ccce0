package main

import (
	"os"

	"github.com/ic1618/chat-bot/internal/presentation/tui"
	"github.com/ic1618/chat-bot/pkg/runner"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot in the terminal",
	Long: `Starts an interactive conversation on stdin/stdout.
Type an option to select it, "/reset" to start over and "exit" or "quit" to leave.
When the current menu offers an option named like one of these commands, the
option wins.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd.Context(), cmd)
		if err != nil {
			return err
		}
		defer a.close()

		jsonMode, _ := cmd.Flags().GetBool("json")
		rich, _ := cmd.Flags().GetBool("rich")
		noBanner, _ := cmd.Flags().GetBool("no-banner")

		var handler runner.IOHandler
		switch {
		case jsonMode:
			handler = runner.NewJSONHandler(os.Stdin, os.Stdout)
		case rich:
			handler = runner.NewTextHandler(os.Stdin, os.Stdout, runner.WithTextHandlerRenderer(tui.NewRenderer()))
		default:
			handler = runner.NewTextHandler(os.Stdin, os.Stdout)
		}

		if !jsonMode && !noBanner {
			tui.PrintBanner(os.Stdout)
		}

		r := runner.NewRunner(
			runner.WithInputHandler(handler),
			runner.WithLogger(a.logger),
			runner.WithMaxInputSize(a.cfg.MaxInputSize),
		)
		return r.Run(cmd.Context(), a.bot)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().Bool("json", false, "Run in JSON mode (one JSON array per reply)")
	chatCmd.Flags().Bool("rich", false, "Render replies as markdown")
	chatCmd.Flags().Bool("no-banner", false, "Do not print the banner")
}
