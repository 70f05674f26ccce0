package main

import (
	"fmt"
	"strings"

	chatbot "github.com/ic1618/chat-bot"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of chatbot",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chatbot version %s\n", strings.TrimSpace(chatbot.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
