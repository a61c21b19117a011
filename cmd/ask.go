package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <message...>",
	Short: "Print a single reply",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, _, assistant := bootstrap()

		reply := assistant.Resolve(strings.Join(args, " "))
		fmt.Fprintln(cmd.OutOrStdout(), reply.Text)

		if explain, _ := cmd.Flags().GetBool("explain"); explain {
			fmt.Fprintf(cmd.ErrOrStderr(), "rule=%s section=%s score=%.4f\n", reply.Rule, reply.Section, reply.Score)
		}
	},
}

func init() {
	rootCmd.AddCommand(askCmd)

	askCmd.Flags().BoolP("explain", "e", false, "print the rule that produced the reply to stderr")
}
