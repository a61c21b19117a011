package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-assistant/internal/responder"
)

const (
	exitCommand = "exit"
	chatHint    = "💡 Try asking: Why should we hire you? | Tell me about yourself | What are your strengths?"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat in the terminal",
	Run: func(cmd *cobra.Command, _ []string) {
		logger, _, assistant := bootstrap()

		prompt := promptui.Prompt{Label: "You"}

		fmt.Fprintln(cmd.OutOrStdout(), chatHint)
		if err := chat(prompt.Run, cmd.OutOrStdout(), assistant); err != nil {
			logger.Fatal("chat failed", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

// chat answers every line returned by read until exit, Ctrl-C or Ctrl-D.
func chat(read func() (string, error), out io.Writer, assistant *responder.Assistant) error {
	for {
		input, err := read()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.EqualFold(strings.TrimSpace(input), exitCommand) {
			return nil
		}

		if _, err := fmt.Fprintf(out, "%s\n\n", assistant.Respond(input, nil)); err != nil {
			return fmt.Errorf("writing reply: %w", err)
		}
	}
}
