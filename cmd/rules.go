package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/spigell/career-assistant/internal/documents"
	"github.com/spigell/career-assistant/internal/responder"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the routing rules and the loaded sections",
	Run: func(cmd *cobra.Command, _ []string) {
		_, _, assistant := bootstrap()
		printRules(cmd.OutOrStdout(), assistant.Rules(), assistant.Store().Documents())
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func printRules(out io.Writer, statuses []responder.Status, docs []documents.Document) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "#\tRULE\tKIND\tENABLED\tDETAILS")
	for i, status := range statuses {
		details := formatDetails(status.Details)
		if status.Reason != "" {
			details = strings.TrimSpace(details + " (" + status.Reason + ")")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%s\n", i+1, status.Name, status.Kind, status.Enabled, details)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "SECTION\tPATH\tMISSING")
	for _, doc := range docs {
		fmt.Fprintf(w, "%s\t%s\t%t\n", doc.Section, doc.Path, doc.Missing)
	}

	w.Flush()
}

func formatDetails(details map[string]string) string {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+details[k])
	}
	return strings.Join(parts, " ")
}
