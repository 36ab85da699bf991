package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/sightkey/sightkey/internal/history"
	"github.com/sightkey/sightkey/internal/ui"

	"github.com/spf13/cobra"
)

var (
	historyLimit      int
	historyJSONOutput bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "show at most this many entries")
	historyCmd.Flags().BoolVar(&historyJSONOutput, "json", false, "output in JSON format")
}

func resetHistoryCommandState() {
	historyLimit = 20
	historyJSONOutput = false
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past derivations (non-secret metadata only)",
	Long: `Lists recent derivations from the local history log. Entries hold only
when a derivation ran, for which domain and username, the length, and
whether a location contributed. Colors, patterns, coordinates, and
passwords are never recorded.

Disable logging entirely with ` + "`sightkey config set history false`" + `.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting history command")

	entries, err := history.ReadEntries()
	if err != nil {
		return Logger.ErrorfAndReturn("failed to read history: %v", err)
	}

	// A negative limit would slice past the front of the log.
	limit := historyLimit
	if limit < 0 {
		limit = 0
	}
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	if historyJSONOutput {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	if len(entries) == 0 {
		fmt.Println(ui.Muted.Sprint("no history yet") + "\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("sightkey derive") + " to derive a password")
		return nil
	}

	for _, entry := range entries {
		location := ""
		if entry.Location {
			location = " " + ui.Muted.Sprint("with location")
		}
		fmt.Printf("%s  %s %s %s%s\n",
			ui.Muted.Sprint(entry.Timestamp),
			ui.Highlight.Sprint(entry.Username),
			ui.Info.Sprint("@"),
			ui.Highlight.Sprint(entry.Domain),
			location)
	}
	return nil
}
