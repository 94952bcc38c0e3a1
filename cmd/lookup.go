package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/telespotter/telespotter/internal/export"
	"github.com/telespotter/telespotter/internal/model"
	"github.com/telespotter/telespotter/internal/search"
)

var (
	lookupFormat     string
	lookupOutput     string
	lookupMaxResults int
	lookupNoEngines  bool
	lookupNoPeople   bool
)

// consoleSink prints progress lines to stderr so stdout stays clean
// for the exported report.
type consoleSink struct{}

func (consoleSink) PublishProgress(_ string, percent int, message, _ string) {
	fmt.Fprintf(os.Stderr, "[%3d%%] %s\n", percent, message)
}

func (consoleSink) PublishResult(string, string, any) {}

var lookupCmd = &cobra.Command{
	Use:   "lookup <phone-number>",
	Short: "Run a one-shot search and print the report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, err := export.ParseFormat(lookupFormat)
		if err != nil {
			return err
		}

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		orch, err := e.orchestrator(consoleSink{})
		if err != nil {
			return err
		}

		opts := model.DefaultOptions()
		opts.MaxResults = lookupMaxResults
		if lookupNoEngines {
			opts.SearchEngines = false
		}
		if lookupNoPeople {
			opts.PeopleSearch = false
		}

		id, err := orch.StartSearch(ctx, args[0], opts)
		if err != nil {
			return err
		}

		state, err := waitForSearch(cmd, orch, id)
		if err != nil {
			return err
		}

		out := os.Stdout
		if lookupOutput != "" {
			f, err := os.Create(lookupOutput)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close()
			out = f
		}

		if err := export.Write(out, format, state); err != nil {
			return err
		}

		if state.Phase == model.PhaseError {
			return eris.Errorf("search finished with errors: %v", state.Errors)
		}
		return nil
	},
}

func waitForSearch(cmd *cobra.Command, orch *search.Orchestrator, id string) (model.SessionState, error) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-cmd.Context().Done():
			return model.SessionState{}, cmd.Context().Err()
		case <-ticker.C:
			state, err := orch.Get(cmd.Context(), id)
			if err != nil {
				return model.SessionState{}, err
			}
			if state.Phase.Terminal() {
				return state, nil
			}
		}
	}
}

func init() {
	lookupCmd.Flags().StringVar(&lookupFormat, "format", "txt", "report format (json, csv, txt, xlsx)")
	lookupCmd.Flags().StringVarP(&lookupOutput, "output", "o", "", "write report to file instead of stdout")
	lookupCmd.Flags().IntVar(&lookupMaxResults, "max-results", 20, "max results per source")
	lookupCmd.Flags().BoolVar(&lookupNoEngines, "no-engines", false, "skip search engines")
	lookupCmd.Flags().BoolVar(&lookupNoPeople, "no-people", false, "skip people search sites")
	rootCmd.AddCommand(lookupCmd)
}
