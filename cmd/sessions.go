package main

import (
	"fmt"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/telespotter/telespotter/internal/export"
)

var (
	sessionsLimit        int
	sessionExportFormat  string
	sessionExportOutFile string
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect archived search sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		if e.Store == nil {
			return eris.New("session archive is disabled (store.driver=none)")
		}

		sessions, err := e.Store.ListSessions(ctx, sessionsLimit)
		if err != nil {
			return err
		}

		if len(sessions) == 0 {
			fmt.Println("no archived sessions")
			return nil
		}
		for _, s := range sessions {
			fmt.Printf("%s  %-16s  %-10s  %3d%%  %s\n",
				s.StartTime, s.PhoneNumber, s.Status, s.Progress, s.ID)
		}
		return nil
	},
}

var sessionsExportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Export an archived session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		format, err := export.ParseFormat(sessionExportFormat)
		if err != nil {
			return err
		}

		e, err := initEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		if e.Store == nil {
			return eris.New("session archive is disabled (store.driver=none)")
		}

		state, err := e.Store.GetSession(ctx, args[0])
		if err != nil {
			return err
		}

		out := os.Stdout
		if sessionExportOutFile != "" {
			f, err := os.Create(sessionExportOutFile)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close()
			out = f
		}

		return export.Write(out, format, state)
	},
}

func init() {
	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", 50, "max sessions to list")
	sessionsExportCmd.Flags().StringVar(&sessionExportFormat, "format", "json", "export format (json, csv, txt, xlsx)")
	sessionsExportCmd.Flags().StringVarP(&sessionExportOutFile, "output", "o", "", "write to file instead of stdout")
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsExportCmd)
	rootCmd.AddCommand(sessionsCmd)
}
