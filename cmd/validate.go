package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/telespotter/telespotter/internal/phone"
	"github.com/telespotter/telespotter/internal/refdata"
)

var validateCmd = &cobra.Command{
	Use:   "validate <phone-number>",
	Short: "Parse and validate a phone number without searching",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Refdata.OverridesPath != "" {
			if err := refdata.Load(cfg.Refdata.OverridesPath); err != nil {
				return err
			}
		}

		info := phone.NewParser().Parse(args[0])

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
