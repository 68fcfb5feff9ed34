package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"realign/internal/lexer"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List tokenizers and the extensions mapped to them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		reg, err := cfg.Registry()
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, tz := range lexer.All() {
			exts := reg.Extensions(tz)
			shown := "-"
			if len(exts) > 0 {
				shown = "." + strings.Join(exts, " .")
			}
			fmt.Fprintf(tw, "%s\t%s\n", tz.Name(), shown)
		}
		return tw.Flush()
	},
}
