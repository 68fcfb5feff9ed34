package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"realign/internal/diagfmt"
	"realign/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file|->",
	Short: "Print the tokens of a source file",
	Long:  `Tokenize shows how realign classifies every token of a file`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	tokenizeCmd.Flags().String("lang", "", "tokenizer to use instead of the one registered for the extension")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return fmt.Errorf("failed to get lang flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	var result *driver.TokenizeResult
	if filePath == "-" {
		content, rerr := io.ReadAll(os.Stdin)
		if rerr != nil {
			return fmt.Errorf("read stdin: %w", rerr)
		}
		result, err = driver.TokenizeSource("<stdin>", content, lang, reg, maxDiagnostics)
	} else {
		result, err = driver.TokenizeFile(filePath, lang, reg, maxDiagnostics)
	}
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика в stderr
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		opts := diagfmt.PrettyOpts{Color: useColor(), ShowNotes: true}
		if err := diagfmt.Pretty(os.Stderr, result.Bag, result.Files, opts); err != nil {
			return err
		}
		return fmt.Errorf("tokenization failed")
	}

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, result.Lines)
	default:
		return diagfmt.FormatTokensPretty(os.Stdout, result.Lines)
	}
}
