package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"realign/internal/cache"
	"realign/internal/diag"
	"realign/internal/diagfmt"
	"realign/internal/driver"
	"realign/internal/format"
	"realign/internal/observ"
)

var alignCmd = &cobra.Command{
	Use:   "align [flags] <path> [path...]",
	Short: "Align source files in place",
	Long: `Align rewrites every source file under the given paths. Directories are
walked recursively; files are picked by their registered extension.
Use - to read from stdin (with --lang) and print to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAlign,
}

func init() {
	alignCmd.Flags().Bool("check", false, "report unaligned files instead of rewriting them")
	alignCmd.Flags().Bool("stdout", false, "print aligned code to stdout instead of rewriting files")
	alignCmd.Flags().String("format", "text", "output format (text|json)")
	alignCmd.Flags().Int("jobs", 0, "max parallel files (0=auto)")
	alignCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	alignCmd.Flags().Bool("no-cache", false, "do not read or write the result cache")
	alignCmd.Flags().String("indent", "", "replace block indentation with this string")
	alignCmd.Flags().String("line-break", "", "line break of the output (lf|crlf, default: keep)")
	alignCmd.Flags().String("lang", "", "language of stdin input (typescript|javascript|go)")
}

func runAlign(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	lang, err := cmd.Flags().GetString("lang")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("align: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("align: --stdout is only supported with text output")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("align: unsupported output format %q", outputFormat)
	}
	fromStdin := len(args) == 1 && args[0] == "-"
	useUI, err := resolveUI(uiFlag, alignOutput{
		stdout: writeToStdout || fromStdin,
		json:   outputFormat == "json",
		quiet:  quiet,
	}, isTerminal(os.Stdout))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fopts, err := cfg.FormatOptions()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("indent") {
		indent, _ := cmd.Flags().GetString("indent") //nolint:errcheck
		fopts.Indentation = indent
	}
	if cmd.Flags().Changed("line-break") {
		raw, _ := cmd.Flags().GetString("line-break") //nolint:errcheck
		if fopts.LineBreak, err = format.ParseLineBreak(raw); err != nil {
			return fmt.Errorf("align: %w", err)
		}
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}
	if jobs == 0 {
		jobs = cfg.Jobs
	}

	var timer *observ.Timer
	if timings {
		timer = observ.NewTimer()
	}
	opts := driver.AlignOptions{
		Check:          check,
		Stdout:         writeToStdout,
		Jobs:           jobs,
		MaxDiagnostics: maxDiagnostics,
		Format:         fopts,
		Registry:       reg,
		Exclude:        cfg.Excluded,
		Timer:          timer,
	}
	if !noCache && !writeToStdout {
		if dc, cerr := cache.Open("realign"); cerr == nil {
			opts.Cache = dc
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	var report *driver.Report
	switch {
	case fromStdin:
		content, rerr := io.ReadAll(os.Stdin)
		if rerr != nil {
			return fmt.Errorf("align: read stdin: %w", rerr)
		}
		opts.Check = false
		opts.Stdout = true
		writeToStdout = true
		report, err = driver.AlignSource(ctx, "<stdin>", content, lang, opts)
	case useUI:
		report, err = runAlignWithUI(ctx, args, opts)
	default:
		report, err = driver.AlignPaths(ctx, args, opts)
	}
	if err != nil {
		return fmt.Errorf("align: %w", err)
	}

	if outputFormat == "json" {
		if err := renderAlignJSON(os.Stdout, report, check); err != nil {
			return err
		}
	} else {
		renderAlignText(report, check, writeToStdout, quiet)
	}
	if timer != nil {
		fmt.Fprint(os.Stderr, timer.Summary())
	}

	if report.HasErrors() {
		return fmt.Errorf("align: failed to align some files")
	}
	if check && len(report.Unaligned()) > 0 {
		return fmt.Errorf("align: %d file(s) need alignment", len(report.Unaligned()))
	}
	return nil
}

func renderAlignText(report *driver.Report, check, writeToStdout, quiet bool) {
	for _, res := range report.Results {
		printDiagnostics(os.Stderr, res.Bag, report, quiet)
		if res.Err != nil {
			if res.Bag == nil || res.Bag.Len() == 0 {
				fmt.Fprintf(os.Stderr, "align: %s: %v\n", res.Path, res.Err)
			}
			continue
		}
		switch {
		case writeToStdout:
			_, _ = os.Stdout.Write(res.Output) //nolint:errcheck
		case quiet:
		case check && res.Changed:
			fmt.Fprintln(os.Stdout, res.Path)
		case !check && res.Changed:
			fmt.Fprintf(os.Stdout, "aligned %s\n", res.Path)
		}
	}
}

// printDiagnostics prints warnings and errors of one file; info
// diagnostics only appear in JSON output.
func printDiagnostics(w io.Writer, bag *diag.Bag, report *driver.Report, quiet bool) {
	if bag == nil || bag.Len() == 0 {
		return
	}
	shown := diag.NewBag(bag.Cap())
	for _, d := range bag.Items() {
		if d.Severity.AtLeast(diag.SevWarning) {
			shown.Add(d)
		}
	}
	if shown.Len() == 0 {
		return
	}
	shown.Sort()
	if quiet || !isTerminal(os.Stderr) {
		fmt.Fprint(w, diag.FormatShort(shown.Items(), report.Files, "auto"))
		return
	}
	if err := diagfmt.Pretty(w, shown, report.Files, diagfmt.PrettyOpts{Color: useColor(), ShowNotes: true}); err != nil {
		fmt.Fprintf(os.Stderr, "align: %v\n", err)
	}
}

type alignJSONResult struct {
	Path        string                    `json:"path"`
	Tokenizer   string                    `json:"tokenizer,omitempty"`
	Changed     bool                      `json:"changed"`
	Cached      bool                      `json:"cached"`
	Degraded    int                       `json:"degraded"`
	Error       string                    `json:"error,omitempty"`
	CheckRun    bool                      `json:"check"`
	Diagnostics diagfmt.DiagnosticsOutput `json:"diagnostics"`
}

func renderAlignJSON(w io.Writer, report *driver.Report, check bool) error {
	payload := make([]alignJSONResult, 0, len(report.Results))
	for _, res := range report.Results {
		diags := diagfmt.BuildDiagnosticsOutput(res.Bag, report.Files, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
		})
		jr := alignJSONResult{
			Path:        res.Path,
			Tokenizer:   res.Tokenizer,
			Changed:     res.Changed,
			Cached:      res.Cached,
			Degraded:    res.Degraded,
			CheckRun:    check,
			Diagnostics: diags,
		}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
