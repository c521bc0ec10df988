package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/raymyers/tacc/pkg/config"
	"github.com/raymyers/tacc/pkg/driver"
	"github.com/raymyers/tacc/pkg/report"
	"github.com/raymyers/tacc/pkg/source"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var version = "0.1.0"

// defaultInput is read when no file is given.
const defaultInput = "input.txt"

// Properties of the real stdout, filled in by run. Tests see a plain,
// uncoloured writer.
var (
	stdoutIsTerminal bool
	bannerWidth      int
)

// options holds the command-line flags.
type options struct {
	configPath     string
	tokens         bool
	symbols        bool
	tac            bool
	asm            bool
	qbe            bool
	native         bool
	qbeTarget      string
	tempPrefix     string
	registerPrefix string
	digest         bool
	color          string
	logLevel       string
}

// stageFlags pairs each stage with the flag selecting it.
func (o *options) stageFlags() []struct {
	stage string
	set   bool
} {
	return []struct {
		stage string
		set   bool
	}{
		{config.StageTokens, o.tokens},
		{config.StageSymbols, o.symbols},
		{config.StageTAC, o.tac},
		{config.StageAsm, o.asm},
		{config.StageQBE, o.qbe || o.native},
	}
}

func main() {
	atexit.Exit(run())
}

func run() int {
	stdoutIsTerminal = report.IsTerminal(os.Stdout)
	bannerWidth = report.Width(os.Stdout)

	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })

	rootCmd := newRootCmd(out, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tacc [file]",
		Short: "tacc lowers C-like assignments to three-address code and assembly",
		Long: `tacc reads C-like source, lists its tokens and declared symbols, and
lowers every assignment expression to three-address code, to a simple
register assembly and optionally to QBE IL and native assembly.

The input defaults to input.txt; use - to read standard input.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := defaultInput
			if len(args) == 1 {
				filename = args[0]
			}

			cfg, err := buildConfig(cmd, opts)
			if err != nil {
				fmt.Fprintf(errOut, "tacc: error: %v\n", err)
				return err
			}
			logger, err := newLogger(opts.logLevel, errOut)
			if err != nil {
				fmt.Fprintf(errOut, "tacc: error: %v\n", err)
				return err
			}

			src, err := readSource(filename, cmd.InOrStdin())
			if err != nil {
				fmt.Fprintf(errOut, "tacc: error: %v\n", err)
				return err
			}
			logger.Debug("read source", "file", filename, "bytes", len(src))

			return doRun(src, cfg, logger, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	f := rootCmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Read settings from a YAML file")

	// Stage flags; when none is given the configured stages are printed
	f.BoolVar(&opts.tokens, "tokens", false, "Print the token listing")
	f.BoolVar(&opts.symbols, "symbols", false, "Print the symbol table")
	f.BoolVar(&opts.tac, "tac", false, "Print three-address code")
	f.BoolVar(&opts.asm, "asm", false, "Print assembly")
	f.BoolVar(&opts.qbe, "qbe", false, "Print QBE IL")
	f.BoolVar(&opts.native, "native", false, "Compile the QBE IL to native assembly (implies --qbe)")

	f.StringVar(&opts.qbeTarget, "qbe-target", "", "QBE target (amd64_sysv, amd64_apple, arm64, arm64_apple, rv64)")
	f.StringVar(&opts.tempPrefix, "temp-prefix", "", "Prefix of TAC temporaries")
	f.StringVar(&opts.registerPrefix, "register-prefix", "", "Prefix of assembly registers")
	f.BoolVar(&opts.digest, "digest", false, "Print an xxhash digest after each listing")
	f.StringVar(&opts.color, "color", "", "Colour banners: auto, always or never")
	f.StringVar(&opts.logLevel, "log-level", "error", "Log level: debug, info, warn or error")

	return rootCmd
}

// buildConfig layers flags over the config file over the defaults.
func buildConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	var stages []string
	for _, sf := range opts.stageFlags() {
		if sf.set {
			stages = append(stages, sf.stage)
		}
	}
	if len(stages) > 0 {
		cfg.Stages = stages
	}

	flags := cmd.Flags()
	if flags.Changed("native") {
		cfg.QBE.Native = opts.native
	}
	if flags.Changed("qbe-target") {
		cfg.QBE.Target = opts.qbeTarget
	}
	if flags.Changed("temp-prefix") {
		cfg.TempPrefix = opts.tempPrefix
	}
	if flags.Changed("register-prefix") {
		cfg.RegisterPrefix = opts.registerPrefix
	}
	if flags.Changed("digest") {
		cfg.Digest = opts.digest
	}
	if flags.Changed("color") {
		cfg.Color = opts.color
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("bad --log-level: %w", err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

// readSource reads filename, or in when filename is "-".
func readSource(filename string, in io.Reader) (string, error) {
	if filename == "-" {
		return source.Read(in, "<stdin>")
	}
	return source.ReadFile(filename)
}

// doRun processes src and prints every enabled section.
func doRun(src string, cfg *config.Config, logger *slog.Logger, out, errOut io.Writer) error {
	res, err := driver.Process(src, cfg, logger)

	color := cfg.Color == config.ColorAlways || cfg.Color == config.ColorAuto && stdoutIsTerminal
	w := report.New(out, report.Options{Width: bannerWidth, Color: color, Digest: cfg.Digest})

	if cfg.Enabled(config.StageTokens) {
		w.Banner(report.TitleTokens)
		w.Tokens(res.Tokens)
	}
	if cfg.Enabled(config.StageSymbols) {
		w.Banner(report.TitleSymbols)
		w.Symbols(res.Symbols)
	}
	if l := res.Listing("tac"); l != nil {
		w.Banner(report.TitleTAC)
		w.Lines(l.Lines())
	}
	if l := res.Listing("asm"); l != nil {
		w.Banner(report.TitleAsm)
		w.Lines(l.Lines())
	}
	if res.QBE != nil {
		w.Banner(report.TitleQBE)
		w.Text(res.QBE.String())
	}
	if res.Native != "" {
		w.Banner(report.TitleNative)
		w.Text(res.Native)
	}

	for _, e := range res.LexErrors {
		fmt.Fprintf(errOut, "tacc: warning: %v\n", e)
	}
	for _, d := range res.Diagnostics {
		fmt.Fprintf(errOut, "tacc: warning: %v\n", d)
	}

	if err != nil {
		fmt.Fprintf(errOut, "tacc: error: %v\n", err)
		return err
	}
	return nil
}
