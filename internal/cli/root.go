package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ian-shakespeare/minicc/internal/config"
	"github.com/ian-shakespeare/minicc/internal/frontend"
	"github.com/ian-shakespeare/minicc/pkg/iterator"
)

var (
	ErrSyntax   = errors.New("syntax errors found")
	ErrNoTokens = errors.New("no tokens generated from the source file")
)

type options struct {
	configFile string
	verbose    bool
	format     string
	noColor    bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "minicc <source-file>",
		Short: "Scan and syntax-check a mini C source file",
		Long: `minicc runs the two front-end stages over one source file:

  scanning  - splits the text into classified tokens
  parsing   - checks the tokens against the mini C grammar

Both stages are reported; the exit status is non-zero when syntax errors
are found.`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		// Usage stays on for flag and argument errors, which are reported
		// before this hook runs.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SilenceUsage = true
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], sectionTokens|sectionParse)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file, TOML or YAML (default: $"+config.EnvVar+")")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.format, "format", "", "output format: text or yaml")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable styled output")

	root.AddCommand(
		newTokensCommand(opts),
		newCheckCommand(opts),
		newVersionCommand(),
	)
	return root
}

func Execute() error {
	return NewRootCommand().Execute()
}

// PrintError reports err on w. ErrSyntax is skipped because the report
// already lists the syntax errors.
func PrintError(w io.Writer, err error) {
	if err == nil || errors.Is(err, ErrSyntax) {
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func newTokensCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <source-file>",
		Short: "Print the token list only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], sectionTokens)
		},
	}
}

func newCheckCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <source-file>",
		Short: "Print the parse verdict only",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args[0], sectionParse)
		},
	}
}

func (o *options) load() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configFile != "" {
		cfg, err = config.Load(o.configFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.noColor {
		cfg.Output.Color = false
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *options, path string, sections section) error {
	cfg, err := opts.load()
	if err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	source, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("source file not found at %s", path)
	}
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}
	logger.Debug("source loaded", "path", path, "bytes", len(source))

	s := frontend.NewScanner(string(source))
	tokens := iterator.Collect(s.Tokens())
	logger.Debug("scan finished", "tokens", len(tokens), "skipped", len(s.Skipped()))
	if len(tokens) == 0 {
		return ErrNoTokens
	}

	if !cfg.Output.ShowTokens && sections != sectionTokens {
		sections &^= sectionTokens
	}

	r := report{
		sections: sections,
		tokens:   tokens,
	}
	if sections.has(sectionParse) {
		r.result = frontend.ParseWithOptions(tokens, frontend.Options{Logger: logger})
	}

	if err := r.write(cmd.OutOrStdout(), cfg.Output); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if sections.has(sectionParse) && !r.result.Success() {
		return ErrSyntax
	}
	return nil
}
