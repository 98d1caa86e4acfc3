package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/falbricator/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

type generateOptions struct {
	count     int
	seed      int64
	context   string
	output    string
	format    string
	indent    int
	logLevel  string
	logFormat string
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly (help was shown),
// or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var parsed *app.Config
	root := newRootCmd(func(cfg *app.Config) { parsed = cfg })
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if parsed == nil {
		slog.Debug("No command executed, exiting.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", parsed)
	return parsed, false, nil
}

func newRootCmd(onParsed func(*app.Config)) *cobra.Command {
	root := &cobra.Command{
		Use:   "falbricator",
		Short: "Deterministic fixture generator driven by declarative schemas",
		Long: `Falbricator compiles a schema of field definitions and generates
fake records from it. Seeded randomizers make every run reproducible.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(onParsed))
	return root
}

func newGenerateCmd(onParsed func(*app.Config)) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate SCHEMA_PATH",
		Short: "Generate records from a schema file",
		Long: fmt.Sprintf(`Generate records from a schema file (.json, .yaml, .yml or .hcl).

Available formats: %s`, strings.Join(app.Formats, ", ")),
		Example: `  # Five records as a JSON array
  falbricator generate users.json -n 5

  # Reproducible NDJSON of a postprocessing branch
  falbricator generate users.yaml -n 100 --seed 42 -f ndjson -o postprocessed.api`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, args[0], opts)
			if err != nil {
				return err
			}
			onParsed(cfg)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of records to generate")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for the 'seeded' randomizer; overrides the schema's randomizer")
	cmd.Flags().StringVarP(&opts.context, "context", "c", "", "Path to a client context file (.json, .yaml or .yml)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "original", "Part of each record to print, e.g. 'original' or 'postprocessed.<branch>'")
	cmd.Flags().StringVarP(&opts.format, "format", "f", app.FormatJSON, fmt.Sprintf("Output format (%s)", strings.Join(app.Formats, ", ")))
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "Indentation of the json format")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")

	return cmd
}

func buildConfig(cmd *cobra.Command, schemaPath string, opts *generateOptions) (*app.Config, error) {
	logFormat := strings.ToLower(opts.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(opts.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	cfg := app.Config{
		SchemaPath:  schemaPath,
		ContextPath: opts.context,
		Count:       opts.count,
		Output:      opts.output,
		Format:      strings.ToLower(opts.format),
		Indent:      opts.indent,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	}
	if cmd.Flags().Changed("seed") {
		seed := opts.seed
		cfg.Seed = &seed
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, nil
}
