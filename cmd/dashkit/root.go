package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	applog "dashkit/internal/log"
	"dashkit/internal/variant"
	"dashkit/internal/views/components"
)

// appFs is the filesystem schema files are read from.
var appFs afero.Fs = afero.NewOsFs()

type rootFlags struct {
	verbose    bool
	schemaFile string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "dashkit",
		Short:         "Inspect dashkit component schemas, class merging and design tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			applog.SetOutput(cmd.ErrOrStderr())
			level := "warn"
			if flags.verbose {
				level = "debug"
			}
			return applog.SetLevel(level)
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().StringVar(&flags.schemaFile, "schema", "", "YAML schema file to use instead of the built-in components")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newMergeCmd())
	cmd.AddCommand(newSchemasCmd(flags))
	cmd.AddCommand(newTokensCmd())

	return cmd
}

// loadRegistry returns the built-in component registry, or the schemas declared in
// path when it is set.
func loadRegistry(cmd *cobra.Command, path string) (*variant.Registry, error) {
	if path == "" {
		return components.Schemas(), nil
	}
	applog.Debug(cmd.Context(), "loading schema file", "path", path)
	schemas, err := variant.LoadFile(appFs, path)
	if err != nil {
		return nil, newCommandError("load schemas", path, err, "Check the file exists and follows the schemas: [...] layout.")
	}
	reg, err := variant.NewRegistry(schemas...)
	if err != nil {
		return nil, newCommandError("load schemas", path, err, "Give every schema a unique name.")
	}
	return reg, nil
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

func (e *commandError) Error() string {
	msg := fmt.Sprintf("Failed to %s: %s\n\nError: %v", e.operation, e.context, e.cause)
	if e.suggestion != "" {
		msg += "\n\nSuggestion: " + e.suggestion
	}
	return msg
}

func (e *commandError) Unwrap() error { return e.cause }
