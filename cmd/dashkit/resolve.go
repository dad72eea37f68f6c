package main

import (
	"errors"
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	applog "dashkit/internal/log"
	"dashkit/internal/variant"
)

type resolveOptions struct {
	set   []string
	class string
}

func newResolveCmd(root *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Print the class string for a component selection",
		Example: `  dashkit resolve button --set variant=outline --set size=lg
  dashkit resolve badge --set dot=true --class "px-4"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Axis selection as axis=option (repeatable)")
	cmd.Flags().StringVar(&opts.class, "class", "", "Caller classes merged last")

	return cmd
}

func parseSelection(pairs []string) (variant.Selection, error) {
	sel := make(variant.Selection, len(pairs))
	for _, pair := range pairs {
		axis, option, ok := strings.Cut(pair, "=")
		axis = strings.TrimSpace(axis)
		if !ok || axis == "" {
			return nil, fmt.Errorf("selection %q is not in axis=option form", pair)
		}
		sel[axis] = strings.TrimSpace(option)
	}
	return sel, nil
}

func runResolve(cmd *cobra.Command, root *rootFlags, opts *resolveOptions, component string) error {
	reg, err := loadRegistry(cmd, root.schemaFile)
	if err != nil {
		return err
	}
	schema, ok := reg.Lookup(component)
	if !ok {
		return newCommandError("resolve", "component "+component, fmt.Errorf("unknown component"), didYouMean(component, reg.Names()))
	}

	sel, err := parseSelection(opts.set)
	if err != nil {
		return newCommandError("resolve", component, err, "Pass selections like --set size=lg.")
	}
	applog.Debug(cmd.Context(), "resolving classes", "component", component, "axes", len(sel))

	classes, err := schema.Resolve(sel, opts.class)
	if err != nil {
		var optErr *variant.UnknownOptionError
		var axisErr *variant.UnknownAxisError
		switch {
		case errors.As(err, &optErr):
			return newCommandError("resolve", component, err, didYouMean(optErr.Option, optErr.Known))
		case errors.As(err, &axisErr):
			return newCommandError("resolve", component, err, didYouMean(axisErr.Axis, axisErr.Known))
		default:
			return newCommandError("resolve", component, err, "")
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), classes)
	return nil
}

// didYouMean suggests the known value closest to got by edit distance.
func didYouMean(got string, known []string) string {
	if len(known) == 0 {
		return ""
	}
	closest := lo.MinBy(known, func(a, b string) bool {
		return levenshtein.Distance(got, a) < levenshtein.Distance(got, b)
	})
	return fmt.Sprintf("Did you mean %q? Known values: %s.", closest, strings.Join(known, ", "))
}
