package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dashkit/internal/variant"
)

type schemasOptions struct {
	jsonOutput bool
}

type axisSummary struct {
	Name    string   `json:"name"`
	Default string   `json:"default"`
	Options []string `json:"options"`
}

type schemaSummary struct {
	Name string        `json:"name"`
	Base string        `json:"base"`
	Axes []axisSummary `json:"axes"`
}

func newSchemasCmd(root *rootFlags) *cobra.Command {
	opts := &schemasOptions{}

	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List component schemas and their axes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(cmd, root.schemaFile)
			if err != nil {
				return err
			}
			summaries := summarize(reg)
			if opts.jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}
			return renderSchemaTable(cmd, summaries)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func summarize(reg *variant.Registry) []schemaSummary {
	names := reg.Names()
	out := make([]schemaSummary, 0, len(names))
	for _, name := range names {
		s, _ := reg.Lookup(name)
		summary := schemaSummary{Name: name, Base: s.Base()}
		for _, axis := range s.Axes() {
			def, _ := s.Default(axis)
			summary.Axes = append(summary.Axes, axisSummary{Name: axis, Default: def, Options: s.Options(axis)})
		}
		out = append(out, summary)
	}
	return out
}

func renderSchemaTable(cmd *cobra.Command, summaries []schemaSummary) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEMA\tAXIS\tDEFAULT\tOPTIONS")
	for _, s := range summaries {
		if len(s.Axes) == 0 {
			fmt.Fprintf(w, "%s\t-\t-\t-\n", s.Name)
			continue
		}
		for i, a := range s.Axes {
			name := s.Name
			if i > 0 {
				name = ""
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, a.Name, a.Default, strings.Join(a.Options, ", "))
		}
	}
	return w.Flush()
}
