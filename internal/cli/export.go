package cli

import (
	"io"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/tada/internal/model"
	"github.com/idilsaglam/tada/internal/store"
)

// exportDoc wraps the list for formats that need a top-level table.
type exportDoc struct {
	Todos []model.Todo `yaml:"todos" toml:"todos"`
}

func (a *app) exportCmd() *cobra.Command {
	var format string
	c := &cobra.Command{
		Use:   "export",
		Short: "Write all todos to stdout",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return export(cmd.OutOrStdout(), a.store.Collection(), format)
		},
	}
	c.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml or toml")
	return c
}

func export(w io.Writer, c model.Collection, format string) error {
	switch format {
	case "json":
		// Same bytes the file backend stores.
		b, err := store.Encode(c)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(exportDoc{Todos: c.Items()}); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(exportDoc{Todos: c.Items()})
	}
	return usagef("export: unknown format %q", format)
}
