package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ubuntu/decorate"
	"gopkg.in/yaml.v3"

	wsl "github.com/crispd/wsl-utils"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatNames = "names"
)

// recordView is the serialised form of a record.
type recordView struct {
	Name    string `yaml:"name"`
	State   string `yaml:"state"`
	Version *int   `yaml:"version,omitempty"`
}

func newListCmd(opts *options, src sourceFactory) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the registered distributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer decorate.OnError(&err, "list")

			ctx := cmd.Context()
			records, err := src(ctx, wsl.Config{Debug: opts.debug}).List(ctx)
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), records, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table, yaml or names")

	return cmd
}

func writeRecords(w io.Writer, records []wsl.Record, format string) error {
	switch format {
	case formatTable:
		wsl.WriteMenu(w, records)
		return nil
	case formatNames:
		for _, r := range records {
			if _, err := fmt.Fprintln(w, r.Name()); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		views := make([]recordView, 0, len(records))
		for _, r := range records {
			v := recordView{Name: r.Name(), State: r.State().String()}
			if version, ok := r.Version(); ok {
				v.Version = &version
			}
			views = append(views, v)
		}

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("could not encode records: %v", err)
		}
		return enc.Close()
	}

	return fmt.Errorf("unknown format %q: use %s, %s or %s", format, formatTable, formatYAML, formatNames)
}
