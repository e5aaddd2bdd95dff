package main

import (
	"fmt"

	"github.com/spf13/cobra"

	wsl "github.com/crispd/wsl-utils"
)

func newSelectCmd(opts *options, src sourceFactory) *cobra.Command {
	var (
		nonInteractive bool
		maxAttempts    int
	)

	cmd := &cobra.Command{
		Use:   "select [NAME]",
		Short: "Resolve one distribution and print its name",
		Long: `Resolve one distribution and print its name on stdout.

If NAME is a registered distribution, it is used as is. Otherwise a numbered
menu is shown on stderr and an answer is read from stdin. Answer with a number,
an exact name, or q to cancel.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}

			selectOpts := []wsl.SelectOption{wsl.WithMaxAttempts(maxAttempts)}
			if nonInteractive {
				selectOpts = append(selectOpts, wsl.WithNonInteractive())
			}

			ctx := cmd.Context()
			s := wsl.NewSelector(src(ctx, wsl.Config{Debug: opts.debug}), cmd.InOrStdin(), cmd.ErrOrStderr(), selectOpts...)

			r, err := s.Select(ctx, name)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Name())
			return err
		},
	}

	cmd.Flags().BoolVarP(&nonInteractive, "non-interactive", "n", false, "Fail instead of prompting when NAME does not match")
	cmd.Flags().IntVar(&maxAttempts, "max-attempts", 0, "Give up after this many invalid answers (0 means no limit)")

	return cmd
}
