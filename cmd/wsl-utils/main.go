// Command wsl-utils lists the registered WSL distros and resolves the one an
// orchestration script should work on.
package main

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/0xrawsec/golang-utils/log"
	"github.com/spf13/cobra"

	wsl "github.com/crispd/wsl-utils"
)

// debugEnv enables the parser traces when --debug is not given.
const debugEnv = "WSLU_DEBUG"

// Exit codes, so scripts can tell why no distro was resolved.
const (
	exitOK = iota
	exitError
	exitCancelled
	exitNoDistros
	exitNotFound
)

// sourceFactory builds the snapshot source. Tests replace it.
type sourceFactory func(ctx context.Context, c wsl.Config) wsl.Source

func newSource(ctx context.Context, c wsl.Config) wsl.Source {
	return wsl.NewLister(ctx, c)
}

type options struct {
	debug bool
}

func main() {
	if err := newRootCmd(newSource).ExecuteContext(context.Background()); err != nil {
		os.Exit(exitCode(err))
	}
}

func newRootCmd(src sourceFactory) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "wsl-utils",
		Short:        "List and select WSL distributions",
		Long:         "wsl-utils parses the distro listing of wsl.exe and resolves the distro an operator script should act on.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.debug {
				log.InitLogger(log.LDebug)
				return
			}
			log.InitLogger(log.LInfo)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", envEnabled(os.Getenv(debugEnv)), "Trace how the listing is parsed (default from "+debugEnv+")")

	rootCmd.AddCommand(newListCmd(opts, src))
	rootCmd.AddCommand(newSelectCmd(opts, src))

	return rootCmd
}

// envEnabled interprets the value of a boolean environment variable.
func envEnabled(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, wsl.ErrSelectionCancelled):
		return exitCancelled
	case errors.Is(err, wsl.ErrNoDistributionsFound):
		return exitNoDistros
	case errors.Is(err, wsl.ErrDistroNotFound):
		return exitNotFound
	}
	return exitError
}
