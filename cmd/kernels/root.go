// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/kernels/programs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries flag values and the logger between cobra hooks.
type app struct {
	verbose    bool
	configPath string
	workers    int

	logger      *zap.Logger
	buildLogger func(verbose bool) (*zap.Logger, error)
}

// productionLogger is the default logger: JSON to stderr, info level, debug
// with --verbose.
func productionLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return config.Build()
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(productionLogger)
}

// newRootCmdWith wires the command tree with a custom logger factory.
func newRootCmdWith(buildLogger func(bool) (*zap.Logger, error)) *cobra.Command {
	a := &app{buildLogger: buildLogger}

	root := &cobra.Command{
		Use:   "kernels",
		Short: "Run the reference kernel programs",
		Long: `kernels runs small reference programs (max, Fibonacci, GCD, polynomial
evaluation, substring search, array sums, matrix product). Each program
prints exactly one line computed from its literal inputs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.buildLogger(a.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(a.listCmd(), a.runCmd())

	return root
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List programs, their aliases and descriptions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range programs.Default().Programs() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", p.Name, strings.Join(p.Aliases, ","), p.Description)
			}
			return tw.Flush()
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [program...]",
		Short: "Run programs by name or alias (all when none given)",
		Long: `Runs the named programs concurrently and prints their lines in the order
given. With no names every program runs in registry order.

Inputs default to the literals of the original programs; --config points at
a YAML file overriding any of them, for example:

  gcd:
    a: 1071
    b: 462

Only the input sections read by the selected programs are validated.`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return programs.Default().Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := programs.DefaultInputs()
			if a.configPath != "" {
				var err error
				if in, err = programs.LoadInputs(a.configPath); err != nil {
					return err
				}
				a.logger.Debug("Loaded inputs", zap.String("path", a.configPath))
			}

			rn := programs.NewRunner(
				programs.WithInputs(in),
				programs.WithLogger(a.logger),
				programs.WithWorkers(a.workers),
			)
			a.logger.Debug("Running programs", zap.String("run_id", rn.RunID()), zap.Strings("names", args))

			return rn.RunAll(cmd.Context(), args, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVarP(&a.configPath, "config", "c", "", "YAML file overriding program inputs")
	cmd.Flags().IntVarP(&a.workers, "workers", "w", 0, "max programs running at once (0 = GOMAXPROCS)")

	return cmd
}
