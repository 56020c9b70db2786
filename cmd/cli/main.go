// Command aero-engine runs wing-angle sweeps and cornering-speed solves.
//
//	aero-engine sweep [input.json]    SweepInput JSON from a file or stdin, SweepLog JSON to stdout
//	aero-engine corner --vehicle f1   single cornering solve
//	aero-engine plot                  sweep the default fleet and chart it in the terminal
package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

type globalFlags struct {
	envFile string
	debug   bool
}

func main() {
	var g globalFlags

	rootCmd := &cobra.Command{
		Use:          "aero-engine",
		Short:        "Wing-angle aerodynamics: top speed, downforce and cornering speed",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.envFile, "env", ".env", "environment file with AERO_* overrides")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "log diagnostics to stderr")

	rootCmd.AddCommand(sweepCmd(&g))
	rootCmd.AddCommand(cornerCmd(&g))
	rootCmd.AddCommand(plotCmd(&g))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging routes the standard logger to stderr when debug is on and discards it otherwise.
func setupLogging(debug bool) {
	log.SetFlags(0)
	log.SetPrefix("aero-engine: ")
	if debug {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

func sweepCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep [input.json]",
		Short: "Run a sweep from SweepInput JSON (file or stdin) and print the SweepLog JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runSweep(g, path, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func cornerCmd(g *globalFlags) *cobra.Command {
	var o cornerOpts

	cmd := &cobra.Command{
		Use:   "corner",
		Short: "Solve the maximum cornering speed for one vehicle, angle and turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCorner(g, o, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&o.preset, "vehicle", "v", "f1", "built-in vehicle: fs or f1")
	cmd.Flags().StringVar(&o.fleet, "fleet", "", "YAML fleet file (use with --name)")
	cmd.Flags().StringVar(&o.name, "name", "", "vehicle name inside --fleet")
	cmd.Flags().Float64VarP(&o.angle, "angle", "a", 0, "wing angle, degrees")
	cmd.Flags().Float64VarP(&o.radius, "radius", "r", 50, "turn radius, m")
	cmd.Flags().Float64Var(&o.mu, "mu", 1.7, "tyre friction coefficient")
	return cmd
}

func plotCmd(g *globalFlags) *cobra.Command {
	var o plotOpts

	cmd := &cobra.Command{
		Use:   "plot [input.json]",
		Short: "Run a sweep and chart it in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				o.input = args[0]
			}
			return runPlot(g, o)
		},
	}

	cmd.Flags().StringVar(&o.fleet, "fleet", "", "YAML fleet file (default: built-in fleet)")
	cmd.Flags().Float64VarP(&o.radius, "radius", "r", 50, "turn radius, m")
	cmd.Flags().Float64Var(&o.mu, "mu", 1.2, "tyre friction coefficient")
	cmd.Flags().Float64Var(&o.start, "from", 0, "first wing angle, degrees")
	cmd.Flags().Float64Var(&o.end, "to", 15, "last wing angle, degrees")
	cmd.Flags().IntVar(&o.steps, "steps", 30, "number of wing angles")
	cmd.Flags().StringSliceVarP(&o.metrics, "metric", "m", nil, "metrics to chart: top_speed, downforce, drag, corner_speed, comparison (default all)")
	return cmd
}
