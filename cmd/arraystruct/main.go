// Package main provides the CLI entrypoint for arraystruct.
//
// arraystruct prints and checks YAML descriptions of the record shapes
// shipped with the module:
//   - describe: write the description of every built-in shape
//   - check: compare a stored description with the built-in shapes
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arraystruct/examples/cartesian"
	"arraystruct/examples/rgb"
	"arraystruct/record"
	"arraystruct/schema"
)

var (
	// Global flags
	verbose bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "arraystruct",
	Short: "Describe and check fixed-arity record shapes",
	Long: `arraystruct works with the YAML descriptions of record shapes: their
names, field indices and the names of the generated LEN / IDX constants.

A description committed next to generated code can be checked against the
shapes compiled into this binary to catch drift.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config = zap.NewDevelopmentConfig()
		}

		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger = l
		record.SetLogger(l.Named("record"))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	describeCmd.Flags().StringVarP(&describeOut, "out", "o", "", "write the description to a file instead of stdout")

	rootCmd.AddCommand(describeCmd, checkCmd)
}

// builtinShapes returns the registry of shapes compiled into the binary.
func builtinShapes() (*schema.Registry, error) {
	return schema.NewRegistry(
		schema.Of[rgb.Shape](),
		schema.Of[cartesian.Shape](),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
