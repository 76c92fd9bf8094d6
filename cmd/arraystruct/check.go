package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arraystruct/internal/diagnostic"
	"arraystruct/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Check a shape description against the built-in shapes",
	Long: `Loads a YAML shape description and reports every shape whose arity,
field order or constant names differ from the shape compiled into this
binary. Exits non-zero when any error is found.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	reg, err := builtinShapes()
	if err != nil {
		return err
	}

	f, err := schema.LoadFile(args[0])
	if err != nil {
		return err
	}

	diags := schema.Verify(f, reg)

	out := cmd.OutOrStdout()
	for _, d := range diags.All() {
		if d.Severity == diagnostic.SeverityInfo && !verbose {
			continue
		}

		fmt.Fprintf(out, "%s: %s\n", d.Severity, d)
	}

	logger.Debug("description checked",
		zap.String("path", args[0]),
		zap.Int("errors", len(diags.Errors)),
		zap.Int("warnings", len(diags.Warnings)),
	)

	if diags.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", args[0], len(diags.Errors))
	}

	fmt.Fprintf(out, "%s: ok (%d shapes)\n", args[0], len(f.Shapes))

	return nil
}
