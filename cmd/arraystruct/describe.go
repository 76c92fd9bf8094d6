package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"arraystruct/schema"
)

var describeOut string

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print the YAML description of the built-in shapes",
	Args:  cobra.NoArgs,
	RunE:  runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	reg, err := builtinShapes()
	if err != nil {
		return err
	}

	f := schema.Describe(reg.Schemas()...)

	if describeOut != "" {
		if err := schema.WriteFile(f, describeOut); err != nil {
			return err
		}

		logger.Info("description written", zap.String("path", describeOut), zap.Int("shapes", len(f.Shapes)))

		return nil
	}

	data, err := schema.Marshal(f)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))

	return err
}
