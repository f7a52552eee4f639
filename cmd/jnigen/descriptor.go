package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"omibyte.io/gojni/gen"
)

var (
	descriptorOpts = struct {
		returns string
	}{}

	descriptorCmd = &cobra.Command{
		Use:   "descriptor [types...]",
		Short: "Print a method descriptor",
		Long:  "Print the method descriptor for the given argument types, e.g. jnigen descriptor -r int string java.util.List",
		RunE: func(cmd *cobra.Command, args []string) error {
			desc, err := gen.Descriptor(descriptorOpts.returns, args...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), desc)
			return nil
		},
	}
)

func init() {
	descriptorCmd.Flags().StringVarP(&descriptorOpts.returns, "returns", "r", "void", "result type")
}
