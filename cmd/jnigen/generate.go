package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"omibyte.io/gojni/gen"
)

var (
	generateOpts = struct {
		input   string
		output  string
		pkg     string
		verbose bool
	}{}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate wrappers from a manifest",
		Long:  "Generate a Go source file containing wrappers for every class in a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, generateOpts.input, generateOpts.output, generateOpts.pkg)
		},
	}
)

func init() {
	generateCmd.Flags().StringVarP(&generateOpts.input, "input", "i", "jni.yaml", "manifest file")
	generateCmd.Flags().StringVarP(&generateOpts.output, "output", "o", "", "output file. Default: the manifest name with a .go extension")
	generateCmd.Flags().StringVarP(&generateOpts.pkg, "package", "p", "", "package name overriding the manifest")
	generateCmd.Flags().BoolVarP(&generateOpts.verbose, "verbose", "v", false, "print the generated file name")
}

func generate(cmd *cobra.Command, input, output, pkg string) error {
	m, err := gen.Load(input)
	if err != nil {
		return err
	}

	if pkg != "" {
		m.Package = pkg
		if err := m.Validate(); err != nil {
			return err
		}
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".go"
	}

	src, err := gen.Generate(m, filepath.Base(output))
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, src, 0o644); err != nil {
		return err
	}

	if generateOpts.verbose {
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", output)
	}
	return nil
}
