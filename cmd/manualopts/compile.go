package main

import (
	"os"

	"github.com/spf13/cobra"
)

var flagOut string

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Print the compiled option schema as JSON",
	RunE:  runCompile,
}

func init() {
	compileCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Write the schema to a file instead of stdout")
}

func runCompile(cmd *cobra.Command, args []string) error {
	schema, err := compileSchema(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	doc, err := schema.ExportJSON()
	if err != nil {
		return err
	}
	doc = append(doc, '\n')

	if flagOut == "" {
		_, err = cmd.OutOrStdout().Write(doc)
		return err
	}
	return os.WriteFile(flagOut, doc, 0o644)
}
