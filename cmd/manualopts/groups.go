package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List presentation groups and their options",
	RunE:  runGroups,
}

func runGroups(cmd *cobra.Command, args []string) error {
	schema, err := compileSchema(cmd.Context(), cmd)
	if err != nil {
		return err
	}
	groups, err := schema.BuildGroups()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, group := range groups {
		marker := ""
		if group.DefaultOpen {
			marker = " (open)"
		}
		fmt.Fprintf(out, "%s%s\n", group.Name, marker)
		for _, spec := range group.Options {
			fmt.Fprintf(out, "  %-28s %s\n", spec.Name, spec.Kind)
		}
	}
	return nil
}
