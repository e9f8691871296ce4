package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avolabs/avoterm/internal/brand"
)

var brandsCmd = &cobra.Command{
	Use:   "brands",
	Short: "List the built-in brands",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := brand.Names()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, name := range names {
			b, err := brand.Load(name)
			if err != nil {
				return err
			}
			marker := " "
			if b.Name == theme.Name {
				marker = "*"
			}
			fmt.Fprintf(out, "%s %-8s %s (%s)\n", marker, name, b.Name, b.Tagline)
		}
		return nil
	},
}
