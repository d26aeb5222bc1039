package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/meshcheck/pkg/checks"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered checks",
	Long:  "Show every registered check with its category and result kind.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	registry, err := checks.NewRegistry(checks.DefaultConfig())
	if err != nil {
		return err
	}

	fmt.Printf("%-22s %-22s %-10s %s\n", "ID", "LABEL", "CATEGORY", "KIND")
	for _, id := range registry.IDs() {
		check, _ := registry.Get(id)
		fmt.Printf("%-22s %-22s %-10s %s\n", check.ID, check.Label, check.Category, check.Kind)
	}
	return nil
}
