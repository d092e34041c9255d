package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board presets",
	Long:  `Shows the built-in board presets. Pick one with --preset <id>.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	presets := registry.List()

	fmt.Println("Available presets:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "ID", "Title", "Variant")
	fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, "--", "-----", "-------")

	for _, p := range presets {
		fmt.Printf("  %-*s  %-20s  %s\n", maxIDLen, p.ID, p.Title, p.Rules.Variant())
	}

	fmt.Println()
	fmt.Println("Run 't2048 play --preset <id>' to play one.")
}
