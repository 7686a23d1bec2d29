package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/match3/internal/config"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long:  `Shows the difficulty presets accepted by --difficulty and what they change.`,
	Run:   runPresets,
}

func runPresets(cmd *cobra.Command, args []string) {
	presets := config.Presets()

	fmt.Println("Difficulty presets:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range presets {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %5s  %6s  %s\n", maxNameLen, "Name", "Tiles", "Round", "Description")
	fmt.Printf("  %-*s  %5s  %6s  %s\n", maxNameLen, "----", "-----", "-----", "-----------")

	for _, p := range presets {
		fmt.Printf("  %-*s  %5d  %5ds  %s\n", maxNameLen, p.Name, p.TileTypes, p.DurationSeconds, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'match3 play --difficulty <name>' to use a preset.")
}
