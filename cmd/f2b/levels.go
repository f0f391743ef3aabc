package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/f2b/internal/config"
	"github.com/vovakirdan/f2b/internal/game"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the start levels",
	Long:  `Shows the level indexes and aliases accepted by --level and --alt-level.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := game.DefaultLevels()

	fmt.Println("Start levels:")
	fmt.Println()

	fmt.Printf("  %-5s  %-5s  %s\n", "Index", "Alias", "Room")
	fmt.Printf("  %-5s  %-5s  %s\n", "-----", "-----", "----")

	for i, alias := range config.LevelAliases {
		fmt.Printf("  %-5d  %-5s  %dx%d\n", i, alias, levels[i].Width, levels[i].Height)
	}

	fmt.Println()
	fmt.Println("Run 'f2b --level <index|alias>' or 'f2b --alt-level <alias>' to start there.")
}
