package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/f2b/internal/config"
	"github.com/vovakirdan/f2b/internal/platform/tui"
	"github.com/vovakirdan/f2b/internal/storage"
)

var flagSlotsPlain bool

var slotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Show saved games",
	Long: `Browse the save slots in the save path.

In a terminal the browser shows a preview of each slot and can delete
slots. With --plain, or when output is not a terminal, the slots are
printed as a table.

Examples:
  f2b slots
  f2b slots --savepath ./saves --plain`,
	Args: cobra.NoArgs,
	RunE: runSlots,
}

func init() {
	slotsCmd.Flags().BoolVar(&flagSlotsPlain, "plain", false, "Print the slots instead of browsing them")
}

func runSlots(cmd *cobra.Command, _ []string) error {
	_, cfg, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	files, err := storage.ResolveFiles(cfg.DataPath, cfg.SavePath, cfg.Language, cfg.Voice)
	if err != nil {
		return err
	}
	store, err := storage.Open(files.SavePath(storage.DefaultFile))
	if err != nil {
		return err
	}
	defer store.Close()

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if flagSlotsPlain || termErr != nil {
		return printSlots(store)
	}
	return tui.RunSlots(store, width, height, newLogger(os.Stderr, "f2b"))
}

func printSlots(store *storage.Store) error {
	slots, err := store.ListSlots()
	if err != nil {
		return err
	}

	fmt.Println("Saved games")
	fmt.Println()

	if len(slots) == 0 {
		fmt.Println("No saved games yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-5s  %-7s  %-4s  %s\n", "Slot", "Level", "Size", "Shot", "Saved")
	fmt.Printf("  %-4s  %-5s  %-7s  %-4s  %s\n", "----", "-----", "----", "----", "-----")

	for _, s := range slots {
		level := "?"
		if s.Level >= 0 && s.Level < len(config.LevelAliases) {
			level = config.LevelAliases[s.Level]
		}
		shot := "no"
		if s.HasScreenshot {
			shot = "yes"
		}
		fmt.Printf("  %-4d  %-5s  %-7d  %-4s  %s\n", s.Slot, level, s.Size, shot, s.SavedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
