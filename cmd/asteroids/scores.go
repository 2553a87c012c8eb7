package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/asteroids/internal/platform/tui"
)

var (
	flagReset bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score",
	Long: `Display the stored best score.

In a terminal the scores open in an interactive table (x clears the selected
score). Use --plain for script-friendly output.

Examples:
  asteroids scores
  asteroids scores --plain
  asteroids scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Forget the stored best score")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	a, err := newApp(setupOptions{store: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	if a.store == nil {
		fmt.Fprintln(os.Stderr, "Error opening scores database, see the log above.")
		a.Close()
		os.Exit(1)
	}

	key := a.cfg.Gameplay.HighScoreKey

	if flagReset {
		if err := a.store.ClearHighScore(key); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing score: %v\n", err)
			a.Close()
			os.Exit(1)
		}
		fmt.Println("Best score cleared.")
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		height := 24
		if _, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			height = h
		}
		if err := tui.RunScoreboard(a.store, []string{key}, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			a.Close()
			os.Exit(1)
		}
		return
	}

	entry, ok, err := a.store.Entry(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving score: %v\n", err)
		a.Close()
		os.Exit(1)
	}

	fmt.Println("Best Score - Asteroids")
	fmt.Println()
	if !ok {
		fmt.Println("No score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'asteroids play' to set the first high score!")
		return
	}
	fmt.Printf("  %-10s  %s\n", "Score", "Date")
	fmt.Printf("  %-10s  %s\n", "-----", "----")
	fmt.Printf("  %-10d  %s\n", entry.Score, entry.UpdatedAt.Local().Format("2006-01-02 15:04"))
}
