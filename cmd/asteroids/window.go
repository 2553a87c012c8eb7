package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/asteroids/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Space            - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Q                - Quit

Examples:
  asteroids window
  asteroids window --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 800x600 playfield")
}

func runWindow(cmd *cobra.Command, args []string) {
	a, err := newApp(setupOptions{store: true, sound: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := window.Run(a.newGame(), window.Options{
		Runtime: runtimeConfig(),
		Scale:   flagScale,
		Logger:  a.logger,
		Sound:   a.sound,
	})

	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
