package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/asteroids/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Space            - Fire
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Copy the current frame to the clipboard
  ?                - Toggle help
  Q/Ctrl+C         - Quit

Terminals report key presses but not releases, so a held key counts as
released shortly after its auto-repeat stops.

Difficulty options:
  easy   - Five lives, smaller belts
  normal - Default tuning
  hard   - Two lives, larger and faster belts
  fixed  - Obstacle speed never increases

Examples:
  asteroids play                      # pick a difficulty from the menu
  asteroids play --difficulty easy
  asteroids play --seed 42 --fps 60
  asteroids play --config ./my-asteroids.yaml --log-file /tmp/asteroids.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Ask for a difficulty unless one was given
	if flagDifficulty == "" && flagConfig == "" {
		preset, err := tui.RunDifficultySelector(width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if preset == "" {
			return
		}
		flagDifficulty = string(preset)
	}

	a, err := newApp(setupOptions{quietLog: true, store: true, sound: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(a.newGame(), tui.Options{
		Runtime: runtimeConfig(),
		Width:   width,
		Height:  height,
		Logger:  a.logger,
		Sound:   a.sound,
	})

	// Close store before potential exit
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
