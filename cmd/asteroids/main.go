// asteroids is an arcade shooter for the terminal and the desktop.
//
// Usage:
//
//	asteroids play            - Play in the terminal
//	asteroids window          - Play in a desktop window
//	asteroids scores          - Show the best score
//	asteroids scores --reset  - Forget the best score
//	asteroids simulate        - Run headless sessions with the autopilot
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.asteroids/scores.db)
//	--config <path>       - Load tuning from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - shoot rocks in your terminal or a window",
	Long: `Asteroids is a wrap-around arcade shooter. Steer the ship, break the
belt into smaller rocks and clear every level without getting hit.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  scores    - View or reset the best score
  simulate  - Run headless sessions with the autopilot

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids window --scale 1.5
  asteroids scores
  asteroids simulate --ticks 9000 --runs 5`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (simulation steps per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.asteroids/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound effects")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
