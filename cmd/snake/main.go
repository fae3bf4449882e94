// snake is a terminal snake game.
//
// Usage:
//
//	snake         - Play with solid walls
//	snake easy    - Play with wrap-around walls
//
// Controls:
//
//	W/A/S/D, arrows  - Steer
//	Space/Enter      - Pause / resume
//	9                - Toggle speed-up with length
//	E                - Toggle wrap-around walls
//	0                - Grow by one segment
//	Q/Ctrl+C         - Quit
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/report"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake [easy]",
	Short: "Snake in your terminal",
	Long: `Steer the snake to the food. Every piece eaten adds a segment.
Running into a wall or into yourself costs a life; the game ends when
no lives are left.

Passing "easy" makes the walls wrap around. Any other argument is ignored.

Examples:
  snake
  snake easy`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	Run:                runSnake,
}

func runSnake(cmd *cobra.Command, args []string) {
	cfg := config.Load()

	display, err := tui.InitDisplay(cfg.Board.Width, cfg.Board.Height, cfg.Board.TileSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	status := tui.NewStatusLine(display.Columns())
	game, err := snake.New(cfg, display, report.New(status), snake.Options{
		Easy: isEasy(args, cfg.Rules.EasyKeyword),
		Seed: time.Now().UnixNano(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, display, status)

	report.New(os.Stdout).Final(game.Snapshot())

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// isEasy reports whether any argument asks for easy mode.
func isEasy(args []string, keyword string) bool {
	for _, arg := range args {
		if arg == keyword {
			return true
		}
	}
	return false
}
