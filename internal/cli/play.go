package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"svw.info/dominosum/internal/config"
	"svw.info/dominosum/internal/domain"
	"svw.info/dominosum/internal/game"
	"svw.info/dominosum/internal/generator"
	"svw.info/dominosum/internal/hint"
	"svw.info/dominosum/internal/usecase"
)

// one color per domino id so a placed pair reads as a piece
var dominoColors = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
}

// PlayCmd returns the interactive terminal game.
func PlayCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the puzzle in the terminal",
		Long: `Interactive domino block-sum puzzle.

Commands:
  pick N      select domino N from the pool
  cell R C    click a board cell (two clicks place the selected domino)
  undo        take back the latest placement
  hint        reveal a tile from the hidden solution
  restart     start over with a fresh puzzle
  quit        leave the game`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			gen := generator.NewBacktracking()
			if cfg.GenRetries > 0 {
				gen.MaxRetries = cfg.GenRetries
			}
			uc := usecase.NewService(gen, hint.NewSolution())

			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			p, _, err := uc.NewGame(cmd.Context(), seed)
			if err != nil {
				return fmt.Errorf("new game: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Cover the 4x4 grid with all eight dominoes so every 2x2 block hits its target.")
			printSnapshot(out, p.Snapshot())

			sc := bufio.NewScanner(os.Stdin)
			for {
				fmt.Fprint(out, "> ")
				if !sc.Scan() {
					return sc.Err()
				}
				fields := strings.Fields(sc.Text())
				if len(fields) == 0 {
					continue
				}
				switch fields[0] {
				case "quit", "exit", "q":
					return nil
				case "pick":
					if len(fields) != 2 {
						fmt.Fprintln(out, "usage: pick N")
						continue
					}
					n, err := strconv.Atoi(fields[1])
					if err != nil {
						fmt.Fprintln(out, "usage: pick N")
						continue
					}
					up := p.SelectDomino(n)
					fmt.Fprintln(out, up.Message)
				case "cell":
					if len(fields) != 3 {
						fmt.Fprintln(out, "usage: cell R C")
						continue
					}
					r, err1 := strconv.Atoi(fields[1])
					c, err2 := strconv.Atoi(fields[2])
					if err1 != nil || err2 != nil {
						fmt.Fprintln(out, "usage: cell R C")
						continue
					}
					up := p.ClickCell(r, c)
					fmt.Fprintln(out, up.Message)
					printSnapshot(out, up.Snapshot)
				case "undo":
					up := p.Undo()
					fmt.Fprintln(out, up.Message)
					printSnapshot(out, up.Snapshot)
				case "hint":
					hh, found, err := uc.Hint(cmd.Context(), p)
					if err != nil {
						return err
					}
					if !found {
						fmt.Fprintln(out, "no hint available here: try an undo first")
						continue
					}
					fmt.Fprintln(out, hh.Message)
				case "restart":
					up, _, err := uc.Restart(cmd.Context(), p, time.Now().UnixNano())
					if err != nil {
						return fmt.Errorf("restart: %w", err)
					}
					fmt.Fprintln(out, up.Message)
					printSnapshot(out, up.Snapshot)
				default:
					fmt.Fprintln(out, "commands: pick N | cell R C | undo | hint | restart | quit")
				}
				if p.Solved() {
					color.New(color.FgGreen, color.Bold).Fprintln(out, "You solved it!")
				}
			}
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "puzzle seed (0 picks a random one)")
	return cmd
}

func printSnapshot(out io.Writer, s game.Snapshot) {
	fmt.Fprintf(out, "targets: %d %d / %d %d  (top-left, top-right / bottom-left, bottom-right)\n",
		s.Targets[0], s.Targets[1], s.Targets[2], s.Targets[3])
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			v := s.Board.Values[r][c]
			if v == 0 {
				fmt.Fprint(out, " . ")
				continue
			}
			owner := int(s.Board.Owners[r][c])
			cc := dominoColors[owner%len(dominoColors)]
			cc.Fprintf(out, " %d ", v)
		}
		fmt.Fprintln(out)
	}
	fmt.Fprint(out, "pool:")
	for _, d := range s.Pool {
		fmt.Fprintf(out, "  [%d] %d|%d", d.ID, d.A, d.B)
	}
	fmt.Fprintln(out)
	if len(s.WrongBlocks) > 0 {
		fmt.Fprintf(out, "blocks off target: %v\n", s.WrongBlocks)
	}
}
