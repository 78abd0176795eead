package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/play"
)

type session struct {
	game *play.Game
	out  io.Writer
}

// run applies commands read from lines until the player quits, the input
// ends or ctx is cancelled.
func (s *session) run(ctx context.Context, lines <-chan string) error {
	s.render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			err := executeCommand(s.game, line)
			if errors.Is(err, errQuit) {
				return err
			}
			if err != nil {
				fmt.Fprintf(s.out, "error: %s\n", err)
				continue
			}
			if strings.TrimSpace(line) == "?" {
				fmt.Fprintln(s.out, help)
				continue
			}
			s.render()
		}
	}
}

func (s *session) render() {
	b := s.game.Board()
	fmt.Fprint(s.out, b.String())
	switch s.game.Status() {
	case play.Won:
		fmt.Fprintln(s.out, "You've won!")
	case play.Lost:
		fmt.Fprintln(s.out, "You've lost!")
	default:
		fmt.Fprintf(s.out, "%dx%d, %d mines\n", b.Width(), b.Height(), b.MineCount())
	}
}
