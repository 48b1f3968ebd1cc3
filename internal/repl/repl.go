// Package repl runs the line-oriented interactive draft session.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/skrey/draftbot/internal/service"
)

const banner = `======================================================================
FANTASY BASEBALL DRAFT TOOL
======================================================================

Commands:
  draft <name>  - Draft a player to your team
  take <name>   - Mark a player as drafted by opponent
  top [n]       - Show top N available players (default 25)
  roster        - Show your current roster
  cats          - Show top players by category need
  search <term> - Search for a player by name
  quit          - Exit the tool
======================================================================`

// Session reads commands one line at a time and prints each command's
// report. One session is the single actor mutating draft state.
type Session struct {
	draftService *service.DraftService
	in           io.Reader
	out          io.Writer
}

// NewSession builds a session over the given streams.
func NewSession(draftService *service.DraftService, in io.Reader, out io.Writer) *Session {
	return &Session{draftService: draftService, in: in, out: out}
}

// Run blocks processing commands until quit, end of input, or context
// cancellation (the process interrupt).
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, banner)

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		scanErr <- scanner.Err()
		close(lines)
	}()

	for {
		fmt.Fprint(s.out, "\n> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out, "\nGoodbye!")
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(s.out, "\nGoodbye!")
				return <-scanErr
			}
			if s.dispatch(line) {
				fmt.Fprintln(s.out, "Goodbye!")
				return nil
			}
		}
	}
}

// dispatch handles one command line and reports whether the session should
// end. Unrecognized input prints a usage hint and changes nothing.
func (s *Session) dispatch(line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	parts := strings.SplitN(line, " ", 2)
	action := strings.ToLower(parts[0])
	arg := ""
	if len(parts) > 1 {
		arg = strings.TrimSpace(parts[1])
	}

	switch action {
	case "quit", "exit":
		return true
	case "draft":
		if arg == "" {
			fmt.Fprintln(s.out, "  Usage: draft <player name>")
			return false
		}
		s.report(s.draftService.Draft(arg))
	case "take":
		if arg == "" {
			fmt.Fprintln(s.out, "  Usage: take <player name>")
			return false
		}
		s.report(s.draftService.Take(arg))
	case "top":
		n := service.DefaultTopN
		if arg != "" {
			parsed, err := strconv.Atoi(arg)
			if err != nil || parsed <= 0 {
				fmt.Fprintln(s.out, "  Usage: top [n]")
				return false
			}
			n = parsed
		}
		fmt.Fprintln(s.out, s.draftService.TopAvailable(n))
	case "roster":
		fmt.Fprintln(s.out, s.draftService.RosterSummary())
	case "cats":
		fmt.Fprintln(s.out, s.draftService.CategoryNeeds())
	case "search":
		if arg == "" {
			fmt.Fprintln(s.out, "  Usage: search <term>")
			return false
		}
		fmt.Fprintln(s.out, s.draftService.Search(arg))
	case "help":
		fmt.Fprintln(s.out, banner)
	default:
		fmt.Fprintf(s.out, "  Unknown command: %s\n", action)
		fmt.Fprintln(s.out, "  Type 'quit' to exit, or use: draft, take, top, roster, cats, search")
	}
	return false
}

func (s *Session) report(msg string, err error) {
	if err != nil {
		fmt.Fprintf(s.out, "  %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "  ✓ %s\n", msg)
}
