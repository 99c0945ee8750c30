// headsup-odds estimates hand equity against a random opponent, the same
// Monte Carlo estimate the table uses.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"

	"headsup/internal/deck"
	"headsup/internal/evaluator"
	"headsup/internal/randutil"
)

type CLI struct {
	Hand       string `arg:"" help:"Hole cards, e.g. 'AcKd'" required:""`
	Board      string `short:"b" help:"Community cards, e.g. 'Td7s8h'"`
	Iterations int    `short:"i" help:"Number of Monte Carlo samples" default:"100000"`
	Seed       int64  `help:"Random seed for reproducible results (0 uses the clock)"`
}

var (
	handStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	equityStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("headsup-odds"),
		kong.Description("Monte Carlo equity for a heads-up hold'em hand"),
	)

	hole, err := deck.ParseCards(cli.Hand)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error parsing hand: %v\n", err)
		ctx.Exit(1)
	}
	if len(hole) != 2 {
		fmt.Fprintf(os.Stderr, "hand must be exactly 2 cards, got %d\n", len(hole))
		ctx.Exit(1)
	}

	var board []deck.Card
	if cli.Board != "" {
		board, err = deck.ParseCards(cli.Board)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error parsing board: %v\n", err)
			ctx.Exit(1)
		}
		if len(board) > 5 {
			fmt.Fprintln(os.Stderr, "board cannot have more than 5 cards")
			ctx.Exit(1)
		}
	}

	rng := randutil.New(cli.Seed)
	start := time.Now()
	equity, err := evaluator.EstimateEquityParallel(hole, board, cli.Iterations, rng)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		ctx.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("%s  vs random hand\n", handStyle.Render(formatCards(hole)))
	if len(board) > 0 {
		fmt.Printf("board %s\n", formatCards(board))
	}
	fmt.Printf("equity %s\n", equityStyle.Render(fmt.Sprintf("%.1f%%", equity*100)))
	fmt.Println(dimStyle.Render(fmt.Sprintf("%d samples in %s", cli.Iterations, elapsed.Round(time.Millisecond))))
}

func formatCards(cards []deck.Card) string {
	out := ""
	for i, c := range cards {
		if i > 0 {
			out += " "
		}
		out += c.String()
	}
	return out
}
