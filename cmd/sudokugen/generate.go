package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/generator"
	"svw.info/sudokugen/internal/solver"
)

var generateFlags struct {
	difficulty string
	seed       int64
	count      int
	solution   bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate puzzles and print them to stdout",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateFlags.difficulty, "difficulty", "easy", "easy|medium|hard|expert")
	generateCmd.Flags().Int64Var(&generateFlags.seed, "seed", 0, "rng seed (0 = time-based)")
	generateCmd.Flags().IntVar(&generateFlags.count, "count", 1, "number of puzzles")
	generateCmd.Flags().BoolVar(&generateFlags.solution, "solution", false, "print the solution too")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	g := generator.New(solver.NewBacktracking())
	diff := domain.ParseDifficulty(generateFlags.difficulty)

	seed := generateFlags.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	for i := 0; i < generateFlags.count; i++ {
		p, st, err := g.Generate(cmd.Context(), seed+int64(i), diff)
		if err != nil {
			return err
		}
		fmt.Printf("# %s seed=%d empty=%d nodes=%d dur=%s\n",
			diff, p.Seed, p.Board.CountEmpty(), st.Nodes, st.Duration.Round(time.Microsecond))
		printGrid(p.Board)
		if generateFlags.solution {
			fmt.Println("# solution")
			printGrid(p.Solution)
		}
	}
	return nil
}

func printGrid(g domain.Grid) {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		if r > 0 && r%3 == 0 {
			b.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c > 0 && c%3 == 0 {
				b.WriteString("| ")
			}
			if g[r][c] == domain.Empty {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", g[r][c])
			}
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}
