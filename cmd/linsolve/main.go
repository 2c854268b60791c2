// Command linsolve reduces a system of linear equations given on the
// command line and prints its triangular form, RREF, or solution.
//
// Each argument is one equation: comma-separated decimal coefficients,
// '=', then the constant term. For example, the system
//
//	x + y + z = 1
//	y + z     = 2
//
// is written as:
//
//	linsolve --solve "1,1,1=1" "0,1,1=2"
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/linalg/hyperplane"
	"github.com/katalvlaran/linalg/linsys"
)

func main() {
	app := &cli.App{
		Name:      "linsolve",
		Usage:     "reduce and solve linear systems over exact decimals",
		ArgsUsage: `"c1,c2,...=k" ["c1,c2,...=k" ...]`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "triangular",
				Aliases: []string{"t"},
				Usage:   "print the triangular (row-echelon) form",
			},
			&cli.BoolFlag{
				Name:    "rref",
				Aliases: []string{"r"},
				Usage:   "print the reduced row-echelon form (default)",
			},
			&cli.BoolFlag{
				Name:    "solve",
				Aliases: []string{"s"},
				Usage:   "print the unique solution, or the no/infinite solutions verdict",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("at least one equation is required")
	}

	eqs := make([]hyperplane.Hyperplane, c.NArg())
	for i, arg := range c.Args().Slice() {
		eq, err := parseEquation(arg)
		if err != nil {
			return errors.Wrapf(err, "equation %d (%q)", i+1, arg)
		}
		eqs[i] = eq
	}
	system, err := linsys.New(eqs)
	if err != nil {
		return err
	}

	switch {
	case c.Bool("triangular"):
		t, err := system.TriangularForm()
		if err != nil {
			return err
		}
		fmt.Println(t)
	case c.Bool("solve"):
		return printSolution(system)
	default:
		r, err := system.RREF()
		if err != nil {
			return err
		}
		fmt.Println(r)
	}

	return nil
}

// parseEquation turns "c1,c2,...=k" into a Hyperplane.
func parseEquation(arg string) (hyperplane.Hyperplane, error) {
	lhs, rhs, found := strings.Cut(arg, "=")
	if !found {
		return hyperplane.Hyperplane{}, errors.New("missing '=' separator")
	}
	coords := strings.Split(lhs, ",")
	for i := range coords {
		coords[i] = strings.TrimSpace(coords[i])
	}

	return hyperplane.FromStrings(coords, strings.TrimSpace(rhs))
}

func printSolution(system *linsys.LinearSystem) error {
	solution, err := system.Solve()
	switch {
	case errors.Is(err, linsys.ErrNoSolutions):
		fmt.Println("no solutions")

		return nil
	case errors.Is(err, linsys.ErrInfiniteSolutions):
		fmt.Println("infinitely many solutions")

		return nil
	case err != nil:
		return err
	}

	for i, c := range solution.Coords() {
		fmt.Printf("x_%d = %s\n", i+1, c.String())
	}

	return nil
}
