// SPDX-License-Identifier: MIT

// Command matrixcalc is the terminal shell around the calculator core.
//
// Usage mirrors the original utility:
//
//	matrixcalc                              # demo: multiply the built-in pair
//	matrixcalc '<A_json>' '<B_json>'        # multiply A×B, print the grid
//	matrixcalc mul|add|sub '<A>' '<B>'      # dual-format result
//	matrixcalc det|rank|transpose '<A>'     # unary operations
//
// Operands accept both input grammars (JSON array-of-arrays or
// whitespace rows). Failures print as "Error: <message>" on stderr with
// a non-zero exit code.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Kirill20202/matrix-multiplication/calc"
	"github.com/Kirill20202/matrix-multiplication/matrix"
	"github.com/Kirill20202/matrix-multiplication/parse"
	"github.com/Kirill20202/matrix-multiplication/render"
)

var (
	// Global flags
	verbose bool

	// Logger; a no-op unless --verbose is set.
	logger = zap.NewNop()
)

// rootCmd multiplies two JSON matrices, or runs the built-in demo when
// invoked without arguments. Output is the plain whitespace grid, like
// the original CLI; the subcommands produce the dual-format string.
var rootCmd = &cobra.Command{
	Use:   "matrixcalc ['<A_json>' '<B_json>']",
	Short: "Dense matrix calculator (multiply, add, subtract, det, rank)",
	Long: `matrixcalc is a small dense-matrix calculator.

Without arguments it runs a demo, multiplying
  [[1,2,3],[4,5,6]] by [[7,8],[9,10],[11,12]].
With two arguments it treats them as matrices (JSON array-of-arrays or
whitespace rows) and prints their product as a whitespace grid.

Subcommands expose the full operation set with dual-format output.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected zero or two matrix arguments, got %d", len(args))
		}
		return nil
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if !verbose {
			return
		}
		// Initialize a real logger only on demand; the calculator core
		// itself stays silent.
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		if l, err := config.Build(); err == nil {
			logger = l
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		left, right := calc.DemoLeft, calc.DemoRight
		if len(args) == 2 {
			left, right = args[0], args[1]
		}
		logger.Debug("multiplying", zap.String("left", left), zap.String("right", right))

		a, err := parse.Matrix(left, "left")
		if err != nil {
			return err
		}
		b, err := parse.Matrix(right, "right")
		if err != nil {
			return err
		}
		prod, err := matrix.Mul(a, b)
		if err != nil {
			return err
		}
		grid, err := render.Grid(prod)
		if err != nil {
			return err
		}
		cmd.Println(grid)

		return nil
	},
}

// newBinaryCmd builds a two-operand subcommand delegating to calc.Eval.
func newBinaryCmd(use string, op calc.Op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " '<A>' '<B>'",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("dispatch", zap.String("op", string(op)))
			out, err := calc.Eval(op, args[0], args[1])
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
}

// newUnaryCmd builds a one-operand subcommand delegating to calc.Eval.
func newUnaryCmd(use string, op calc.Op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " '<A>'",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("dispatch", zap.String("op", string(op)))
			out, err := calc.Eval(op, args[0], "")
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newBinaryCmd("mul", calc.OpMultiply, "Multiply A×B (scalar B multiplies elementwise)"),
		newBinaryCmd("add", calc.OpAdd, "Add A+B (equal shapes)"),
		newBinaryCmd("sub", calc.OpSubtract, "Subtract A−B (equal shapes)"),
		newUnaryCmd("det", calc.OpDeterminant, "Determinant of a square matrix"),
		newUnaryCmd("rank", calc.OpRank, "Rank via pivoted elimination"),
		newUnaryCmd("transpose", calc.OpTranspose, "Transpose of A"),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
