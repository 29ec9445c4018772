/*
Copyright 2024 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// decimalc evaluates a single fixed-precision decimal expression from
// the command line. It exists to poke at the arithmetic kernels without
// a query engine around them:
//
//	decimalc --precision 10 --scale 9 '1 / 3'
//	decimalc --precision 38 --scale 2 --no-round '1.23 + 4.5'
//
// Operand scales are inferred from the literals; the result precision
// and scale come from the flags, standing in for the type checker that
// normally chooses them.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"vitess.io/fixeddecimal/go/decimal"
	"vitess.io/fixeddecimal/go/log"
)

var (
	precision int
	scale     int
	noRound   bool

	root = &cobra.Command{
		Use:   "decimalc --precision <p> --scale <s> '<lhs> <op> <rhs>'",
		Short: "evaluate a fixed-precision decimal expression",
		Long: "decimalc parses two decimal literals, applies +, -, x, /, % or cmp\n" +
			"at the requested result precision and scale, and prints the exact\n" +
			"result. Overflow prints \"overflow\"; division by zero prints \"NaN\".",
		Args: cobra.ExactArgs(1),
		RunE: run,
	}
)

func init() {
	root.Flags().IntVar(&precision, "precision", 38, "result precision, in [1, 38]")
	root.Flags().IntVar(&scale, "scale", 0, "result scale, in [0, precision]")
	root.Flags().BoolVar(&noRound, "no-round", false, "truncate instead of rounding half away from zero")
	log.RegisterFlags(root.PersistentFlags())
}

func run(cmd *cobra.Command, args []string) error {
	defer log.Flush()
	if precision < 1 || precision > decimal.MaxPrecision || scale < 0 || scale > precision {
		return fmt.Errorf("invalid result type decimal(%d,%d)", precision, scale)
	}

	fields := strings.Fields(args[0])
	if len(fields) != 3 {
		return fmt.Errorf("expression must be '<lhs> <op> <rhs>', got %q", args[0])
	}
	lhs, op, rhs := fields[0], fields[1], fields[2]

	x, xScale, err := parseOperand(lhs)
	if err != nil {
		return err
	}
	y, yScale, err := parseOperand(rhs)
	if err != nil {
		return err
	}
	round := !noRound
	log.V(1).Infof("evaluating %s(scale %d) %s %s(scale %d) as decimal(%d,%d)",
		lhs, xScale, op, rhs, yScale, precision, scale)

	var (
		result   decimal.Decimal16
		isNaN    bool
		overflow bool
	)
	resultScale := scale
	switch op {
	case "+":
		result, overflow = x.Add(xScale, y, yScale, precision, resultScale, round)
	case "-":
		result, overflow = x.Sub(xScale, y, yScale, precision, resultScale, round)
	case "x", "*":
		if xScale+yScale < resultScale {
			return fmt.Errorf("multiply needs scale <= %d for these operands", xScale+yScale)
		}
		result, overflow = x.Mul(xScale, y, yScale, precision, resultScale, round)
	case "/":
		if resultScale+yScale < xScale {
			return fmt.Errorf("divide needs scale >= %d for these operands", xScale-yScale)
		}
		result, isNaN, overflow = x.Div(xScale, y, yScale, precision, resultScale, round)
	case "%":
		// The remainder is defined at the larger operand scale.
		resultScale = max(xScale, yScale)
		result, isNaN = x.Mod(xScale, y, yScale, precision, resultScale)
	case "cmp":
		fmt.Fprintln(cmd.OutOrStdout(), x.Cmp(xScale, y, yScale))
		return nil
	default:
		return fmt.Errorf("unknown operator %q", op)
	}

	switch {
	case isNaN:
		fmt.Fprintln(cmd.OutOrStdout(), "NaN")
	case overflow:
		fmt.Fprintln(cmd.OutOrStdout(), "overflow")
	default:
		fmt.Fprintln(cmd.OutOrStdout(), result.ToString(precision, resultScale))
	}
	return nil
}

// parseOperand reads a literal at maximum precision, inferring its scale
// from the digits after the point.
func parseOperand(s string) (decimal.Decimal16, int, error) {
	operandScale := 0
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		operandScale = len(s) - dot - 1
	}
	if operandScale > decimal.MaxPrecision {
		return decimal.Decimal16{}, 0, fmt.Errorf("literal %q has more than 38 fractional digits", s)
	}
	v, overflow, err := decimal.Parse16(s, decimal.MaxPrecision, operandScale, true)
	if err != nil {
		return decimal.Decimal16{}, 0, err
	}
	if overflow {
		return decimal.Decimal16{}, 0, fmt.Errorf("literal %q does not fit 38 digits", s)
	}
	return v, operandScale, nil
}

func main() {
	if err := root.Execute(); err != nil {
		log.Exitf("%v", err)
	}
}
