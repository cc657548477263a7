package main

import (
	"fmt"
	"strconv"

	"hellogo/pkg/hello"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Print the sum of two integers",
	Long: `Print the sum of two integers in the fixture's report format.

Example:
  hello add 2 2    # prints "2 + 2 = 4"`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

var multiplyCmd = &cobra.Command{
	Use:   "multiply A B",
	Short: "Print the product of two integers",
	Long: `Print the product of two integers in the fixture's report format.

Example:
  hello multiply 3 4    # prints "3 * 4 = 12"`,
	Args: cobra.ExactArgs(2),
	RunE: runMultiply,
}

var factorialCmd = &cobra.Command{
	Use:   "factorial N",
	Short: "Print the factorial of a non-negative integer",
	Long: `Print N! in the fixture's report format. Results are exact up
to N = 20; beyond that the product wraps.

Example:
  hello factorial 5    # prints "5! = 120"`,
	Args: cobra.ExactArgs(1),
	RunE: runFactorial,
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(multiplyCmd)
	rootCmd.AddCommand(factorialCmd)
}

// parseOperands converts the two positional arguments to integers.
func parseOperands(args []string) (int, int, error) {
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid integer %q: %w", args[0], err)
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid integer %q: %w", args[1], err)
	}
	return a, b, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, b, err := parseOperands(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d + %d = %d\n", a, b, hello.Add(a, b))
	return err
}

func runMultiply(cmd *cobra.Command, args []string) error {
	a, b, err := parseOperands(args)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d * %d = %d\n", a, b, hello.Multiply(a, b))
	return err
}

func runFactorial(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid non-negative integer %q: %w", args[0], err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d! = %d\n", n, hello.Factorial(uint(n)))
	return err
}
