package main

import (
	"fmt"

	"hellogo/pkg/hello"

	"github.com/spf13/cobra"
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Print the fixture greeting",
	Args:  cobra.NoArgs,
	RunE:  runGreet,
}

func init() {
	rootCmd.AddCommand(greetCmd)
}

func runGreet(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), hello.GetGreeting())
	return err
}
