package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "promptsmith",
	Short: "Iterative prompt optimization and menu assistant demos",
	Long: `promptsmith runs an LLM-as-judge optimization loop that rewrites a
system prompt over several rounds, scoring each candidate against a gold
corpus. It also ships two small assistants built on the same gateway: a
function-calling order bot and a structured menu Q&A assistant.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(askCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
