package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcward/promptsmith/chat"
	"github.com/marcward/promptsmith/config"
	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/providers"
	"github.com/marcward/promptsmith/utils"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Interactive order-taking bot with tool-based total calculation",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger := utils.NewLogger(cfg.LogLevel)

		gateway, err := llm.NewLLM(cfg, logger, providers.NewProviderRegistry())
		if err != nil {
			return err
		}
		bot, err := chat.NewBot(gateway, cfg.Model, logger)
		if err != nil {
			return err
		}

		fmt.Println("Welcome! Ask about the menu or place an order. Type 'quit' to exit.")
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				break
			}
			input := strings.TrimSpace(scanner.Text())
			if input == "" {
				continue
			}
			if strings.EqualFold(input, "quit") || strings.EqualFold(input, "exit") {
				break
			}
			reply, err := bot.Send(cmd.Context(), input)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				continue
			}
			fmt.Println(reply)
		}
		return scanner.Err()
	},
}
