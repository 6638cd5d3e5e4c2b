package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcward/promptsmith/config"
	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/menu"
	"github.com/marcward/promptsmith/providers"
	"github.com/marcward/promptsmith/utils"
)

var askShowStats bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a single menu question with step-by-step reasoning",
	Args:  cobra.MinimumNArgs(1),
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
		assistant := menu.NewAssistant(gateway, logger)
		assistant.SetCacheReporting(cfg.EnableCaching)

		answered, err := assistant.Answer(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}

		fmt.Println(answered.Response.FinalResponse)
		if askShowStats && answered.Usage != nil {
			u := answered.Usage
			fmt.Printf("\nTokens: %d prompt (%d cached, %.0f%% hit), %d completion, %.2fs\n",
				u.PromptTokens, u.CachedTokens, u.CacheHitRatio()*100,
				u.CompletionTokens, answered.Latency.Seconds())
		}
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askShowStats, "stats", false, "print token usage and cache statistics")
}
