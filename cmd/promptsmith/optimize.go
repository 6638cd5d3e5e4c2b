package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/marcward/promptsmith/config"
	"github.com/marcward/promptsmith/corpus"
	"github.com/marcward/promptsmith/llm"
	"github.com/marcward/promptsmith/optimizer"
	"github.com/marcward/promptsmith/providers"
	"github.com/marcward/promptsmith/utils"
)

var (
	optCorpusPath string
	optOutputDir  string
	optRounds     int
	optPromptFile string
	optRPS        float64
	optStopEarly  bool
	optDebug      bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Run the LLM-as-judge prompt optimization loop",
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

		items, err := corpus.Load(optCorpusPath, logger)
		if err != nil {
			return err
		}

		writer, err := optimizer.NewArtifactWriter(optOutputDir, logger)
		if err != nil {
			return err
		}

		var limiter *rate.Limiter
		if optRPS > 0 {
			limiter = rate.NewLimiter(rate.Limit(optRPS), 1)
		}

		opts := []optimizer.Option{
			optimizer.WithRounds(optRounds),
			optimizer.WithArtifactWriter(writer),
			optimizer.WithRoundCallback(func(c optimizer.Candidate, isBest bool) {
				marker := ""
				if isBest {
					marker = " (new best)"
				}
				fmt.Printf("Round %d: average score %.3f%s\n", c.Round+1, c.AverageScore, marker)
			}),
		}
		if optStopEarly {
			opts = append(opts, optimizer.WithStopOnRegression())
		}
		if optDebug {
			dm := utils.NewDebugManager(logger, utils.DebugOptions{
				Enabled:      true,
				OutputDir:    filepath.Join(optOutputDir, "debug"),
				SaveToFile:   true,
				LogPrompts:   true,
				LogResponses: true,
			})
			opts = append(opts, optimizer.WithDebugManager(dm))
		}
		if optPromptFile != "" {
			text, err := os.ReadFile(optPromptFile)
			if err != nil {
				return fmt.Errorf("failed to read prompt file: %w", err)
			}
			opts = append(opts, optimizer.WithInitialPrompt(string(text)))
		}

		opt := optimizer.New(gateway, cfg.JudgeModel, cfg.ReasoningEffort, limiter, logger, opts...)
		state, err := opt.Run(cmd.Context(), items)
		if err != nil {
			return err
		}

		fmt.Printf("\nBest round: %d (score %.3f)\n", state.BestRound()+1, state.Best.AverageScore)
		fmt.Printf("Artifacts written to %s\n", optOutputDir)
		return nil
	},
}

func init() {
	optimizeCmd.Flags().StringVarP(&optCorpusPath, "corpus", "c", "corpus.json", "path to the gold-labeled corpus JSON file")
	optimizeCmd.Flags().StringVarP(&optOutputDir, "out", "o", "results", "directory for per-round and final artifacts")
	optimizeCmd.Flags().IntVarP(&optRounds, "rounds", "r", optimizer.DefaultRounds, "number of optimization rounds")
	optimizeCmd.Flags().StringVarP(&optPromptFile, "prompt", "p", "", "file holding the initial system prompt (default: built-in)")
	optimizeCmd.Flags().Float64Var(&optRPS, "rps", 0, "max model requests per second (0 disables limiting)")
	optimizeCmd.Flags().BoolVar(&optStopEarly, "stop-on-regression", false, "stop as soon as a round fails to improve on the best score")
	optimizeCmd.Flags().BoolVar(&optDebug, "debug", false, "save per-round prompts and raw model responses under <out>/debug")
}
