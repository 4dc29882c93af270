package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/ftw-report/internal/display"
	"github.com/joseph-ayodele/ftw-report/internal/llm"
	"github.com/joseph-ayodele/ftw-report/internal/llm/provider"
	processor "github.com/joseph-ayodele/ftw-report/internal/pipeline"
	"github.com/joseph-ayodele/ftw-report/internal/report"
)

var analyzeStrategy string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Analyze an FTW form and keep it as the current report",
	Long: `Analyze reads the form (pdf, jpg, png, tif or txt), sends its text to the
configured LLM once and prints the derived report. The report replaces the
current one and can then be copied or exported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeStrategy != "" {
			cfg.LLM.Strategy = analyzeStrategy
		}
		if err := cfg.ValidateLLM(); err != nil {
			return err
		}

		fe, err := provider.New(cfg.LLM, logger)
		if err != nil {
			return err
		}
		sessions, closeFn, err := openSessions(cmd.Context())
		if err != nil {
			return err
		}
		defer closeFn()

		p := processor.NewProcessor(logger,
			processor.NewTextStage(newTextExtractor(), logger),
			processor.NewParseStage(logger, llm.Strategy(cfg.LLM.Strategy), cfg.LLM.Timeout, fe,
				report.NewAssembler(organization(), logger)),
			sessions,
		)

		rec, err := p.AnalyzeFile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := display.Render(cmd.OutOrStdout(), rec); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nUse 'ftw copy' o 'ftw export' para compartir el informe; 'ftw reset' para analizar otro FTW.")
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeStrategy, "strategy", "", "override EXTRACTION_STRATEGY: rules or directive")
}
