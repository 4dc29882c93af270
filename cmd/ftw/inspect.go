package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/ftw-report/internal/llm"
)

var directiveStrategy string

var directiveCmd = &cobra.Command{
	Use:   "directive <file>",
	Short: "Print the request that analyze would send, without calling the LLM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newTextExtractor().Extract(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		strategy := directiveStrategy
		if strategy == "" {
			strategy = cfg.LLM.Strategy
		}
		req := llm.BuildExtractRequest(res.Text, llm.Strategy(strategy))

		schema, err := json.MarshalIndent(req.Schema, "", "  ")
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "# strategy: %s\n# schema: %s\n%s\n\n%s\n", req.Strategy, req.SchemaName, schema, req.Instructions)
		return nil
	},
}

var ocrCmd = &cobra.Command{
	Use:   "ocr <file>",
	Short: "Print the text extracted from a form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newTextExtractor().Extract(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		logger.Info("ocr.done", "method", res.Method, "pages", res.Pages, "warnings", res.Warnings)
		fmt.Fprintln(cmd.OutOrStdout(), res.Text)
		return nil
	},
}

func init() {
	directiveCmd.Flags().StringVar(&directiveStrategy, "strategy", "", "rules or directive (default EXTRACTION_STRATEGY)")
}
