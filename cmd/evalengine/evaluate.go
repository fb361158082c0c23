package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/edassess/evalengine/internal/config"
	"github.com/edassess/evalengine/internal/engine"
	"github.com/edassess/evalengine/internal/monitoring"
	"github.com/edassess/evalengine/internal/types"
)

var (
	evalMode   string
	inputPath  string
	outputPath string
	pretty     bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Run one evaluation pass over an extraction output file",
	RunE:  runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evalMode, "mode", "", "Evaluation mode (aicte|ugc)")
	evaluateCmd.Flags().StringVar(&inputPath, "input", "", "Extraction output file (JSON array of extracted blocks)")
	evaluateCmd.Flags().StringVar(&outputPath, "output", "", "Write results to this file instead of stdout")
	evaluateCmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the JSON output")
	_ = evaluateCmd.MarkFlagRequired("mode")
	_ = evaluateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("cannot read input file: %w", err)
	}
	var extracted []types.ExtractedBlock
	if err := json.Unmarshal(data, &extracted); err != nil {
		return fmt.Errorf("cannot parse input file: %w", err)
	}
	// Preserve supply order for the merge tiebreak when the extraction
	// service did not number the documents.
	numbered := false
	for i := range extracted {
		if extracted[i].DocumentIndex != 0 {
			numbered = true
			break
		}
	}
	if !numbered {
		for i := range extracted {
			extracted[i].DocumentIndex = i
		}
	}

	eng := engine.New(cfg, time.Now().Year(), monitoring.NewLogger())
	result, err := eng.EvaluateSubmission(cmd.Context(), uuid.NewString(), types.Mode(evalMode), extracted)
	if err != nil {
		return err
	}

	var out []byte
	if pretty {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = json.Marshal(result)
	}
	if err != nil {
		return fmt.Errorf("cannot encode result: %w", err)
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, append(out, '\n'), 0o644)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
