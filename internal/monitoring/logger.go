package monitoring

import (
	"log/slog"
	"os"
	"time"
)

// Logger provides structured JSON logging for the engine and its CLI harness.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new structured logger.
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})

	return &Logger{Logger: slog.New(handler)}
}

// EvaluationLogger logs the outcome of one evaluation pass.
func (l *Logger) EvaluationLogger(submissionID, mode string, blockCount int, sufficiency float64, flagCount int, duration time.Duration) {
	l.Info("Evaluation Completed",
		"submission_id", submissionID,
		"mode", mode,
		"block_count", blockCount,
		"sufficiency_pct", sufficiency,
		"compliance_flags", flagCount,
		"duration_ms", duration.Milliseconds(),
	)
}

// NormalizationLogger logs the merge/normalization stage.
func (l *Logger) NormalizationLogger(mode string, documents, mergedBlocks int) {
	l.Info("Blocks Normalized",
		"mode", mode,
		"document_blocks", documents,
		"merged_blocks", mergedBlocks,
	)
}
