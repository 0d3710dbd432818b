// Package storelog wires zerolog structured logging around the BV
// pipeline's warning conditions and batch summaries, following the
// pack's zerolog-adapter pattern.
package storelog

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/nicoberrocal/bvcalc/bv"
	"github.com/nicoberrocal/bvcalc/bv/validate"
)

// New builds the process-wide zerolog.Logger, writing structured JSON to
// stderr so stdout stays free for report output.
func New(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// LogUnitWarnings emits one warn-level event per warning recorded on a
// unit's BVBreakdown (unknown equipment, degraded inputs).
func LogUnitWarnings(log zerolog.Logger, unitID string, warnings []string) {
	for _, w := range warnings {
		log.Warn().Str("unitId", unitID).Msg(w)
	}
}

// LogUnitError emits a warn-level event for a halted calculation
// (UnsupportedConfiguration or InvalidInput), matching the pipeline's
// no-panic contract: these are reported, never fatal.
func LogUnitError(log zerolog.Logger, unitID string, err error) {
	log.Warn().Str("unitId", unitID).Err(err).Msg("unit calculation halted")
}

// LogDiagnostics emits one debug-level event per stage trace, only useful
// with --diagnostics and debug logging enabled.
func LogDiagnostics(log zerolog.Logger, unitID string, diag *bv.Diagnostics) {
	if diag == nil {
		return
	}
	for _, stage := range diag.Stages {
		log.Debug().
			Str("unitId", unitID).
			Str("stage", stage.Stage).
			Float64("value", stage.Value).
			Strs("notes", stage.Notes).
			Msg("stage trace")
	}
}

// LogBatchSummary emits the info-level summary line for a completed
// validation run: counts per classification bucket.
func LogBatchSummary(log zerolog.Logger, report validate.Report) {
	event := log.Info().Int("totalUnits", len(report.Results))
	for class, count := range report.Counts {
		event = event.Int(string(class), count)
	}
	event.Msg("validation run complete")
}
