package telemetry

import (
	"fmt"
	"log/slog"
)

// SlogAPI implements API on top of the default slog logger.
type SlogAPI struct {
	logger *slog.Logger
}

// NewSlogAPI returns an SlogAPI writing to logger, or to slog.Default() when
// logger is nil.
func NewSlogAPI(logger *slog.Logger) SlogAPI {
	return SlogAPI{logger: logger}
}

func (s SlogAPI) log() *slog.Logger {
	if s.logger == nil {
		return slog.Default()
	}
	return s.logger
}

func (SlogAPI) formatParams(out *[]any, params []any) {
	for i, p := range params {
		*out = append(
			*out,
			fmt.Sprintf("params.%d", i),
			p,
		)
	}
}

func (s SlogAPI) ReportBroken(id string, params ...any) {
	pairs := []any{"id", id}
	s.formatParams(&pairs, params)
	s.log().Error("broken component", pairs...)
}

func (s SlogAPI) ReportWarning(id string, params ...any) {
	pairs := []any{"id", id}
	s.formatParams(&pairs, params)
	s.log().Warn("warning", pairs...)
}

func (s SlogAPI) ReportDebug(msg string, params ...any) {
	pairs := []any{}
	s.formatParams(&pairs, params)
	s.log().Debug(msg, pairs...)
}

func (s SlogAPI) ReportCount(id string, count int64) {
	s.log().Debug("count", "id", id, "n", count)
}
