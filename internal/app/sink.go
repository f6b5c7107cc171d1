package app

import (
	"go.trai.ch/assetpipe/internal/core/domain"
	"go.trai.ch/assetpipe/internal/core/ports"
	"go.trai.ch/zerr"
)

// diagnosticSink logs advisory findings and forwards them to browsers.
type diagnosticSink struct {
	logger ports.Logger
	server ports.ReloadServer
}

func newDiagnosticSink(logger ports.Logger, server ports.ReloadServer) *diagnosticSink {
	return &diagnosticSink{logger: logger, server: server}
}

func (s *diagnosticSink) Report(d domain.Diagnostic) {
	if d.Severity == domain.SeverityError {
		s.logger.Error(zerr.With(zerr.New(d.Message), "task", d.Task))
	} else {
		s.logger.Warn(d.Task + ": " + d.Message)
	}
	s.server.Report(d)
}
