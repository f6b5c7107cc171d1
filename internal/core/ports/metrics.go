package ports

import (
	"net/http"
	"time"
)

// Metrics records pipeline and reload server measurements.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObserveTask records one finished task run.
	ObserveTask(name string, duration time.Duration, err error)
	// ObserveReload records one reload broadcast.
	ObserveReload(target string)
	// ClientConnected records a browser joining the reload channel.
	ClientConnected()
	// ClientDisconnected records a browser leaving the reload channel.
	ClientDisconnected()
	// Handler exposes the recorded metrics.
	Handler() http.Handler
}
