package devserver

import "encoding/json"

const (
	eventReload     = "reload"
	eventBuildError = "buildError"
	eventPing       = "ping"
)

type reloadEvent struct {
	Type   string `json:"type"`
	Target string `json:"target"`
}

type buildErrorEvent struct {
	Type string `json:"type"`
	Out  string `json:"out"`
	Err  string `json:"err"`
}

type pingEvent struct {
	Type string `json:"type"`
}

func encode(event any) []byte {
	data, err := json.Marshal(event)
	if err != nil {
		// The event types above always marshal.
		panic(err)
	}
	return data
}
