package ipc

import (
	"image"

	"github.com/matjam/pagefx/internal/transition"
)

// StartRequest is the body of POST /start. Optional fields fall back to
// the server's configured defaults.
type StartRequest struct {
	From      string   `json:"from"`
	To        string   `json:"to"`
	Style     string   `json:"style,omitempty"`
	Duration  *float64 `json:"duration,omitempty"` // seconds
	Direction *int     `json:"direction,omitempty"`
	Motion    string   `json:"motion,omitempty"`
}

// SessionStatus describes the transition a session is running.
type SessionStatus struct {
	Style     string  `json:"style"`
	Phase     string  `json:"phase"`
	Running   bool    `json:"running"`
	Finished  bool    `json:"finished"`
	Duration  float64 `json:"duration"`
	Direction int     `json:"direction"`
	Motion    string  `json:"motion"`
	From      string  `json:"from,omitempty"`
	To        string  `json:"to,omitempty"`
	Page      int     `json:"page"`
	Pages     int     `json:"pages"`
}

// LoadRequest is the body of POST /load.
type LoadRequest struct {
	Pages []string `json:"pages"`
	Loop  bool     `json:"loop,omitempty"`
}

type StatusResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Version string        `json:"version"`
	PID     int           `json:"pid"`
	Socket  string        `json:"socket"`
	Config  string        `json:"config"`
	Session SessionStatus `json:"session"`
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// phaseHeader carries the transition phase alongside GET /frame.
const phaseHeader = "X-Pagefx-Phase"

// SessionInterface is what the HTTP handlers need from a session.
type SessionInterface interface {
	Status() SessionStatus
	Start(req StartRequest) error
	Frame() (image.Image, transition.Phase)
	Reset()
	Stop()
	Load(req LoadRequest) error
	Next() error
	Prev() error
}
