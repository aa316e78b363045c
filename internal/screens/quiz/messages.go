package quiz

import (
	sess "github.com/ascendquiz/ascendquiz/internal/session"
)

// controllerReadyMsg is sent when the pool is built and the session started.
type controllerReadyMsg struct {
	Controller *sess.Controller
	Err        error
}

// persistDoneMsg is sent when the finished session has been saved.
type persistDoneMsg struct {
	Err error
}
