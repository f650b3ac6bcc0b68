package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mandelbrot/constant"
	"github.com/lixenwraith/mandelbrot/view"
)

// Status composes the status line from the view and a transient message
type Status struct {
	message string
	alert   bool
	until   time.Time
}

// Post shows msg until now+constant.StatusMessageDuration
func (s *Status) Post(now time.Time, msg string, alert bool) {
	s.message = msg
	s.alert = alert
	s.until = now.Add(constant.StatusMessageDuration)
}

// Expire drops the message once its time is up, reporting whether it did
func (s *Status) Expire(now time.Time) bool {
	if s.message == "" || now.Before(s.until) {
		return false
	}
	s.message = ""
	s.alert = false
	return true
}

// Line renders the status for the given view
func (s *Status) Line(st view.State, palette string, sound bool) (string, bool) {
	audio := "off"
	if sound {
		audio = "on"
	}
	line := fmt.Sprintf(" %s  palette %s  audio %s", st, palette, audio)
	if s.message != "" {
		line += "  | " + s.message
	}
	return line, s.alert
}
