package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/theirongolddev/tripbook/internal/logging"
	"github.com/theirongolddev/tripbook/internal/model"
	"github.com/theirongolddev/tripbook/internal/pipeline"
	"github.com/theirongolddev/tripbook/internal/source"
	"github.com/theirongolddev/tripbook/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Step is the observable state of a session.
type Step int

const (
	StepInput Step = iota
	StepLoading
	StepView
)

func (s Step) String() string {
	switch s {
	case StepInput:
		return "input"
	case StepLoading:
		return "loading"
	case StepView:
		return "view"
	default:
		return fmt.Sprintf("step(%d)", int(s))
	}
}

// ErrWrongStep is returned when an operation is not valid in the current step.
var ErrWrongStep = errors.New("session: operation not allowed in current step")

// Ticket identifies one generation request and the booklet it produced.
type Ticket string

// TimerKey identifies a scheduled highlight rotation. A key is only honored
// while it still names the shown day's armed timer.
type TimerKey struct {
	Ticket Ticket
	Day    int
	Gen    uint64
}

// Session is the single owner of input text, generation state and the
// mounted booklet. It is not safe for concurrent use; the TUI update loop
// serializes all calls.
type Session struct {
	step     Step
	text     string
	fileName string
	err      error

	ticket   Ticket
	data     *model.BookletData
	nav      *Navigator
	rotators []*Rotator
	colors   map[string]lipgloss.Color

	log *slog.Logger
}

// New returns a session in the input step.
func New() *Session {
	return &Session{log: logging.For(logging.ComponentSession)}
}

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Text returns the normalized input text.
func (s *Session) Text() string { return s.text }

// FileName returns the name of the loaded file, if any.
func (s *Session) FileName() string { return s.fileName }

// Err returns the last error shown to the user, if any.
func (s *Session) Err() error { return s.err }

// Data returns the mounted booklet, or nil outside the view step.
func (s *Session) Data() *model.BookletData { return s.data }

// Navigator returns the page navigator, or nil outside the view step.
func (s *Session) Navigator() *Navigator { return s.nav }

// Rotator returns the highlight rotator for a day, or nil.
func (s *Session) Rotator(day int) *Rotator {
	if day < 0 || day >= len(s.rotators) {
		return nil
	}
	return s.rotators[day]
}

// CategoryColor returns the color assigned to category for this booklet.
func (s *Session) CategoryColor(category string) (lipgloss.Color, bool) {
	c, ok := s.colors[category]
	return c, ok
}

// Load stores a decoded document as the input. Only valid in the input step.
func (s *Session) Load(doc source.Document) error {
	if s.step != StepInput {
		return ErrWrongStep
	}
	s.text = doc.Text
	s.fileName = doc.Name
	s.err = nil
	return nil
}

// Reject records an input error, such as a file that failed to decode,
// without changing the loaded text.
func (s *Session) Reject(err error) {
	if s.step != StepInput || err == nil {
		return
	}
	s.err = err
}

// Clear forgets the loaded input. Only valid in the input step.
func (s *Session) Clear() bool {
	if s.step != StepInput {
		return false
	}
	s.text = ""
	s.fileName = ""
	s.err = nil
	return true
}

// BeginGenerate moves to the loading step and returns the ticket the result
// must be delivered with.
func (s *Session) BeginGenerate() (Ticket, error) {
	if s.step != StepInput {
		return "", ErrWrongStep
	}
	if strings.TrimSpace(s.text) == "" {
		s.err = pipeline.ErrEmptyInput
		return "", pipeline.ErrEmptyInput
	}
	s.ticket = Ticket(uuid.NewString())
	s.step = StepLoading
	s.err = nil
	s.log.Debug("generation requested", "ticket", s.ticket, "file", s.fileName)
	return s.ticket, nil
}

// Complete mounts data if ticket is the outstanding request. Results for any
// other ticket are discarded and false is returned.
func (s *Session) Complete(ticket Ticket, data *model.BookletData) bool {
	if !s.outstanding(ticket) {
		s.log.Info("discarding stale result", "ticket", ticket, "step", s.step.String())
		return false
	}
	if data == nil {
		return s.Fail(ticket, errors.New("session: empty result"))
	}

	s.data = data
	s.nav = NewNavigator(len(data.Days))
	s.rotators = make([]*Rotator, len(data.Days))
	for i, d := range data.Days {
		s.rotators[i] = NewRotator(d.HighlightsOrFallback())
	}
	s.colors = theme.CategoryColors(data.Categories())
	s.step = StepView
	return true
}

// Fail returns to the input step with err if ticket is the outstanding
// request. The input text is kept for retry.
func (s *Session) Fail(ticket Ticket, err error) bool {
	if !s.outstanding(ticket) {
		s.log.Info("discarding stale failure", "ticket", ticket, "error", err)
		return false
	}
	s.ticket = ""
	s.step = StepInput
	s.err = err
	return true
}

// Cancel abandons the outstanding request. Its result will be discarded.
func (s *Session) Cancel() bool {
	if s.step != StepLoading {
		return false
	}
	s.ticket = ""
	s.step = StepInput
	return true
}

// Reset returns to the input step from anywhere, discarding the booklet and
// any outstanding request. The input text is kept.
func (s *Session) Reset() {
	s.step = StepInput
	s.ticket = ""
	s.data = nil
	s.nav = nil
	s.rotators = nil
	s.colors = nil
	s.err = nil
}

// Next shows the next page. A day page that is shown again starts from its
// first highlight. It reports whether the page changed.
func (s *Session) Next() bool {
	if s.step != StepView || !s.nav.Next() {
		return false
	}
	s.armCurrent()
	return true
}

// Previous shows the previous page. It reports whether the page changed.
func (s *Session) Previous() bool {
	if s.step != StepView || !s.nav.Previous() {
		return false
	}
	s.armCurrent()
	return true
}

// Finish resets the session when the last page is shown.
func (s *Session) Finish() bool {
	if s.step != StepView || !s.nav.CanFinish() {
		return false
	}
	s.Reset()
	return true
}

// AdvanceHighlight moves the shown day's highlight forward and restarts its timer.
func (s *Session) AdvanceHighlight() bool {
	r := s.currentRotator()
	if r == nil {
		return false
	}
	r.Advance()
	r.Rearm()
	return true
}

// RetreatHighlight moves the shown day's highlight back and restarts its timer.
func (s *Session) RetreatHighlight() bool {
	r := s.currentRotator()
	if r == nil {
		return false
	}
	r.Retreat()
	r.Rearm()
	return true
}

// Timer returns the key for the shown day's rotation timer. ok is false on
// the cover, outside the view step, or when the day has a single highlight.
func (s *Session) Timer() (TimerKey, bool) {
	r := s.currentRotator()
	if r == nil || !r.HasControls() {
		return TimerKey{}, false
	}
	return TimerKey{Ticket: s.ticket, Day: s.nav.DayIndex(), Gen: r.Generation()}, true
}

// Rotate applies a timer firing. Keys from an earlier booklet, another page,
// or a superseded timer are ignored.
func (s *Session) Rotate(key TimerKey) bool {
	if s.step != StepView || key.Ticket != s.ticket || key.Day != s.nav.DayIndex() {
		return false
	}
	r := s.Rotator(key.Day)
	if r == nil {
		return false
	}
	return r.Tick(key.Gen)
}

func (s *Session) outstanding(ticket Ticket) bool {
	return s.step == StepLoading && ticket != "" && ticket == s.ticket
}

func (s *Session) currentRotator() *Rotator {
	if s.step != StepView {
		return nil
	}
	return s.Rotator(s.nav.DayIndex())
}

func (s *Session) armCurrent() {
	if r := s.currentRotator(); r != nil {
		r.Restart()
	}
}
