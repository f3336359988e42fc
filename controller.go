package serieslog

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// State is the controller's current state.
type State int

const (
	// Idle means no session is being timed.
	Idle State = iota
	// Running means the last record is open and being timed.
	Running
	// PendingResumeDecision means an open record from a previous run awaits
	// Continue or Restart.
	PendingResumeDecision
)

// String returns a lower-case name for the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case PendingResumeDecision:
		return "pending resume decision"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Severity classifies an outcome message for presentation.
type Severity int

const (
	// SeverityInfo is a neutral status message.
	SeverityInfo Severity = iota
	// SeveritySuccess reports a completed action.
	SeveritySuccess
	// SeverityWarning reports an action that was refused or had no effect.
	SeverityWarning
	// SeverityError reports a failed action.
	SeverityError
)

// String returns a lower-case name for the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Outcome is what a controller action reports back to the presentation
// layer. A zero Message means nothing to show (e.g. an ignored action).
type Outcome struct {
	State    State
	Message  string
	Severity Severity
	Err      error
}

// Controller owns the session state and applies user actions to a Store.
// It holds no presentation references.
type Controller struct {
	store     Store
	now       func() time.Time
	logger    *slog.Logger
	state     State
	openSince string
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source used for start and stop times.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// WithLogger sets the logger. If nil or not set, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewController creates a Controller in the Idle state. Call Init to
// reconcile with persisted records before handling user actions.
func NewController(store Store, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// OpenSince returns the start time of the open session awaiting a resume
// decision, or "" outside PendingResumeDecision.
func (c *Controller) OpenSince() string { return c.openSince }

// Path returns the store's file path.
func (c *Controller) Path() string { return c.store.Path() }

// Init ensures the store exists and looks for an open session left by a
// previous run.
func (c *Controller) Init() Outcome {
	if err := c.store.Ensure(); err != nil {
		return c.fail("Could not create log file", err)
	}
	records, err := c.store.ReadAll()
	if err != nil {
		return c.fail("Could not read log file", err)
	}
	idx := FindOpenIndex(records)
	if idx < 0 {
		c.state = Idle
		c.logger.Debug("no open session", "records", len(records))
		return Outcome{State: c.state}
	}
	c.state = PendingResumeDecision
	c.openSince = records[idx].StartTime()
	c.logger.Info("open session found", "start", c.openSince)
	return c.outcome(SeverityWarning,
		fmt.Sprintf("There is an open session since %s. Continue or restart?", c.openSince))
}

// ResumeContinue keeps the open session as the active one.
func (c *Controller) ResumeContinue() Outcome {
	if c.state != PendingResumeDecision {
		return Outcome{State: c.state}
	}
	c.state = Running
	c.logger.Info("resumed session", "start", c.openSince)
	c.openSince = ""
	return c.outcome(SeveritySuccess, "Continuing the open session. Stop to finish it.")
}

// ResumeRestart discards the open session.
func (c *Controller) ResumeRestart() Outcome {
	if c.state != PendingResumeDecision {
		return Outcome{State: c.state}
	}
	if err := c.discardOpen(); err != nil {
		return c.fail("Could not discard the open session", err)
	}
	c.state = Idle
	c.openSince = ""
	return c.outcome(SeverityInfo, "Open session discarded. You can start a new one.")
}

// Start begins a new session. Any open session still at the end of the log
// is discarded first. Start is ignored while Running.
func (c *Controller) Start() Outcome {
	if c.state == Running {
		return Outcome{State: c.state}
	}
	if err := c.discardOpen(); err != nil {
		return c.fail("Could not start", err)
	}
	start := FormatTime(c.now())
	if err := c.store.Append(NewRecord(start, "", "")); err != nil {
		return c.fail("Could not start", err)
	}
	c.state = Running
	c.openSince = ""
	c.logger.Info("session started", "start", start)
	return c.outcome(SeveritySuccess, "Started: "+start)
}

// Stop closes the running session with the given number of series.
// Invalid input leaves state and store untouched. Stop is ignored unless
// Running.
func (c *Controller) Stop(input string) Outcome {
	if c.state != Running {
		return Outcome{State: c.state}
	}
	series, _, err := ParseSeriesCount(input)
	if err != nil {
		return Outcome{
			State:    c.state,
			Message:  "Please enter a valid whole number for the number of series.",
			Severity: SeverityError,
			Err:      err,
		}
	}
	records, err := c.store.ReadAll()
	if err != nil {
		return c.fail("Could not stop", err)
	}
	if len(records) == 0 {
		c.state = Idle
		c.logger.Warn("stop with empty log")
		return Outcome{
			State:    c.state,
			Message:  "No running session found.",
			Severity: SeverityError,
			Err:      ErrNoSession,
		}
	}
	stop := FormatTime(c.now())
	last := records[len(records)-1].Padded()
	last[ColStopTime] = stop
	last[ColSeriesCount] = series
	records[len(records)-1] = last
	if err := c.store.WriteAll(records); err != nil {
		return c.fail("Could not stop", err)
	}
	c.state = Idle
	c.logger.Info("session stopped", "stop", stop, "series", series)
	return c.outcome(SeveritySuccess, fmt.Sprintf("Stopped: %s, %s series saved.", stop, series))
}

// discardOpen removes the last record if it is open.
func (c *Controller) discardOpen() error {
	records, err := c.store.ReadAll()
	if err != nil {
		return err
	}
	idx := FindOpenIndex(records)
	if idx < 0 {
		return nil
	}
	if err := c.store.WriteAll(RemoveIndex(records, idx)); err != nil {
		return err
	}
	c.logger.Info("open session discarded", "start", records[idx].StartTime())
	return nil
}

func (c *Controller) outcome(sev Severity, msg string) Outcome {
	return Outcome{State: c.state, Message: msg, Severity: sev}
}

func (c *Controller) fail(msg string, err error) Outcome {
	c.logger.Error(msg, "err", err)
	return Outcome{
		State:    c.state,
		Message:  fmt.Sprintf("%s: %v", msg, err),
		Severity: SeverityError,
		Err:      err,
	}
}
