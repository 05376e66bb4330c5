package speech

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Ended reports that an utterance's process exited.
type Ended struct {
	ID      uuid.UUID
	Stopped bool
	Err     error
}

type utterance struct {
	id      uuid.UUID
	cmd     *exec.Cmd
	opts    Options
	stopped bool
}

// Command plays utterances by running an engine as a child process.
type Command struct {
	engine Engine
	logger *log.Logger
	events chan Ended

	mu      sync.Mutex
	current *utterance
	pending map[uuid.UUID]Options
}

// NewCommand returns a speaker backed by engine.
func NewCommand(engine Engine, logger *log.Logger) *Command {
	if logger == nil {
		logger = log.Default()
	}
	return &Command{
		engine:  engine,
		logger:  logger,
		events:  make(chan Ended, 4),
		pending: map[uuid.UUID]Options{},
	}
}

// Speak stops any utterance in flight and starts a new one.
func (c *Command) Speak(text string, opts Options) error {
	c.Stop()

	cmd := exec.Command(c.engine.Path, c.engine.Args(text, opts.Rate)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", c.engine.Name, err)
	}
	u := &utterance{id: uuid.New(), cmd: cmd, opts: opts}

	c.mu.Lock()
	c.current = u
	c.pending[u.id] = opts
	c.mu.Unlock()

	c.logger.Debug("utterance started", "id", u.id, "engine", c.engine.Name, "pid", cmd.Process.Pid)
	go c.wait(u)
	return nil
}

func (c *Command) wait(u *utterance) {
	err := u.cmd.Wait()

	c.mu.Lock()
	stopped := u.stopped
	if c.current == u {
		c.current = nil
	}
	c.mu.Unlock()

	if stopped {
		err = nil
	}
	if err != nil {
		c.logger.Warn("utterance failed", "id", u.id, "err", err)
	}
	c.events <- Ended{ID: u.id, Stopped: stopped, Err: err}
}

// Stop kills the utterance in flight, if any.
func (c *Command) Stop() {
	c.mu.Lock()
	u := c.current
	c.current = nil
	if u != nil {
		u.stopped = true
	}
	c.mu.Unlock()

	if u == nil {
		return
	}
	if err := u.cmd.Process.Kill(); err != nil {
		c.logger.Debug("stop utterance", "id", u.id, "err", err)
	}
}

// Events delivers one Ended per started utterance.
func (c *Command) Events() <-chan Ended {
	return c.events
}

// Resolve runs the callback registered for e. Unknown or already resolved
// utterances are ignored.
func (c *Command) Resolve(e Ended) {
	c.mu.Lock()
	opts, ok := c.pending[e.ID]
	delete(c.pending, e.ID)
	c.mu.Unlock()
	if !ok {
		return
	}
	callback := opts.OnDone
	if e.Stopped {
		callback = opts.OnStopped
	}
	if callback != nil {
		callback()
	}
}
