package core

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"pkt.systems/pslog"
	"pkt.systems/termfolio/schema"
)

// Terminal owns one shell session: the line buffer, the input line and the
// session state. All mutation happens under mu; the renderer is called with a
// snapshot after the lock is released.
type Terminal struct {
	mu         sync.Mutex
	ctx        context.Context
	buffer     *LineBuffer
	input      *InputState
	session    *SessionState
	dispatcher Dispatcher
	completer  Completer
	renderer   Renderer
	sleep      func(ctx context.Context, d time.Duration) error
	speed      float64
	logger     pslog.Logger
	booting    bool
	closed     bool
	frame      uint64
	wg         sync.WaitGroup
}

// NewTerminal builds a session. ctx bounds the lifetime of animations started
// by the terminal itself.
func NewTerminal(ctx context.Context, cfg schema.ShellConfig, deps TerminalDeps) (*Terminal, error) {
	if ctx == nil {
		return nil, errors.New("missing context")
	}
	if deps.Dispatcher == nil {
		return nil, errors.New("missing dispatcher")
	}
	normalized, err := schema.NormalizeShellConfig(cfg)
	if err != nil {
		return nil, err
	}
	cfg = normalized
	logger := deps.Logger
	if logger == nil {
		logger = pslog.Ctx(ctx)
	}
	sleep := deps.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	renderer := deps.Renderer
	if renderer == nil {
		renderer = RendererFunc(func(schema.ViewSnapshot) {})
	}
	speed := deps.Speed
	if speed < 0 {
		speed = 0
	}
	t := &Terminal{
		ctx:        ctx,
		buffer:     NewLineBuffer(cfg.MaxLines, cfg.Width, viewportHeight(cfg.Height)),
		input:      newInputState(),
		session:    NewSessionState(cfg),
		dispatcher: deps.Dispatcher,
		completer:  deps.Completer,
		renderer:   renderer,
		sleep:      sleep,
		speed:      speed,
		logger:     logger,
	}
	return t, nil
}

// SetRenderer replaces the renderer.
func (t *Terminal) SetRenderer(r Renderer) {
	if r == nil {
		r = RendererFunc(func(schema.ViewSnapshot) {})
	}
	t.mu.Lock()
	t.renderer = r
	t.mu.Unlock()
}

// Boot plays the boot and login sequence. Keys are rejected until it returns.
func (t *Terminal) Boot() error {
	t.mutate(func() {
		t.booting = true
	})
	err := t.play(t.ctx, BootSequence(t.session.User))
	t.mutate(func() {
		t.booting = false
	})
	if err != nil {
		t.logger.Debug("terminal boot interrupted", "err", err)
		return err
	}
	t.logger.Debug("terminal boot complete")
	return nil
}

// HandleKey applies one keystroke.
func (t *Terminal) HandleKey(ctx context.Context, key schema.Key) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return schema.ErrSessionClosed
	}
	if t.booting || t.input.Mode() != schema.InputNormal {
		t.mu.Unlock()
		return schema.ErrInputDisabled
	}
	signal, err := t.handleKeyLocked(ctx, key)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	if signal == schema.SignalSystemPanic {
		t.input.SetMode(schema.InputDisabled)
		t.wg.Add(1)
	}
	t.frame++
	snap, renderer := t.snapshotLocked(), t.renderer
	t.mu.Unlock()

	renderer.Render(snap)
	if signal == schema.SignalSystemPanic {
		go t.runPanic()
	}
	return nil
}

// Submit replaces the input with line and presses Enter.
func (t *Terminal) Submit(ctx context.Context, line string) error {
	if err := t.UpdateInput(line, len([]rune(line))); err != nil {
		return err
	}
	return t.HandleKey(ctx, schema.Key{Kind: schema.KeyEnter})
}

// UpdateInput mirrors an external input element. The cursor is clamped.
func (t *Terminal) UpdateInput(text string, cursor int) error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return schema.ErrSessionClosed
	}
	if t.booting || t.input.Mode() != schema.InputNormal {
		t.mu.Unlock()
		return schema.ErrInputDisabled
	}
	t.input.Set(text, cursor)
	t.frame++
	snap, renderer := t.snapshotLocked(), t.renderer
	t.mu.Unlock()
	renderer.Render(snap)
	return nil
}

// Resize takes the full screen size. One row is reserved for the input line.
func (t *Terminal) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return schema.ErrInvalidDimensions
	}
	var err error
	t.mutate(func() {
		err = t.buffer.SetDimensions(width, viewportHeight(height))
	})
	return err
}

// Scroll moves the view; positive delta shows older output.
func (t *Terminal) Scroll(delta int) {
	t.mutate(func() {
		if delta > 0 {
			t.buffer.ScrollUp(delta)
		} else {
			t.buffer.ScrollDown(-delta)
		}
	})
}

// Snapshot returns the current view without rendering.
func (t *Terminal) Snapshot() schema.ViewSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// History returns the command history, oldest first.
func (t *Terminal) History() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.History.Entries()
}

// Cwd returns the session working directory.
func (t *Terminal) Cwd() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.Cwd
}

// Closed reports whether the session ended via exit or Close.
func (t *Terminal) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.closed
}

// Close ends the session and renders a final frame.
func (t *Terminal) Close() {
	t.mutate(func() {
		t.closed = true
	})
}

// Wait blocks until background animations finish.
func (t *Terminal) Wait() {
	t.wg.Wait()
}

func (t *Terminal) handleKeyLocked(ctx context.Context, key schema.Key) (schema.Signal, error) {
	switch key.Kind {
	case schema.KeyRune:
		if key.Rune < 0x20 || key.Rune == 0x7f {
			return schema.SignalNone, nil
		}
		t.input.InsertRune(key.Rune)
	case schema.KeyBackspace:
		t.input.Backspace()
	case schema.KeyDelete:
		t.input.Delete()
	case schema.KeyLeft:
		t.input.MoveLeft()
	case schema.KeyRight:
		t.input.MoveRight()
	case schema.KeyHome, schema.KeyCtrlA:
		t.input.MoveStart()
	case schema.KeyEnd, schema.KeyCtrlE:
		t.input.MoveEnd()
	case schema.KeyAltB:
		t.input.MoveWordLeft()
	case schema.KeyAltF:
		t.input.MoveWordRight()
	case schema.KeyCtrlW:
		t.input.DeleteWordBackward()
	case schema.KeyCtrlU:
		t.input.KillLineStart()
	case schema.KeyCtrlK:
		t.input.KillLineEnd()
	case schema.KeyUp:
		if entry, ok := t.session.History.Previous(); ok {
			t.input.SetString(entry)
		}
	case schema.KeyDown:
		if entry, ok := t.session.History.Next(); ok {
			t.input.SetString(entry)
		}
	case schema.KeyPageUp:
		t.buffer.ScrollUp(t.pageSize())
	case schema.KeyPageDown:
		t.buffer.ScrollDown(t.pageSize())
	case schema.KeyTab:
		t.completeLocked()
	case schema.KeyCtrlL:
		t.buffer.Clear()
	case schema.KeyCtrlC:
		t.buffer.AddCommand(t.session.Prompt(), t.input.String()+"^C")
		t.input.Clear()
		t.session.History.Reset()
		t.buffer.AutoScrollToBottom()
	case schema.KeyCtrlD:
		if t.input.Len() > 0 {
			t.input.Delete()
			return schema.SignalNone, nil
		}
		t.input.SetString("exit")
		return t.submitLocked(ctx), nil
	case schema.KeyEnter:
		return t.submitLocked(ctx), nil
	default:
		return schema.SignalNone, schema.ErrUnknownKey
	}
	return schema.SignalNone, nil
}

func (t *Terminal) submitLocked(ctx context.Context) schema.Signal {
	trimmed := strings.TrimSpace(t.input.String())
	t.input.Clear()
	t.session.History.Reset()
	if trimmed == "" {
		t.buffer.AutoScrollToBottom()
		return schema.SignalNone
	}
	t.session.History.Add(trimmed)
	t.buffer.AddCommand(t.session.Prompt(), trimmed)
	t.input.SetMode(schema.InputProcessing)

	result := t.dispatcher.Dispatch(ctx, trimmed, t.session)
	switch result.Signal {
	case schema.SignalClearScreen:
		t.buffer.Clear()
	case schema.SignalSystemPanic:
		return schema.SignalSystemPanic
	case schema.SignalExit:
		if result.Output != "" {
			t.buffer.AddLines(result.Output, schema.LineOutput, schema.ColorNone)
		}
		t.closed = true
	default:
		if result.Output != "" {
			t.buffer.AddLines(result.Output, schema.LineOutput, schema.ColorNone)
		}
	}
	t.input.SetMode(schema.InputNormal)
	t.buffer.AutoScrollToBottom()
	return result.Signal
}

func (t *Terminal) completeLocked() {
	if t.completer == nil {
		return
	}
	current := t.input.String()
	prefix, token := splitTrailingToken(current)
	result := t.completer.Complete(current, t.session.Cwd)
	switch result.Kind {
	case CompletionSingle:
		if len(result.Candidates) == 0 {
			return
		}
		t.input.SetString(prefix + result.Candidates[0])
	case CompletionMultiple:
		if common := CommonPrefix(result.Candidates); longerThan(common, token) {
			t.input.SetString(prefix + common)
			return
		}
		t.buffer.AddCommand(t.session.Prompt(), current)
		t.buffer.AddLines(formatCandidates(result.Candidates), schema.LineOutput, schema.ColorNone)
		t.input.MoveEnd()
		t.buffer.AutoScrollToBottom()
	}
}

func (t *Terminal) runPanic() {
	defer t.wg.Done()
	t.logger.Info("terminal panic sequence start")
	err := t.play(t.ctx, PanicSequence())
	t.mutate(func() {
		t.input.SetMode(schema.InputNormal)
		t.buffer.AutoScrollToBottom()
	})
	if err != nil {
		t.logger.Debug("terminal panic sequence interrupted", "err", err)
		return
	}
	t.logger.Info("terminal panic sequence done")
}

// play runs steps in order, rendering after every mutation.
func (t *Terminal) play(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		switch {
		case step.Clear:
			t.mutate(t.buffer.Clear)
		case step.Text != "" && t.scale(step.CharDelay) > 0:
			t.mutate(func() {
				t.buffer.AddLine("", step.Type, step.Color)
			})
			runes := []rune(step.Text)
			for i := 1; i <= len(runes); i++ {
				if err := t.pause(ctx, step.CharDelay); err != nil {
					return err
				}
				partial := string(runes[:i])
				t.mutate(func() {
					t.buffer.ReplaceLast(partial)
				})
			}
		default:
			t.mutate(func() {
				t.buffer.AddLine(step.Text, step.Type, step.Color)
			})
		}
		if err := t.pause(ctx, step.Delay); err != nil {
			return err
		}
	}
	return nil
}

func (t *Terminal) mutate(fn func()) {
	t.mu.Lock()
	fn()
	t.frame++
	snap, renderer := t.snapshotLocked(), t.renderer
	t.mu.Unlock()
	renderer.Render(snap)
}

func (t *Terminal) snapshotLocked() schema.ViewSnapshot {
	width, height := t.buffer.Dimensions()
	offset := t.buffer.ScrollOffset()
	return schema.ViewSnapshot{
		Seq:   t.frame,
		Lines: t.buffer.viewport(),
		Input: schema.InputSnapshot{
			Prompt: t.session.Prompt(),
			Text:   t.input.String(),
			Cursor: t.input.Cursor(),
			Mode:   t.input.Mode(),
		},
		Width:        width,
		Height:       height,
		ScrollOffset: offset,
		TotalVisual:  t.buffer.TotalVisualLines(),
		AtBottom:     offset == 0,
		Booting:      t.booting,
		Closed:       t.closed,
	}
}

func (t *Terminal) pageSize() int {
	_, height := t.buffer.Dimensions()
	if height > 1 {
		return height - 1
	}
	return 1
}

func (t *Terminal) scale(d time.Duration) time.Duration {
	return time.Duration(float64(d) * t.speed)
}

func (t *Terminal) pause(ctx context.Context, d time.Duration) error {
	scaled := t.scale(d)
	if scaled <= 0 {
		return ctx.Err()
	}
	return t.sleep(ctx, scaled)
}

func viewportHeight(rows int) int {
	if rows > 1 {
		return rows - 1
	}
	return 1
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
