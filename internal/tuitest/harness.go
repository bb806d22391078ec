// Package tuitest drives a terminal program inside a pseudo-terminal and
// records what it draws.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth   = 100
	defaultHeight  = 30
	defaultTimeout = 10 * time.Second
)

// Step is a pause followed by bytes typed into the terminal.
type Step struct {
	Delay time.Duration
	Input []byte
}

func Type(s string) Step { return Step{Input: []byte(s)} }

func Pause(d time.Duration) Step { return Step{Delay: d} }

// Well-known keys as a terminal sends them.
var (
	KeyEnter = []byte{'\r'}
	KeyTab   = []byte{'\t'}
	KeyEsc   = []byte{0x1b}
	KeyCtrlC = []byte{0x03}
)

func Press(key []byte) Step { return Step{Input: key} }

type Config struct {
	Command []string
	Dir     string
	Env     []string
	Width   int
	Height  int
	Steps   []Step
	Timeout time.Duration
}

// Recording is everything the program wrote plus how it exited.
type Recording struct {
	Raw      []byte
	Frames   []Frame
	ExitCode int
	Duration time.Duration
}

// Run starts the command on a pty of the configured size, replays the steps
// and waits for the program to exit. A non-zero exit is reported through
// Recording.ExitCode, not as an error.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("tuitest: command is required")
	}
	width, height := orDefault(cfg.Width, defaultWidth), orDefault(cfg.Height, defaultHeight)
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = environ(cfg.Env)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(height), Cols: uint16(width)})
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	var (
		mu     sync.Mutex
		output bytes.Buffer
	)
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		answers := newResponder(ptmx)
		chunk := make([]byte, 4096)
		for {
			n, err := ptmx.Read(chunk)
			if n > 0 {
				answers.Feed(chunk[:n])
				mu.Lock()
				output.Write(chunk[:n])
				mu.Unlock()
			}
			if err != nil {
				return
			}
		}
	}()

	start := time.Now()
	for _, step := range cfg.Steps {
		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("tuitest: script interrupted: %w", ctx.Err())
			case <-time.After(step.Delay):
			}
		}
		if len(step.Input) == 0 {
			continue
		}
		if _, err := ptmx.Write(step.Input); err != nil {
			return nil, fmt.Errorf("tuitest: write input: %w", err)
		}
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()

	code := 0
	select {
	case err := <-exited:
		var exitErr *exec.ExitError
		switch {
		case err == nil:
		case errors.As(err, &exitErr):
			code = exitErr.ExitCode()
		default:
			return nil, fmt.Errorf("tuitest: wait for program: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: program did not exit: %w", ctx.Err())
	}

	_ = ptmx.Close()
	<-drained

	mu.Lock()
	raw := append([]byte(nil), output.Bytes()...)
	mu.Unlock()
	return &Recording{
		Raw:      raw,
		Frames:   splitFrames(raw),
		ExitCode: code,
		Duration: time.Since(start),
	}, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func environ(extra []string) []string {
	env := append(os.Environ(), extra...)
	for _, kv := range env {
		if strings.HasPrefix(kv, "TERM=") {
			return env
		}
	}
	return append(env, "TERM=xterm-256color")
}
