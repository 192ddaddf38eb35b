package checker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/dshills/proofline/internal/issue"
)

// Bridge adapts an external checker process as a Backend.
//
// The process speaks line-delimited JSON on stdio: one request object per
// line on stdin, one response object per line on stdout. Requests carry a
// unique id which the response echoes back, so calls may be issued
// concurrently:
//
//	-> {"id":"...","command":"check","text":"..."}
//	<- {"id":"...","status":"ok","issues":[{"word":...,"start":...}]}
//	<- {"id":"...","status":"error","message":"..."}
type Bridge struct {
	name string
	path string
	args []string

	mu      sync.Mutex
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	pending map[string]chan []byte

	started atomic.Bool
	closed  atomic.Bool
	done    chan struct{}
}

// request is one line sent to the backend process.
type request struct {
	ID      string `json:"id"`
	Command string `json:"command"`
	Text    string `json:"text,omitempty"`
}

// NewBridge creates a bridge for the given backend command.
// The name identifies the backend in configuration and errors.
func NewBridge(name, path string, args ...string) *Bridge {
	return &Bridge{
		name:    name,
		path:    path,
		args:    args,
		pending: make(map[string]chan []byte),
		done:    make(chan struct{}),
	}
}

// Name implements Backend.
func (b *Bridge) Name() string { return b.name }

// Start launches the backend process and begins reading responses.
func (b *Bridge) Start(ctx context.Context) error {
	if b.closed.Load() {
		return ErrShutdown
	}
	if b.started.Swap(true) {
		return ErrAlreadyStarted
	}

	cmd := exec.CommandContext(ctx, b.path, b.args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", b.path, err)
	}

	b.mu.Lock()
	b.cmd = cmd
	b.stdin = stdin
	b.mu.Unlock()

	go b.readLoop(stdout)
	return nil
}

// Close terminates the backend process and releases resources.
func (b *Bridge) Close() error {
	if b.closed.Swap(true) {
		return nil // Already closed
	}

	close(b.done)

	b.mu.Lock()
	// Drop pending calls; waiters are released through b.done.
	b.pending = make(map[string]chan []byte)
	stdin := b.stdin
	cmd := b.cmd
	b.mu.Unlock()

	if stdin != nil {
		_ = stdin.Close()
	}
	if cmd != nil {
		return cmd.Wait()
	}
	return nil
}

// Check implements Backend. It sends the text to the backend process and
// decodes the issues in the response.
func (b *Bridge) Check(ctx context.Context, text string) ([]issue.Issue, error) {
	raw, err := b.call(ctx, request{
		ID:      uuid.NewString(),
		Command: "check",
		Text:    text,
	})
	if err != nil {
		return nil, err
	}

	issues := gjson.GetBytes(raw, "issues")
	if !issues.Exists() {
		return nil, nil
	}
	return DecodeResults([]byte(issues.Raw))
}

// Ping verifies the backend process is responsive.
func (b *Bridge) Ping(ctx context.Context) error {
	_, err := b.call(ctx, request{ID: uuid.NewString(), Command: "ping"})
	return err
}

// call sends one request line and waits for its matching response.
func (b *Bridge) call(ctx context.Context, req request) ([]byte, error) {
	if !b.started.Load() {
		return nil, ErrNotStarted
	}
	if b.closed.Load() {
		return nil, ErrShutdown
	}

	ch := make(chan []byte, 1)
	b.mu.Lock()
	b.pending[req.ID] = ch
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.pending, req.ID)
		b.mu.Unlock()
	}()

	if err := b.send(req); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-b.done:
		return nil, ErrShutdown
	case raw := <-ch:
		status := gjson.GetBytes(raw, "status").String()
		switch status {
		case "ok":
			return raw, nil
		case "error":
			msg := gjson.GetBytes(raw, "message").String()
			return nil, fmt.Errorf("%w: %s: %s", ErrBackendFailed, b.name, msg)
		default:
			return nil, fmt.Errorf("%w: missing status", ErrInvalidResponse)
		}
	}
}

// send writes a request as a single JSON line.
func (b *Bridge) send(req request) error {
	data, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	data = append(data, '\n')

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stdin == nil {
		return ErrNotStarted
	}
	if _, err := b.stdin.Write(data); err != nil {
		return fmt.Errorf("write request: %w", err)
	}
	return nil
}

// readLoop reads response lines and routes them to waiting callers.
func (b *Bridge) readLoop(stdout io.Reader) {
	reader := bufio.NewReaderSize(stdout, 64*1024)

	for {
		select {
		case <-b.done:
			return
		default:
		}

		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			b.dispatch(line)
		}
		if err != nil {
			return
		}
	}
}

// dispatch routes one response line to its waiting caller.
// Lines without a known id are dropped.
func (b *Bridge) dispatch(line []byte) {
	id := gjson.GetBytes(line, "id").String()
	if id == "" {
		return
	}

	b.mu.Lock()
	ch, ok := b.pending[id]
	if ok {
		delete(b.pending, id)
	}
	b.mu.Unlock()

	if ok {
		select {
		case ch <- line:
		default:
		}
	}
}
