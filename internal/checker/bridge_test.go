package checker

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"
)

// fakeBackendProcess wires a Bridge to an in-process fake instead of a real
// subprocess: requests written by the bridge arrive on reqs, and respond
// writes lines back into the bridge's read loop.
type fakeBackendProcess struct {
	bridge *Bridge
	reqs   *bufio.Reader
	out    *io.PipeWriter
}

func newFakeBackendProcess(t *testing.T) *fakeBackendProcess {
	t.Helper()

	stdinR, stdinW := io.Pipe()
	stdoutR, stdoutW := io.Pipe()

	b := NewBridge("fake", "unused")
	b.started.Store(true)
	b.stdin = stdinW
	go b.readLoop(stdoutR)

	t.Cleanup(func() {
		stdinR.Close()
		stdinW.Close()
		stdoutR.Close()
		stdoutW.Close()
	})

	return &fakeBackendProcess{
		bridge: b,
		reqs:   bufio.NewReader(stdinR),
		out:    stdoutW,
	}
}

// next reads one request line sent by the bridge.
// Safe to call from the fake's goroutine; failures surface via t.Errorf.
func (f *fakeBackendProcess) next(t *testing.T) request {
	t.Helper()
	line, err := f.reqs.ReadBytes('\n')
	if err != nil {
		t.Errorf("read request: %v", err)
		return request{}
	}
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		t.Errorf("unmarshal request %q: %v", line, err)
	}
	return req
}

// respond writes one response line to the bridge.
func (f *fakeBackendProcess) respond(t *testing.T, line string) {
	t.Helper()
	if _, err := io.WriteString(f.out, line+"\n"); err != nil {
		t.Errorf("write response: %v", err)
	}
}

func TestBridgeCheck(t *testing.T) {
	fake := newFakeBackendProcess(t)

	go func() {
		req := fake.next(t)
		if req.Command != "check" || req.Text != "teh cat" {
			fake.respond(t, fmt.Sprintf(`{"id":%q,"status":"error","message":"bad request"}`, req.ID))
			return
		}
		fake.respond(t, fmt.Sprintf(
			`{"id":%q,"status":"ok","issues":[{"word":"teh","start":0,"end":3,"kind":"spelling","suggestions":["the"]}]}`,
			req.ID))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := fake.bridge.Check(ctx, "teh cat")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(got) != 1 || got[0].Word != "teh" {
		t.Errorf("Check() = %v, want one issue for %q", got, "teh")
	}
}

func TestBridgeCheckBackendError(t *testing.T) {
	fake := newFakeBackendProcess(t)

	go func() {
		req := fake.next(t)
		fake.respond(t, fmt.Sprintf(`{"id":%q,"status":"error","message":"model not loaded"}`, req.ID))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := fake.bridge.Check(ctx, "text")
	if !errors.Is(err, ErrBackendFailed) {
		t.Errorf("Check() error = %v, want ErrBackendFailed", err)
	}
}

func TestBridgeCheckInvalidResponse(t *testing.T) {
	fake := newFakeBackendProcess(t)

	go func() {
		req := fake.next(t)
		fake.respond(t, fmt.Sprintf(`{"id":%q}`, req.ID))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := fake.bridge.Check(ctx, "text")
	if !errors.Is(err, ErrInvalidResponse) {
		t.Errorf("Check() error = %v, want ErrInvalidResponse", err)
	}
}

func TestBridgePing(t *testing.T) {
	fake := newFakeBackendProcess(t)

	go func() {
		req := fake.next(t)
		if req.Command != "ping" {
			t.Errorf("Command = %q, want ping", req.Command)
		}
		fake.respond(t, fmt.Sprintf(`{"id":%q,"status":"ok"}`, req.ID))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := fake.bridge.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestBridgeIgnoresUnknownResponses(t *testing.T) {
	fake := newFakeBackendProcess(t)

	go func() {
		req := fake.next(t)
		// Noise before the real response must not break the call.
		fake.respond(t, `{"progress":42}`)
		fake.respond(t, `{"id":"nobody-waiting","status":"ok"}`)
		fake.respond(t, fmt.Sprintf(`{"id":%q,"status":"ok","issues":[]}`, req.ID))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := fake.bridge.Check(ctx, "clean text")
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Check() = %v, want no issues", got)
	}
}

func TestBridgeNotStarted(t *testing.T) {
	b := NewBridge("idle", "unused")

	_, err := b.Check(context.Background(), "text")
	if !errors.Is(err, ErrNotStarted) {
		t.Errorf("Check() error = %v, want ErrNotStarted", err)
	}
}

func TestBridgeContextCancellation(t *testing.T) {
	fake := newFakeBackendProcess(t)

	// Backend that never answers.
	go func() { fake.next(t) }()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := fake.bridge.Check(ctx, "text")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Check() error = %v, want context deadline", err)
	}
}

func TestBridgeRequestIDsUnique(t *testing.T) {
	fake := newFakeBackendProcess(t)

	ids := make(chan string, 2)
	go func() {
		for i := 0; i < 2; i++ {
			req := fake.next(t)
			ids <- req.ID
			fake.respond(t, fmt.Sprintf(`{"id":%q,"status":"ok","issues":[]}`, req.ID))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := fake.bridge.Check(ctx, "one"); err != nil {
		t.Fatalf("first Check() error = %v", err)
	}
	if _, err := fake.bridge.Check(ctx, "two"); err != nil {
		t.Fatalf("second Check() error = %v", err)
	}

	first, second := <-ids, <-ids
	if first == "" || second == "" {
		t.Error("empty request id")
	}
	if first == second {
		t.Errorf("request ids not unique: %q", first)
	}
}
