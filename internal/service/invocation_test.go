package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/ich-youness/Financial-Services-OS/internal/domain"
	"github.com/ich-youness/Financial-Services-OS/internal/port/executor"
	"github.com/ich-youness/Financial-Services-OS/internal/service"
)

// mockExecutor lets tests script the backend response.
type mockExecutor struct {
	mu       sync.Mutex
	requests []executor.Request
	fn       func(ctx context.Context, req executor.Request) (string, error)
}

func (m *mockExecutor) Execute(ctx context.Context, req executor.Request) (string, error) {
	m.mu.Lock()
	m.requests = append(m.requests, req)
	m.mu.Unlock()
	if m.fn != nil {
		return m.fn(ctx, req)
	}
	return "ok", nil
}

func (m *mockExecutor) lastRequest() executor.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[len(m.requests)-1]
}

func newInvocationService(exec executor.Executor) *service.InvocationService {
	cat := service.NewCatalogService(testCatalog())
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewInvocationService(cat, service.NewFormService(), exec, nil, nil, log)
}

func TestSession_UnknownAgent(t *testing.T) {
	svc := newInvocationService(&mockExecutor{})

	if _, err := svc.Session("risk-assessment", "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSession_SeedsDefaults(t *testing.T) {
	svc := newInvocationService(&mockExecutor{})

	sess, err := svc.Session("risk-assessment", "credit-analyzer")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Running {
		t.Fatal("fresh session must not be running")
	}
	if sess.Config == nil {
		t.Fatal("fresh session must carry config defaults")
	}
}

func TestRun_BlankInputRejected(t *testing.T) {
	svc := newInvocationService(&mockExecutor{})

	if _, err := svc.Run(context.Background(), "risk-assessment", "credit-analyzer"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for blank input, got %v", err)
	}

	if _, err := svc.SetInput("risk-assessment", "credit-analyzer", "   \n\t"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Run(context.Background(), "risk-assessment", "credit-analyzer"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for whitespace input, got %v", err)
	}
}

func TestRun_UnknownAgentRejected(t *testing.T) {
	svc := newInvocationService(&mockExecutor{})

	if _, err := svc.Run(context.Background(), "risk-assessment", "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRun_BuildsPromptAndStoresOutput(t *testing.T) {
	exec := &mockExecutor{fn: func(_ context.Context, _ executor.Request) (string, error) {
		return "analysis complete", nil
	}}
	svc := newInvocationService(exec)

	if _, err := svc.SetInput("risk-assessment", "credit-analyzer", "assess ACME Corp"); err != nil {
		t.Fatal(err)
	}

	res, err := svc.Run(context.Background(), "risk-assessment", "credit-analyzer")
	if err != nil {
		t.Fatal(err)
	}
	if res.RunID == "" {
		t.Fatal("expected a run ID")
	}
	if res.Output != "analysis complete" {
		t.Fatalf("unexpected output %q", res.Output)
	}

	req := exec.lastRequest()
	want := "Module: Risk Assessment\nAgent: Credit Analyzer\n\nassess ACME Corp"
	if req.Prompt != want {
		t.Fatalf("prompt mismatch:\n got %q\nwant %q", req.Prompt, want)
	}
	if req.ModuleID != "risk-assessment" || req.AgentID != "credit-analyzer" {
		t.Fatalf("unexpected request ids: %+v", req)
	}

	sess, err := svc.Session("risk-assessment", "credit-analyzer")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Output != "analysis complete" {
		t.Fatalf("session output not stored: %q", sess.Output)
	}
	if sess.Running {
		t.Fatal("running flag must be cleared after the run")
	}
}

func TestRun_ExecutorErrorBecomesErrorOutput(t *testing.T) {
	exec := &mockExecutor{fn: func(_ context.Context, _ executor.Request) (string, error) {
		return "", errors.New("executor API error 500: boom")
	}}
	svc := newInvocationService(exec)

	if _, err := svc.SetInput("risk-assessment", "credit-analyzer", "assess"); err != nil {
		t.Fatal(err)
	}

	res, err := svc.Run(context.Background(), "risk-assessment", "credit-analyzer")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(res.Output, "Error: ") {
		t.Fatalf("expected Error prefix, got %q", res.Output)
	}
	if !strings.Contains(res.Output, "500") {
		t.Fatalf("expected status code in output, got %q", res.Output)
	}

	sess, _ := svc.Session("risk-assessment", "credit-analyzer")
	if sess.Running {
		t.Fatal("running flag must be cleared after a failed run")
	}
}

func TestRun_ConcurrentRunRejected(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	exec := &mockExecutor{fn: func(_ context.Context, _ executor.Request) (string, error) {
		close(started)
		<-release
		return "slow", nil
	}}
	svc := newInvocationService(exec)

	if _, err := svc.SetInput("risk-assessment", "credit-analyzer", "assess"); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(context.Background(), "risk-assessment", "credit-analyzer")
		done <- err
	}()
	<-started

	if _, err := svc.Run(context.Background(), "risk-assessment", "credit-analyzer"); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict while running, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first run failed: %v", err)
	}
}

func TestRun_ResetDiscardsInFlightResult(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	exec := &mockExecutor{fn: func(_ context.Context, _ executor.Request) (string, error) {
		close(started)
		<-release
		return "stale result", nil
	}}
	svc := newInvocationService(exec)

	if _, err := svc.SetInput("risk-assessment", "credit-analyzer", "assess"); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(context.Background(), "risk-assessment", "credit-analyzer")
		done <- err
	}()
	<-started

	if err := svc.Reset("risk-assessment", "credit-analyzer"); err != nil {
		t.Fatal(err)
	}
	close(release)

	if err := <-done; !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected superseded run to report ErrConflict, got %v", err)
	}

	sess, err := svc.Session("risk-assessment", "credit-analyzer")
	if err != nil {
		t.Fatal(err)
	}
	if sess.Output != "" {
		t.Fatalf("stale output must not be published, got %q", sess.Output)
	}
	if sess.Running {
		t.Fatal("reset session must not be running")
	}
}

func TestSetConfigValue_AppliesCoercion(t *testing.T) {
	svc := newInvocationService(&mockExecutor{})

	sess, err := svc.SetConfigValue("risk-assessment", "credit-analyzer", "threshold", 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if sess.Config["threshold"] != float64(1) {
		t.Fatalf("expected slider clamp to 1, got %v", sess.Config["threshold"])
	}

	if _, err := svc.SetConfigValue("risk-assessment", "credit-analyzer", "nope", 1); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for unknown key, got %v", err)
	}
}

func TestRun_SendsSessionConfig(t *testing.T) {
	exec := &mockExecutor{}
	svc := newInvocationService(exec)

	if _, err := svc.SetConfigValue("risk-assessment", "credit-analyzer", "threshold", 0.4); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SetInput("risk-assessment", "credit-analyzer", "assess"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Run(context.Background(), "risk-assessment", "credit-analyzer"); err != nil {
		t.Fatal(err)
	}

	req := exec.lastRequest()
	if req.Config["threshold"] != 0.4 {
		t.Fatalf("expected config to be sent, got %v", req.Config)
	}
}

func TestRun_ClearsPreviousOutputWhileRunning(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls int
	var mu sync.Mutex
	exec := &mockExecutor{fn: func(_ context.Context, _ executor.Request) (string, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			return "first result", nil
		}
		close(started)
		<-release
		return "second result", nil
	}}
	svc := newInvocationService(exec)

	if _, err := svc.SetInput("risk-assessment", "credit-analyzer", "assess"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Run(context.Background(), "risk-assessment", "credit-analyzer"); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(context.Background(), "risk-assessment", "credit-analyzer")
		done <- err
	}()
	<-started

	sess, err := svc.Session("risk-assessment", "credit-analyzer")
	if err != nil {
		t.Fatal(err)
	}
	if !sess.Running {
		t.Fatal("expected session to be running")
	}
	if sess.Output != "" {
		t.Fatalf("previous output must be cleared while a run is in flight, got %q", sess.Output)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	sess, _ = svc.Session("risk-assessment", "credit-analyzer")
	if sess.Output != "second result" {
		t.Fatalf("expected the new run's output, got %q", sess.Output)
	}
}
