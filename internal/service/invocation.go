package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	fsotel "github.com/ich-youness/Financial-Services-OS/internal/adapter/otel"
	"github.com/ich-youness/Financial-Services-OS/internal/adapter/ws"
	"github.com/ich-youness/Financial-Services-OS/internal/domain"
	"github.com/ich-youness/Financial-Services-OS/internal/domain/catalog"
	"github.com/ich-youness/Financial-Services-OS/internal/port/broadcast"
	"github.com/ich-youness/Financial-Services-OS/internal/port/executor"
)

// Session holds the per-(module, agent) view state: the input text, the
// current config values, the running flag and the last output.
type Session struct {
	ModuleID  string         `json:"moduleId"`
	AgentID   string         `json:"agentId"`
	InputText string         `json:"inputText"`
	Config    map[string]any `json:"config"`
	Running   bool           `json:"running"`
	Output    string         `json:"output"`

	// generation increments on every run start; a finishing run only
	// publishes its result while its generation is still current.
	generation uint64
}

// RunResult is the outcome of a completed agent run.
type RunResult struct {
	RunID  string `json:"runId"`
	Output string `json:"output"`
}

type sessionKey struct {
	moduleID string
	agentID  string
}

// InvocationService owns view sessions and drives agent runs against the
// execution backend.
type InvocationService struct {
	catalog *CatalogService
	forms   *FormService
	exec    executor.Executor
	hub     broadcast.Broadcaster
	metrics *fsotel.Metrics
	log     *slog.Logger

	mu       sync.Mutex
	sessions map[sessionKey]*Session
}

// NewInvocationService creates an InvocationService.
func NewInvocationService(
	catalog *CatalogService,
	forms *FormService,
	exec executor.Executor,
	hub broadcast.Broadcaster,
	metrics *fsotel.Metrics,
	log *slog.Logger,
) *InvocationService {
	return &InvocationService{
		catalog:  catalog,
		forms:    forms,
		exec:     exec,
		hub:      hub,
		metrics:  metrics,
		log:      log,
		sessions: make(map[sessionKey]*Session),
	}
}

// Session returns the view session for the given agent, creating it with
// default config values on first access. The returned value is a snapshot.
func (s *InvocationService) Session(moduleID, agentID string) (Session, error) {
	a, err := s.catalog.Agent(moduleID, agentID)
	if err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.ensureLocked(moduleID, agentID, a)
	return *sess, nil
}

// SetInput updates the input text for the given agent's session.
func (s *InvocationService) SetInput(moduleID, agentID, text string) (Session, error) {
	a, err := s.catalog.Agent(moduleID, agentID)
	if err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.ensureLocked(moduleID, agentID, a)
	sess.InputText = text
	return *sess, nil
}

// SetConfigValue applies one config field update to the session, with the
// coercion rules of FormService.Apply.
func (s *InvocationService) SetConfigValue(moduleID, agentID, key string, raw any) (Session, error) {
	a, err := s.catalog.Agent(moduleID, agentID)
	if err != nil {
		return Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.ensureLocked(moduleID, agentID, a)

	next, err := s.forms.Apply(a, sess.Config, key, raw)
	if err != nil {
		return Session{}, err
	}
	sess.Config = next
	return *sess, nil
}

// Run executes the agent with the session's current input and config. It
// rejects blank input and concurrent runs of the same session. When a newer
// run starts while this one is in flight, the stale result is discarded.
func (s *InvocationService) Run(ctx context.Context, moduleID, agentID string) (RunResult, error) {
	res := s.catalog.Resolve(moduleID, agentID)
	if res.Kind != ResolutionAgent {
		return RunResult{}, fmt.Errorf("agent %q in module %q: %w", agentID, moduleID, domain.ErrNotFound)
	}

	key := sessionKey{moduleID: moduleID, agentID: agentID}

	s.mu.Lock()
	sess := s.ensureLocked(moduleID, agentID, res.Agent)
	if strings.TrimSpace(sess.InputText) == "" {
		s.mu.Unlock()
		return RunResult{}, fmt.Errorf("input text is required: %w", domain.ErrValidation)
	}
	if sess.Running {
		s.mu.Unlock()
		return RunResult{}, fmt.Errorf("run for %s/%s: %w", moduleID, agentID, domain.ErrConflict)
	}
	sess.Running = true
	sess.Output = ""
	sess.generation++
	gen := sess.generation

	req := executor.Request{
		ModuleID: moduleID,
		AgentID:  agentID,
		Prompt:   buildPrompt(res.Module.Title, res.Agent.Name, sess.InputText),
		Config:   sess.Config,
	}
	s.mu.Unlock()

	runID := uuid.NewString()
	start := time.Now()

	ctx, span := fsotel.StartRunSpan(ctx, runID, moduleID, agentID)
	defer span.End()

	if s.metrics != nil {
		s.metrics.RunsStarted.Add(ctx, 1, runAttrs(moduleID, agentID))
	}
	s.broadcast(ctx, ws.EventRunStarted, ws.RunStartedEvent{
		RunID: runID, ModuleID: moduleID, AgentID: agentID,
	})
	s.log.Info("run started", "run_id", runID, "module", moduleID, "agent", agentID)

	output, execErr := s.exec.Execute(ctx, req)
	if execErr != nil {
		output = "Error: " + execErr.Error()
	}

	stale := false
	s.mu.Lock()
	// The session may have been replaced while the lock was released.
	if cur, ok := s.sessions[key]; ok && cur.generation == gen {
		cur.Output = output
		cur.Running = false
	} else {
		stale = true
	}
	s.mu.Unlock()

	elapsed := time.Since(start).Seconds()

	switch {
	case stale:
		if s.metrics != nil {
			s.metrics.RunsStale.Add(ctx, 1, runAttrs(moduleID, agentID))
		}
		s.log.Warn("run result discarded as stale", "run_id", runID, "module", moduleID, "agent", agentID)

	case execErr != nil:
		if s.metrics != nil {
			s.metrics.RunsFailed.Add(ctx, 1, runAttrs(moduleID, agentID))
			s.metrics.RunDuration.Record(ctx, elapsed, runAttrs(moduleID, agentID))
		}
		s.broadcast(ctx, ws.EventRunFailed, ws.RunFailedEvent{
			RunID: runID, ModuleID: moduleID, AgentID: agentID, Reason: execErr.Error(),
		})
		s.log.Error("run failed", "run_id", runID, "module", moduleID, "agent", agentID, "error", execErr)

	default:
		if s.metrics != nil {
			s.metrics.RunsCompleted.Add(ctx, 1, runAttrs(moduleID, agentID))
			s.metrics.RunDuration.Record(ctx, elapsed, runAttrs(moduleID, agentID))
		}
		s.broadcast(ctx, ws.EventRunFinished, ws.RunFinishedEvent{
			RunID: runID, ModuleID: moduleID, AgentID: agentID, Output: output,
		})
		s.log.Info("run finished", "run_id", runID, "module", moduleID, "agent", agentID,
			"duration_seconds", elapsed)
	}

	if stale {
		return RunResult{}, fmt.Errorf("run %s superseded: %w", runID, domain.ErrConflict)
	}
	return RunResult{RunID: runID, Output: output}, nil
}

// Reset returns the session for the given agent to its initial state. A
// run still in flight for a reset session publishes nothing when it
// returns.
func (s *InvocationService) Reset(moduleID, agentID string) error {
	a, err := s.catalog.Agent(moduleID, agentID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionKey{moduleID: moduleID, agentID: agentID}]
	if !ok {
		return nil
	}
	sess.InputText = ""
	sess.Output = ""
	sess.Running = false
	sess.Config = s.forms.Initial(a)
	sess.generation++
	return nil
}

// ensureLocked returns the session for the key, creating it with the
// agent's default config. Callers must hold s.mu.
func (s *InvocationService) ensureLocked(moduleID, agentID string, a *catalog.Agent) *Session {
	key := sessionKey{moduleID: moduleID, agentID: agentID}
	sess, ok := s.sessions[key]
	if !ok {
		sess = &Session{
			ModuleID: moduleID,
			AgentID:  agentID,
			Config:   s.forms.Initial(a),
		}
		s.sessions[key] = sess
	}
	return sess
}

func (s *InvocationService) broadcast(ctx context.Context, eventType string, payload any) {
	if s.hub != nil {
		s.hub.BroadcastEvent(ctx, eventType, payload)
	}
}

// buildPrompt composes the backend prompt from the module title, the agent
// name and the raw input text.
func buildPrompt(moduleTitle, agentName, input string) string {
	return fmt.Sprintf("Module: %s\nAgent: %s\n\n%s", moduleTitle, agentName, input)
}

func runAttrs(moduleID, agentID string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("module.id", moduleID),
		attribute.String("agent.id", agentID),
	)
}
