package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/llm"
)

// Planner turns plan requests into day plans by prompting a completion
// model and parsing its JSON answer.
type Planner struct {
	client  llm.LLMClient
	mapping ResourceMapping
}

// NewPlanner creates a Planner backed by client.
func NewPlanner(client llm.LLMClient, mapping ResourceMapping) *Planner {
	return &Planner{client: client, mapping: mapping}
}

// RequestPlan returns the model's days in wire shape. Failures are *Error
// values classified by Kind.
func (p *Planner) RequestPlan(ctx context.Context, req PlanRequest) ([]WireDay, error) {
	if _, err := req.Preferences(); err != nil {
		return nil, newError(KindValidation, err)
	}

	resp, err := p.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskCurriculum,
		SystemPrompt: curriculumSystemPrompt,
		UserPrompt:   buildPrompt(req),
	})
	if err != nil {
		return nil, classifyLLMError(err)
	}

	want := req.DayCount()
	days, err := llm.ExtractJSON[[]WireDay](resp.Text, func(days []WireDay) error {
		return validateWireDays(days, want)
	})
	if err != nil {
		if errors.Is(err, llm.ErrSchemaViolation) {
			return nil, newError(KindSchemaInvalid, err)
		}
		return nil, newError(KindNotJSON, err)
	}
	return days, nil
}

// RequestCurriculum implements the curriculum source contract in-process.
func (p *Planner) RequestCurriculum(ctx context.Context, prefs domain.Preferences) ([]domain.DayPlan, error) {
	days, err := p.RequestPlan(ctx, NewPlanRequest(prefs))
	if err != nil {
		return nil, err
	}
	plan := p.mapping.ToDayPlans(days)
	if err := domain.ValidatePlan(plan); err != nil {
		return nil, newError(KindSchemaInvalid, err)
	}
	return plan, nil
}

func classifyLLMError(err error) error {
	switch {
	case errors.Is(err, llm.ErrAuth):
		return newError(KindAuthFailed, err)
	case errors.Is(err, llm.ErrTimeout),
		errors.Is(err, llm.ErrUnavailable),
		errors.Is(err, llm.ErrRetryExhausted),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return newError(KindUnreachable, err)
	default:
		return newError(KindUnreachable, fmt.Errorf("unexpected upstream failure: %w", err))
	}
}
