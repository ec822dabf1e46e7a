package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/alexanderramin/pathwise/internal/domain"
)

// Client requests curricula from a running gateway.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Mapping ResourceMapping
}

func NewClient(cfg ClientConfig) *Client {
	return &Client{
		BaseURL: cfg.BaseURL,
		HTTP:    &http.Client{Timeout: cfg.Timeout},
		Mapping: ResourceMapping{Kind: cfg.ResourceKind},
	}
}

// RequestCurriculum posts prefs to /generate-plan and adapts the answer.
func (c *Client) RequestCurriculum(ctx context.Context, prefs domain.Preferences) ([]domain.DayPlan, error) {
	body, err := json.Marshal(NewPlanRequest(prefs))
	if err != nil {
		return nil, fmt.Errorf("encoding plan request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/generate-plan", bytes.NewReader(body))
	if err != nil {
		return nil, newError(KindUnreachable, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(httpReq)
	if err != nil {
		return nil, newError(KindUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(KindUnreachable, fmt.Errorf("reading response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		var eb ErrorBody
		if err := json.Unmarshal(raw, &eb); err != nil || eb.Code == "" {
			return nil, newError(KindUnreachable, fmt.Errorf("gateway returned status %d", resp.StatusCode))
		}
		return nil, newError(kindFromCode(string(eb.Code)), errors.New(eb.Error))
	}

	if !json.Valid(raw) {
		return nil, newError(KindNotJSON, errors.New("gateway response is not JSON"))
	}
	var days []WireDay
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, newError(KindSchemaInvalid, err)
	}
	if err := validateWireDays(days, prefs.Pace.DayCount()); err != nil {
		return nil, newError(KindSchemaInvalid, err)
	}
	plan := c.Mapping.ToDayPlans(days)
	if err := domain.ValidatePlan(plan); err != nil {
		return nil, newError(KindSchemaInvalid, err)
	}
	return plan, nil
}
