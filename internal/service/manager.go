package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/pathwise/internal/domain"
	"github.com/alexanderramin/pathwise/internal/gateway"
	"github.com/google/uuid"
)

// State is the manager's view of the current curriculum.
type State struct {
	CurriculumID  string
	Plan          []domain.DayPlan
	CompletedDays []int
	IsLoading     bool
	IsGenerated   bool
	CurrentTopic  string
	Preferences   *domain.Preferences
}

func (s State) clone() State {
	out := s
	out.Plan = domain.CloneDays(s.Plan)
	out.CompletedDays = append([]int{}, s.CompletedDays...)
	if s.Preferences != nil {
		p := clonePrefs(*s.Preferences)
		out.Preferences = &p
	}
	return out
}

func (s State) progress() domain.Progress {
	return domain.NewProgress(len(s.CompletedDays), len(s.Plan))
}

func clonePrefs(p domain.Preferences) domain.Preferences {
	p.Styles = append([]domain.Style(nil), p.Styles...)
	return p
}

// Manager owns the single curriculum state. Every mutation is serialized
// under one lock, and readers only ever see copies.
type Manager struct {
	mu     sync.Mutex
	state  State
	genSeq uint64

	source     CurriculumSource
	sourceName string
	store      Store
	notifier   Notifier
	observer   UseCaseObserver
	timeout    time.Duration
	now        func() time.Time
}

type Option func(*Manager)

// WithStore persists every state change. Without a store the manager is
// purely in-memory.
func WithStore(s Store) Option {
	return func(m *Manager) { m.store = s }
}

func WithNotifier(n Notifier) Option {
	return func(m *Manager) {
		if n != nil {
			m.notifier = n
		}
	}
}

func WithObserver(o UseCaseObserver) Option {
	return func(m *Manager) {
		if o != nil {
			m.observer = o
		}
	}
}

// WithGenerateTimeout bounds each source call. Zero disables the bound.
func WithGenerateTimeout(d time.Duration) Option {
	return func(m *Manager) { m.timeout = d }
}

// WithSourceName labels stored curricula with where they came from.
func WithSourceName(name string) Option {
	return func(m *Manager) { m.sourceName = name }
}

func NewManager(source CurriculumSource, opts ...Option) *Manager {
	m := &Manager{
		source:     source,
		sourceName: "local",
		notifier:   noopNotifier{},
		observer:   NoopUseCaseObserver{},
		timeout:    DefaultConfig().GenerateTimeout,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Snapshot returns a deep copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.clone()
}

func (m *Manager) Progress() domain.Progress {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.progress()
}

func (m *Manager) IsComplete() bool {
	return m.Progress().IsComplete()
}

// Load hydrates the state from the store's active curriculum. It is a no-op
// without a store or without an active curriculum.
func (m *Manager) Load(ctx context.Context) error {
	if m.store == nil {
		return nil
	}
	c, err := m.store.Active(ctx)
	if errors.Is(err, ErrNoCurriculum) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading active curriculum: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.applyCurriculum(c)
	return nil
}

func (m *Manager) applyCurriculum(c *domain.Curriculum) {
	prefs := clonePrefs(c.Preferences)
	m.state = State{
		CurriculumID:  c.ID,
		Plan:          domain.CloneDays(c.Days),
		CompletedDays: append([]int{}, c.CompletedDays...),
		IsLoading:     m.state.IsLoading,
		IsGenerated:   true,
		CurrentTopic:  c.DisplayTopic,
		Preferences:   &prefs,
	}
}

// GenerateFromPreferences validates prefs, requests a plan from the source
// and replaces the current curriculum with it. On failure the previous plan
// is kept. A call overtaken by a newer one returns ErrSuperseded and leaves
// the state to the newer call.
func (m *Manager) GenerateFromPreferences(ctx context.Context, prefs domain.Preferences) (err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"topic":  prefs.Topic,
		"pace":   string(prefs.Pace),
		"source": m.sourceName,
	}
	defer func() {
		m.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "generate-curriculum",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	if err := prefs.Validate(); err != nil {
		return err
	}
	prefs = clonePrefs(prefs)

	m.mu.Lock()
	m.genSeq++
	token := m.genSeq
	m.state.IsLoading = true
	m.mu.Unlock()

	plan, srcErr := m.requestPlan(ctx, prefs)

	m.mu.Lock()
	if token != m.genSeq {
		m.mu.Unlock()
		fields["superseded"] = true
		return ErrSuperseded
	}

	if srcErr != nil {
		m.state.IsLoading = false
		m.mu.Unlock()
		m.notifier.Notify(Notice{Level: NoticeError, Message: msgGenerateFailed})
		return fmt.Errorf("%w: %w", ErrGeneration, srcErr)
	}

	now := m.now()
	c := &domain.Curriculum{
		ID:            uuid.New().String(),
		Preferences:   prefs,
		DisplayTopic:  prefs.DisplayTopic(),
		Source:        m.sourceName,
		Days:          plan,
		CompletedDays: []int{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if m.store != nil {
		if err := m.store.SaveActive(ctx, c); err != nil {
			m.state.IsLoading = false
			m.mu.Unlock()
			m.notifier.Notify(Notice{Level: NoticeError, Message: msgGenerateFailed})
			return fmt.Errorf("%w: saving curriculum: %w", ErrGeneration, err)
		}
	}
	m.applyCurriculum(c)
	m.state.IsLoading = false
	m.mu.Unlock()

	fields["days"] = len(plan)
	m.notifier.Notify(generatedNotice(c.DisplayTopic))
	return nil
}

// requestPlan calls the source under the generate timeout and returns a
// validated plan with every day uncompleted.
func (m *Manager) requestPlan(ctx context.Context, prefs domain.Preferences) ([]domain.DayPlan, error) {
	genCtx := ctx
	if m.timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	plan, err := m.source.RequestCurriculum(genCtx, prefs)
	if err != nil {
		if gateway.KindOf(err) == "" && errors.Is(genCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil {
			err = &gateway.Error{Kind: gateway.KindUnreachable, Err: err}
		}
		return nil, err
	}
	if err := domain.ValidatePlan(plan); err != nil {
		return nil, err
	}

	plan = domain.CloneDays(plan)
	for i := range plan {
		plan[i].Completed = false
	}
	return plan, nil
}

// ToggleDayComplete flips the completion of day. An unknown day is ignored.
// When a store is set the change is persisted first; if that fails the
// in-memory state is left unchanged.
func (m *Manager) ToggleDayComplete(ctx context.Context, day int) error {
	m.mu.Lock()
	idx := domain.FindDay(m.state.Plan, day)
	if idx < 0 {
		m.mu.Unlock()
		return nil
	}

	completing := !m.state.Plan[idx].Completed
	if m.store != nil && m.state.CurriculumID != "" {
		if err := m.store.SetDayCompleted(ctx, m.state.CurriculumID, day, completing); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("saving day %d: %w", day, err)
		}
	}

	prevCompleted := len(m.state.CompletedDays)
	m.state.Plan[idx].Completed = completing
	m.state.CompletedDays = removeDay(m.state.CompletedDays, day)
	var (
		notice Notice
		show   bool
	)
	if completing {
		m.state.CompletedDays = append(m.state.CompletedDays, day)
		notice, show = completionNotice(day, prevCompleted)
	}
	m.mu.Unlock()

	if show {
		m.notifier.Notify(notice)
	}
	return nil
}

func removeDay(days []int, day int) []int {
	out := days[:0]
	for _, d := range days {
		if d != day {
			out = append(out, d)
		}
	}
	return out
}

// Restart clears every completion and keeps the plan itself.
func (m *Manager) Restart(ctx context.Context) error {
	m.mu.Lock()
	if !m.state.IsGenerated {
		m.mu.Unlock()
		return nil
	}
	if m.store != nil && m.state.CurriculumID != "" {
		if err := m.store.ResetProgress(ctx, m.state.CurriculumID); err != nil {
			m.mu.Unlock()
			return fmt.Errorf("resetting progress: %w", err)
		}
	}
	for i := range m.state.Plan {
		m.state.Plan[i].Completed = false
	}
	m.state.CompletedDays = []int{}
	m.mu.Unlock()

	m.notifier.Notify(Notice{Level: NoticeSuccess, Message: msgRestart})
	return nil
}
