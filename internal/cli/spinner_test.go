package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/pathwise/internal/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpinnerModel_ShowsLabelUntilDone(t *testing.T) {
	d := teatest.New(t, newSpinnerModel("Generating your Go curriculum...", nil), teatest.WithSize(80, 24))
	d.DrainInit()

	assert.Contains(t, d.View(), "Generating your Go curriculum...")
	assert.False(t, d.Quitting)

	d.Send(workDoneMsg{})
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestSpinnerModel_CtrlCCancelsWork(t *testing.T) {
	cancelled := false
	d := teatest.New(t, newSpinnerModel("working", func() { cancelled = true }))
	d.DrainInit()

	d.PressCtrlC()
	assert.True(t, cancelled)
	assert.True(t, d.Quitting)
}

func TestSpinnerModel_EscCancelsWork(t *testing.T) {
	cancelled := false
	d := teatest.New(t, newSpinnerModel("working", func() { cancelled = true }))
	d.DrainInit()

	d.PressEsc()
	assert.True(t, cancelled)
	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestSpinnerModel_IgnoresOtherKeys(t *testing.T) {
	d := teatest.New(t, newSpinnerModel("working", nil))
	d.DrainInit()

	d.PressKey('q')
	assert.False(t, d.Quitting)
	assert.Contains(t, d.View(), "working")
}

func TestRunWithSpinner_ReturnsWorkError(t *testing.T) {
	boom := errors.New("boom")
	var out bytes.Buffer

	err := runWithSpinner(context.Background(), strings.NewReader(""), &out, "working", func(ctx context.Context) error {
		return boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
