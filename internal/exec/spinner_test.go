package exec

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitModel_Running(t *testing.T) {
	m := newWaitModel("Installing dependencies")
	assert.Contains(t, m.View(), "Installing dependencies")
	assert.NotNil(t, m.Init())
}

func TestWaitModel_Finished(t *testing.T) {
	m := newWaitModel("Installing dependencies")

	_, cmd := m.Update(finishedMsg{})
	assert.NotNil(t, cmd)
	assert.Equal(t, "✓ Installing dependencies\n", m.View())
}

func TestWaitModel_Interrupted(t *testing.T) {
	m := newWaitModel("Installing dependencies")

	m.Update(finishedMsg{err: errors.New("cancelled")})
	assert.Equal(t, "✗ Installing dependencies\n", m.View())

	_, cmd := m.Update(m.spin.Tick())
	assert.Nil(t, cmd)
}

func TestWaitWithSpinner(t *testing.T) {
	var buf bytes.Buffer
	done := make(chan struct{})
	close(done)

	require.NoError(t, WaitWithSpinner(context.Background(), &buf, "Installing", done))
	assert.Contains(t, buf.String(), "Installing")
}

func TestWaitWithSpinner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := WaitWithSpinner(ctx, &bytes.Buffer{}, "Installing", make(chan struct{}))
	assert.ErrorIs(t, err, context.Canceled)
}
