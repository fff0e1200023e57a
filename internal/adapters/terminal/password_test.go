package terminal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_ReadPasswordNonInteractive(t *testing.T) {
	var stderr bytes.Buffer
	adapter := NewAdapter(strings.NewReader("secret\n"), &stderr)

	password, err := adapter.ReadPassword(context.Background(), "Password: ")

	require.ErrorIs(t, err, ErrNonInteractive)
	assert.Empty(t, password)
	assert.Empty(t, stderr.String())
	assert.False(t, adapter.IsInteractive())
}

func TestAdapter_ReadPasswordCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAdapter(strings.NewReader(""), &bytes.Buffer{}).ReadPassword(ctx, "Password: ")

	require.ErrorIs(t, err, context.Canceled)
}
