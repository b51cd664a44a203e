package logger

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_SetsLevel(t *testing.T) {
	_ = NewLogger("test", "warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	_ = NewLogger("test", "not-a-level")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	require.NotNil(t, log)
	// must not panic
	log.Info().Msg("dropped")
}

func TestFromContext_RoundTrip(t *testing.T) {
	log := Nop()
	ctx := log.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	assert.Equal(t, log.GetLevel(), got.GetLevel())
}

func TestFromContext_EmptyContext(t *testing.T) {
	got := FromContext(context.Background())
	require.NotNil(t, got)
}
