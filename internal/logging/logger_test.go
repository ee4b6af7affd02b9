package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewLevels(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, New("debug", "json").GetLevel())
	assert.Equal(t, zerolog.WarnLevel, New("WARN", "json").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("", "json").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New("bogus", "console").GetLevel())
}
