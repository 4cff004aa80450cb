package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stealthycommerce/stealthy/internal/shared/logger/loggertest"
)

func TestSafeGo_RunsFunction(t *testing.T) {
	log := loggertest.NewRecorder()
	ran := false

	<-SafeGo(log, "receipt", func() { ran = true })

	assert.True(t, ran)
	assert.Empty(t, log.Entries())
}

func TestSafeGo_RecoversPanic(t *testing.T) {
	log := loggertest.NewRecorder()

	<-SafeGo(log, "receipt", func() { panic("smtp exploded") })

	entries := log.EntriesAt("error")
	require.Len(t, entries, 1)
	assert.Equal(t, "goroutine panicked", entries[0].Message)
	name, _ := entries[0].Field("goroutine")
	assert.Equal(t, "receipt", name)
	value, _ := entries[0].Field("error")
	err, ok := value.(error)
	require.True(t, ok)
	assert.EqualError(t, err, "smtp exploded")
}
