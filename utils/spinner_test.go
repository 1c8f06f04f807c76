package utils

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSpinner_StartStop(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "warming up", time.Millisecond, false)
	s.StopMsg = "done\n"

	s.Start()
	s.Start()
	time.Sleep(5 * time.Millisecond)
	s.Stop()
	s.Stop()

	out := buf.String()
	assert.Contains(t, out, "warming up")
	assert.True(t, strings.HasSuffix(out, "done\n"))
	assert.Equal(t, 1, strings.Count(out, "done"))
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "idle", time.Millisecond, false)
	s.Stop()
	assert.Empty(t, buf.String())
}
