//go:build !windows

package quiltscan

import (
	"errors"
	"os"
	"reflect"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/term"
)

func openTTY(t *testing.T) (master, tty *os.File) {
	t.Helper()

	master, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo terminals are not available: %v", err)
	}
	t.Cleanup(func() {
		master.Close()
		tty.Close()
	})
	return master, tty
}

func TestKeys_TerminalReadsSingleKeyInRawMode(t *testing.T) {
	master, tty := openTTY(t)
	fd := int(tty.Fd())

	initial, err := term.GetState(fd)
	require.NoError(t, err)

	keys := NewKeyReader(tty, nil)
	require.IsType(t, &rawKeyReader{}, keys)

	type result struct {
		key byte
		err error
	}
	done := make(chan result, 1)
	go func() {
		key, err := keys.ReadKey()
		done <- result{key, err}
	}()

	// Without a newline the key only reaches the reader once canonical mode is off.
	require.Eventually(t, func() bool {
		state, err := term.GetState(fd)
		return err == nil && !reflect.DeepEqual(initial, state)
	}, 2*time.Second, 5*time.Millisecond, "terminal not switched to raw mode")

	_, err = master.Write([]byte{'x'})
	require.NoError(t, err)

	select {
	case res := <-done:
		require.NoError(t, res.err)
		assert.Equal(t, byte('x'), res.key)
	case <-time.After(2 * time.Second):
		t.Fatal("key not delivered")
	}

	restored, err := term.GetState(fd)
	require.NoError(t, err)
	assert.Equal(t, initial, restored)
}

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestKeys_TerminalRestoredAfterReadError(t *testing.T) {
	_, tty := openTTY(t)
	fd := int(tty.Fd())

	initial, err := term.GetState(fd)
	require.NoError(t, err)

	readErr := errors.New("input/output error")
	keys := &rawKeyReader{fd: fd, r: failingReader{readErr}}

	_, err = keys.ReadKey()
	assert.ErrorIs(t, err, readErr)
	assert.NotErrorIs(t, err, ErrTerminalMode)

	restored, err := term.GetState(fd)
	require.NoError(t, err)
	assert.Equal(t, initial, restored)
}
