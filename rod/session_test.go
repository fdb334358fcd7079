//go:build integration && !windows

package rod_test

import (
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/codewiki/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_Close_KillsLauncherProcess(t *testing.T) {
	t.Parallel()

	session, err := rod.NewSession()
	require.NoError(t, err)

	pid := session.LauncherPID()
	require.NotZero(t, pid, "launcher PID should be set")

	// Signal 0 checks the process exists without affecting it
	err = syscall.Kill(pid, syscall.Signal(0))
	require.NoError(t, err, "launcher process should be running before Close()")

	err = session.Close()
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)

	err = syscall.Kill(pid, syscall.Signal(0))
	assert.Error(t, err, "launcher process should be terminated after Close()")
}

func TestSession_Close_Idempotent(t *testing.T) {
	t.Parallel()

	session, err := rod.NewSession()
	require.NoError(t, err)

	require.NoError(t, session.Close())
	require.NoError(t, session.Close())
	assert.Nil(t, session.Browser())
	assert.Zero(t, session.LauncherPID())
}

func TestNewSession_WithBrowserBin_MissingBinary(t *testing.T) {
	t.Parallel()

	session, err := rod.NewSession(rod.WithBrowserBin(filepath.Join(t.TempDir(), "no-such-chrome")))

	require.Error(t, err)
	assert.Nil(t, session)
}
