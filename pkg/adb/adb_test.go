package adb

import (
	"fmt"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierrors "github.com/arthur-debert/iconshift/pkg/errors"
)

const dumpsysFixture = `Packages:
  Package [com.example.app] (12345):
    userId=10123
    enabledComponents:
      com.example.app.christmasActivity
    disabledComponents:
      com.example.app.MainActivity
    grantedPermissions:
      android.permission.INTERNET
`

func TestEnableBuildsCommand(t *testing.T) {
	var got []string
	device := NewWithRunner("emulator-5554", "com.example.app", func(args ...string) (string, error) {
		got = args
		return "Component {com.example.app/.christmasActivity} new state: enabled", nil
	})

	require.NoError(t, device.Enable(".christmasActivity"))
	assert.Equal(t, []string{
		"-s", "emulator-5554", "shell", "pm", "enable", "com.example.app/.christmasActivity",
	}, got)
}

func TestDisableUsesDisableUser(t *testing.T) {
	var got []string
	device := NewWithRunner("", "com.example.app", func(args ...string) (string, error) {
		got = args
		return "Component {com.example.app/.MainActivity} new state: disabled-user", nil
	})

	require.NoError(t, device.Disable(".MainActivity"))
	assert.Equal(t, []string{
		"shell", "pm", "disable-user", "--user", "0", "com.example.app/.MainActivity",
	}, got)
}

func TestStateReadsDumpsysSections(t *testing.T) {
	device := NewWithRunner("", "com.example.app", func(args ...string) (string, error) {
		assert.Equal(t, []string{"shell", "dumpsys", "package", "com.example.app"}, args)
		return dumpsysFixture, nil
	})

	enabled, err := device.State(".christmasActivity")
	require.NoError(t, err)
	assert.True(t, enabled)

	enabled, err = device.State(".MainActivity")
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestStateFallsBackToManifestDefaults(t *testing.T) {
	// A component in neither list is in its manifest default state:
	// aliases are declared disabled, the baseline enabled.
	device := NewWithRunner("", "com.example.app", func(args ...string) (string, error) {
		return "Packages:\n  Package [com.example.app] (1):\n", nil
	})

	enabled, err := device.State(".halloweenActivity")
	require.NoError(t, err)
	assert.False(t, enabled)

	enabled, err = device.State(".MainActivity")
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestStateMissingPackage(t *testing.T) {
	device := NewWithRunner("", "com.gone.app", func(args ...string) (string, error) {
		return "Unable to find package: com.gone.app", nil
	})

	_, err := device.State(".MainActivity")
	require.Error(t, err)
	assert.Equal(t, ierrors.ErrComponentNotFound, ierrors.GetCode(err))
}

func TestUnknownComponent(t *testing.T) {
	device := NewWithRunner("", "com.example.app", func(args ...string) (string, error) {
		return "Error: Unknown component: com.example.app/.ghostActivity", nil
	})

	err := device.Enable(".ghostActivity")
	require.Error(t, err)
	assert.Equal(t, ierrors.ErrComponentNotFound, ierrors.GetCode(err))
}

func TestNoContextConditions(t *testing.T) {
	tests := []struct {
		name string
		out  string
		err  error
	}{
		{name: "adb missing", out: "", err: exec.ErrNotFound},
		{name: "no device", out: "adb: no devices/emulators found", err: fmt.Errorf("exit status 1")},
		{name: "offline", out: "error: device offline", err: fmt.Errorf("exit status 1")},
		{name: "unauthorized", out: "error: device unauthorized", err: fmt.Errorf("exit status 1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := NewWithRunner("", "com.example.app", func(args ...string) (string, error) {
				return tt.out, tt.err
			})

			err := device.Enable(".christmasActivity")
			require.Error(t, err)
			assert.Equal(t, ierrors.ErrNoContext, ierrors.GetCode(err))
		})
	}
}

func TestPmFailureSurfacesOutput(t *testing.T) {
	device := NewWithRunner("", "com.example.app", func(args ...string) (string, error) {
		return "Error: java.lang.SecurityException: Permission Denial", nil
	})

	err := device.Enable(".christmasActivity")
	require.Error(t, err)
	assert.Equal(t, ierrors.ErrInternal, ierrors.GetCode(err))
	assert.True(t, strings.Contains(err.Error(), "Permission Denial"))
}
