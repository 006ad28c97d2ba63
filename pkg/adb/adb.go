// Package adb implements selector.Toggler against a device or emulator
// reachable over adb, by shelling out to the platform package manager.
package adb

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/arthur-debert/iconshift/pkg/android"
	ierrors "github.com/arthur-debert/iconshift/pkg/errors"
	"github.com/arthur-debert/iconshift/pkg/logging"
)

// Runner executes one adb invocation and returns its combined output.
// Injectable so tests never need a device.
type Runner func(args ...string) (string, error)

// Device is an adb-reachable application whose launcher components can
// be toggled. It satisfies selector.Toggler.
type Device struct {
	serial string
	pkg    string
	run    Runner
}

// New creates a Device bound to an application package. serial may be
// empty when only one device is attached.
func New(serial, pkg string) *Device {
	return &Device{serial: serial, pkg: pkg, run: execRunner}
}

// NewWithRunner creates a Device with a custom command runner
func NewWithRunner(serial, pkg string, run Runner) *Device {
	return &Device{serial: serial, pkg: pkg, run: run}
}

func execRunner(args ...string) (string, error) {
	out, err := exec.Command("adb", args...).CombinedOutput()
	return string(out), err
}

// Enable enables a package-relative component via pm
func (d *Device) Enable(component string) error {
	_, err := d.pm("enable", d.flatten(component))
	return err
}

// Disable disables a package-relative component via pm. disable-user is
// used so the change survives without root.
func (d *Device) Disable(component string) error {
	_, err := d.pm("disable-user", "--user", "0", d.flatten(component))
	return err
}

// State reports whether a component is currently enabled, by reading
// the package's component-enabled-state table from dumpsys. Components
// in neither the enabled nor the disabled list are in their manifest
// default state: enabled for the baseline activity, disabled for alias
// components.
func (d *Device) State(component string) (bool, error) {
	out, err := d.shell("dumpsys", "package", d.pkg)
	if err != nil {
		return false, err
	}
	if strings.Contains(out, "Unable to find package") {
		return false, ierrors.Newf(ierrors.ErrComponentNotFound,
			"package %s is not installed", d.pkg)
	}

	qualified := android.Qualified(d.pkg, component)
	switch sectionOf(out, qualified) {
	case "enabledComponents:":
		return true, nil
	case "disabledComponents:":
		return false, nil
	default:
		return component == android.BaselineActivity, nil
	}
}

// flatten renders a component in pm's pkg/component syntax
func (d *Device) flatten(component string) string {
	return d.pkg + "/" + component
}

func (d *Device) pm(args ...string) (string, error) {
	out, err := d.shell(append([]string{"pm"}, args...)...)
	if err != nil {
		return out, err
	}
	if strings.Contains(out, "Unknown component") || strings.Contains(out, "does not exist") {
		return out, ierrors.Newf(ierrors.ErrComponentNotFound,
			"component is not declared on the device: %s", strings.TrimSpace(out))
	}
	if strings.Contains(out, "Error:") || strings.Contains(out, "Exception") {
		return out, ierrors.Newf(ierrors.ErrInternal, "pm failed: %s", strings.TrimSpace(out))
	}
	return out, nil
}

func (d *Device) shell(args ...string) (string, error) {
	logger := logging.GetLogger("adb")

	full := make([]string, 0, len(args)+3)
	if d.serial != "" {
		full = append(full, "-s", d.serial)
	}
	full = append(full, "shell")
	full = append(full, args...)

	logger.Trace().Strs("args", full).Msg("adb")
	out, err := d.run(full...)
	if err != nil {
		if isNoContext(out, err) {
			return out, ierrors.Wrap(err, ierrors.ErrNoContext,
				"no device context available for adb")
		}
		return out, ierrors.Wrapf(err, ierrors.ErrInternal, "adb failed: %s", strings.TrimSpace(out))
	}
	return out, nil
}

// isNoContext recognizes the failure modes that mean "no execution
// context at all": adb missing, or no usable device attached.
func isNoContext(out string, err error) bool {
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	for _, marker := range []string{
		"no devices/emulators found",
		"device offline",
		"device unauthorized",
		"more than one device",
	} {
		if strings.Contains(out, marker) {
			return true
		}
	}
	return false
}

// sectionOf scans dumpsys package output and returns the header of the
// component-state section that lists the qualified component name, or
// an empty string when it appears in neither.
func sectionOf(out, qualified string) string {
	section := ""
	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimSpace(line)
		switch trimmed {
		case "enabledComponents:", "disabledComponents:":
			section = trimmed
			continue
		}
		if section == "" {
			continue
		}
		// Section entries are indented component names; anything else
		// ends the section.
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			section = ""
			continue
		}
		if trimmed == qualified {
			return section
		}
	}
	return ""
}
