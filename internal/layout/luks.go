package layout

import (
	"bytes"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// luksUUIDCommand constructs the external command used to query the
// container-level UUID of a LUKS partition. Replaced in tests.
var luksUUIDCommand = func(devicePath string) *exec.Cmd {
	return exec.Command("cryptsetup", "luksUUID", devicePath)
}

// luksUUID returns the container UUID for the LUKS partition at the given
// device path, by running cryptsetup and waiting for it to exit. Any
// failure (cryptsetup missing, crashed, or exiting non-zero) yields an
// empty string; there is no error outcome.
func luksUUID(devicePath string) string {
	cmd := luksUUIDCommand(devicePath)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		logrus.Debugf("cannot read LUKS UUID for %s: %v", devicePath, err)
		return ""
	}
	return strings.TrimSpace(stdout.String())
}
