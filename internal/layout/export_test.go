package layout

import "os/exec"

var (
	LuksUUID     = luksUUID
	ResolveUUIDs = resolveUUIDs

	EntryForPartition = entryForPartition
)

// MockLUKSUUIDCommand replaces the cryptsetup invocation and returns a
// restore function.
func MockLUKSUUIDCommand(f func(devicePath string) *exec.Cmd) (restore func()) {
	old := luksUUIDCommand
	luksUUIDCommand = f
	return func() {
		luksUUIDCommand = old
	}
}
