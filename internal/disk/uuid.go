package disk

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Directory of UUID symlinks maintained by the kernel (via udev). Each
// entry is named after a filesystem or container UUID and points at the
// device node carrying it. Overridden in tests.
var byUUIDDir = "/dev/disk/by-uuid"

// readDeviceUUID resolves the UUID for a device node by scanning the
// by-uuid symlink directory. This reads kernel metadata only; no probe
// tool is invoked. Partitions that have not been created or formatted yet
// have no entry and report an error.
func readDeviceUUID(devicePath string) (string, error) {
	entries, err := os.ReadDir(byUUIDDir)
	if err != nil {
		return "", fmt.Errorf("cannot list %s: %v", byUUIDDir, err)
	}

	want := filepath.Base(devicePath)
	for _, entry := range entries {
		target, err := os.Readlink(filepath.Join(byUUIDDir, entry.Name()))
		if err != nil {
			continue
		}
		if filepath.Base(target) == want {
			return entry.Name(), nil
		}
	}
	return "", fmt.Errorf("no UUID recorded for %s", devicePath)
}

func newRandomUUIDFromReader(r io.Reader) (uuid.UUID, error) {
	var id uuid.UUID
	_, err := io.ReadFull(r, id[:])
	if err != nil {
		return uuid.Nil, err
	}
	id[6] = (id[6] & 0x0f) | 0x40 // Version 4
	id[8] = (id[8] & 0x3f) | 0x80 // Variant is 10
	return id, nil
}
