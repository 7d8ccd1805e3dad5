package disk

import (
	"math/rand"

	"github.com/google/uuid"
)

// Filesystem is the payload entity for a plain, unencrypted filesystem.
type Filesystem struct {
	Type FSType
	// Intended ID of the filesystem for partitions that still have to be
	// formatted; the on-disk UUID is read via ReadUUID instead. vfat
	// doesn't use traditional UUIDs, therefore this is just a string.
	UUID  string
	Label string
}

func (fs *Filesystem) IsContainer() bool {
	return false
}

// Clone the filesystem structure
func (fs *Filesystem) Clone() Entity {
	if fs == nil {
		return nil
	}

	return &Filesystem{
		Type:  fs.Type,
		UUID:  fs.UUID,
		Label: fs.Label,
	}
}

func (fs *Filesystem) GenUUID(rng *rand.Rand) {
	if fs.UUID == "" {
		fs.UUID = uuid.Must(newRandomUUIDFromReader(rng)).String()
	}
}

// ReadUUID reports the UUID the kernel currently associates with the
// given device node.
func (fs *Filesystem) ReadUUID(devicePath string) (string, error) {
	return readDeviceUUID(devicePath)
}
