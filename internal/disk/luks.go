package disk

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// LUKSContainer is the payload entity for a partition holding block-level
// encryption. It may wrap an inner filesystem; Payload is nil as long as
// the container has not been unlocked and the inner filesystem is unknown.
type LUKSContainer struct {
	// MapperName is the full device-mapper name the container is (or will
	// be) opened under, e.g. /dev/mapper/luks-data.
	MapperName string
	Passphrase string
	// Intended ID of the container for partitions that still have to be
	// set up; distinct from the inner filesystem's UUID.
	UUID string

	Payload *Filesystem
}

func (lc *LUKSContainer) IsContainer() bool {
	return true
}

func (lc *LUKSContainer) GetItemCount() uint {
	if lc.Payload == nil {
		return 0
	}
	return 1
}

func (lc *LUKSContainer) GetChild(n uint) Entity {
	if n != 0 {
		panic(fmt.Sprintf("invalid child index for LUKSContainer: %d != 0", n))
	}
	return lc.Payload
}

func (lc *LUKSContainer) Clone() Entity {
	if lc == nil {
		return nil
	}

	clone := &LUKSContainer{
		MapperName: lc.MapperName,
		Passphrase: lc.Passphrase,
		UUID:       lc.UUID,
	}
	if lc.Payload != nil {
		inner, cloneOk := lc.Payload.Clone().(*Filesystem)
		if !cloneOk {
			panic("Filesystem.Clone() returned an Entity that cannot be converted to *Filesystem; this is a programming error")
		}
		clone.Payload = inner
	}
	return clone
}

func (lc *LUKSContainer) GenUUID(rng *rand.Rand) {
	if lc == nil {
		return
	}

	if lc.UUID == "" {
		lc.UUID = uuid.Must(newRandomUUIDFromReader(rng)).String()
	}
}

// ReadUUID reports the UUID the kernel currently associates with the
// given device node. For a LUKS partition this is the container UUID, not
// the UUID of the inner filesystem.
func (lc *LUKSContainer) ReadUUID(devicePath string) (string, error) {
	return readDeviceUUID(devicePath)
}
