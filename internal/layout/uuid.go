package layout

import (
	"github.com/sirupsen/logrus"

	"github.com/osinstall/osinstall/internal/disk"
)

// resolveUUIDs builds a map from partition device path to on-disk
// filesystem UUID, covering every partition on every device. Partitions
// whose UUID cannot be read (pending partitions, raw partitions, read
// failures) get an empty entry; a single failed read never aborts the
// scan.
func resolveUUIDs(devices []*disk.Device) map[string]string {
	uuids := make(map[string]string)
	for _, device := range devices {
		for idx := range device.Partitions {
			partition := &device.Partitions[idx]

			var id string
			if reader, ok := partition.Payload.(disk.UUIDReader); ok {
				var err error
				id, err = reader.ReadUUID(partition.Path)
				if err != nil {
					logrus.Debugf("no UUID for %s: %v", partition.Path, err)
					id = ""
				}
			}
			uuids[partition.Path] = id
		}
	}

	if len(uuids) == 0 {
		logrus.Debug("no UUIDs found for existing partitions")
	}
	return uuids
}
