package disk

// A Device is a storage device exposing an ordered list of partitions.
// The partition order is the order in which the partitioning layer
// reported them and is preserved throughout; consumers depend on it.
type Device struct {
	Path       string // device node, e.g. /dev/sda
	Size       uint64 // size of the device in bytes
	Partitions []Partition
}

func (d *Device) Clone() *Device {
	if d == nil {
		return nil
	}

	clone := &Device{
		Path:       d.Path,
		Size:       d.Size,
		Partitions: make([]Partition, len(d.Partitions)),
	}

	for idx := range d.Partitions {
		part := d.Partitions[idx].Clone()
		p, cloneOk := part.(*Partition)
		if !cloneOk {
			panic("Partition.Clone() returned an Entity that cannot be converted to *Partition; this is a programming error")
		}
		clone.Partitions[idx] = *p
	}
	return clone
}

// FindPartitionByMountPoint returns the first partition across all devices
// that is currently assigned the given mount point, or nil if there is no
// such partition.
func FindPartitionByMountPoint(devices []*Device, mountPoint string) *Partition {
	for _, device := range devices {
		for idx := range device.Partitions {
			if device.Partitions[idx].MountPoint == mountPoint {
				return &device.Partitions[idx]
			}
		}
	}
	return nil
}
