package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/osinstall/osinstall/internal/disk"
)

// A plan file describes the devices and partitions the installer decided
// on, in the order the partitioning layer reported them.
type plan struct {
	Devices []planDevice `toml:"device"`
}

type planDevice struct {
	Path       string          `toml:"path"`
	Size       uint64          `toml:"size"`
	Partitions []planPartition `toml:"partition"`
}

type planPartition struct {
	Path       string    `toml:"path"`
	Size       uint64    `toml:"size"`
	MountPoint string    `toml:"mountpoint"`
	FS         string    `toml:"fs"`
	New        bool      `toml:"new"`
	LUKS       *planLUKS `toml:"luks"`
}

type planLUKS struct {
	MapperName string `toml:"mapper-name"`
	Passphrase string `toml:"passphrase"`
	InnerFS    string `toml:"inner-fs"`
}

// loadPlan parses a plan file into the device model. New partitions get
// intended UUIDs generated for their payloads, so that formatting stages
// know what to write.
func loadPlan(path string) ([]*disk.Device, error) {
	var p plan
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("cannot parse plan %s: %v", path, err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	devices := make([]*disk.Device, 0, len(p.Devices))
	for _, pd := range p.Devices {
		device := &disk.Device{
			Path: pd.Path,
			Size: pd.Size,
		}
		for _, pp := range pd.Partitions {
			partition, err := newPartition(pp, rng)
			if err != nil {
				return nil, fmt.Errorf("device %s: %v", pd.Path, err)
			}
			device.Partitions = append(device.Partitions, *partition)
		}
		devices = append(devices, device)
	}
	return devices, nil
}

func newPartition(pp planPartition, rng *rand.Rand) (*disk.Partition, error) {
	partition := &disk.Partition{
		Path:       pp.Path,
		Size:       pp.Size,
		MountPoint: pp.MountPoint,
		State:      disk.StateExisting,
	}
	if pp.New {
		partition.State = disk.StateNew
	}

	if pp.LUKS != nil {
		lc := &disk.LUKSContainer{
			MapperName: pp.LUKS.MapperName,
			Passphrase: pp.LUKS.Passphrase,
		}
		if pp.LUKS.InnerFS != "" {
			innerType, err := disk.NewFSType(pp.LUKS.InnerFS)
			if err != nil {
				return nil, fmt.Errorf("partition %s: %v", pp.Path, err)
			}
			lc.Payload = &disk.Filesystem{Type: innerType}
		}
		partition.Roles = disk.RoleLUKS
		partition.Payload = lc
	} else {
		fsType, err := disk.NewFSType(pp.FS)
		if err != nil {
			return nil, fmt.Errorf("partition %s: %v", pp.Path, err)
		}
		if fsType != disk.FS_NONE {
			partition.Payload = &disk.Filesystem{Type: fsType}
		}
	}

	if pp.New {
		if ent, ok := partition.Payload.(disk.UniqueEntity); ok {
			ent.GenUUID(rng)
		}
	}

	return partition, nil
}
