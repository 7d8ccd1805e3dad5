// Package layout builds the canonical description of the target machine's
// disk layout and publishes it for later installation stages.
//
// The description covers every partition on every provided device,
// including partitions that only exist as pending operations, and the
// resolved install location for the boot loader. It is deliberately
// best-effort: anything that cannot be resolved degrades to an empty or
// absent value instead of failing, because an incomplete layout
// description is preferable to blocking the installation.
package layout

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/osinstall/osinstall/internal/disk"
	"github.com/osinstall/osinstall/internal/store"
)

// Store keys written by the fill job. Later stages read these.
const (
	KeyPartitions = "partitions"
	KeyBootLoader = "bootLoader"
)

// BootLoaderRecord names the device node the boot loader will be
// installed on.
type BootLoaderRecord struct {
	InstallPath string `json:"installPath"`
}

// A FillStorageJob publishes the partition list and the boot loader
// location to the shared store. The device list is consumed read-only and
// its traversal order (devices as given, partitions as the partitioning
// layer reported them) is preserved in the published list.
type FillStorageJob struct {
	Devices        []*disk.Device
	BootLoaderPath string // empty means no boot loader install requested
	Store          *store.GlobalStore
}

func NewFillStorageJob(devices []*disk.Device, bootLoaderPath string, globalStore *store.GlobalStore) *FillStorageJob {
	return &FillStorageJob{
		Devices:        devices,
		BootLoaderPath: bootLoaderPath,
		Store:          globalStore,
	}
}

// PartitionEntries builds the full partition list: one entry per
// partition, in device-then-partition order, with no filtering. UUIDs are
// resolved once up front for all partitions and looked up per entry.
func (job *FillStorageJob) PartitionEntries() []PartitionEntry {
	uuids := resolveUUIDs(job.Devices)

	logrus.Debug("building partition information list")
	entries := []PartitionEntry{}
	for _, device := range job.Devices {
		logrus.Debugf("partitions on %s", device.Path)
		for idx := range device.Partitions {
			partition := &device.Partitions[idx]
			entries = append(entries, entryForPartition(partition, uuids[partition.Path]))
		}
	}
	return entries
}

// BootLoaderRecord resolves the requested boot loader path to an install
// location. A path that already names a device node is used unchanged;
// anything else is treated as a mount point and resolved to the partition
// mounted there. Returns nil when no partition has the mount point.
func (job *FillStorageJob) BootLoaderRecord() *BootLoaderRecord {
	path := job.BootLoaderPath
	if !strings.HasPrefix(path, "/dev/") {
		partition := disk.FindPartitionByMountPoint(job.Devices, path)
		if partition == nil {
			return nil
		}
		path = partition.Path
	}
	return &BootLoaderRecord{InstallPath: path}
}

// Run publishes the layout description. The partition list is always
// written under "partitions". The "bootLoader" key gets the resolved
// record when a path was requested and could be resolved, and the
// explicit null marker otherwise; a requested-but-unresolved path is
// logged but stored the same way as "not requested". Run has no failure
// outcome.
func (job *FillStorageJob) Run() {
	job.Store.Set(KeyPartitions, job.PartitionEntries())
	logrus.Debugf("saved partition information to storage key %q", KeyPartitions)

	if job.BootLoaderPath != "" {
		record := job.BootLoaderRecord()
		if record == nil {
			logrus.Debug("failed to find path for boot loader")
			job.Store.Set(KeyBootLoader, store.Null)
			return
		}
		logrus.Debugf("writing boot loader path %q", record.InstallPath)
		job.Store.Set(KeyBootLoader, record)
	} else {
		logrus.Debug("writing empty boot loader value")
		job.Store.Set(KeyBootLoader, store.Null)
	}
}

// Summary renders one human-readable line per partition that has both a
// mount point and a filesystem, plus a final line for the boot loader
// when an install was requested. It is used for progress and confirmation
// output only; entries skipped here are still published by Run.
func (job *FillStorageJob) Summary() []string {
	var lines []string
	for _, entry := range job.PartitionEntries() {
		if entry.MountPoint == "" || entry.FS == "" {
			continue
		}

		switch {
		case entry.Device == "" && entry.MountPoint == "/":
			lines = append(lines, fmt.Sprintf("Install on new %s system partition.", entry.FS))
		case entry.Device == "":
			lines = append(lines, fmt.Sprintf("Set up new %s partition with mount point %s.", entry.FS, entry.MountPoint))
		case entry.MountPoint == "/":
			lines = append(lines, fmt.Sprintf("Install on %s system partition %s.", entry.FS, entry.Device))
		default:
			lines = append(lines, fmt.Sprintf("Set up %s partition %s with mount point %s.", entry.FS, entry.Device, entry.MountPoint))
		}
	}

	if job.BootLoaderPath != "" {
		lines = append(lines, fmt.Sprintf("Install boot loader on %s.", job.BootLoaderPath))
	}
	return lines
}
