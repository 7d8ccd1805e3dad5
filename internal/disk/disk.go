// Package disk contains data types to describe the disk layout of the
// target machine.
//
// Device, Partition and the filesystem entities model the layout as it
// currently exists, including partitions that are only planned and have
// not been created on disk yet. The entity data model follows a small
// tree structure: a Partition carries a payload entity, which is either
// a plain Filesystem or a LUKSContainer that may in turn wrap an inner
// Filesystem. This replaces runtime type inspection of a filesystem
// object with an explicit variant tree.
package disk

import (
	"fmt"
	"math/rand"
)

// Entity is the base interface for all disk-related entities.
type Entity interface {
	// Clone returns a deep copy of the entity.
	Clone() Entity
}

// Container is the interface for entities that can contain other entities.
type Container interface {
	Entity

	// GetItemCount returns the number of actual child entities.
	GetItemCount() uint

	// GetChild returns the child entity at the given index.
	GetChild(n uint) Entity
}

// A UniqueEntity is an entity that can be uniquely identified via a UUID.
//
// GenUUID generates a UUID for the entity if it does not yet have one.
type UniqueEntity interface {
	Entity
	GenUUID(rng *rand.Rand)
}

// A UUIDReader is an entity that can report the UUID the kernel currently
// associates with the device node it lives on.
type UUIDReader interface {
	Entity

	// ReadUUID returns the on-disk UUID for the given device node.
	ReadUUID(devicePath string) (string, error)
}

// FSType is the filesystem type enum.
//
// FS_NONE stands for a raw partition without any filesystem, FS_LUKS for
// a LUKS encryption container (whose inner filesystem, if known, has its
// own FSType).
type FSType uint64

const (
	FS_NONE FSType = iota
	FS_EXT2
	FS_EXT3
	FS_EXT4
	FS_XFS
	FS_BTRFS
	FS_VFAT
	FS_NTFS
	FS_SWAP
	FS_LUKS
)

// String returns the canonical (untranslated) filesystem name, as used in
// mkfs tool names and the published partition records.
func (f FSType) String() string {
	switch f {
	case FS_NONE:
		return ""
	case FS_EXT2:
		return "ext2"
	case FS_EXT3:
		return "ext3"
	case FS_EXT4:
		return "ext4"
	case FS_XFS:
		return "xfs"
	case FS_BTRFS:
		return "btrfs"
	case FS_VFAT:
		return "vfat"
	case FS_NTFS:
		return "ntfs"
	case FS_SWAP:
		return "swap"
	case FS_LUKS:
		return "luks"
	default:
		panic(fmt.Sprintf("unknown or unsupported filesystem type with enum value %d", f))
	}
}

// DisplayName returns the user-visible filesystem name for progress and
// confirmation output.
func (f FSType) DisplayName() string {
	switch f {
	case FS_NONE:
		return ""
	case FS_VFAT:
		return "FAT32"
	case FS_NTFS:
		return "NTFS"
	case FS_SWAP:
		return "Linux Swap"
	case FS_LUKS:
		return "LUKS"
	default:
		return f.String()
	}
}

func NewFSType(s string) (FSType, error) {
	switch s {
	case "":
		return FS_NONE, nil
	case "ext2":
		return FS_EXT2, nil
	case "ext3":
		return FS_EXT3, nil
	case "ext4":
		return FS_EXT4, nil
	case "xfs":
		return FS_XFS, nil
	case "btrfs":
		return FS_BTRFS, nil
	case "vfat":
		return FS_VFAT, nil
	case "ntfs":
		return FS_NTFS, nil
	case "swap":
		return FS_SWAP, nil
	case "luks":
		return FS_LUKS, nil
	default:
		return FS_NONE, fmt.Errorf("unknown or unsupported filesystem type name: %s", s)
	}
}
