package disk_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osinstall/osinstall/internal/disk"
)

func TestFSTypeNames(t *testing.T) {
	enumMap := map[string]disk.FSType{
		"":      disk.FS_NONE,
		"ext3":  disk.FS_EXT3,
		"ext4":  disk.FS_EXT4,
		"xfs":   disk.FS_XFS,
		"btrfs": disk.FS_BTRFS,
		"vfat":  disk.FS_VFAT,
		"ntfs":  disk.FS_NTFS,
		"swap":  disk.FS_SWAP,
		"luks":  disk.FS_LUKS,
	}
	for name, fsType := range enumMap {
		got, err := disk.NewFSType(name)
		assert.NoError(t, err)
		assert.Equal(t, fsType, got)
		assert.Equal(t, name, got.String())
	}

	_, err := disk.NewFSType("zfs")
	assert.Error(t, err)

	assert.Equal(t, "FAT32", disk.FS_VFAT.DisplayName())
	assert.Equal(t, "Linux Swap", disk.FS_SWAP.DisplayName())
	assert.Equal(t, "ext4", disk.FS_EXT4.DisplayName())
}

func TestPartitionFSType(t *testing.T) {
	raw := disk.Partition{Path: "/dev/sda1"}
	assert.Equal(t, disk.FS_NONE, raw.FSType())
	assert.Nil(t, raw.LUKS())

	plain := disk.Partition{
		Path:    "/dev/sda2",
		Payload: &disk.Filesystem{Type: disk.FS_EXT4},
	}
	assert.Equal(t, disk.FS_EXT4, plain.FSType())
	assert.Nil(t, plain.LUKS())

	luks := disk.Partition{
		Path:  "/dev/sda3",
		Roles: disk.RoleLUKS,
		Payload: &disk.LUKSContainer{
			MapperName: "/dev/mapper/luks-data",
			Payload:    &disk.Filesystem{Type: disk.FS_XFS},
		},
	}
	assert.Equal(t, disk.FS_LUKS, luks.FSType())
	require.NotNil(t, luks.LUKS())
	assert.Equal(t, disk.FS_XFS, luks.LUKS().Payload.Type)

	// the role alone does not make the payload a container
	mislabeled := disk.Partition{
		Path:    "/dev/sda4",
		Roles:   disk.RoleLUKS,
		Payload: &disk.Filesystem{Type: disk.FS_EXT4},
	}
	assert.Equal(t, disk.FS_EXT4, mislabeled.FSType())
	assert.Nil(t, mislabeled.LUKS())
}

func TestDeviceClone(t *testing.T) {
	device := &disk.Device{
		Path: "/dev/sda",
		Size: 64 * 1024 * 1024 * 1024,
		Partitions: []disk.Partition{
			{
				Path:       "/dev/sda1",
				MountPoint: "/",
				Payload:    &disk.Filesystem{Type: disk.FS_EXT4, Label: "root"},
			},
			{
				Path:  "/dev/sda2",
				Roles: disk.RoleLUKS,
				Payload: &disk.LUKSContainer{
					MapperName: "/dev/mapper/luks-home",
					Passphrase: "hunter2",
					Payload:    &disk.Filesystem{Type: disk.FS_EXT4},
				},
			},
		},
	}

	clone := device.Clone()
	require.Equal(t, device, clone)

	clone.Partitions[0].Payload.(*disk.Filesystem).Label = "changed"
	assert.Equal(t, "root", device.Partitions[0].Payload.(*disk.Filesystem).Label)

	clone.Partitions[1].Payload.(*disk.LUKSContainer).Payload.Type = disk.FS_BTRFS
	assert.Equal(t, disk.FS_EXT4, device.Partitions[1].Payload.(*disk.LUKSContainer).Payload.Type)
}

func TestFindPartitionByMountPoint(t *testing.T) {
	devices := []*disk.Device{
		{
			Path: "/dev/sda",
			Partitions: []disk.Partition{
				{Path: "/dev/sda1", MountPoint: "/boot"},
				{Path: "/dev/sda2", MountPoint: "/"},
			},
		},
		{
			Path: "/dev/sdb",
			Partitions: []disk.Partition{
				{Path: "/dev/sdb1", MountPoint: "/home"},
			},
		},
	}

	p := disk.FindPartitionByMountPoint(devices, "/home")
	require.NotNil(t, p)
	assert.Equal(t, "/dev/sdb1", p.Path)

	p = disk.FindPartitionByMountPoint(devices, "/")
	require.NotNil(t, p)
	assert.Equal(t, "/dev/sda2", p.Path)

	assert.Nil(t, disk.FindPartitionByMountPoint(devices, "/srv"))
	assert.Nil(t, disk.FindPartitionByMountPoint(nil, "/"))
}

func TestGenUUID(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	fs := &disk.Filesystem{Type: disk.FS_EXT4}
	fs.GenUUID(rng)
	assert.NotEmpty(t, fs.UUID)

	keep := fs.UUID
	fs.GenUUID(rng)
	assert.Equal(t, keep, fs.UUID)

	lc := &disk.LUKSContainer{MapperName: "/dev/mapper/luks-root"}
	lc.GenUUID(rng)
	assert.NotEmpty(t, lc.UUID)
	assert.NotEqual(t, fs.UUID, lc.UUID)
}

func TestReadUUID(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Symlink("../../sda2", filepath.Join(dir, "c79e1013-3bc8-4934-9f6e-a10e7f2ffb4d")))
	require.NoError(t, os.Symlink("../../sdb1", filepath.Join(dir, "8D14-D11F")))

	restore := disk.MockByUUIDDir(dir)
	defer restore()

	fs := &disk.Filesystem{Type: disk.FS_EXT4}
	id, err := fs.ReadUUID("/dev/sda2")
	require.NoError(t, err)
	assert.Equal(t, "c79e1013-3bc8-4934-9f6e-a10e7f2ffb4d", id)

	id, err = fs.ReadUUID("/dev/sdb1")
	require.NoError(t, err)
	assert.Equal(t, "8D14-D11F", id)

	_, err = fs.ReadUUID("/dev/sdc1")
	assert.Error(t, err)

	lc := &disk.LUKSContainer{}
	id, err = lc.ReadUUID("/dev/sda2")
	require.NoError(t, err)
	assert.Equal(t, "c79e1013-3bc8-4934-9f6e-a10e7f2ffb4d", id)
}

func TestReadUUIDMissingDir(t *testing.T) {
	restore := disk.MockByUUIDDir(filepath.Join(t.TempDir(), "missing"))
	defer restore()

	fs := &disk.Filesystem{Type: disk.FS_EXT4}
	_, err := fs.ReadUUID("/dev/sda1")
	assert.Error(t, err)
}
