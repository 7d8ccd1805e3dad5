package layout

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/osinstall/osinstall/internal/common"
	"github.com/osinstall/osinstall/internal/disk"
)

// PartitionEntry is the flat record describing one partition in the
// published partition list. The JSON field names are a contract with
// later installation stages and must not change.
//
// The three LUKS fields are either all present or all absent; absence
// means "not an encryption container". LUKSUUID may point at an empty
// string when the partition is a container but its UUID could not be
// read.
type PartitionEntry struct {
	Device     string `json:"device"`
	MountPoint string `json:"mountPoint"`
	FSName     string `json:"fsName"`
	FS         string `json:"fs"`
	UUID       string `json:"uuid"`
	New        bool   `json:"new"`

	LUKSMapperName *string `json:"luksMapperName,omitempty"`
	LUKSUUID       *string `json:"luksUuid,omitempty"`
	LUKSPassphrase *string `json:"luksPassphrase,omitempty"`
}

// HasLUKS reports whether the entry carries encryption-container fields.
func (e *PartitionEntry) HasLUKS() bool {
	return e.LUKSMapperName != nil
}

// entryForPartition builds the descriptor for a single partition, given
// its pre-resolved filesystem UUID. An unresolved UUID is passed (and
// kept) as the empty string.
//
// When the partition holds a LUKS container whose inner filesystem is
// already known, fs and fsName describe the inner filesystem, so that
// later stages see the logical, post-unlock filesystem type instead of
// "luks". The container-specific fields are added only when the partition
// both has the LUKS role and actually carries a container payload; the
// role alone is not trusted.
func entryForPartition(partition *disk.Partition, uuid string) PartitionEntry {
	fsType := partition.FSType()
	if lc := partition.LUKS(); lc != nil && lc.Payload != nil {
		fsType = lc.Payload.Type
	}

	entry := PartitionEntry{
		Device:     partition.Path,
		MountPoint: partition.MountPoint,
		FSName:     fsType.DisplayName(),
		FS:         fsType.String(),
		UUID:       uuid,
		New:        partition.IsNew(),
	}

	fields := logrus.Fields{
		"device":     entry.Device,
		"mountPoint": entry.MountPoint,
		"fs":         entry.FS,
		"fsName":     entry.FSName,
		"uuid":       entry.UUID,
	}

	if partition.Roles.Has(disk.RoleLUKS) {
		if lc := partition.LUKS(); lc != nil {
			mapperName := lc.MapperName
			segments := strings.Split(mapperName, "/")
			entry.LUKSMapperName = common.ToPtr(segments[len(segments)-1])
			entry.LUKSUUID = common.ToPtr(luksUUID(partition.Path))
			entry.LUKSPassphrase = common.ToPtr(lc.Passphrase)
			fields["luksMapperName"] = *entry.LUKSMapperName
		}
	}

	logrus.WithFields(fields).Debug("mapped partition")

	return entry
}
