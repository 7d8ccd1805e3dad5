package disk

// PartitionState describes whether a partition already exists on disk or
// is a pending operation that a later stage will create.
type PartitionState uint64

const (
	StateExisting PartitionState = iota
	StateNew
)

// RoleSet is a bitmask of roles a partition can have.
type RoleSet uint64

const (
	RolePrimary RoleSet = 1 << iota
	RoleExtended
	RoleLogical
	RoleLUKS
)

func (r RoleSet) Has(role RoleSet) bool {
	return r&role != 0
}

type Partition struct {
	Path       string // device node, e.g. /dev/sda2
	Size       uint64 // size of the partition in bytes
	MountPoint string // assigned mount point, empty if none
	State      PartitionState
	Roles      RoleSet

	// If nil, the partition is raw; it doesn't contain a filesystem.
	Payload Entity
}

func (p *Partition) IsContainer() bool {
	return true
}

func (p *Partition) GetItemCount() uint {
	if p.Payload == nil {
		return 0
	}
	return 1
}

func (p *Partition) GetChild(n uint) Entity {
	if n != 0 {
		panic("invalid child index for Partition; only 0 is allowed")
	}
	return p.Payload
}

func (p *Partition) Clone() Entity {
	if p == nil {
		return nil
	}

	return &Partition{
		Path:       p.Path,
		Size:       p.Size,
		MountPoint: p.MountPoint,
		State:      p.State,
		Roles:      p.Roles,
		Payload:    clonePayload(p.Payload),
	}
}

func clonePayload(ent Entity) Entity {
	if ent == nil {
		return nil
	}
	return ent.Clone()
}

// FSType returns the filesystem type of the partition's payload. A raw
// partition reports FS_NONE, a LUKS container reports FS_LUKS regardless
// of its inner filesystem.
func (p *Partition) FSType() FSType {
	switch payload := p.Payload.(type) {
	case *Filesystem:
		return payload.Type
	case *LUKSContainer:
		return FS_LUKS
	default:
		return FS_NONE
	}
}

// LUKS returns the partition's payload as a LUKS container, or nil if the
// payload is not one. The partition's role set is deliberately not
// consulted here; roles and payload kind are independent.
func (p *Partition) LUKS() *LUKSContainer {
	lc, _ := p.Payload.(*LUKSContainer)
	return lc
}

// IsNew reports whether the partition only exists as a pending create
// operation. New partitions have no on-disk UUID yet.
func (p *Partition) IsNew() bool {
	return p.State == StateNew
}
