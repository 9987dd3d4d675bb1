package slot

// TargetKind discriminates the outcome of resolving a drop-zone identifier.
type TargetKind int

const (
	// TargetInvalid means the identifier is neither the sentinel nor a
	// well-formed slot key. Such drops are abandoned, not stored.
	TargetInvalid TargetKind = iota

	// TargetUnscheduled means the drop landed on the unscheduled list.
	TargetUnscheduled

	// TargetSlot means the drop landed on a timeline cell.
	TargetSlot
)

// DropTarget is the resolved form of a raw drop-zone identifier. It is
// produced once at the interaction boundary so the repository only ever
// sees a clean optional slot key, never a raw string needing re-parsing.
type DropTarget struct {
	Kind TargetKind
	Key  Key // set only when Kind == TargetSlot
}

// ResolveDropTarget classifies a raw drop-zone identifier.
// The zone namespace is shared with slot keys on purpose: a timeline cell
// registers its own slot key as its zone id, so no geometric translation
// ever happens between "where it was dropped" and "where it is stored".
func ResolveDropTarget(zoneID string) DropTarget {
	if zoneID == ZoneUnscheduled {
		return DropTarget{Kind: TargetUnscheduled}
	}
	k := Key(zoneID)
	if k.Valid() {
		return DropTarget{Kind: TargetSlot, Key: k}
	}
	return DropTarget{Kind: TargetInvalid}
}

// ScheduledTime translates the target into the repository's optional slot
// key: nil for unscheduled, the key for a slot. Must not be called for
// invalid targets.
func (t DropTarget) ScheduledTime() *Key {
	if t.Kind == TargetSlot {
		k := t.Key
		return &k
	}
	return nil
}
