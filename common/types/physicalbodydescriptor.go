package types

// PhysicalBodyDescriptor is set as UserData on Box2D physical bodies so that
// the collision probe can tell units and walls apart when filtering sweeps.
type PhysicalBodyDescriptor struct {
	Type _physicaltype
	ID   string
}

type _physicaltype string

func (t _physicaltype) String() string {
	switch t {
	case PhysicalBodyDescriptorType.Unit:
		return "Unit"
	case PhysicalBodyDescriptorType.Wall:
		return "Wall"
	}

	return "UnknownType"
}

var PhysicalBodyDescriptorType = struct {
	Unit _physicaltype
	Wall _physicaltype
}{
	Unit: _physicaltype("u"),
	Wall: _physicaltype("w"),
}

func MakePhysicalBodyDescriptor(type_ _physicaltype, id string) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Type: type_,
		ID:   id,
	}
}
