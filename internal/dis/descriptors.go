package dis

import "github.com/danmuck/discodec/internal/dis/record"

// MunitionDescriptor describes a fired munition.
type MunitionDescriptor struct {
	MunitionType EntityType
	Warhead      uint16
	Fuse         uint16
	Quantity     uint16
	Rate         uint16
}

func NewMunitionDescriptor() *MunitionDescriptor { return &MunitionDescriptor{} }

func (r *MunitionDescriptor) Fields() []record.Field {
	return []record.Field{
		record.Nested("munitionType", &r.MunitionType),
		record.Uint16("warhead", &r.Warhead),
		record.Uint16("fuse", &r.Fuse),
		record.Uint16("quantity", &r.Quantity),
		record.Uint16("rate", &r.Rate),
	}
}

// ExplosionDescriptor describes a non-munition explosion.
type ExplosionDescriptor struct {
	ExplodingObject   EntityType
	ExplosiveMaterial uint16
	Padding           uint16
	ExplosiveForce    float32
}

func NewExplosionDescriptor() *ExplosionDescriptor { return &ExplosionDescriptor{} }

func (r *ExplosionDescriptor) Fields() []record.Field {
	return []record.Field{
		record.Nested("explodingObject", &r.ExplodingObject),
		record.Uint16("explosiveMaterial", &r.ExplosiveMaterial),
		record.Pad16("padding", &r.Padding),
		record.Float32("explosiveForce", &r.ExplosiveForce),
	}
}

type SupplyQuantity struct {
	SupplyType EntityType
	Quantity   float32
}

func NewSupplyQuantity() *SupplyQuantity { return &SupplyQuantity{} }

func (r *SupplyQuantity) Fields() []record.Field {
	return []record.Field{
		record.Nested("supplyType", &r.SupplyType),
		record.Float32("quantity", &r.Quantity),
	}
}

// LaunchedMunitionRecord ties a fire event to its shooter, target and aim
// point.
type LaunchedMunitionRecord struct {
	FireEventID    EventIdentifier
	Padding        uint16
	FiringEntityID EventIdentifier
	Padding2       uint16
	TargetEntityID EventIdentifier
	Padding3       uint16
	TargetLocation Vector3Double
}

func NewLaunchedMunitionRecord() *LaunchedMunitionRecord { return &LaunchedMunitionRecord{} }

func (r *LaunchedMunitionRecord) Fields() []record.Field {
	return []record.Field{
		record.Nested("fireEventID", &r.FireEventID),
		record.Pad16("padding", &r.Padding),
		record.Nested("firingEntityID", &r.FiringEntityID),
		record.Pad16("padding2", &r.Padding2),
		record.Nested("targetEntityID", &r.TargetEntityID),
		record.Pad16("padding3", &r.Padding3),
		record.Nested("targetLocation", &r.TargetLocation),
	}
}

// Relationship is the nature/position pair of an attached part.
type Relationship struct {
	Nature   uint16
	Position uint16
}

func NewRelationship() *Relationship { return &Relationship{} }

func (r *Relationship) Fields() []record.Field {
	return []record.Field{
		record.Uint16("nature", &r.Nature),
		record.Uint16("position", &r.Position),
	}
}

// EntityAssociation is the association status record for one entity.
type EntityAssociation struct {
	RecordType             uint8
	ChangeIndicator        uint8
	AssociationStatus      uint8
	AssociationType        uint8
	EntityID               EntityID
	OwnStationLocation     uint16
	PhysicalConnectionType uint8
	GroupMemberType        uint8
	GroupNumber            uint16
}

func NewEntityAssociation() *EntityAssociation { return &EntityAssociation{} }

func (r *EntityAssociation) Fields() []record.Field {
	return []record.Field{
		record.Uint8("recordType", &r.RecordType),
		record.Uint8("changeIndicator", &r.ChangeIndicator),
		record.Uint8("associationStatus", &r.AssociationStatus),
		record.Uint8("associationType", &r.AssociationType),
		record.Nested("entityID", &r.EntityID),
		record.Uint16("ownStationLocation", &r.OwnStationLocation),
		record.Uint8("physicalConnectionType", &r.PhysicalConnectionType),
		record.Uint8("groupMemberType", &r.GroupMemberType),
		record.Uint16("groupNumber", &r.GroupNumber),
	}
}

// VariableParameter is the sixteen-byte articulation/attached-part record.
type VariableParameter struct {
	RecordType               uint8
	VariableParameterFields1 float64
	VariableParameterFields2 uint32
	VariableParameterFields3 uint16
	VariableParameterFields4 uint8
}

func NewVariableParameter() *VariableParameter { return &VariableParameter{} }

func (r *VariableParameter) Fields() []record.Field {
	return []record.Field{
		record.Uint8("recordType", &r.RecordType),
		record.Float64("variableParameterFields1", &r.VariableParameterFields1),
		record.Uint32("variableParameterFields2", &r.VariableParameterFields2),
		record.Uint16("variableParameterFields3", &r.VariableParameterFields3),
		record.Uint8("variableParameterFields4", &r.VariableParameterFields4),
	}
}
