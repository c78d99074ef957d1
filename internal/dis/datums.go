package dis

import "github.com/danmuck/discodec/internal/dis/record"

type FixedDatum struct {
	FixedDatumID    uint32
	FixedDatumValue uint32
}

func NewFixedDatum() *FixedDatum { return &FixedDatum{} }

func (r *FixedDatum) Fields() []record.Field {
	return []record.Field{
		record.Uint32("fixedDatumID", &r.FixedDatumID),
		record.Uint32("fixedDatumValue", &r.FixedDatumValue),
	}
}

// RecordQuerySpecification is a four-byte count followed by the record IDs.
type RecordQuerySpecification struct {
	Records []FourByteChunk
}

func NewRecordQuerySpecification() *RecordQuerySpecification {
	return &RecordQuerySpecification{Records: []FourByteChunk{}}
}

func (r *RecordQuerySpecification) Fields() []record.Field {
	return []record.Field{
		record.List32[FourByteChunk]("records", &r.Records),
	}
}

// DataQueryDatumSpecification carries both datum counts up front, then the
// fixed and variable datum ID lists.
type DataQueryDatumSpecification struct {
	FixedDatumIDList    []UnsignedDISInteger
	VariableDatumIDList []UnsignedDISInteger
}

func NewDataQueryDatumSpecification() *DataQueryDatumSpecification {
	return &DataQueryDatumSpecification{
		FixedDatumIDList:    []UnsignedDISInteger{},
		VariableDatumIDList: []UnsignedDISInteger{},
	}
}

func (r *DataQueryDatumSpecification) Fields() []record.Field {
	fixedCount, fixed := record.SplitList32[UnsignedDISInteger]("numberOfFixedDatums", "fixedDatumIDList", &r.FixedDatumIDList)
	variableCount, variable := record.SplitList32[UnsignedDISInteger]("numberOfVariableDatums", "variableDatumIDList", &r.VariableDatumIDList)
	return []record.Field{
		fixedCount,
		variableCount,
		fixed,
		variable,
	}
}

// GridAxisDescriptorVariable is an environmental grid axis with explicit
// xi values.
type GridAxisDescriptorVariable struct {
	DomainInitialXi float64
	DomainFinalXi   float64
	DomainPointsXi  uint16
	InterleafFactor uint8
	AxisType        uint8
	InitialIndex    uint16
	XiValues        []TwoByteChunk
}

func NewGridAxisDescriptorVariable() *GridAxisDescriptorVariable {
	return &GridAxisDescriptorVariable{XiValues: []TwoByteChunk{}}
}

func (r *GridAxisDescriptorVariable) Fields() []record.Field {
	count, values := record.SplitList16[TwoByteChunk]("numberOfPointsOnXiAxis", "xiValues", &r.XiValues)
	return []record.Field{
		record.Float64("domainInitialXi", &r.DomainInitialXi),
		record.Float64("domainFinalXi", &r.DomainFinalXi),
		record.Uint16("domainPointsXi", &r.DomainPointsXi),
		record.Uint8("interleafFactor", &r.InterleafFactor),
		record.Uint8("axisType", &r.AxisType),
		count,
		record.Uint16("initialIndex", &r.InitialIndex),
		values,
	}
}

// SilentEntitySystem summarizes entities of one type not sending their own
// entity state, with one appearance record per entity.
type SilentEntitySystem struct {
	NumberOfEntities     uint16
	EntityType           EntityType
	AppearanceRecordList []FourByteChunk
}

func NewSilentEntitySystem() *SilentEntitySystem {
	return &SilentEntitySystem{AppearanceRecordList: []FourByteChunk{}}
}

func (r *SilentEntitySystem) Fields() []record.Field {
	count, appearances := record.SplitList16[FourByteChunk]("numberOfAppearanceRecords", "appearanceRecordList", &r.AppearanceRecordList)
	return []record.Field{
		record.Uint16("numberOfEntities", &r.NumberOfEntities),
		count,
		record.Nested("entityType", &r.EntityType),
		appearances,
	}
}
