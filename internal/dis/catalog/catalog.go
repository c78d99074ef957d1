package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/danmuck/discodec/internal/dis"
	"github.com/danmuck/discodec/internal/dis/record"
)

// Shape classifies a record layout.
type Shape string

const (
	ShapeLeaf      Shape = "leaf"
	ShapeComposite Shape = "composite"
	ShapeContainer Shape = "container"
)

// Entry binds a record name to its zero-value constructor.
type Entry struct {
	Name  string
	Shape Shape
	New   func() record.Record
}

// UnknownRecordError reports a name missing from the catalog.
type UnknownRecordError struct {
	Name string
}

func (e UnknownRecordError) Error() string {
	return fmt.Sprintf("catalog: unknown record type %q", e.Name)
}

func leaf(name string, fn func() record.Record) Entry {
	return Entry{Name: name, Shape: ShapeLeaf, New: fn}
}

func composite(name string, fn func() record.Record) Entry {
	return Entry{Name: name, Shape: ShapeComposite, New: fn}
}

func container(name string, fn func() record.Record) Entry {
	return Entry{Name: name, Shape: ShapeContainer, New: fn}
}

var entries = []Entry{
	leaf("SimulationAddress", func() record.Record { return dis.NewSimulationAddress() }),
	leaf("EntityID", func() record.Record { return dis.NewEntityID() }),
	leaf("IntercomIdentifier", func() record.Record { return dis.NewIntercomIdentifier() }),
	leaf("EntityType", func() record.Record { return dis.NewEntityType() }),
	leaf("Vector3Float", func() record.Record { return dis.NewVector3Float() }),
	leaf("Vector3Double", func() record.Record { return dis.NewVector3Double() }),
	leaf("EulerAngles", func() record.Record { return dis.NewEulerAngles() }),
	leaf("ClockTime", func() record.Record { return dis.NewClockTime() }),
	leaf("TwoByteChunk", func() record.Record { return dis.NewTwoByteChunk() }),
	leaf("FourByteChunk", func() record.Record { return dis.NewFourByteChunk() }),
	leaf("EightByteChunk", func() record.Record { return dis.NewEightByteChunk() }),
	leaf("UnsignedDISInteger", func() record.Record { return dis.NewUnsignedDISInteger() }),
	leaf("Relationship", func() record.Record { return dis.NewRelationship() }),
	leaf("FixedDatum", func() record.Record { return dis.NewFixedDatum() }),
	leaf("VariableParameter", func() record.Record { return dis.NewVariableParameter() }),
	leaf("EmitterSystem", func() record.Record { return dis.NewEmitterSystem() }),
	leaf("BeamData", func() record.Record { return dis.NewBeamData() }),
	leaf("EEFundamentalParameterData", func() record.Record { return dis.NewEEFundamentalParameterData() }),
	leaf("JammingTechnique", func() record.Record { return dis.NewJammingTechnique() }),
	leaf("EntityMarking", func() record.Record { return dis.NewEntityMarking() }),
	leaf("PDUHeader", func() record.Record { return dis.NewPDUHeader() }),

	composite("EventIdentifier", func() record.Record { return dis.NewEventIdentifier() }),
	composite("UnattachedIdentifier", func() record.Record { return dis.NewUnattachedIdentifier() }),
	composite("AggregateIdentifier", func() record.Record { return dis.NewAggregateIdentifier() }),
	composite("MinefieldIdentifier", func() record.Record { return dis.NewMinefieldIdentifier() }),
	composite("MunitionDescriptor", func() record.Record { return dis.NewMunitionDescriptor() }),
	composite("ExplosionDescriptor", func() record.Record { return dis.NewExplosionDescriptor() }),
	composite("SupplyQuantity", func() record.Record { return dis.NewSupplyQuantity() }),
	composite("EntityAssociation", func() record.Record { return dis.NewEntityAssociation() }),
	composite("TrackJamData", func() record.Record { return dis.NewTrackJamData() }),
	composite("LaunchedMunitionRecord", func() record.Record { return dis.NewLaunchedMunitionRecord() }),

	container("RecordQuerySpecification", func() record.Record { return dis.NewRecordQuerySpecification() }),
	container("GridAxisDescriptorVariable", func() record.Record { return dis.NewGridAxisDescriptorVariable() }),
	container("SilentEntitySystem", func() record.Record { return dis.NewSilentEntitySystem() }),
	container("DataQueryDatumSpecification", func() record.Record { return dis.NewDataQueryDatumSpecification() }),
	container("ElectronicEmissionBeamData", func() record.Record { return dis.NewElectronicEmissionBeamData() }),
	container("ElectronicEmissionSystemData", func() record.Record { return dis.NewElectronicEmissionSystemData() }),
	container("EntityIDList", func() record.Record { return dis.NewEntityIDList() }),
}

var byName = func() map[string]Entry {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[strings.ToLower(e.Name)] = e
	}
	return m
}()

// Lookup finds an entry by case-insensitive name.
func Lookup(name string) (Entry, bool) {
	e, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// New returns a zero-valued record of the named type.
func New(name string) (record.Record, error) {
	e, ok := Lookup(name)
	if !ok {
		return nil, UnknownRecordError{Name: name}
	}
	return e.New(), nil
}

// Names returns every catalog name, sorted.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

// All returns the entries in declaration order.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
