package dis

import "github.com/danmuck/discodec/internal/dis/record"

// SimulationAddress identifies a simulation application: site and
// application number.
type SimulationAddress struct {
	Site        uint16
	Application uint16
}

func NewSimulationAddress() *SimulationAddress { return &SimulationAddress{} }

func (r *SimulationAddress) Fields() []record.Field {
	return []record.Field{
		record.Uint16("site", &r.Site),
		record.Uint16("application", &r.Application),
	}
}

// EntityID is the site/application/entity identifier triple.
type EntityID struct {
	Site        uint16
	Application uint16
	Entity      uint16
}

func NewEntityID() *EntityID { return &EntityID{} }

func (r *EntityID) Fields() []record.Field {
	return []record.Field{
		record.Uint16("site", &r.Site),
		record.Uint16("application", &r.Application),
		record.Uint16("entity", &r.Entity),
	}
}

// IntercomIdentifier names one intercom within a simulation application.
type IntercomIdentifier struct {
	SiteNumber        uint16
	ApplicationNumber uint16
	ReferenceNumber   uint16
	IntercomNumber    uint16
}

func NewIntercomIdentifier() *IntercomIdentifier { return &IntercomIdentifier{} }

func (r *IntercomIdentifier) Fields() []record.Field {
	return []record.Field{
		record.Uint16("siteNumber", &r.SiteNumber),
		record.Uint16("applicationNumber", &r.ApplicationNumber),
		record.Uint16("referenceNumber", &r.ReferenceNumber),
		record.Uint16("intercomNumber", &r.IntercomNumber),
	}
}

// EventIdentifier is a simulation address plus an event number.
type EventIdentifier struct {
	SimulationAddress SimulationAddress
	EventNumber       uint16
}

func NewEventIdentifier() *EventIdentifier { return &EventIdentifier{} }

func (r *EventIdentifier) Fields() []record.Field {
	return []record.Field{
		record.Nested("simulationAddress", &r.SimulationAddress),
		record.Uint16("eventNumber", &r.EventNumber),
	}
}

// UnattachedIdentifier references an object not attached to an entity.
type UnattachedIdentifier struct {
	SimulationAddress SimulationAddress
	ReferenceNumber   uint16
}

func NewUnattachedIdentifier() *UnattachedIdentifier { return &UnattachedIdentifier{} }

func (r *UnattachedIdentifier) Fields() []record.Field {
	return []record.Field{
		record.Nested("simulationAddress", &r.SimulationAddress),
		record.Uint16("referenceNumber", &r.ReferenceNumber),
	}
}

type AggregateIdentifier struct {
	SimulationAddress SimulationAddress
	AggregateID       uint16
}

func NewAggregateIdentifier() *AggregateIdentifier { return &AggregateIdentifier{} }

func (r *AggregateIdentifier) Fields() []record.Field {
	return []record.Field{
		record.Nested("simulationAddress", &r.SimulationAddress),
		record.Uint16("aggregateID", &r.AggregateID),
	}
}

type MinefieldIdentifier struct {
	SimulationAddress SimulationAddress
	MinefieldNumber   uint16
}

func NewMinefieldIdentifier() *MinefieldIdentifier { return &MinefieldIdentifier{} }

func (r *MinefieldIdentifier) Fields() []record.Field {
	return []record.Field{
		record.Nested("simulationAddress", &r.SimulationAddress),
		record.Uint16("minefieldNumber", &r.MinefieldNumber),
	}
}

// EntityIDList is a two-byte count followed by that many entity IDs.
type EntityIDList struct {
	EntityIDs []EntityID
}

func NewEntityIDList() *EntityIDList { return &EntityIDList{EntityIDs: []EntityID{}} }

func (r *EntityIDList) Fields() []record.Field {
	return []record.Field{
		record.List16[EntityID]("entityIDs", &r.EntityIDs),
	}
}
