// Package record is the schema-driven codec engine for fixed-layout records.
//
// A record declares its wire layout once, as an ordered list of fields bound
// to its own storage:
//
//	func (r *EventIdentifier) Fields() []record.Field {
//		return []record.Field{
//			record.Nested("simulationAddress", &r.SimulationAddress),
//			record.Uint16("eventNumber", &r.EventNumber),
//		}
//	}
//
// One engine interprets that layout for Size, Encode/Marshal,
// Decode/Unmarshal, Equal, Hash and Dump. Lists never carry a settable
// count: the transmitted count is always the current list length.
//
// Ownership boundary:
// - field kinds (scalars, padding, octets, nested records, counted lists)
// - record-level encode/decode with error paths and rollback
// - structural equality and hashing
// - diagnostic dump and layout description
package record
