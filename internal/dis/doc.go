// Package dis defines the DIS (IEEE 1278.1) record family as declarative
// wire layouts for the record engine.
//
// Every type is a plain value aggregate. Its Fields method lists the wire
// order; sizes, encoding, decoding, equality and hashing all come from
// package record:
//
//	id := &dis.IntercomIdentifier{SiteNumber: 1, ApplicationNumber: 2, ReferenceNumber: 3, IntercomNumber: 4}
//	b, err := record.Marshal(id) // 00 01 00 02 00 03 00 04
//
// Length fields that some records carry in 32-bit words (beamDataLength,
// systemDataLength, PDUHeader.Length) are ordinary values here; keeping them
// in step with the content belongs to the PDU layer.
//
// StandardVariableSpecification is not defined: its element type in the
// published generator definitions is SimulationManagementPDUHeader, which does not match the
// record's documented purpose, and embedding it would mis-encode every
// enclosing structure. It stays out until the element layout is confirmed
// against IEEE 1278.1.
package dis
