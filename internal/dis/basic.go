package dis

import "github.com/danmuck/discodec/internal/dis/record"

// EntityType is the seven-part kind/domain/country/... classification.
type EntityType struct {
	EntityKind  uint8
	Domain      uint8
	Country     uint16
	Category    uint8
	Subcategory uint8
	Specific    uint8
	Extra       uint8
}

func NewEntityType() *EntityType { return &EntityType{} }

func (r *EntityType) Fields() []record.Field {
	return []record.Field{
		record.Uint8("entityKind", &r.EntityKind),
		record.Uint8("domain", &r.Domain),
		record.Uint16("country", &r.Country),
		record.Uint8("category", &r.Category),
		record.Uint8("subcategory", &r.Subcategory),
		record.Uint8("specific", &r.Specific),
		record.Uint8("extra", &r.Extra),
	}
}

type Vector3Float struct {
	X float32
	Y float32
	Z float32
}

func NewVector3Float() *Vector3Float { return &Vector3Float{} }

func (r *Vector3Float) Fields() []record.Field {
	return []record.Field{
		record.Float32("x", &r.X),
		record.Float32("y", &r.Y),
		record.Float32("z", &r.Z),
	}
}

type Vector3Double struct {
	X float64
	Y float64
	Z float64
}

func NewVector3Double() *Vector3Double { return &Vector3Double{} }

func (r *Vector3Double) Fields() []record.Field {
	return []record.Field{
		record.Float64("x", &r.X),
		record.Float64("y", &r.Y),
		record.Float64("z", &r.Z),
	}
}

// EulerAngles are in radians.
type EulerAngles struct {
	Psi   float32
	Theta float32
	Phi   float32
}

func NewEulerAngles() *EulerAngles { return &EulerAngles{} }

func (r *EulerAngles) Fields() []record.Field {
	return []record.Field{
		record.Float32("psi", &r.Psi),
		record.Float32("theta", &r.Theta),
		record.Float32("phi", &r.Phi),
	}
}

// ClockTime is hours since 1970-01-01 plus time past the hour in DIS
// timestamp units.
type ClockTime struct {
	Hour         int32
	TimePastHour uint32
}

func NewClockTime() *ClockTime { return &ClockTime{} }

func (r *ClockTime) Fields() []record.Field {
	return []record.Field{
		record.Int32("hour", &r.Hour),
		record.Uint32("timePastHour", &r.TimePastHour),
	}
}

type TwoByteChunk struct {
	OtherParameters [2]byte
}

func NewTwoByteChunk() *TwoByteChunk { return &TwoByteChunk{} }

func (r *TwoByteChunk) Fields() []record.Field {
	return []record.Field{record.Octets("otherParameters", r.OtherParameters[:])}
}

type FourByteChunk struct {
	OtherParameters [4]byte
}

func NewFourByteChunk() *FourByteChunk { return &FourByteChunk{} }

func (r *FourByteChunk) Fields() []record.Field {
	return []record.Field{record.Octets("otherParameters", r.OtherParameters[:])}
}

type EightByteChunk struct {
	OtherParameters [8]byte
}

func NewEightByteChunk() *EightByteChunk { return &EightByteChunk{} }

func (r *EightByteChunk) Fields() []record.Field {
	return []record.Field{record.Octets("otherParameters", r.OtherParameters[:])}
}

type UnsignedDISInteger struct {
	Val uint32
}

func NewUnsignedDISInteger() *UnsignedDISInteger { return &UnsignedDISInteger{} }

func (r *UnsignedDISInteger) Fields() []record.Field {
	return []record.Field{record.Uint32("val", &r.Val)}
}

// EntityMarking is a character set selector plus eleven marking octets.
type EntityMarking struct {
	CharacterSet uint8
	Characters   [11]byte
}

func NewEntityMarking() *EntityMarking { return &EntityMarking{} }

func (r *EntityMarking) Fields() []record.Field {
	return []record.Field{
		record.Uint8("characterSet", &r.CharacterSet),
		record.Octets("characters", r.Characters[:]),
	}
}

// SetText stores s truncated or NUL-padded to the marking width.
func (r *EntityMarking) SetText(s string) {
	r.Characters = [11]byte{}
	copy(r.Characters[:], s)
}

// Text returns the marking up to the first NUL.
func (r *EntityMarking) Text() string {
	for i, c := range r.Characters {
		if c == 0 {
			return string(r.Characters[:i])
		}
	}
	return string(r.Characters[:])
}

// PDUHeader is the fixed twelve-byte header shared by PDUs. Length is
// carried as given; the codec does not derive it.
type PDUHeader struct {
	ProtocolVersion uint8
	ExerciseID      uint8
	PDUType         uint8
	ProtocolFamily  uint8
	Timestamp       uint32
	Length          uint16
	PDUStatus       uint8
	Padding         uint8
}

func NewPDUHeader() *PDUHeader { return &PDUHeader{} }

func (r *PDUHeader) Fields() []record.Field {
	return []record.Field{
		record.Uint8("protocolVersion", &r.ProtocolVersion),
		record.Uint8("exerciseID", &r.ExerciseID),
		record.Uint8("pduType", &r.PDUType),
		record.Uint8("protocolFamily", &r.ProtocolFamily),
		record.Uint32("timestamp", &r.Timestamp),
		record.Uint16("length", &r.Length),
		record.Uint8("pduStatus", &r.PDUStatus),
		record.Pad8("padding", &r.Padding),
	}
}
