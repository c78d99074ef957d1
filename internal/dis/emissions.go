package dis

import "github.com/danmuck/discodec/internal/dis/record"

type EmitterSystem struct {
	EmitterName     uint16
	EmitterFunction uint8
	EmitterIDNumber uint8
}

func NewEmitterSystem() *EmitterSystem { return &EmitterSystem{} }

func (r *EmitterSystem) Fields() []record.Field {
	return []record.Field{
		record.Uint16("emitterName", &r.EmitterName),
		record.Uint8("emitterFunction", &r.EmitterFunction),
		record.Uint8("emitterIDNumber", &r.EmitterIDNumber),
	}
}

type BeamData struct {
	BeamAzimuthCenter   float32
	BeamAzimuthSweep    float32
	BeamElevationCenter float32
	BeamElevationSweep  float32
	BeamSweepSync       float32
}

func NewBeamData() *BeamData { return &BeamData{} }

func (r *BeamData) Fields() []record.Field {
	return []record.Field{
		record.Float32("beamAzimuthCenter", &r.BeamAzimuthCenter),
		record.Float32("beamAzimuthSweep", &r.BeamAzimuthSweep),
		record.Float32("beamElevationCenter", &r.BeamElevationCenter),
		record.Float32("beamElevationSweep", &r.BeamElevationSweep),
		record.Float32("beamSweepSync", &r.BeamSweepSync),
	}
}

type EEFundamentalParameterData struct {
	Frequency                float32
	FrequencyRange           float32
	EffectiveRadiatedPower   float32
	PulseRepetitionFrequency float32
	PulseWidth               float32
}

func NewEEFundamentalParameterData() *EEFundamentalParameterData {
	return &EEFundamentalParameterData{}
}

func (r *EEFundamentalParameterData) Fields() []record.Field {
	return []record.Field{
		record.Float32("frequency", &r.Frequency),
		record.Float32("frequencyRange", &r.FrequencyRange),
		record.Float32("effectiveRadiatedPower", &r.EffectiveRadiatedPower),
		record.Float32("pulseRepetitionFrequency", &r.PulseRepetitionFrequency),
		record.Float32("pulseWidth", &r.PulseWidth),
	}
}

type JammingTechnique struct {
	Kind        uint8
	Category    uint8
	Subcategory uint8
	Specific    uint8
}

func NewJammingTechnique() *JammingTechnique { return &JammingTechnique{} }

func (r *JammingTechnique) Fields() []record.Field {
	return []record.Field{
		record.Uint8("kind", &r.Kind),
		record.Uint8("category", &r.Category),
		record.Uint8("subcategory", &r.Subcategory),
		record.Uint8("specific", &r.Specific),
	}
}

// TrackJamData identifies one tracked or jammed emitter beam.
type TrackJamData struct {
	EntityID      EntityID
	EmitterNumber uint8
	BeamNumber    uint8
}

func NewTrackJamData() *TrackJamData { return &TrackJamData{} }

func (r *TrackJamData) Fields() []record.Field {
	return []record.Field{
		record.Nested("entityID", &r.EntityID),
		record.Uint8("emitterNumber", &r.EmitterNumber),
		record.Uint8("beamNumber", &r.BeamNumber),
	}
}

// ElectronicEmissionBeamData is one beam of an emitter system, with its
// track/jam target list. BeamDataLength is in 32-bit words and is not
// derived by the codec.
type ElectronicEmissionBeamData struct {
	BeamDataLength           uint8
	BeamIDNumber             uint8
	BeamParameterIndex       uint16
	FundamentalParameterData EEFundamentalParameterData
	BeamData                 BeamData
	BeamFunction             uint8
	HighDensityTrackJam      uint8
	BeamStatus               uint8
	JammingTechnique         JammingTechnique
	TrackJamTargets          []TrackJamData
}

func NewElectronicEmissionBeamData() *ElectronicEmissionBeamData {
	return &ElectronicEmissionBeamData{TrackJamTargets: []TrackJamData{}}
}

func (r *ElectronicEmissionBeamData) Fields() []record.Field {
	count, targets := record.SplitList8[TrackJamData]("numberOfTrackJamTargets", "trackJamTargets", &r.TrackJamTargets)
	return []record.Field{
		record.Uint8("beamDataLength", &r.BeamDataLength),
		record.Uint8("beamIDNumber", &r.BeamIDNumber),
		record.Uint16("beamParameterIndex", &r.BeamParameterIndex),
		record.Nested("fundamentalParameterData", &r.FundamentalParameterData),
		record.Nested("beamData", &r.BeamData),
		record.Uint8("beamFunction", &r.BeamFunction),
		count,
		record.Uint8("highDensityTrackJam", &r.HighDensityTrackJam),
		record.Uint8("beamStatus", &r.BeamStatus),
		record.Nested("jammingTechnique", &r.JammingTechnique),
		targets,
	}
}

// ElectronicEmissionSystemData is one emitter system and its beams.
type ElectronicEmissionSystemData struct {
	SystemDataLength  uint8
	EmissionsPadding2 uint16
	EmitterSystem     EmitterSystem
	Location          Vector3Float
	BeamDataRecords   []ElectronicEmissionBeamData
}

func NewElectronicEmissionSystemData() *ElectronicEmissionSystemData {
	return &ElectronicEmissionSystemData{BeamDataRecords: []ElectronicEmissionBeamData{}}
}

func (r *ElectronicEmissionSystemData) Fields() []record.Field {
	count, beams := record.SplitList8[ElectronicEmissionBeamData]("numberOfBeams", "beamDataRecords", &r.BeamDataRecords)
	return []record.Field{
		record.Uint8("systemDataLength", &r.SystemDataLength),
		count,
		record.Pad16("emissionsPadding2", &r.EmissionsPadding2),
		record.Nested("emitterSystem", &r.EmitterSystem),
		record.Nested("location", &r.Location),
		beams,
	}
}
