package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// Substrate is the categorical growing-medium class of a plant.
type Substrate string

const (
	SubstrateDry       Substrate = "dry"
	SubstrateMoist     Substrate = "moist"
	SubstrateWet       Substrate = "wet"
	SubstrateEpiphytic Substrate = "epiphytic"
	SubstrateAquatic   Substrate = "aquatic"
)

// ParseSubstrate maps a string onto a known substrate class.
func ParseSubstrate(s string) (Substrate, bool) {
	switch Substrate(s) {
	case SubstrateDry, SubstrateMoist, SubstrateWet, SubstrateEpiphytic, SubstrateAquatic:
		return Substrate(s), true
	}
	return "", false
}

// SpecialNeed marks a care requirement that maps to profile affinity bonuses.
type SpecialNeed string

const (
	NeedNone        SpecialNeed = "none"
	NeedCarnivorous SpecialNeed = "carnivorous"
	NeedEpiphytic   SpecialNeed = "epiphytic"
	NeedAquatic     SpecialNeed = "aquatic"
	NeedSucculent   SpecialNeed = "succulent"
	NeedBromeliad   SpecialNeed = "bromeliad"
	NeedOrchid      SpecialNeed = "orchid"
)

// Range is a {min, max, ideal} band on the normalized 0-100 percent scale.
// Invariant after normalization: 0 <= Min <= Ideal <= Max <= 100.
type Range struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Ideal float64 `json:"ideal"`
}

// Mid returns the midpoint of the band.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// RawValue is one environmental attribute as it arrives from the dataset:
// either a structured {min,max,ideal} object, a free-text string, a bare
// number, or absent. The normalizer resolves each form in priority order.
type RawValue struct {
	Range *Range
	Text  string
}

// IsZero reports whether the value was absent from the source record.
func (v RawValue) IsZero() bool {
	return v.Range == nil && v.Text == ""
}

// rawRangeSpec mirrors the structured JSON form with optional fields so a
// partially filled object (e.g. min only) is rejected rather than zero-filled.
type rawRangeSpec struct {
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Ideal *float64 `json:"ideal"`
}

// UnmarshalJSON accepts a string, a number, or a {min,max,ideal} object.
// A structured object is only trusted when both min and max are numeric;
// anything else degrades to free text for the normalizer to parse.
func (v *RawValue) UnmarshalJSON(data []byte) error {
	*v = RawValue{}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		v.Text = s
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		v.Text = strconv.FormatFloat(f, 'f', -1, 64)
		return nil
	}

	var spec rawRangeSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		// Malformed attribute values are a data problem, not an error:
		// the normalizer substitutes the documented default.
		return nil
	}
	if spec.Min == nil || spec.Max == nil {
		return nil
	}

	r := Range{Min: *spec.Min, Max: *spec.Max}
	if spec.Ideal != nil {
		r.Ideal = *spec.Ideal
	} else {
		r.Ideal = r.Mid()
	}
	v.Range = &r
	return nil
}

// MarshalJSON round-trips whichever form the value holds.
func (v RawValue) MarshalJSON() ([]byte, error) {
	if v.Range != nil {
		return json.Marshal(v.Range)
	}
	return json.Marshal(v.Text)
}

// PlantRecord is the semi-structured input shape produced by the JSON
// dataset. Every environmental field may be structured, free text, or absent.
type PlantRecord struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	ScientificName string   `json:"scientificName"`
	Description    string   `json:"description"`
	CareTips       []string `json:"careTips"`
	Category       []string `json:"category"`

	SubstrateType string `json:"substrateType"`
	SpecialNeeds  string `json:"specialNeeds"`

	Humidity       RawValue `json:"humidity"`
	Light          RawValue `json:"light"`
	AirCirculation RawValue `json:"airCirculation"`
	WaterNeeds     RawValue `json:"waterNeeds"`
	Temperature    RawValue `json:"temperature"`
	SoilPH         RawValue `json:"soilPh"`

	// Aquatic-only attributes, meaningful when the plant is aquatic.
	WaterCirculation RawValue `json:"waterCirculation"`
	WaterTemperature RawValue `json:"waterTemperature"`
	WaterPH          RawValue `json:"waterPh"`
	WaterHardness    RawValue `json:"waterHardness"`
	Salinity         RawValue `json:"salinity"`

	Size       string `json:"size"`
	Difficulty string `json:"difficulty"`
	GrowthRate string `json:"growthRate"`
}

// NormalizedInputs is the canonical, fully resolved form of a plant record.
// Aquatic-only ranges are populated iff the plant is aquatic.
type NormalizedInputs struct {
	Humidity       Range `json:"humidity"`
	Light          Range `json:"light"`
	AirCirculation Range `json:"airCirculation"`
	WaterNeeds     Range `json:"waterNeeds"`
	Temperature    Range `json:"temperature"`
	SoilPH         Range `json:"soilPh"`

	WaterCirculation *Range `json:"waterCirculation,omitempty"`
	WaterTemperature *Range `json:"waterTemperature,omitempty"`
	WaterPH          *Range `json:"waterPh,omitempty"`
	WaterHardness    *Range `json:"waterHardness,omitempty"`
	Salinity         *Range `json:"salinity,omitempty"`

	Substrate    Substrate   `json:"substrate"`
	SpecialNeeds SpecialNeed `json:"specialNeeds"`
	MaxSizeCm    float64     `json:"maxSizeCm"`
}

// Aquatic reports whether the aquatic-only dimensions apply to this plant.
func (n NormalizedInputs) Aquatic() bool {
	return n.Substrate == SubstrateAquatic || n.SpecialNeeds == NeedAquatic
}

// ScoreResult is one profile's compatibility score on the 0-100 scale.
type ScoreResult struct {
	Profile string  `json:"profile"`
	Score   float64 `json:"score"`
}

// Classification is the ranked outcome for one plant. When no profile reaches
// the qualifying score, Profiles holds the single deterministic fallback and
// Fallback is set. Degraded marks results produced by the recovery safety net
// after a runtime fault.
type Classification struct {
	Profiles     []ScoreResult `json:"profiles"`
	Fallback     bool          `json:"fallback,omitempty"`
	Degraded     bool          `json:"degraded,omitempty"`
	ClassifiedAt time.Time     `json:"classifiedAt"`
}

// ProfileNames returns the ranked profile display names.
func (c Classification) ProfileNames() []string {
	names := make([]string, len(c.Profiles))
	for i, p := range c.Profiles {
		names[i] = p.Profile
	}
	return names
}

// SizeCategory is one of the six enclosure size classes.
type SizeCategory string

const (
	SizeTiny   SizeCategory = "tiny"
	SizeSmall  SizeCategory = "small"
	SizeMedium SizeCategory = "medium"
	SizeLarge  SizeCategory = "large"
	SizeXLarge SizeCategory = "xlarge"
	SizeOpen   SizeCategory = "open"
)

// SizeEstimate is the enclosure sizing result for one plant.
type SizeEstimate struct {
	Category         SizeCategory `json:"category"`
	HeightBand       string       `json:"heightBand"`
	RequiredHeightCm float64      `json:"requiredHeightCm"`
}
