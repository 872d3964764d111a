package domain

// Dimension identifiers, shared by the scale table, the normalizer, and the
// scorer's per-dimension constants.
const (
	DimHumidity         = "humidity"
	DimLight            = "light"
	DimAirCirculation   = "air_circulation"
	DimWaterNeeds       = "water_needs"
	DimTemperature      = "temperature"
	DimSoilPH           = "soil_ph"
	DimWaterCirculation = "water_circulation"
	DimWaterTemperature = "water_temperature"
	DimWaterPH          = "water_ph"
	DimWaterHardness    = "water_hardness"
	DimSalinity         = "salinity"
)

// Linear unit conversions onto the 0-100 percent scale. All attribute math
// happens in percent space; native units exist only at the parsing boundary.
//
//	pH                0-14     -> 0-100
//	temperature (C)   0-50     -> 0-100
//	hardness (dGH)    0-30     -> 0-100
//	salinity (ppt)    0-40     -> 0-100
//	specific gravity  1.000-1.030 -> 0-100

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func percentFromPH(ph float64) float64 {
	return clampPercent(ph * 100 / 14)
}

func percentFromCelsius(c float64) float64 {
	return clampPercent(c * 100 / 50)
}

func percentFromDGH(d float64) float64 {
	return clampPercent(d * 100 / 30)
}

func percentFromPPT(p float64) float64 {
	return clampPercent(p * 100 / 40)
}

func percentFromSpecificGravity(sg float64) float64 {
	return clampPercent((sg - 1.0) * 100 / 0.030)
}

// phRange builds a percent Range from native pH values.
func phRange(min, max, ideal float64) Range {
	return Range{Min: percentFromPH(min), Max: percentFromPH(max), Ideal: percentFromPH(ideal)}
}

// celsiusRange builds a percent Range from native degrees Celsius.
func celsiusRange(min, max, ideal float64) Range {
	return Range{Min: percentFromCelsius(min), Max: percentFromCelsius(max), Ideal: percentFromCelsius(ideal)}
}

// dghRange builds a percent Range from native degrees of general hardness.
func dghRange(min, max, ideal float64) Range {
	return Range{Min: percentFromDGH(min), Max: percentFromDGH(max), Ideal: percentFromDGH(ideal)}
}

// pptRange builds a percent Range from native parts-per-thousand salinity.
func pptRange(min, max, ideal float64) Range {
	return Range{Min: percentFromPPT(min), Max: percentFromPPT(max), Ideal: percentFromPPT(ideal)}
}

// scaleEntry is one qualitative bucket table for a dimension plus the bucket
// substituted when nothing in the record resolves.
type scaleEntry struct {
	buckets       map[string]Range
	defaultBucket string
}

// scaleTable maps each dimension's qualitative vocabulary ("low",
// "moderate", ...) to canonical percent ranges. Native-unit dimensions are
// defined in their own units and converted through the same linear mappings
// the free-text parser uses.
var scaleTable = map[string]scaleEntry{
	DimHumidity: {
		buckets: map[string]Range{
			"very-low":  {Min: 0, Max: 30, Ideal: 15},
			"low":       {Min: 20, Max: 50, Ideal: 35},
			"moderate":  {Min: 40, Max: 70, Ideal: 55},
			"high":      {Min: 60, Max: 90, Ideal: 75},
			"very-high": {Min: 80, Max: 100, Ideal: 90},
		},
		defaultBucket: "moderate",
	},
	DimLight: {
		buckets: map[string]Range{
			"low":         {Min: 0, Max: 30, Ideal: 15},
			"moderate":    {Min: 30, Max: 70, Ideal: 50},
			"bright":      {Min: 40, Max: 80, Ideal: 60},
			"very-bright": {Min: 70, Max: 100, Ideal: 85},
		},
		defaultBucket: "moderate",
	},
	DimAirCirculation: {
		buckets: map[string]Range{
			"minimal":  {Min: 0, Max: 25, Ideal: 10},
			"low":      {Min: 10, Max: 40, Ideal: 25},
			"moderate": {Min: 30, Max: 70, Ideal: 50},
			"high":     {Min: 60, Max: 100, Ideal: 80},
		},
		defaultBucket: "moderate",
	},
	DimWaterNeeds: {
		buckets: map[string]Range{
			"minimal":  {Min: 0, Max: 25, Ideal: 10},
			"low":      {Min: 10, Max: 40, Ideal: 25},
			"moderate": {Min: 35, Max: 65, Ideal: 50},
			"high":     {Min: 60, Max: 90, Ideal: 75},
			"aquatic":  {Min: 90, Max: 100, Ideal: 100},
		},
		defaultBucket: "moderate",
	},
	DimTemperature: {
		buckets: map[string]Range{
			"cool":         celsiusRange(10, 22, 16),
			"intermediate": celsiusRange(16, 28, 22),
			"warm":         celsiusRange(20, 35, 28),
		},
		defaultBucket: "intermediate",
	},
	DimSoilPH: {
		buckets: map[string]Range{
			"acidic":   phRange(4, 6, 5),
			"neutral":  phRange(6, 7.5, 6.75),
			"alkaline": phRange(7, 9, 8),
		},
		defaultBucket: "neutral",
	},
	DimWaterCirculation: {
		buckets: map[string]Range{
			"still":    {Min: 0, Max: 30, Ideal: 15},
			"low":      {Min: 20, Max: 50, Ideal: 35},
			"moderate": {Min: 40, Max: 70, Ideal: 55},
			"high":     {Min: 60, Max: 100, Ideal: 80},
		},
		defaultBucket: "moderate",
	},
	DimWaterTemperature: {
		buckets: map[string]Range{
			"cold":      celsiusRange(10, 18, 14),
			"temperate": celsiusRange(18, 24, 21),
			"tropical":  celsiusRange(22, 30, 26),
		},
		defaultBucket: "tropical",
	},
	DimWaterPH: {
		buckets: map[string]Range{
			"acidic":   phRange(5.5, 6.8, 6.2),
			"neutral":  phRange(6.5, 7.5, 7),
			"alkaline": phRange(7.2, 8.5, 7.8),
		},
		defaultBucket: "neutral",
	},
	DimWaterHardness: {
		buckets: map[string]Range{
			"soft":     dghRange(0, 8, 4),
			"moderate": dghRange(6, 16, 10),
			"hard":     dghRange(12, 30, 18),
		},
		defaultBucket: "moderate",
	},
	DimSalinity: {
		buckets: map[string]Range{
			"fresh":    pptRange(0, 0.5, 0),
			"brackish": pptRange(5, 18, 10),
			"marine":   pptRange(30, 40, 35),
		},
		defaultBucket: "fresh",
	},
}

// ScaleRange looks up a qualitative bucket for a dimension.
func ScaleRange(dimension, bucket string) (Range, bool) {
	entry, ok := scaleTable[dimension]
	if !ok {
		return Range{}, false
	}
	r, ok := entry.buckets[bucket]
	return r, ok
}

// DefaultScaleRange returns the documented default bucket for a dimension.
// Unknown dimensions get the all-purpose moderate band.
func DefaultScaleRange(dimension string) Range {
	entry, ok := scaleTable[dimension]
	if !ok {
		return Range{Min: 40, Max: 70, Ideal: 55}
	}
	return entry.buckets[entry.defaultBucket]
}
