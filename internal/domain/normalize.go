package domain

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// numericRangeRe matches "70-90", "20 - 25", "6.5 to 7.5" and tolerates a
	// degree marker between the bounds ("20°C-25°C").
	numericRangeRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:°\s*[cC])?\s*(?:-|–|—|~|to)\s*(\d+(?:\.\d+)?)`)

	// numericSingleRe matches the first bare number in a value like "pH 6.5"
	// or "80%".
	numericSingleRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

	// sizeTokenRe matches a size magnitude with an optional metric unit.
	sizeTokenRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(cm|m)?\b`)
)

// normalizeText applies NFKC folding, lowercases, and trims a free-text
// value so keyword rules match regardless of source formatting.
func normalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(text)))
}

// keywordRule maps a set of trigger phrases to a scale-table bucket.
// Rules are evaluated in declaration order; the first hit wins, so more
// specific phrases ("very high") must precede their prefixes ("high").
type keywordRule struct {
	keywords []string
	bucket   string
}

func (r keywordRule) matches(text string) bool {
	for _, k := range r.keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// matchBucket runs an ordered rule list over normalized text.
func matchBucket(rules []keywordRule, text string) (string, bool) {
	if text == "" {
		return "", false
	}
	for _, r := range rules {
		if r.matches(text) {
			return r.bucket, true
		}
	}
	return "", false
}

var dimensionRules = map[string][]keywordRule{
	DimHumidity: {
		{[]string{"very high", "very-high", "saturated", "misty", "rainforest"}, "very-high"},
		{[]string{"very low", "very-low", "arid", "desert"}, "very-low"},
		{[]string{"low", "dry"}, "low"},
		{[]string{"high", "humid"}, "high"},
		{[]string{"moderate", "medium", "average"}, "moderate"},
	},
	DimLight: {
		{[]string{"very bright", "very-bright", "full sun", "direct sun"}, "very-bright"},
		{[]string{"low", "shade", "dim"}, "low"},
		{[]string{"bright", "sunny"}, "bright"},
		{[]string{"partial", "indirect", "filtered", "medium", "moderate"}, "moderate"},
	},
	DimAirCirculation: {
		{[]string{"minimal", "stagnant", "still air", "sealed", "closed"}, "minimal"},
		{[]string{"low", "gentle", "limited"}, "low"},
		{[]string{"high", "breezy", "windy", "strong", "ventilated", "airy"}, "high"},
		{[]string{"moderate", "medium", "average"}, "moderate"},
	},
	DimWaterNeeds: {
		{[]string{"aquatic", "submerged"}, "aquatic"},
		{[]string{"minimal", "drought", "rarely", "sparing"}, "minimal"},
		{[]string{"low", "infrequent"}, "low"},
		{[]string{"high", "frequent", "constantly moist", "never dry"}, "high"},
		{[]string{"moderate", "regular", "medium", "average"}, "moderate"},
	},
	DimTemperature: {
		{[]string{"cool", "cold"}, "cool"},
		{[]string{"warm", "hot", "tropical"}, "warm"},
		{[]string{"intermediate", "moderate", "room"}, "intermediate"},
	},
	DimSoilPH: {
		{[]string{"alkaline", "basic", "lime"}, "alkaline"},
		{[]string{"acid"}, "acidic"},
		{[]string{"neutral"}, "neutral"},
	},
	DimWaterCirculation: {
		{[]string{"still", "stagnant", "no flow"}, "still"},
		{[]string{"low", "slow", "gentle"}, "low"},
		{[]string{"high", "fast", "strong", "current"}, "high"},
		{[]string{"moderate", "medium"}, "moderate"},
	},
	DimWaterTemperature: {
		{[]string{"cold", "coldwater", "cool"}, "cold"},
		{[]string{"temperate", "subtropical"}, "temperate"},
		{[]string{"tropical", "warm"}, "tropical"},
	},
	DimWaterHardness: {
		{[]string{"soft"}, "soft"},
		{[]string{"hard"}, "hard"},
		{[]string{"moderate", "medium"}, "moderate"},
	},
	DimSalinity: {
		{[]string{"marine", "salt"}, "marine"},
		{[]string{"brackish"}, "brackish"},
		{[]string{"fresh"}, "fresh"},
	},
}

// Substrate detection rules, checked in precedence order after the explicit
// substrateType field. Aquatic detection additionally scans the plant's name,
// scientific name, description, and humidity text.
var (
	aquaticKeywords   = []string{"aquatic", "submerged", "underwater", "fully submersed"}
	epiphyticKeywords = []string{"epiphyte", "epiphytic", "air plant", "mounted", "grows on trees", "grows on branches"}
	dryKeywords       = []string{"succulent", "cactus", "cacti", "well-draining sand", "arid", "desert", "xeric", "drought"}
	wetKeywords       = []string{"bog", "swamp", "marsh", "waterlogged", "constantly wet", "wet soil"}
)

// specialNeedRules are evaluated in order; the more specific horticultural
// classes (bromeliad, orchid) take precedence over the generic epiphytic one.
var specialNeedRules = []struct {
	keywords []string
	need     SpecialNeed
}{
	{[]string{"carnivorous", "pitcher plant", "flytrap", "sundew", "nepenthes", "drosera"}, NeedCarnivorous},
	{aquaticKeywords, NeedAquatic},
	{[]string{"bromeliad"}, NeedBromeliad},
	{[]string{"orchid", "orchidaceae"}, NeedOrchid},
	{[]string{"succulent", "cactus", "cacti"}, NeedSucculent},
	{epiphyticKeywords, NeedEpiphytic},
}

// Normalize converts a raw plant record into canonical normalized inputs.
// It is a total function: malformed or missing fields resolve to documented
// defaults and it never fails.
func Normalize(rec PlantRecord) NormalizedInputs {
	substrate := resolveSubstrate(rec)
	needs := resolveSpecialNeeds(rec)
	aquatic := substrate == SubstrateAquatic || needs == NeedAquatic

	n := NormalizedInputs{
		Substrate:    substrate,
		SpecialNeeds: needs,
		MaxSizeCm:    parseMaxSize(rec.Size),
	}

	n.Humidity = resolveHumidity(rec.Humidity, aquatic)
	n.Light = resolveDimension(DimLight, rec.Light)
	n.WaterNeeds = resolveWaterNeeds(rec.WaterNeeds, aquatic)
	n.Temperature = resolveDimension(DimTemperature, rec.Temperature)
	n.SoilPH = resolveDimension(DimSoilPH, rec.SoilPH)
	n.AirCirculation = resolveAirCirculation(rec, n.Humidity)

	if aquatic {
		n.WaterCirculation = rangePtr(resolveDimension(DimWaterCirculation, rec.WaterCirculation))
		n.WaterTemperature = rangePtr(resolveDimension(DimWaterTemperature, rec.WaterTemperature))
		n.WaterPH = rangePtr(resolveDimension(DimWaterPH, rec.WaterPH))
		n.WaterHardness = rangePtr(resolveDimension(DimWaterHardness, rec.WaterHardness))
		n.Salinity = rangePtr(resolveDimension(DimSalinity, rec.Salinity))
	}

	return n
}

func rangePtr(r Range) *Range {
	return &r
}

// resolveDimension applies the per-field resolution order: trust a structured
// range, else parse numerics out of free text, else match keyword rules into
// a scale bucket, else fall back to the dimension's default bucket.
func resolveDimension(dim string, v RawValue) Range {
	r, _ := resolveDimensionTagged(dim, v)
	return r
}

// resolveDimensionTagged additionally reports whether anything in the record
// resolved the dimension, so callers can substitute aquatic-specific defaults.
func resolveDimensionTagged(dim string, v RawValue) (Range, bool) {
	if v.Range != nil {
		return canonicalizeRange(*v.Range), true
	}

	text := normalizeText(v.Text)
	if text != "" {
		if r, ok := parseNumericRange(dim, text); ok {
			return r, true
		}
		if bucket, ok := matchBucket(dimensionRules[dim], text); ok {
			r, _ := ScaleRange(dim, bucket)
			return r, true
		}
	}

	return DefaultScaleRange(dim), false
}

// resolveHumidity is the standard resolution with one aquatic exception:
// an aquatic plant with no humidity information lives at a fixed 100%.
func resolveHumidity(v RawValue, aquatic bool) Range {
	r, resolved := resolveDimensionTagged(DimHumidity, v)
	if !resolved && aquatic {
		return Range{Min: 100, Max: 100, Ideal: 100}
	}
	return r
}

// resolveWaterNeeds defaults aquatic plants into the aquatic watering bucket
// instead of the generic moderate one.
func resolveWaterNeeds(v RawValue, aquatic bool) Range {
	r, resolved := resolveDimensionTagged(DimWaterNeeds, v)
	if !resolved && aquatic {
		r, _ = ScaleRange(DimWaterNeeds, "aquatic")
	}
	return r
}

// resolveAirCirculation derives the bucket from the explicit field, else from
// the combined description and care-tip text, else infers it from the
// humidity midpoint. Bucket-derived ranges are widened by 10 points on each
// side (clamped) while the bucket's ideal stays put; structured or numeric
// values are trusted as-is.
func resolveAirCirculation(rec PlantRecord, humidity Range) Range {
	v := rec.AirCirculation
	if v.Range != nil {
		return canonicalizeRange(*v.Range)
	}

	text := normalizeText(v.Text)
	if text != "" {
		if r, ok := parseNumericRange(DimAirCirculation, text); ok {
			return r
		}
	}

	bucket, ok := matchBucket(dimensionRules[DimAirCirculation], text)
	if !ok {
		combined := normalizeText(rec.Description + " " + strings.Join(rec.CareTips, " "))
		bucket, ok = matchBucket(dimensionRules[DimAirCirculation], combined)
	}
	if !ok {
		bucket = airBucketFromHumidity(humidity.Mid())
	}

	r, _ := ScaleRange(DimAirCirculation, bucket)
	return widenRange(r, 10)
}

// airBucketFromHumidity maps a humidity midpoint onto an air-circulation
// bucket: plants needing saturated air tolerate the least airflow.
func airBucketFromHumidity(mid float64) string {
	switch {
	case mid >= 90:
		return "minimal"
	case mid >= 70:
		return "low"
	case mid >= 50:
		return "moderate"
	default:
		return "high"
	}
}

// widenRange expands a band symmetrically, clamped to [0,100], keeping the
// ideal unchanged.
func widenRange(r Range, points float64) Range {
	return Range{
		Min:   clampPercent(r.Min - points),
		Max:   clampPercent(r.Max + points),
		Ideal: r.Ideal,
	}
}

// canonicalizeRange repairs a caller-supplied structured range: bounds are
// ordered, clamped to [0,100], and the ideal pulled inside the band.
func canonicalizeRange(r Range) Range {
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	r.Min = clampPercent(r.Min)
	r.Max = clampPercent(r.Max)
	if r.Ideal < r.Min {
		r.Ideal = r.Min
	}
	if r.Ideal > r.Max {
		r.Ideal = r.Max
	}
	return r
}

// singleValueBand is the half-width, in percent points, of the symmetric
// band built around a lone numeric value. pH readings are more precise than
// the rest of the vocabulary and get a tighter band.
func singleValueBand(dim string) float64 {
	switch dim {
	case DimSoilPH, DimWaterPH:
		return 3
	default:
		return 5
	}
}

// parseNumericRange extracts an explicit numeric range or single value from
// free text and converts it to percent space for the dimension.
func parseNumericRange(dim, text string) (Range, bool) {
	if m := numericRangeRe.FindStringSubmatch(text); m != nil {
		lo, errLo := strconv.ParseFloat(m[1], 64)
		hi, errHi := strconv.ParseFloat(m[2], 64)
		if errLo == nil && errHi == nil {
			loPct := convertToPercent(dim, lo)
			hiPct := convertToPercent(dim, hi)
			if loPct > hiPct {
				loPct, hiPct = hiPct, loPct
			}
			return Range{Min: loPct, Max: hiPct, Ideal: (loPct + hiPct) / 2}, true
		}
	}

	if m := numericSingleRe.FindString(text); m != "" {
		v, err := strconv.ParseFloat(m, 64)
		if err == nil {
			ideal := convertToPercent(dim, v)
			band := singleValueBand(dim)
			return Range{
				Min:   clampPercent(ideal - band),
				Max:   clampPercent(ideal + band),
				Ideal: ideal,
			}, true
		}
	}

	return Range{}, false
}

// convertToPercent maps a native-unit value onto the percent scale. Salinity
// values in the 1.000-1.100 window are read as specific gravity, the usual
// hobbyist notation; anything else is parts per thousand.
func convertToPercent(dim string, v float64) float64 {
	switch dim {
	case DimTemperature, DimWaterTemperature:
		return percentFromCelsius(v)
	case DimSoilPH, DimWaterPH:
		return percentFromPH(v)
	case DimWaterHardness:
		return percentFromDGH(v)
	case DimSalinity:
		if v >= 1.0 && v <= 1.1 {
			return percentFromSpecificGravity(v)
		}
		return percentFromPPT(v)
	default:
		return clampPercent(v)
	}
}

// resolveSubstrate applies the substrate precedence chain: the explicit
// substrateType field wins, then aquatic heuristics across the wider record
// text, then epiphytic, dry, and wet keywords, with moist as the default.
func resolveSubstrate(rec PlantRecord) Substrate {
	if explicit, ok := substrateFromText(normalizeText(rec.SubstrateType)); ok {
		return explicit
	}

	aquaticText := normalizeText(strings.Join([]string{
		rec.Name, rec.ScientificName, rec.Description, rec.Humidity.Text, rec.SubstrateType,
	}, " "))
	if containsAny(aquaticText, aquaticKeywords) {
		return SubstrateAquatic
	}

	body := recordSearchText(rec)
	switch {
	case containsAny(body, epiphyticKeywords):
		return SubstrateEpiphytic
	case containsAny(body, dryKeywords):
		return SubstrateDry
	case containsAny(body, wetKeywords):
		return SubstrateWet
	default:
		return SubstrateMoist
	}
}

// substrateFromText interprets an explicit substrate label.
func substrateFromText(text string) (Substrate, bool) {
	if text == "" {
		return "", false
	}
	switch {
	case containsAny(text, aquaticKeywords):
		return SubstrateAquatic, true
	case containsAny(text, epiphyticKeywords):
		return SubstrateEpiphytic, true
	case strings.Contains(text, "dry") || containsAny(text, dryKeywords):
		return SubstrateDry, true
	case strings.Contains(text, "wet") || containsAny(text, wetKeywords):
		return SubstrateWet, true
	case strings.Contains(text, "moist"):
		return SubstrateMoist, true
	default:
		return "", false
	}
}

// resolveSpecialNeeds reads the explicit specialNeeds field first, then the
// category tags, then the wider record text, in rule order.
func resolveSpecialNeeds(rec PlantRecord) SpecialNeed {
	if explicit := normalizeText(rec.SpecialNeeds); explicit != "" {
		for _, rule := range specialNeedRules {
			if containsAny(explicit, rule.keywords) {
				return rule.need
			}
		}
		if explicit == "none" {
			return NeedNone
		}
	}

	categories := normalizeText(strings.Join(rec.Category, " "))
	for _, rule := range specialNeedRules {
		if containsAny(categories, rule.keywords) {
			return rule.need
		}
	}

	body := recordSearchText(rec)
	for _, rule := range specialNeedRules {
		if containsAny(body, rule.keywords) {
			return rule.need
		}
	}

	return NeedNone
}

// recordSearchText is the combined lowercase haystack for keyword heuristics.
func recordSearchText(rec PlantRecord) string {
	parts := []string{rec.Name, rec.ScientificName, rec.Description, rec.SubstrateType}
	parts = append(parts, rec.CareTips...)
	parts = append(parts, rec.Category...)
	return normalizeText(strings.Join(parts, " "))
}

func containsAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// parseMaxSize extracts the adult size in centimeters: the last numeric token
// of the size string, converted from meters when the unit says so. Returns 0
// when nothing parses.
func parseMaxSize(size string) float64 {
	matches := sizeTokenRe.FindAllStringSubmatch(normalizeText(size), -1)
	if len(matches) == 0 {
		return 0
	}
	last := matches[len(matches)-1]
	v, err := strconv.ParseFloat(last[1], 64)
	if err != nil {
		return 0
	}
	if last[2] == "m" {
		v *= 100
	}
	return v
}
