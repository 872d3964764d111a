package domain

import (
	"math"
	"sort"
)

// QualifyingScore is the minimum percentage score for a profile to appear in
// the ranked result list.
const QualifyingScore = 70

// fallbackScore is the minimum raw score for the substrate-directed fallback
// profiles (Deserterium, Aerarium) to be selected over their alternates.
const fallbackScore = 50

// closedTerrariumAirIdeal is the cutoff on a plant's air-circulation ideal
// below which the terrarium fallback picks the closed variant. It matches
// the "low" air bucket's ideal.
const closedTerrariumAirIdeal = 30

// overlapParams are one dimension's scoring constants: its weight out of
// 100, the per-point ideal-distance penalty coefficient k, and the penalty
// cap as a fraction of the base contribution.
type overlapParams struct {
	weight float64
	k      float64
	cap    float64
}

var (
	humidityParams         = overlapParams{weight: 25, k: 0.15, cap: 0.25}
	lightParams            = overlapParams{weight: 15, k: 0.1, cap: 0.2}
	airCirculationParams   = overlapParams{weight: 15, k: 0.1, cap: 0.2}
	waterNeedsParams       = overlapParams{weight: 10, k: 0.1, cap: 0.2}
	temperatureParams      = overlapParams{weight: 5, k: 0.03, cap: 0.15}
	soilPHParams           = overlapParams{weight: 5, k: 0.03, cap: 0.15}
	waterCirculationParams = overlapParams{weight: 5, k: 0.05, cap: 0.15}
	waterTemperatureParams = overlapParams{weight: 3, k: 0.02, cap: 0.15}
	waterPHParams          = overlapParams{weight: 3, k: 0.03, cap: 0.15}
	waterHardnessParams    = overlapParams{weight: 2, k: 0.01, cap: 0.15}
	salinityParams         = overlapParams{weight: 2, k: 0.01, cap: 0.15}
)

const (
	substrateWeight   = 20
	specialNeedWeight = 10
)

// overlapScore computes one dimension's contribution from the intersection
// of the plant's required band and the profile's provided band. Full weight
// is earned at 30% overlap; the contribution is then reduced by the distance
// between the overlap midpoint and the profile's ideal, capped at a fraction
// of the base.
func overlapScore(plant, profile Range, p overlapParams) float64 {
	overlapMin := math.Max(plant.Min, profile.Min)
	overlapMax := math.Min(plant.Max, profile.Max)
	if overlapMin > overlapMax {
		return 0
	}

	var pct float64
	if plant.Max == plant.Min {
		// Point estimate: the plant's band has zero width, so overlap
		// percentage is all-or-nothing.
		if plant.Min >= overlapMin && plant.Min <= overlapMax {
			pct = 1
		}
	} else {
		pct = (overlapMax - overlapMin) / (plant.Max - plant.Min)
	}

	base := pct * p.weight
	if pct >= 0.3 {
		base = p.weight
	}

	mid := (overlapMin + overlapMax) / 2
	penalty := math.Abs(mid-profile.Ideal) * p.k
	if maxPenalty := base * p.cap; penalty > maxPenalty {
		penalty = maxPenalty
	}

	return math.Max(0, base-penalty)
}

// eligible applies the profile's hard gate.
func eligible(in NormalizedInputs, p EnvironmentProfile) bool {
	if p.Gate == "" {
		return true
	}
	return in.Substrate == p.Gate || in.SpecialNeeds == SpecialNeed(p.Gate)
}

// specialNeedBonus maps the plant's special need onto the profile's
// affinity: exact primary match earns full bonus, a related need most of it,
// no declared need a neutral share, and a mismatch nothing.
func specialNeedBonus(need SpecialNeed, p EnvironmentProfile) float64 {
	if need == NeedNone || need == "" {
		return 5
	}
	if need == p.PrimaryNeed {
		return 10
	}
	for _, related := range p.RelatedNeeds {
		if need == related {
			return 8
		}
	}
	return 0
}

// scoreProfile computes the percentage compatibility of normalized inputs
// against one profile. The maximum score accumulates only the dimensions
// actually evaluated, so inapplicable dimensions cannot distort the
// denominator; dimensions that apply to the profile but cannot be evaluated
// for this plant contribute full credit to both sides.
func scoreProfile(in NormalizedInputs, p EnvironmentProfile) float64 {
	var score, maxScore float64
	add := func(contribution, weight float64) {
		score += contribution
		maxScore += weight
	}

	add(overlapScore(in.Humidity, p.Humidity, humidityParams), humidityParams.weight)
	add(overlapScore(in.Light, p.Light, lightParams), lightParams.weight)
	add(overlapScore(in.AirCirculation, p.AirCirculation, airCirculationParams), airCirculationParams.weight)

	if p.AllowsSubstrate(in.Substrate) {
		add(substrateWeight, substrateWeight)
	} else {
		add(0, substrateWeight)
	}

	add(overlapScore(in.WaterNeeds, p.WaterNeeds, waterNeedsParams), waterNeedsParams.weight)
	add(overlapScore(in.Temperature, p.Temperature, temperatureParams), temperatureParams.weight)
	add(overlapScore(in.SoilPH, p.SoilPH, soilPHParams), soilPHParams.weight)

	if p.WaterBody {
		addWaterDimensions(add, in, p)
	}

	add(specialNeedBonus(in.SpecialNeeds, p), specialNeedWeight)

	if maxScore == 0 {
		return 0
	}
	return score / maxScore * 100
}

// addWaterDimensions scores the water-body dimensions. They are evaluable
// only for aquatic plants; for anything else hosted at the terrestrial edge
// of a paludarium or riparium they count as satisfied by default.
func addWaterDimensions(add func(float64, float64), in NormalizedInputs, p EnvironmentProfile) {
	score := func(plant *Range, profile Range, params overlapParams) {
		if plant == nil {
			add(params.weight, params.weight)
			return
		}
		add(overlapScore(*plant, profile, params), params.weight)
	}

	if !in.Aquatic() {
		add(waterCirculationParams.weight, waterCirculationParams.weight)
		add(waterTemperatureParams.weight, waterTemperatureParams.weight)
		add(waterPHParams.weight, waterPHParams.weight)
		add(waterHardnessParams.weight, waterHardnessParams.weight)
		add(salinityParams.weight, salinityParams.weight)
		return
	}

	score(in.WaterCirculation, p.WaterCirculation, waterCirculationParams)
	score(in.WaterTemperature, p.WaterTemperature, waterTemperatureParams)
	score(in.WaterPH, p.WaterPH, waterPHParams)
	score(in.WaterHardness, p.WaterHardness, waterHardnessParams)
	score(in.Salinity, p.Salinity, salinityParams)
}

// ScoreProfiles scores normalized inputs against every eligible profile in
// catalog order. Gated-out profiles are omitted.
func ScoreProfiles(in NormalizedInputs, catalog *ProfileCatalog) []ScoreResult {
	results := make([]ScoreResult, 0, catalog.Len())
	for _, p := range catalog.Profiles() {
		if !eligible(in, p) {
			continue
		}
		results = append(results, ScoreResult{
			Profile: p.Name,
			Score:   roundScore(scoreProfile(in, p)),
		})
	}
	return results
}

// ClassifyInputs ranks the qualifying profiles for normalized inputs, or
// selects the deterministic fallback when nothing reaches the qualifying
// score. Equal scores keep catalog order.
func ClassifyInputs(in NormalizedInputs, catalog *ProfileCatalog) Classification {
	scored := ScoreProfiles(in, catalog)

	qualifying := make([]ScoreResult, 0, len(scored))
	for _, r := range scored {
		if r.Score >= QualifyingScore {
			qualifying = append(qualifying, r)
		}
	}

	if len(qualifying) > 0 {
		// Stable sort: catalog declaration order is the tie-break.
		sort.SliceStable(qualifying, func(i, j int) bool {
			return qualifying[i].Score > qualifying[j].Score
		})
		return Classification{Profiles: qualifying, ClassifiedAt: clock.Now()}
	}

	return Classification{
		Profiles:     []ScoreResult{fallbackProfile(in, scored)},
		Fallback:     true,
		ClassifiedAt: clock.Now(),
	}
}

// fallbackProfile picks the single fallback for a plant that qualified
// nowhere: desert plants head for the Deserterium when it scored at least
// half, epiphytes for the Aerarium likewise, and everything else into the
// terrarium variant suggested by its airflow tolerance.
func fallbackProfile(in NormalizedInputs, scored []ScoreResult) ScoreResult {
	scoreOf := func(name string) float64 {
		for _, r := range scored {
			if r.Profile == name {
				return r.Score
			}
		}
		return 0
	}

	desert := in.Substrate == SubstrateDry || in.SpecialNeeds == NeedSucculent
	epiphytic := in.Substrate == SubstrateEpiphytic || in.SpecialNeeds == NeedEpiphytic

	switch {
	case desert:
		if s := scoreOf(ProfileDeserterium); s >= fallbackScore {
			return ScoreResult{Profile: ProfileDeserterium, Score: s}
		}
		return ScoreResult{Profile: ProfileIndoor, Score: scoreOf(ProfileIndoor)}
	case epiphytic:
		if s := scoreOf(ProfileAerarium); s >= fallbackScore {
			return ScoreResult{Profile: ProfileAerarium, Score: s}
		}
		return terrariumByAir(in, scoreOf)
	default:
		return terrariumByAir(in, scoreOf)
	}
}

// terrariumByAir selects the terrarium variant from the plant's
// air-circulation ideal: low-airflow plants get the closed build.
func terrariumByAir(in NormalizedInputs, scoreOf func(string) float64) ScoreResult {
	if in.AirCirculation.Ideal <= closedTerrariumAirIdeal {
		return ScoreResult{Profile: ProfileClosedTerrarium, Score: scoreOf(ProfileClosedTerrarium)}
	}
	return ScoreResult{Profile: ProfileOpenTerrarium, Score: scoreOf(ProfileOpenTerrarium)}
}

// SimpleFallback is the last-resort classifier used when normalization or
// scoring hits a runtime fault. It works directly off the raw record with
// keyword checks only, so it cannot itself fail.
func SimpleFallback(rec PlantRecord) string {
	text := recordSearchText(rec)

	switch {
	case containsAny(text, aquaticKeywords):
		return ProfileAquarium
	case containsAny(text, dryKeywords):
		return ProfileDeserterium
	case containsAny(text, epiphyticKeywords):
		return ProfileAerarium
	}

	air := normalizeText(rec.AirCirculation.Text)
	if bucket, ok := matchBucket(dimensionRules[DimAirCirculation], air); ok {
		if r, found := ScaleRange(DimAirCirculation, bucket); found && r.Ideal <= closedTerrariumAirIdeal {
			return ProfileClosedTerrarium
		}
		return ProfileOpenTerrarium
	}
	return ProfileClosedTerrarium
}

// DegradedClassification wraps the keyword fallback into a Classification
// for callers recovering from a scoring fault.
func DegradedClassification(rec PlantRecord) Classification {
	return Classification{
		Profiles:     []ScoreResult{{Profile: SimpleFallback(rec)}},
		Fallback:     true,
		Degraded:     true,
		ClassifiedAt: clock.Now(),
	}
}

func roundScore(v float64) float64 {
	return math.Round(v*10) / 10
}
