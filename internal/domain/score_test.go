package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlapScore(t *testing.T) {
	t.Run("no overlap", func(t *testing.T) {
		got := overlapScore(Range{Min: 0, Max: 20, Ideal: 10}, Range{Min: 40, Max: 60, Ideal: 50}, humidityParams)
		assert.Equal(t, 0.0, got)
	})

	t.Run("full weight at 30 percent overlap", func(t *testing.T) {
		// Plant 70-90 against profile 70-100: 100% of the plant band overlaps.
		got := overlapScore(Range{Min: 70, Max: 90, Ideal: 80}, Range{Min: 70, Max: 100, Ideal: 85}, humidityParams)
		// Base 25, penalty |80-85|*0.15 = 0.75.
		assert.InDelta(t, 24.25, got, 0.01)
	})

	t.Run("partial overlap scales the base", func(t *testing.T) {
		// 15 of 100 points overlap: below the 30% knee.
		got := overlapScore(Range{Min: 0, Max: 100, Ideal: 50}, Range{Min: 10, Max: 25, Ideal: 20}, lightParams)
		// Base 0.15*15 = 2.25, penalty |17.5-20|*0.1 = 0.25.
		assert.InDelta(t, 2.0, got, 0.01)
	})

	t.Run("point estimate inside the profile band", func(t *testing.T) {
		got := overlapScore(Range{Min: 50, Max: 50, Ideal: 50}, Range{Min: 40, Max: 60, Ideal: 50}, humidityParams)
		assert.InDelta(t, 25.0, got, 0.01)
	})

	t.Run("point estimate outside the profile band", func(t *testing.T) {
		got := overlapScore(Range{Min: 30, Max: 30, Ideal: 30}, Range{Min: 40, Max: 60, Ideal: 50}, humidityParams)
		assert.Equal(t, 0.0, got)
	})

	t.Run("penalty is capped", func(t *testing.T) {
		// Raw penalty |50-0|*0.15 = 7.5 far exceeds the cap 0.25*base.
		got := overlapScore(Range{Min: 0, Max: 100, Ideal: 50}, Range{Min: 40, Max: 60, Ideal: 0}, humidityParams)
		// Base 0.2*25 = 5, capped penalty 1.25.
		assert.InDelta(t, 3.75, got, 0.01)
	})
}

func TestSpecialNeedBonus(t *testing.T) {
	profile := EnvironmentProfile{
		PrimaryNeed:  NeedCarnivorous,
		RelatedNeeds: []SpecialNeed{NeedBromeliad, NeedOrchid},
	}

	assert.Equal(t, 10.0, specialNeedBonus(NeedCarnivorous, profile))
	assert.Equal(t, 8.0, specialNeedBonus(NeedOrchid, profile))
	assert.Equal(t, 5.0, specialNeedBonus(NeedNone, profile))
	assert.Equal(t, 0.0, specialNeedBonus(NeedSucculent, profile))
}

func TestScoreProfilesOmitsGatedProfiles(t *testing.T) {
	in := Normalize(PlantRecord{Name: "Pothos", Description: "an easy trailing houseplant"})
	results := ScoreProfiles(in, DefaultCatalog())

	for _, r := range results {
		assert.NotEqual(t, ProfileAquarium, r.Profile)
		assert.NotEqual(t, ProfileAerarium, r.Profile)
	}
	// The seven ungated profiles are all scored.
	assert.Len(t, results, 7)
}

func TestClassifyTropicalFern(t *testing.T) {
	rec := PlantRecord{
		Name:        "Maidenhair Fern",
		Description: "A delicate tropical fern for humid, sheltered corners",
		Humidity:    RawValue{Text: "high humidity, 70-90%"},
		Light:       RawValue{Text: "moderate indirect light"},
		WaterNeeds:  RawValue{Text: "keep constantly moist"},
		Temperature: RawValue{Text: "18-24°C"},
		SoilPH:      RawValue{Text: "slightly acidic"},
	}

	cls := ClassifyInputs(Normalize(rec), DefaultCatalog())

	require.False(t, cls.Fallback)
	names := cls.ProfileNames()
	assert.Contains(t, names, ProfileClosedTerrarium)
	assert.Contains(t, names, ProfileOpenTerrarium)
	assert.NotContains(t, names, ProfileDeserterium)
	assert.NotContains(t, names, ProfileAquarium)

	for i, r := range cls.Profiles {
		assert.GreaterOrEqual(t, r.Score, float64(QualifyingScore))
		if i > 0 {
			assert.LessOrEqual(t, r.Score, cls.Profiles[i-1].Score)
		}
	}
}

func TestClassifyAquaticPlant(t *testing.T) {
	rec := PlantRecord{
		Name:        "Anubias Barteri",
		Description: "A hardy aquatic plant thriving fully submerged on driftwood",
		WaterNeeds:  RawValue{Text: "aquatic"},
	}

	cls := ClassifyInputs(Normalize(rec), DefaultCatalog())

	require.False(t, cls.Fallback)
	require.NotEmpty(t, cls.Profiles)
	assert.Equal(t, ProfileAquarium, cls.Profiles[0].Profile)
	assert.Greater(t, cls.Profiles[0].Score, 95.0)
	assert.NotContains(t, cls.ProfileNames(), ProfileOpenTerrarium)
}

func TestClassifySucculent(t *testing.T) {
	rec := PlantRecord{
		Name:        "Echeveria Elegans",
		Description: "A drought-tolerant succulent forming neat rosettes",
		Humidity:    RawValue{Text: "low humidity"},
		Light:       RawValue{Text: "full sun"},
		WaterNeeds:  RawValue{Text: "water sparingly"},
		Temperature: RawValue{Text: "warm"},
	}

	cls := ClassifyInputs(Normalize(rec), DefaultCatalog())

	require.False(t, cls.Fallback)
	require.NotEmpty(t, cls.Profiles)
	assert.Equal(t, ProfileDeserterium, cls.Profiles[0].Profile)
	assert.Greater(t, cls.Profiles[0].Score, 90.0)
	assert.NotContains(t, cls.ProfileNames(), ProfileClosedTerrarium)
}

func TestClassifyFallback(t *testing.T) {
	base := NormalizedInputs{
		Humidity:       Range{Min: 0, Max: 5, Ideal: 2},
		Light:          Range{Min: 0, Max: 5, Ideal: 2},
		WaterNeeds:     Range{Min: 0, Max: 5, Ideal: 2},
		Temperature:    Range{Min: 0, Max: 5, Ideal: 2},
		SoilPH:         Range{Min: 0, Max: 5, Ideal: 2},
		Substrate:      SubstrateMoist,
		SpecialNeeds:   NeedNone,
		AirCirculation: Range{Min: 40, Max: 60, Ideal: 50},
	}

	t.Run("airy plants fall back to the open terrarium", func(t *testing.T) {
		cls := ClassifyInputs(base, DefaultCatalog())
		require.True(t, cls.Fallback)
		require.Len(t, cls.Profiles, 1)
		assert.Equal(t, ProfileOpenTerrarium, cls.Profiles[0].Profile)
	})

	t.Run("still-air plants fall back to the closed terrarium", func(t *testing.T) {
		in := base
		in.AirCirculation = Range{Min: 0, Max: 20, Ideal: 10}
		cls := ClassifyInputs(in, DefaultCatalog())
		require.True(t, cls.Fallback)
		require.Len(t, cls.Profiles, 1)
		assert.Equal(t, ProfileClosedTerrarium, cls.Profiles[0].Profile)
	})

	t.Run("desert plants fall back to the deserterium when it scores half", func(t *testing.T) {
		in := NormalizedInputs{
			Humidity:       Range{Min: 20, Max: 50, Ideal: 35},
			Light:          Range{Min: 0, Max: 20, Ideal: 10},
			AirCirculation: Range{Min: 0, Max: 20, Ideal: 10},
			WaterNeeds:     Range{Min: 0, Max: 25, Ideal: 10},
			Temperature:    Range{Min: 40, Max: 80, Ideal: 60},
			SoilPH:         Range{Min: 46.43, Max: 60.71, Ideal: 53.57},
			Substrate:      SubstrateDry,
			SpecialNeeds:   NeedNone,
		}
		cls := ClassifyInputs(in, DefaultCatalog())
		require.True(t, cls.Fallback)
		require.Len(t, cls.Profiles, 1)
		assert.Equal(t, ProfileDeserterium, cls.Profiles[0].Profile)
		assert.GreaterOrEqual(t, cls.Profiles[0].Score, float64(fallbackScore))
	})

	t.Run("desert plants with a poor deserterium fit go indoor", func(t *testing.T) {
		in := NormalizedInputs{
			Humidity:       Range{Min: 90, Max: 100, Ideal: 95},
			Light:          Range{Min: 0, Max: 5, Ideal: 2},
			AirCirculation: Range{Min: 0, Max: 5, Ideal: 2},
			WaterNeeds:     Range{Min: 50, Max: 70, Ideal: 60},
			Temperature:    Range{Min: 0, Max: 5, Ideal: 2},
			SoilPH:         Range{Min: 0, Max: 5, Ideal: 2},
			Substrate:      SubstrateDry,
			SpecialNeeds:   NeedNone,
		}
		cls := ClassifyInputs(in, DefaultCatalog())
		require.True(t, cls.Fallback)
		require.Len(t, cls.Profiles, 1)
		assert.Equal(t, ProfileIndoor, cls.Profiles[0].Profile)
	})

	t.Run("epiphytes fall back to the aerarium when it scores half", func(t *testing.T) {
		in := NormalizedInputs{
			Humidity:       Range{Min: 50, Max: 90, Ideal: 70},
			Light:          Range{Min: 0, Max: 10, Ideal: 5},
			AirCirculation: Range{Min: 60, Max: 100, Ideal: 80},
			WaterNeeds:     Range{Min: 0, Max: 10, Ideal: 5},
			Temperature:    Range{Min: 0, Max: 5, Ideal: 2},
			SoilPH:         Range{Min: 0, Max: 5, Ideal: 2},
			Substrate:      SubstrateEpiphytic,
			SpecialNeeds:   NeedNone,
		}
		cls := ClassifyInputs(in, DefaultCatalog())
		require.True(t, cls.Fallback)
		require.Len(t, cls.Profiles, 1)
		assert.Equal(t, ProfileAerarium, cls.Profiles[0].Profile)
	})

	t.Run("epiphytes with a poor aerarium fit use the terrarium rule", func(t *testing.T) {
		in := NormalizedInputs{
			Humidity:       Range{Min: 0, Max: 10, Ideal: 5},
			Light:          Range{Min: 0, Max: 10, Ideal: 5},
			AirCirculation: Range{Min: 60, Max: 100, Ideal: 80},
			WaterNeeds:     Range{Min: 0, Max: 10, Ideal: 5},
			Temperature:    Range{Min: 0, Max: 5, Ideal: 2},
			SoilPH:         Range{Min: 0, Max: 5, Ideal: 2},
			Substrate:      SubstrateEpiphytic,
			SpecialNeeds:   NeedNone,
		}
		cls := ClassifyInputs(in, DefaultCatalog())
		require.True(t, cls.Fallback)
		require.Len(t, cls.Profiles, 1)
		assert.Equal(t, ProfileOpenTerrarium, cls.Profiles[0].Profile)
	})
}

func TestClassifyTieBreakKeepsCatalogOrder(t *testing.T) {
	profile := EnvironmentProfile{
		Humidity:       Range{Min: 40, Max: 70, Ideal: 55},
		Light:          Range{Min: 40, Max: 70, Ideal: 55},
		AirCirculation: Range{Min: 40, Max: 70, Ideal: 55},
		WaterNeeds:     Range{Min: 40, Max: 70, Ideal: 55},
		Temperature:    Range{Min: 40, Max: 70, Ideal: 55},
		SoilPH:         Range{Min: 40, Max: 70, Ideal: 55},
		Substrates:     []Substrate{SubstrateMoist},
	}
	first, second := profile, profile
	first.Name = "First"
	second.Name = "Second"
	catalog := NewProfileCatalog([]EnvironmentProfile{first, second})

	in := NormalizedInputs{
		Humidity:       Range{Min: 40, Max: 70, Ideal: 55},
		Light:          Range{Min: 40, Max: 70, Ideal: 55},
		AirCirculation: Range{Min: 40, Max: 70, Ideal: 55},
		WaterNeeds:     Range{Min: 40, Max: 70, Ideal: 55},
		Temperature:    Range{Min: 40, Max: 70, Ideal: 55},
		SoilPH:         Range{Min: 40, Max: 70, Ideal: 55},
		Substrate:      SubstrateMoist,
		SpecialNeeds:   NeedNone,
	}

	cls := ClassifyInputs(in, catalog)
	require.Len(t, cls.Profiles, 2)
	assert.Equal(t, cls.Profiles[0].Score, cls.Profiles[1].Score)
	assert.Equal(t, "First", cls.Profiles[0].Profile)
	assert.Equal(t, "Second", cls.Profiles[1].Profile)
}

func TestClassifyTimestamp(t *testing.T) {
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(fixed))
	defer SetClock(nil)

	cls := ClassifyInputs(Normalize(PlantRecord{Name: "Pothos"}), DefaultCatalog())
	assert.Equal(t, fixed, cls.ClassifiedAt)
}

func TestSimpleFallback(t *testing.T) {
	tests := []struct {
		name string
		rec  PlantRecord
		want string
	}{
		{"aquatic keyword", PlantRecord{Description: "grows fully submerged"}, ProfileAquarium},
		{"dry keyword", PlantRecord{Description: "a drought-tolerant cactus"}, ProfileDeserterium},
		{"epiphytic keyword", PlantRecord{Description: "an air plant mounted on bark"}, ProfileAerarium},
		{"airy text", PlantRecord{AirCirculation: RawValue{Text: "well ventilated"}}, ProfileOpenTerrarium},
		{"still air text", PlantRecord{AirCirculation: RawValue{Text: "minimal airflow"}}, ProfileClosedTerrarium},
		{"nothing at all", PlantRecord{}, ProfileClosedTerrarium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SimpleFallback(tt.rec))
		})
	}
}

func TestDegradedClassification(t *testing.T) {
	cls := DegradedClassification(PlantRecord{Description: "grows fully submerged"})

	assert.True(t, cls.Fallback)
	assert.True(t, cls.Degraded)
	require.Len(t, cls.Profiles, 1)
	assert.Equal(t, ProfileAquarium, cls.Profiles[0].Profile)
}
