package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogOrder(t *testing.T) {
	catalog := DefaultCatalog()
	require.Equal(t, 9, catalog.Len())

	want := []string{
		ProfileOpenTerrarium,
		ProfileClosedTerrarium,
		ProfilePaludarium,
		ProfileAerarium,
		ProfileDeserterium,
		ProfileAquarium,
		ProfileRiparium,
		ProfileIndoor,
		ProfileOutdoor,
	}
	profiles := catalog.Profiles()
	for i, name := range want {
		assert.Equal(t, name, profiles[i].Name)
	}
}

func TestDefaultCatalogBands(t *testing.T) {
	catalog := DefaultCatalog()

	ot, ok := catalog.Lookup(ProfileOpenTerrarium)
	require.True(t, ok)
	assert.Equal(t, Range{Min: 70, Max: 100, Ideal: 85}, ot.Humidity)
	assert.Equal(t, Range{Min: 20, Max: 80, Ideal: 50}, ot.Light)
	assert.Equal(t, Range{Min: 40, Max: 60, Ideal: 50}, ot.AirCirculation)
	assert.False(t, ot.WaterBody)
	assert.Empty(t, ot.Gate)

	des, ok := catalog.Lookup(ProfileDeserterium)
	require.True(t, ok)
	assert.Equal(t, Range{Min: 20, Max: 50, Ideal: 30}, des.Humidity)
	assert.Equal(t, []Substrate{SubstrateDry}, des.Substrates)
	assert.Equal(t, NeedSucculent, des.PrimaryNeed)

	aq, ok := catalog.Lookup(ProfileAquarium)
	require.True(t, ok)
	assert.Equal(t, Range{Min: 100, Max: 100, Ideal: 100}, aq.Humidity)
	assert.True(t, aq.WaterBody)
	assert.Equal(t, SubstrateAquatic, aq.Gate)

	aer, ok := catalog.Lookup(ProfileAerarium)
	require.True(t, ok)
	assert.Equal(t, SubstrateEpiphytic, aer.Gate)

	for _, name := range []string{ProfilePaludarium, ProfileRiparium} {
		p, ok := catalog.Lookup(name)
		require.True(t, ok)
		assert.True(t, p.WaterBody, name)
		assert.Equal(t, NeedAquatic, p.PrimaryNeed, name)
	}
}

func TestCatalogImmutability(t *testing.T) {
	catalog := DefaultCatalog()

	profiles := catalog.Profiles()
	profiles[0].Name = "Mutated"
	profiles[0].Humidity = Range{Min: 1, Max: 2, Ideal: 1}

	fresh, ok := catalog.Lookup(ProfileOpenTerrarium)
	require.True(t, ok)
	assert.Equal(t, Range{Min: 70, Max: 100, Ideal: 85}, fresh.Humidity)

	_, ok = catalog.Lookup("Mutated")
	assert.False(t, ok)
}

func TestAllowsSubstrate(t *testing.T) {
	p := EnvironmentProfile{Substrates: []Substrate{SubstrateMoist, SubstrateWet}}

	assert.True(t, p.AllowsSubstrate(SubstrateMoist))
	assert.True(t, p.AllowsSubstrate(SubstrateWet))
	assert.False(t, p.AllowsSubstrate(SubstrateDry))
	assert.False(t, p.AllowsSubstrate(SubstrateAquatic))
}

func TestParseSubstrate(t *testing.T) {
	s, ok := ParseSubstrate("epiphytic")
	require.True(t, ok)
	assert.Equal(t, SubstrateEpiphytic, s)

	_, ok = ParseSubstrate("gravel")
	assert.False(t, ok)
}
