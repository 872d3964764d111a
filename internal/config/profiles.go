package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/couchcryptid/vivarium-match/internal/domain"
)

// rangeSpec is one band override in YAML, in canonical percent units.
type rangeSpec struct {
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Ideal float64 `yaml:"ideal"`
}

func (r rangeSpec) validate(profile, dimension string) error {
	if r.Min < 0 || r.Max > 100 || r.Min > r.Ideal || r.Ideal > r.Max {
		return fmt.Errorf("profile %q: %s override {%v,%v,%v} violates 0 <= min <= ideal <= max <= 100",
			profile, dimension, r.Min, r.Ideal, r.Max)
	}
	return nil
}

func (r rangeSpec) toRange() domain.Range {
	return domain.Range{Min: r.Min, Max: r.Max, Ideal: r.Ideal}
}

// profileOverride adjusts one built-in profile. Absent fields keep the
// built-in values; overrides cannot add or remove profiles.
type profileOverride struct {
	Name           string     `yaml:"name"`
	Humidity       *rangeSpec `yaml:"humidity"`
	Light          *rangeSpec `yaml:"light"`
	AirCirculation *rangeSpec `yaml:"air_circulation"`
	WaterNeeds     *rangeSpec `yaml:"water_needs"`
	Temperature    *rangeSpec `yaml:"temperature"`
	SoilPH         *rangeSpec `yaml:"soil_ph"`
	Substrates     []string   `yaml:"substrates"`
}

type overridesFile struct {
	Profiles []profileOverride `yaml:"profiles"`
}

// LoadProfileCatalog returns the built-in catalog, with overrides from the
// YAML file at path merged in when path is non-empty.
func LoadProfileCatalog(path string) (*domain.ProfileCatalog, error) {
	catalog := domain.DefaultCatalog()
	if path == "" {
		return catalog, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile overrides: %w", err)
	}

	var f overridesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing profile overrides: %w", err)
	}

	return applyOverrides(catalog, f.Profiles)
}

func applyOverrides(catalog *domain.ProfileCatalog, overrides []profileOverride) (*domain.ProfileCatalog, error) {
	profiles := catalog.Profiles()

	for _, ov := range overrides {
		idx := -1
		for i, p := range profiles {
			if p.Name == ov.Name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("profile override %q does not match a built-in profile", ov.Name)
		}
		if err := applyOverride(&profiles[idx], ov); err != nil {
			return nil, err
		}
	}

	return domain.NewProfileCatalog(profiles), nil
}

func applyOverride(p *domain.EnvironmentProfile, ov profileOverride) error {
	dims := []struct {
		name   string
		spec   *rangeSpec
		target *domain.Range
	}{
		{"humidity", ov.Humidity, &p.Humidity},
		{"light", ov.Light, &p.Light},
		{"air_circulation", ov.AirCirculation, &p.AirCirculation},
		{"water_needs", ov.WaterNeeds, &p.WaterNeeds},
		{"temperature", ov.Temperature, &p.Temperature},
		{"soil_ph", ov.SoilPH, &p.SoilPH},
	}
	for _, d := range dims {
		if d.spec == nil {
			continue
		}
		if err := d.spec.validate(ov.Name, d.name); err != nil {
			return err
		}
		*d.target = d.spec.toRange()
	}

	if ov.Substrates != nil {
		substrates := make([]domain.Substrate, 0, len(ov.Substrates))
		for _, s := range ov.Substrates {
			sub, ok := domain.ParseSubstrate(s)
			if !ok {
				return fmt.Errorf("profile override %q: unknown substrate %q", ov.Name, s)
			}
			substrates = append(substrates, sub)
		}
		p.Substrates = substrates
	}

	return nil
}
