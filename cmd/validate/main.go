// Command validate performs data integrity checks over the profile catalog
// and a plant record dataset: catalog coverage and range invariants,
// normalization invariants, hard-gate enforcement, result ordering, size
// categories, and re-run determinism.
//
// Usage:
//
//	go run ./cmd/validate -in data/plants.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"reflect"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/vivarium-match/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

var canonicalProfiles = []string{
	domain.ProfileOpenTerrarium,
	domain.ProfileClosedTerrarium,
	domain.ProfilePaludarium,
	domain.ProfileAerarium,
	domain.ProfileDeserterium,
	domain.ProfileAquarium,
	domain.ProfileRiparium,
	domain.ProfileIndoor,
	domain.ProfileOutdoor,
}

var canonicalSizes = map[domain.SizeCategory]bool{
	domain.SizeTiny:   true,
	domain.SizeSmall:  true,
	domain.SizeMedium: true,
	domain.SizeLarge:  true,
	domain.SizeXLarge: true,
	domain.SizeOpen:   true,
}

func main() {
	inPath := flag.String("in", "", "path to plant records JSON")
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*inPath); code != 0 {
		os.Exit(code)
	}
}

func run(inPath string) int {
	// Fixed clock so the determinism phase can compare full results.
	domain.SetClock(clockwork.NewFakeClockAt(
		time.Date(2026, time.August, 30, 12, 0, 0, 0, time.UTC),
	))
	defer domain.SetClock(nil)

	fmt.Println("=== Vivarium Match Integrity Validation ===")
	fmt.Println()

	records, err := loadRecords(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load plant records: %v\n", err)
		return 1
	}
	fmt.Printf("loaded %d plant records\n\n", len(records))

	catalog := domain.DefaultCatalog()

	phases := []*phase{
		validateCatalog(catalog),
		validateNormalization(records),
		validateGates(records, catalog),
		validateOrdering(records, catalog),
		validateSizes(records),
		validateDeterminism(records, catalog),
	}

	failed := 0
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS  %s\n", p.name)
			continue
		}
		failed++
		fmt.Printf("FAIL  %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("      - %s\n", e)
		}
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d phases failed\n", failed, len(phases))
		return 1
	}
	fmt.Printf("all %d phases passed\n", len(phases))
	return 0
}

func loadRecords(path string) ([]domain.PlantRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []domain.PlantRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// validateCatalog checks profile coverage, declaration order, and the range
// invariant on every catalog band.
func validateCatalog(catalog *domain.ProfileCatalog) *phase {
	p := &phase{name: "catalog coverage and range invariants"}

	profiles := catalog.Profiles()
	if len(profiles) != len(canonicalProfiles) {
		p.errorf("expected %d profiles, got %d", len(canonicalProfiles), len(profiles))
		return p
	}
	for i, want := range canonicalProfiles {
		if profiles[i].Name != want {
			p.errorf("profile %d: want %q, got %q", i, want, profiles[i].Name)
		}
	}

	for _, prof := range profiles {
		checkRange(p, prof.Name+"/humidity", prof.Humidity)
		checkRange(p, prof.Name+"/light", prof.Light)
		checkRange(p, prof.Name+"/air_circulation", prof.AirCirculation)
		checkRange(p, prof.Name+"/water_needs", prof.WaterNeeds)
		checkRange(p, prof.Name+"/temperature", prof.Temperature)
		checkRange(p, prof.Name+"/soil_ph", prof.SoilPH)
		if prof.WaterBody {
			checkRange(p, prof.Name+"/water_circulation", prof.WaterCirculation)
			checkRange(p, prof.Name+"/water_temperature", prof.WaterTemperature)
			checkRange(p, prof.Name+"/water_ph", prof.WaterPH)
			checkRange(p, prof.Name+"/water_hardness", prof.WaterHardness)
			checkRange(p, prof.Name+"/salinity", prof.Salinity)
		}
	}
	return p
}

func checkRange(p *phase, label string, r domain.Range) {
	if r.Min < 0 || r.Max > 100 || r.Min > r.Ideal || r.Ideal > r.Max {
		p.errorf("%s: band {%v,%v,%v} violates 0 <= min <= ideal <= max <= 100",
			label, r.Min, r.Ideal, r.Max)
	}
}

// validateNormalization checks that every normalized record satisfies the
// range invariant and populates aquatic-only dimensions iff it is aquatic.
func validateNormalization(records []domain.PlantRecord) *phase {
	p := &phase{name: "normalization invariants"}

	for _, rec := range records {
		in := domain.Normalize(rec)
		checkRange(p, rec.Name+"/humidity", in.Humidity)
		checkRange(p, rec.Name+"/light", in.Light)
		checkRange(p, rec.Name+"/air_circulation", in.AirCirculation)
		checkRange(p, rec.Name+"/water_needs", in.WaterNeeds)
		checkRange(p, rec.Name+"/temperature", in.Temperature)
		checkRange(p, rec.Name+"/soil_ph", in.SoilPH)

		waterDims := in.WaterCirculation != nil || in.WaterTemperature != nil ||
			in.WaterPH != nil || in.WaterHardness != nil || in.Salinity != nil
		if waterDims && !in.Aquatic() {
			p.errorf("%s: water dimensions populated on non-aquatic plant", rec.Name)
		}
		if in.Aquatic() && in.WaterCirculation == nil {
			p.errorf("%s: aquatic plant missing water dimensions", rec.Name)
		}
	}
	return p
}

// validateGates checks that gated profiles never appear for ineligible plants.
func validateGates(records []domain.PlantRecord, catalog *domain.ProfileCatalog) *phase {
	p := &phase{name: "hard gate enforcement"}

	for _, rec := range records {
		in := domain.Normalize(rec)
		cls := domain.ClassifyInputs(in, catalog)
		for _, name := range cls.ProfileNames() {
			switch name {
			case domain.ProfileAquarium:
				if in.Substrate != domain.SubstrateAquatic && in.SpecialNeeds != domain.NeedAquatic {
					p.errorf("%s: Aquarium assigned to non-aquatic plant", rec.Name)
				}
			case domain.ProfileAerarium:
				if in.Substrate != domain.SubstrateEpiphytic && in.SpecialNeeds != domain.NeedEpiphytic {
					p.errorf("%s: Aerarium assigned to non-epiphytic plant", rec.Name)
				}
			}
		}
	}
	return p
}

// validateOrdering checks that results are sorted descending, qualify at the
// threshold, and that fallbacks carry exactly one profile.
func validateOrdering(records []domain.PlantRecord, catalog *domain.ProfileCatalog) *phase {
	p := &phase{name: "result ordering and qualification"}

	for _, rec := range records {
		cls := domain.ClassifyInputs(domain.Normalize(rec), catalog)

		if len(cls.Profiles) == 0 {
			p.errorf("%s: empty classification", rec.Name)
			continue
		}
		if cls.Fallback {
			if len(cls.Profiles) != 1 {
				p.errorf("%s: fallback with %d profiles", rec.Name, len(cls.Profiles))
			}
			continue
		}
		for i, r := range cls.Profiles {
			if r.Score < domain.QualifyingScore {
				p.errorf("%s: %s scored %.1f below the qualifying threshold", rec.Name, r.Profile, r.Score)
			}
			if i > 0 && r.Score > cls.Profiles[i-1].Score {
				p.errorf("%s: results not sorted descending at %s", rec.Name, r.Profile)
			}
		}
	}
	return p
}

// validateSizes checks that every size estimate lands in a canonical category.
func validateSizes(records []domain.PlantRecord) *phase {
	p := &phase{name: "enclosure size categories"}

	for _, rec := range records {
		est := domain.EstimateEnclosure(rec.Size)
		if !canonicalSizes[est.Category] {
			p.errorf("%s: unknown size category %q", rec.Name, est.Category)
		}
		if est.HeightBand == "" {
			p.errorf("%s: missing height band", rec.Name)
		}
	}
	return p
}

// validateDeterminism re-runs the full classification and compares.
func validateDeterminism(records []domain.PlantRecord, catalog *domain.ProfileCatalog) *phase {
	p := &phase{name: "re-run determinism"}

	for _, rec := range records {
		first := domain.ClassifyInputs(domain.Normalize(rec), catalog)
		second := domain.ClassifyInputs(domain.Normalize(rec), catalog)
		if !reflect.DeepEqual(first, second) {
			p.errorf("%s: classification differs between runs", rec.Name)
		}
	}
	return p
}
