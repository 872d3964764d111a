package domain

// Canonical profile display names, in catalog declaration order. The order
// doubles as the deterministic tie-break for equally scored profiles.
const (
	ProfileOpenTerrarium   = "Open Terrarium"
	ProfileClosedTerrarium = "Closed Terrarium"
	ProfilePaludarium      = "Paludarium"
	ProfileAerarium        = "Aerarium"
	ProfileDeserterium     = "Deserterium"
	ProfileAquarium        = "Aquarium"
	ProfileRiparium        = "Riparium"
	ProfileIndoor          = "Indoor"
	ProfileOutdoor         = "Outdoor"
)

// EnvironmentProfile is one vivarium archetype: the target band per
// dimension, the substrates the enclosure can host, and its special-needs
// affinity. Water dimensions are meaningful only when WaterBody is set.
type EnvironmentProfile struct {
	Name string

	Humidity       Range
	Light          Range
	AirCirculation Range
	WaterNeeds     Range
	Temperature    Range
	SoilPH         Range

	WaterCirculation Range
	WaterTemperature Range
	WaterPH          Range
	WaterHardness    Range
	Salinity         Range

	Substrates []Substrate
	WaterBody  bool

	// Gate excludes the profile entirely unless the plant's substrate or
	// special need matches ("" = no gate).
	Gate Substrate

	// PrimaryNeed earns the full special-needs bonus; RelatedNeeds earn the
	// reduced one.
	PrimaryNeed  SpecialNeed
	RelatedNeeds []SpecialNeed
}

// AllowsSubstrate reports whether the enclosure can host the given substrate.
func (p EnvironmentProfile) AllowsSubstrate(s Substrate) bool {
	for _, allowed := range p.Substrates {
		if allowed == s {
			return true
		}
	}
	return false
}

// ProfileCatalog is an immutable, ordered set of environment profiles.
type ProfileCatalog struct {
	profiles []EnvironmentProfile
}

// NewProfileCatalog builds a catalog from an ordered profile list, copying
// the slice so later caller mutations cannot leak in.
func NewProfileCatalog(profiles []EnvironmentProfile) *ProfileCatalog {
	copied := make([]EnvironmentProfile, len(profiles))
	copy(copied, profiles)
	return &ProfileCatalog{profiles: copied}
}

// Profiles returns the catalog in declaration order. The returned slice is a
// copy; the catalog itself never changes after construction.
func (c *ProfileCatalog) Profiles() []EnvironmentProfile {
	out := make([]EnvironmentProfile, len(c.profiles))
	copy(out, c.profiles)
	return out
}

// Lookup finds a profile by display name.
func (c *ProfileCatalog) Lookup(name string) (EnvironmentProfile, bool) {
	for _, p := range c.profiles {
		if p.Name == name {
			return p, true
		}
	}
	return EnvironmentProfile{}, false
}

// Len returns the number of profiles.
func (c *ProfileCatalog) Len() int {
	return len(c.profiles)
}

// DefaultCatalog returns a fresh copy of the built-in nine-profile catalog.
func DefaultCatalog() *ProfileCatalog {
	return NewProfileCatalog(defaultProfiles)
}

var defaultProfiles = []EnvironmentProfile{
	{
		Name:           ProfileOpenTerrarium,
		Humidity:       Range{Min: 70, Max: 100, Ideal: 85},
		Light:          Range{Min: 20, Max: 80, Ideal: 50},
		AirCirculation: Range{Min: 40, Max: 60, Ideal: 50},
		WaterNeeds:     Range{Min: 40, Max: 80, Ideal: 60},
		Temperature:    celsiusRange(18, 30, 24),
		SoilPH:         phRange(5.5, 7, 6.2),
		Substrates:     []Substrate{SubstrateMoist, SubstrateWet, SubstrateEpiphytic},
		PrimaryNeed:    NeedCarnivorous,
		RelatedNeeds:   []SpecialNeed{NeedBromeliad, NeedOrchid},
	},
	{
		Name:           ProfileClosedTerrarium,
		Humidity:       Range{Min: 80, Max: 100, Ideal: 95},
		Light:          Range{Min: 20, Max: 70, Ideal: 45},
		AirCirculation: Range{Min: 0, Max: 30, Ideal: 15},
		WaterNeeds:     Range{Min: 50, Max: 90, Ideal: 70},
		Temperature:    celsiusRange(20, 28, 24),
		SoilPH:         phRange(5.5, 7, 6.2),
		Substrates:     []Substrate{SubstrateMoist, SubstrateWet, SubstrateEpiphytic},
		PrimaryNeed:    NeedCarnivorous,
		RelatedNeeds:   []SpecialNeed{NeedBromeliad, NeedOrchid},
	},
	{
		Name:             ProfilePaludarium,
		Humidity:         Range{Min: 85, Max: 100, Ideal: 95},
		Light:            Range{Min: 30, Max: 80, Ideal: 55},
		AirCirculation:   Range{Min: 20, Max: 50, Ideal: 35},
		WaterNeeds:       Range{Min: 60, Max: 100, Ideal: 85},
		Temperature:      celsiusRange(22, 30, 26),
		SoilPH:           phRange(5.5, 7.5, 6.5),
		WaterCirculation: Range{Min: 20, Max: 60, Ideal: 40},
		WaterTemperature: celsiusRange(22, 28, 25),
		WaterPH:          phRange(6, 7.5, 6.8),
		WaterHardness:    dghRange(2, 12, 6),
		Salinity:         pptRange(0, 0.5, 0),
		Substrates:       []Substrate{SubstrateMoist, SubstrateWet, SubstrateAquatic, SubstrateEpiphytic},
		WaterBody:        true,
		PrimaryNeed:      NeedAquatic,
		RelatedNeeds:     []SpecialNeed{NeedCarnivorous, NeedBromeliad},
	},
	{
		Name:           ProfileAerarium,
		Humidity:       Range{Min: 50, Max: 90, Ideal: 70},
		Light:          Range{Min: 40, Max: 90, Ideal: 65},
		AirCirculation: Range{Min: 60, Max: 100, Ideal: 80},
		WaterNeeds:     Range{Min: 20, Max: 60, Ideal: 40},
		Temperature:    celsiusRange(18, 30, 24),
		SoilPH:         phRange(5, 7, 6),
		Substrates:     []Substrate{SubstrateEpiphytic},
		Gate:           SubstrateEpiphytic,
		PrimaryNeed:    NeedEpiphytic,
		RelatedNeeds:   []SpecialNeed{NeedBromeliad, NeedOrchid},
	},
	{
		Name:           ProfileDeserterium,
		Humidity:       Range{Min: 20, Max: 50, Ideal: 30},
		Light:          Range{Min: 60, Max: 100, Ideal: 85},
		AirCirculation: Range{Min: 50, Max: 100, Ideal: 75},
		WaterNeeds:     Range{Min: 0, Max: 30, Ideal: 15},
		Temperature:    celsiusRange(20, 40, 30),
		SoilPH:         phRange(6.5, 8.5, 7.5),
		Substrates:     []Substrate{SubstrateDry},
		PrimaryNeed:    NeedSucculent,
	},
	{
		Name:             ProfileAquarium,
		Humidity:         Range{Min: 100, Max: 100, Ideal: 100},
		Light:            Range{Min: 30, Max: 80, Ideal: 55},
		AirCirculation:   Range{Min: 0, Max: 40, Ideal: 20},
		WaterNeeds:       Range{Min: 90, Max: 100, Ideal: 100},
		Temperature:      celsiusRange(20, 30, 25),
		SoilPH:           phRange(6, 7.5, 6.8),
		WaterCirculation: Range{Min: 30, Max: 70, Ideal: 50},
		WaterTemperature: celsiusRange(22, 28, 25),
		WaterPH:          phRange(6.5, 7.5, 7),
		WaterHardness:    dghRange(4, 12, 8),
		Salinity:         pptRange(0, 0.5, 0),
		Substrates:       []Substrate{SubstrateAquatic},
		WaterBody:        true,
		Gate:             SubstrateAquatic,
		PrimaryNeed:      NeedAquatic,
	},
	{
		Name:             ProfileRiparium,
		Humidity:         Range{Min: 70, Max: 100, Ideal: 85},
		Light:            Range{Min: 40, Max: 90, Ideal: 60},
		AirCirculation:   Range{Min: 40, Max: 80, Ideal: 60},
		WaterNeeds:       Range{Min: 70, Max: 100, Ideal: 90},
		Temperature:      celsiusRange(20, 30, 25),
		SoilPH:           phRange(6, 7.5, 6.8),
		WaterCirculation: Range{Min: 30, Max: 80, Ideal: 55},
		WaterTemperature: celsiusRange(20, 28, 24),
		WaterPH:          phRange(6, 7.5, 6.8),
		WaterHardness:    dghRange(2, 14, 8),
		Salinity:         pptRange(0, 0.5, 0),
		Substrates:       []Substrate{SubstrateWet, SubstrateAquatic},
		WaterBody:        true,
		PrimaryNeed:      NeedAquatic,
		RelatedNeeds:     []SpecialNeed{NeedCarnivorous},
	},
	{
		Name:           ProfileIndoor,
		Humidity:       Range{Min: 30, Max: 70, Ideal: 50},
		Light:          Range{Min: 30, Max: 80, Ideal: 55},
		AirCirculation: Range{Min: 30, Max: 70, Ideal: 50},
		WaterNeeds:     Range{Min: 20, Max: 70, Ideal: 45},
		Temperature:    celsiusRange(18, 26, 22),
		SoilPH:         phRange(6, 7.5, 6.8),
		Substrates:     []Substrate{SubstrateDry, SubstrateMoist},
		PrimaryNeed:    NeedOrchid,
		RelatedNeeds:   []SpecialNeed{NeedBromeliad, NeedSucculent},
	},
	{
		Name:           ProfileOutdoor,
		Humidity:       Range{Min: 30, Max: 90, Ideal: 60},
		Light:          Range{Min: 50, Max: 100, Ideal: 80},
		AirCirculation: Range{Min: 70, Max: 100, Ideal: 90},
		WaterNeeds:     Range{Min: 20, Max: 80, Ideal: 50},
		Temperature:    celsiusRange(10, 35, 22),
		SoilPH:         phRange(5.5, 8, 6.8),
		Substrates:     []Substrate{SubstrateDry, SubstrateMoist, SubstrateWet},
		RelatedNeeds:   []SpecialNeed{NeedSucculent, NeedCarnivorous},
	},
}
