// Package domain models plant care requirements and scores them against
// vivarium environment profiles.
//
// # Data Source
//
// Plant records arrive as semi-structured JSON from catalog scrapes and
// manual curation. Every care attribute (humidity, light, temperature, ...)
// may be a structured {min,max,ideal} object, a bare number, or free text
// ("prefers high humidity, 60-80%"). The [RawValue] type absorbs all three
// shapes at decode time.
//
// # Attribute Conventions
//
// All attribute math happens on a canonical 0-100 percent scale. Native
// units are converted at the parsing boundary:
//
//	pH                0-14        →  ×100/14
//	temperature       0-50 °C     →  ×100/50  (°C assumed; see below)
//	hardness          0-30 dGH    →  ×100/30
//	salinity          0-40 ppt    →  ×100/40
//	specific gravity  1.000-1.030 →  (sg−1)×100/0.030
//
// Salinity values between 1.0 and 1.1 are read as specific gravity rather
// than ppt, since no plant tolerates 1 ppt precision that low.
//
// Free-text resolution per dimension runs in a fixed order: structured
// range, then numeric range in text ("60-80%", "18 to 24 °C"), then
// qualitative keyword buckets ("high humidity" → 60-90), then a documented
// per-dimension default. Single numeric values widen into a band (±3 for pH
// dimensions, ±5 otherwise). Air circulation is almost never stated
// explicitly, so keyword-derived buckets are widened ±10 and, failing that,
// the band is inferred from the humidity midpoint.
//
// Substrate and special needs come from explicit fields when present, else
// from keyword scans over name, description, and care text. Aquatic beats
// epiphytic beats dry beats wet; "moist" is the terrestrial default.
//
// # Scoring
//
// Compatibility against a profile is a weighted range-overlap sum. Each
// dimension earns its full weight once the plant's band overlaps the
// profile's by at least 30%, minus a penalty for the distance between the
// overlap midpoint and the profile's ideal. Substrate is binary (20 points)
// and special needs add an affinity bonus (10). Water-column dimensions
// count only for profiles with a water body. Profiles with a hard gate
// (Aquarium, Aerarium) are skipped outright for plants that do not match.
//
// A profile qualifies at 70%. When nothing qualifies, a deterministic
// fallback picks a single best-guess profile from the substrate and the
// plant's airflow tolerance, and the result is flagged accordingly.
package domain
