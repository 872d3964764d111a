package domain

import (
	"math"
	"strconv"
)

// substrateHeightShare is the fraction of enclosure height left for the
// plant after the substrate layer takes its cut.
const substrateHeightShare = 0.70

// minPaddingCm is the floor on headroom above the plant.
const minPaddingCm = 2

// sizeBreakpoints map a required enclosure height in cm to a category.
var sizeBreakpoints = []struct {
	maxHeight float64
	category  SizeCategory
	band      string
}{
	{5, SizeTiny, "0-5 cm"},
	{15, SizeSmall, "5-15 cm"},
	{30, SizeMedium, "15-30 cm"},
	{60, SizeLarge, "30-60 cm"},
	{180, SizeXLarge, "60-180 cm"},
	{math.Inf(1), SizeOpen, "180+ cm"},
}

// EstimateEnclosure classifies a plant's size string into an enclosure
// category. The first numeric token is read as the juvenile size (the size
// plants are usually sold at), padded for headroom, and scaled up for the
// substrate layer. Unparseable input silently lands in the small category.
func EstimateEnclosure(size string) SizeEstimate {
	juvenile, ok := parseJuvenileSize(size)
	if !ok {
		return SizeEstimate{Category: SizeSmall, HeightBand: bandFor(SizeSmall)}
	}

	padding := math.Max(juvenile*0.20, minPaddingCm)
	required := juvenile/substrateHeightShare + padding

	for _, bp := range sizeBreakpoints {
		if required <= bp.maxHeight {
			return SizeEstimate{
				Category:         bp.category,
				HeightBand:       bp.band,
				RequiredHeightCm: math.Round(required*100) / 100,
			}
		}
	}
	// Unreachable: the last breakpoint is unbounded.
	return SizeEstimate{Category: SizeOpen, HeightBand: bandFor(SizeOpen), RequiredHeightCm: required}
}

// parseJuvenileSize extracts the first numeric token of a size string in cm,
// converting from meters when the unit says so.
func parseJuvenileSize(size string) (float64, bool) {
	m := sizeTokenRe.FindStringSubmatch(normalizeText(size))
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if m[2] == "m" {
		v *= 100
	}
	return v, true
}

func bandFor(c SizeCategory) string {
	for _, bp := range sizeBreakpoints {
		if bp.category == c {
			return bp.band
		}
	}
	return ""
}
