package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateEnclosure(t *testing.T) {
	tests := []struct {
		name       string
		size       string
		category   SizeCategory
		heightCm   float64
		heightBand string
	}{
		{"small fern", "8-25 cm", SizeSmall, 13.43, "5-15 cm"},
		{"tall shrub", "45-90 cm", SizeXLarge, 73.29, "60-180 cm"},
		{"tiny moss", "1-3 cm", SizeTiny, 3.43, "0-5 cm"},
		{"tiny boundary", "2.1 cm", SizeTiny, 5.0, "0-5 cm"},
		{"medium plant", "13.5-40 cm", SizeMedium, 21.99, "15-30 cm"},
		{"large plant", "30-50 cm", SizeLarge, 48.86, "30-60 cm"},
		{"meter units", "1.2 m", SizeOpen, 195.43, "180+ cm"},
		{"single value", "7 cm", SizeSmall, 12.0, "5-15 cm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateEnclosure(tt.size)
			assert.Equal(t, tt.category, got.Category)
			assert.Equal(t, tt.heightBand, got.HeightBand)
			assert.InDelta(t, tt.heightCm, got.RequiredHeightCm, 0.01)
		})
	}
}

func TestEstimateEnclosureUnparseable(t *testing.T) {
	for _, size := range []string{"", "varies widely", "tall"} {
		got := EstimateEnclosure(size)
		assert.Equal(t, SizeSmall, got.Category, "size %q", size)
		assert.Equal(t, "5-15 cm", got.HeightBand)
		assert.Zero(t, got.RequiredHeightCm)
	}
}
