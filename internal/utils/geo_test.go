package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sydoni/sydoni-drive/internal/pkg/models"
)

func TestCalculateDistance(t *testing.T) {
	tests := []struct {
		name      string
		point1    GeoPoint
		point2    GeoPoint
		expected  float64
		tolerance float64
	}{
		{
			name: "Same point",
			point1: GeoPoint{
				Latitude:  12.2419,
				Longitude: -2.4083,
			},
			point2: GeoPoint{
				Latitude:  12.2419,
				Longitude: -2.4083,
			},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name: "BIT to UNZ campus",
			point1: GeoPoint{
				Latitude:  12.2419,
				Longitude: -2.4083,
			},
			point2: GeoPoint{
				Latitude:  12.2400,
				Longitude: -2.3990,
			},
			expected:  1.0,
			tolerance: 0.2,
		},
		{
			name: "Koudougou to Ouagadougou",
			point1: GeoPoint{
				Latitude:  12.2530,
				Longitude: -2.3622,
			},
			point2: GeoPoint{
				Latitude:  12.3714,
				Longitude: -1.5197,
			},
			expected:  92.0,
			tolerance: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDistance(tt.point1, tt.point2)
			assert.InDelta(t, tt.expected, got, tt.tolerance)

			// Distance is symmetric
			reversed := CalculateDistance(tt.point2, tt.point1)
			assert.True(t, math.Abs(got-reversed) < 1e-9)
		})
	}
}

func TestCellWithNeighbors(t *testing.T) {
	loc := models.Location{Latitude: 12.2419, Longitude: -2.4083}
	cells := CellWithNeighbors(loc, 5)

	assert.Len(t, cells, 9)
	assert.Equal(t, EncodeLocation(loc, 5), cells[0])
	for _, cell := range cells {
		assert.Len(t, cell, 5)
	}
}
