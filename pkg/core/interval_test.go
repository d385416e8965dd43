package core

import (
	"math"
	"testing"
)

func TestInterval_ContainsAndSurrounds(t *testing.T) {
	i := NewInterval(1, 3)

	tests := []struct {
		name      string
		value     float64
		contains  bool
		surrounds bool
	}{
		{name: "inside", value: 2, contains: true, surrounds: true},
		{name: "lower endpoint", value: 1, contains: true, surrounds: false},
		{name: "upper endpoint", value: 3, contains: true, surrounds: false},
		{name: "below", value: 0.5, contains: false, surrounds: false},
		{name: "above", value: 3.5, contains: false, surrounds: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := i.Contains(tt.value); got != tt.contains {
				t.Errorf("Contains(%f): expected %t, got %t", tt.value, tt.contains, got)
			}
			if got := i.Surrounds(tt.value); got != tt.surrounds {
				t.Errorf("Surrounds(%f): expected %t, got %t", tt.value, tt.surrounds, got)
			}
		})
	}
}

func TestInterval_Sentinels(t *testing.T) {
	if EmptyInterval.Contains(0) {
		t.Error("Expected empty interval to contain nothing")
	}
	if !UniverseInterval.Contains(math.MaxFloat64) || !UniverseInterval.Contains(-math.MaxFloat64) {
		t.Error("Expected universe interval to contain everything")
	}
	if !UnitInterval.Contains(0) || !UnitInterval.Contains(1) || UnitInterval.Contains(1.5) {
		t.Error("Expected unit interval to be [0, 1]")
	}
}

func TestInterval_Clamp(t *testing.T) {
	i := NewInterval(0, 1)
	tests := []struct {
		value, expected float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{2, 1},
	}
	for _, tt := range tests {
		if got := i.Clamp(tt.value); got != tt.expected {
			t.Errorf("Clamp(%f): expected %f, got %f", tt.value, tt.expected, got)
		}
	}
}

func TestInterval_Expand(t *testing.T) {
	i := NewInterval(1, 3).Expand(2)
	if i.Min != 0 || i.Max != 4 {
		t.Errorf("Expected [0, 4], got [%f, %f]", i.Min, i.Max)
	}
}

func TestInterval_Add(t *testing.T) {
	i := NewInterval(1, 3).Add(10)
	if i.Min != 11 || i.Max != 13 {
		t.Errorf("Expected [11, 13], got [%f, %f]", i.Min, i.Max)
	}
}

func TestInterval_FromIntervals(t *testing.T) {
	i := NewIntervalFromIntervals(NewInterval(2, 5), NewInterval(-1, 3))
	if i.Min != -1 || i.Max != 5 {
		t.Errorf("Expected [-1, 5], got [%f, %f]", i.Min, i.Max)
	}
}

func TestInterval_Size(t *testing.T) {
	if got := NewInterval(1, 4).Size(); got != 3 {
		t.Errorf("Expected size 3, got %f", got)
	}
	if got := EmptyInterval.Size(); got > 0 {
		t.Errorf("Expected non-positive size for empty interval, got %f", got)
	}
}
