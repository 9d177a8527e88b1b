package ration

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	const required = 10.0
	const epsilon = 1e-6

	cases := []struct {
		name     string
		provided float64
		expected Adequacy
	}{
		{"well above requirement", required, Adequate},
		{"exactly 90 percent", required * 0.9, Adequate},
		{"just under 90 percent", required*0.9 - epsilon, Marginal},
		{"exactly 70 percent", required * 0.7, Marginal},
		{"just under 70 percent", required*0.7 - epsilon, Deficient},
		{"nothing provided", 0, Deficient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(required, tc.provided); got != tc.expected {
				t.Errorf("Classify(%v, %v) = %v, expected %v", required, tc.provided, got, tc.expected)
			}
		})
	}
}

func TestClassifyZeroRequirement(t *testing.T) {
	// Minerals carry no CP/TDN requirement of their own; a zero target is
	// always covered.
	if got := Classify(0, 0); got != Adequate {
		t.Errorf("expected adequate for zero requirement, got %v", got)
	}
}
