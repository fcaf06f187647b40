package domain

import "testing"

func TestPageNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Page
		want Page
	}{
		{"zero value gets default limit", Page{}, Page{Offset: 0, Limit: DefaultPageLimit}},
		{"negative offset clamped", Page{Offset: -5, Limit: 10}, Page{Offset: 0, Limit: 10}},
		{"negative limit replaced", Page{Offset: 3, Limit: -1}, Page{Offset: 3, Limit: DefaultPageLimit}},
		{"oversized limit capped", Page{Offset: 0, Limit: 5000}, Page{Offset: 0, Limit: MaxPageLimit}},
		{"valid window unchanged", Page{Offset: 20, Limit: 25}, Page{Offset: 20, Limit: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
