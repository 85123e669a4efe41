package core

import "testing"

func TestFilterRules_Match(t *testing.T) {
	rules := FilterRules{
		"themes":    {42},
		"game_type": {5},
	}

	tests := []struct {
		name        string
		field       string
		value       Value
		wantMatched int64
		wantHit     bool
	}{
		{
			name:        "array intersecting the exclusion set",
			field:       "themes",
			value:       Value{Type: TypeIntegerArray, Valid: true, Ints: []int64{42, 18}},
			wantMatched: 42,
			wantHit:     true,
		},
		{
			name:    "array disjoint from the exclusion set",
			field:   "themes",
			value:   Value{Type: TypeIntegerArray, Valid: true, Ints: []int64{1, 2}},
			wantHit: false,
		},
		{
			name:        "scalar treated as one-element set",
			field:       "game_type",
			value:       Value{Type: TypeInteger, Valid: true, Int: 5},
			wantMatched: 5,
			wantHit:     true,
		},
		{
			name:    "scalar outside the exclusion set",
			field:   "game_type",
			value:   Value{Type: TypeInteger, Valid: true, Int: 1},
			wantHit: false,
		},
		{
			name:    "unfiltered field never matches",
			field:   "genres",
			value:   Value{Type: TypeIntegerArray, Valid: true, Ints: []int64{42}},
			wantHit: false,
		},
		{
			name:    "absent value never matches",
			field:   "themes",
			value:   Value{Type: TypeIntegerArray},
			wantHit: false,
		},
		{
			name:    "empty array never matches",
			field:   "themes",
			value:   Value{Type: TypeIntegerArray, Valid: true, Ints: []int64{}},
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched, hit := rules.Match(tt.field, tt.value)
			if hit != tt.wantHit {
				t.Fatalf("Match(%s) hit = %v, want %v", tt.field, hit, tt.wantHit)
			}
			if hit && matched != tt.wantMatched {
				t.Errorf("Match(%s) matched = %d, want %d", tt.field, matched, tt.wantMatched)
			}
		})
	}
}

func TestFilterRules_NilRules(t *testing.T) {
	var rules FilterRules
	if _, hit := rules.Match("themes", Value{Type: TypeInteger, Valid: true, Int: 42}); hit {
		t.Error("nil rules matched a value")
	}
}
