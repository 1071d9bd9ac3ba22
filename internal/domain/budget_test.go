package domain

import (
	"errors"
	"testing"
)

func TestAllocation_Validate(t *testing.T) {
	tests := []struct {
		name        string
		alloc       Allocation
		expectedErr error
	}{
		{name: "nil allocation", alloc: nil},
		{name: "full allocation", alloc: fullAllocation()},
		{name: "partial sum tolerated", alloc: Allocation{"o": frac("0.3")}},
		{name: "oversubscribed sum tolerated", alloc: Allocation{"o": frac("1"), "e": frac("1")}},
		{
			name:        "unknown category",
			alloc:       Allocation{"rent": frac("0.5")},
			expectedErr: ErrUnknownCategory,
		},
		{
			name:        "negative fraction",
			alloc:       Allocation{"o": frac("-0.1")},
			expectedErr: ErrInvalidFraction,
		},
		{
			name:        "fraction above one",
			alloc:       Allocation{"o": frac("1.01")},
			expectedErr: ErrInvalidFraction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.alloc.Validate()

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Fatalf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestAllocation_Clone(t *testing.T) {
	orig := Allocation{"o": frac("0.6")}
	clone := orig.Clone()

	clone["o"] = frac("0.1")
	clone["e"] = frac("0.2")

	if !orig["o"].Equal(frac("0.6")) {
		t.Fatal("mutating the clone leaked into the original")
	}
	if _, ok := orig["e"]; ok {
		t.Fatal("new clone key leaked into the original")
	}

	if Allocation(nil).Clone() != nil {
		t.Fatal("nil allocation must clone to nil")
	}
}
