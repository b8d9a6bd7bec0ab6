package calculation_test

import (
	"errors"
	"testing"

	"github.com/krpetrov/go-ltr-calculator/pkg/calculation"
)

func TestCheckBrackets(t *testing.T) {
	cases := []struct {
		name       string
		expression string
		pairs      map[rune]rune
		wantErr    bool
	}{
		{
			name:       "Balanced round brackets",
			expression: "((3+2))+1",
			pairs:      calculation.RoundBrackets,
			wantErr:    false,
		},
		{
			name:       "Extra closers",
			expression: "(10+20))))",
			pairs:      calculation.RoundBrackets,
			wantErr:    true,
		},
		{
			name:       "Unclosed opener",
			expression: "(2+(3",
			pairs:      calculation.RoundBrackets,
			wantErr:    true,
		},
		{
			name:       "Empty string",
			expression: "",
			pairs:      calculation.RoundBrackets,
			wantErr:    false,
		},
		{
			name:       "All bracket kinds nested",
			expression: "{[()()]}",
			pairs:      nil,
			wantErr:    false,
		},
		{
			name:       "Interleaved kinds",
			expression: "[(])",
			pairs:      nil,
			wantErr:    true,
		},
		{
			name:       "Mismatched closer",
			expression: "{[}",
			pairs:      nil,
			wantErr:    true,
		},
		{
			name:       "Square brackets ignored with round pairs",
			expression: "[1+2",
			pairs:      calculation.RoundBrackets,
			wantErr:    false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := calculation.CheckBrackets(tc.expression, tc.pairs)

			if (err != nil) != tc.wantErr {
				t.Errorf("CheckBrackets(%q) error = %v, wantErr %v", tc.expression, err, tc.wantErr)
			}

			if err != nil && !errors.Is(err, calculation.ErrBracketPairing) {
				t.Errorf("CheckBrackets(%q) error = %v, want ErrBracketPairing", tc.expression, err)
			}
		})
	}
}
