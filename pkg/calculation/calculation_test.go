package calculation_test

import (
	"errors"
	"testing"

	"github.com/krpetrov/go-ltr-calculator/pkg/calculation"
)

func TestCalc(t *testing.T) {
	cases := []struct {
		name       string
		expression string
		want       float64
		wantErr    error
	}{
		{
			name:       "Two sum",
			expression: "2+2",
			want:       4,
		},
		{
			name:       "Left to right ignores precedence",
			expression: "4+2*5",
			want:       30,
		},
		{
			name:       "Nested groups reduce innermost first",
			expression: "(3 + (2 * 10 / (40 - 20))+(3 * 4)) * 10",
			want:       160,
		},
		{
			name:       "Redundant parentheses",
			expression: "((3+2))+1",
			want:       6,
		},
		{
			name:       "Bare number",
			expression: "42",
			want:       42,
		},
		{
			name:       "Signed number",
			expression: "-2+1",
			want:       -1,
		},
		{
			name:       "Scientific notation and leading dot",
			expression: "1.5e2+.5",
			want:       150.5,
		},
		{
			name:       "Power is left associative here",
			expression: "2**3**2",
			want:       64,
		},
		{
			name:       "Modulo",
			expression: "10 % 3",
			want:       1,
		},
		{
			name:       "Percentage of whole",
			expression: "200 %% 50",
			want:       25,
		},
		{
			name:       "Negative group result",
			expression: "(2-5)*3",
			want:       -9,
		},
		{
			name:       "Interior whitespace is ignored",
			expression: "  4  +  2 * 5  ",
			want:       30,
		},
		{
			name:       "Division by zero inside group",
			expression: "4 + 2 / (20 / 20 - 1)",
			wantErr:    calculation.ErrDivisionByZero,
		},
		{
			name:       "Adjacent operands",
			expression: "4 + 2   5",
			wantErr:    calculation.ErrSyntax,
		},
		{
			name:       "Extra closing brackets",
			expression: "(10+20))))",
			wantErr:    calculation.ErrBracketPairing,
		},
		{
			name:       "Unclosed bracket",
			expression: "2+(3*4",
			wantErr:    calculation.ErrBracketPairing,
		},
		{
			name:       "Empty expression",
			expression: "",
			wantErr:    calculation.ErrSyntax,
		},
		{
			name:       "Unsupported token",
			expression: "2+3$4",
			wantErr:    calculation.ErrSyntax,
		},
		{
			name:       "Trailing operator",
			expression: "2+2-",
			wantErr:    calculation.ErrSyntax,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calculation.Calc(tc.expression)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Calc(%q) error = %v, want %v", tc.expression, err, tc.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Calc(%q) unexpected error: %v", tc.expression, err)
			}

			if got != tc.want {
				t.Errorf("Calc(%q) = %v, want %v", tc.expression, got, tc.want)
			}
		})
	}
}

// Проверяет, что удаление пробелов не меняет результат.
func TestCalcWhitespaceIdempotence(t *testing.T) {
	pairs := []struct {
		compact string
		spaced  string
	}{
		{"4+2*5", " 4 +\t2 * 5 "},
		{"(3+2)*4", "( 3 + 2 ) * 4"},
		{"200%%50", "200 %% 50"},
	}

	for _, p := range pairs {
		compact, err := calculation.Calc(p.compact)
		if err != nil {
			t.Fatalf("Calc(%q) unexpected error: %v", p.compact, err)
		}

		spaced, err := calculation.Calc(p.spaced)
		if err != nil {
			t.Fatalf("Calc(%q) unexpected error: %v", p.spaced, err)
		}

		if compact != spaced {
			t.Errorf("Calc(%q) = %v, Calc(%q) = %v, want equal", p.compact, compact, p.spaced, spaced)
		}
	}
}
