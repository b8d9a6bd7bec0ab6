package calculation_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/krpetrov/go-ltr-calculator/pkg/calculation"
)

func TestTokenize(t *testing.T) {
	calc := calculation.New()

	cases := []struct {
		name       string
		expression string
		operands   []string
		symbols    []string
		wantErr    bool
	}{
		{
			name:       "Power is a single token",
			expression: "2**3",
			operands:   []string{"2", "3"},
			symbols:    []string{"**"},
		},
		{
			name:       "Percentage is a single token",
			expression: "1%%2%2",
			operands:   []string{"1", "2", "2"},
			symbols:    []string{"%%", "%"},
		},
		{
			name:       "Sign after operator belongs to operand",
			expression: "4+-3",
			operands:   []string{"4", "-3"},
			symbols:    []string{"+"},
		},
		{
			name:       "Single operand",
			expression: "42",
			operands:   []string{"42"},
			symbols:    nil,
		},
		{
			name:       "Scientific notation operand",
			expression: "1.2E-4*3",
			operands:   []string{"1.2E-4", "3"},
			symbols:    []string{"*"},
		},
		{
			name:       "Operand expected",
			expression: "4+*3",
			wantErr:    true,
		},
		{
			name:       "Operator expected",
			expression: "4(2",
			wantErr:    true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			operands, symbols, err := calc.Tokenize(tc.expression)

			if (err != nil) != tc.wantErr {
				t.Fatalf("Tokenize(%q) error = %v, wantErr %v", tc.expression, err, tc.wantErr)
			}

			if tc.wantErr {
				if !errors.Is(err, calculation.ErrSyntax) {
					t.Errorf("Tokenize(%q) error = %v, want ErrSyntax", tc.expression, err)
				}
				return
			}

			if !slices.Equal(operands, tc.operands) {
				t.Errorf("Tokenize(%q) operands = %v, want %v", tc.expression, operands, tc.operands)
			}

			if !slices.Equal(symbols, tc.symbols) {
				t.Errorf("Tokenize(%q) symbols = %v, want %v", tc.expression, symbols, tc.symbols)
			}
		})
	}
}

func TestOperators(t *testing.T) {
	ops := calculation.NewOperators()

	t.Run("Symbols are ordered longest first", func(t *testing.T) {
		symbols := ops.Symbols()

		want := []string{"%%", "**", "%", "*", "+", "-", "/"}
		if !slices.Equal(symbols, want) {
			t.Errorf("Symbols() = %v, want %v", symbols, want)
		}
	})

	t.Run("Unknown operator", func(t *testing.T) {
		if _, err := ops.Get("^"); !errors.Is(err, calculation.ErrUnknownOperator) {
			t.Errorf("Get(\"^\") error = %v, want ErrUnknownOperator", err)
		}

		if _, err := ops.Compute(1, 2, "task3"); !errors.Is(err, calculation.ErrUnknownOperator) {
			t.Errorf("Compute with bad symbol error = %v, want ErrUnknownOperator", err)
		}
	})

	t.Run("Percentage divides by the whole", func(t *testing.T) {
		got, err := ops.Compute(200, 50, "%%")
		if err != nil {
			t.Fatalf("Compute(200, 50, %%%%) unexpected error: %v", err)
		}
		if got != 25 {
			t.Errorf("Compute(200, 50, %%%%) = %v, want 25", got)
		}
	})

	t.Run("Division by zero", func(t *testing.T) {
		if _, err := ops.Compute(1, 0, "/"); !errors.Is(err, calculation.ErrDivisionByZero) {
			t.Errorf("Compute(1, 0, /) error = %v, want ErrDivisionByZero", err)
		}

		if _, err := ops.Compute(1, 0, "%"); !errors.Is(err, calculation.ErrDivisionByZero) {
			t.Errorf("Compute(1, 0, %%) error = %v, want ErrDivisionByZero", err)
		}

		if _, err := ops.Compute(0, 50, "%%"); !errors.Is(err, calculation.ErrDivisionByZero) {
			t.Errorf("Compute(0, 50, %%%%) error = %v, want ErrDivisionByZero", err)
		}
	})
}
