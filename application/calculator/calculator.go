package calculator

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/muhammadheryan/compose-demos/model"
	"github.com/muhammadheryan/compose-demos/utils/errors"
	validatorx "github.com/muhammadheryan/compose-demos/utils/validator"
)

const (
	msgInvalidInput = "Invalid input!"
	msgDivideByZero = "Cannot divide by zero"
	msgModuloByZero = "Cannot modulo by zero"
	resultPrefix    = "Result: "
)

type CalculatorApp interface {
	Calculate(ctx context.Context, req *model.CalculateRequest) (*model.CalculateResponse, error)
}

type calculatorAppImpl struct{}

func NewCalculatorApp() CalculatorApp {
	return &calculatorAppImpl{}
}

// Calculate applies the operation to both operands. Unparseable operands and
// division by zero are reported in Display, not as errors.
func (s *calculatorAppImpl) Calculate(_ context.Context, req *model.CalculateRequest) (*model.CalculateResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetFieldErrors(map[string]string{"operation": "unknown operation"})
	}

	n1, err1 := parseOperand(req.Num1)
	n2, err2 := parseOperand(req.Num2)
	if err1 != nil || err2 != nil {
		return &model.CalculateResponse{Display: msgInvalidInput}, nil
	}

	var res float64
	switch req.Operation {
	case "+":
		res = n1 + n2
	case "-":
		res = n1 - n2
	case "*":
		res = n1 * n2
	case "/":
		if n2 == 0 {
			return &model.CalculateResponse{Display: resultPrefix + msgDivideByZero}, nil
		}
		res = n1 / n2
	case "%":
		if n2 == 0 {
			return &model.CalculateResponse{Display: resultPrefix + msgModuloByZero}, nil
		}
		res = math.Mod(n1, n2)
	}

	return &model.CalculateResponse{
		Result:  &res,
		Display: resultPrefix + FormatNumber(res),
	}, nil
}

func parseOperand(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// FormatNumber renders f the way a JVM prints a double: "5.0", "0.5",
// "1.0E7", "NaN", "Infinity".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	// 1.2345e+07 -> 1.2345E7
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	n, _ := strconv.Atoi(exp)
	return mantissa + "E" + strconv.Itoa(n)
}
