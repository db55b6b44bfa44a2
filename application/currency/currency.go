package currency

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/muhammadheryan/compose-demos/model"
	"github.com/muhammadheryan/compose-demos/utils/errors"
	validatorx "github.com/muhammadheryan/compose-demos/utils/validator"
)

const msgInvalid = "Invalid input or conversion rate"

// rates[from][to] is the fixed multiplier from one currency to another.
var rates = map[string]map[string]float64{
	"IDR": {"USD": 1 / 16770.0, "MYR": 1 / 3570.0, "GBP": 1 / 21100.0, "TWD": 1 / 540.0},
	"USD": {"IDR": 16770.0, "MYR": 4.67, "GBP": 0.79, "TWD": 32.0},
	"MYR": {"IDR": 3570.0, "USD": 0.21, "GBP": 0.17, "TWD": 6.9},
	"GBP": {"IDR": 21100.0, "USD": 1.27, "MYR": 5.88, "TWD": 40.5},
	"TWD": {"IDR": 540.0, "USD": 0.031, "MYR": 0.145, "GBP": 0.025},
}

// Currencies in display order.
var Currencies = []string{"IDR", "USD", "MYR", "GBP", "TWD"}

type CurrencyApp interface {
	Rates(ctx context.Context) map[string]map[string]float64
	Convert(ctx context.Context, req *model.ConvertRequest) (*model.ConvertResponse, error)
}

type currencyAppImpl struct{}

func NewCurrencyApp() CurrencyApp {
	return &currencyAppImpl{}
}

// Rates returns a copy of the rate table.
func (s *currencyAppImpl) Rates(_ context.Context) map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(rates))
	for from, row := range rates {
		cp := make(map[string]float64, len(row))
		for to, r := range row {
			cp[to] = r
		}
		out[from] = cp
	}
	return out
}

// Convert multiplies the amount by the table rate. A bad amount or a pair
// with no rate (including same-currency pairs) yields the invalid display.
func (s *currencyAppImpl) Convert(_ context.Context, req *model.ConvertRequest) (*model.ConvertResponse, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		fields := map[string]string{}
		for field := range validatorx.FieldTags(err) {
			fields[field] = "Mata uang harus dipilih"
		}
		return nil, errors.SetFieldErrors(fields)
	}
	from := strings.ToUpper(req.From)
	to := strings.ToUpper(req.To)
	if !slices.Contains(Currencies, from) || !slices.Contains(Currencies, to) {
		return &model.ConvertResponse{Display: msgInvalid}, nil
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(req.Amount), 64)
	rate, ok := rates[from][to]
	if err != nil || !ok {
		return &model.ConvertResponse{Display: msgInvalid}, nil
	}

	converted := amount * rate
	return &model.ConvertResponse{
		Converted: &converted,
		Rate:      &rate,
		Display:   fmt.Sprintf("%.2f %s = %.2f %s", amount, from, converted, to),
	}, nil
}
