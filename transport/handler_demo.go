package transport

import (
	"net/http"

	"github.com/muhammadheryan/compose-demos/model"
)

// Calculate handler
// @Summary Calculator
// @Tags Demo
// @Accept json
// @Produce json
// @Param request body model.CalculateRequest true "Operands and operation"
// @Success 200 {object} model.CalculateResponse
// @Failure 422 {object} errorResponse
// @Router /calculator [post]
func (s *RestHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req model.CalculateRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.CalculatorApp.Calculate(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// CurrencyRates handler
// @Summary Exchange rate table
// @Tags Demo
// @Produce json
// @Success 200 {object} map[string]map[string]float64
// @Router /currency/rates [get]
func (s *RestHandler) CurrencyRates(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.CurrencyApp.Rates(r.Context()))
}

// ConvertCurrency handler
// @Summary Convert currency
// @Tags Demo
// @Accept json
// @Produce json
// @Param request body model.ConvertRequest true "Amount and currencies"
// @Success 200 {object} model.ConvertResponse
// @Failure 422 {object} errorResponse
// @Router /currency/convert [post]
func (s *RestHandler) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	var req model.ConvertRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.CurrencyApp.Convert(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// RollDice handler
// @Summary Roll a six-sided die
// @Tags Demo
// @Produce json
// @Success 200 {object} model.DiceResponse
// @Router /dice/roll [post]
func (s *RestHandler) RollDice(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.DiceApp.Roll(r.Context()))
}

// Greeting handler
// @Summary Birthday card
// @Tags Demo
// @Produce json
// @Param name query string false "Recipient"
// @Param from query string false "Sender"
// @Success 200 {object} model.GreetingCard
// @Router /greeting [get]
func (s *RestHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	writeSuccess(w, s.GreetingApp.Card(r.Context(), q.Get("name"), q.Get("from")))
}
