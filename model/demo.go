package model

type CalculateRequest struct {
	Num1      string `json:"num1"`
	Num2      string `json:"num2"`
	Operation string `json:"operation" validate:"required,oneof=+ - * / %"`
}

type CalculateResponse struct {
	Result  *float64 `json:"result,omitempty"`
	Display string   `json:"display"`
}

type ConvertRequest struct {
	Amount string `json:"amount"`
	From   string `json:"from" validate:"required"`
	To     string `json:"to" validate:"required"`
}

type ConvertResponse struct {
	Converted *float64 `json:"converted,omitempty"`
	Rate      *float64 `json:"rate,omitempty"`
	Display   string   `json:"display"`
}

type DiceResponse struct {
	Value int    `json:"value"`
	Face  string `json:"face"`
}

type GreetingCard struct {
	Message string `json:"message"`
	Wish    string `json:"wish"`
	From    string `json:"from"`
}
