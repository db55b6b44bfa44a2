package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/gorilla/mux"
	authapp "github.com/muhammadheryan/compose-demos/application/auth"
	calculatorapp "github.com/muhammadheryan/compose-demos/application/calculator"
	currencyapp "github.com/muhammadheryan/compose-demos/application/currency"
	diceapp "github.com/muhammadheryan/compose-demos/application/dice"
	greetingapp "github.com/muhammadheryan/compose-demos/application/greeting"
	taskapp "github.com/muhammadheryan/compose-demos/application/task"
	"github.com/muhammadheryan/compose-demos/constant"
	"github.com/muhammadheryan/compose-demos/utils/errors"
	"github.com/muhammadheryan/compose-demos/utils/logger"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	AuthApp       authapp.AuthApp
	TaskApp       taskapp.TaskApp
	CalculatorApp calculatorapp.CalculatorApp
	CurrencyApp   currencyapp.CurrencyApp
	DiceApp       diceapp.DiceApp
	GreetingApp   greetingapp.GreetingApp
}

type Options struct {
	InternalAPIKey string
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/sessions", rh.StartSession).Methods(http.MethodPost)
	mux.HandleFunc("/regions", rh.Regions).Methods(http.MethodGet)

	mux.HandleFunc("/tasks", rh.TaskBoard).Methods(http.MethodGet)
	mux.HandleFunc("/tasks", rh.AddTask).Methods(http.MethodPost)
	mux.HandleFunc("/tasks/categories", rh.TaskCategories).Methods(http.MethodGet)
	mux.HandleFunc("/tasks/{id:[0-9]+}/toggle", rh.ToggleTask).Methods(http.MethodPost)
	mux.HandleFunc("/tasks/{id:[0-9]+}", rh.DeleteTask).Methods(http.MethodDelete)

	mux.HandleFunc("/calculator", rh.Calculate).Methods(http.MethodPost)
	mux.HandleFunc("/currency/rates", rh.CurrencyRates).Methods(http.MethodGet)
	mux.HandleFunc("/currency/convert", rh.ConvertCurrency).Methods(http.MethodPost)
	mux.HandleFunc("/dice/roll", rh.RollDice).Methods(http.MethodPost)
	mux.HandleFunc("/greeting", rh.Greeting).Methods(http.MethodGet)

	// protected routes
	mux.HandleFunc("/flow", rh.FlowState).Methods(http.MethodGet)
	mux.HandleFunc("/flow/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/flow/register/open", rh.OpenRegister).Methods(http.MethodPost)
	mux.HandleFunc("/flow/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/flow/back", rh.Back).Methods(http.MethodPost)
	mux.HandleFunc("/flow/otp/verify", rh.VerifyOTP).Methods(http.MethodPost)
	mux.HandleFunc("/flow/otp/resend", rh.ResendOTP).Methods(http.MethodPost)
	mux.HandleFunc("/flow/otp/countdown", rh.OTPCountdown).Methods(http.MethodGet)
	mux.HandleFunc("/flow/profile", rh.SubmitProfile).Methods(http.MethodPost)
	mux.HandleFunc("/flow/continue", rh.Continue).Methods(http.MethodPost)

	// internal routes
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(opts.InternalAPIKey))
	internal.HandleFunc("/sessions/{id}/otp", rh.PeekOTP).Methods(http.MethodGet)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.AuthApp))

	return mux
}

type successResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, successResponse{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

// writeError renders a CustomError; anything else is reported as internal.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), errorResponse{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
		Errors:  ce.Fields(),
	})
}

// decode reads a JSON body into dst, reporting ErrInvalidRequest on failure.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return false
	}
	return true
}
