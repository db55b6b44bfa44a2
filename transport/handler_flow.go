package transport

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/compose-demos/constant"
	"github.com/muhammadheryan/compose-demos/model"
	utilsContext "github.com/muhammadheryan/compose-demos/utils/context"
	"github.com/muhammadheryan/compose-demos/utils/errors"
)

// sessionID returns the session set by AuthMiddleware.
func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := utilsContext.GetSessionID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
	}
	return id, ok
}

// StartSession handler
// @Summary Start flow session
// @Description Start a registration/login flow and receive its bearer token
// @Tags Flow
// @Produce json
// @Success 200 {object} model.SessionResponse
// @Router /sessions [post]
func (s *RestHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	res, err := s.AuthApp.StartSession(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// FlowState handler
// @Summary Current screen
// @Tags Flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.FlowView
// @Failure 401 {object} errorResponse
// @Router /flow [get]
func (s *RestHandler) FlowState(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	res, err := s.AuthApp.State(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Login handler
// @Summary Login
// @Description Sign in with the account registered in this session
// @Tags Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.FlowView
// @Failure 400 {object} errorResponse
// @Failure 422 {object} errorResponse
// @Router /flow/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req model.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.AuthApp.Login(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// OpenRegister handler
// @Summary Go to register
// @Tags Flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.FlowView
// @Failure 409 {object} errorResponse
// @Router /flow/register/open [post]
func (s *RestHandler) OpenRegister(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	res, err := s.AuthApp.OpenRegister(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Register handler
// @Summary Register
// @Description Submit the register form and receive the first code
// @Tags Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.FlowView
// @Failure 422 {object} errorResponse
// @Router /flow/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req model.RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.AuthApp.Register(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Back handler
// @Summary Back
// @Tags Flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.FlowView
// @Failure 409 {object} errorResponse
// @Router /flow/back [post]
func (s *RestHandler) Back(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	res, err := s.AuthApp.Back(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// VerifyOTP handler
// @Summary Verify code
// @Tags Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.VerifyOTPRequest true "Verify Request"
// @Success 200 {object} model.FlowView
// @Failure 400 {object} errorResponse
// @Router /flow/otp/verify [post]
func (s *RestHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req model.VerifyOTPRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.AuthApp.VerifyOTP(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// ResendOTP handler
// @Summary Resend code
// @Tags Flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.FlowView
// @Failure 429 {object} errorResponse
// @Router /flow/otp/resend [post]
func (s *RestHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	res, err := s.AuthApp.ResendOTP(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// OTPCountdown handler
// @Summary Resend countdown
// @Description Server-sent events with the seconds left before a resend; ends at 0
// @Tags Flow
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200 {string} string
// @Router /flow/otp/countdown [get]
func (s *RestHandler) OTPCountdown(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	ticks, err := s.AuthApp.Countdown(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	for left := range ticks {
		fmt.Fprintf(w, "event: countdown\ndata: %d\n\n", left)
		flusher.Flush()
	}
}

// SubmitProfile handler
// @Summary Submit personal data
// @Tags Flow
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ProfileRequest true "Profile Request"
// @Success 200 {object} model.FlowView
// @Failure 422 {object} errorResponse
// @Router /flow/profile [post]
func (s *RestHandler) SubmitProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req model.ProfileRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := s.AuthApp.SubmitProfile(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Continue handler
// @Summary Leave the welcome screen
// @Tags Flow
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.FlowView
// @Router /flow/continue [post]
func (s *RestHandler) Continue(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}
	res, err := s.AuthApp.Continue(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

// Regions handler
// @Summary Province and city catalog
// @Tags Flow
// @Produce json
// @Success 200 {array} model.Region
// @Router /regions [get]
func (s *RestHandler) Regions(w http.ResponseWriter, r *http.Request) {
	res := make([]model.Region, 0, len(constant.Provinces))
	for _, p := range constant.Provinces {
		res = append(res, model.Region{Province: p, Cities: constant.ProvinceCities[p]})
	}
	writeSuccess(w, res)
}

// PeekOTP handler
// @Summary Show the simulated code of a session
// @Tags Internal
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} model.OTPPeek
// @Failure 403 {object} errorResponse
// @Router /internal/v1/sessions/{id}/otp [get]
func (s *RestHandler) PeekOTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := s.AuthApp.PeekOTP(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}
