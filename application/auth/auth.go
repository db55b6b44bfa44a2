package auth

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/compose-demos/application/flow"
	"github.com/muhammadheryan/compose-demos/application/otp"
	"github.com/muhammadheryan/compose-demos/cmd/config"
	"github.com/muhammadheryan/compose-demos/constant"
	"github.com/muhammadheryan/compose-demos/model"
	sessionrepo "github.com/muhammadheryan/compose-demos/repository/session"
	"github.com/muhammadheryan/compose-demos/utils/errors"
	"github.com/muhammadheryan/compose-demos/utils/logger"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthApp interface {
	StartSession(ctx context.Context) (*model.SessionResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)

	State(ctx context.Context, sessionID string) (*model.FlowView, error)
	Login(ctx context.Context, sessionID string, req *model.LoginRequest) (*model.FlowView, error)
	OpenRegister(ctx context.Context, sessionID string) (*model.FlowView, error)
	Back(ctx context.Context, sessionID string) (*model.FlowView, error)
	Register(ctx context.Context, sessionID string, req *model.RegisterRequest) (*model.FlowView, error)
	VerifyOTP(ctx context.Context, sessionID string, req *model.VerifyOTPRequest) (*model.FlowView, error)
	ResendOTP(ctx context.Context, sessionID string) (*model.FlowView, error)
	SubmitProfile(ctx context.Context, sessionID string, req *model.ProfileRequest) (*model.FlowView, error)
	Continue(ctx context.Context, sessionID string) (*model.FlowView, error)

	Countdown(ctx context.Context, sessionID string) (<-chan int, error)
	PeekOTP(ctx context.Context, sessionID string) (*model.OTPPeek, error)
}

type AuthAppImpl struct {
	config      *config.Config
	sessionRepo sessionrepo.Repository
	backend     otp.Backend
	now         func() time.Time
	locks       *sessionLocks
}

func NewAuthApp(config *config.Config, sessionRepo sessionrepo.Repository, backend otp.Backend) AuthApp {
	return NewAuthAppWithClock(config, sessionRepo, backend, time.Now)
}

// NewAuthAppWithClock is NewAuthApp with an injected clock.
func NewAuthAppWithClock(config *config.Config, sessionRepo sessionrepo.Repository, backend otp.Backend, now func() time.Time) AuthApp {
	return &AuthAppImpl{
		config:      config,
		sessionRepo: sessionRepo,
		backend:     backend,
		now:         now,
		locks:       newSessionLocks(),
	}
}

func (s *AuthAppImpl) StartSession(ctx context.Context) (*model.SessionResponse, error) {
	sessionID := uuid.NewString()
	state := flow.Initial()

	if err := s.sessionRepo.Save(ctx, sessionID, &state, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[StartSession] err sessionRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, err := s.generateJWT(sessionID)
	if err != nil {
		logger.Error("[StartSession] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.SessionResponse{
		SessionID: sessionID,
		Token:     token,
		Flow:      s.view(state),
	}, nil
}

func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	sessionID := claims.ID
	if sessionID == "" || claims.Subject != sessionID {
		return "", fmt.Errorf("token does not name a session")
	}

	if _, err := s.sessionRepo.Get(ctx, sessionID); err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}
	return sessionID, nil
}

func (s *AuthAppImpl) State(ctx context.Context, sessionID string) (*model.FlowView, error) {
	state, err := s.load(ctx, "[State]", sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(*state), nil
}

func (s *AuthAppImpl) Login(ctx context.Context, sessionID string, req *model.LoginRequest) (*model.FlowView, error) {
	return s.dispatch(ctx, "[Login]", sessionID, flow.SubmitLogin{
		Email:    req.Email,
		Password: req.Password,
	})
}

func (s *AuthAppImpl) OpenRegister(ctx context.Context, sessionID string) (*model.FlowView, error) {
	return s.dispatch(ctx, "[OpenRegister]", sessionID, flow.OpenRegister{})
}

// Back reverses one step: register to login or code entry to register.
func (s *AuthAppImpl) Back(ctx context.Context, sessionID string) (*model.FlowView, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, "[Back]", sessionID)
	if err != nil {
		return nil, err
	}

	var ev flow.Event
	switch state.Screen {
	case constant.ScreenRegister:
		ev = flow.BackToLogin{}
	case constant.ScreenOTPVerification:
		ev = flow.BackToRegister{}
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	return s.apply(ctx, "[Back]", sessionID, *state, ev)
}

// Register validates the form, moves to code entry and issues the first code.
// A code from an earlier attempt whose countdown is still running is reused
// instead.
func (s *AuthAppImpl) Register(ctx context.Context, sessionID string, req *model.RegisterRequest) (*model.FlowView, error) {
	data := model.RegistrationData{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		PhoneNumber:     req.PhoneNumber,
		AgreedToTerms:   req.AgreedToTerms,
	}
	if fields := flow.ValidateRegistration(data); fields != nil {
		return nil, errors.SetFieldErrors(fields)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost())
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, "[Register]", sessionID)
	if err != nil {
		return nil, err
	}
	next, err := flow.Reduce(*state, flow.SubmitRegistration{Data: data, PasswordHash: string(hash)})
	if err != nil {
		return nil, err
	}
	if !flow.CanResend(next.OTP, s.now()) {
		return s.save(ctx, "[Register]", sessionID, next)
	}
	return s.issue(ctx, "[Register]", sessionID, next)
}

// VerifyOTP waits out the verification round trip before comparing codes.
// Codes that are not six digits never reach the backend. The comparison runs
// against the state as it is after the wait, so a code resent meanwhile wins.
func (s *AuthAppImpl) VerifyOTP(ctx context.Context, sessionID string, req *model.VerifyOTPRequest) (*model.FlowView, error) {
	state, err := s.load(ctx, "[VerifyOTP]", sessionID)
	if err != nil {
		return nil, err
	}
	if state.Screen != constant.ScreenOTPVerification {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if !flow.ValidCode(req.Code) {
		return nil, errors.SetCustomError(constant.ErrCodeLength)
	}

	if err := s.backend.Wait(ctx); err != nil {
		logger.Warn("[VerifyOTP] verification abandoned", zap.String("session_id", sessionID), zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.dispatch(ctx, "[VerifyOTP]", sessionID, flow.SubmitCode{Code: req.Code})
}

func (s *AuthAppImpl) ResendOTP(ctx context.Context, sessionID string) (*model.FlowView, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, "[ResendOTP]", sessionID)
	if err != nil {
		return nil, err
	}
	if state.Screen != constant.ScreenOTPVerification {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if !flow.CanResend(state.OTP, s.now()) {
		return nil, errors.SetCustomError(constant.ErrResendNotReady)
	}
	return s.issue(ctx, "[ResendOTP]", sessionID, *state)
}

func (s *AuthAppImpl) SubmitProfile(ctx context.Context, sessionID string, req *model.ProfileRequest) (*model.FlowView, error) {
	return s.dispatch(ctx, "[SubmitProfile]", sessionID, flow.SubmitProfile{Profile: model.PersonalProfile{
		FullName:  req.FullName,
		BirthDate: req.BirthDate,
		Province:  req.Province,
		City:      req.City,
	}})
}

func (s *AuthAppImpl) Continue(ctx context.Context, sessionID string) (*model.FlowView, error) {
	return s.dispatch(ctx, "[Continue]", sessionID, flow.Continue{})
}

// Countdown streams the seconds left before a resend is allowed. It ends with
// ctx, so it stops as soon as the client goes away.
func (s *AuthAppImpl) Countdown(ctx context.Context, sessionID string) (<-chan int, error) {
	state, err := s.load(ctx, "[Countdown]", sessionID)
	if err != nil {
		return nil, err
	}
	if state.Screen != constant.ScreenOTPVerification {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if state.OTP.IssuedAt.IsZero() {
		return nil, errors.SetCustomError(constant.ErrCodeNotIssued)
	}
	return otp.Countdown(ctx, state.OTP.ExpiresAt, s.now, time.Second), nil
}

func (s *AuthAppImpl) PeekOTP(ctx context.Context, sessionID string) (*model.OTPPeek, error) {
	state, err := s.load(ctx, "[PeekOTP]", sessionID)
	if err != nil {
		return nil, err
	}
	if state.OTP.IssuedAt.IsZero() {
		return nil, errors.SetCustomError(constant.ErrCodeNotIssued)
	}
	return &model.OTPPeek{
		SessionID:   sessionID,
		PhoneNumber: state.Pending.PhoneNumber,
		Code:        state.OTP.Code,
		Phase:       flow.Phase(state.OTP, s.now()),
		ExpiresAt:   state.OTP.ExpiresAt,
	}, nil
}

// issue asks the backend for a code and records it on state.
func (s *AuthAppImpl) issue(ctx context.Context, op, sessionID string, state model.FlowState) (*model.FlowView, error) {
	code, err := s.backend.Issue(ctx, sessionID, state.Registration.PhoneNumber)
	if err != nil {
		logger.Error(op+" err backend.Issue", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.apply(ctx, op, sessionID, state, flow.CodeIssued{
		Code:        code,
		At:          s.now(),
		ResendAfter: s.config.OTP.ResendAfter,
	})
}

// dispatch loads, reduces and saves while holding the session lock.
func (s *AuthAppImpl) dispatch(ctx context.Context, op, sessionID string, ev flow.Event) (*model.FlowView, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	state, err := s.load(ctx, op, sessionID)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, op, sessionID, *state, ev)
}

// apply reduces and saves. A failed reduction may still carry state worth
// keeping (a counted attempt), so it is saved before the error is returned.
func (s *AuthAppImpl) apply(ctx context.Context, op, sessionID string, state model.FlowState, ev flow.Event) (*model.FlowView, error) {
	next, rerr := flow.Reduce(state, ev)
	if rerr != nil && next == state {
		return nil, rerr
	}

	view, err := s.save(ctx, op, sessionID, next)
	if err != nil {
		return nil, err
	}
	if rerr != nil {
		return nil, rerr
	}

	logger.Debug(op+" transition",
		zap.String("session_id", sessionID),
		zap.String("from", string(state.Screen)),
		zap.String("to", string(next.Screen)),
	)
	return view, nil
}

func (s *AuthAppImpl) save(ctx context.Context, op, sessionID string, state model.FlowState) (*model.FlowView, error) {
	if err := s.sessionRepo.Save(ctx, sessionID, &state, s.config.Auth.SessionExpTime); err != nil {
		logger.Error(op+" err sessionRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return s.view(state), nil
}

func (s *AuthAppImpl) load(ctx context.Context, op, sessionID string) (*model.FlowState, error) {
	state, err := s.sessionRepo.Get(ctx, sessionID)
	if stderrors.Is(err, sessionrepo.ErrNotFound) {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err != nil {
		logger.Error(op+" err sessionRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return state, nil
}

func (s *AuthAppImpl) view(state model.FlowState) *model.FlowView {
	now := s.now()
	v := &model.FlowView{
		Screen:    state.Screen,
		FromLogin: state.FromLogin,
		Notice:    state.Notice,
	}
	switch state.Screen {
	case constant.ScreenRegister:
		v.Email = state.Registration.Email
		v.PhoneNumber = state.Registration.PhoneNumber
	case constant.ScreenOTPVerification:
		v.PhoneNumber = state.Registration.PhoneNumber
		v.OTPPhase = flow.Phase(state.OTP, now)
		v.ResendIn = flow.ResendIn(state.OTP, now)
		v.CanResend = flow.CanResend(state.OTP, now)
	case constant.ScreenWelcome:
		profile := state.User.Profile
		v.Email = state.User.Email
		v.PhoneNumber = state.User.PhoneNumber
		v.Profile = &profile
	}
	return v
}

func (s *AuthAppImpl) bcryptCost() int {
	if s.config.Auth.BcryptCost < bcrypt.MinCost {
		return bcrypt.DefaultCost
	}
	return s.config.Auth.BcryptCost
}

// generateJWT signs a token whose id and subject are the session id
func (s *AuthAppImpl) generateJWT(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        sessionID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}
