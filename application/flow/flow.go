// Package flow holds the registration/login screen machine. Reduce is pure:
// time, issued codes and password hashes arrive inside events so the same
// state and event always give the same result.
package flow

import (
	"time"

	"github.com/muhammadheryan/compose-demos/constant"
	"github.com/muhammadheryan/compose-demos/model"
	"github.com/muhammadheryan/compose-demos/utils/errors"
	"golang.org/x/crypto/bcrypt"
)

// Event is implemented by every input the flow accepts.
type Event interface {
	event()
}

type OpenRegister struct{}

type BackToLogin struct{}

type BackToRegister struct{}

type SubmitLogin struct {
	Email    string
	Password string
}

// SubmitRegistration carries the raw form plus the bcrypt hash of its
// password, computed by the caller once the form is known to be valid.
type SubmitRegistration struct {
	Data         model.RegistrationData
	PasswordHash string
}

// CodeIssued records a freshly issued code. It is refused while a previous
// code's countdown is still running.
type CodeIssued struct {
	Code        string
	At          time.Time
	ResendAfter time.Duration
}

type SubmitCode struct {
	Code string
}

type SubmitProfile struct {
	Profile model.PersonalProfile
}

type Continue struct{}

func (OpenRegister) event()       {}
func (BackToLogin) event()        {}
func (BackToRegister) event()     {}
func (SubmitLogin) event()        {}
func (SubmitRegistration) event() {}
func (CodeIssued) event()         {}
func (SubmitCode) event()         {}
func (SubmitProfile) event()      {}
func (Continue) event()           {}

// Initial is the state of a fresh flow.
func Initial() model.FlowState {
	return model.FlowState{Screen: constant.ScreenLogin}
}

// Reduce applies ev to s. On error the returned state is s unchanged, except
// for a mismatched code which still counts the attempt.
func Reduce(s model.FlowState, ev Event) (model.FlowState, error) {
	next := s
	next.Notice = ""

	switch e := ev.(type) {
	case OpenRegister:
		if s.Screen != constant.ScreenLogin {
			return s, errors.SetCustomError(constant.ErrInvalidTransition)
		}
		next.Screen = constant.ScreenRegister
		return next, nil

	case BackToLogin:
		if s.Screen != constant.ScreenRegister {
			return s, errors.SetCustomError(constant.ErrInvalidTransition)
		}
		next.Screen = constant.ScreenLogin
		next.Registration = model.RegistrationData{}
		next.Pending = model.UserRecord{}
		return next, nil

	case BackToRegister:
		if s.Screen != constant.ScreenOTPVerification {
			return s, errors.SetCustomError(constant.ErrInvalidTransition)
		}
		// the issued code and its countdown stay; a new registration picks them up
		next.Screen = constant.ScreenRegister
		return next, nil

	case SubmitLogin:
		return reduceLogin(s, next, e)

	case SubmitRegistration:
		return reduceRegistration(s, next, e)

	case CodeIssued:
		return reduceCodeIssued(s, next, e)

	case SubmitCode:
		return reduceCode(s, next, e)

	case SubmitProfile:
		return reduceProfile(s, next, e)

	case Continue:
		if s.Screen != constant.ScreenWelcome {
			return s, errors.SetCustomError(constant.ErrInvalidTransition)
		}
		next.Screen = constant.ScreenLogin
		if s.FromLogin {
			next.Notice = constant.NoticeWelcomeBack
		} else {
			next.Notice = constant.NoticeLoginWithNewAcc
		}
		next.FromLogin = false
		next.Registration = model.RegistrationData{}
		next.Pending = model.UserRecord{}
		return next, nil
	}

	return s, errors.SetCustomError(constant.ErrInvalidTransition)
}

func reduceLogin(s, next model.FlowState, e SubmitLogin) (model.FlowState, error) {
	if s.Screen != constant.ScreenLogin {
		return s, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if fields := ValidateLogin(e.Email, e.Password); fields != nil {
		return s, errors.SetFieldErrors(fields)
	}
	// unknown email and wrong password share one message
	if !s.User.IsRegistered || s.User.Email != e.Email {
		return s, errors.SetCustomError(constant.ErrInvalidCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(s.User.PasswordHash), []byte(e.Password)) != nil {
		return s, errors.SetCustomError(constant.ErrInvalidCredentials)
	}
	next.Screen = constant.ScreenWelcome
	next.FromLogin = true
	next.Notice = constant.NoticeLoginSuccess
	return next, nil
}

func reduceRegistration(s, next model.FlowState, e SubmitRegistration) (model.FlowState, error) {
	if s.Screen != constant.ScreenRegister {
		return s, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if fields := ValidateRegistration(e.Data); fields != nil {
		return s, errors.SetFieldErrors(fields)
	}
	data := e.Data
	data.PhoneNumber = NormalizePhone(data.PhoneNumber)

	next.Screen = constant.ScreenOTPVerification
	next.Registration = data
	next.OTP = carryOTP(s.OTP, data.PhoneNumber)
	if next.OTP.Code != "" {
		next.Notice = constant.NoticeOTPSent + data.PhoneNumber
	}
	next.Pending = model.UserRecord{
		Email:        data.Email,
		PhoneNumber:  data.PhoneNumber,
		PasswordHash: e.PasswordHash,
	}
	return next, nil
}

// carryOTP keeps an unverified code's countdown across a repeated
// registration. The code itself only survives when it went to phone.
func carryOTP(prev model.OTPState, phone string) model.OTPState {
	if prev.IssuedAt.IsZero() || prev.Verified {
		return model.OTPState{}
	}
	carried := model.OTPState{
		IssuedAt:  prev.IssuedAt,
		ExpiresAt: prev.ExpiresAt,
	}
	if prev.SentTo == phone {
		carried.Code = prev.Code
		carried.SentTo = prev.SentTo
	}
	return carried
}

func reduceCodeIssued(s, next model.FlowState, e CodeIssued) (model.FlowState, error) {
	if s.Screen != constant.ScreenOTPVerification {
		return s, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if !CanResend(s.OTP, e.At) {
		return s, errors.SetCustomError(constant.ErrResendNotReady)
	}
	next.OTP = model.OTPState{
		Code:      e.Code,
		SentTo:    s.Registration.PhoneNumber,
		IssuedAt:  e.At,
		ExpiresAt: e.At.Add(e.ResendAfter),
	}
	next.Notice = constant.NoticeOTPSent + s.Registration.PhoneNumber
	return next, nil
}

func reduceCode(s, next model.FlowState, e SubmitCode) (model.FlowState, error) {
	if s.Screen != constant.ScreenOTPVerification {
		return s, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if !ValidCode(e.Code) {
		return s, errors.SetCustomError(constant.ErrCodeLength)
	}
	if s.OTP.IssuedAt.IsZero() {
		return s, errors.SetCustomError(constant.ErrCodeNotIssued)
	}
	if e.Code != s.OTP.Code {
		next.OTP.Attempts++
		return next, errors.SetCustomError(constant.ErrInvalidCode)
	}
	next.Screen = constant.ScreenPersonalData
	next.OTP.Attempts++
	next.OTP.Verified = true
	next.Pending.IsVerified = true
	next.Registration = model.RegistrationData{}
	next.Notice = constant.NoticeOTPVerified
	return next, nil
}

func reduceProfile(s, next model.FlowState, e SubmitProfile) (model.FlowState, error) {
	if s.Screen != constant.ScreenPersonalData {
		return s, errors.SetCustomError(constant.ErrInvalidTransition)
	}
	if fields := ValidateProfile(e.Profile); fields != nil {
		return s, errors.SetFieldErrors(fields)
	}
	user := s.Pending
	user.Profile = e.Profile
	user.IsRegistered = true

	next.Screen = constant.ScreenWelcome
	next.User = user
	next.Pending = model.UserRecord{}
	next.FromLogin = false
	next.Notice = constant.NoticeRegistered
	return next, nil
}

// Phase derives the lifecycle phase of o at now.
func Phase(o model.OTPState, now time.Time) constant.OTPPhase {
	switch {
	case o.Verified:
		return constant.OTPVerified
	case o.IssuedAt.IsZero():
		return constant.OTPIdle
	case !now.Before(o.ExpiresAt):
		return constant.OTPExpired
	default:
		return constant.OTPIssued
	}
}

// CanResend reports whether a new code may replace o at now: either none was
// issued yet or the countdown has run out.
func CanResend(o model.OTPState, now time.Time) bool {
	switch Phase(o, now) {
	case constant.OTPIdle, constant.OTPExpired:
		return true
	}
	return false
}

// ResendIn is the whole seconds left on the countdown, rounded up.
func ResendIn(o model.OTPState, now time.Time) int {
	if Phase(o, now) != constant.OTPIssued {
		return 0
	}
	left := o.ExpiresAt.Sub(now)
	return int((left + time.Second - 1) / time.Second)
}
