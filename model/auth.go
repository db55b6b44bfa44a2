package model

import (
	"time"

	"github.com/muhammadheryan/compose-demos/constant"
)

// RegistrationData is the register form as submitted. Passwords never leave
// the process.
type RegistrationData struct {
	Email           string `json:"email"`
	Password        string `json:"-"`
	ConfirmPassword string `json:"-"`
	PhoneNumber     string `json:"phone_number"`
	AgreedToTerms   bool   `json:"agreed_to_terms"`
}

type PersonalProfile struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
	Province  string `json:"province"`
	City      string `json:"city"`
}

// UserRecord is the single simulated account of a flow session.
type UserRecord struct {
	Email        string          `json:"email"`
	PhoneNumber  string          `json:"phone_number"`
	PasswordHash string          `json:"password_hash,omitempty"`
	Profile      PersonalProfile `json:"profile"`
	IsRegistered bool            `json:"is_registered"`
	IsVerified   bool            `json:"is_verified"`
}

// OTPState holds the most recently issued code. A zero IssuedAt means no
// code has been issued yet. SentTo is the number the code went to.
type OTPState struct {
	Code      string    `json:"code,omitempty"`
	SentTo    string    `json:"sent_to,omitempty"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
	Verified  bool      `json:"verified"`
}

// FlowState is the whole state of one registration/login flow. Pending is the
// account being registered; it replaces User once the profile is submitted.
type FlowState struct {
	Screen       constant.Screen  `json:"screen"`
	Registration RegistrationData `json:"registration"`
	Pending      UserRecord       `json:"pending"`
	User         UserRecord       `json:"user"`
	OTP          OTPState         `json:"otp"`
	FromLogin    bool             `json:"from_login"`
	Notice       string           `json:"notice,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	PhoneNumber     string `json:"phone_number"`
	AgreedToTerms   bool   `json:"agreed_to_terms"`
}

type VerifyOTPRequest struct {
	Code string `json:"code"`
}

type ProfileRequest struct {
	FullName  string `json:"full_name"`
	BirthDate string `json:"birth_date"`
	Province  string `json:"province"`
	City      string `json:"city"`
}

type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	Flow      *FlowView `json:"flow"`
}

// FlowView is what a client renders for the active screen.
type FlowView struct {
	Screen      constant.Screen   `json:"screen"`
	PhoneNumber string            `json:"phone_number,omitempty"`
	Email       string            `json:"email,omitempty"`
	Profile     *PersonalProfile  `json:"profile,omitempty"`
	FromLogin   bool              `json:"from_login"`
	Notice      string            `json:"notice,omitempty"`
	OTPPhase    constant.OTPPhase `json:"otp_phase,omitempty"`
	ResendIn    int               `json:"resend_in,omitempty"`
	CanResend   bool              `json:"can_resend"`
}

// OTPPeek exposes the simulated code for manual testing.
type OTPPeek struct {
	SessionID   string            `json:"session_id"`
	PhoneNumber string            `json:"phone_number"`
	Code        string            `json:"code"`
	Phase       constant.OTPPhase `json:"phase"`
	ExpiresAt   time.Time         `json:"expires_at"`
}

// OTPMessage is handed to a Sender for delivery.
type OTPMessage struct {
	SessionID   string    `json:"session_id,omitempty"`
	PhoneNumber string    `json:"phone_number"`
	Code        string    `json:"code"`
	IssuedAt    time.Time `json:"issued_at"`
}

type Region struct {
	Province string   `json:"province"`
	Cities   []string `json:"cities"`
}
