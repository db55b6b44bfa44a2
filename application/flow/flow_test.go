package flow_test

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/muhammadheryan/compose-demos/application/flow"
	"github.com/muhammadheryan/compose-demos/constant"
	"github.com/muhammadheryan/compose-demos/model"
	cerr "github.com/muhammadheryan/compose-demos/utils/errors"
	"golang.org/x/crypto/bcrypt"
)

var t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func assertErrType(t *testing.T, err error, want constant.ErrorType) cerr.CustomError {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T (%v), want CustomError", err, err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s (%s), want %s", ce.ErrorCode(), ce.Error(), constant.ErrorTypeCode[want])
	}
	return ce
}

func mustReduce(t *testing.T, s model.FlowState, ev flow.Event) model.FlowState {
	t.Helper()
	next, err := flow.Reduce(s, ev)
	if err != nil {
		t.Fatalf("Reduce(%T) error = %v", ev, err)
	}
	return next
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func validRegistration() model.RegistrationData {
	return model.RegistrationData{
		Email:           "a@b.com",
		Password:        "abcdef",
		ConfirmPassword: "abcdef",
		PhoneNumber:     "08123456789",
		AgreedToTerms:   true,
	}
}

func validProfile() model.PersonalProfile {
	return model.PersonalProfile{
		FullName:  "Budi Santoso",
		BirthDate: "01/01/2000",
		Province:  "Jawa Timur",
		City:      "Malang",
	}
}

// onOTPScreen returns a state waiting for code 123456, issued at t0.
func onOTPScreen(t *testing.T) model.FlowState {
	t.Helper()
	s := mustReduce(t, flow.Initial(), flow.OpenRegister{})
	s = mustReduce(t, s, flow.SubmitRegistration{Data: validRegistration(), PasswordHash: hash(t, "abcdef")})
	return mustReduce(t, s, flow.CodeIssued{Code: "123456", At: t0, ResendAfter: 60 * time.Second})
}

func TestReduce_Navigation(t *testing.T) {
	tests := []struct {
		name       string
		screen     constant.Screen
		event      flow.Event
		wantScreen constant.Screen
		wantErr    bool
	}{
		{
			name:       "success: login opens register",
			screen:     constant.ScreenLogin,
			event:      flow.OpenRegister{},
			wantScreen: constant.ScreenRegister,
		},
		{
			name:       "success: register back to login",
			screen:     constant.ScreenRegister,
			event:      flow.BackToLogin{},
			wantScreen: constant.ScreenLogin,
		},
		{
			name:       "success: code entry back to register",
			screen:     constant.ScreenOTPVerification,
			event:      flow.BackToRegister{},
			wantScreen: constant.ScreenRegister,
		},
		{
			name:    "error: open register from welcome",
			screen:  constant.ScreenWelcome,
			event:   flow.OpenRegister{},
			wantErr: true,
		},
		{
			name:    "error: back to login from code entry",
			screen:  constant.ScreenOTPVerification,
			event:   flow.BackToLogin{},
			wantErr: true,
		},
		{
			name:    "error: continue from login",
			screen:  constant.ScreenLogin,
			event:   flow.Continue{},
			wantErr: true,
		},
		{
			name:    "error: submit code on personal data",
			screen:  constant.ScreenPersonalData,
			event:   flow.SubmitCode{Code: "123456"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := model.FlowState{Screen: tt.screen}
			got, err := flow.Reduce(s, tt.event)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reduce() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, constant.ErrInvalidTransition)
				if !reflect.DeepEqual(got, s) {
					t.Fatalf("state changed on error: %+v", got)
				}
				return
			}
			if got.Screen != tt.wantScreen {
				t.Fatalf("screen = %s, want %s", got.Screen, tt.wantScreen)
			}
		})
	}
}

func TestReduce_Login(t *testing.T) {
	registered := model.UserRecord{
		Email:        "a@b.com",
		PhoneNumber:  "08123456789",
		PasswordHash: hash(t, "abcdef"),
		IsRegistered: true,
		IsVerified:   true,
	}
	tests := []struct {
		name       string
		user       model.UserRecord
		event      flow.SubmitLogin
		wantErr    bool
		errCode    constant.ErrorType
		wantFields map[string]string
	}{
		{
			name:  "success: registered account",
			user:  registered,
			event: flow.SubmitLogin{Email: "a@b.com", Password: "abcdef"},
		},
		{
			name:    "error: empty form",
			user:    registered,
			event:   flow.SubmitLogin{},
			wantErr: true,
			errCode: constant.ErrValidation,
			wantFields: map[string]string{
				"email":    "Email tidak boleh kosong",
				"password": "Password tidak boleh kosong",
			},
		},
		{
			name:    "error: malformed email and short password",
			user:    registered,
			event:   flow.SubmitLogin{Email: "not-an-email", Password: "abc"},
			wantErr: true,
			errCode: constant.ErrValidation,
			wantFields: map[string]string{
				"email":    "Format email tidak valid",
				"password": "Password minimal 6 karakter",
			},
		},
		{
			name:    "error: no account registered yet",
			event:   flow.SubmitLogin{Email: "a@b.com", Password: "abcdef"},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name:    "error: unknown email",
			user:    registered,
			event:   flow.SubmitLogin{Email: "c@d.com", Password: "abcdef"},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
		{
			name:    "error: wrong password",
			user:    registered,
			event:   flow.SubmitLogin{Email: "a@b.com", Password: "abcdeg"},
			wantErr: true,
			errCode: constant.ErrInvalidCredentials,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := model.FlowState{Screen: constant.ScreenLogin, User: tt.user}
			got, err := flow.Reduce(s, tt.event)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reduce() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ce := assertErrType(t, err, tt.errCode)
				if tt.wantFields != nil && !reflect.DeepEqual(ce.Fields(), tt.wantFields) {
					t.Fatalf("fields = %v, want %v", ce.Fields(), tt.wantFields)
				}
				if got.Screen != constant.ScreenLogin {
					t.Fatalf("screen = %s, want login", got.Screen)
				}
				return
			}
			if got.Screen != constant.ScreenWelcome || !got.FromLogin {
				t.Fatalf("got screen %s fromLogin %v, want welcome from login", got.Screen, got.FromLogin)
			}
			if got.Notice != constant.NoticeLoginSuccess {
				t.Fatalf("notice = %q", got.Notice)
			}
		})
	}
}

func TestReduce_Registration(t *testing.T) {
	tests := []struct {
		name       string
		data       func() model.RegistrationData
		wantErr    bool
		wantFields map[string]string
	}{
		{
			name: "success: valid form",
			data: validRegistration,
		},
		{
			name: "success: phone punctuation is dropped",
			data: func() model.RegistrationData {
				d := validRegistration()
				d.PhoneNumber = "0812-345-6789"
				return d
			},
		},
		{
			name:    "error: empty form",
			data:    func() model.RegistrationData { return model.RegistrationData{} },
			wantErr: true,
			wantFields: map[string]string{
				"email":            "Email tidak boleh kosong",
				"password":         "Password tidak boleh kosong",
				"confirm_password": "Konfirmasi password tidak boleh kosong",
				"phone_number":     "Nomor handphone tidak boleh kosong",
				"agreed_to_terms":  "Anda harus menyetujui Syarat & Ketentuan",
			},
		},
		{
			name: "error: mismatched confirmation and short phone",
			data: func() model.RegistrationData {
				d := validRegistration()
				d.ConfirmPassword = "abcdeg"
				d.PhoneNumber = "0812-34"
				return d
			},
			wantErr: true,
			wantFields: map[string]string{
				"confirm_password": "Password tidak sama",
				"phone_number":     "Nomor handphone minimal 10 digit",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s := model.FlowState{Screen: constant.ScreenRegister}
			got, err := flow.Reduce(s, flow.SubmitRegistration{Data: tt.data(), PasswordHash: "hash"})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reduce() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ce := assertErrType(t, err, constant.ErrValidation)
				if !reflect.DeepEqual(ce.Fields(), tt.wantFields) {
					t.Fatalf("fields = %v, want %v", ce.Fields(), tt.wantFields)
				}
				return
			}
			if got.Screen != constant.ScreenOTPVerification {
				t.Fatalf("screen = %s, want otp_verification", got.Screen)
			}
			want := model.UserRecord{Email: "a@b.com", PhoneNumber: "08123456789", PasswordHash: "hash"}
			if !reflect.DeepEqual(got.Pending, want) {
				t.Fatalf("pending = %+v, want %+v", got.Pending, want)
			}
			if got.Registration.PhoneNumber != "08123456789" {
				t.Fatalf("phone = %q", got.Registration.PhoneNumber)
			}
			if flow.Phase(got.OTP, t0) != constant.OTPIdle {
				t.Fatalf("otp should be idle before a code is issued")
			}
		})
	}
}

func TestReduce_CodeIssued(t *testing.T) {
	s := onOTPScreen(t)

	if s.OTP.Code != "123456" || len(s.OTP.Code) != constant.OTPLength {
		t.Fatalf("code = %q", s.OTP.Code)
	}
	if s.Notice != constant.NoticeOTPSent+"08123456789" {
		t.Fatalf("notice = %q", s.Notice)
	}
	if got := flow.ResendIn(s.OTP, t0); got != 60 {
		t.Fatalf("ResendIn = %d, want 60", got)
	}

	// still counting down
	_, err := flow.Reduce(s, flow.CodeIssued{Code: "654321", At: t0.Add(30 * time.Second), ResendAfter: time.Minute})
	assertErrType(t, err, constant.ErrResendNotReady)

	// resend after the countdown resets it
	later := t0.Add(61 * time.Second)
	s = mustReduce(t, s, flow.CodeIssued{Code: "654321", At: later, ResendAfter: time.Minute})
	if s.OTP.Code != "654321" {
		t.Fatalf("code = %q, want 654321", s.OTP.Code)
	}
	if got := flow.ResendIn(s.OTP, later); got != 60 {
		t.Fatalf("ResendIn after resend = %d, want 60", got)
	}
}

func TestReduce_SubmitCode(t *testing.T) {
	tests := []struct {
		name         string
		state        func(t *testing.T) model.FlowState
		code         string
		wantErr      bool
		errCode      constant.ErrorType
		wantScreen   constant.Screen
		wantAttempts int
	}{
		{
			name:         "success: matching code",
			state:        onOTPScreen,
			code:         "123456",
			wantScreen:   constant.ScreenPersonalData,
			wantAttempts: 1,
		},
		{
			name:         "error: mismatched code stays on screen",
			state:        onOTPScreen,
			code:         "000000",
			wantErr:      true,
			errCode:      constant.ErrInvalidCode,
			wantScreen:   constant.ScreenOTPVerification,
			wantAttempts: 1,
		},
		{
			name:         "error: five digits",
			state:        onOTPScreen,
			code:         "12345",
			wantErr:      true,
			errCode:      constant.ErrCodeLength,
			wantScreen:   constant.ScreenOTPVerification,
			wantAttempts: 0,
		},
		{
			name:         "error: seven digits",
			state:        onOTPScreen,
			code:         "1234567",
			wantErr:      true,
			errCode:      constant.ErrCodeLength,
			wantScreen:   constant.ScreenOTPVerification,
			wantAttempts: 0,
		},
		{
			name:         "error: six characters that are not digits",
			state:        onOTPScreen,
			code:         "12a456",
			wantErr:      true,
			errCode:      constant.ErrCodeLength,
			wantScreen:   constant.ScreenOTPVerification,
			wantAttempts: 0,
		},
		{
			name: "error: no code issued",
			state: func(t *testing.T) model.FlowState {
				return model.FlowState{Screen: constant.ScreenOTPVerification}
			},
			code:       "123456",
			wantErr:    true,
			errCode:    constant.ErrCodeNotIssued,
			wantScreen: constant.ScreenOTPVerification,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := flow.Reduce(tt.state(t), flow.SubmitCode{Code: tt.code})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reduce() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
			}
			if got.Screen != tt.wantScreen {
				t.Fatalf("screen = %s, want %s", got.Screen, tt.wantScreen)
			}
			if got.OTP.Attempts != tt.wantAttempts {
				t.Fatalf("attempts = %d, want %d", got.OTP.Attempts, tt.wantAttempts)
			}
			if !tt.wantErr {
				if !got.Pending.IsVerified || flow.Phase(got.OTP, t0) != constant.OTPVerified {
					t.Fatalf("code not marked verified: %+v", got.OTP)
				}
				if got.Registration != (model.RegistrationData{}) {
					t.Fatalf("registration form not cleared: %+v", got.Registration)
				}
			}
		})
	}
}

func TestReduce_Profile(t *testing.T) {
	verified := func(t *testing.T) model.FlowState {
		return mustReduce(t, onOTPScreen(t), flow.SubmitCode{Code: "123456"})
	}
	tests := []struct {
		name       string
		profile    func() model.PersonalProfile
		wantErr    bool
		wantFields map[string]string
	}{
		{
			name:    "success: valid profile",
			profile: validProfile,
		},
		{
			name:    "error: empty profile",
			profile: func() model.PersonalProfile { return model.PersonalProfile{} },
			wantErr: true,
			wantFields: map[string]string{
				"full_name":  "Nama lengkap tidak boleh kosong",
				"birth_date": "Tanggal lahir tidak boleh kosong",
				"province":   "Provinsi harus dipilih",
				"city":       "Kota harus dipilih",
			},
		},
		{
			name: "error: one letter name and city from another province",
			profile: func() model.PersonalProfile {
				p := validProfile()
				p.FullName = "B"
				p.City = "Bandung"
				return p
			},
			wantErr: true,
			wantFields: map[string]string{
				"full_name": "Nama minimal 2 karakter",
				"city":      "Kota tidak sesuai dengan provinsi",
			},
		},
		{
			name: "error: unknown province",
			profile: func() model.PersonalProfile {
				p := validProfile()
				p.Province = "Atlantis"
				return p
			},
			wantErr: true,
			wantFields: map[string]string{
				"province": "Provinsi tidak dikenal",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := flow.Reduce(verified(t), flow.SubmitProfile{Profile: tt.profile()})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Reduce() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ce := assertErrType(t, err, constant.ErrValidation)
				if !reflect.DeepEqual(ce.Fields(), tt.wantFields) {
					t.Fatalf("fields = %v, want %v", ce.Fields(), tt.wantFields)
				}
				return
			}
			if got.Screen != constant.ScreenWelcome || got.FromLogin {
				t.Fatalf("got screen %s fromLogin %v, want welcome after registration", got.Screen, got.FromLogin)
			}
			if !got.User.IsRegistered || !got.User.IsVerified || got.User.Profile != validProfile() {
				t.Fatalf("user = %+v", got.User)
			}
			if got.Pending != (model.UserRecord{}) {
				t.Fatalf("pending not cleared: %+v", got.Pending)
			}
		})
	}
}

func TestReduce_FullJourney(t *testing.T) {
	s := onOTPScreen(t)
	s = mustReduce(t, s, flow.SubmitCode{Code: "123456"})
	s = mustReduce(t, s, flow.SubmitProfile{Profile: validProfile()})

	s = mustReduce(t, s, flow.Continue{})
	if s.Screen != constant.ScreenLogin || s.Notice != constant.NoticeLoginWithNewAcc {
		t.Fatalf("after registration got %s %q", s.Screen, s.Notice)
	}

	s = mustReduce(t, s, flow.SubmitLogin{Email: "a@b.com", Password: "abcdef"})
	if s.Screen != constant.ScreenWelcome || !s.FromLogin {
		t.Fatalf("login got %s fromLogin %v", s.Screen, s.FromLogin)
	}

	s = mustReduce(t, s, flow.Continue{})
	if s.Screen != constant.ScreenLogin || s.Notice != constant.NoticeWelcomeBack {
		t.Fatalf("after login got %s %q", s.Screen, s.Notice)
	}
}

func TestReduce_AbandonedRegistrationKeepsAccount(t *testing.T) {
	s := onOTPScreen(t)
	s = mustReduce(t, s, flow.SubmitCode{Code: "123456"})
	s = mustReduce(t, s, flow.SubmitProfile{Profile: validProfile()})
	s = mustReduce(t, s, flow.Continue{})
	account := s.User

	// start a second registration and walk away from it
	s = mustReduce(t, s, flow.OpenRegister{})
	d := validRegistration()
	d.Email = "x@y.com"
	s = mustReduce(t, s, flow.SubmitRegistration{Data: d, PasswordHash: "other"})
	s = mustReduce(t, s, flow.BackToRegister{})
	s = mustReduce(t, s, flow.BackToLogin{})

	if !reflect.DeepEqual(s.User, account) {
		t.Fatalf("account changed: %+v", s.User)
	}
	if _, err := flow.Reduce(s, flow.SubmitLogin{Email: "a@b.com", Password: "abcdef"}); err != nil {
		t.Fatalf("login with original account: %v", err)
	}
}

func TestReduce_RegisterAgainKeepsCountdown(t *testing.T) {
	s := onOTPScreen(t)
	s = mustReduce(t, s, flow.BackToRegister{})
	if s.OTP.Code != "123456" || flow.ResendIn(s.OTP, t0) != 60 {
		t.Fatalf("otp after back = %+v", s.OTP)
	}

	t.Run("same phone keeps the code", func(t *testing.T) {
		got := mustReduce(t, s, flow.SubmitRegistration{Data: validRegistration(), PasswordHash: "h"})
		if got.OTP.Code != "123456" || !got.OTP.ExpiresAt.Equal(t0.Add(time.Minute)) {
			t.Fatalf("otp = %+v", got.OTP)
		}
		if got.Notice != constant.NoticeOTPSent+"08123456789" {
			t.Fatalf("notice = %q", got.Notice)
		}
		_, err := flow.Reduce(got, flow.CodeIssued{Code: "999999", At: t0.Add(10 * time.Second), ResendAfter: time.Minute})
		assertErrType(t, err, constant.ErrResendNotReady)
	})

	t.Run("new phone drops the code but not the countdown", func(t *testing.T) {
		d := validRegistration()
		d.PhoneNumber = "08999999999"
		got := mustReduce(t, s, flow.SubmitRegistration{Data: d, PasswordHash: "h"})
		if got.OTP.Code != "" || flow.ResendIn(got.OTP, t0.Add(10*time.Second)) != 50 {
			t.Fatalf("otp = %+v", got.OTP)
		}
		_, err := flow.Reduce(got, flow.SubmitCode{Code: "123456"})
		assertErrType(t, err, constant.ErrInvalidCode)

		got = mustReduce(t, got, flow.CodeIssued{Code: "444444", At: t0.Add(61 * time.Second), ResendAfter: time.Minute})
		if got.OTP.SentTo != "08999999999" {
			t.Fatalf("sent to = %q", got.OTP.SentTo)
		}
	})

	t.Run("verified code is not carried", func(t *testing.T) {
		done := mustReduce(t, onOTPScreen(t), flow.SubmitCode{Code: "123456"})
		done = mustReduce(t, done, flow.SubmitProfile{Profile: validProfile()})
		done = mustReduce(t, done, flow.Continue{})
		done = mustReduce(t, done, flow.OpenRegister{})
		got := mustReduce(t, done, flow.SubmitRegistration{Data: validRegistration(), PasswordHash: "h"})
		if flow.Phase(got.OTP, t0) != constant.OTPIdle {
			t.Fatalf("otp = %+v, want idle", got.OTP)
		}
	})
}

func TestPhaseAndResendIn(t *testing.T) {
	issued := model.OTPState{Code: "123456", IssuedAt: t0, ExpiresAt: t0.Add(time.Minute)}
	tests := []struct {
		name       string
		otp        model.OTPState
		now        time.Time
		wantPhase  constant.OTPPhase
		wantLeft   int
		wantResend bool
	}{
		{"idle", model.OTPState{}, t0, constant.OTPIdle, 0, true},
		{"just issued", issued, t0, constant.OTPIssued, 60, false},
		{"partial second rounds up", issued, t0.Add(59500 * time.Millisecond), constant.OTPIssued, 1, false},
		{"expired at deadline", issued, t0.Add(time.Minute), constant.OTPExpired, 0, true},
		{"verified", model.OTPState{IssuedAt: t0, ExpiresAt: t0.Add(time.Minute), Verified: true}, t0, constant.OTPVerified, 0, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := flow.Phase(tt.otp, tt.now); got != tt.wantPhase {
				t.Fatalf("Phase() = %s, want %s", got, tt.wantPhase)
			}
			if got := flow.ResendIn(tt.otp, tt.now); got != tt.wantLeft {
				t.Fatalf("ResendIn() = %d, want %d", got, tt.wantLeft)
			}
			if got := flow.CanResend(tt.otp, tt.now); got != tt.wantResend {
				t.Fatalf("CanResend() = %v, want %v", got, tt.wantResend)
			}
		})
	}
}
