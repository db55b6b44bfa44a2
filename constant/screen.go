package constant

// Screen identifies the active step of the registration/login flow.
type Screen string

const (
	ScreenLogin           Screen = "login"
	ScreenRegister        Screen = "register"
	ScreenOTPVerification Screen = "otp_verification"
	ScreenPersonalData    Screen = "personal_data"
	ScreenWelcome         Screen = "welcome"
)

func (s Screen) Valid() bool {
	switch s {
	case ScreenLogin, ScreenRegister, ScreenOTPVerification, ScreenPersonalData, ScreenWelcome:
		return true
	}
	return false
}

// OTPPhase is derived from the stored code state and the current time.
type OTPPhase string

const (
	OTPIdle     OTPPhase = "idle"
	OTPIssued   OTPPhase = "issued"
	OTPExpired  OTPPhase = "expired"
	OTPVerified OTPPhase = "verified"
)

const OTPLength = 6

// Notices shown after a transition.
const (
	NoticeLoginSuccess    = "Login berhasil! Selamat datang kembali."
	NoticeOTPSent         = "SMS terkirim ke "
	NoticeOTPVerified     = "OTP berhasil diverifikasi!"
	NoticeRegistered      = "Registrasi berhasil!"
	NoticeWelcomeBack     = "Mulai berbelanja di Starbucks!"
	NoticeLoginWithNewAcc = "Silakan login dengan akun baru Anda"
)
