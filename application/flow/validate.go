package flow

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/muhammadheryan/compose-demos/constant"
	"github.com/muhammadheryan/compose-demos/model"
	validatorx "github.com/muhammadheryan/compose-demos/utils/validator"
)

// rule pairs a validator tag with the message shown when it fails. Rules are
// checked in order and the first failure wins.
type rule struct {
	tag     string
	message string
}

var (
	emailRules = []rule{
		{"notblank", "Email tidak boleh kosong"},
		{"email", "Format email tidak valid"},
	}
	passwordRules = []rule{
		{"notblank", "Password tidak boleh kosong"},
		{"min=6", "Password minimal 6 karakter"},
	}
	phoneRules = []rule{
		{"notblank", "Nomor handphone tidak boleh kosong"},
		{"min=10", "Nomor handphone minimal 10 digit"},
	}
	fullNameRules = []rule{
		{"notblank", "Nama lengkap tidak boleh kosong"},
		{"min=2", "Nama minimal 2 karakter"},
	}
	birthDateRules = []rule{{"notblank", "Tanggal lahir tidak boleh kosong"}}
	provinceRules  = []rule{{"notblank", "Provinsi harus dipilih"}}
	cityRules      = []rule{{"notblank", "Kota harus dipilih"}}
)

const (
	msgConfirmBlank    = "Konfirmasi password tidak boleh kosong"
	msgConfirmMismatch = "Password tidak sama"
	msgTerms           = "Anda harus menyetujui Syarat & Ketentuan"
	msgUnknownProvince = "Provinsi tidak dikenal"
	msgCityMismatch    = "Kota tidak sesuai dengan provinsi"
)

func check(value string, rules []rule) string {
	for _, r := range rules {
		if err := validatorx.ValidateVar(value, r.tag); err != nil {
			return r.message
		}
	}
	return ""
}

func CheckEmail(email string) string {
	return check(email, emailRules)
}

func CheckPassword(password string) string {
	return check(password, passwordRules)
}

func CheckConfirmPassword(confirm, password string) string {
	if check(confirm, []rule{{"notblank", msgConfirmBlank}}) != "" {
		return msgConfirmBlank
	}
	if err := validatorx.ValidateVarWithValue(confirm, password, "eqfield"); err != nil {
		return msgConfirmMismatch
	}
	return ""
}

// CheckPhone validates the digits of phone; anything else is ignored.
func CheckPhone(phone string) string {
	return check(NormalizePhone(phone), phoneRules)
}

func CheckTerms(agreed bool) string {
	if !agreed {
		return msgTerms
	}
	return ""
}

func CheckFullName(name string) string {
	return check(name, fullNameRules)
}

func CheckBirthDate(date string) string {
	return check(date, birthDateRules)
}

func CheckProvince(province string) string {
	if msg := check(province, provinceRules); msg != "" {
		return msg
	}
	if _, ok := constant.ProvinceCities[province]; !ok {
		return msgUnknownProvince
	}
	return ""
}

// CheckCity expects province to be valid already.
func CheckCity(city, province string) string {
	if msg := check(city, cityRules); msg != "" {
		return msg
	}
	if !slices.Contains(constant.ProvinceCities[province], city) {
		return msgCityMismatch
	}
	return ""
}

// ValidCode reports whether code has the shape of an issued code: exactly
// six ASCII digits.
func ValidCode(code string) bool {
	return validatorx.ValidateVar(code, fmt.Sprintf("len=%d,number", constant.OTPLength)) == nil
}

// NormalizePhone keeps only the digits of phone.
func NormalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, phone)
}

// fieldErrors collects the non-empty messages; nil when all pass.
type fieldErrors map[string]string

func (f fieldErrors) add(field, msg string) {
	if msg != "" {
		f[field] = msg
	}
}

func (f fieldErrors) orNil() map[string]string {
	if len(f) == 0 {
		return nil
	}
	return f
}

func ValidateLogin(email, password string) map[string]string {
	errs := fieldErrors{}
	errs.add("email", CheckEmail(email))
	errs.add("password", CheckPassword(password))
	return errs.orNil()
}

func ValidateRegistration(data model.RegistrationData) map[string]string {
	errs := fieldErrors{}
	errs.add("email", CheckEmail(data.Email))
	errs.add("password", CheckPassword(data.Password))
	errs.add("confirm_password", CheckConfirmPassword(data.ConfirmPassword, data.Password))
	errs.add("phone_number", CheckPhone(data.PhoneNumber))
	errs.add("agreed_to_terms", CheckTerms(data.AgreedToTerms))
	return errs.orNil()
}

func ValidateProfile(p model.PersonalProfile) map[string]string {
	errs := fieldErrors{}
	errs.add("full_name", CheckFullName(p.FullName))
	errs.add("birth_date", CheckBirthDate(p.BirthDate))
	provinceMsg := CheckProvince(p.Province)
	errs.add("province", provinceMsg)
	if provinceMsg == "" {
		errs.add("city", CheckCity(p.City, p.Province))
	} else {
		errs.add("city", check(p.City, cityRules))
	}
	return errs.orNil()
}
