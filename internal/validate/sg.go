// Package validate holds the Singapore-specific field rules used across
// the employee profile forms: NRIC/FIN checksums, local phone and postal
// formats, bank account and SWIFT codes, and the masking helpers applied
// at the render boundary.
package validate

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	nricPattern    = regexp.MustCompile(`^[STFGM]\d{7}[A-Z]$`)
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	swiftPattern   = regexp.MustCompile(`^[A-Z]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?$`)
	accountPattern = regexp.MustCompile(`^\d{10,14}$`)
	postalPattern  = regexp.MustCompile(`^\d{6}$`)
)

// nricWeights are the checksum weights for the seven digit positions.
var nricWeights = [7]int{2, 7, 6, 5, 4, 3, 2}

var (
	checksumST = [11]byte{'J', 'Z', 'I', 'H', 'G', 'F', 'E', 'D', 'C', 'B', 'A'}
	checksumFG = [11]byte{'X', 'W', 'U', 'T', 'R', 'Q', 'P', 'N', 'M', 'L', 'K'}
	checksumM  = [11]byte{'X', 'W', 'U', 'T', 'R', 'Q', 'P', 'N', 'J', 'L', 'K'}
)

// NRIC validates a Singapore NRIC/FIN including its checksum letter.
func NRIC(nric string) error {
	if nric == "" {
		return errors.New("NRIC/FIN is required")
	}

	trimmed := strings.ToUpper(strings.TrimSpace(nric))
	if !nricPattern.MatchString(trimmed) {
		return errors.New("must be S/T/F/G/M followed by 7 digits and a letter")
	}

	sum := 0
	for i := 0; i < 7; i++ {
		sum += int(trimmed[i+1]-'0') * nricWeights[i]
	}

	switch trimmed[0] {
	case 'T', 'G':
		sum += 4
	case 'M':
		sum += 3
	}

	var table [11]byte
	switch trimmed[0] {
	case 'S', 'T':
		table = checksumST
	case 'F', 'G':
		table = checksumFG
	case 'M':
		table = checksumM
	}

	if trimmed[8] != table[sum%11] {
		return errors.New("invalid NRIC/FIN checksum")
	}
	return nil
}

// MaskNRIC partially redacts an NRIC for display.
// Full: S1234567A, masked: S****567A. The fully masked form keeps
// one fewer trailing character.
func MaskNRIC(nric string, fullyMasked bool) string {
	if len(nric) < 9 {
		return nric
	}
	if fullyMasked {
		return nric[:1] + "****" + nric[len(nric)-3:]
	}
	return nric[:1] + "****" + nric[len(nric)-4:]
}

// MaskBankAccount redacts all but the last four digits.
func MaskBankAccount(account string) string {
	if len(account) < 4 {
		return account
	}
	return "****" + account[len(account)-4:]
}

// PhoneKind selects the number class for Phone.
type PhoneKind int

const (
	Mobile PhoneKind = iota
	Landline
)

func localDigits(phone string) string {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	switch {
	case strings.HasPrefix(cleaned, "+65"):
		return cleaned[3:]
	case strings.HasPrefix(cleaned, "65") && len(cleaned) == 10:
		return cleaned[2:]
	default:
		return cleaned
	}
}

// Phone validates a Singapore phone number. Empty values pass, the
// fields are optional.
func Phone(phone string, kind PhoneKind) error {
	if phone == "" {
		return nil
	}

	digits := localDigits(phone)
	if len(digits) != 8 {
		return errors.New("phone number must be 8 digits")
	}

	if kind == Mobile {
		if digits[0] != '8' && digits[0] != '9' {
			return errors.New("mobile number must start with 8 or 9")
		}
		return nil
	}
	if digits[0] != '6' {
		return errors.New("landline must start with 6")
	}
	return nil
}

// FormatPhone normalizes to "+65 XXXX XXXX" when the number has the
// expected eight digits, otherwise returns the input untouched.
func FormatPhone(phone string) string {
	if phone == "" {
		return ""
	}
	digits := localDigits(phone)
	if len(digits) != 8 {
		return phone
	}
	return fmt.Sprintf("+65 %s %s", digits[:4], digits[4:])
}

// PostalCode validates a six digit Singapore postal code. Empty passes.
func PostalCode(code string) error {
	if code == "" {
		return nil
	}
	cleaned := strings.ReplaceAll(code, " ", "")
	if !postalPattern.MatchString(cleaned) {
		return errors.New("postal code must be 6 digits")
	}
	num, _ := strconv.Atoi(cleaned)
	if num < 10000 || num > 829999 {
		return errors.New("invalid Singapore postal code range")
	}
	return nil
}

// Email validates basic email shape. Empty passes unless required.
func Email(email string, required bool) error {
	if email == "" {
		if required {
			return errors.New("email is required")
		}
		return nil
	}
	if !emailPattern.MatchString(email) {
		return errors.New("invalid email format")
	}
	return nil
}

// BankAccount validates a local account number (10-14 digits).
func BankAccount(account string) error {
	if account == "" {
		return errors.New("account number is required")
	}
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(account)
	if !accountPattern.MatchString(cleaned) {
		return errors.New("account number must be 10-14 digits")
	}
	return nil
}

// SwiftCode validates an 8 or 11 character SWIFT/BIC code.
func SwiftCode(code string) error {
	if code == "" {
		return errors.New("SWIFT/BIC code is required")
	}
	if !swiftPattern.MatchString(strings.ToUpper(code)) {
		return errors.New("invalid SWIFT/BIC format (8 or 11 characters)")
	}
	return nil
}

// Age returns the whole years elapsed since the given date of birth.
func Age(dateOfBirth time.Time, now time.Time) int {
	age := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		age--
	}
	return age
}

// DateOfBirth rejects future dates and ages outside 16-100.
func DateOfBirth(raw string) error {
	if raw == "" {
		return errors.New("date of birth is required")
	}
	dob, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return errors.New("date of birth must be YYYY-MM-DD")
	}

	now := time.Now()
	if dob.After(now) {
		return errors.New("date of birth cannot be in the future")
	}
	switch age := Age(dob, now); {
	case age < 16:
		return errors.New("employee must be at least 16 years old")
	case age > 100:
		return errors.New("please enter a valid date of birth")
	}
	return nil
}
