package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// phonePattern matches an Indian mobile number: +91 followed by exactly 10 digits
var phonePattern = regexp.MustCompile(`^\+91[0-9]{10}$`)

// bareNumberPattern matches a 10-digit number without a country code
var bareNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// otpPattern matches a 6-digit one-time passcode
var otpPattern = regexp.MustCompile(`^[0-9]{6}$`)

// ValidatePhoneNumber validates a phone number and returns it in canonical
// +91XXXXXXXXXX form. Spaces and dashes are stripped before validation; a bare
// 10-digit number is accepted and prefixed with the country code.
func ValidatePhoneNumber(phoneNumber string) (string, error) {
	stripped := strings.ReplaceAll(phoneNumber, "-", "")
	stripped = strings.ReplaceAll(stripped, " ", "")

	if bareNumberPattern.MatchString(stripped) {
		stripped = "+91" + stripped
	}

	if !phonePattern.MatchString(stripped) {
		return "", fmt.Errorf("invalid phone number, use format +919876543210")
	}

	return stripped, nil
}

// ValidateOTPFormat checks that a submitted code is a 6-digit number
func ValidateOTPFormat(code string) error {
	if !otpPattern.MatchString(code) {
		return fmt.Errorf("OTP must be a 6-digit number")
	}
	return nil
}
