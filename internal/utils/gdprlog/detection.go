// Package gdprlog provides GDPR-compliant logging functionalities.
//
// This package implements mechanisms for detecting, categorizing, and sanitizing
// personal data and secrets in logs. Password-reset events carry an email
// address, and request logs carry client addresses; both are personal data and
// are kept out of the standard log in clear. Secrets such as passwords and API
// keys are never logged at all.
package gdprlog

import (
	"regexp"
	"strings"
)

// Regular expressions for detecting personal data and secrets
var (
	// emailPattern matches valid email address formats for detection.
	emailPattern = regexp.MustCompile(`(?i)[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// secretNamePattern detects field names that hold passwords, keys or tokens.
	secretNamePattern = regexp.MustCompile(`(?i)passw(or)?d|pwd|secret|token|api_?key|anon_?key|authorization|bearer`)
)

// SensitiveFieldNames lists field names whose values are always redacted.
var SensitiveFieldNames = []string{
	"password", "confirmpassword", "new_password", "token", "secret",
	"apikey", "api_key", "anon_key", "authorization",
}

// PersonalFieldNames lists field names that identify a person.
// Matching is on the whole field name, case-insensitive.
var PersonalFieldNames = []string{
	"email", "username", "name", "full_name", "remote_addr", "ip",
	"ip_address", "user_agent", "user_id", "session_id",
}

// IsSensitiveField checks if a field holds a secret.
//
// Parameters:
//   - fieldName: The name of the field to check
//   - value: The value of the field, which can be of any type
//
// Returns:
//   - bool: true if the field must be redacted, false otherwise
func IsSensitiveField(fieldName string, value interface{}) bool {
	lowerName := strings.ToLower(fieldName)
	for _, name := range SensitiveFieldNames {
		if lowerName == name {
			return true
		}
	}

	if secretNamePattern.MatchString(lowerName) {
		return true
	}

	// Values that look like a bearer credential are secrets whatever the field name
	if strValue, ok := value.(string); ok {
		return strings.HasPrefix(strings.ToLower(strValue), "bearer ")
	}

	return false
}

// IsPersonalField checks if a field and its value appears to contain personal data.
//
// Parameters:
//   - fieldName: The name of the field to check
//   - value: The value of the field, which can be of any type
//
// Returns:
//   - bool: true if the field appears to contain personal data, false otherwise
func IsPersonalField(fieldName string, value interface{}) bool {
	lowerName := strings.ToLower(fieldName)
	for _, name := range PersonalFieldNames {
		if lowerName == name {
			return true
		}
	}

	// Any email address makes the field personal, whatever its name
	return IsEmailField(lowerName, value)
}

// IsEmailField checks if a field name or value appears to be an email address.
//
// Parameters:
//   - fieldName: The name of the field to check
//   - value: The value of the field, which can be of any type
//
// Returns:
//   - bool: true if the field appears to be an email, false otherwise
func IsEmailField(fieldName string, value interface{}) bool {
	if strings.Contains(strings.ToLower(fieldName), "email") {
		return true
	}

	if strValue, ok := value.(string); ok {
		return emailPattern.MatchString(strValue)
	}

	return false
}
