package helper_util

import "strings"

// NormalizePhoneNumber turns a domestic number such as 010-1234-5678 into
// E.164 (+821012345678). Numbers already in international form are only
// stripped of separators.
func NormalizePhoneNumber(phone string) string {
	digits := strings.NewReplacer("-", "", " ", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
	switch {
	case digits == "":
		return ""
	case strings.HasPrefix(digits, "+"):
		return digits
	case strings.HasPrefix(digits, "0"):
		return "+82" + digits[1:]
	}
	return "+" + digits
}
