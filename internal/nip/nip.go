// Package nip validates Polish tax identification numbers.
package nip

// checksum weights for the first nine digits.
var weights = [9]int{6, 5, 7, 2, 3, 4, 5, 6, 7}

// Valid reports whether s is a valid 10-digit NIP. Non-digit characters
// (spaces, dashes) are ignored. A control digit of 10 is never valid.
func Valid(s string) bool {
	var digits []int

	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits = append(digits, int(r-'0'))
		}
	}

	if len(digits) != 10 {
		return false
	}

	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}

	control := sum % 11
	if control == 10 {
		return false
	}

	return control == digits[9]
}
