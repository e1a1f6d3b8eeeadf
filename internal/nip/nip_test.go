package nip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/witmar/infirma/internal/nip"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		nip  string
		want bool
	}{
		{"Valid", "5260250995", true},
		{"ValidWithDashes", "526-025-09-95", true},
		{"ValidWithSpaces", "526 025 09 95", true},
		{"WrongControlDigit", "5260250994", false},
		{"TooShort", "526025099", false},
		{"TooLong", "52602509951", false},
		{"Empty", "", false},
		{"Letters", "ABCDEFGHIJ", false},
		// Checksum of the first nine digits is 10, which is never a valid control digit.
		{"ControlDigitTen", "8111111110", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nip.Valid(tt.nip))
		})
	}
}
