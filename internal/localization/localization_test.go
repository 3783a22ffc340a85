package localization

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Language
	}{
		{"plain arabic", "ar", Arabic},
		{"arabic with region", "ar-SA", Arabic},
		{"arabic with quality list", "ar,en;q=0.8", Arabic},
		{"arabic with params", "ar;q=0.9", Arabic},
		{"uppercase arabic", "AR", Arabic},
		{"plain english", "en", English},
		{"english with region", "en-US,en;q=0.5", English},
		{"empty header", "", English},
		{"unrelated language", "fr-FR", English},
		{"arabic not as prefix", "en,ar;q=0.8", English},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromHeader(tt.header))
		})
	}
}

func TestMessageResolve(t *testing.T) {
	msg := Message{Ar: "مرحبا", En: "Hello"}

	assert.Equal(t, "مرحبا", msg.Resolve(Arabic))
	assert.Equal(t, "Hello", msg.Resolve(English))
	// Unknown languages fall back to English.
	assert.Equal(t, "Hello", msg.Resolve(Language("fr")))
}
