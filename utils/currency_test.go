package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "Rp 15.000,50", FormatCurrency("Rp", 15000.5))
	assert.Equal(t, "Rp 4,50", FormatCurrency("Rp", 4.5))
	assert.Equal(t, "Rp 1.234.567,00", FormatCurrency("Rp", 1234567))
	assert.Equal(t, "Rp -2.500,00", FormatCurrency("Rp", -2500))
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 13.13, RoundMoney(13.1313))
	assert.Equal(t, 4.50, RoundMoney(1.5*3))
	assert.Equal(t, 0.00, RoundMoney(0))
}
