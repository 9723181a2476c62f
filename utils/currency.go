package utils

import (
	"fmt"
	"math"
	"strings"
)

// FormatCurrency memformat nominal dengan simbol dari pengaturan aplikasi,
// pemisah ribuan titik dan desimal koma (format Indonesia).
// Contoh: FormatCurrency("Rp", 15000.5) -> "Rp 15.000,50"
func FormatCurrency(symbol string, amount float64) string {
	formatted := fmt.Sprintf("%.2f", math.Abs(amount))
	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	sign := ""
	if amount < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s %s%s,%s", symbol, sign, strings.Join(groups, "."), decimalPart)
}

// RoundMoney membulatkan ke 2 desimal; semua hasil hitung harga lewat sini
// agar subtotal yang disimpan dan yang di-quote identik.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
