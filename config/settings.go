package config

// AppSettings adalah konfigurasi read-only milik aplikasi (simbol mata uang,
// nama usaha) yang dimuat sekali saat start dan di-inject ke controller.
// Tidak ada state global yang berubah setelah Load.
type AppSettings struct {
	BusinessName   string
	CurrencySymbol string
}

// LoadSettings membaca pengaturan dari environment dengan default yang wajar.
func LoadSettings() *AppSettings {
	return &AppSettings{
		BusinessName:   getenv("BUSINESS_NAME", "Laundry POS"),
		CurrencySymbol: getenv("CURRENCY_SYMBOL", "Rp"),
	}
}
