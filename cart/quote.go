package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/pricing"
)

// Quoter menghitung harga satu baris. Implementasi produksi adalah
// *pricing.Engine; test memakai mock yang bisa dihitung pemanggilannya.
type Quoter interface {
	Quote(ctx context.Context, req pricing.Request) (pricing.Result, error)
}

const quoteTimeout = 10 * time.Second

// Line adalah satu baris keranjang beserta state quote transiennya.
// Field quote (State, Quote, Err) tidak pernah dipersist; hanya cermin dari
// perhitungan asinkron backend.
type Line struct {
	ID              uint64  `json:"id"` // id sintetis, stabil selama session
	OfferingID      uint    `json:"service_offering_id"`
	OfferingName    string  `json:"offering_name"`
	ProductTypeID   uint    `json:"product_type_id"`
	CategoryID      uint    `json:"category_id"`
	PricingStrategy string  `json:"pricing_strategy"`
	DefaultPrice    float64 `json:"default_price"`
	Quantity        int     `json:"quantity"`
	LengthMeters    float64 `json:"length_meters,omitempty"`
	WidthMeters     float64 `json:"width_meters,omitempty"`
	Notes           string  `json:"notes,omitempty"`

	State QuoteState      `json:"quote_state"`
	Quote *pricing.Result `json:"quote,omitempty"`
	Err   string          `json:"quote_error,omitempty"`

	// fingerprint input dari quote terakhir yang diterbitkan; dipakai untuk
	// melewati request yang inputnya tidak berubah setelah debounce settle.
	fingerprint string
	// seq naik setiap request diterbitkan untuk baris ini; respon dengan
	// seq basi dibuang, bukan last-write-wins.
	seq uint64
}

func (l *Line) snapshot() *Line {
	cp := *l
	if l.Quote != nil {
		q := *l.Quote
		cp.Quote = &q
	}
	return &cp
}

// invalidateLocked membatalkan quote baris karena inputnya berubah.
// Dipanggil dengan lock session dipegang.
func (l *Line) invalidateLocked() {
	l.State = QuoteDebouncing
	l.Quote = nil
	l.Err = ""
	l.fingerprint = ""
	l.seq++ // respon in-flight untuk input lama jadi basi
}

// eligible memeriksa apakah baris siap di-quote: offering ada, quantity
// positif, customer terpilih, dan dimensi positif untuk dimension-based.
// Baris yang belum siap dibiarkan inert tanpa error.
func (l *Line) eligible(customerID uint) bool {
	if l.OfferingID == 0 || customerID == 0 || l.Quantity <= 0 {
		return false
	}
	if l.PricingStrategy == models.PricingDimensionBased {
		return l.LengthMeters > 0 && l.WidthMeters > 0
	}
	return true
}

func (l *Line) fingerprintFor(customerID uint) string {
	return fmt.Sprintf("%d|%d|%d|%.2f|%.2f",
		l.OfferingID, customerID, l.Quantity, l.LengthMeters, l.WidthMeters)
}

// scheduleLocked meng-arm ulang timer debounce. Dipanggil dengan lock
// dipegang; evaluasi berjalan di goroutine timer setelah jendela tenang.
func (s *Session) scheduleLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.evaluate)
}

// Flush menjalankan evaluasi quote sekarang tanpa menunggu debounce.
func (s *Session) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.evaluate()
}

// evaluate memeriksa semua baris setelah debounce settle dan menerbitkan
// request untuk baris yang fingerprint-nya berubah.
func (s *Session) evaluate() {
	s.mu.Lock()

	var customerID uint
	if s.customer != nil {
		customerID = s.customer.ID
	}

	type issue struct {
		line *Line
		seq  uint64
		req  pricing.Request
	}
	var issues []issue

	for _, l := range s.lines {
		if !l.eligible(customerID) {
			// belum siap: biarkan inert, tanpa error
			if l.State == QuoteDebouncing {
				l.State = QuoteIdle
			}
			continue
		}
		fp := l.fingerprintFor(customerID)
		if fp == l.fingerprint {
			// input settle di nilai yang sama; jangan kirim ulang
			if l.State == QuoteDebouncing {
				l.State = QuoteSettled
			}
			continue
		}

		l.seq++
		l.State = QuoteInFlight
		l.Err = ""
		l.fingerprint = fp

		req := pricing.Request{
			ServiceOfferingID: l.OfferingID,
			CustomerID:        customerID,
			Quantity:          l.Quantity,
		}
		if l.PricingStrategy == models.PricingDimensionBased {
			length, width := l.LengthMeters, l.WidthMeters
			req.LengthMeters = &length
			req.WidthMeters = &width
		}
		issues = append(issues, issue{line: l, seq: l.seq, req: req})
	}

	quoter := s.quoter
	notify := s.notify
	s.mu.Unlock()

	if notify != nil && len(issues) > 0 {
		notify()
	}
	if quoter == nil {
		return
	}

	for _, is := range issues {
		go s.issueQuote(quoter, is.line, is.seq, is.req)
	}
}

// issueQuote memanggil quoter untuk satu baris dan menerapkan hasilnya hanya
// bila sequence masih yang terbaru; respon basi dibuang.
func (s *Session) issueQuote(quoter Quoter, line *Line, seq uint64, req pricing.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), quoteTimeout)
	defer cancel()

	result, err := quoter.Quote(ctx, req)

	s.mu.Lock()
	if line.seq != seq {
		// input sudah berubah sejak request ini terbit
		s.mu.Unlock()
		return
	}
	if err != nil {
		line.State = QuoteErrored
		line.Quote = nil
		line.Err = err.Error()
		line.fingerprint = "" // sentuhan input berikutnya memicu retry
	} else {
		line.State = QuoteSettled
		line.Quote = &result
		line.Err = ""
	}
	notify := s.notify
	s.mu.Unlock()

	if notify != nil {
		notify()
	}
}
