// Package cart berisi mesin wizard pembuatan order: pemilihan customer ->
// kategori -> produk -> layanan, keranjang item, dan permintaan quote harga
// yang di-debounce. Session dipakai per satu order yang sedang disusun.
package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/ardiansyah/laundry-pos/models"
)

// Step adalah panel wizard yang sedang aktif.
type Step string

const (
	StepCustomer Step = "customer"
	StepCategory Step = "category"
	StepProduct  Step = "product"
	StepService  Step = "service"
	StepEditItem Step = "edit_item"
)

// State quote per baris keranjang.
type QuoteState string

const (
	QuoteIdle       QuoteState = "idle"
	QuoteDebouncing QuoteState = "pending_debounce"
	QuoteInFlight   QuoteState = "in_flight"
	QuoteSettled    QuoteState = "settled"
	QuoteErrored    QuoteState = "errored"
)

var (
	ErrDuplicateOffering = errors.New("layanan ini sudah ada di keranjang")
	ErrLineOutOfRange    = errors.New("index item keranjang di luar jangkauan")
	ErrNoCustomer        = errors.New("customer belum dipilih")
	ErrEmptyCart         = errors.New("keranjang masih kosong")
)

const defaultDebounce = 500 * time.Millisecond

// Session menampung state wizard satu order. Semua method aman dipanggil
// dari goroutine berbeda; respon quote yang datang terlambat dibuang
// berdasarkan sequence number per baris.
type Session struct {
	mu sync.Mutex

	quoter   Quoter
	debounce time.Duration
	timer    *time.Timer
	notify   func()

	customer   *models.Customer
	categoryID uint
	productID  uint
	editingID  uint64 // 0 = tidak sedang edit

	lines      []*Line
	nextLineID uint64
}

// NewSession membuat session wizard baru. quoter boleh nil selama tidak ada
// baris yang memenuhi syarat quote (mis. untuk menyusun draft offline).
func NewSession(quoter Quoter) *Session {
	return &Session{
		quoter:   quoter,
		debounce: defaultDebounce,
	}
}

// SetDebounce mengganti jendela debounce (dipakai test).
func (s *Session) SetDebounce(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debounce = d
}

// SetNotify memasang callback yang dipanggil setiap state quote berubah
// (mis. untuk push ke websocket). Callback dijalankan tanpa memegang lock.
func (s *Session) SetNotify(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify = fn
}

// Step menentukan panel yang harus tampil. Guard dievaluasi setiap kali:
// tanpa customer, wizard selalu kembali ke panel customer apapun state lain.
func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customer == nil {
		return StepCustomer
	}
	if s.editingID != 0 {
		return StepEditItem
	}
	if s.productID != 0 {
		return StepService
	}
	if s.categoryID != 0 {
		return StepProduct
	}
	return StepCategory
}

// SelectCustomer memilih customer dan maju ke panel kategori. Ganti customer
// membatalkan semua quote yang ada karena harga bersifat per-customer.
func (s *Session) SelectCustomer(c models.Customer) {
	s.mu.Lock()
	changed := s.customer == nil || s.customer.ID != c.ID
	s.customer = &c
	if changed {
		for _, l := range s.lines {
			l.invalidateLocked()
		}
		s.scheduleLocked()
	}
	s.mu.Unlock()
}

// Customer mengembalikan customer terpilih (nil bila belum ada).
func (s *Session) Customer() *models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customer
}

func (s *Session) SelectCategory(id uint) {
	s.mu.Lock()
	s.categoryID = id
	s.productID = 0
	s.mu.Unlock()
}

func (s *Session) SelectProduct(id uint) {
	s.mu.Lock()
	s.productID = id
	s.mu.Unlock()
}

// Back mundur satu panel: service -> product -> category. Mode edit cukup
// ditutup untuk kembali ke panel service.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.editingID != 0:
		s.editingID = 0
	case s.productID != 0:
		s.productID = 0
	case s.categoryID != 0:
		s.categoryID = 0
	}
}

// AddOffering menambah satu baris untuk offering. Offering harus sudah
// preload ProductType. Duplikat (offering id sama) ditolak dengan
// ErrDuplicateOffering agar UI bisa menampilkan notice, bukan error fatal.
// Menambah item tidak memindahkan panel, jadi user bisa menambah beberapa
// layanan untuk produk yang sama.
func (s *Session) AddOffering(off models.ServiceOffering) (*Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.lines {
		if l.OfferingID == off.ID {
			return nil, ErrDuplicateOffering
		}
	}

	s.nextLineID++
	line := &Line{
		ID:              s.nextLineID,
		OfferingID:      off.ID,
		OfferingName:    off.Name,
		ProductTypeID:   off.ProductTypeID,
		CategoryID:      off.ProductType.CategoryID,
		PricingStrategy: off.ProductType.PricingStrategy(),
		DefaultPrice:    off.Price,
		Quantity:        1,
		State:           QuoteDebouncing,
	}
	s.lines = append(s.lines, line)
	s.scheduleLocked()
	return line.snapshot(), nil
}

// RemoveLine menghapus baris pada index tersebut; baris lain tidak tersentuh.
func (s *Session) RemoveLine(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.lines) {
		return ErrLineOutOfRange
	}
	removed := s.lines[index]
	if s.editingID == removed.ID {
		s.editingID = 0
	}
	// seq dinaikkan supaya respon in-flight milik baris ini dibuang
	removed.seq++
	s.lines = append(s.lines[:index], s.lines[index+1:]...)
	return nil
}

// EditLine masuk mode edit untuk baris index: panel lompat ke EDIT_ITEM dan
// konteks kategori/produk di-seed dari offering baris itu.
func (s *Session) EditLine(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.lines) {
		return ErrLineOutOfRange
	}
	line := s.lines[index]
	s.editingID = line.ID
	s.categoryID = line.CategoryID
	s.productID = line.ProductTypeID
	return nil
}

// ReplaceOffering mengganti offering baris yang sedang diedit. Quantity,
// dimensi, dan catatan dipertahankan; quote lama dibatalkan.
func (s *Session) ReplaceOffering(index int, off models.ServiceOffering) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.lines) {
		return ErrLineOutOfRange
	}
	for i, l := range s.lines {
		if i != index && l.OfferingID == off.ID {
			return ErrDuplicateOffering
		}
	}

	line := s.lines[index]
	line.OfferingID = off.ID
	line.OfferingName = off.Name
	line.ProductTypeID = off.ProductTypeID
	line.CategoryID = off.ProductType.CategoryID
	line.PricingStrategy = off.ProductType.PricingStrategy()
	line.DefaultPrice = off.Price
	line.invalidateLocked()
	s.scheduleLocked()
	return nil
}

// SetQuantity mengubah jumlah; perubahan input meng-arm ulang debounce.
func (s *Session) SetQuantity(index, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.lines) {
		return ErrLineOutOfRange
	}
	line := s.lines[index]
	if line.Quantity == quantity {
		return nil
	}
	line.Quantity = quantity
	line.invalidateLocked()
	s.scheduleLocked()
	return nil
}

// SetDimensions mengisi panjang/lebar (meter) untuk produk dimension-based.
func (s *Session) SetDimensions(index int, length, width float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.lines) {
		return ErrLineOutOfRange
	}
	line := s.lines[index]
	if line.LengthMeters == length && line.WidthMeters == width {
		return nil
	}
	line.LengthMeters = length
	line.WidthMeters = width
	line.invalidateLocked()
	s.scheduleLocked()
	return nil
}

func (s *Session) SetNotes(index int, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.lines) {
		return ErrLineOutOfRange
	}
	s.lines[index].Notes = notes
	return nil
}

// Lines mengembalikan salinan baris keranjang untuk dirender.
func (s *Session) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	for i, l := range s.lines {
		out[i] = *l.snapshot()
	}
	return out
}

// AllSettled melaporkan apakah semua baris sudah punya quote yang settle.
// Caller boleh memakai ini untuk menahan tombol submit; checkout sendiri
// tidak memaksa (lihat Checkout).
func (s *Session) AllSettled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.lines {
		if l.State != QuoteSettled {
			return false
		}
	}
	return len(s.lines) > 0
}

// CheckoutItem adalah satu baris order yang dikirim ke endpoint create-order.
type CheckoutItem struct {
	ServiceOfferingID uint     `json:"service_offering_id"`
	Quantity          int      `json:"quantity"`
	LengthMeters      *float64 `json:"length_meters,omitempty"`
	WidthMeters       *float64 `json:"width_meters,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

// CheckoutRequest adalah payload create-order lengkap.
type CheckoutRequest struct {
	CustomerID uint           `json:"customer_id"`
	Items      []CheckoutItem `json:"items"`
	Notes      string         `json:"notes,omitempty"`
	PickupDate *time.Time     `json:"pickup_date,omitempty"`
}

// Checkout merakit keranjang menjadi request pembuatan order. Submit tidak
// menunggu semua quote settle: harga final selalu dihitung ulang server saat
// create, baris tanpa quote memakai harga default offering.
func (s *Session) Checkout(notes string, pickup *time.Time) (CheckoutRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.customer == nil {
		return CheckoutRequest{}, ErrNoCustomer
	}
	if len(s.lines) == 0 {
		return CheckoutRequest{}, ErrEmptyCart
	}

	req := CheckoutRequest{
		CustomerID: s.customer.ID,
		Notes:      notes,
		PickupDate: pickup,
	}
	for _, l := range s.lines {
		item := CheckoutItem{
			ServiceOfferingID: l.OfferingID,
			Quantity:          l.Quantity,
			Notes:             l.Notes,
		}
		if l.PricingStrategy == models.PricingDimensionBased {
			length, width := l.LengthMeters, l.WidthMeters
			item.LengthMeters = &length
			item.WidthMeters = &width
		}
		req.Items = append(req.Items, item)
	}
	return req, nil
}

// Close menghentikan timer debounce. Respon in-flight yang tersisa tetap
// dibuang lewat pemeriksaan sequence.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
