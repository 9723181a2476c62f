package pricing

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

// Unit yang dipakai backend saat menghitung harga.
const (
	UnitItem        = "item"
	UnitSquareMeter = "m2"
)

var (
	ErrInvalidQuantity    = errors.New("quantity harus lebih dari 0")
	ErrDimensionsRequired = errors.New("panjang dan lebar (meter) wajib diisi untuk produk dimension-based")
	ErrOfferingInactive   = errors.New("service offering tidak aktif")
)

// Request adalah input quote, sama persis dengan kontrak endpoint /quotes.
type Request struct {
	ServiceOfferingID uint     `json:"service_offering_id" binding:"required"`
	CustomerID        uint     `json:"customer_id" binding:"required"`
	Quantity          int      `json:"quantity" binding:"required,min=1"`
	LengthMeters      *float64 `json:"length_meters,omitempty"`
	WidthMeters       *float64 `json:"width_meters,omitempty"`
}

// Result adalah hasil quote yang dikirim balik ke client.
type Result struct {
	PricePerUnit float64 `json:"calculated_price_per_unit_item"`
	SubTotal     float64 `json:"sub_total"`
	AppliedUnit  string  `json:"applied_unit"`
}

// Engine menghitung quote dari data offering + override harga per customer.
type Engine struct {
	DB *gorm.DB
}

func NewEngine(db *gorm.DB) *Engine {
	return &Engine{DB: db}
}

// Quote memuat offering dan override customer lalu menghitung harga.
// Memenuhi interface cart.Quoter.
func (e *Engine) Quote(ctx context.Context, req Request) (Result, error) {
	var offering models.ServiceOffering
	if err := e.DB.WithContext(ctx).Preload("ProductType").
		First(&offering, req.ServiceOfferingID).Error; err != nil {
		return Result{}, fmt.Errorf("service offering %d tidak ditemukan", req.ServiceOfferingID)
	}
	if !offering.Active {
		return Result{}, ErrOfferingInactive
	}

	var override *models.CustomerPrice
	var cp models.CustomerPrice
	err := e.DB.WithContext(ctx).
		Where("customer_id = ? AND service_offering_id = ?", req.CustomerID, req.ServiceOfferingID).
		First(&cp).Error
	if err == nil {
		override = &cp
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Result{}, err
	}

	return Compute(offering, override, req)
}

// Compute adalah inti hitung harga, dipisah agar bisa diuji tanpa database.
//   - fixed: harga per item = harga offering (override dulu bila ada)
//   - dimension_based: harga per item = panjang x lebar x harga per m2
func Compute(offering models.ServiceOffering, override *models.CustomerPrice, req Request) (Result, error) {
	if req.Quantity < 1 {
		return Result{}, ErrInvalidQuantity
	}

	if offering.ProductType.IsDimensionBased {
		if req.LengthMeters == nil || req.WidthMeters == nil ||
			*req.LengthMeters <= 0 || *req.WidthMeters <= 0 {
			return Result{}, ErrDimensionsRequired
		}
		perSqm := offering.PricePerSquareMeter
		if override != nil && override.PricePerSquareMeter > 0 {
			perSqm = override.PricePerSquareMeter
		}
		area := *req.LengthMeters * *req.WidthMeters
		unitPrice := utils.RoundMoney(area * perSqm)
		return Result{
			PricePerUnit: unitPrice,
			SubTotal:     utils.RoundMoney(unitPrice * float64(req.Quantity)),
			AppliedUnit:  UnitSquareMeter,
		}, nil
	}

	price := offering.Price
	if override != nil && override.Price > 0 {
		price = override.Price
	}
	unitPrice := utils.RoundMoney(price)
	return Result{
		PricePerUnit: unitPrice,
		SubTotal:     utils.RoundMoney(unitPrice * float64(req.Quantity)),
		AppliedUnit:  UnitItem,
	}, nil
}
