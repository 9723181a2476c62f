package pricing

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
)

func fixedOffering(price float64) models.ServiceOffering {
	return models.ServiceOffering{
		ID:     1,
		Name:   "Cuci Kemeja",
		Price:  price,
		Active: true,
		ProductType: models.ProductType{
			ID:               1,
			Name:             "Kemeja",
			IsDimensionBased: false,
		},
	}
}

func dimensionOffering(perSqm float64) models.ServiceOffering {
	return models.ServiceOffering{
		ID:                  2,
		Name:                "Cuci Karpet",
		PricePerSquareMeter: perSqm,
		Active:              true,
		ProductType: models.ProductType{
			ID:               2,
			Name:             "Karpet",
			IsDimensionBased: true,
		},
	}
}

func fptr(v float64) *float64 { return &v }

func TestComputeFixedPrice(t *testing.T) {
	result, err := Compute(fixedOffering(4.50), nil, Request{
		ServiceOfferingID: 1,
		CustomerID:        1,
		Quantity:          3,
	})
	assert.NoError(t, err)
	assert.Equal(t, 4.50, result.PricePerUnit)
	assert.Equal(t, 13.50, result.SubTotal)
	assert.Equal(t, UnitItem, result.AppliedUnit)
}

func TestComputeFixedPriceWithCustomerOverride(t *testing.T) {
	override := &models.CustomerPrice{
		CustomerID:        1,
		ServiceOfferingID: 1,
		Price:             4.00,
	}
	result, err := Compute(fixedOffering(4.50), override, Request{
		ServiceOfferingID: 1,
		CustomerID:        1,
		Quantity:          2,
	})
	assert.NoError(t, err)
	assert.Equal(t, 4.00, result.PricePerUnit)
	assert.Equal(t, 8.00, result.SubTotal)
}

func TestComputeDimensionBased(t *testing.T) {
	// 2m x 3m x 5.00/m2 = 30.00 per item
	result, err := Compute(dimensionOffering(5.00), nil, Request{
		ServiceOfferingID: 2,
		CustomerID:        1,
		Quantity:          2,
		LengthMeters:      fptr(2),
		WidthMeters:       fptr(3),
	})
	assert.NoError(t, err)
	assert.Equal(t, 30.00, result.PricePerUnit)
	assert.Equal(t, 60.00, result.SubTotal)
	assert.Equal(t, UnitSquareMeter, result.AppliedUnit)
}

func TestComputeDimensionBasedRequiresDimensions(t *testing.T) {
	_, err := Compute(dimensionOffering(5.00), nil, Request{
		ServiceOfferingID: 2,
		CustomerID:        1,
		Quantity:          1,
	})
	assert.ErrorIs(t, err, ErrDimensionsRequired)

	// nol juga ditolak
	_, err = Compute(dimensionOffering(5.00), nil, Request{
		ServiceOfferingID: 2,
		CustomerID:        1,
		Quantity:          1,
		LengthMeters:      fptr(0),
		WidthMeters:       fptr(2),
	})
	assert.ErrorIs(t, err, ErrDimensionsRequired)
}

func TestComputeInvalidQuantity(t *testing.T) {
	_, err := Compute(fixedOffering(4.50), nil, Request{
		ServiceOfferingID: 1,
		CustomerID:        1,
		Quantity:          0,
	})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestComputeRoundsMoney(t *testing.T) {
	// 1.3m x 1.3m x 7.77/m2 = 13.1313 -> 13.13
	result, err := Compute(dimensionOffering(7.77), nil, Request{
		ServiceOfferingID: 2,
		CustomerID:        1,
		Quantity:          1,
		LengthMeters:      fptr(1.3),
		WidthMeters:       fptr(1.3),
	})
	assert.NoError(t, err)
	assert.Equal(t, 13.13, result.PricePerUnit)
}

func setupEngineDB(t *testing.T, name string) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.ProductCategory{},
		&models.ProductType{},
		&models.ServiceAction{},
		&models.ServiceOffering{},
		&models.Customer{},
		&models.CustomerPrice{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestEngineQuoteWithOverrideFromDB(t *testing.T) {
	db := setupEngineDB(t, "pricing_override")

	category := models.ProductCategory{Name: "Pakaian"}
	db.Create(&category)
	product := models.ProductType{CategoryID: category.ID, Name: "Kemeja"}
	db.Create(&product)
	action := models.ServiceAction{Name: "Cuci"}
	db.Create(&action)
	offering := models.ServiceOffering{
		ProductTypeID:   product.ID,
		ServiceActionID: action.ID,
		Name:            "Cuci Kemeja",
		Price:           4.50,
		Active:          true,
	}
	db.Create(&offering)
	customer := models.Customer{Name: "Jane Doe", Phone: "0811111"}
	db.Create(&customer)
	db.Create(&models.CustomerPrice{
		CustomerID:        customer.ID,
		ServiceOfferingID: offering.ID,
		Price:             4.00,
	})

	engine := NewEngine(db)

	result, err := engine.Quote(context.Background(), Request{
		ServiceOfferingID: offering.ID,
		CustomerID:        customer.ID,
		Quantity:          3,
	})
	assert.NoError(t, err)
	assert.Equal(t, 4.00, result.PricePerUnit)
	assert.Equal(t, 12.00, result.SubTotal)

	// customer lain tanpa override memakai harga default
	other := models.Customer{Name: "John Smith", Phone: "0822222"}
	db.Create(&other)
	result, err = engine.Quote(context.Background(), Request{
		ServiceOfferingID: offering.ID,
		CustomerID:        other.ID,
		Quantity:          3,
	})
	assert.NoError(t, err)
	assert.Equal(t, 4.50, result.PricePerUnit)
	assert.Equal(t, 13.50, result.SubTotal)
}

func TestEngineQuoteInactiveOffering(t *testing.T) {
	db := setupEngineDB(t, "pricing_inactive")

	category := models.ProductCategory{Name: "Rumah Tangga"}
	db.Create(&category)
	product := models.ProductType{CategoryID: category.ID, Name: "Gorden"}
	db.Create(&product)
	action := models.ServiceAction{Name: "Dry Clean"}
	db.Create(&action)
	offering := models.ServiceOffering{
		ProductTypeID:   product.ID,
		ServiceActionID: action.ID,
		Name:            "Dry Clean Gorden",
		Price:           20.00,
		Active:          false,
	}
	db.Create(&offering)
	customer := models.Customer{Name: "Jane Doe", Phone: "0811111"}
	db.Create(&customer)

	engine := NewEngine(db)
	_, err := engine.Quote(context.Background(), Request{
		ServiceOfferingID: offering.ID,
		CustomerID:        customer.ID,
		Quantity:          1,
	})
	assert.ErrorIs(t, err, ErrOfferingInactive)
}

// Regresi: dengan tag gorm `default:true`, nilai Active=false dibuang saat
// Create dan offering nonaktif tersimpan sebagai aktif.
func TestInactiveOfferingPersistsAsInactive(t *testing.T) {
	db := setupEngineDB(t, "pricing_inactive_persist")

	category := models.ProductCategory{Name: "Rumah Tangga"}
	db.Create(&category)
	product := models.ProductType{CategoryID: category.ID, Name: "Karpet"}
	db.Create(&product)
	action := models.ServiceAction{Name: "Cuci"}
	db.Create(&action)
	offering := models.ServiceOffering{
		ProductTypeID:   product.ID,
		ServiceActionID: action.ID,
		Name:            "Cuci Karpet",
		Price:           15.00,
		Active:          false,
	}
	db.Create(&offering)

	var got models.ServiceOffering
	err := db.First(&got, offering.ID).Error
	assert.NoError(t, err)
	assert.False(t, got.Active)
}
