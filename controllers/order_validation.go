package controllers

import (
	"time"

	validatorv10 "github.com/go-playground/validator/v10"
)

// OrderItemRequest adalah satu baris pada payload create-order; bentuknya
// sama dengan cart.CheckoutItem.
type OrderItemRequest struct {
	ServiceOfferingID uint     `json:"service_offering_id" validate:"required"`
	Quantity          int      `json:"quantity" validate:"required,min=1"`
	LengthMeters      *float64 `json:"length_meters"`
	WidthMeters       *float64 `json:"width_meters"`
	Notes             string   `json:"notes"`
}

type CreateOrderRequest struct {
	CustomerID uint               `json:"customer_id" validate:"required"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes      string             `json:"notes"`
	PickupDate *time.Time         `json:"pickup_date"`
}

// orderValidate memegang aturan yang tidak bisa dinyatakan lewat tag:
// dimensi harus sepasang dan positif bila diisi. Kewajiban dimensi untuk
// offering dimension-based dicek di handler karena butuh data offering.
var orderValidate = newOrderValidator()

func newOrderValidator() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterStructValidation(orderItemStructValidation, OrderItemRequest{})
	return v
}

func orderItemStructValidation(sl validatorv10.StructLevel) {
	item := sl.Current().Interface().(OrderItemRequest)

	if (item.LengthMeters == nil) != (item.WidthMeters == nil) {
		sl.ReportError(item.LengthMeters, "length_meters", "LengthMeters",
			"dimension_pair", "panjang dan lebar harus diisi berpasangan")
		return
	}
	if item.LengthMeters != nil && (*item.LengthMeters <= 0 || *item.WidthMeters <= 0) {
		sl.ReportError(item.LengthMeters, "length_meters", "LengthMeters",
			"dimension_positive", "panjang dan lebar harus lebih dari 0")
	}
}
