package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/controllers"
	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

func setupTestDBForPayments(name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Customer{}, &models.Order{}, &models.OrderItem{}, &models.Payment{})
	if err != nil {
		panic(err)
	}
	db.Create(&models.Customer{Name: "Jane Doe", Phone: "0811111"})
	db.Create(&models.Order{
		OrderNumber: "PAY1",
		CustomerID:  1,
		Status:      models.OrderStatusPending,
		TotalAmount: 20.00,
		DueAmount:   20.00,
		OrderDate:   time.Now(),
	})
	return db
}

func setupPaymentRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	paymentCtrl := controllers.NewPaymentController(db)
	router.POST("/payments", paymentCtrl.CreatePayment)
	router.GET("/payments", paymentCtrl.GetPayments)
	return router
}

func TestCreateCashPaymentWithChange(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments("payments_cash")
	router := setupPaymentRouter(db)

	w := doJSON(router, "POST", "/payments", map[string]interface{}{
		"order_id":       1,
		"amount":         15.00,
		"payment_method": "cash",
		"cash_received":  20.00,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Payment recorded", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 15.00, data["amount"])
	assert.Equal(t, 5.00, data["change"])

	var order models.Order
	assert.NoError(t, db.First(&order, 1).Error)
	assert.Equal(t, 15.00, order.PaidAmount)
	assert.Equal(t, 5.00, order.DueAmount)
}

func TestCreatePaymentRejectsOverpayment(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments("payments_overpay")
	router := setupPaymentRouter(db)

	w := doJSON(router, "POST", "/payments", map[string]interface{}{
		"order_id":       1,
		"amount":         25.00,
		"payment_method": "qris",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order, 1).Error)
	assert.Equal(t, 0.00, order.PaidAmount)
}

func TestCreatePaymentUnknownMethod(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments("payments_method")
	router := setupPaymentRouter(db)

	w := doJSON(router, "POST", "/payments", map[string]interface{}{
		"order_id":       1,
		"amount":         10.00,
		"payment_method": "cek",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCashPaymentInsufficientCash(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments("payments_shortcash")
	router := setupPaymentRouter(db)

	w := doJSON(router, "POST", "/payments", map[string]interface{}{
		"order_id":       1,
		"amount":         15.00,
		"payment_method": "cash",
		"cash_received":  10.00,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentsSettleOrder(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForPayments("payments_settle")
	router := setupPaymentRouter(db)

	w := doJSON(router, "POST", "/payments", map[string]interface{}{
		"order_id":       1,
		"amount":         12.00,
		"payment_method": "bank_transfer",
		"reference_id":   "TRX-001",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/payments", map[string]interface{}{
		"order_id":       1,
		"amount":         8.00,
		"payment_method": "cash",
		"cash_received":  8.00,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	assert.NoError(t, db.First(&order, 1).Error)
	assert.Equal(t, 20.00, order.PaidAmount)
	assert.Equal(t, 0.00, order.DueAmount)

	// riwayat pembayaran per order
	w = doJSON(router, "GET", "/payments?order_id=1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	payments := resp["data"].([]interface{})
	assert.Len(t, payments, 2)
}
