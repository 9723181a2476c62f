package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/config"
	"github.com/ardiansyah/laundry-pos/events"
	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

type PaymentController struct {
	DB       *gorm.DB
	Settings *config.AppSettings
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Settings: config.LoadSettings()}
}

// CreatePayment mencatat pembayaran untuk sebuah order dan memperbarui
// paid/due. Pembayaran melebihi sisa tagihan ditolak; untuk cash, kembalian
// dihitung dari cash_received.
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var req struct {
		OrderID      uint    `json:"order_id" binding:"required"`
		Amount       float64 `json:"amount" binding:"required,gt=0"`
		Method       string  `json:"payment_method" binding:"required"`
		ReferenceID  string  `json:"reference_id"`
		CashReceived float64 `json:"cash_received"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if !models.ValidPaymentMethod(req.Method) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("metode pembayaran %q tidak dikenal", req.Method))
		return
	}

	var order models.Order
	if err := pc.DB.First(&order, req.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if order.Status == models.OrderStatusCancelled {
		utils.RespondError(c, http.StatusBadRequest, errors.New("order sudah dibatalkan"))
		return
	}

	amount := utils.RoundMoney(req.Amount)
	if amount > order.DueAmount {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("pembayaran %.2f melebihi sisa tagihan %.2f", amount, order.DueAmount))
		return
	}

	payment := models.Payment{
		OrderID:       order.ID,
		Amount:        amount,
		PaymentMethod: req.Method,
		ReferenceID:   req.ReferenceID,
	}

	if req.Method == models.PaymentMethodCash {
		if req.CashReceived < amount {
			utils.RespondError(c, http.StatusBadRequest,
				errors.New("cash_received kurang dari jumlah pembayaran"))
			return
		}
		payment.CashReceived = utils.RoundMoney(req.CashReceived)
		payment.Change = utils.RoundMoney(req.CashReceived - amount)
	}

	now := time.Now()
	payment.PaymentTime = &now

	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			payment.RecordedBy = &id
		}
	}

	tx := pc.DB.Begin()
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order.PaidAmount = utils.RoundMoney(order.PaidAmount + amount)
	order.DueAmount = utils.RoundMoney(order.TotalAmount - order.PaidAmount)
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastPaymentUpdate(payment, order)
	if order.DueAmount == 0 {
		events.BroadcastStaffNotification(
			fmt.Sprintf("Order %s lunas (%s)", order.DisplayNumber(),
				utils.FormatCurrency(pc.Settings.CurrencySymbol, order.PaidAmount)))
	}

	utils.InfoLogger.Printf("Payment %.2f (%s) recorded for order %s",
		amount, req.Method, order.OrderNumber)

	utils.RespondJSON(c, http.StatusCreated, "Payment recorded", payment)
}

// GetPayments -> semua pembayaran; ?order_id= untuk satu order
func (pc *PaymentController) GetPayments(c *gin.Context) {
	query := pc.DB.Preload("Order")

	if orderID := c.Query("order_id"); orderID != "" {
		query = query.Where("order_id = ?", orderID)
	}

	var payments []models.Payment
	if err := query.Order("created_at desc").Find(&payments).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of payments", payments)
}

func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("payment_id"))

	var payment models.Payment
	if err := pc.DB.Preload("Order.Customer").First(&payment, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Payment detail", payment)
}

// DeletePayment membatalkan catatan pembayaran dan mengembalikan paid/due
// order terkait (salah input kasir).
func (pc *PaymentController) DeletePayment(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("payment_id"))

	var payment models.Payment
	if err := pc.DB.First(&payment, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var order models.Order
	if err := pc.DB.First(&order, payment.OrderID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	tx := pc.DB.Begin()
	if err := tx.Delete(&payment).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	order.PaidAmount = utils.RoundMoney(order.PaidAmount - payment.Amount)
	order.DueAmount = utils.RoundMoney(order.TotalAmount - order.PaidAmount)
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	tx.Commit()

	utils.RespondJSON(c, http.StatusOK, "Payment deleted", gin.H{"payment_id": id})
}
