package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/config"
	"github.com/ardiansyah/laundry-pos/events"
	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/pricing"
	"github.com/ardiansyah/laundry-pos/utils"
)

type OrderController struct {
	DB       *gorm.DB
	Pricing  *pricing.Engine
	Settings *config.AppSettings
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:       db,
		Pricing:  pricing.NewEngine(db),
		Settings: config.LoadSettings(),
	}
}

// newOrderNumber menghasilkan nomor order unik dari uuid.
func newOrderNumber() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:10])
}

// CreateOrder menerima hasil checkout wizard dan membuat order final.
// Harga selalu dihitung ulang di server lewat pricing engine; harga yang
// sempat tampil di keranjang client hanyalah preview.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := orderValidate.Struct(req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var customer models.Customer
	if err := oc.DB.First(&customer, req.CustomerID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("customer tidak ditemukan"))
		return
	}

	var createdBy *uint
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			createdBy = &id
		}
	}

	order := models.Order{
		OrderNumber: newOrderNumber(),
		CustomerID:  customer.ID,
		Status:      models.OrderStatusPending,
		Notes:       req.Notes,
		OrderDate:   time.Now(),
		PickupDate:  req.PickupDate,
		CreatedBy:   createdBy,
	}

	tx := oc.DB.Begin()
	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var total float64
	for _, item := range req.Items {
		var offering models.ServiceOffering
		if err := tx.Preload("ProductType").First(&offering, item.ServiceOfferingID).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("service offering %d tidak ditemukan", item.ServiceOfferingID))
			return
		}

		quoteReq := pricing.Request{
			ServiceOfferingID: offering.ID,
			CustomerID:        customer.ID,
			Quantity:          item.Quantity,
			LengthMeters:      item.LengthMeters,
			WidthMeters:       item.WidthMeters,
		}

		orderItem := models.OrderItem{
			OrderID:           order.ID,
			ServiceOfferingID: offering.ID,
			PricingStrategy:   offering.ProductType.PricingStrategy(),
			Quantity:          item.Quantity,
			LengthMeters:      item.LengthMeters,
			WidthMeters:       item.WidthMeters,
			Notes:             item.Notes,
		}

		result, err := oc.Pricing.Quote(c.Request.Context(), quoteReq)
		switch {
		case err == nil:
			orderItem.UnitPrice = result.PricePerUnit
			orderItem.Subtotal = result.SubTotal
			orderItem.AppliedUnit = result.AppliedUnit
			orderItem.PriceSource = models.PriceSourceQuoted
		case errors.Is(err, pricing.ErrDimensionsRequired):
			tx.Rollback()
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		default:
			// best-effort: pakai harga default offering supaya order tetap
			// bisa dibuat, ditandai agar kasir bisa koreksi
			orderItem.UnitPrice = utils.RoundMoney(offering.Price)
			orderItem.Subtotal = utils.RoundMoney(offering.Price * float64(item.Quantity))
			orderItem.AppliedUnit = pricing.UnitItem
			orderItem.PriceSource = models.PriceSourceDefault
			utils.ErrorLogger.Printf("Quote gagal untuk offering %d: %v (pakai harga default)",
				offering.ID, err)
		}

		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		total += orderItem.Subtotal
	}

	order.TotalAmount = utils.RoundMoney(total)
	order.DueAmount = order.TotalAmount
	if err := tx.Save(&order).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := oc.DB.Preload("OrderItems.ServiceOffering").Preload("Customer").
		First(&order, order.ID).Error; err == nil {
		events.BroadcastOrderUpdate(order)
		events.BroadcastStaffNotification(
			fmt.Sprintf("Order %s dibuat untuk %s (%s)", order.DisplayNumber(), customer.Name,
				utils.FormatCurrency(oc.Settings.CurrencySymbol, order.TotalAmount)))
	}

	utils.InfoLogger.Printf("Order %s created (customer=%d, total=%.2f)",
		order.OrderNumber, customer.ID, order.TotalAmount)

	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// GetAllOrders -> list order dengan filter status/customer/tanggal dan
// pagination sederhana (?page=&limit=).
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	query := oc.DB.Model(&models.Order{}).Preload("Customer").Preload("OrderItems")

	if status := c.Query("status"); status != "" {
		if !models.ValidStatus(status) {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("status %q tidak dikenal", status))
			return
		}
		query = query.Where("status = ?", status)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("format tanggal harus YYYY-MM-DD"))
			return
		}
		query = query.Where("order_date >= ? AND order_date < ?", day, day.AddDate(0, 0, 1))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var orders []models.Order
	if err := query.Order("order_date desc").
		Offset((page - 1) * limit).Limit(limit).
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of orders", gin.H{
		"orders": orders,
		"total":  count,
		"page":   page,
		"limit":  limit,
	})
}

// GetOrderByID -> detail 1 order
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var order models.Order
	if err := oc.DB.Preload("OrderItems.ServiceOffering.ProductType").
		Preload("OrderItems.ServiceOffering.ServiceAction").
		Preload("Customer").
		First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order detail", order)
}

// UpdateOrderStatus memindahkan order ke status berikutnya. Urutan transisi
// dijaga (pending -> processing -> ready -> completed, cancel dari mana saja
// kecuali completed); setiap perpindahan menaikkan version.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if !models.ValidStatus(req.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("status %q tidak dikenal", req.Status))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if !models.CanTransition(order.Status, req.Status) {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("transisi %s -> %s tidak diizinkan", order.Status, req.Status))
		return
	}

	prev := order.Status
	order.Status = req.Status
	order.Version++
	if err := oc.DB.Save(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastBoardUpdate(order, prev)
	events.BroadcastStaffNotification(
		fmt.Sprintf("Order %s: %s -> %s", order.DisplayNumber(), prev, order.Status))

	utils.RespondJSON(c, http.StatusOK, "Order status updated", order)
}

// DeleteOrder
func (oc *OrderController) DeleteOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	tx := oc.DB.Begin()
	if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := tx.Delete(&models.Order{}, id).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	tx.Commit()

	utils.RespondJSON(c, http.StatusOK, "Order deleted", gin.H{"order_id": id})
}
