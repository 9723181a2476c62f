package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/events"
	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

type PurchaseController struct {
	DB *gorm.DB
}

func NewPurchaseController(db *gorm.DB) *PurchaseController {
	return &PurchaseController{DB: db}
}

func (pc *PurchaseController) GetAllPurchases(c *gin.Context) {
	query := pc.DB.Preload("Supplier").Preload("Items.InventoryItem")
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var purchases []models.Purchase
	if err := query.Order("purchase_date desc").Find(&purchases).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of purchases", purchases)
}

// CreatePurchase mencatat pembelian bahan dari supplier. Stok belum
// bertambah sampai pembelian ditandai diterima (ReceivePurchase).
func (pc *PurchaseController) CreatePurchase(c *gin.Context) {
	type itemReq struct {
		InventoryItemID uint    `json:"inventory_item_id" binding:"required"`
		Quantity        float64 `json:"quantity" binding:"required,gt=0"`
		UnitCost        float64 `json:"unit_cost" binding:"required,gt=0"`
	}
	var req struct {
		SupplierID uint      `json:"supplier_id" binding:"required"`
		Items      []itemReq `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var supplier models.Supplier
	if err := pc.DB.First(&supplier, req.SupplierID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	purchase := models.Purchase{
		SupplierID:   supplier.ID,
		Status:       models.PurchaseStatusOrdered,
		PurchaseDate: time.Now(),
	}

	tx := pc.DB.Begin()
	if err := tx.Create(&purchase).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var total float64
	for _, item := range req.Items {
		var invItem models.InventoryItem
		if err := tx.First(&invItem, item.InventoryItemID).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusBadRequest,
				fmt.Errorf("inventory item %d tidak ditemukan", item.InventoryItemID))
			return
		}

		subtotal := utils.RoundMoney(item.Quantity * item.UnitCost)
		purchaseItem := models.PurchaseItem{
			PurchaseID:      purchase.ID,
			InventoryItemID: invItem.ID,
			Quantity:        item.Quantity,
			UnitCost:        item.UnitCost,
			Subtotal:        subtotal,
		}
		if err := tx.Create(&purchaseItem).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		total += subtotal
	}

	purchase.TotalAmount = utils.RoundMoney(total)
	if err := tx.Save(&purchase).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	tx.Commit()

	utils.RespondJSON(c, http.StatusCreated, "Purchase created", purchase)
}

// ReceivePurchase menandai pembelian diterima dan menambah stok tiap bahan.
func (pc *PurchaseController) ReceivePurchase(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("purchase_id"))

	var purchase models.Purchase
	if err := pc.DB.Preload("Items").First(&purchase, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if purchase.Status != models.PurchaseStatusOrdered {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("pembelian berstatus %s, tidak bisa diterima", purchase.Status))
		return
	}

	tx := pc.DB.Begin()
	for _, item := range purchase.Items {
		var invItem models.InventoryItem
		if err := tx.First(&invItem, item.InventoryItemID).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		invItem.StockLevel += item.Quantity
		invItem.CostPerUnit = item.UnitCost
		if err := tx.Save(&invItem).Error; err != nil {
			tx.Rollback()
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	purchase.Status = models.PurchaseStatusReceived
	if err := tx.Save(&purchase).Error; err != nil {
		tx.Rollback()
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	tx.Commit()

	utils.InfoLogger.Printf("Purchase %d received (%d items)", purchase.ID, len(purchase.Items))
	utils.RespondJSON(c, http.StatusOK, "Purchase received", purchase)
}

// CancelPurchase membatalkan pembelian yang belum diterima.
func (pc *PurchaseController) CancelPurchase(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("purchase_id"))

	var purchase models.Purchase
	if err := pc.DB.First(&purchase, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if purchase.Status != models.PurchaseStatusOrdered {
		utils.RespondError(c, http.StatusBadRequest,
			errors.New("hanya pembelian berstatus ordered yang bisa dibatalkan"))
		return
	}

	purchase.Status = models.PurchaseStatusCancelled
	if err := pc.DB.Save(&purchase).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Purchase cancelled", purchase)
}

// ConsumeStock mengurangi stok bahan (pemakaian harian operasional) dan
// menyiarkan stock alert bila menyentuh batas reorder.
func (pc *PurchaseController) ConsumeStock(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var req struct {
		Quantity float64 `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var item models.InventoryItem
	if err := pc.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if req.Quantity > item.StockLevel {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Errorf("stok %s tersisa %.2f %s", item.Name, item.StockLevel, item.Unit))
		return
	}

	item.StockLevel -= req.Quantity
	if err := pc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if item.BelowReorder() {
		events.BroadcastStockAlert(item)
	}

	utils.RespondJSON(c, http.StatusOK, "Stock updated", item)
}
