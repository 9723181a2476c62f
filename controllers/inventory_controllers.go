package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

// GetAllItems -> daftar bahan; ?low_stock=1 hanya yang menyentuh reorder
func (ic *InventoryController) GetAllItems(c *gin.Context) {
	query := ic.DB.Model(&models.InventoryItem{})
	if c.Query("low_stock") != "" {
		query = query.Where("stock_level <= reorder_level")
	}

	var items []models.InventoryItem
	if err := query.Order("name asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of inventory items", items)
}

func (ic *InventoryController) CreateItem(c *gin.Context) {
	var req struct {
		Name         string  `json:"name" binding:"required"`
		Unit         string  `json:"unit" binding:"required"`
		StockLevel   float64 `json:"stock_level"`
		ReorderLevel float64 `json:"reorder_level"`
		CostPerUnit  float64 `json:"cost_per_unit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.InventoryItem{
		Name:         req.Name,
		Unit:         req.Unit,
		StockLevel:   req.StockLevel,
		ReorderLevel: req.ReorderLevel,
		CostPerUnit:  req.CostPerUnit,
	}
	if err := ic.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Inventory item created", item)
}

func (ic *InventoryController) UpdateItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	var item models.InventoryItem
	if err := ic.DB.First(&item, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name         *string  `json:"name"`
		Unit         *string  `json:"unit"`
		StockLevel   *float64 `json:"stock_level"`
		ReorderLevel *float64 `json:"reorder_level"`
		CostPerUnit  *float64 `json:"cost_per_unit"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.StockLevel != nil {
		item.StockLevel = *req.StockLevel
	}
	if req.ReorderLevel != nil {
		item.ReorderLevel = *req.ReorderLevel
	}
	if req.CostPerUnit != nil {
		item.CostPerUnit = *req.CostPerUnit
	}

	if err := ic.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item updated", item)
}

func (ic *InventoryController) DeleteItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	if err := ic.DB.Delete(&models.InventoryItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Inventory item deleted", gin.H{"item_id": id})
}
