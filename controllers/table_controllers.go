package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/events"
	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.DiningTable
	if err := tc.DB.Order("table_number asc").Find(&tables).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of tables", tables)
}

func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber string `json:"table_number" binding:"required"`
		Capacity    int    `json:"capacity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	table := models.DiningTable{
		TableNumber: req.TableNumber,
		Capacity:    req.Capacity,
		Status:      models.TableStatusAvailable,
	}
	if table.Capacity == 0 {
		table.Capacity = 2
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Table created", table)
}

// UpdateTableStatus mengubah status meja (available/occupied/reserved)
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("table_id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	switch req.Status {
	case models.TableStatusAvailable, models.TableStatusOccupied, models.TableStatusReserved:
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("status meja %q tidak dikenal", req.Status))
		return
	}

	var table models.DiningTable
	if err := tc.DB.First(&table, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	table.Status = req.Status
	if err := tc.DB.Save(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastTableUpdate(table)

	utils.RespondJSON(c, http.StatusOK, "Table status updated", table)
}

func (tc *TableController) DeleteTable(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("table_id"))

	if err := tc.DB.Delete(&models.DiningTable{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Table deleted", gin.H{"table_id": id})
}
