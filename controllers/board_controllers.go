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

type BoardController struct {
	DB *gorm.DB
}

func NewBoardController(db *gorm.DB) *BoardController {
	return &BoardController{DB: db}
}

// GetBoard mengembalikan papan kanban: satu kolom per status aktif, diisi
// order pada hari tersebut (?date=YYYY-MM-DD, default hari ini). Kolom
// diambil per status agar client bisa me-refresh satu kolom saja.
func (bc *BoardController) GetBoard(c *gin.Context) {
	now := time.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date := c.Query("date"); date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("format tanggal harus YYYY-MM-DD"))
			return
		}
		day = parsed
	}
	next := day.AddDate(0, 0, 1)

	columns := make(map[string][]models.Order, len(models.BoardStatuses))
	for _, status := range models.BoardStatuses {
		var orders []models.Order
		if err := bc.DB.Preload("Customer").Preload("OrderItems").
			Where("status = ? AND order_date >= ? AND order_date < ?", status, day, next).
			Order("created_at asc").
			Find(&orders).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		columns[status] = orders
	}

	utils.RespondJSON(c, http.StatusOK, "Order board", gin.H{
		"date":    day.Format("2006-01-02"),
		"columns": columns,
	})
}

// MoveOrder memindahkan kartu antar kolom. Client wajib mengirim version
// order yang ia lihat; bila sudah basi (order diubah client lain) request
// ditolak 409 dan client me-refresh kolomnya, bukan menimpa state terbaru.
func (bc *BoardController) MoveOrder(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("order_id"))

	var req struct {
		Status  string `json:"status" binding:"required"`
		Version *uint  `json:"version" binding:"required"`
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
	if err := bc.DB.First(&order, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	if order.Version != *req.Version {
		utils.RespondError(c, http.StatusConflict,
			fmt.Errorf("order sudah berubah (version %d, dikirim %d); muat ulang kolom",
				order.Version, *req.Version))
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

	// guard optimistik di level DB juga: update hanya bila version belum
	// berubah sejak dibaca
	res := bc.DB.Model(&models.Order{}).
		Where("id = ? AND version = ?", order.ID, *req.Version).
		Updates(map[string]interface{}{
			"status":  order.Status,
			"version": order.Version,
		})
	if res.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.RespondError(c, http.StatusConflict,
			errors.New("order sudah berubah; muat ulang kolom"))
		return
	}

	events.BroadcastBoardUpdate(order, prev)

	utils.RespondJSON(c, http.StatusOK, "Order moved", order)
}
