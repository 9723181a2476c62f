package controllers

import (
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

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	query := rc.DB.Preload("Customer").Preload("Table").Order("reserved_at asc")

	if date := c.Query("date"); date != "" {
		day, err := time.Parse("2006-01-02", date)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("format tanggal harus YYYY-MM-DD"))
			return
		}
		query = query.Where("reserved_at >= ? AND reserved_at < ?", day, day.AddDate(0, 0, 1))
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of reservations", reservations)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var req struct {
		CustomerID uint   `json:"customer_id" binding:"required"`
		TableID    uint   `json:"table_id" binding:"required"`
		ReservedAt string `json:"reserved_at" binding:"required"`
		PartySize  int    `json:"party_size"`
		Notes      string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	reservedAt, err := time.Parse(time.RFC3339, req.ReservedAt)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("reserved_at harus format RFC3339"))
		return
	}

	var table models.DiningTable
	if err := rc.DB.First(&table, req.TableID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, fmt.Errorf("meja tidak ditemukan"))
		return
	}
	if table.Status == models.TableStatusOccupied {
		utils.RespondError(c, http.StatusConflict, ErrTableUnavailable)
		return
	}

	reservation := models.Reservation{
		CustomerID: req.CustomerID,
		TableID:    req.TableID,
		ReservedAt: reservedAt,
		PartySize:  req.PartySize,
		Status:     models.ReservationStatusBooked,
		Notes:      req.Notes,
	}
	if reservation.PartySize == 0 {
		reservation.PartySize = 1
	}

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&reservation).Error; err != nil {
			return err
		}
		table.Status = models.TableStatusReserved
		return tx.Save(&table).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	events.BroadcastTableUpdate(table)

	if err := rc.DB.Preload("Customer").Preload("Table").First(&reservation, reservation.ID).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Reservation created", reservation)
}

// UpdateReservationStatus menandai reservasi sebagai seated atau cancelled,
// lalu menyesuaikan status meja terkait.
func (rc *ReservationController) UpdateReservationStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("reservation_id"))

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.Preload("Table").First(&reservation, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var tableStatus string
	switch req.Status {
	case models.ReservationStatusSeated:
		tableStatus = models.TableStatusOccupied
	case models.ReservationStatusCancelled:
		tableStatus = models.TableStatusAvailable
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("status reservasi %q tidak dikenal", req.Status))
		return
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		reservation.Status = req.Status
		if err := tx.Save(&reservation).Error; err != nil {
			return err
		}
		return tx.Model(&models.DiningTable{}).
			Where("id = ?", reservation.TableID).
			Update("status", tableStatus).Error
	})
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	reservation.Table.Status = tableStatus
	events.BroadcastTableUpdate(reservation.Table)

	utils.RespondJSON(c, http.StatusOK, "Reservation updated", reservation)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("reservation_id"))

	if err := rc.DB.Delete(&models.Reservation{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Reservation deleted", gin.H{"reservation_id": id})
}
