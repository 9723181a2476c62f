package controllers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats mengambil statistik untuk dashboard admin.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TotalOrders  int64   `json:"total_orders"`
		TodayOrders  int64   `json:"today_orders"`
		TotalRevenue float64 `json:"total_revenue"`
		TodayRevenue float64 `json:"today_revenue"`
		OrderStats   struct {
			Pending    int64 `json:"pending"`
			Processing int64 `json:"processing"`
			Ready      int64 `json:"ready"`
			Completed  int64 `json:"completed"`
			Cancelled  int64 `json:"cancelled"`
		} `json:"order_stats"`
		OutstandingDue float64 `json:"outstanding_due"`
		TodayExpenses  float64 `json:"today_expenses"`
		LowStockItems  int64   `json:"low_stock_items"`
		TotalCustomers int64   `json:"total_customers"`
	}

	ac.DB.Model(&models.Order{}).Count(&stats.TotalOrders)
	ac.DB.Model(&models.Order{}).Where("DATE(created_at) = ?", today).Count(&stats.TodayOrders)

	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&stats.OrderStats.Pending)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusProcessing).Count(&stats.OrderStats.Processing)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusReady).Count(&stats.OrderStats.Ready)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusCompleted).Count(&stats.OrderStats.Completed)
	ac.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusCancelled).Count(&stats.OrderStats.Cancelled)

	ac.DB.Model(&models.Payment{}).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&stats.TotalRevenue)
	ac.DB.Model(&models.Payment{}).
		Where("DATE(created_at) = ?", today).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&stats.TodayRevenue)

	ac.DB.Model(&models.Order{}).
		Where("status != ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(due_amount), 0)").Row().Scan(&stats.OutstandingDue)

	ac.DB.Model(&models.Expense{}).
		Where("DATE(expense_date) = ?", today).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&stats.TodayExpenses)

	ac.DB.Model(&models.InventoryItem{}).
		Where("stock_level <= reorder_level").Count(&stats.LowStockItems)
	ac.DB.Model(&models.Customer{}).Count(&stats.TotalCustomers)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// GetRevenueReport merangkum pendapatan dan pengeluaran harian
// dalam rentang ?from=&to= (default 30 hari terakhir).
func (ac *AdminController) GetRevenueReport(c *gin.Context) {
	from, to, err := parseReportRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	type dailyRow struct {
		Day    string  `json:"day"`
		Total  float64 `json:"total"`
		Orders int64   `json:"orders"`
	}

	var revenue []dailyRow
	if err := ac.DB.Model(&models.Payment{}).
		Select("DATE(created_at) as day, COALESCE(SUM(amount), 0) as total, COUNT(DISTINCT order_id) as orders").
		Where("created_at >= ? AND created_at < ?", from, to).
		Group("DATE(created_at)").
		Order("day asc").
		Scan(&revenue).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var expenses []dailyRow
	if err := ac.DB.Model(&models.Expense{}).
		Select("DATE(expense_date) as day, COALESCE(SUM(amount), 0) as total, COUNT(*) as orders").
		Where("expense_date >= ? AND expense_date < ?", from, to).
		Group("DATE(expense_date)").
		Order("day asc").
		Scan(&expenses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	var totalRevenue, totalExpenses float64
	for _, r := range revenue {
		totalRevenue += r.Total
	}
	for _, e := range expenses {
		totalExpenses += e.Total
	}

	utils.RespondJSON(c, http.StatusOK, "Revenue report retrieved successfully", gin.H{
		"from":           from.Format("2006-01-02"),
		"to":             to.AddDate(0, 0, -1).Format("2006-01-02"),
		"revenue":        revenue,
		"expenses":       expenses,
		"total_revenue":  totalRevenue,
		"total_expenses": totalExpenses,
		"net":            utils.RoundMoney(totalRevenue - totalExpenses),
	})
}

// ExportOrdersCSV mengunduh daftar order dalam rentang tanggal sebagai CSV.
func (ac *AdminController) ExportOrdersCSV(c *gin.Context) {
	from, to, err := parseReportRange(c)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var orders []models.Order
	if err := ac.DB.Preload("Customer").
		Where("order_date >= ? AND order_date < ?", from, to).
		Order("order_date asc").
		Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	filename := fmt.Sprintf("orders_%s_%s.csv",
		from.Format("20060102"), to.AddDate(0, 0, -1).Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename="+filename)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"order_number", "customer", "status", "total_amount", "paid_amount", "due_amount", "order_date"})
	for _, o := range orders {
		_ = w.Write([]string{
			o.DisplayNumber(),
			o.Customer.Name,
			o.Status,
			fmt.Sprintf("%.2f", o.TotalAmount),
			fmt.Sprintf("%.2f", o.PaidAmount),
			fmt.Sprintf("%.2f", o.DueAmount),
			o.OrderDate.Format("2006-01-02"),
		})
	}
	w.Flush()
}

// parseReportRange membaca ?from= dan ?to= (YYYY-MM-DD); to bersifat
// inklusif sehingga dikembalikan sebagai batas atas eksklusif (+1 hari).
func parseReportRange(c *gin.Context) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now.AddDate(0, 0, 1)

	if f := c.Query("from"); f != "" {
		parsed, err := time.Parse("2006-01-02", f)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("format from harus YYYY-MM-DD")
		}
		from = parsed
	}
	if t := c.Query("to"); t != "" {
		parsed, err := time.Parse("2006-01-02", t)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("format to harus YYYY-MM-DD")
		}
		to = parsed.AddDate(0, 0, 1)
	}
	if !to.After(from) {
		return time.Time{}, time.Time{}, fmt.Errorf("rentang tanggal tidak valid")
	}
	return from, to, nil
}
