package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

type ExpenseController struct {
	DB *gorm.DB
}

func NewExpenseController(db *gorm.DB) *ExpenseController {
	return &ExpenseController{DB: db}
}

func (ec *ExpenseController) GetAllExpenseCategories(c *gin.Context) {
	var categories []models.ExpenseCategory
	if err := ec.DB.Order("name asc").Find(&categories).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of expense categories", categories)
}

func (ec *ExpenseController) CreateExpenseCategory(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	category := models.ExpenseCategory{Name: req.Name}
	if err := ec.DB.Create(&category).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Expense category created", category)
}

func (ec *ExpenseController) DeleteExpenseCategory(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("cat_id"))

	if err := ec.DB.Delete(&models.ExpenseCategory{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Expense category deleted", gin.H{"category_id": id})
}

// GetAllExpenses -> daftar pengeluaran; ?from=&to= (YYYY-MM-DD)
func (ec *ExpenseController) GetAllExpenses(c *gin.Context) {
	query := ec.DB.Preload("Category")

	if from := c.Query("from"); from != "" {
		day, err := time.Parse("2006-01-02", from)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("format tanggal harus YYYY-MM-DD"))
			return
		}
		query = query.Where("expense_date >= ?", day)
	}
	if to := c.Query("to"); to != "" {
		day, err := time.Parse("2006-01-02", to)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("format tanggal harus YYYY-MM-DD"))
			return
		}
		query = query.Where("expense_date < ?", day.AddDate(0, 0, 1))
	}

	var expenses []models.Expense
	if err := query.Order("expense_date desc").Find(&expenses).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of expenses", expenses)
}

func (ec *ExpenseController) CreateExpense(c *gin.Context) {
	var req struct {
		CategoryID  uint       `json:"category_id" binding:"required"`
		Amount      float64    `json:"amount" binding:"required,gt=0"`
		Description string     `json:"description"`
		ExpenseDate *time.Time `json:"expense_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.ExpenseCategory
	if err := ec.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	expenseDate := time.Now()
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}

	expense := models.Expense{
		CategoryID:  category.ID,
		Amount:      utils.RoundMoney(req.Amount),
		Description: req.Description,
		ExpenseDate: expenseDate,
	}
	if v, exists := c.Get("user_id"); exists {
		if id, ok := v.(uint); ok {
			expense.RecordedBy = &id
		}
	}

	if err := ec.DB.Create(&expense).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Expense recorded", expense)
}

func (ec *ExpenseController) UpdateExpense(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("expense_id"))

	var expense models.Expense
	if err := ec.DB.First(&expense, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		CategoryID  *uint      `json:"category_id"`
		Amount      *float64   `json:"amount"`
		Description *string    `json:"description"`
		ExpenseDate *time.Time `json:"expense_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.CategoryID != nil {
		expense.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		expense.Amount = utils.RoundMoney(*req.Amount)
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}

	if err := ec.DB.Save(&expense).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Expense updated", expense)
}

func (ec *ExpenseController) DeleteExpense(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("expense_id"))

	if err := ec.DB.Delete(&models.Expense{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Expense deleted", gin.H{"expense_id": id})
}
