package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

type ProductTypeController struct {
	DB *gorm.DB
}

func NewProductTypeController(db *gorm.DB) *ProductTypeController {
	return &ProductTypeController{DB: db}
}

// GetAllProductTypes -> daftar produk; ?category_id= untuk panel wizard
func (pt *ProductTypeController) GetAllProductTypes(c *gin.Context) {
	query := pt.DB.Preload("Category")

	if catID := c.Query("category_id"); catID != "" {
		query = query.Where("category_id = ?", catID)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var types []models.ProductType
	if err := query.Order("name asc").Find(&types).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of product types", types)
}

func (pt *ProductTypeController) CreateProductType(c *gin.Context) {
	var req struct {
		CategoryID       uint   `json:"category_id" binding:"required"`
		Name             string `json:"name" binding:"required"`
		Description      string `json:"description"`
		IsDimensionBased bool   `json:"is_dimension_based"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var category models.ProductCategory
	if err := pt.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	productType := models.ProductType{
		CategoryID:       category.ID,
		Name:             req.Name,
		Description:      req.Description,
		IsDimensionBased: req.IsDimensionBased,
	}
	if err := pt.DB.Create(&productType).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product type created", productType)
}

func (pt *ProductTypeController) GetProductTypeByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("type_id"))

	var productType models.ProductType
	if err := pt.DB.Preload("Category").First(&productType, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product type detail", productType)
}

func (pt *ProductTypeController) UpdateProductType(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("type_id"))

	var productType models.ProductType
	if err := pt.DB.First(&productType, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		CategoryID       *uint   `json:"category_id"`
		Name             *string `json:"name"`
		Description      *string `json:"description"`
		IsDimensionBased *bool   `json:"is_dimension_based"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.CategoryID != nil {
		productType.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		productType.Name = *req.Name
	}
	if req.Description != nil {
		productType.Description = *req.Description
	}
	if req.IsDimensionBased != nil {
		productType.IsDimensionBased = *req.IsDimensionBased
	}

	if err := pt.DB.Save(&productType).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product type updated", productType)
}

func (pt *ProductTypeController) DeleteProductType(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("type_id"))

	if err := pt.DB.Delete(&models.ProductType{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Product type deleted", gin.H{"type_id": id})
}
