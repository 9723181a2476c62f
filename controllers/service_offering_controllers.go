package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

type ServiceOfferingController struct {
	DB *gorm.DB
}

func NewServiceOfferingController(db *gorm.DB) *ServiceOfferingController {
	return &ServiceOfferingController{DB: db}
}

// GetAllOfferings -> daftar offering; ?product_type_id= untuk panel service
// di wizard, default hanya yang aktif.
func (so *ServiceOfferingController) GetAllOfferings(c *gin.Context) {
	query := so.DB.Preload("ProductType").Preload("ServiceAction")

	if typeID := c.Query("product_type_id"); typeID != "" {
		query = query.Where("product_type_id = ?", typeID)
	}
	if c.Query("include_inactive") == "" {
		query = query.Where("active = ?", true)
	}

	var offerings []models.ServiceOffering
	if err := query.Order("name asc").Find(&offerings).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of service offerings", offerings)
}

func (so *ServiceOfferingController) CreateOffering(c *gin.Context) {
	var req struct {
		ProductTypeID       uint    `json:"product_type_id" binding:"required"`
		ServiceActionID     uint    `json:"service_action_id" binding:"required"`
		Name                string  `json:"name" binding:"required"`
		Price               float64 `json:"price"`
		PricePerSquareMeter float64 `json:"price_per_square_meter"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var productType models.ProductType
	if err := so.DB.First(&productType, req.ProductTypeID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	var action models.ServiceAction
	if err := so.DB.First(&action, req.ServiceActionID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	offering := models.ServiceOffering{
		ProductTypeID:       productType.ID,
		ServiceActionID:     action.ID,
		Name:                req.Name,
		Price:               req.Price,
		PricePerSquareMeter: req.PricePerSquareMeter,
		Active:              true,
	}
	if err := so.DB.Create(&offering).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Service offering created", offering)
}

func (so *ServiceOfferingController) GetOfferingByID(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("offering_id"))

	var offering models.ServiceOffering
	if err := so.DB.Preload("ProductType").Preload("ServiceAction").
		First(&offering, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service offering detail", offering)
}

func (so *ServiceOfferingController) UpdateOffering(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("offering_id"))

	var offering models.ServiceOffering
	if err := so.DB.First(&offering, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name                *string  `json:"name"`
		Price               *float64 `json:"price"`
		PricePerSquareMeter *float64 `json:"price_per_square_meter"`
		Active              *bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if req.Name != nil {
		offering.Name = *req.Name
	}
	if req.Price != nil {
		offering.Price = *req.Price
	}
	if req.PricePerSquareMeter != nil {
		offering.PricePerSquareMeter = *req.PricePerSquareMeter
	}
	if req.Active != nil {
		offering.Active = *req.Active
	}

	if err := so.DB.Save(&offering).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service offering updated", offering)
}

func (so *ServiceOfferingController) DeleteOffering(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("offering_id"))

	if err := so.DB.Delete(&models.ServiceOffering{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service offering deleted", gin.H{"offering_id": id})
}

// SetCustomerPrice -> pasang/ubah harga khusus customer untuk satu offering
func (so *ServiceOfferingController) SetCustomerPrice(c *gin.Context) {
	var req struct {
		CustomerID          uint    `json:"customer_id" binding:"required"`
		ServiceOfferingID   uint    `json:"service_offering_id" binding:"required"`
		Price               float64 `json:"price"`
		PricePerSquareMeter float64 `json:"price_per_square_meter"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var price models.CustomerPrice
	err := so.DB.Where("customer_id = ? AND service_offering_id = ?",
		req.CustomerID, req.ServiceOfferingID).First(&price).Error
	switch {
	case err == nil:
		price.Price = req.Price
		price.PricePerSquareMeter = req.PricePerSquareMeter
		if err := so.DB.Save(&price).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	default:
		price = models.CustomerPrice{
			CustomerID:          req.CustomerID,
			ServiceOfferingID:   req.ServiceOfferingID,
			Price:               req.Price,
			PricePerSquareMeter: req.PricePerSquareMeter,
		}
		if err := so.DB.Create(&price).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Customer price saved", price)
}

// GetCustomerPrices -> daftar harga khusus milik satu customer
func (so *ServiceOfferingController) GetCustomerPrices(c *gin.Context) {
	customerID, _ := strconv.Atoi(c.Param("customer_id"))

	var prices []models.CustomerPrice
	if err := so.DB.Where("customer_id = ?", customerID).Find(&prices).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Customer prices", prices)
}
