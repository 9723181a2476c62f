package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

type ServiceActionController struct {
	DB *gorm.DB
}

func NewServiceActionController(db *gorm.DB) *ServiceActionController {
	return &ServiceActionController{DB: db}
}

func (sa *ServiceActionController) GetAllActions(c *gin.Context) {
	var actions []models.ServiceAction
	if err := sa.DB.Order("name asc").Find(&actions).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of service actions", actions)
}

func (sa *ServiceActionController) CreateAction(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	action := models.ServiceAction{Name: req.Name, Description: req.Description}
	if err := sa.DB.Create(&action).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Service action created", action)
}

func (sa *ServiceActionController) UpdateAction(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("action_id"))

	var action models.ServiceAction
	if err := sa.DB.First(&action, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Name != nil {
		action.Name = *req.Name
	}
	if req.Description != nil {
		action.Description = *req.Description
	}

	if err := sa.DB.Save(&action).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service action updated", action)
}

func (sa *ServiceActionController) DeleteAction(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("action_id"))

	if err := sa.DB.Delete(&models.ServiceAction{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Service action deleted", gin.H{"action_id": id})
}
