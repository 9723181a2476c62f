package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

func (rc *RoleController) GetAllRoles(c *gin.Context) {
	var roles []models.Role
	if err := rc.DB.Preload("Permissions").Find(&roles).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of roles", roles)
}

func (rc *RoleController) CreateRole(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	role := models.Role{Name: req.Name, Description: req.Description}
	if err := rc.DB.Create(&role).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Role created", role)
}

func (rc *RoleController) UpdateRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("role_id"))

	var role models.Role
	if err := rc.DB.First(&role, id).Error; err != nil {
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
		role.Name = *req.Name
	}
	if req.Description != nil {
		role.Description = *req.Description
	}

	if err := rc.DB.Save(&role).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Role updated", role)
}

func (rc *RoleController) DeleteRole(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("role_id"))

	if err := rc.DB.Delete(&models.Role{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Role deleted", gin.H{"role_id": id})
}

// SetRolePermissions mengganti seluruh daftar permission sebuah role.
func (rc *RoleController) SetRolePermissions(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("role_id"))

	var role models.Role
	if err := rc.DB.First(&role, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	var req struct {
		NavigationItemIDs []uint `json:"navigation_item_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var items []models.NavigationItem
	if len(req.NavigationItemIDs) > 0 {
		if err := rc.DB.Find(&items, req.NavigationItemIDs).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	if err := rc.DB.Model(&role).Association("Permissions").Replace(items); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Role %s permissions updated (%d items)", role.Name, len(items))
	utils.RespondJSON(c, http.StatusOK, "Role permissions updated", role)
}

// GetNavigationItems -> daftar seluruh menu/permission yang bisa diberikan
func (rc *RoleController) GetNavigationItems(c *gin.Context) {
	var items []models.NavigationItem
	if err := rc.DB.Order("sort_order asc").Find(&items).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Navigation items", items)
}

func (rc *RoleController) CreateNavigationItem(c *gin.Context) {
	var req struct {
		Key       string `json:"key" binding:"required"`
		Label     string `json:"label" binding:"required"`
		ParentID  *uint  `json:"parent_id"`
		SortOrder int    `json:"sort_order"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	item := models.NavigationItem{
		Key:       req.Key,
		Label:     req.Label,
		ParentID:  req.ParentID,
		SortOrder: req.SortOrder,
	}
	if err := rc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Navigation item created", item)
}

func (rc *RoleController) DeleteNavigationItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("item_id"))

	if err := rc.DB.Delete(&models.NavigationItem{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Navigation item deleted", gin.H{"item_id": id})
}
