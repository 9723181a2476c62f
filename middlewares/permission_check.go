package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

// Can memeriksa apakah role user punya permission key tertentu (mis.
// "orders.create"). Role "admin" selalu lolos. Daftar permission dibaca dari
// relasi role -> navigation items.
func Can(db *gorm.DB, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleName, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if roleName == "admin" {
			c.Next()
			return
		}

		var role models.Role
		if err := db.Preload("Permissions").
			Where("name = ?", roleName).First(&role).Error; err != nil {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("role %v tidak dikenal", roleName))
			c.Abort()
			return
		}

		if !role.HasPermission(key) {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("akses %s ditolak", key))
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole membatasi endpoint untuk daftar role tertentu (admin selalu
// boleh). Dipakai untuk endpoint yang tidak dipetakan ke permission key.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}
		if userRole == "admin" {
			c.Next()
			return
		}
		for _, r := range roles {
			if userRole == r {
				c.Next()
				return
			}
		}
		utils.RespondError(c, http.StatusForbidden, fmt.Errorf("akses ditolak untuk role %v", userRole))
		c.Abort()
	}
}
