package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/controllers"
	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

func setupTestDBForUsers(name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(&models.Role{}, &models.NavigationItem{}, &models.User{})
	if err != nil {
		panic(err)
	}
	db.Create(&models.Role{Name: "Admin"})
	db.Create(&models.Role{Name: "Staff"})
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(db)
	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)
	return router
}

func TestRegisterAndLogin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers("users_login")
	router := setupUserRouter(db)

	w := doJSON(router, "POST", "/register", map[string]interface{}{
		"name":     "Ardi",
		"email":    "ardi@example.com",
		"password": "rahasia-banget",
		"role_id":  1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/login", map[string]interface{}{
		"email":    "ardi@example.com",
		"password": "rahasia-banget",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "admin", data["user_role"])

	// token valid dan membawa role
	claims, err := utils.ParseToken(data["token"].(string))
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers("users_wrongpass")
	router := setupUserRouter(db)

	w := doJSON(router, "POST", "/register", map[string]interface{}{
		"name":     "Ardi",
		"email":    "ardi@example.com",
		"password": "rahasia-banget",
		"role_id":  2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, "POST", "/login", map[string]interface{}{
		"email":    "ardi@example.com",
		"password": "salah-total",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidations(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers("users_validation")
	router := setupUserRouter(db)

	// password terlalu pendek
	w := doJSON(router, "POST", "/register", map[string]interface{}{
		"name":     "Ardi",
		"email":    "ardi@example.com",
		"password": "pendek",
		"role_id":  1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// role tidak ada
	w = doJSON(router, "POST", "/register", map[string]interface{}{
		"name":     "Ardi",
		"email":    "ardi@example.com",
		"password": "rahasia-banget",
		"role_id":  99,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
