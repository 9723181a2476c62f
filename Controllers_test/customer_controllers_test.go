package Controllers_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/controllers"
	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/utils"
)

func setupTestDBForCustomers(name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.Customer{}); err != nil {
		panic(err)
	}
	return db
}

func setupCustomerRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	customerCtrl := controllers.NewCustomerController(db)
	router.GET("/customers", customerCtrl.GetAllCustomers)
	router.POST("/customers", customerCtrl.CreateCustomer)
	router.GET("/customers/:customer_id", customerCtrl.GetCustomerByID)
	router.PATCH("/customers/:customer_id", customerCtrl.UpdateCustomer)
	router.DELETE("/customers/:customer_id", customerCtrl.DeleteCustomer)
	return router
}

func TestCustomerCRUD(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCustomers("customers_crud")
	router := setupCustomerRouter(db)

	// create
	w := doJSON(router, "POST", "/customers", map[string]interface{}{
		"name":  "Jane Doe",
		"phone": "0811111",
		"email": "jane@example.com",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	customerID := int(data["id"].(float64))

	// nama wajib
	w = doJSON(router, "POST", "/customers", map[string]interface{}{
		"phone": "0822222",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// detail
	url := "/customers/" + strconv.Itoa(customerID)
	w = doJSON(router, "GET", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, "Jane Doe", data["name"])

	// update parsial: field yang tidak dikirim tidak berubah
	w = doJSON(router, "PATCH", url, map[string]interface{}{
		"phone": "0833333",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, "0833333", data["phone"])
	assert.Equal(t, "Jane Doe", data["name"])

	// delete
	w = doJSON(router, "DELETE", url, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, "GET", url, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerSearch(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForCustomers("customers_search")
	router := setupCustomerRouter(db)

	db.Create(&models.Customer{Name: "Jane Doe", Phone: "0811111"})
	db.Create(&models.Customer{Name: "John Smith", Phone: "0822222"})
	db.Create(&models.Customer{Name: "Janet Lee", Phone: "0833333"})

	w := doJSON(router, "GET", "/customers?search=Jane", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	customers := resp["data"].([]interface{})
	assert.Len(t, customers, 2)

	// cari via telepon
	w = doJSON(router, "GET", "/customers?search=0822", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	customers = resp["data"].([]interface{})
	assert.Len(t, customers, 1)
	assert.Equal(t, "John Smith", customers[0].(map[string]interface{})["name"])
}
