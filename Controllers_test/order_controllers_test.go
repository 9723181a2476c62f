package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func setupTestDBForOrders(name string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.ProductCategory{},
		&models.ProductType{},
		&models.ServiceAction{},
		&models.ServiceOffering{},
		&models.Customer{},
		&models.CustomerPrice{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		panic(err)
	}

	// Seed data: satu offering fixed (4.50) dan satu dimension-based (5.00/m2).
	category := models.ProductCategory{Name: "Pakaian"}
	db.Create(&category)
	shirt := models.ProductType{CategoryID: category.ID, Name: "Kemeja"}
	db.Create(&shirt)
	carpet := models.ProductType{CategoryID: category.ID, Name: "Karpet", IsDimensionBased: true}
	db.Create(&carpet)
	wash := models.ServiceAction{Name: "Cuci"}
	db.Create(&wash)
	db.Create(&models.ServiceOffering{
		ProductTypeID:   shirt.ID,
		ServiceActionID: wash.ID,
		Name:            "Cuci Kemeja",
		Price:           4.50,
		Active:          true,
	})
	db.Create(&models.ServiceOffering{
		ProductTypeID:       carpet.ID,
		ServiceActionID:     wash.ID,
		Name:                "Cuci Karpet",
		PricePerSquareMeter: 5.00,
		Active:              true,
	})
	db.Create(&models.Customer{Name: "Jane Doe", Phone: "0811111"})
	return db
}

func setupOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	orderCtrl := controllers.NewOrderController(db)
	router.POST("/orders", orderCtrl.CreateOrder)
	router.GET("/orders", orderCtrl.GetAllOrders)
	router.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	router.PATCH("/orders/:order_id/status", orderCtrl.UpdateOrderStatus)
	return router
}

func doJSON(router *gin.Engine, method, url string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		payloadBytes, _ := json.Marshal(payload)
		body = bytes.NewBuffer(payloadBytes)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, _ := http.NewRequest(method, url, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetOrder(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders("orders_create")
	router := setupOrderRouter(db)

	payload := map[string]interface{}{
		"customer_id": 1,
		"items": []map[string]interface{}{
			{
				"service_offering_id": 1,
				"quantity":            3,
			},
		},
	}
	w := doJSON(router, "POST", "/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &createResp))
	assert.Equal(t, "Order created", createResp["message"])
	data := createResp["data"].(map[string]interface{})
	assert.Equal(t, 13.50, data["total_amount"])
	assert.Equal(t, 13.50, data["due_amount"])
	assert.Equal(t, "pending", data["status"])
	orderID := int(data["id"].(float64))

	items := data["order_items"].([]interface{})
	if assert.Len(t, items, 1) {
		item := items[0].(map[string]interface{})
		assert.Equal(t, 4.50, item["unit_price"])
		assert.Equal(t, 13.50, item["subtotal"])
		assert.Equal(t, "quoted", item["price_source"])
		assert.Equal(t, "item", item["applied_unit"])
	}

	// GET by id
	w = doJSON(router, "GET", "/orders/"+strconv.Itoa(orderID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var getResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &getResp))
	assert.Equal(t, "Order detail", getResp["message"])
	getData := getResp["data"].(map[string]interface{})
	assert.Equal(t, float64(orderID), getData["id"])
	customer := getData["customer"].(map[string]interface{})
	assert.Equal(t, "Jane Doe", customer["name"])
}

func TestCreateOrderWithCustomerOverride(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders("orders_override")
	router := setupOrderRouter(db)

	db.Create(&models.CustomerPrice{
		CustomerID:        1,
		ServiceOfferingID: 1,
		Price:             4.00,
	})

	payload := map[string]interface{}{
		"customer_id": 1,
		"items": []map[string]interface{}{
			{"service_offering_id": 1, "quantity": 2},
		},
	}
	w := doJSON(router, "POST", "/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, 8.00, data["total_amount"])
}

func TestCreateOrderDimensionItemRequiresDimensions(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders("orders_dims")
	router := setupOrderRouter(db)

	payload := map[string]interface{}{
		"customer_id": 1,
		"items": []map[string]interface{}{
			{"service_offering_id": 2, "quantity": 1},
		},
	}
	w := doJSON(router, "POST", "/orders", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// dengan dimensi lengkap order terbentuk
	payload = map[string]interface{}{
		"customer_id": 1,
		"items": []map[string]interface{}{
			{
				"service_offering_id": 2,
				"quantity":            2,
				"length_meters":       2.0,
				"width_meters":        3.0,
			},
		},
	}
	w = doJSON(router, "POST", "/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	// 2m x 3m x 5.00/m2 = 30.00 per item, qty 2 -> 60.00
	assert.Equal(t, 60.00, data["total_amount"])
	items := data["order_items"].([]interface{})
	item := items[0].(map[string]interface{})
	assert.Equal(t, "m2", item["applied_unit"])
}

func TestCreateOrderUnknownCustomer(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders("orders_nocust")
	router := setupOrderRouter(db)

	payload := map[string]interface{}{
		"customer_id": 999,
		"items": []map[string]interface{}{
			{"service_offering_id": 1, "quantity": 1},
		},
	}
	w := doJSON(router, "POST", "/orders", payload)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateOrderStatusTransitions(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders("orders_status")
	router := setupOrderRouter(db)

	payload := map[string]interface{}{
		"customer_id": 1,
		"items": []map[string]interface{}{
			{"service_offering_id": 1, "quantity": 1},
		},
	}
	w := doJSON(router, "POST", "/orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	orderID := int(resp["data"].(map[string]interface{})["id"].(float64))
	url := "/orders/" + strconv.Itoa(orderID) + "/status"

	// lompat pending -> ready ditolak
	w = doJSON(router, "PATCH", url, map[string]interface{}{"status": "ready"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// pending -> processing
	w = doJSON(router, "PATCH", url, map[string]interface{}{"status": "processing"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "processing", data["status"])
	assert.Equal(t, float64(1), data["version"])

	// processing -> ready -> completed
	w = doJSON(router, "PATCH", url, map[string]interface{}{"status": "ready"})
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(router, "PATCH", url, map[string]interface{}{"status": "completed"})
	assert.Equal(t, http.StatusOK, w.Code)

	// completed tidak bisa dibatalkan
	w = doJSON(router, "PATCH", url, map[string]interface{}{"status": "cancelled"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAllOrdersFilterByStatus(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOrders("orders_filter")
	router := setupOrderRouter(db)

	for i := 0; i < 3; i++ {
		payload := map[string]interface{}{
			"customer_id": 1,
			"items": []map[string]interface{}{
				{"service_offering_id": 1, "quantity": 1},
			},
		}
		w := doJSON(router, "POST", "/orders", payload)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(router, "GET", "/orders?status=pending", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["total"])

	w = doJSON(router, "GET", "/orders?status=completed", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data = resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["total"])

	// status tidak dikenal -> 400
	w = doJSON(router, "GET", "/orders?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
