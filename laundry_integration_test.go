package main

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ardiansyah/laundry-pos/models"
	"github.com/ardiansyah/laundry-pos/router"
	"github.com/ardiansyah/laundry-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndIntegration menguji flow utama:
// 0. Seed admin + katalog + customer, login -> token
// 1. Quote harga untuk keranjang (qty 3 x 4.50 = 13.50)
// 2. Create order -> pending, total sesuai quote
// 3. Pindahkan kartu di papan: pending -> processing -> ready -> completed
// 4. Bayar lunas -> due 0
func TestEndToEndIntegration(t *testing.T) {
	db := setupIntegrationDB()
	r := router.SetupRouter(db)

	token := loginTest(t, r)

	quoteTest(t, r)
	orderID := createOrderTest(t, r, token)
	moveOnBoardTest(t, r, token, orderID)
	payOrderTest(t, r, token, orderID)
}

// setupIntegrationDB -> migrasi model di SQLite in-memory + seed data
func setupIntegrationDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:integration_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.Role{},
		&models.NavigationItem{},
		&models.User{},
		&models.Customer{},
		&models.ProductCategory{},
		&models.ProductType{},
		&models.ServiceAction{},
		&models.ServiceOffering{},
		&models.CustomerPrice{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Admin user
	role := models.Role{Name: "Admin"}
	db.Create(&role)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret12345"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Name:     "Test Admin",
		Email:    "admin@example.com",
		Password: string(hashedPassword),
		RoleID:   role.ID,
		Active:   true,
	})

	// Katalog: kategori pakaian, kemeja, layanan cuci (4.50 per item)
	category := models.ProductCategory{Name: "Pakaian"}
	db.Create(&category)
	shirt := models.ProductType{CategoryID: category.ID, Name: "Kemeja"}
	db.Create(&shirt)
	wash := models.ServiceAction{Name: "Cuci"}
	db.Create(&wash)
	db.Create(&models.ServiceOffering{
		ProductTypeID:   shirt.ID,
		ServiceActionID: wash.ID,
		Name:            "Cuci Kemeja",
		Price:           4.50,
		Active:          true,
	})

	db.Create(&models.Customer{Name: "Jane Doe", Phone: "0811111"})
	return db
}

func request(t *testing.T, r *gin.Engine, method, url, token string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(payloadBytes)
	} else {
		body = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, ok := resp["data"].(map[string]interface{})
	assert.True(t, ok, "response data bukan objek: %s", w.Body.String())
	return data
}

func loginTest(t *testing.T, r *gin.Engine) string {
	w := request(t, r, "POST", "/login", "", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "secret12345",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	token, _ := data["token"].(string)
	assert.NotEmpty(t, token)
	assert.Equal(t, "admin", data["user_role"])
	return token
}

func quoteTest(t *testing.T, r *gin.Engine) {
	// endpoint publik: dipanggil wizard setiap input keranjang settle
	w := request(t, r, "POST", "/quotes", "", map[string]interface{}{
		"service_offering_id": 1,
		"customer_id":         1,
		"quantity":            3,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, 4.50, data["calculated_price_per_unit_item"])
	assert.Equal(t, 13.50, data["sub_total"])
	assert.Equal(t, "item", data["applied_unit"])
}

func createOrderTest(t *testing.T, r *gin.Engine, token string) int {
	w := request(t, r, "POST", "/admin/orders", token, map[string]interface{}{
		"customer_id": 1,
		"items": []map[string]interface{}{
			{"service_offering_id": 1, "quantity": 3},
		},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, 13.50, data["total_amount"])
	assert.Equal(t, 13.50, data["due_amount"])
	return int(data["id"].(float64))
}

func moveOnBoardTest(t *testing.T, r *gin.Engine, token string, orderID int) {
	url := "/admin/board/orders/" + strconv.Itoa(orderID) + "/move"
	version := 0
	for _, status := range []string{"processing", "ready", "completed"} {
		w := request(t, r, "PATCH", url, token, map[string]interface{}{
			"status":  status,
			"version": version,
		})
		assert.Equal(t, http.StatusOK, w.Code, "move ke %s gagal: %s", status, w.Body.String())
		data := decodeData(t, w)
		assert.Equal(t, status, data["status"])
		version++
		assert.Equal(t, float64(version), data["version"])
	}

	// tanpa login papan tidak bisa diakses
	w := request(t, r, "GET", "/admin/board", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func payOrderTest(t *testing.T, r *gin.Engine, token string, orderID int) {
	w := request(t, r, "POST", "/admin/payments", token, map[string]interface{}{
		"order_id":       orderID,
		"amount":         13.50,
		"payment_method": "cash",
		"cash_received":  15.00,
	})
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	data := decodeData(t, w)
	assert.Equal(t, 1.50, data["change"])

	// order lunas
	w = request(t, r, "GET", "/admin/orders/"+strconv.Itoa(orderID), token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data = decodeData(t, w)
	assert.Equal(t, 13.50, data["paid_amount"])
	assert.Equal(t, 0.00, data["due_amount"])
}
