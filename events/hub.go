package events

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ardiansyah/laundry-pos/models"
)

// Event types
const (
	EventOrderUpdate   = "order_update"
	EventBoardUpdate   = "board_update"
	EventPaymentUpdate = "payment_update"
	EventTableUpdate   = "table_update"
	EventStaffNotif    = "staff_notification"
	EventStockAlert    = "stock_alert"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub menampung semua client websocket (kasir, operator, admin) dan
// menyiarkan event perubahan ke semuanya.
type Hub struct {
	clients map[*websocket.Conn]string // conn -> role
	mutex   sync.Mutex
}

var hub = Hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient menambahkan connection dengan role-nya.
func RegisterClient(conn *websocket.Conn, role string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	hub.clients[conn] = role
}

// UnregisterClient melepaskan connection.
func UnregisterClient(conn *websocket.Conn) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()
	delete(hub.clients, conn)
	conn.Close()
}

// BroadcastOrderUpdate menyiarkan perubahan order ke semua client.
func BroadcastOrderUpdate(order models.Order) {
	broadcast(Message{Event: EventOrderUpdate, Data: order})
}

// BroadcastBoardUpdate menyiarkan perpindahan kartu di papan kanban; client
// yang melihat kolom terkait me-refresh kolomnya.
func BroadcastBoardUpdate(order models.Order, fromStatus string) {
	broadcast(Message{
		Event: EventBoardUpdate,
		Data: map[string]interface{}{
			"order":       order,
			"from_status": fromStatus,
			"to_status":   order.Status,
		},
	})
}

// BroadcastPaymentUpdate menyiarkan pembayaran baru beserta order-nya.
func BroadcastPaymentUpdate(payment models.Payment, order models.Order) {
	broadcast(Message{
		Event: EventPaymentUpdate,
		Data: map[string]interface{}{
			"payment": payment,
			"order":   order,
		},
	})
}

// BroadcastTableUpdate menyiarkan perubahan status meja.
func BroadcastTableUpdate(table models.DiningTable) {
	broadcast(Message{Event: EventTableUpdate, Data: table})
}

// BroadcastStaffNotification mengirim notifikasi teks untuk staff.
func BroadcastStaffNotification(message string) {
	broadcast(Message{Event: EventStaffNotif, Data: message})
}

// BroadcastStockAlert menyiarkan item inventori yang menyentuh batas reorder.
func BroadcastStockAlert(item models.InventoryItem) {
	broadcast(Message{Event: EventStockAlert, Data: item})
}

func broadcast(msg Message) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range hub.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to client: %v", err)
			continue
		}
	}
}
