package ws

import (
	"fmt"
	"log"
	"net/http"
	"sync"

	"dineinn/entity"
	"dineinn/repository"
	"dineinn/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub pushes order events to owner dashboards. Clients subscribe
// per restaurant; the kitchen screen sees new orders and status changes
// without polling.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // restaurantID -> set of clients
	broadcast  chan OrderEvent
	register   chan subscription
	unregister chan subscription
	mu         sync.Mutex
	restRepo   *repository.RestaurantRepository
}

type subscription struct {
	Conn         *websocket.Conn
	RestaurantID uint
}

type OrderEvent struct {
	RestaurantID uint               `json:"restaurantId"`
	Type         string             `json:"type"` // "order_created" | "status_changed"
	OrderID      uint               `json:"orderId"`
	TableNumber  int                `json:"tableNumber"`
	Status       entity.OrderStatus `json:"status"`
	Total        string             `json:"total,omitempty"`
}

func NewOrderHub(restRepo *repository.RestaurantRepository) *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan OrderEvent, 16),
		register:   make(chan subscription),
		unregister: make(chan subscription),
		restRepo:   restRepo,
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			h.mu.Lock()
			if h.clients[sub.RestaurantID] == nil {
				h.clients[sub.RestaurantID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.RestaurantID][sub.Conn] = true
			h.mu.Unlock()

		case sub := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[sub.RestaurantID][sub.Conn]; ok {
				delete(h.clients[sub.RestaurantID], sub.Conn)
				sub.Conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients[ev.RestaurantID] {
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.RestaurantID], conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish is safe to call from any handler goroutine.
func (h *OrderHub) Publish(ev OrderEvent) {
	h.broadcast <- ev
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/orders?restaurantId= (owner token required upstream)
func (h *OrderHub) HandleWebSocket(c *gin.Context) {
	ownerID := utils.CurrentOwnerID(c)

	var restID uint
	if _, err := fmt.Sscan(c.Query("restaurantId"), &restID); err != nil || restID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "restaurantId is required"})
		return
	}

	ok, err := h.restRepo.IsOwnedBy(restID, ownerID)
	if err != nil || !ok {
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	sub := subscription{Conn: conn, RestaurantID: restID}
	h.register <- sub

	go h.drain(sub)
}

// drain discards inbound frames; the feed is one-way. Read errors mean
// the client went away.
func (h *OrderHub) drain(sub subscription) {
	defer func() { h.unregister <- sub }()
	for {
		if _, _, err := sub.Conn.ReadMessage(); err != nil {
			break
		}
	}
}
