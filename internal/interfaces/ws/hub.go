// Package ws implementa el fan-out de eventos en tiempo real hacia los
// clientes WebSocket suscritos por canal.
package ws

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"
)

// Canales disponibles.
const (
	ChannelOrders    = "orders"
	ChannelStock     = "stock"
	ChannelPicking   = "picking"
	ChannelInbound   = "inbound"
	ChannelDashboard = "dashboard"
)

// ValidChannel verifica que el canal pertenezca al conjunto permitido.
func ValidChannel(c string) bool {
	switch c {
	case ChannelOrders, ChannelStock, ChannelPicking, ChannelInbound, ChannelDashboard:
		return true
	}
	return false
}

// Event es el sobre JSON que viaja por el socket.
type Event struct {
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
	Timestamp time.Time      `json:"timestamp"`
}

// Hub mantiene las conexiones suscritas por canal. Entrega best-effort:
// un write fallido expulsa el socket, no hay replay.
type Hub struct {
	mu    sync.RWMutex
	conns map[string][]*websocket.Conn
	log   zerolog.Logger
}

// NewHub construye el hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		conns: make(map[string][]*websocket.Conn),
		log:   log,
	}
}

// Subscribe registra la conexión en el canal.
func (h *Hub) Subscribe(channel string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[channel] = append(h.conns[channel], conn)
	h.log.Debug().Str("channel", channel).Int("subscribers", len(h.conns[channel])).Msg("ws suscripción")
}

// Unsubscribe elimina la conexión del canal.
func (h *Hub) Unsubscribe(channel string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(channel, conn)
}

func (h *Hub) removeLocked(channel string, conn *websocket.Conn) {
	subs := h.conns[channel]
	for i, c := range subs {
		if c == conn {
			h.conns[channel] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Broadcast envía el evento a todos los suscriptores del canal.
// Las conexiones cuyo write falla se expulsan del registro.
func (h *Hub) Broadcast(channel string, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	subs := h.conns[channel]
	alive := subs[:0]
	for _, conn := range subs {
		if err := conn.WriteJSON(event); err != nil {
			h.log.Debug().Str("channel", channel).Err(err).Msg("ws write fallido, expulsando socket")
			_ = conn.Close()
			continue
		}
		alive = append(alive, conn)
	}
	h.conns[channel] = alive
}

// BroadcastAll envía el evento a todos los canales.
func (h *Hub) BroadcastAll(event Event) {
	h.mu.RLock()
	channels := make([]string, 0, len(h.conns))
	for c := range h.conns {
		channels = append(channels, c)
	}
	h.mu.RUnlock()
	for _, c := range channels {
		h.Broadcast(c, event)
	}
}

// Subscribers devuelve el número de conexiones en el canal.
func (h *Hub) Subscribers(channel string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[channel])
}

// ── Notificadores tipados ─────────────────────────────────────────────────────

// NotifyOrderUpdate publica order_update en orders y dashboard.
func (h *Hub) NotifyOrderUpdate(orderID, status string) {
	event := Event{Type: "order_update", Data: map[string]any{"order_id": orderID, "status": status}}
	h.Broadcast(ChannelOrders, event)
	h.Broadcast(ChannelDashboard, event)
}

// NotifyStockChange publica stock_change en stock y dashboard.
func (h *Hub) NotifyStockChange(productID string, quantity int, movementType string) {
	event := Event{Type: "stock_change", Data: map[string]any{
		"product_id": productID, "quantity": quantity, "movement_type": movementType,
	}}
	h.Broadcast(ChannelStock, event)
	h.Broadcast(ChannelDashboard, event)
}

// NotifyPickingUpdate publica picking_update en picking.
func (h *Hub) NotifyPickingUpdate(waveID, status string) {
	h.Broadcast(ChannelPicking, Event{Type: "picking_update", Data: map[string]any{
		"wave_id": waveID, "status": status,
	}})
}

// NotifyASNUpdate publica asn_update en inbound.
func (h *Hub) NotifyASNUpdate(asnID, status string) {
	h.Broadcast(ChannelInbound, Event{Type: "asn_update", Data: map[string]any{
		"asn_id": asnID, "status": status,
	}})
}

// NotifySupplierOrderUpdate publica supplier_order_update en inbound y dashboard.
func (h *Hub) NotifySupplierOrderUpdate(orderID, status string) {
	event := Event{Type: "supplier_order_update", Data: map[string]any{
		"order_id": orderID, "status": status,
	}}
	h.Broadcast(ChannelInbound, event)
	h.Broadcast(ChannelDashboard, event)
}

// NotifyAlert publica una alerta en todos los canales.
func (h *Hub) NotifyAlert(message string) {
	h.BroadcastAll(Event{Type: "alert", Data: map[string]any{"message": message}})
}
