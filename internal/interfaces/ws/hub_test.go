package ws

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestValidChannel(t *testing.T) {
	for _, c := range []string{ChannelOrders, ChannelStock, ChannelPicking, ChannelInbound, ChannelDashboard} {
		assert.True(t, ValidChannel(c), c)
	}
	assert.False(t, ValidChannel("ordenes"))
	assert.False(t, ValidChannel(""))
}

func TestHub_SubscribeUnsubscribe(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	c1 := &websocket.Conn{}
	c2 := &websocket.Conn{}

	hub.Subscribe(ChannelOrders, c1)
	hub.Subscribe(ChannelOrders, c2)
	hub.Subscribe(ChannelStock, c1)

	assert.Equal(t, 2, hub.Subscribers(ChannelOrders))
	assert.Equal(t, 1, hub.Subscribers(ChannelStock))
	assert.Equal(t, 0, hub.Subscribers(ChannelPicking))

	hub.Unsubscribe(ChannelOrders, c1)
	assert.Equal(t, 1, hub.Subscribers(ChannelOrders))
	assert.Equal(t, 1, hub.Subscribers(ChannelStock), "la baja en un canal no afecta a los demás")

	// Dar de baja dos veces es inocuo
	hub.Unsubscribe(ChannelOrders, c1)
	assert.Equal(t, 1, hub.Subscribers(ChannelOrders))
}

// Sin suscriptores el broadcast es un no-op; los notificadores tipados no
// deben fallar con el hub vacío.
func TestHub_NotificadoresConHubVacio(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	hub.NotifyOrderUpdate("ord-1", "spedito")
	hub.NotifyStockChange("prod-1", 7, "carico")
	hub.NotifyPickingUpdate("wave-1", "completato")
	hub.NotifyASNUpdate("asn-1", "in_ricezione")
	hub.NotifySupplierOrderUpdate("so-1", "ricevuto")
	hub.NotifyAlert("stock basso")

	assert.Equal(t, 0, hub.Subscribers(ChannelOrders))
}
