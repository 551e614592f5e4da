package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// UpgradeRequired rechaza peticiones que no son un upgrade de WebSocket.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler devuelve el handler de GET /ws/:channel. Suscribe la conexión al
// canal pedido y la mantiene abierta hasta que el cliente cierre; los mensajes
// entrantes se descartan, el canal es de solo lectura para el cliente.
func Handler(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		channel := conn.Params("channel")
		if !ValidChannel(channel) {
			conn.WriteJSON(fiber.Map{"error": "canale sconosciuto: " + channel})
			conn.Close()
			return
		}

		hub.Subscribe(channel, conn)
		defer hub.Unsubscribe(channel, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
