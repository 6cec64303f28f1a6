package ws

import (
	"context"
	"net/http"
	"time"

	"siteadmin/config"
	"siteadmin/internal/auth"
	"siteadmin/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

const (
	sendBuffer   = 64
	pingInterval = 30 * time.Second
)

// AdminLookup rejects blocked or removed admins.
type AdminLookup interface {
	Me(ctx context.Context, adminID uint) (*models.Admin, error)
}

// UpgradeChangesWS authenticates with ?token= and streams ChangeEvents until the client goes away.
func UpgradeChangesWS(cfg *config.JWTConfig, hub *ChangeHub, admins AdminLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		token := c.Query("token")
		if token == "" {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"error","message":"token required"}`))
			return
		}
		claims, err := auth.ParseAccessToken(cfg, token)
		if err != nil {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"error","message":"invalid token"}`))
			return
		}
		if _, err := admins.Me(c.Request.Context(), claims.AdminID); err != nil {
			conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"error","message":"account is not active"}`))
			return
		}
		client := NewClient(claims.AdminID, sendBuffer)
		hub.Register(client)
		defer client.Close()
		conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"ready"}`))
		go writePump(client, conn)
		readPump(conn)
	}
}

// writePump copies messages from client.Send to the connection.
// Closing the connection on exit unblocks readPump when the hub drops the client.
func writePump(c *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()
	defer conn.Close()
	for {
		select {
		case msg, ok := <-c.Send:
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func readPump(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
