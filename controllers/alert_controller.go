package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/LimeLiteSRL/my-fullstack-app-sub001/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type AlertController struct {
	Hub *services.RealtimeHub
}

func NewAlertController(hub *services.RealtimeHub) *AlertController {
	return &AlertController{Hub: hub}
}

// GET /alerts?limit=20
func (h *AlertController) ListAlerts(c *gin.Context) {
	uid := c.GetUint("userID")

	alerts, err := services.ListAlerts(uid, intQuery(c, "limit", 20))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

var wsUpgrader = websocket.Upgrader{
	// Auth happens via the JWT middleware before the upgrade.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// GET /alerts/ws — upgraded connection that receives alert events as they
// are emitted. The client is not expected to send anything.
func (h *AlertController) AlertsWS(c *gin.Context) {
	uid := c.GetUint("userID")

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("websocket upgrade failed:", err)
		return
	}

	client := &services.WSClient{UserID: uid, Conn: conn}
	h.Hub.Register(client)

	// ping to keep connections alive through proxies
	go func() {
		t := time.NewTicker(25 * time.Second)
		defer t.Stop()
		for range t.C {
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.Hub.Unregister(client)
				return
			}
		}
	}()

	// read loop ends on client close/error
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.Hub.Unregister(client)
			return
		}
	}
}
