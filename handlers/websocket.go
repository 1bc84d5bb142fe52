package handlers

import (
	"net/http"

	"repair-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// WSHandler serves the service change feed.
type WSHandler struct {
	mgr *ws.Manager
	log logrus.FieldLogger
}

func NewWSHandler(mgr *ws.Manager, log logrus.FieldLogger) *WSHandler {
	return &WSHandler{mgr: mgr, log: log}
}

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// HandleFeed upgrades to websocket and keeps the client registered until
// it disconnects. Clients only listen; inbound messages are discarded.
// GET /ws?client=<client_id>
func (h *WSHandler) HandleFeed(c *gin.Context) {
	clientID := c.Query("client")
	if clientID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing client id", "code": "INVALID_REQUEST"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	h.mgr.Register(clientID, conn)
	log := h.log.WithField("client", clientID)
	log.Info("feed client connected")

	defer func() {
		h.mgr.Unregister(clientID, conn)
		log.Info("feed client disconnected")
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.WithError(err).Debug("feed read ended")
			}
			return
		}
	}
}

// GetConnectedClients GET /ws/clients
func (h *WSHandler) GetConnectedClients(c *gin.Context) {
	clients := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"clients": clients, "count": len(clients)})
}
