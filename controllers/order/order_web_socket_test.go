package orderControllers

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/LaryssaDev/site-para-gueto-fya/models"
)

func wsClientCount() int {
	wsMu.Lock()
	defer wsMu.Unlock()
	return len(wsClients)
}

func TestOrderFeed_DeliversAndEvictsDeadClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ws", OrderWebSocketHandler)

	srv := httptest.NewServer(r)
	defer srv.Close()
	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"

	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return wsClientCount() == 1 },
		time.Second, 10*time.Millisecond, "connection registers with the feed")

	// a live client receives the broadcast
	broadcastNewOrder(models.Order{ID: "20250815120000-8f14e45f"})
	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Contains(t, string(msg), "20250815120000-8f14e45f")

	// once the client is gone, broadcasting must shed it rather than
	// keep writing into a dead connection forever
	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool {
		broadcastNewOrder(models.Order{ID: "gone"})
		return wsClientCount() == 0
	}, 2*time.Second, 20*time.Millisecond)
}
