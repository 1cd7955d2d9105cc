// Package ws relays in-app notification events to connected clients. It is a
// thin pipe: events already published to the user's Redis topic are forwarded
// to the websocket as-is, with no acknowledgement back.
package ws

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/notifyx/notifyx/internal/api/respond"
	"github.com/notifyx/notifyx/internal/sender/inapp"
)

type Handler struct {
	rdb      *redis.Client
	upgrader websocket.Upgrader
}

func NewHandler(rdb *redis.Client) *Handler {
	return &Handler{
		rdb: rdb,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},
	}
}

// Stream upgrades the connection and forwards the user's in-app events until
// either side goes away.
func (h *Handler) Stream(c *ginext.Context) {
	userIDStr := c.Param("user_id")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userIDStr).Msg("failed to parse user id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to upgrade connection")
		return
	}
	defer conn.Close()

	sub := h.rdb.Subscribe(c.Request.Context(), inapp.Topic(userID))
	defer sub.Close()

	events := sub.Channel()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case m, ok := <-events:
			if !ok {
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, []byte(m.Payload)); err != nil {
				zlog.Logger.Info().Err(err).Int64("user_id", userID).Msg("websocket closed")
				return
			}
		}
	}
}
