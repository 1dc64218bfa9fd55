package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/theduelx/duel-server-go/internal/config"
	"github.com/theduelx/duel-server-go/internal/game"
	"go.uber.org/zap"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = 54 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// wsClient is one subscribed WebSocket connection. It receives the same
// redacted match views as the gRPC stream, on the same polling cadence.
type wsClient struct {
	conn     *websocket.Conn
	send     chan []byte
	matchID  string
	playerID int32
	logger   *zap.Logger
}

// StartWebSocketServer serves match state over WebSocket alongside gRPC.
// Clients connect to /ws?game_id=...&player_id=... and receive a snapshot per
// tick until they disconnect.
func StartWebSocketServer(cfg config.WebSocketConfig, matchMgr *game.Manager, interval time.Duration, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(w, r, matchMgr, interval, logger)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	logger.Info("starting WebSocket server", zap.String("address", cfg.Address))
	return http.ListenAndServe(cfg.Address, mux)
}

func serveWS(w http.ResponseWriter, r *http.Request, matchMgr *game.Manager, interval time.Duration, logger *zap.Logger) {
	matchID := r.URL.Query().Get("game_id")
	if matchID == "" {
		http.Error(w, "game_id is required", http.StatusBadRequest)
		return
	}

	playerID, err := strconv.ParseInt(r.URL.Query().Get("player_id"), 10, 32)
	if err != nil {
		http.Error(w, "player_id is required", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("failed to upgrade WebSocket connection", zap.Error(err))
		return
	}

	client := &wsClient{
		conn:     conn,
		send:     make(chan []byte, 8),
		matchID:  matchID,
		playerID: int32(playerID),
		logger:   logger,
	}

	logger.Info("WebSocket subscriber connected",
		zap.String("game_id", matchID),
		zap.Int32("player_id", client.playerID),
	)

	done := make(chan struct{})
	go client.writePump(done)
	go client.pollMatch(matchMgr, interval, done)
	client.readPump(done)
}

// readPump discards inbound messages and detects disconnects.
func (c *wsClient) readPump(done chan struct{}) {
	defer func() {
		close(done)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("WebSocket read error", zap.Error(err))
			}
			return
		}
	}
}

// writePump drains the send channel and keeps the connection alive.
func (c *wsClient) writePump(done chan struct{}) {
	pinger := time.NewTicker(wsPingPeriod)
	defer func() {
		pinger.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-done:
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-pinger.C:
			c.conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// pollMatch snapshots the match per tick, holding only the match read lock
// for the duration of the snapshot.
func (c *wsClient) pollMatch(matchMgr *game.Manager, interval time.Duration, done chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			match, ok := matchMgr.GetMatch(c.matchID)
			if !ok {
				continue
			}

			payload, err := json.Marshal(match.View(c.playerID))
			if err != nil {
				c.logger.Error("failed to marshal match view", zap.Error(err))
				continue
			}

			select {
			case c.send <- payload:
			case <-done:
				return
			default:
				// Slow consumer; drop this tick rather than block the poll.
			}
		}
	}
}
