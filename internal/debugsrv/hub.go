// internal/debugsrv/hub.go
package debugsrv

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go-beastfight/internal/app"

	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub рассылает свежие снимки матча всем подключённым зрителям.
// Медленный зритель отключается, матч его не ждёт.
type Hub struct {
	source   SnapshotSource
	interval time.Duration
	logger   *log.Logger

	clients    map[*client]struct{}
	register   chan *client
	unregister chan *client
	done       chan struct{}
}

func NewHub(source SnapshotSource, interval time.Duration, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		source:     source,
		interval:   interval,
		logger:     logger,
		clients:    make(map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run крутит рассылку до отмены ctx. Вызывается один раз.
func (h *Hub) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	defer func() {
		close(h.done)
		for c := range h.clients {
			close(c.send)
		}
	}()

	var last *app.Snapshot
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Printf("[DEBUG] Spectator connected (%d online)", len(h.clients))
			if data := h.encode(h.source.Snapshot()); data != nil {
				h.deliver(c, data)
			}
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.logger.Printf("[DEBUG] Spectator disconnected (%d online)", len(h.clients))
			}
		case <-ticker.C:
			snap := h.source.Snapshot()
			if snap == nil || snap == last {
				continue
			}
			last = snap
			data := h.encode(snap)
			if data == nil {
				continue
			}
			for c := range h.clients {
				h.deliver(c, data)
			}
		}
	}
}

// deliver кладёт сообщение в очередь клиента или отключает его, если очередь полна.
func (h *Hub) deliver(c *client, data []byte) {
	select {
	case c.send <- data:
	default:
		delete(h.clients, c)
		close(c.send)
		h.logger.Printf("[DEBUG] Dropping slow spectator")
	}
}

func (h *Hub) encode(snap *app.Snapshot) []byte {
	if snap == nil {
		return nil
	}
	data, err := json.Marshal(snap)
	if err != nil {
		h.logger.Printf("WARNING: failed to encode snapshot: %v", err)
		return nil
	}
	return data
}

// HandleWS поднимает websocket и подписывает зрителя на ленту.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Println("Debug feed upgrade error:", err)
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 16)}

	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go h.writePump(c)
	go h.readPump(c)
}

// readPump только ждёт закрытия соединения, входящие сообщения игнорируются.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()
	for message := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
