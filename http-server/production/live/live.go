package live

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"shopfloor/internal/service/board"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin проверяет CORS и токен
	CheckOrigin: func(r *http.Request) bool { return true },
}

type SnapshotSource interface {
	Snapshot() board.Snapshot
	Subscribe() (<-chan board.Snapshot, func())
}

// Live отдаёт по websocket текущий снимок доски, затем по снимку на каждый тик.
func Live(log *slog.Logger, src SnapshotSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.production.live.Live"

		log := log.With(slog.String("op", op), slog.String("request_id", middleware.GetReqID(r.Context())))

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade уже ответил клиенту
			log.Warn("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}
		defer conn.Close()

		snapshots, unsubscribe := src.Subscribe()
		defer unsubscribe()

		closed := make(chan struct{})
		go readPump(conn, closed)

		log.Debug("live feed connected")

		if err := write(conn, src.Snapshot()); err != nil {
			return
		}

		ping := time.NewTicker(pingPeriod)
		defer ping.Stop()

		for {
			select {
			case snap, ok := <-snapshots:
				if !ok {
					return
				}
				if err := write(conn, snap); err != nil {
					log.Debug("live feed write failed", slog.String("error", err.Error()))
					return
				}
			case <-ping.C:
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case <-closed:
				log.Debug("live feed disconnected")
				return
			case <-r.Context().Done():
				return
			}
		}
	}
}

func write(conn *websocket.Conn, snap board.Snapshot) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(snap)
}

// readPump нужен только для pong и закрытия соединения клиентом.
func readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
