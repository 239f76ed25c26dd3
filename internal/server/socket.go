package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vukan322/rustkit/internal/i18n"
	"github.com/vukan322/rustkit/internal/lookup"
)

const socketWriteWait = 10 * time.Second

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

type socketRequest struct {
	Player string `json:"player"`
}

// statsSocket runs a lookup session over a websocket. Every message starts a
// lookup; only results that are still the newest submission are pushed.
func (h *handlers) statsSocket(w http.ResponseWriter, r *http.Request) {
	p := i18n.Printer(i18n.ResolveTag(r))
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	session := lookup.NewSession(h.resolver, func(res lookup.Result) {
		_ = conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
		if err := conn.WriteJSON(newLookupResponse(res, p)); err != nil {
			h.logger.Printf("websocket write %s: %v", res.ID, err)
		}
	})

	// Lookups still in flight when the client goes away are cancelled before
	// the handler waits for them.
	var inflight sync.WaitGroup
	defer func() {
		session.Close()
		cancel()
		inflight.Wait()
	}()

	for {
		var req socketRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Printf("websocket read: %v", err)
			}
			return
		}
		inflight.Add(1)
		go func(player string) {
			defer inflight.Done()
			session.Submit(ctx, player)
		}(req.Player)
	}
}
