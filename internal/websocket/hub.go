package websocket

import (
	"construction-deepwiki-be/internal/pkg/logger"
)

// frameDelivery is one outbound frame addressed to a session.
type frameDelivery struct {
	sessionId string
	frame     []byte
}

type Hub struct {
	// Registered clients map: SessionId -> List of Clients (multi-tab)
	clients map[string][]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Outbound frames from the stream service.
	deliver chan frameDelivery

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		deliver:    make(chan frameDelivery),
		clients:    make(map[string][]*Client),
		logger:     log,
	}
}

// Run owns the clients map. Registration, removal and delivery all pass
// through this loop, so no other goroutine ever touches the map or
// closes a Send channel.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.SessionId] = append(h.clients[client.SessionId], client)
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionId})

		case client := <-h.unregister:
			h.removeClient(client)

		case d := <-h.deliver:
			h.deliverFrame(d)
		}
	}
}

// Send (StreamDelivery interface implementation): pushes one frame to
// every open socket of the session. Slow consumers are dropped rather
// than allowed to block the stream.
func (h *Hub) Send(sessionId string, frame []byte) {
	h.deliver <- frameDelivery{sessionId: sessionId, frame: frame}
}

func (h *Hub) deliverFrame(d frameDelivery) {
	clients, found := h.clients[d.sessionId]
	if !found {
		// Session has no open sockets; the dashboard polls anyway.
		return
	}

	var dropped []*Client
	for _, client := range clients {
		select {
		case client.Send <- d.frame:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping connection", map[string]interface{}{"session_id": d.sessionId})
			dropped = append(dropped, client)
		}
	}
	for _, client := range dropped {
		h.removeClient(client)
	}
}

func (h *Hub) removeClient(client *Client) {
	clients, ok := h.clients[client.SessionId]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			// Remove from slice
			h.clients[client.SessionId] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.SessionId]) == 0 {
		delete(h.clients, client.SessionId)
		h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"session_id": client.SessionId})
	}
}
