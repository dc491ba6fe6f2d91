package handler

import (
	"construction-deepwiki-be/internal/pkg/logger"
	"construction-deepwiki-be/internal/pkg/serverutils"
	"construction-deepwiki-be/internal/service"
	internalWS "construction-deepwiki-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// StreamHandler upgrades browsers onto the live activity stream. The
// handshake authenticates itself instead of sitting behind the session
// middleware: a socket must never silently mint a fresh session.
type StreamHandler struct {
	sessions service.INavigationService
	hub      *internalWS.Hub
	secret   string
	logger   logger.ILogger
}

func NewStreamHandler(sessions service.INavigationService, hub *internalWS.Hub, secret string, log logger.ILogger) *StreamHandler {
	return &StreamHandler{
		sessions: sessions,
		hub:      hub,
		secret:   secret,
		logger:   log,
	}
}

// ServeWs handles websocket requests from the peer.
func (h *StreamHandler) ServeWs(c *fiber.Ctx) error {
	// 1. Get Token source
	// Priority 1: Query Param (non-browser tooling)
	tokenStr := c.Query("token")

	// Priority 2: Session cookie (browsers attach it on the handshake)
	if tokenStr == "" {
		tokenStr = c.Cookies(serverutils.SessionCookieName)
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing session token (query 'token' or session cookie)"})
	}

	// 2. Verify the token and resolve the session
	sessionId, err := serverutils.ParseSessionToken(h.secret, tokenStr)
	if err != nil {
		h.logger.Warn("StreamHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err.Error()})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid session token"})
	}

	if _, ok := h.sessions.Resolve(sessionId); !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Session expired"})
	}

	// Upgrade via Fiber WebSocket Middleware
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("StreamHandler", "Starting WebSocket session", map[string]interface{}{"session_id": sessionId})
			internalWS.ServeWs(h.hub, conn, sessionId)
			h.logger.Info("StreamHandler", "WebSocket session ended", map[string]interface{}{"session_id": sessionId})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the stream routes.
func (h *StreamHandler) RegisterRoutes(router fiber.Router) {
	stream := router.Group("/stream/v1")
	stream.Get("/ws", h.ServeWs)
}
