package service

import (
	"context"
	"encoding/json"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/pkg/logger"
	"construction-deepwiki-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// StreamDelivery defines how to push real-time frames.
// Typically implemented by the WebSocket Hub.
type StreamDelivery interface {
	Send(sessionId string, frame []byte)
}

// StreamService forwards activity events from the bus to the sockets of
// the session that produced them. Sessions only ever see their own
// events.
type StreamService struct {
	pubSub   *gochannel.GoChannel
	delivery StreamDelivery
	logger   logger.ILogger
}

func NewStreamService(pubSub *gochannel.GoChannel, delivery StreamDelivery, log logger.ILogger) *StreamService {
	return &StreamService{
		pubSub:   pubSub,
		delivery: delivery,
		logger:   log,
	}
}

// Start begins listening to the activity topic.
func (s *StreamService) Start(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, constant.TopicActivityEvents)
	if err != nil {
		s.logger.Error("StreamService", "Failed to subscribe to activity events", map[string]interface{}{"error": err})
		return err
	}

	go func() {
		for msg := range messages {
			s.handleMessage(msg)
		}
	}()

	s.logger.Info("StreamService", "Stream service started, forwarding activity events", nil)
	return nil
}

// handleMessage routes one event frame. The raw payload goes out as-is:
// it is already the JSON envelope browsers expect.
func (s *StreamService) handleMessage(msg *message.Message) {
	var event events.BaseEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.logger.Warn("StreamService", "Dropping malformed stream event", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	sessionId := events.SessionId(event)
	if sessionId == "" {
		s.logger.Warn("StreamService", "Stream event without session_id", map[string]interface{}{"type": event.EventType()})
		msg.Ack()
		return
	}

	if s.delivery != nil {
		s.delivery.Send(sessionId, msg.Payload)
	}
	msg.Ack()
}
