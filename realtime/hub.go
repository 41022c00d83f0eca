package realtime

import (
	"context"
	"time"

	"ecommerce-server/models"

	"github.com/sirupsen/logrus"
)

// MessageStore persists chat history
type MessageStore interface {
	SaveMessage(ctx context.Context, msg models.ChatMessage) error
	GetMessages(ctx context.Context) ([]models.ChatMessage, error)
}

// Hub tracks connected clients and the registry mapping connection ids to
// display names. All state is owned by the Run goroutine; clients and
// handlers talk to it only through the register and events channels, so no
// locking is needed.
type Hub struct {
	clients  map[string]*Client
	names    map[string]string
	register chan *Client
	events   chan Event
	store    MessageStore
	log      *logrus.Logger
	now      func() time.Time
}

// NewHub creates a hub backed by the given message store
func NewHub(store MessageStore, log *logrus.Logger) *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		names:    make(map[string]string),
		register: make(chan *Client),
		events:   make(chan Event, 64),
		store:    store,
		log:      log,
		now:      time.Now,
	}
}

// Run processes registrations and channel events until ctx is cancelled
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client.ID] = client
			h.log.WithField("connection", client.ID).Info("client connected")

		case ev := <-h.events:
			h.handleEvent(ctx, ev)

		case <-ctx.Done():
			for _, client := range h.clients {
				close(client.send)
			}
			h.clients = make(map[string]*Client)
			h.names = make(map[string]string)
			return
		}
	}
}

func (h *Hub) handleEvent(ctx context.Context, ev Event) {
	switch ev.Kind {
	case EventLogin:
		h.handleLogin(ctx, ev.Client, ev.Name)
	case EventChatMessage:
		h.handleChatMessage(ctx, ev.Message)
	case EventProductListChanged:
		h.broadcast(encodeFrame(outUpdatedProducts, ev.Payload))
	case EventDisconnect:
		h.handleDisconnect(ev.Client)
	}
}

// handleLogin records the registry entry, announces the user to everyone
// else and replies with the full chat history to the requester only.
func (h *Hub) handleLogin(ctx context.Context, c *Client, name string) {
	h.names[c.ID] = name
	h.log.WithFields(logrus.Fields{"connection": c.ID, "user": name}).Info("user logged in")

	h.broadcastExcept(c, encodeFrame(outNewUser, name))

	messages, err := h.store.GetMessages(ctx)
	if err != nil {
		// The client simply gets no history this session.
		h.log.WithError(err).Error("error loading the chats")
		return
	}
	h.deliver(c, encodeFrame(outGetMessages, messages))
}

// handleChatMessage stamps the server timestamp, fans the message out to all
// clients including the sender, then persists it. Delivery is never rolled
// back on a failed save.
func (h *Hub) handleChatMessage(ctx context.Context, msg models.ChatMessage) {
	msg.Timestamp = h.now()

	h.broadcast(encodeFrame(outNewMessage, msg))

	if msg.User == "" {
		h.log.Warn("chat message without user field, not persisted")
		return
	}
	if err := h.store.SaveMessage(ctx, msg); err != nil {
		h.log.WithError(err).Error("error saving the chats")
	}
}

// handleDisconnect drops the connection and, if it ever logged in, removes
// the registry entry and announces the departure.
func (h *Hub) handleDisconnect(c *Client) {
	if _, ok := h.clients[c.ID]; ok {
		delete(h.clients, c.ID)
		close(c.send)
	}

	name, ok := h.names[c.ID]
	if !ok {
		return
	}
	delete(h.names, c.ID)
	h.log.WithFields(logrus.Fields{"connection": c.ID, "user": name}).Info("user disconnected")
	h.broadcast(encodeFrame(outUserDisconnect, name))
}

// broadcast sends a frame to every connected client
func (h *Hub) broadcast(message []byte) {
	for _, client := range h.clients {
		h.deliver(client, message)
	}
}

// broadcastExcept sends a frame to every connected client but the sender
func (h *Hub) broadcastExcept(sender *Client, message []byte) {
	for _, client := range h.clients {
		if client.ID == sender.ID {
			continue
		}
		h.deliver(client, message)
	}
}

// deliver writes to the client's send channel without blocking; a client
// that cannot keep up is dropped.
func (h *Hub) deliver(c *Client, message []byte) {
	select {
	case c.send <- message:
	default:
		if _, ok := h.clients[c.ID]; ok {
			delete(h.clients, c.ID)
			delete(h.names, c.ID)
			close(c.send)
			h.log.WithField("connection", c.ID).Warn("dropping slow client")
		}
	}
}
