package realtime

import (
	"encoding/json"

	"ecommerce-server/models"
)

// EventKind enumerates the closed set of channel events. Every inbound frame
// decodes into one of these variants before reaching the hub.
type EventKind int

const (
	EventLogin EventKind = iota
	EventChatMessage
	EventProductListChanged
	EventDisconnect
)

// Wire event names, client to server
const (
	inLogin       = "login"
	inMessage     = "message"
	inProductList = "productList"
)

// Wire event names, server to client
const (
	outNewUser         = "newUser"
	outGetMessages     = "getMessages"
	outNewMessage      = "newMessage"
	outUpdatedProducts = "updatedProducts"
	outUserDisconnect  = "userDisconnect"
)

// Event is a tagged channel event. Which extra field is meaningful depends
// on Kind: Name for Login, Message for ChatMessage, Payload for
// ProductListChanged. Client identifies the originating connection.
type Event struct {
	Kind    EventKind
	Client  *Client
	Name    string
	Message models.ChatMessage
	Payload json.RawMessage
}

// frame is the wire format for both directions: an event name plus payload
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// encodeFrame marshals an outbound frame. Marshal errors cannot happen for
// the payload types used here, so the result is returned directly.
func encodeFrame(event string, data interface{}) []byte {
	raw, err := json.Marshal(data)
	if err != nil {
		raw = []byte("null")
	}
	out, _ := json.Marshal(frame{Event: event, Data: raw})
	return out
}

// decodeEvent turns a raw inbound frame into a tagged event for c. It
// returns false for unknown or malformed frames, which are ignored.
func decodeEvent(c *Client, raw []byte) (Event, bool) {
	var f frame
	if err := json.Unmarshal(raw, &f); err != nil {
		return Event{}, false
	}

	switch f.Event {
	case inLogin:
		var name string
		if err := json.Unmarshal(f.Data, &name); err != nil {
			return Event{}, false
		}
		return Event{Kind: EventLogin, Client: c, Name: name}, true

	case inMessage:
		var msg models.ChatMessage
		if err := json.Unmarshal(f.Data, &msg); err != nil {
			return Event{}, false
		}
		return Event{Kind: EventChatMessage, Client: c, Message: msg}, true

	case inProductList:
		return Event{Kind: EventProductListChanged, Client: c, Payload: f.Data}, true
	}

	return Event{}, false
}
