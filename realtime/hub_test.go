package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"ecommerce-server/models"

	"github.com/sirupsen/logrus"
)

type fakeStore struct {
	saved   []models.ChatMessage
	history []models.ChatMessage
	saveErr error
	loadErr error
}

func (s *fakeStore) SaveMessage(ctx context.Context, msg models.ChatMessage) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, msg)
	return nil
}

func (s *fakeStore) GetMessages(ctx context.Context) ([]models.ChatMessage, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.history, nil
}

func newTestHub(store MessageStore) *Hub {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewHub(store, log)
}

func addClient(h *Hub, id string) *Client {
	c := &Client{ID: id, hub: h, send: make(chan []byte, 16)}
	h.clients[id] = c
	return c
}

func pendingFrames(t *testing.T, c *Client) []frame {
	t.Helper()
	var frames []frame
	for {
		select {
		case raw := <-c.send:
			var f frame
			if err := json.Unmarshal(raw, &f); err != nil {
				t.Fatalf("invalid frame %s: %v", raw, err)
			}
			frames = append(frames, f)
		default:
			return frames
		}
	}
}

func TestLoginRegistersAndAnnounces(t *testing.T) {
	store := &fakeStore{history: []models.ChatMessage{{User: "old", Message: "hello"}}}
	h := newTestHub(store)
	alice := addClient(h, "conn-alice")
	bob := addClient(h, "conn-bob")

	h.handleEvent(context.Background(), Event{Kind: EventLogin, Client: alice, Name: "Alice"})

	if h.names["conn-alice"] != "Alice" {
		t.Fatalf("expected registry entry for Alice, got %q", h.names["conn-alice"])
	}

	// Bob gets the newUser announcement
	bobFrames := pendingFrames(t, bob)
	if len(bobFrames) != 1 || bobFrames[0].Event != "newUser" {
		t.Fatalf("expected one newUser frame for bob, got %+v", bobFrames)
	}
	var name string
	if err := json.Unmarshal(bobFrames[0].Data, &name); err != nil || name != "Alice" {
		t.Fatalf("expected newUser Alice, got %s", bobFrames[0].Data)
	}

	// Alice gets the history, not her own announcement
	aliceFrames := pendingFrames(t, alice)
	if len(aliceFrames) != 1 || aliceFrames[0].Event != "getMessages" {
		t.Fatalf("expected one getMessages frame for alice, got %+v", aliceFrames)
	}
	var history []models.ChatMessage
	if err := json.Unmarshal(aliceFrames[0].Data, &history); err != nil {
		t.Fatalf("invalid history payload: %v", err)
	}
	if len(history) != 1 || history[0].User != "old" {
		t.Fatalf("unexpected history %+v", history)
	}
}

func TestLoginHistoryLoadFailureIsSilent(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("mongo down")}
	h := newTestHub(store)
	alice := addClient(h, "conn-alice")

	h.handleEvent(context.Background(), Event{Kind: EventLogin, Client: alice, Name: "Alice"})

	if frames := pendingFrames(t, alice); len(frames) != 0 {
		t.Fatalf("expected no frames on failed history load, got %+v", frames)
	}
	if h.names["conn-alice"] != "Alice" {
		t.Fatal("registry entry should still be recorded")
	}
}

func TestMessageStampsBroadcastsAndPersists(t *testing.T) {
	store := &fakeStore{}
	h := newTestHub(store)
	alice := addClient(h, "conn-alice")
	bob := addClient(h, "conn-bob")

	before := time.Now()
	h.handleEvent(context.Background(), Event{Kind: EventLogin, Client: alice, Name: "Alice"})
	pendingFrames(t, alice)
	pendingFrames(t, bob)

	// Client-supplied timestamp must be overwritten
	stale := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	h.handleEvent(context.Background(), Event{
		Kind:    EventChatMessage,
		Client:  alice,
		Message: models.ChatMessage{User: "Alice", Message: "hi", Timestamp: stale},
	})

	if len(store.saved) != 1 {
		t.Fatalf("expected exactly one persisted message, got %d", len(store.saved))
	}
	if store.saved[0].Timestamp.Before(before) {
		t.Fatalf("expected server-assigned timestamp >= login time, got %v", store.saved[0].Timestamp)
	}

	// Broadcast reaches everyone including the sender
	for _, c := range []*Client{alice, bob} {
		frames := pendingFrames(t, c)
		if len(frames) != 1 || frames[0].Event != "newMessage" {
			t.Fatalf("expected one newMessage frame for %s, got %+v", c.ID, frames)
		}
		var msg models.ChatMessage
		if err := json.Unmarshal(frames[0].Data, &msg); err != nil {
			t.Fatalf("invalid message payload: %v", err)
		}
		if msg.Message != "hi" || msg.Timestamp.Equal(stale) {
			t.Fatalf("unexpected broadcast message %+v", msg)
		}
	}
}

func TestMessageWithoutLoginStillBroadcastsAndPersists(t *testing.T) {
	store := &fakeStore{}
	h := newTestHub(store)
	alice := addClient(h, "conn-alice")

	h.handleEvent(context.Background(), Event{
		Kind:    EventChatMessage,
		Client:  alice,
		Message: models.ChatMessage{User: "Ghost", Message: "boo"},
	})

	if len(store.saved) != 1 || store.saved[0].User != "Ghost" {
		t.Fatalf("expected persisted message from Ghost, got %+v", store.saved)
	}
	if frames := pendingFrames(t, alice); len(frames) != 1 || frames[0].Event != "newMessage" {
		t.Fatalf("expected newMessage broadcast, got %+v", frames)
	}
}

func TestMessageWithEmptyUserIsNotPersisted(t *testing.T) {
	store := &fakeStore{}
	h := newTestHub(store)
	alice := addClient(h, "conn-alice")

	h.handleEvent(context.Background(), Event{
		Kind:    EventChatMessage,
		Client:  alice,
		Message: models.ChatMessage{Message: "anonymous"},
	})

	if len(store.saved) != 0 {
		t.Fatalf("expected no persisted message, got %+v", store.saved)
	}
	// Delivery still happened
	if frames := pendingFrames(t, alice); len(frames) != 1 {
		t.Fatalf("expected broadcast despite missing user, got %+v", frames)
	}
}

func TestMessageSaveFailureDoesNotAffectDelivery(t *testing.T) {
	store := &fakeStore{saveErr: errors.New("mongo down")}
	h := newTestHub(store)
	alice := addClient(h, "conn-alice")

	h.handleEvent(context.Background(), Event{
		Kind:    EventChatMessage,
		Client:  alice,
		Message: models.ChatMessage{User: "Alice", Message: "hi"},
	})

	if frames := pendingFrames(t, alice); len(frames) != 1 || frames[0].Event != "newMessage" {
		t.Fatalf("expected delivery despite failed save, got %+v", frames)
	}
}

func TestProductListRelaysToAll(t *testing.T) {
	h := newTestHub(&fakeStore{})
	alice := addClient(h, "conn-alice")
	bob := addClient(h, "conn-bob")

	payload := json.RawMessage(`[{"title":"keyboard"}]`)
	h.handleEvent(context.Background(), Event{Kind: EventProductListChanged, Client: alice, Payload: payload})

	for _, c := range []*Client{alice, bob} {
		frames := pendingFrames(t, c)
		if len(frames) != 1 || frames[0].Event != "updatedProducts" {
			t.Fatalf("expected updatedProducts for %s, got %+v", c.ID, frames)
		}
		if string(frames[0].Data) != string(payload) {
			t.Fatalf("expected verbatim payload, got %s", frames[0].Data)
		}
	}
}

func TestDisconnectWithoutLoginIsSilent(t *testing.T) {
	h := newTestHub(&fakeStore{})
	alice := addClient(h, "conn-alice")
	bob := addClient(h, "conn-bob")

	h.handleEvent(context.Background(), Event{Kind: EventDisconnect, Client: alice})

	if frames := pendingFrames(t, bob); len(frames) != 0 {
		t.Fatalf("expected no broadcast for unlogged disconnect, got %+v", frames)
	}
	if _, ok := h.clients["conn-alice"]; ok {
		t.Fatal("expected client removed from hub")
	}
}

func TestDisconnectAfterLoginAnnouncesOnce(t *testing.T) {
	h := newTestHub(&fakeStore{})
	bobConn := addClient(h, "conn-bob")
	watcher := addClient(h, "conn-watcher")

	h.handleEvent(context.Background(), Event{Kind: EventLogin, Client: bobConn, Name: "Bob"})
	pendingFrames(t, watcher)

	h.handleEvent(context.Background(), Event{Kind: EventDisconnect, Client: bobConn})

	frames := pendingFrames(t, watcher)
	if len(frames) != 1 || frames[0].Event != "userDisconnect" {
		t.Fatalf("expected exactly one userDisconnect, got %+v", frames)
	}
	var name string
	if err := json.Unmarshal(frames[0].Data, &name); err != nil || name != "Bob" {
		t.Fatalf("expected userDisconnect Bob, got %s", frames[0].Data)
	}
	if _, ok := h.names["conn-bob"]; ok {
		t.Fatal("expected registry entry removed")
	}

	// A second disconnect for the same connection broadcasts nothing
	h.handleEvent(context.Background(), Event{Kind: EventDisconnect, Client: bobConn})
	if frames := pendingFrames(t, watcher); len(frames) != 0 {
		t.Fatalf("expected no broadcast on repeat disconnect, got %+v", frames)
	}
}

func TestSameNameTwiceIsAllowed(t *testing.T) {
	h := newTestHub(&fakeStore{})
	first := addClient(h, "conn-1")
	second := addClient(h, "conn-2")

	h.handleEvent(context.Background(), Event{Kind: EventLogin, Client: first, Name: "Alice"})
	h.handleEvent(context.Background(), Event{Kind: EventLogin, Client: second, Name: "Alice"})

	if h.names["conn-1"] != "Alice" || h.names["conn-2"] != "Alice" {
		t.Fatalf("expected both registry entries, got %+v", h.names)
	}
}

func TestDecodeEventVariants(t *testing.T) {
	c := &Client{ID: "conn-x"}

	ev, ok := decodeEvent(c, []byte(`{"event":"login","data":"Alice"}`))
	if !ok || ev.Kind != EventLogin || ev.Name != "Alice" {
		t.Fatalf("unexpected login event %+v ok=%v", ev, ok)
	}

	ev, ok = decodeEvent(c, []byte(`{"event":"message","data":{"user":"Alice","message":"hi"}}`))
	if !ok || ev.Kind != EventChatMessage || ev.Message.User != "Alice" {
		t.Fatalf("unexpected message event %+v ok=%v", ev, ok)
	}

	ev, ok = decodeEvent(c, []byte(`{"event":"productList","data":[1,2]}`))
	if !ok || ev.Kind != EventProductListChanged {
		t.Fatalf("unexpected productList event %+v ok=%v", ev, ok)
	}

	if _, ok := decodeEvent(c, []byte(`{"event":"unknown","data":1}`)); ok {
		t.Fatal("unknown events must be ignored")
	}
	if _, ok := decodeEvent(c, []byte(`not json`)); ok {
		t.Fatal("malformed frames must be ignored")
	}
}
