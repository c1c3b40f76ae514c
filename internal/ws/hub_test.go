package ws

import (
	"sync"
	"testing"

	"github.com/gorilla/websocket"
)

func TestHubAddAndRemoveClient(t *testing.T) {
	hub := NewHub()

	hub.AddClient(1, nil, ConnInfo{ConnID: "c1", UserID: 7})
	if len(hub.rooms) != 1 {
		t.Fatalf("expected room to be created")
	}
	if _, ok := hub.getConnInfo(1, nil); !ok {
		t.Fatalf("expected conn info to be tracked")
	}

	hub.RemoveClient(1, nil)
	if len(hub.rooms) != 0 {
		t.Fatalf("expected room to be removed")
	}
	if len(hub.connInfo) != 0 {
		t.Fatalf("expected conn info to be removed")
	}
}

func TestHubRoomConnsSnapshot(t *testing.T) {
	hub := NewHub()

	a := new(websocket.Conn)
	b := new(websocket.Conn)
	hub.AddClient(1, a, ConnInfo{ConnID: "a", UserID: 1})
	hub.AddClient(1, b, ConnInfo{ConnID: "b", UserID: 2})

	conns := hub.roomConns(1)
	if len(conns) != 2 {
		t.Fatalf("expected 2 conns, got %d", len(conns))
	}

	// mutating the room must not touch an already taken snapshot
	hub.RemoveClient(1, a)
	if len(conns) != 2 {
		t.Fatalf("snapshot changed after removal")
	}
	if len(hub.roomConns(1)) != 1 {
		t.Fatalf("expected 1 conn after removal")
	}
}

func TestHubRoomConnsDuringChurn(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				conn := new(websocket.Conn)
				hub.AddClient(1, conn, ConnInfo{ConnID: "churn", UserID: n})
				for range hub.roomConns(1) {
				}
				hub.RemoveClient(1, conn)
			}
		}(i)
	}
	wg.Wait()
}

func TestHubRemoveUnknownClient(t *testing.T) {
	hub := NewHub()

	// removing from a room that was never created must not panic
	hub.RemoveClient(99, nil)
	if len(hub.rooms) != 0 {
		t.Fatalf("expected no rooms")
	}
}
