package conversation

import (
	"errors"
	"sync"
	"testing"
	"time"

	"nutricoach/internal/model"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *recordingPublisher) Publish(_ string, ev Event) {
	p.mu.Lock()
	p.events = append(p.events, ev)
	p.mu.Unlock()
}

func TestConversation_AppendReplace(t *testing.T) {
	pub := &recordingPublisher{}
	s := NewStore(10, time.Hour, pub)
	c := s.Get("c1")

	if err := c.ReplaceLast(model.Message{}); !errors.Is(err, ErrNoPlaceholder) {
		t.Errorf("replace on empty = %v", err)
	}

	c.Append(model.Message{ID: "u1", Origin: model.OriginUser, Text: "q"})
	c.Append(model.Message{ID: "a1", Origin: model.OriginAssistant, Text: TextAnalyzing, Pending: true})
	if err := c.ReplaceLast(model.Message{ID: "ignored", Origin: model.OriginAssistant, Text: "answer"}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	msgs := c.Messages()
	if len(msgs) != 2 {
		t.Fatalf("len = %d, want 2", len(msgs))
	}
	if msgs[1].ID != "a1" || msgs[1].Text != "answer" || msgs[1].Pending {
		t.Errorf("replaced message = %+v", msgs[1])
	}
	last, ok := c.LastAssistantMessage()
	if !ok || last.Text != "answer" {
		t.Errorf("LastAssistantMessage = %+v, %v", last, ok)
	}

	msgs[0].Text = "mutated"
	if c.Messages()[0].Text != "q" {
		t.Error("Messages must return a copy")
	}

	wantTypes := []EventType{EventAppended, EventAppended, EventReplaced}
	if len(pub.events) != len(wantTypes) {
		t.Fatalf("events = %d, want %d", len(pub.events), len(wantTypes))
	}
	for i, w := range wantTypes {
		if pub.events[i].Type != w {
			t.Errorf("event %d = %s, want %s", i, pub.events[i].Type, w)
		}
	}
}

func TestStore_PerClient(t *testing.T) {
	s := NewStore(0, 0, nil)
	a := s.Get("a")
	if s.Get("a") != a {
		t.Error("same client should get the same conversation")
	}
	a.Append(model.Message{Origin: model.OriginUser})
	if len(s.Get("b").Messages()) != 0 {
		t.Error("conversations leaked across clients")
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d", s.Len())
	}
}

func TestConversation_Acquire(t *testing.T) {
	c := NewStore(1, time.Hour, nil).Get("c")
	if !c.Acquire() {
		t.Fatal("first acquire should succeed")
	}
	if c.Acquire() {
		t.Error("second acquire should fail while busy")
	}
	c.Release()
	if !c.Acquire() {
		t.Error("acquire after release should succeed")
	}
}
