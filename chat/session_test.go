package chat

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func echo(utterance string, history []string) string {
	return "echo: " + utterance
}

func TestNewSessionSeedsWelcome(t *testing.T) {
	s := NewSession(uuid.New())

	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("new session has %d messages, want 1", len(msgs))
	}
	if msgs[0].Role != RoleAssistant || msgs[0].Content != WelcomeMessage {
		t.Errorf("seed message = %+v, want assistant welcome", msgs[0])
	}
	if s.Pending() {
		t.Error("new session is pending")
	}
}

func TestSubmitRejectsBlank(t *testing.T) {
	s := NewSession(uuid.New())

	for _, input := range []string{"", "   ", "\n\t"} {
		if _, ok := s.Submit(input); ok {
			t.Errorf("Submit(%q) was accepted", input)
		}
	}
	if len(s.Messages()) != 1 {
		t.Errorf("blank submits changed the log: %d messages", len(s.Messages()))
	}
}

func TestSubmitWhilePendingIsNoOp(t *testing.T) {
	s := NewSession(uuid.New())

	if _, ok := s.Submit("first question"); !ok {
		t.Fatal("first submit rejected")
	}
	before := len(s.Messages())

	if _, ok := s.Submit("second question"); ok {
		t.Error("submit accepted while pending")
	}
	if len(s.Messages()) != before {
		t.Errorf("message count changed from %d to %d", before, len(s.Messages()))
	}
	if got := s.Recent(); len(got) != 1 {
		t.Errorf("history ring = %v, want only the accepted utterance", got)
	}
}

func TestExchangeOrdering(t *testing.T) {
	s := NewSession(uuid.New())

	userMsg, _ := s.Submit("how do i verify")
	reply, ok := s.Resolve(echo)
	if !ok {
		t.Fatal("Resolve was a no-op with a pending submission")
	}
	if s.Pending() {
		t.Error("session still pending after Resolve")
	}

	msgs := s.Messages()
	if len(msgs) != 3 {
		t.Fatalf("log has %d messages, want 3", len(msgs))
	}
	if msgs[1].ID != userMsg.ID || msgs[2].ID != reply.ID {
		t.Error("reply was not appended strictly after the user message")
	}
	if reply.Content != "echo: how do i verify" {
		t.Errorf("reply content = %q", reply.Content)
	}
}

func TestMessageIDsAreUUIDs(t *testing.T) {
	// The store keys messages by UUID, so every id must parse.
	s := NewSession(uuid.New())
	s.Submit("how do i verify")
	s.Resolve(echo)

	for _, msg := range s.Messages() {
		if _, err := uuid.Parse(msg.ID); err != nil {
			t.Errorf("message id %q is not a UUID: %v", msg.ID, err)
		}
	}
}

func TestResolveWithoutSubmitIsNoOp(t *testing.T) {
	s := NewSession(uuid.New())
	if _, ok := s.Resolve(echo); ok {
		t.Error("Resolve produced a reply with nothing pending")
	}
}

func TestContextExcludesTriggeringUtterance(t *testing.T) {
	s := NewSession(uuid.New())

	var seen [][]string
	capture := func(utterance string, history []string) string {
		seen = append(seen, append([]string(nil), history...))
		return "ok"
	}

	s.Submit("first")
	s.Resolve(capture)
	s.Submit("second")
	s.Resolve(capture)

	if len(seen[0]) != 0 {
		t.Errorf("first exchange saw history %v, want none", seen[0])
	}
	if !reflect.DeepEqual(seen[1], []string{"first"}) {
		t.Errorf("second exchange saw history %v, want [first]", seen[1])
	}
}

func TestRecentRingTrimsToFive(t *testing.T) {
	s := NewSession(uuid.New())

	for i := 1; i <= 7; i++ {
		s.Submit(fmt.Sprintf("utterance %d", i))
		s.Resolve(echo)
	}

	want := []string{"utterance 3", "utterance 4", "utterance 5", "utterance 6", "utterance 7"}
	if got := s.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("Recent() = %v, want %v", got, want)
	}
}

func TestReset(t *testing.T) {
	s := NewSession(uuid.New())

	for i := 0; i < 3; i++ {
		s.Submit(fmt.Sprintf("question %d", i))
		s.Resolve(echo)
	}

	s.Reset()

	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("reset left %d messages, want 1", len(msgs))
	}
	if msgs[0].Content != WelcomeMessage {
		t.Errorf("reset seed = %q, want the welcome message", msgs[0].Content)
	}
	if len(s.Recent()) != 0 {
		t.Errorf("reset left history ring %v", s.Recent())
	}
	if s.Pending() {
		t.Error("reset left session pending")
	}
}

func TestResetWhilePending(t *testing.T) {
	s := NewSession(uuid.New())

	s.Submit("stuck question")
	s.Reset()

	if s.Pending() {
		t.Error("reset did not clear the pending gate")
	}
	if _, ok := s.Submit("fresh question"); !ok {
		t.Error("submit rejected after reset")
	}
}

func TestHydrate(t *testing.T) {
	s := NewSession(uuid.New())

	var history []Message
	history = append(history, Message{ID: uuid.New().String(), Role: RoleAssistant, Content: WelcomeMessage})
	for i := 1; i <= 6; i++ {
		history = append(history,
			Message{ID: uuid.New().String(), Role: RoleUser, Content: fmt.Sprintf("q%d", i)},
			Message{ID: uuid.New().String(), Role: RoleAssistant, Content: fmt.Sprintf("a%d", i)},
		)
	}
	s.Hydrate(history)

	if len(s.Messages()) != len(history) {
		t.Errorf("hydrated %d messages, want %d", len(s.Messages()), len(history))
	}
	want := []string{"q2", "q3", "q4", "q5", "q6"}
	if got := s.Recent(); !reflect.DeepEqual(got, want) {
		t.Errorf("Recent() = %v, want %v", got, want)
	}

	// Empty logs reseed the welcome message.
	s.Hydrate(nil)
	if len(s.Messages()) != 1 || s.Messages()[0].Content != WelcomeMessage {
		t.Errorf("empty hydrate did not reseed: %v", s.Messages())
	}
}
