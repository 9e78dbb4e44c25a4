package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"seller-workspace/internal/handler"
	"seller-workspace/internal/layout"
	"seller-workspace/internal/preference"
	"seller-workspace/internal/resource"
	"seller-workspace/internal/service"
	"seller-workspace/internal/settings"
	"seller-workspace/internal/store"
	"seller-workspace/internal/translation"
	"seller-workspace/pkg/response"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.WithDelays(time.Hour, time.Hour))
	t.Cleanup(st.Stop)
	prefs := preference.NewMemoryStore()
	workspace := service.NewWorkspaceService(st)

	r := gin.New()
	handler.RegisterRoutes(r, &handler.Handlers{
		Buyer:       handler.NewBuyerHandler(workspace),
		Message:     handler.NewMessageHandler(workspace),
		Suggestion:  handler.NewSuggestionHandler(workspace),
		Settings:    handler.NewSettingsHandler(st, settings.NewService(prefs)),
		Translation: handler.NewTranslationHandler(translation.NewService(0, 0)),
		Layout:      handler.NewLayoutHandler(layout.NewManager(layout.DefaultConfig(), prefs), nil),
		Resource:    handler.NewResourceHandler(resource.NewLibrary()),
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL + "/")
}

func TestConversationFlow(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	buyers, err := c.ListBuyers(ctx, "", "spam")
	if err != nil {
		t.Fatalf("ListBuyers: %v", err)
	}
	if len(buyers) != 1 || buyers[0].ID != "4" {
		t.Fatalf("spam buyers = %+v", buyers)
	}

	snap, err := c.SelectBuyer(ctx, "4")
	if err != nil {
		t.Fatalf("SelectBuyer: %v", err)
	}
	if snap.SelectedBuyerID != "4" {
		t.Fatalf("selected = %q", snap.SelectedBuyerID)
	}

	if _, err := c.SendMessage(ctx, "Hello"); err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	snap, err = c.SendProduct(ctx, "p001")
	if err != nil {
		t.Fatalf("SendProduct: %v", err)
	}
	if len(snap.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(snap.Messages))
	}

	msgs, err := c.Messages(ctx, "4")
	if err != nil {
		t.Fatalf("Messages: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Label != "You" {
		t.Fatalf("conversation = %+v", msgs)
	}
}

func TestSuggestionsRoundTrip(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	sugs, err := c.Suggestions(ctx, true)
	if err != nil || len(sugs) == 0 {
		t.Fatalf("Suggestions = %v, %v", sugs, err)
	}
	snap, err := c.SendSuggestion(ctx, sugs[len(sugs)-1].ID)
	if err != nil {
		t.Fatalf("SendSuggestion: %v", err)
	}
	if len(snap.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(snap.Messages))
	}
}

func TestAPIErrors(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	_, err := c.Product(ctx, "p999")
	if !IsCode(err, response.CodeProductNotFound) {
		t.Fatalf("err = %v, want product not found", err)
	}

	snap, err := c.SendProduct(ctx, "p999")
	if err != nil {
		t.Fatalf("SendProduct unknown id: %v", err)
	}
	if len(snap.Messages) != 0 {
		t.Fatalf("messages = %d, want 0", len(snap.Messages))
	}

	_, err = c.ListBuyers(ctx, "", "vip")
	if !IsCode(err, response.CodeBadRequest) {
		t.Fatalf("err = %v, want bad request", err)
	}
}

func TestTranslateAndSettings(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	tr, err := c.Translate(ctx, translation.Request{Text: "Thank you", SourceLanguage: "en", TargetLanguage: "ja"})
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if tr.TranslatedText != "ありがとう" {
		t.Fatalf("translated = %q", tr.TranslatedText)
	}

	s, err := c.AgentSettings(ctx)
	if err != nil {
		t.Fatalf("AgentSettings: %v", err)
	}
	if s.CommunicationStyle != "friendly" {
		t.Fatalf("style = %q", s.CommunicationStyle)
	}

	s, err = c.ResetAgentSettings(ctx)
	if err != nil || s.ResponseDelay != 10 {
		t.Fatalf("ResetAgentSettings = %+v, %v", s, err)
	}
}
