package service

import (
	"errors"
	"testing"
	"time"

	"seller-workspace/internal/model"
	"seller-workspace/internal/store"
)

// newTestService 延迟设置得足够长，测试期间不会有定时任务触发
func newTestService(t *testing.T) *WorkspaceService {
	t.Helper()
	st := store.New(store.WithDelays(time.Hour, time.Hour))
	t.Cleanup(st.Stop)
	return NewWorkspaceService(st)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw     string
		want    model.BuyerLevel
		wantErr bool
	}{
		{"", model.BuyerLevelAll, false},
		{"all", model.BuyerLevelAll, false},
		{"important", model.BuyerLevelImportant, false},
		{"spam", model.BuyerLevelSpam, false},
		{"vip", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) err = %v", tt.raw, err)
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidLevel) {
			t.Fatalf("ParseLevel(%q) err = %v, want ErrInvalidLevel", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLevel(%q) = %q", tt.raw, got)
		}
	}
}

func TestListBuyers(t *testing.T) {
	svc := newTestService(t)

	all := svc.ListBuyers("", model.BuyerLevelAll)
	if len(all) != 5 {
		t.Fatalf("buyers = %d", len(all))
	}
	if !all[0].Selected || all[1].Selected {
		t.Fatal("first buyer should be selected initially")
	}
	if all[0].Flag != "🇲🇽" || all[0].Level != model.BuyerLevelImportant {
		t.Fatalf("view = %+v", all[0])
	}
	if spam := svc.ListBuyers("", model.BuyerLevelSpam); len(spam) != 1 || spam[0].ID != "4" {
		t.Fatalf("spam = %+v", spam)
	}
}

func TestGetBuyer(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.GetBuyer("42"); !errors.Is(err, ErrBuyerNotFound) {
		t.Fatalf("err = %v", err)
	}
	b, err := svc.GetBuyer("2")
	if err != nil || b.Name != "Hiroshi Tanaka" || b.Selected {
		t.Fatalf("GetBuyer = %+v, %v", b, err)
	}
}

func TestSendMessageSnapshot(t *testing.T) {
	svc := newTestService(t)

	snap, err := svc.SelectBuyer("3")
	if err != nil {
		t.Fatalf("SelectBuyer: %v", err)
	}
	if snap.SelectedBuyerID != "3" || snap.Buyer == nil || snap.Buyer.UnreadCount != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}

	snap, err = svc.SendMessage("Bonjour")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if len(snap.Messages) != 1 {
		t.Fatalf("messages = %d", len(snap.Messages))
	}
	m := snap.Messages[0]
	if m.Align != model.AlignRight || m.Label != "You" {
		t.Fatalf("rendered = %+v", m)
	}
}

func TestSendProductSnapshot(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Product("nope"); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("err = %v", err)
	}

	snap, _ := svc.SendProduct("p002")
	if len(snap.Messages) != 1 || snap.Messages[0].Attachments[0].ProductInfo.ID != "p002" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestRenderMessageRejectsUnknownSender(t *testing.T) {
	_, err := RenderMessage(model.Message{ID: "x", SenderType: "robot"})
	if err == nil {
		t.Fatal("expected error for unknown sender type")
	}

	tests := map[model.SenderType]model.BubbleAlign{
		model.SenderBuyer:  model.AlignLeft,
		model.SenderSeller: model.AlignRight,
		model.SenderSystem: model.AlignCenter,
		model.SenderAI:     model.AlignRight,
	}
	for sender, want := range tests {
		v, err := RenderMessage(model.Message{SenderType: sender})
		if err != nil || v.Align != want {
			t.Errorf("%s: align = %q, err = %v", sender, v.Align, err)
		}
	}
}

func TestGenerateSuggestions(t *testing.T) {
	svc := newTestService(t)

	got := svc.GenerateSuggestions()
	if len(got) != store.MaxSuggestions {
		t.Fatalf("suggestions = %d", len(got))
	}
	snap, _ := svc.SendSuggestion(got[3].ID)
	if len(snap.Messages) != 1 || snap.Messages[0].Content != got[3].Content {
		t.Fatalf("snapshot = %+v", snap)
	}
}
