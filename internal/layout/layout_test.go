package layout

import (
	"context"
	"errors"
	"math"
	"testing"

	"seller-workspace/internal/preference"
)

// failingStore 所有写入都失败的偏好存储
type failingStore struct{ preference.MemoryStore }

var errStorageFull = errors.New("storage full")

func (f *failingStore) Set(context.Context, string, string) error { return errStorageFull }

func (f *failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errStorageFull
}

func TestResizeBuyerListClamps(t *testing.T) {
	ctx := context.Background()
	prefs := preference.NewMemoryStore()
	m := NewManager(DefaultConfig(), prefs)

	deltas := []int{10, -1000, 5, 100000, -3, 1 << 30, -(1 << 30)}
	for _, d := range deltas {
		got := m.ResizeBuyerList(ctx, d).BuyerListWidth
		if got < 240 || got > 400 {
			t.Fatalf("delta %d -> width %d out of [240,400]", d, got)
		}
	}

	if got := m.ResizeBuyerList(ctx, 1000).BuyerListWidth; got != 400 {
		t.Fatalf("width = %d, want 400", got)
	}
	if got := m.ResizeBuyerList(ctx, -30).BuyerListWidth; got != 370 {
		t.Fatalf("width = %d, want 370", got)
	}
	v, ok, _ := prefs.Get(ctx, preference.KeyBuyerListWidth)
	if !ok || v != "370" {
		t.Fatalf("persisted = %q, %v", v, ok)
	}
}

func TestResizeExtremeDeltas(t *testing.T) {
	ctx := context.Background()
	m := NewManager(DefaultConfig(), preference.NewMemoryStore())

	if got := m.ResizeBuyerList(ctx, math.MaxInt).BuyerListWidth; got != 400 {
		t.Fatalf("list width = %d, want 400", got)
	}
	if got := m.ResizeBuyerList(ctx, math.MinInt).BuyerListWidth; got != 240 {
		t.Fatalf("list width = %d, want 240", got)
	}
	if got := m.ResizeBuyerInfo(ctx, math.MinInt).BuyerInfoWidth; got != 500 {
		t.Fatalf("info width = %d, want 500", got)
	}
	if got := m.ResizeBuyerInfo(ctx, math.MaxInt).BuyerInfoWidth; got != 280 {
		t.Fatalf("info width = %d, want 280", got)
	}
}

func TestResizeBuyerInfoUsesTrailingSide(t *testing.T) {
	ctx := context.Background()
	prefs := preference.NewMemoryStore()
	m := NewManager(DefaultConfig(), prefs)

	if got := m.ResizeBuyerInfo(ctx, 20).BuyerInfoWidth; got != 300 {
		t.Fatalf("width = %d, want 300", got)
	}
	if got := m.ResizeBuyerInfo(ctx, -50).BuyerInfoWidth; got != 350 {
		t.Fatalf("width = %d, want 350", got)
	}
	if got := m.ResizeBuyerInfo(ctx, 10000).BuyerInfoWidth; got != 280 {
		t.Fatalf("width = %d, want 280", got)
	}
	if got := m.ResizeBuyerInfo(ctx, -10000).BuyerInfoWidth; got != 500 {
		t.Fatalf("width = %d, want 500", got)
	}
	v, _, _ := prefs.Get(ctx, preference.KeyBuyerInfoWidth)
	if v != "500" {
		t.Fatalf("persisted = %q", v)
	}
}

func TestResizeIgnoresStorageFailure(t *testing.T) {
	m := NewManager(DefaultConfig(), &failingStore{})

	if got := m.ResizeBuyerList(context.Background(), 40).BuyerListWidth; got != 320 {
		t.Fatalf("width = %d, want 320", got)
	}
	if got := m.Restore(context.Background()).BuyerListWidth; got != 280 {
		t.Fatalf("restore on read failure = %d, want default", got)
	}
}

func TestResizeUnknownPane(t *testing.T) {
	m := NewManager(DefaultConfig(), nil)
	if _, err := m.Resize(context.Background(), Pane("chat"), 10); !errors.Is(err, ErrUnknownPane) {
		t.Fatalf("err = %v", err)
	}
	l, err := m.Resize(context.Background(), PaneBuyerInfo, 10)
	if err != nil || l.BuyerInfoWidth != 310 {
		t.Fatalf("Resize = %+v, %v", l, err)
	}
}

func TestRestore(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		list     string
		info     string
		wantList int
		wantInfo int
	}{
		{"missing", "", "", 280, 320},
		{"stored", "350", "450", 350, 450},
		{"malformed", "wide", "12px", 280, 320},
		{"out of range", "9999", "10", 400, 280},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := preference.NewMemoryStore()
			if tt.list != "" {
				_ = prefs.Set(ctx, preference.KeyBuyerListWidth, tt.list)
			}
			if tt.info != "" {
				_ = prefs.Set(ctx, preference.KeyBuyerInfoWidth, tt.info)
			}

			got := NewManager(DefaultConfig(), prefs).Restore(ctx)
			if got.BuyerListWidth != tt.wantList || got.BuyerInfoWidth != tt.wantInfo {
				t.Fatalf("restored %d/%d, want %d/%d", got.BuyerListWidth, got.BuyerInfoWidth, tt.wantList, tt.wantInfo)
			}
		})
	}
}

func TestApplyViewport(t *testing.T) {
	m := NewManager(DefaultConfig(), nil)

	tests := []struct {
		width    int
		wantList bool
		wantInfo bool
	}{
		{375, false, false},
		{767, false, false},
		{768, true, false},
		{1199, true, false},
		{1200, true, true},
		{1920, true, true},
	}
	for _, tt := range tests {
		got := m.ApplyViewport(tt.width)
		if got.ShowBuyerList != tt.wantList || got.ShowBuyerInfo != tt.wantInfo {
			t.Errorf("width %d: list=%v info=%v", tt.width, got.ShowBuyerList, got.ShowBuyerInfo)
		}
	}
}

func TestToggle(t *testing.T) {
	m := NewManager(DefaultConfig(), nil)

	l, err := m.Toggle(PaneBuyerInfo)
	if err != nil || l.ShowBuyerInfo || !l.ShowBuyerList {
		t.Fatalf("Toggle = %+v, %v", l, err)
	}
	l, _ = m.Toggle(PaneBuyerInfo)
	if !l.ShowBuyerInfo {
		t.Fatal("second toggle should restore visibility")
	}
	if _, err := m.Toggle("sidebar"); !errors.Is(err, ErrUnknownPane) {
		t.Fatalf("err = %v", err)
	}
}
