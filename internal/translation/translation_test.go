package translation

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestTranslateTextSameLanguage(t *testing.T) {
	resp := TranslateText(Request{Text: "Hello there", SourceLanguage: "en", TargetLanguage: "en"})
	if resp.TranslatedText != "Hello there" {
		t.Fatalf("expected passthrough, got %q", resp.TranslatedText)
	}
	if resp.DetectedLanguage != "en" {
		t.Fatalf("expected detected language en, got %q", resp.DetectedLanguage)
	}
}

func TestTranslateTextRules(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		target string
		want   string
	}{
		{"spanish hello", "Hello friend", "es", "¡Hola friend"},
		{"spanish thanks", "Thank you!", "es", "Gracias!"},
		{"french hello", "Hello", "fr", "Bonjour"},
		{"french thanks", "Thank you", "fr", "Merci"},
		{"japanese hello", "Hello", "ja", "こんにちは"},
		{"japanese thanks", "Thank you", "ja", "ありがとう"},
		{"first rule wins", "Hello and Thank you", "es", "¡Hola and Thank you"},
		{"only first occurrence", "Hello Hello", "fr", "Bonjour Hello"},
		{"unknown target", "Hello", "de", "Hello"},
		{"no phrase", "Good morning", "es", "Good morning"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := TranslateText(Request{Text: tt.text, SourceLanguage: "en", TargetLanguage: tt.target})
			if resp.TranslatedText != tt.want {
				t.Errorf("got %q, want %q", resp.TranslatedText, tt.want)
			}
			if resp.DetectedLanguage != "en" {
				t.Errorf("detected language = %q, want en", resp.DetectedLanguage)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"¿Cuándo puedes enviar los productos?", "es"},
		{"Pouvez-vous offrir un échantillon gratuit?", "es"}, // é 同时命中西语规则
		{"Ça va", "fr"},
		{"製品の品質証明書を送ってください。", "ja"},
		{"你好", "ja"},
		{"هل يمكنك تقديم خصم", "ar"},
		{"Какие способы оплаты", "ru"},
		{"Hello", "en"},
		{"", "en"},
		{"Привет ñ", "es"},
	}

	for _, tt := range tests {
		if got := Detect(tt.text); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestLanguageCode(t *testing.T) {
	if got := LanguageCode("Spanish"); got != "es" {
		t.Errorf("Spanish -> %q", got)
	}
	if got := LanguageCode("Greek"); got != "el" {
		t.Errorf("Greek -> %q", got)
	}
	if got := LanguageCode("Klingon"); got != "en" {
		t.Errorf("unknown -> %q", got)
	}
}

func TestServiceLatencyAndCancel(t *testing.T) {
	svc := NewService(0, 0)
	resp, err := svc.Translate(context.Background(), Request{Text: "Hello", SourceLanguage: "en", TargetLanguage: "fr"})
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if resp.TranslatedText != "Bonjour" {
		t.Fatalf("got %q", resp.TranslatedText)
	}

	slow := NewService(time.Hour, time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := slow.DetectLanguage(ctx, "Hola"); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
