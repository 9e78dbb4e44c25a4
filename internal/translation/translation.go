// Package translation 提供离线的模拟翻译与语言检测
// 在接入真实翻译服务之前，用固定规则和固定延迟模拟接口行为
package translation

import (
	"context"
	"regexp"
	"strings"
	"time"
)

// 默认模拟延迟
const (
	DefaultTranslateLatency = 500 * time.Millisecond
	DefaultDetectLatency    = 300 * time.Millisecond
)

// DefaultLanguage 无法识别时使用的语言代码
const DefaultLanguage = "en"

// Request 翻译请求
type Request struct {
	Text           string `json:"text"`
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
}

// Response 翻译结果
type Response struct {
	TranslatedText   string `json:"translated_text"`
	DetectedLanguage string `json:"detected_language,omitempty"`
}

// rule 一条替换规则：目标语言为 target 且文本包含 phrase 时替换为 replacement
type rule struct {
	phrase      string
	target      string
	replacement string
}

// rules 按顺序匹配，第一条命中的规则生效
var rules = []rule{
	{phrase: "Hello", target: "es", replacement: "¡Hola"},
	{phrase: "Thank you", target: "es", replacement: "Gracias"},
	{phrase: "Hello", target: "fr", replacement: "Bonjour"},
	{phrase: "Thank you", target: "fr", replacement: "Merci"},
	{phrase: "Hello", target: "ja", replacement: "こんにちは"},
	{phrase: "Thank you", target: "ja", replacement: "ありがとう"},
}

// detector 语言检测规则
type detector struct {
	code    string
	pattern *regexp.Regexp
}

// detectors 的顺序会影响混合文字的检测结果，不能调整
var detectors = []detector{
	{code: "es", pattern: regexp.MustCompile(`(?i)[¿¡áéíóúüñ]`)},
	{code: "fr", pattern: regexp.MustCompile(`(?i)[àâçéèêëîïôùûüÿ]`)},
	{code: "ja", pattern: regexp.MustCompile(`[\x{3040}-\x{30ff}\x{3400}-\x{4dbf}\x{4e00}-\x{9fff}]`)},
	{code: "ar", pattern: regexp.MustCompile(`[\x{0600}-\x{06FF}]`)},
	{code: "ru", pattern: regexp.MustCompile(`[\x{0400}-\x{04FF}]`)},
}

// languageCodes 语言名称到语言代码的映射
var languageCodes = map[string]string{
	"English":    "en",
	"Spanish":    "es",
	"Japanese":   "ja",
	"French":     "fr",
	"Arabic":     "ar",
	"Russian":    "ru",
	"Chinese":    "zh",
	"German":     "de",
	"Italian":    "it",
	"Portuguese": "pt",
	"Korean":     "ko",
	"Dutch":      "nl",
	"Swedish":    "sv",
	"Polish":     "pl",
	"Turkish":    "tr",
	"Thai":       "th",
	"Vietnamese": "vi",
	"Indonesian": "id",
	"Hindi":      "hi",
	"Greek":      "el",
}

// TranslateText 不带延迟的翻译规则
func TranslateText(req Request) Response {
	if req.SourceLanguage == req.TargetLanguage {
		return Response{
			TranslatedText:   req.Text,
			DetectedLanguage: req.SourceLanguage,
		}
	}

	translated := req.Text
	for _, r := range rules {
		if r.target == req.TargetLanguage && strings.Contains(req.Text, r.phrase) {
			translated = strings.Replace(req.Text, r.phrase, r.replacement, 1)
			break
		}
	}

	return Response{
		TranslatedText:   translated,
		DetectedLanguage: req.SourceLanguage,
	}
}

// Detect 不带延迟的语言检测
func Detect(text string) string {
	for _, d := range detectors {
		if d.pattern.MatchString(text) {
			return d.code
		}
	}
	return DefaultLanguage
}

// LanguageCode 根据语言名称获取语言代码，未知名称返回 "en"
func LanguageCode(name string) string {
	if code, ok := languageCodes[name]; ok {
		return code
	}
	return DefaultLanguage
}

// Service 带模拟网络延迟的翻译服务
type Service struct {
	translateLatency time.Duration
	detectLatency    time.Duration
}

// NewService 创建翻译服务
// 参数:
//   - translateLatency: 翻译的模拟延迟，0 表示立即返回
//   - detectLatency: 语言检测的模拟延迟
func NewService(translateLatency, detectLatency time.Duration) *Service {
	return &Service{
		translateLatency: translateLatency,
		detectLatency:    detectLatency,
	}
}

// Translate 模拟调用翻译接口
func (s *Service) Translate(ctx context.Context, req Request) (*Response, error) {
	if err := wait(ctx, s.translateLatency); err != nil {
		return nil, err
	}
	resp := TranslateText(req)
	return &resp, nil
}

// DetectLanguage 模拟调用语言检测接口
func (s *Service) DetectLanguage(ctx context.Context, text string) (string, error) {
	if err := wait(ctx, s.detectLatency); err != nil {
		return "", err
	}
	return Detect(text), nil
}

// wait 等待指定时长，上下文取消时提前返回
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
