// Package settings 管理客服 agent 设置页的持久化状态
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"seller-workspace/internal/model"
	"seller-workspace/internal/preference"
)

// MaxResponseDelay 响应延迟上限（秒）
const MaxResponseDelay = 60

var (
	// ErrSaveFailed 设置无法写入存储，这是设置页唯一需要提示用户的错误
	ErrSaveFailed = errors.New("failed to save settings")
	// ErrInvalidSettings 设置内容不合法
	ErrInvalidSettings = errors.New("invalid settings")
)

// Defaults 返回默认设置
func Defaults() model.AgentSettings {
	return model.AgentSettings{
		AIEnabled: true,
		DefaultQuestions: []model.Question{
			{ID: "q1", Text: "Purchase Quantity", Enabled: true},
			{ID: "q2", Text: "Destination Country/Region", Enabled: true},
			{ID: "q3", Text: "Sample Requirements", Enabled: false},
			{ID: "q4", Text: "Budget Range", Enabled: true},
			{ID: "q5", Text: "Expected Delivery Time", Enabled: false},
			{ID: "q6", Text: "Special Packaging Requirements", Enabled: false},
			{ID: "q7", Text: "Payment Method Preference", Enabled: false},
		},
		AutoReplyQuestions: []model.AutoReplyQuestion{
			{ID: "question-1", Enabled: true},
			{ID: "question-2", Enabled: true},
			{ID: "question-3", Enabled: true},
			{ID: "question-4", Enabled: true},
			{ID: "question-5", Enabled: false},
		},
		ResponseDelay:      10,
		CommunicationStyle: model.StyleFriendly,
		ReplyLength:        model.ReplyModerate,
	}
}

// Service 读写 agent 设置
type Service struct {
	prefs preference.Store
}

// NewService 创建设置服务
func NewService(prefs preference.Store) *Service {
	return &Service{prefs: prefs}
}

// Load 读取已保存的设置
// 没有保存过、读取失败或 JSON 损坏时返回默认设置，错误只记录日志
func (s *Service) Load(ctx context.Context) model.AgentSettings {
	raw, ok, err := s.prefs.Get(ctx, preference.KeyAISettings)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read settings, using defaults")
		return Defaults()
	}
	if !ok {
		return Defaults()
	}

	loaded := Defaults()
	if err := json.Unmarshal([]byte(raw), &loaded); err != nil {
		log.Error().Err(err).Msg("Malformed settings in storage, using defaults")
		return Defaults()
	}
	log.Debug().Msg("Settings loaded from storage")
	return loaded
}

// Save 校验并保存设置
// 返回:
//   - error: 内容不合法时为 ErrInvalidSettings，写入失败时为 ErrSaveFailed
func (s *Service) Save(ctx context.Context, settings model.AgentSettings) error {
	if err := Validate(settings); err != nil {
		return err
	}

	data, err := json.Marshal(settings)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode settings")
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	if err := s.prefs.Set(ctx, preference.KeyAISettings, string(data)); err != nil {
		log.Error().Err(err).Msg("Failed to write settings")
		return fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	log.Info().Bool("ai_enabled", settings.AIEnabled).Msg("Settings saved")
	return nil
}

// Reset 删除已保存的设置并返回默认值
func (s *Service) Reset(ctx context.Context) (model.AgentSettings, error) {
	if err := s.prefs.Delete(ctx, preference.KeyAISettings); err != nil {
		log.Error().Err(err).Msg("Failed to remove settings")
		return Defaults(), fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}
	return Defaults(), nil
}

// Validate 检查枚举字段和响应延迟
func Validate(s model.AgentSettings) error {
	if s.ResponseDelay < 0 || s.ResponseDelay > MaxResponseDelay {
		return fmt.Errorf("%w: response delay %d out of [0,%d]", ErrInvalidSettings, s.ResponseDelay, MaxResponseDelay)
	}
	switch s.CommunicationStyle {
	case model.StyleProfessional, model.StyleFriendly, model.StyleCasual, model.StyleEnthusiastic:
	default:
		return fmt.Errorf("%w: communication style %q", ErrInvalidSettings, s.CommunicationStyle)
	}
	switch s.ReplyLength {
	case model.ReplyConcise, model.ReplyModerate, model.ReplyDetailed:
	default:
		return fmt.Errorf("%w: reply length %q", ErrInvalidSettings, s.ReplyLength)
	}
	return nil
}

// AddQuestion 追加一个启用状态的自定义问题
// 文本去除首尾空白后为空时原样返回，ok 为 false
func AddQuestion(s model.AgentSettings, text string) (model.AgentSettings, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return s, false
	}
	out := s.Clone()
	out.DefaultQuestions = append(out.DefaultQuestions, model.Question{
		ID:      fmt.Sprintf("q%d", len(s.DefaultQuestions)+1),
		Text:    text,
		Enabled: true,
	})
	return out, true
}

// ToggleQuestion 切换问题的启用状态，未知 ID 不做修改
func ToggleQuestion(s model.AgentSettings, id string) model.AgentSettings {
	out := s.Clone()
	for i := range out.DefaultQuestions {
		if out.DefaultQuestions[i].ID == id {
			out.DefaultQuestions[i].Enabled = !out.DefaultQuestions[i].Enabled
		}
	}
	return out
}

// ToggleAutoReply 切换自动回复问题的启用状态，未知 ID 不做修改
func ToggleAutoReply(s model.AgentSettings, id string) model.AgentSettings {
	out := s.Clone()
	for i := range out.AutoReplyQuestions {
		if out.AutoReplyQuestions[i].ID == id {
			out.AutoReplyQuestions[i].Enabled = !out.AutoReplyQuestions[i].Enabled
		}
	}
	return out
}
