package model

// Theme 界面主题常量
const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"
)

// AISettings AI 功能设置
type AISettings struct {
	Enabled            bool     `json:"enabled"`
	AutoReply          bool     `json:"auto_reply"`
	SupportedLanguages []string `json:"supported_languages"`
	CustomPrompts      []string `json:"custom_prompts"`
	SelectedQuestions  []string `json:"selected_questions"`
}

// Clone 返回 AI 设置的深拷贝
func (s AISettings) Clone() AISettings {
	out := s
	out.SupportedLanguages = append([]string(nil), s.SupportedLanguages...)
	out.CustomPrompts = append([]string(nil), s.CustomPrompts...)
	out.SelectedQuestions = append([]string(nil), s.SelectedQuestions...)
	return out
}

// AISettingsPatch AI 设置的部分更新
// nil 字段表示不修改
type AISettingsPatch struct {
	Enabled            *bool     `json:"enabled,omitempty"`
	AutoReply          *bool     `json:"auto_reply,omitempty"`
	SupportedLanguages *[]string `json:"supported_languages,omitempty"`
	CustomPrompts      *[]string `json:"custom_prompts,omitempty"`
	SelectedQuestions  *[]string `json:"selected_questions,omitempty"`
}

// Notifications 通知开关
type Notifications struct {
	Email   bool `json:"email"`
	Browser bool `json:"browser"`
	Mobile  bool `json:"mobile"`
}

// UserSettings 用户设置
type UserSettings struct {
	Language      string        `json:"language"`
	Notifications Notifications `json:"notifications"`
	AISettings    AISettings    `json:"ai_settings"`
	Theme         string        `json:"theme"` // light / dark / system
}

// UserSettingsPatch 用户设置的部分更新（浅合并，嵌套结构整体替换）
type UserSettingsPatch struct {
	Language      *string        `json:"language,omitempty"`
	Notifications *Notifications `json:"notifications,omitempty"`
	AISettings    *AISettings    `json:"ai_settings,omitempty"`
	Theme         *string        `json:"theme,omitempty"`
}

// 沟通风格
const (
	StyleProfessional = "professional"
	StyleFriendly     = "friendly"
	StyleCasual       = "casual"
	StyleEnthusiastic = "enthusiastic"
)

// 回复长度
const (
	ReplyConcise  = "concise"
	ReplyModerate = "moderate"
	ReplyDetailed = "detailed"
)

// Question 买家诉求问题
type Question struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Enabled bool   `json:"enabled"`
}

// AutoReplyQuestion 自动回复问题开关
type AutoReplyQuestion struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// AgentSettings 客服 agent 设置页的完整状态
// 以 JSON 形式持久化在本地键值存储中
type AgentSettings struct {
	AIEnabled          bool                `json:"aiEnabled"`
	DefaultQuestions   []Question          `json:"defaultQuestions"`
	AutoReplyQuestions []AutoReplyQuestion `json:"autoReplyQuestions"`
	ResponseDelay      int                 `json:"responseDelay"` // 秒，0-60
	CommunicationStyle string              `json:"communicationStyle"`
	ReplyLength        string              `json:"replyLength"`
}

// Clone 返回设置的深拷贝
func (s AgentSettings) Clone() AgentSettings {
	out := s
	out.DefaultQuestions = append([]Question(nil), s.DefaultQuestions...)
	out.AutoReplyQuestions = append([]AutoReplyQuestion(nil), s.AutoReplyQuestions...)
	return out
}
