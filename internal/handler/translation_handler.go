package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"seller-workspace/internal/translation"
	"seller-workspace/pkg/response"
)

// TranslationHandler 翻译请求处理器
type TranslationHandler struct {
	translator *translation.Service
}

// NewTranslationHandler 创建 TranslationHandler 实例
func NewTranslationHandler(translator *translation.Service) *TranslationHandler {
	return &TranslationHandler{translator: translator}
}

// DetectRequest 语言检测请求
type DetectRequest struct {
	Text string `json:"text"`
}

// Translate 翻译文本
// @Router /api/v1/translate [post]
func (h *TranslationHandler) Translate(c *gin.Context) {
	var req translation.Request
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.TargetLanguage) == "" {
		response.BadRequest(c, "text and target_language are required")
		return
	}

	resp, err := h.translator.Translate(c.Request.Context(), req)
	if err != nil {
		log.Warn().Err(err).Msg("Translation aborted")
		response.ErrorWithCode(c, 503, response.CodeTranslationFailed, "translation failed")
		return
	}
	response.Success(c, resp)
}

// DetectLanguage 检测文本语言
// @Router /api/v1/detect-language [post]
func (h *TranslationHandler) DetectLanguage(c *gin.Context) {
	var req DetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	lang, err := h.translator.DetectLanguage(c.Request.Context(), req.Text)
	if err != nil {
		log.Warn().Err(err).Msg("Language detection aborted")
		response.ErrorWithCode(c, 503, response.CodeTranslationFailed, "language detection failed")
		return
	}
	response.Success(c, gin.H{"language": lang})
}

// LanguageCode 根据语言名称获取语言代码
// @Router /api/v1/languages/{name} [get]
func (h *TranslationHandler) LanguageCode(c *gin.Context) {
	name := c.Param("name")
	response.Success(c, gin.H{"name": name, "code": translation.LanguageCode(name)})
}
