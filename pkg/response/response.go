// Package response 提供统一的 HTTP 响应格式
// 所有 API 都使用相同的响应结构，便于前端处理
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构
// code: 业务状态码（0 表示成功）
// message: 提示信息
// data: 响应数据
type Response struct {
	Code    int         `json:"code"`           // 业务状态码
	Message string      `json:"message"`        // 提示信息
	Data    interface{} `json:"data,omitempty"` // 响应数据，可选
}

// 业务状态码定义
const (
	CodeSuccess           = 0    // 成功
	CodeBadRequest        = 1000 // 请求参数错误
	CodeNotFound          = 1003 // 资源不存在
	CodeInternalError     = 1004 // 服务器内部错误
	CodeBuyerNotFound     = 1101 // 买家不存在
	CodeProductNotFound   = 1201 // 商品不存在
	CodeSettingsInvalid   = 1301 // 设置内容不合法
	CodeSettingsSave      = 1302 // 设置保存失败
	CodeCategoryNotFound  = 1401 // 资料分类不存在
	CodeUploadRejected    = 1402 // 上传文件被拒绝
	CodeTranslationFailed = 1501 // 翻译失败
)

// Success 返回成功响应
// 参数:
//   - c: Gin 上下文
//   - data: 响应数据，可以是任意类型
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage 返回成功响应（带自定义消息）
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// Accepted 返回 202 响应
// 动作已受理，延迟效果会通过 WebSocket 事件推送
func Accepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, Response{
		Code:    CodeSuccess,
		Message: "accepted",
		Data:    data,
	})
}

// ErrorWithCode 返回错误响应（带业务状态码）
// 参数:
//   - c: Gin 上下文
//   - httpCode: HTTP 状态码
//   - bizCode: 业务状态码
//   - message: 错误信息
func ErrorWithCode(c *gin.Context, httpCode, bizCode int, message string) {
	c.JSON(httpCode, Response{
		Code:    bizCode,
		Message: message,
	})
}

// BadRequest 返回 400 错误（请求参数错误）
func BadRequest(c *gin.Context, message string) {
	ErrorWithCode(c, http.StatusBadRequest, CodeBadRequest, message)
}

// NotFound 返回 404 错误
func NotFound(c *gin.Context, bizCode int, message string) {
	ErrorWithCode(c, http.StatusNotFound, bizCode, message)
}

// InternalError 返回 500 错误
func InternalError(c *gin.Context, message string) {
	ErrorWithCode(c, http.StatusInternalServerError, CodeInternalError, message)
}
