package resource

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MaxFileSize 单个文件大小上限（10MB）
const MaxFileSize = 10 * 1024 * 1024

// AllowedTypes 允许上传的 MIME 类型
var AllowedTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"application/vnd.ms-powerpoint",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation",
	"image/jpeg",
	"image/png",
	"image/gif",
	"text/plain",
	"application/zip",
	"application/x-rar-compressed",
}

var allowedTypes = func() map[string]bool {
	m := make(map[string]bool, len(AllowedTypes))
	for _, t := range AllowedTypes {
		m[t] = true
	}
	return m
}()

// RejectReason 文件被拒绝的原因
type RejectReason string

const (
	ReasonTooLarge    RejectReason = "too_large"
	ReasonUnsupported RejectReason = "unsupported_type"
	ReasonDuplicate   RejectReason = "duplicate"
)

// FileMeta 待上传文件的元信息
type FileMeta struct {
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	MIMEType string `json:"mime_type"`
}

// Rejection 被拒绝的文件
type Rejection struct {
	Name   string       `json:"name"`
	Reason RejectReason `json:"reason"`
}

// Error 实现 error，便于直接展示给用户
func (r Rejection) Error() string {
	switch r.Reason {
	case ReasonTooLarge:
		return fmt.Sprintf("file %q exceeds the size limit (10MB)", r.Name)
	case ReasonUnsupported:
		return fmt.Sprintf("file %q has an unsupported type", r.Name)
	case ReasonDuplicate:
		return fmt.Sprintf("file %q has already been added", r.Name)
	default:
		return fmt.Sprintf("file %q rejected", r.Name)
	}
}

// IsAllowedType MIME 类型是否在白名单内
func IsAllowedType(mimeType string) bool {
	return allowedTypes[mimeType]
}

// Validate 按大小、类型、重名的顺序检查 incoming
// pending 是已经加入列表的文件，同一批次内的重名也会被拒绝
func Validate(pending, incoming []FileMeta) ([]FileMeta, []Rejection) {
	seen := make(map[string]bool, len(pending)+len(incoming))
	for _, f := range pending {
		seen[f.Name] = true
	}

	var accepted []FileMeta
	var rejected []Rejection
	for _, f := range incoming {
		switch {
		case f.Size > MaxFileSize:
			rejected = append(rejected, Rejection{Name: f.Name, Reason: ReasonTooLarge})
		case !IsAllowedType(f.MIMEType):
			rejected = append(rejected, Rejection{Name: f.Name, Reason: ReasonUnsupported})
		case seen[f.Name]:
			rejected = append(rejected, Rejection{Name: f.Name, Reason: ReasonDuplicate})
		default:
			seen[f.Name] = true
			accepted = append(accepted, f)
		}
	}
	return accepted, rejected
}

// FileKind 按扩展名划分的文件类别，用于选择图标
type FileKind string

const (
	KindPDF        FileKind = "pdf"
	KindWord       FileKind = "word"
	KindExcel      FileKind = "excel"
	KindPowerPoint FileKind = "powerpoint"
	KindImage      FileKind = "image"
	KindOther      FileKind = "other"
)

// KindOf 根据文件名扩展名返回文件类别
func KindOf(fileName string) FileKind {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), ".")) {
	case "pdf":
		return KindPDF
	case "doc", "docx":
		return KindWord
	case "xls", "xlsx":
		return KindExcel
	case "ppt", "pptx":
		return KindPowerPoint
	case "jpg", "jpeg", "png", "gif":
		return KindImage
	default:
		return KindOther
	}
}

// FormatSize 格式化文件大小，例如 "512 B"、"1.50 KB"、"2.00 MB"
func FormatSize(bytes int64) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
	}
}
