package model

// ProductInfo 商品信息
type ProductInfo struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"` // 保留原始字符串格式，例如 "5.99"
	Currency    string   `json:"currency"`
	Images      []string `json:"images"`
	Stock       int      `json:"stock"`

	// Specifications 规格参数，键为参数名
	Specifications map[string]string `json:"specifications"`
}

// Clone 返回商品的深拷贝
func (p ProductInfo) Clone() ProductInfo {
	out := p
	out.Images = append([]string(nil), p.Images...)
	if p.Specifications != nil {
		out.Specifications = make(map[string]string, len(p.Specifications))
		for k, v := range p.Specifications {
			out.Specifications[k] = v
		}
	}
	return out
}

// SuggestionType 回复建议类型
type SuggestionType string

const (
	SuggestionGeneral  SuggestionType = "general"
	SuggestionProduct  SuggestionType = "product"
	SuggestionPricing  SuggestionType = "pricing"
	SuggestionShipping SuggestionType = "shipping"
)

// ReplySuggestion AI 回复建议
// 每次生成都会整体替换，不做合并
type ReplySuggestion struct {
	ID      string         `json:"id"`
	Content string         `json:"content"`
	Type    SuggestionType `json:"type"`
}
