package store

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"seller-workspace/internal/model"
)

// MaxSuggestions 一次生成的回复建议上限
const MaxSuggestions = 4

// buildSuggestions 根据买家资料生成回复建议
// 只依赖买家资料，不读取历史消息
func buildSuggestions(buyer model.Buyer) []model.ReplySuggestion {
	info := buyer.PurchaseInfo
	suggestions := make([]model.ReplySuggestion, 0, MaxSuggestions)

	if len(info.Products) > 0 {
		suggestions = append(suggestions, model.ReplySuggestion{
			ID: newSuggestionID(model.SuggestionProduct),
			Content: fmt.Sprintf("We have %s available in stock. I can provide detailed specifications and customization options if you're interested.",
				strings.Join(info.Products, ", ")),
			Type: model.SuggestionProduct,
		})
	}

	suggestions = append(suggestions,
		model.ReplySuggestion{
			ID: newSuggestionID(model.SuggestionPricing),
			Content: fmt.Sprintf("For your order quantity of %d units, we can offer a competitive price within your budget of %s. Would you like me to send you a detailed quotation?",
				info.Quantity, info.Budget),
			Type: model.SuggestionPricing,
		},
		model.ReplySuggestion{
			ID: newSuggestionID(model.SuggestionShipping),
			Content: fmt.Sprintf("We can ship to %s within 15-20 days via sea freight, or 5-7 days via air freight. Would you prefer faster delivery or more economical shipping?",
				info.DestinationCountry),
			Type: model.SuggestionShipping,
		},
		model.ReplySuggestion{
			ID:      newSuggestionID(model.SuggestionGeneral),
			Content: "Thank you for your interest in our products. We're a professional manufacturer with over 10 years of experience. How can I assist you further with your requirements?",
			Type:    model.SuggestionGeneral,
		},
	)

	return suggestions
}

// newSuggestionID 生成建议 ID，随机部分保证同一批次内不重复
func newSuggestionID(t model.SuggestionType) string {
	return "sug-" + string(t) + "-" + uuid.NewString()
}

func newAttachmentID() string {
	return "att-" + uuid.NewString()
}
