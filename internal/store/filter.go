package store

import (
	"strings"

	"seller-workspace/internal/model"
)

// buyerLevels 买家等级，未列出的买家为普通买家
var buyerLevels = map[string]model.BuyerLevel{
	"1": model.BuyerLevelImportant,
	"3": model.BuyerLevelImportant,
	"4": model.BuyerLevelSpam,
}

// BuyerLevelOf 返回买家的等级
func BuyerLevelOf(buyerID string) model.BuyerLevel {
	if level, ok := buyerLevels[buyerID]; ok {
		return level
	}
	return model.BuyerLevelAll
}

// FilterBuyers 按搜索词和等级筛选买家
// 搜索词对姓名和国家做不区分大小写的包含匹配；level 为空或 all 时不按等级过滤
func (s *Store) FilterBuyers(term string, level model.BuyerLevel) []model.Buyer {
	needle := strings.ToLower(term)

	out := make([]model.Buyer, 0)
	for _, b := range s.Buyers() {
		matchesSearch := strings.Contains(strings.ToLower(b.Name), needle) ||
			strings.Contains(strings.ToLower(b.Country), needle)
		matchesLevel := level == "" || level == model.BuyerLevelAll || BuyerLevelOf(b.ID) == level
		if matchesSearch && matchesLevel {
			out = append(out, b)
		}
	}
	return out
}

// CountryFlag 把两位国家代码转换为国旗 emoji
func CountryFlag(countryCode string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(countryCode) {
		if r < 'A' || r > 'Z' {
			return ""
		}
		sb.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return sb.String()
}
