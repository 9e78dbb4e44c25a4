// Package mock 提供工作台的种子数据
// 每次调用都返回新的副本，调用方可以放心修改
package mock

import (
	"time"

	"seller-workspace/internal/model"
)

// Buyers 返回五个来自不同国家的种子买家
func Buyers() []model.Buyer {
	return []model.Buyer{
		{
			ID:              "1",
			Name:            "Carlos Rodriguez",
			Avatar:          "/avatars/buyer1.jpg",
			Country:         "Mexico",
			CountryCode:     "MX",
			Language:        "Spanish",
			LastMessage:     "¿Cuándo puedes enviar los productos?",
			LastMessageTime: localTime(2023, 5, 15, 10, 30),
			UnreadCount:     3,
			PurchaseInfo: model.PurchaseInfo{
				Products:           []string{"Phone Cases", "Headphones", "Chargers"},
				Quantity:           1000,
				DestinationCountry: "Mexico",
				Budget:             "$5000",
			},
			CommunicationFocus: []string{
				"High quality requirements",
				"Concerned about delivery time",
				"Seeking exclusive distribution rights",
			},
			Status:        model.BuyerStatusActive,
			Online:        true,
			OrderCount:    5,
			TotalSpent:    4850,
			CustomerSince: "Jan 2023",
		},
		{
			ID:              "2",
			Name:            "Hiroshi Tanaka",
			Avatar:          "/avatars/buyer2.jpg",
			Country:         "Japan",
			CountryCode:     "JP",
			Language:        "Japanese",
			LastMessage:     "製品の品質証明書を送ってください。",
			LastMessageTime: localTime(2023, 5, 14, 16, 45),
			UnreadCount:     0,
			PurchaseInfo: model.PurchaseInfo{
				Products:           []string{"Smart Watches", "Bluetooth Speakers"},
				Quantity:           500,
				DestinationCountry: "Japan",
				Budget:             "$8000",
			},
			CommunicationFocus: []string{
				"Extremely focused on product quality",
				"Needs detailed specifications",
				"High packaging requirements",
			},
			Status:        model.BuyerStatusActive,
			Online:        true,
			OrderCount:    8,
			TotalSpent:    7650,
			CustomerSince: "Mar 2022",
		},
		{
			ID:              "3",
			Name:            "Sophie Martin",
			Avatar:          "/avatars/buyer3.jpg",
			Country:         "France",
			CountryCode:     "FR",
			Language:        "French",
			LastMessage:     "Pouvez-vous offrir un échantillon gratuit?",
			LastMessageTime: localTime(2023, 5, 15, 9, 15),
			UnreadCount:     1,
			PurchaseInfo: model.PurchaseInfo{
				Products:           []string{"Cosmetics", "Skincare Products"},
				Quantity:           2000,
				DestinationCountry: "France",
				Budget:             "$12000",
			},
			CommunicationFocus: []string{
				"Concerned about product ingredients",
				"Requires EU certification",
				"Values brand image",
			},
			Status:        model.BuyerStatusActive,
			Online:        true,
			OrderCount:    12,
			TotalSpent:    11200,
			CustomerSince: "Nov 2022",
		},
		{
			ID:              "4",
			Name:            "Mohammed Al-Farsi",
			Avatar:          "/avatars/buyer4.jpg",
			Country:         "UAE",
			CountryCode:     "AE",
			Language:        "Arabic",
			LastMessage:     "هل يمكنك تقديم خصم للطلبات الكبيرة؟",
			LastMessageTime: localTime(2023, 5, 13, 14, 20),
			UnreadCount:     0,
			PurchaseInfo: model.PurchaseInfo{
				Products:           []string{"Luxury Watches", "Leather Goods"},
				Quantity:           100,
				DestinationCountry: "UAE",
				Budget:             "$50000",
			},
			CommunicationFocus: []string{
				"Focused on product prestige",
				"Requests customization",
				"Concerned about after-sales service",
			},
			Status:        model.BuyerStatusInactive,
			Online:        false,
			OrderCount:    3,
			TotalSpent:    48500,
			CustomerSince: "Apr 2023",
		},
		{
			ID:              "5",
			Name:            "Anna Petrova",
			Avatar:          "/avatars/buyer5.jpg",
			Country:         "Russia",
			CountryCode:     "RU",
			Language:        "Russian",
			LastMessage:     "Какие способы оплаты вы принимаете?",
			LastMessageTime: localTime(2023, 5, 12, 11, 50),
			UnreadCount:     0,
			PurchaseInfo: model.PurchaseInfo{
				Products:           []string{"Winter Clothing", "Thermal Products"},
				Quantity:           3000,
				DestinationCountry: "Russia",
				Budget:             "$20000",
			},
			CommunicationFocus: []string{
				"Focused on logistics solutions",
				"Needs detailed payment terms",
				"Values long-term cooperation",
			},
			Status:        model.BuyerStatusActive,
			Online:        false,
			OrderCount:    15,
			TotalSpent:    19200,
			CustomerSince: "Feb 2022",
		},
	}
}

// Messages 返回种子消息，目前为空
func Messages() []model.Message {
	return nil
}

func localTime(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.Local)
}
