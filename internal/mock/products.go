package mock

import (
	"seller-workspace/internal/model"
)

// RecommendedProductIDs 买家详情栏中默认推荐的商品
var RecommendedProductIDs = []string{"p001", "p002", "p003"}

// Products 返回商品目录
func Products() []model.ProductInfo {
	return []model.ProductInfo{
		{
			ID:          "p001",
			Name:        "Premium Phone Case",
			Description: "High-quality phone case for various models, providing excellent drop protection.",
			Price:       "5.99",
			Currency:    "USD",
			Images:      []string{"/products/phone-case-1.jpg"},
			Stock:       5000,
			Specifications: map[string]string{
				"Material":      "Eco-friendly TPU + PC",
				"Colors":        "Black, Clear, Blue",
				"Compatibility": "Compatible with iPhone and mainstream Android models",
				"Features":      "Drop-proof, Scratch-resistant, Precise cutouts",
			},
		},
		{
			ID:          "p002",
			Name:        "Wireless Bluetooth Headphones",
			Description: "High-quality wireless Bluetooth headphones with long battery life and comfortable fit.",
			Price:       "15.99",
			Currency:    "USD",
			Images:      []string{"/products/headphones-1.jpg"},
			Stock:       2000,
			Specifications: map[string]string{
				"Connection":       "Bluetooth 5.0",
				"Battery Life":     "8 hours playback time",
				"Charging":         "Type-C fast charging",
				"Water Resistance": "IPX5",
				"Colors":           "Black, White, Red",
			},
		},
		{
			ID:          "p003",
			Name:        "Fast Charger",
			Description: "18W fast charger compatible with multiple devices, safe and reliable.",
			Price:       "8.99",
			Currency:    "USD",
			Images:      []string{"/products/charger-1.jpg"},
			Stock:       3000,
			Specifications: map[string]string{
				"Input":                 "100-240V~50/60Hz 0.5A",
				"Output":                "5V/3A, 9V/2A, 12V/1.5A",
				"Ports":                 "USB-A + Type-C",
				"Safety Certifications": "CE, FCC, RoHS",
				"Color":                 "White",
			},
		},
		{
			ID:          "p004",
			Name:        "Smart Watch",
			Description: "Multifunctional smart watch with health monitoring, notifications, and long battery life.",
			Price:       "29.99",
			Currency:    "USD",
			Images:      []string{"/products/smartwatch-1.jpg"},
			Stock:       1000,
			Specifications: map[string]string{
				"Screen":           "1.3-inch color touchscreen",
				"Water Resistance": "IP68",
				"Battery":          "7-day battery life",
				"Functions":        "Heart rate monitoring, Sleep tracking, Activity tracking",
				"Compatibility":    "iOS 9.0+, Android 5.0+",
			},
		},
		{
			ID:          "p005",
			Name:        "Portable Bluetooth Speaker",
			Description: "Compact portable Bluetooth speaker with excellent sound quality and waterproof design.",
			Price:       "19.99",
			Currency:    "USD",
			Images:      []string{"/products/headphones-1.jpg"},
			Stock:       1500,
			Specifications: map[string]string{
				"Power":            "10W",
				"Connection":       "Bluetooth 5.0",
				"Water Resistance": "IPX7",
				"Battery":          "12 hours playback time",
				"Dimensions":       "8.6 x 8.6 x 8.9 cm",
			},
		},
		{
			ID:          "p006",
			Name:        "Moisturizing Cream",
			Description: "Deep moisturizing cream suitable for all skin types, hydrating without feeling greasy.",
			Price:       "12.99",
			Currency:    "USD",
			Images:      []string{"/products/phone-case-1.jpg"},
			Stock:       2000,
			Specifications: map[string]string{
				"Volume":        "50ml",
				"Ingredients":   "Hyaluronic Acid, Glycerin, Vitamin E",
				"Skin Type":     "All skin types",
				"Certification": "EU certified",
				"Shelf Life":    "36 months",
			},
		},
		{
			ID:          "p007",
			Name:        "Facial Serum",
			Description: "High-concentration serum that improves skin texture and brightens complexion.",
			Price:       "16.99",
			Currency:    "USD",
			Images:      []string{"/products/smartwatch-1.jpg"},
			Stock:       1800,
			Specifications: map[string]string{
				"Volume":        "30ml",
				"Ingredients":   "Niacinamide, Hyaluronic Acid, Vitamin C",
				"Skin Type":     "All skin types",
				"Certification": "EU certified",
				"Shelf Life":    "24 months",
			},
		},
		{
			ID:          "p008",
			Name:        "Face Mask Set",
			Description: "Multi-effect face mask set to meet different skin needs.",
			Price:       "9.99",
			Currency:    "USD",
			Images:      []string{"/products/charger-1.jpg"},
			Stock:       3000,
			Specifications: map[string]string{
				"Quantity":      "10 sheets/box",
				"Types":         "Hydrating, Brightening, Soothing",
				"Skin Type":     "All skin types",
				"Certification": "EU certified",
				"Shelf Life":    "36 months",
			},
		},
		{
			ID:          "p009",
			Name:        "Luxury Watch",
			Description: "Exquisite luxury watch with Swiss movement and leather strap.",
			Price:       "299.99",
			Currency:    "USD",
			Images:      []string{"/products/smartwatch-1.jpg"},
			Stock:       100,
			Specifications: map[string]string{
				"Movement":         "Swiss quartz movement",
				"Case":             "316L stainless steel",
				"Strap":            "Genuine leather",
				"Water Resistance": "50 meters",
				"Warranty":         "2-year international warranty",
			},
		},
		{
			ID:          "p010",
			Name:        "Premium Leather Wallet",
			Description: "High-quality genuine leather wallet with exquisite craftsmanship and multiple card slots.",
			Price:       "49.99",
			Currency:    "USD",
			Images:      []string{"/products/phone-case-1.jpg"},
			Stock:       200,
			Specifications: map[string]string{
				"Material":   "Top-grain leather",
				"Dimensions": "12 x 9.5 x 2 cm",
				"Colors":     "Black, Brown",
				"Card Slots": "8 card slots",
				"Features":   "RFID blocking",
			},
		},
	}
}
