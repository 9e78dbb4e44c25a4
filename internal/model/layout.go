package model

// PaneLayout 三栏布局的当前状态
type PaneLayout struct {
	BuyerListWidth int  `json:"buyer_list_width"`
	BuyerInfoWidth int  `json:"buyer_info_width"`
	ShowBuyerList  bool `json:"show_buyer_list"`
	ShowBuyerInfo  bool `json:"show_buyer_info"`
}
