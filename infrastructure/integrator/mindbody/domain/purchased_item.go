package mindbodydomain

type PurchasedItem struct {
	SaleDetailID    int     `json:"SaleDetailId"`
	ID              int     `json:"Id"`
	IsService       bool    `json:"IsService"`
	BarcodeID       string  `json:"BarcodeId"`
	Description     string  `json:"Description"`
	ContractID      *int    `json:"ContractId"`
	CategoryID      int     `json:"CategoryId"`
	SubCategoryID   int     `json:"SubCategoryId"`
	UnitPrice       float64 `json:"UnitPrice"`
	Quantity        float64 `json:"Quantity"`
	DiscountPercent float64 `json:"DiscountPercent"`
	DiscountAmount  float64 `json:"DiscountAmount"`
	Tax1            float64 `json:"Tax1"`
	Tax2            float64 `json:"Tax2"`
	Tax3            float64 `json:"Tax3"`
	Tax4            float64 `json:"Tax4"`
	Tax5            float64 `json:"Tax5"`
	TaxAmount       float64 `json:"TaxAmount"`
	TotalAmount     float64 `json:"TotalAmount"`
	Notes           *string `json:"Notes"`
	Returned        bool    `json:"Returned"`
	PaymentRefID    *int    `json:"PaymentRefId"`
	ExpDate         string  `json:"ExpDate"`
	ActiveDate      string  `json:"ActiveDate"`
}
