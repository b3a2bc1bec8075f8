package mindbodydomain

// PaginationResponse acompanha cada página retornada pelo upstream
type PaginationResponse struct {
	RequestedLimit  int `json:"RequestedLimit"`
	RequestedOffset int `json:"RequestedOffset"`
	PageSize        int `json:"PageSize"`
	TotalResults    int `json:"TotalResults"`
}

// SalesResponse é o corpo retornado por GET /sale/sales
type SalesResponse struct {
	PaginationResponse PaginationResponse `json:"PaginationResponse"`
	Sales              []Sale             `json:"Sales"`
}

type Sale struct {
	ID                   int             `json:"Id"`
	SaleDate             string          `json:"SaleDate"`
	SaleTime             string          `json:"SaleTime"`
	SaleDateTime         string          `json:"SaleDateTime"`
	OriginalSaleDateTime string          `json:"OriginalSaleDateTime"`
	SalesRepID           *int            `json:"SalesRepId"`
	ClientID             string          `json:"ClientId"`
	RecipientClientID    *int            `json:"RecipientClientId"`
	PurchasedItems       []PurchasedItem `json:"PurchasedItems"`
	LocationID           int             `json:"LocationId"`
	Payments             []Payment       `json:"Payments"`
}
