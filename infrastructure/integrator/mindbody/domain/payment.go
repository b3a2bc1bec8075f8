package mindbodydomain

type Payment struct {
	ID            int     `json:"Id"`
	Amount        float64 `json:"Amount"`
	Method        int     `json:"Method"`
	Type          string  `json:"Type"`
	Notes         string  `json:"Notes"`
	TransactionID *int    `json:"TransactionId"`
}
