package mindbodydomain

// Collection identifica uma lista aninhada dentro da venda
type Collection string

const (
	PurchasedItems Collection = "PurchasedItems"
	Payments       Collection = "Payments"
)

var Collections = []Collection{PurchasedItems, Payments}

// Os acessores retornam false quando o campo está ausente no registro (campos opcionais nulos)
type (
	SaleAccessor          func(s *Sale) (any, bool)
	PurchasedItemAccessor func(i *PurchasedItem) (any, bool)
	PaymentAccessor       func(p *Payment) (any, bool)

	// NestedAccessor extrai um campo de cada elemento de uma coleção da venda
	NestedAccessor func(s *Sale) ([]any, bool)
)

var SaleFields = map[string]SaleAccessor{
	"Id":                   func(s *Sale) (any, bool) { return s.ID, true },
	"SaleDate":             func(s *Sale) (any, bool) { return s.SaleDate, true },
	"SaleTime":             func(s *Sale) (any, bool) { return s.SaleTime, true },
	"SaleDateTime":         func(s *Sale) (any, bool) { return s.SaleDateTime, true },
	"OriginalSaleDateTime": func(s *Sale) (any, bool) { return s.OriginalSaleDateTime, true },
	"SalesRepId":           func(s *Sale) (any, bool) { return optional(s.SalesRepID) },
	"ClientId":             func(s *Sale) (any, bool) { return s.ClientID, true },
	"RecipientClientId":    func(s *Sale) (any, bool) { return optional(s.RecipientClientID) },
	"LocationId":           func(s *Sale) (any, bool) { return s.LocationID, true },
}

var PurchasedItemFields = map[string]PurchasedItemAccessor{
	"SaleDetailId":    func(i *PurchasedItem) (any, bool) { return i.SaleDetailID, true },
	"Id":              func(i *PurchasedItem) (any, bool) { return i.ID, true },
	"IsService":       func(i *PurchasedItem) (any, bool) { return i.IsService, true },
	"BarcodeId":       func(i *PurchasedItem) (any, bool) { return i.BarcodeID, true },
	"Description":     func(i *PurchasedItem) (any, bool) { return i.Description, true },
	"ContractId":      func(i *PurchasedItem) (any, bool) { return optional(i.ContractID) },
	"CategoryId":      func(i *PurchasedItem) (any, bool) { return i.CategoryID, true },
	"SubCategoryId":   func(i *PurchasedItem) (any, bool) { return i.SubCategoryID, true },
	"UnitPrice":       func(i *PurchasedItem) (any, bool) { return i.UnitPrice, true },
	"Quantity":        func(i *PurchasedItem) (any, bool) { return i.Quantity, true },
	"DiscountPercent": func(i *PurchasedItem) (any, bool) { return i.DiscountPercent, true },
	"DiscountAmount":  func(i *PurchasedItem) (any, bool) { return i.DiscountAmount, true },
	"Tax1":            func(i *PurchasedItem) (any, bool) { return i.Tax1, true },
	"Tax2":            func(i *PurchasedItem) (any, bool) { return i.Tax2, true },
	"Tax3":            func(i *PurchasedItem) (any, bool) { return i.Tax3, true },
	"Tax4":            func(i *PurchasedItem) (any, bool) { return i.Tax4, true },
	"Tax5":            func(i *PurchasedItem) (any, bool) { return i.Tax5, true },
	"TaxAmount":       func(i *PurchasedItem) (any, bool) { return i.TaxAmount, true },
	"TotalAmount":     func(i *PurchasedItem) (any, bool) { return i.TotalAmount, true },
	"Notes":           func(i *PurchasedItem) (any, bool) { return optional(i.Notes) },
	"Returned":        func(i *PurchasedItem) (any, bool) { return i.Returned, true },
	"PaymentRefId":    func(i *PurchasedItem) (any, bool) { return optional(i.PaymentRefID) },
	"ExpDate":         func(i *PurchasedItem) (any, bool) { return i.ExpDate, true },
	"ActiveDate":      func(i *PurchasedItem) (any, bool) { return i.ActiveDate, true },
}

var PaymentFields = map[string]PaymentAccessor{
	"Id":            func(p *Payment) (any, bool) { return p.ID, true },
	"Amount":        func(p *Payment) (any, bool) { return p.Amount, true },
	"Method":        func(p *Payment) (any, bool) { return p.Method, true },
	"Type":          func(p *Payment) (any, bool) { return p.Type, true },
	"Notes":         func(p *Payment) (any, bool) { return p.Notes, true },
	"TransactionId": func(p *Payment) (any, bool) { return optional(p.TransactionID) },
}

// NestedField retorna o acessor de um campo de uma coleção, ou false se o campo não existe
func NestedField(collection Collection, field string) (NestedAccessor, bool) {
	switch collection {
	case PurchasedItems:
		get, ok := PurchasedItemFields[field]
		if !ok {
			return nil, false
		}
		return func(s *Sale) ([]any, bool) { return collect(s.PurchasedItems, get) }, true
	case Payments:
		get, ok := PaymentFields[field]
		if !ok {
			return nil, false
		}
		return func(s *Sale) ([]any, bool) { return collect(s.Payments, get) }, true
	}

	return nil, false
}

func collect[T any, A ~func(*T) (any, bool)](items []T, get A) ([]any, bool) {
	values := make([]any, 0, len(items))
	for i := range items {
		v, ok := get(&items[i])
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}

func optional[T any](v *T) (any, bool) {
	if v == nil {
		return nil, false
	}
	return *v, true
}
