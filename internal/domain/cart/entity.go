// internal/domain/cart/entity.go
package cart

// SelectedOption is a denormalized snapshot of a chosen option, captured
// by value at selection time so later catalog edits never change the
// price of lines already in the cart.
type SelectedOption struct {
	GroupID   string  `json:"groupId"`
	GroupName string  `json:"groupName"`
	OptionID  string  `json:"optionId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// Item represents one cart line: a priced, quantified, customized
// instance of a catalog product. CartItemID is its stable identity;
// ProductID is a weak reference that may no longer resolve.
type Item struct {
	CartItemID        string           `json:"cartItemId"`
	ProductID         string           `json:"productId"`
	Name              string           `json:"name"`
	BasePrice         float64          `json:"basePrice"`
	Quantity          int              `json:"quantity"`
	Notes             string           `json:"notes,omitempty"`
	VariantSelections []SelectedOption `json:"variantSelections"`
	ExtraSelections   []SelectedOption `json:"extraSelections"`
}
