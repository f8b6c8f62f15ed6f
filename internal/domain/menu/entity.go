package menu

import "github.com/shopspring/decimal"

// Category is a POS menu category node. Categories form a tree via ParentID.
type Category struct {
	ID       int64
	Name     string
	ParentID *int64
	Sequence int
	HasImage bool
}

// Product is a sellable item attached to a category. Price is the list
// price, PriceIncl the tax-inclusive one.
type Product struct {
	ID          int64
	Name        string
	Price       decimal.Decimal
	PriceIncl   decimal.Decimal
	CategoryID  int64
	Description string
	HasImage    bool
}

// Language is a language available for menu display.
type Language struct {
	Code    string
	Name    string
	FlagURL string
}
