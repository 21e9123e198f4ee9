package order

import (
	"fmt"

	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItem is one product line within an order. It is owned exclusively by
// its Order and has no independent lifecycle. The subtotal is derived and
// recomputed whenever quantity or unit price change.
type LineItem struct {
	product   string
	quantity  int
	unitPrice decimal.Decimal
	subtotal  decimal.Decimal
}

// NewLineItem creates a validated line item. Product must be non-empty,
// quantity and unit price strictly positive.
func NewLineItem(product string, quantity int, unitPrice decimal.Decimal) (*LineItem, error) {
	if product == "" {
		return nil, errs.NewValueIsRequiredError("product")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !unitPrice.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("unit price",
			fmt.Errorf("%s is not greater than 0", unitPrice))
	}

	item := &LineItem{
		product:   product,
		quantity:  quantity,
		unitPrice: unitPrice,
	}
	item.recomputeSubtotal()
	return item, nil
}

// Product returns the product label.
func (i *LineItem) Product() string {
	return i.product
}

// Quantity returns the ordered quantity.
func (i *LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i *LineItem) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity times unit price, exact to the cent.
func (i *LineItem) Subtotal() decimal.Decimal {
	return i.subtotal
}

func (i *LineItem) recomputeSubtotal() {
	i.subtotal = i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
