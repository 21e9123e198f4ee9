package extraction

import (
	"errors"
	"time"

	"pedidos/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineInput is one candidate line item prior to admission.
type LineInput struct {
	Product   string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Fragment is a partially or fully populated candidate order extracted
// from one document. Every field except the source identifiers may be
// absent.
type Fragment struct {
	SourceEmail      string
	SourceMessageID  string
	DeliveryDate     *time.Time
	DeliveryTime     string
	BillingClient    string
	Recipient        string
	DeliveryPlace    string
	DeliveryAddress  string
	PurchaseOrderRef string
	Items            []LineInput
}

// Validate is the single admission gate before an order is created from
// a fragment: a delivery date and at least one line item are required.
func (f Fragment) Validate() error {
	var issues []error

	if f.DeliveryDate == nil {
		issues = append(issues, errs.NewValueIsRequiredError("delivery date"))
	}
	if len(f.Items) == 0 {
		issues = append(issues, errs.NewValueIsRequiredError("line items"))
	}

	return errors.Join(issues...)
}
