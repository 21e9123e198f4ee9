package extraction

import (
	"strings"

	"pedidos/internal/extraction/localeparse"

	"github.com/PuerkitoBio/goquery"
)

// extractGenericTable reads line items out of the HTML tables in the
// message body. The first row of each table is assumed to be a header and
// skipped; every other row needs at least three cells, read as product
// label, quantity and locale-formatted unit price.
func (e *Extractor) extractGenericTable(doc Document, frag *Fragment) {
	gdoc, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Body))
	if err != nil {
		e.logger.Warn("unparseable html body", "message_id", doc.MessageID, "error", err)
		return
	}

	gdoc.Find("table").Each(func(_ int, table *goquery.Selection) {
		table.Find("tr").Each(func(i int, row *goquery.Selection) {
			if i == 0 {
				return
			}

			cells := row.Find("td, th")
			if cells.Length() < 3 {
				e.logger.Warn("table row has too few cells",
					"message_id", doc.MessageID, "cells", cells.Length())
				return
			}

			product := strings.TrimSpace(cells.Eq(0).Text())
			quantity, qtyOK := localeparse.Digits(cells.Eq(1).Text())
			price, priceOK := localeparse.Price(cells.Eq(2).Text(), localeparse.CommaDecimal)

			if product == "" || !qtyOK || !priceOK {
				e.logger.Warn("skipping unparseable table row",
					"message_id", doc.MessageID, "row", strings.TrimSpace(row.Text()))
				return
			}

			frag.Items = append(frag.Items, LineInput{
				Product:   product,
				Quantity:  quantity,
				UnitPrice: price,
			})
		})
	})

	e.scanDeliveryFields(gdoc.Text(), frag)
}

func trimField(s string) string {
	return strings.TrimSpace(s)
}
