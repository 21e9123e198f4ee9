package extraction_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pedidos/internal/extraction"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDetectLayout(t *testing.T) {
	tests := []struct {
		name string
		doc  extraction.Document
		want extraction.Layout
	}{
		{"pdf text wins", extraction.Document{Body: "<table></table>", PDFText: "PN000001 x 1,00 1,00 1,00"}, extraction.LayoutFixedColumnPDF},
		{"html table", extraction.Document{Body: "<html><TABLE><tr></tr></TABLE></html>"}, extraction.LayoutGenericTable},
		{"plain text falls back", extraction.Document{Body: "Destinatario: Juan"}, extraction.LayoutLabeledFreeText},
		{"blank pdf text ignored", extraction.Document{Body: "hola", PDFText: "   "}, extraction.LayoutLabeledFreeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extraction.DetectLayout(tt.doc))
		})
	}
}

func TestExtract_GenericTable(t *testing.T) {
	e := extraction.NewExtractor(discardLogger())

	body := `Entrega en: Depósito Norte
fecha de entrega: 12/05/2025
<table>
<tr><th>Producto</th><th>Cantidad</th><th>Precio</th></tr>
<tr><td>Caja A</td><td>10</td><td>150,00</td></tr>
<tr><td>Caja B</td><td>5</td><td>200,00</td></tr>
</table>`

	frag := e.Extract(extraction.Document{
		MessageID: "msg-1",
		From:      "compras@cliente.com",
		Body:      body,
	})

	require.NotNil(t, frag.DeliveryDate)
	assert.Equal(t, time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), *frag.DeliveryDate)
	assert.Equal(t, "Depósito Norte", frag.DeliveryPlace)
	assert.Equal(t, "compras@cliente.com", frag.SourceEmail)
	assert.Equal(t, "msg-1", frag.SourceMessageID)

	require.Len(t, frag.Items, 2)
	assert.Equal(t, "Caja A", frag.Items[0].Product)
	assert.Equal(t, 10, frag.Items[0].Quantity)
	assert.True(t, frag.Items[0].UnitPrice.Equal(decimal.RequireFromString("150.00")))
	assert.Equal(t, "Caja B", frag.Items[1].Product)
	assert.Equal(t, 5, frag.Items[1].Quantity)
	assert.True(t, frag.Items[1].UnitPrice.Equal(decimal.RequireFromString("200.00")))

	require.NoError(t, frag.Validate())
}

func TestExtract_SenderDisplayNameStripped(t *testing.T) {
	e := extraction.NewExtractor(discardLogger())

	frag := e.Extract(extraction.Document{
		MessageID: "msg-7",
		From:      "Compras ACME <compras@cliente.com>",
		Body:      "Destinatario: Juan",
	})

	assert.Equal(t, "compras@cliente.com", frag.SourceEmail)
}

func TestExtract_GenericTableSkipsBadRows(t *testing.T) {
	e := extraction.NewExtractor(discardLogger())

	body := `fecha de entrega: 01/07/2025
<table>
<tr><th>Producto</th><th>Cantidad</th><th>Precio</th></tr>
<tr><td>Solo dos celdas</td><td>3</td></tr>
<tr><td></td><td>4</td><td>99,00</td></tr>
<tr><td>Caja C</td><td>sin cantidad</td><td>50,00</td></tr>
<tr><td>Caja D</td><td>2 unidades</td><td>75,00</td></tr>
</table>`

	frag := e.Extract(extraction.Document{MessageID: "msg-2", Body: body})

	require.Len(t, frag.Items, 1)
	assert.Equal(t, "Caja D", frag.Items[0].Product)
	assert.Equal(t, 2, frag.Items[0].Quantity)
}

func TestExtract_FixedColumnPDF(t *testing.T) {
	e := extraction.NewExtractor(discardLogger())

	pdfText := `SKU Descripción Precio Unitario Cantidad Total
PN001643 PLANCHA DE PASTA FROLA DE MEMBRILLO 30 X 40 18.500,00 16,00 296.000,00
PN002001 BUDIN DE LIMON GLASEADO 9.250,00 4,00 37.000,00
PN009999 línea que no respeta el formato
Subtotal 333.000,00
Total Neto 333.000,00
Terms: 30 días`

	frag := e.Extract(extraction.Document{
		MessageID: "msg-3",
		Body:      "Adjuntamos OC 45821.\nfecha de entrega: 20/06/2025",
		PDFText:   pdfText,
	})

	require.Len(t, frag.Items, 2)
	assert.Equal(t, "PLANCHA DE PASTA FROLA DE MEMBRILLO 30 X 40", frag.Items[0].Product)
	assert.True(t, frag.Items[0].UnitPrice.Equal(decimal.RequireFromString("18500.00")))
	assert.Equal(t, 16, frag.Items[0].Quantity)
	assert.Equal(t, "BUDIN DE LIMON GLASEADO", frag.Items[1].Product)
	assert.Equal(t, 4, frag.Items[1].Quantity)

	require.NotNil(t, frag.DeliveryDate)
	assert.Equal(t, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), *frag.DeliveryDate)
	assert.Equal(t, "45821", frag.PurchaseOrderRef)
}

func TestExtract_FixedColumnPDFRejectsNonPositiveRows(t *testing.T) {
	e := extraction.NewExtractor(discardLogger())

	frag := e.Extract(extraction.Document{
		MessageID: "msg-4",
		PDFText: `PN000010 PRODUCTO GRATIS 0,00 5,00 0,00
PN000011 SIN CANTIDAD 100,00 0,00 0,00`,
	})

	assert.Empty(t, frag.Items)
	assert.Error(t, frag.Validate())
}

func TestFragment_Validate(t *testing.T) {
	date := time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC)
	item := extraction.LineInput{Product: "Caja A", Quantity: 1, UnitPrice: decimal.NewFromInt(10)}

	t.Run("admissible", func(t *testing.T) {
		frag := extraction.Fragment{DeliveryDate: &date, Items: []extraction.LineInput{item}}
		assert.NoError(t, frag.Validate())
	})

	t.Run("missing delivery date", func(t *testing.T) {
		frag := extraction.Fragment{Items: []extraction.LineInput{item}}
		assert.ErrorContains(t, frag.Validate(), "delivery date")
	})

	t.Run("missing line items", func(t *testing.T) {
		frag := extraction.Fragment{DeliveryDate: &date}
		assert.ErrorContains(t, frag.Validate(), "line items")
	})

	t.Run("missing everything reports both", func(t *testing.T) {
		err := extraction.Fragment{}.Validate()
		assert.ErrorContains(t, err, "delivery date")
		assert.ErrorContains(t, err, "line items")
	})
}
