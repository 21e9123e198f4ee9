package commands

import (
	"fmt"
	"strings"

	"pedidos/internal/core/domain/model/order"
)

// Recipients carries the addresses the lifecycle notifies. Filled from
// configuration at composition time.
type Recipients struct {
	Plant       string
	Logistics   string
	SlotPartner string
}

const dateLayout = "02/01/2006"

func plantDispatchSubject(o *order.Order) string {
	return "Nuevo Pedido - " + o.Number()
}

func plantDispatchBody(o *order.Order) string {
	var b strings.Builder
	b.WriteString("NUEVO PEDIDO PARA FABRICACIÓN\n\n")
	fmt.Fprintf(&b, "Número de Pedido: %s\n", o.Number())
	fmt.Fprintf(&b, "Fecha de Entrega: %s\n", o.DeliveryDate().Format(dateLayout))
	fmt.Fprintf(&b, "Lugar de Entrega: %s\n", o.DeliveryPlace())
	fmt.Fprintf(&b, "Total: $%s\n\n", o.Total().StringFixed(2))

	b.WriteString("PRODUCTOS:\n")
	b.WriteString("----------------------------------------\n")
	for _, item := range o.Items() {
		fmt.Fprintf(&b, "- %s x%d - $%s c/u = $%s\n",
			item.Product(), item.Quantity(),
			item.UnitPrice().StringFixed(2), item.Subtotal().StringFixed(2))
	}
	b.WriteString("----------------------------------------\n")
	fmt.Fprintf(&b, "TOTAL: $%s\n\n", o.Total().StringFixed(2))
	b.WriteString("Por favor confirmar recepción y tiempo estimado de fabricación.")
	return b.String()
}

func plantReminderSubject(o *order.Order) string {
	return "RECORDATORIO - Pedido " + o.Number()
}

func plantReminderBody(o *order.Order) string {
	sentAt := "N/A"
	if at := o.SentToPlantAt(); at != nil {
		sentAt = at.Format("02/01/2006 15:04")
	}
	return fmt.Sprintf(
		"RECORDATORIO - Pedido pendiente de respuesta\n\n"+
			"Número de Pedido: %s\n"+
			"Enviado el: %s\n"+
			"Fecha de Entrega: %s\n\n"+
			"Por favor confirmar estado del pedido.",
		o.Number(), sentAt, o.DeliveryDate().Format(dateLayout))
}

func logisticsReminderSubject(o *order.Order) string {
	return "Recordatorio Logística - " + o.Number() + " - Entrega en 48hs"
}

func logisticsReminderBody(o *order.Order) string {
	slot := "PENDIENTE"
	if o.SlotLabel() != "" {
		slot = o.SlotLabel()
	}

	var b strings.Builder
	b.WriteString("RECORDATORIO - Entrega en 48 horas\n\n")
	fmt.Fprintf(&b, "Número de Pedido: %s\n", o.Number())
	fmt.Fprintf(&b, "Fecha de Entrega: %s\n", o.DeliveryDate().Format(dateLayout))
	fmt.Fprintf(&b, "Lugar de Entrega: %s\n\n", o.DeliveryPlace())

	b.WriteString("CHECKLIST PARA LA ENTREGA:\n")
	fmt.Fprintf(&b, "☐ Turno confirmado: %s\n", slot)
	fmt.Fprintf(&b, "☐ Remito generado: %s\n", siNo(o.DeliveryNoteGenerated()))
	fmt.Fprintf(&b, "☐ Etiqueta RNPA: %s\n\n", siNo(o.LabelGenerated()))

	b.WriteString("RECORDAR:\n")
	b.WriteString("- Llevar Remito (2 copias para sellar)\n")
	b.WriteString("- Llevar Factura (para sellar)\n")
	b.WriteString("- Etiqueta RNPA en los productos\n")
	b.WriteString("- Confirmar turno con el centro de distribución\n")
	return b.String()
}

func slotRequestSubject(o *order.Order) string {
	return "Solicitud de Turno - Pedido " + o.Number()
}

func slotRequestBody(o *order.Order) string {
	return fmt.Sprintf(
		"Solicitud de Turno - Centro de Distribución\n\n"+
			"Número de Pedido: %s\n"+
			"Fecha de Entrega Solicitada: %s\n"+
			"Destino Final: %s\n"+
			"Total del Pedido: $%s\n\n"+
			"Por favor confirmar disponibilidad de turno para carga/entrega.\n\n"+
			"Gracias.",
		o.Number(), o.DeliveryDate().Format(dateLayout),
		o.DeliveryPlace(), o.Total().StringFixed(2))
}

func siNo(v bool) string {
	if v {
		return "SÍ"
	}
	return "NO"
}
