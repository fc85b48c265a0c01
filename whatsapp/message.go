// Package whatsapp renders a placed order into the prefilled WhatsApp
// message the customer sends to the shop instead of paying in-app.
package whatsapp

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/LaryssaDev/site-para-gueto-fya/models"
)

// FormatBRL renders a value the way the shop shows money: R$ 1.234,56.
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}
	return "R$ " + b.String() + "," + fracPart
}

// Message builds the plain-text order summary sent to the shop's number.
// Customer text goes in as-is; the handoff is free-form chat text, not
// anything executed.
func Message(o models.Order) string {
	var lines []string
	for _, it := range o.Items {
		lines = append(lines, fmt.Sprintf(
			"- %s (%s) — Tam: %s — %dx — %s",
			it.Name, it.Category, it.SelectedSize, it.Quantity, FormatBRL(it.Price),
		))
	}

	percent := strconv.FormatFloat(o.DiscountPercent*100, 'f', 0, 64)

	return strings.TrimSpace(fmt.Sprintf(`
*PEDIDO NOVO - GUETO FYA* 👕🔥
🆔 *ID do Pedido:* %s
👤 *Cliente:* %s
📱 *Telefone:* %s
📧 *E-mail:* %s

🛍️ *Itens:*
%s

📦 Total de peças: %d
💸 Desconto aplicado: %s%%
💰 Valor economizado: %s
💳 *Valor Final:* %s

⚠️ *Status:* PENDENTE (Aguardando aprovação)
`,
		o.ID,
		o.Customer.Name,
		o.Customer.Phone,
		o.Customer.Email,
		strings.Join(lines, "\n"),
		o.TotalItems(),
		percent,
		FormatBRL(o.DiscountAmount),
		FormatBRL(o.TotalAmount),
	))
}

// Link builds the handoff URL that opens WhatsApp with the order summary
// prefilled for the shop's number.
func Link(shopPhone string, o models.Order) string {
	q := url.Values{}
	q.Set("phone", shopPhone)
	q.Set("text", Message(o))
	q.Set("type", "phone_number")
	q.Set("app_absent", "0")
	return "https://api.whatsapp.com/send/?" + q.Encode()
}
