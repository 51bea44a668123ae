// Package handoff turns a submitted order into a pre-filled WhatsApp chat so
// the buyer can confirm payment with the store manually.
package handoff

import (
	"fmt"
	"net/url"
	"strings"

	"gaming-storefront/internal/model"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const chatBaseURL = "https://wa.me/"

type Handoff struct {
	Message string
	URL     string
}

type Composer struct {
	storeName string
	number    string
}

func NewComposer(storeName, whatsAppNumber string) *Composer {
	return &Composer{
		storeName: storeName,
		number:    digitsOnly(whatsAppNumber),
	}
}

// Compose builds the chat message for order and the link that opens it. The
// link is returned to the client; delivery is never confirmed.
func (c *Composer) Compose(order *model.Order) Handoff {
	msg := c.Message(order)
	return Handoff{
		Message: msg,
		URL:     c.ContactURL() + "?text=" + encodeText(msg),
	}
}

func (c *Composer) Message(order *model.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Halo Admin %s! Saya ingin memesan:\n\n", c.storeName)
	for i, item := range order.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s (x%d)", item.Product.Name, item.Quantity)
	}
	fmt.Fprintf(&b, "\n\nTotal: %s\n", FormatRupiah(order.TotalPrice))
	fmt.Fprintf(&b, "Order ID: #%s\n", order.ID)
	fmt.Fprintf(&b, "Nama: %s\n", order.CustomerName)
	fmt.Fprintf(&b, "WA: %s\n", order.WhatsApp)
	fmt.Fprintf(&b, "Username Game: %s\n", orDash(order.GameUsername))
	fmt.Fprintf(&b, "Metode Pembayaran: %s\n\n", orDash(order.PaymentMethod))
	b.WriteString("Mohon instruksi pembayarannya segera. Terima kasih!")

	return b.String()
}

// ContactURL opens a plain chat with the store.
func (c *Composer) ContactURL() string {
	return chatBaseURL + c.number
}

// FormatRupiah renders amount the way Indonesian shoppers read prices,
// e.g. "Rp 160.000".
func FormatRupiah(amount float64) string {
	p := message.NewPrinter(language.Indonesian)
	return "Rp " + p.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(2)))
}

// componentUnescaper undoes the QueryEscape choices encodeURIComponent does
// not make: spaces are %20 and !'()* stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeText percent-encodes s the way encodeURIComponent does.
func encodeText(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func digitsOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
