package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/money"
)

const (
	DefaultCartInquiryPhone    = "254710241295"
	DefaultProductInquiryPhone = "254731927563"
)

type Inquiry struct {
	Message string
	URL     string
}

// InquiryBuilder produces WhatsApp chat links asking about a product or the
// whole cart.
type InquiryBuilder struct {
	formatter    *money.Formatter
	cartPhone    string
	productPhone string
}

func NewInquiryBuilder(formatter *money.Formatter, cartPhone, productPhone string) *InquiryBuilder {
	if cartPhone == "" {
		cartPhone = DefaultCartInquiryPhone
	}
	if productPhone == "" {
		productPhone = DefaultProductInquiryPhone
	}
	return &InquiryBuilder{formatter: formatter, cartPhone: cartPhone, productPhone: productPhone}
}

func (b *InquiryBuilder) Cart(cart domain.Cart) (Inquiry, error) {
	if cart.IsEmpty() {
		return Inquiry{}, domain.ErrEmptyCart
	}

	var msg strings.Builder
	msg.WriteString("Hello CPLINK, I have an inquiry about these products:\n")
	for _, line := range cart {
		fmt.Fprintf(&msg, "%d x %s - %s\n", line.Qty, line.Name, b.formatter.Format(line.PriceCents))
	}
	fmt.Fprintf(&msg, "Total: %s\n", b.formatter.Format(cart.TotalCents()))
	msg.WriteString("Please contact me to discuss availability and pricing.")

	return newInquiry(b.cartPhone, msg.String()), nil
}

func (b *InquiryBuilder) Product(p domain.Product) Inquiry {
	msg := fmt.Sprintf("Hi CPLINKTECH,\n\nI'm interested in: %s\nPrice: %s\n\nPlease provide more details.",
		p.Name, b.formatter.Format(p.PriceCents))
	return newInquiry(b.productPhone, msg)
}

func newInquiry(phone, msg string) Inquiry {
	return Inquiry{
		Message: msg,
		URL:     "https://wa.me/" + phone + "?text=" + encodeComponent(msg),
	}
}

// componentUnescapes restores the characters a URI component leaves as-is
// but query escaping does not.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes like a URI component: spaces become %20, and
// !'()* stay literal.
func encodeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}
