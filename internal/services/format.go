package services

import (
	"fmt"
	"strconv"

	"jewelry_shop/internal/models"
)

var statusLabels = map[models.OrderStatus]string{
	models.OrderPending:    "⏳ Kutilmoqda",
	models.OrderConfirmed:  "✅ Tasdiqlangan",
	models.OrderProcessing: "🔄 Tayyorlanmoqda",
	models.OrderShipped:    "🚚 Yo'lda",
	models.OrderDelivered:  "📦 Yetkazildi",
	models.OrderCancelled:  "❌ Bekor qilingan",
}

var paymentLabels = map[models.PaymentMethod]string{
	models.PaymentCash:     "💵 Naqd pul",
	models.PaymentTransfer: "💳 Karta o'tkazma",
}

func StatusLabel(status models.OrderStatus) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return string(status)
}

func PaymentLabel(method models.PaymentMethod) string {
	if label, ok := paymentLabels[method]; ok {
		return label
	}
	return string(method)
}

// FormatPrice renders an amount with space-separated thousands: 1 500 000.
func FormatPrice(amount int64) string {
	s := strconv.FormatInt(amount, 10)
	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
	}

	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ' ')
		}
		out = append(out, digit)
	}
	if negative {
		return "-" + string(out)
	}
	return string(out)
}

// FormatOrderMessage renders one order as a status-labeled HTML block for
// the bot and for notifications. Items and products must be preloaded.
func FormatOrderMessage(order *models.Order) string {
	itemsText := ""
	shown := order.Items
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, item := range shown {
		itemsText += fmt.Sprintf("  • %s x%d — %s so'm\n",
			item.Product.Name, item.Quantity, FormatPrice(item.Price))
	}
	if extra := len(order.Items) - len(shown); extra > 0 {
		itemsText += fmt.Sprintf("  ... va yana %d ta\n", extra)
	}

	msg := fmt.Sprintf(
		"🛍 <b>Buyurtma #%05d</b>\n📋 Holat: %s\n💳 To'lov: %s\n",
		order.ID, StatusLabel(order.Status), PaymentLabel(order.PaymentMethod))

	if order.IsPaid {
		msg += "✅ To'langan\n"
	}

	msg += "\n📦 <b>Mahsulotlar:</b>\n" + itemsText
	msg += fmt.Sprintf("\n💰 <b>Jami: %s so'm</b>", FormatPrice(order.Total))
	return msg
}
