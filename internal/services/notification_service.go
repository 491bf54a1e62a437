package services

import (
	"fmt"
	"log"

	"jewelry_shop/internal/models"
	"jewelry_shop/pkg/telegram"
)

// Notifier delivers order events to Telegram chats. Fire-and-forget: both
// methods return immediately and delivery failures never reach the caller.
type Notifier interface {
	OrderCreated(order *models.Order)
	StatusChanged(order *models.Order, status models.OrderStatus)
}

type notificationService struct {
	client       *telegram.Client
	adminChatIDs []int64
}

func NewNotificationService(client *telegram.Client, adminChatIDs []int64) Notifier {
	return &notificationService{client: client, adminChatIDs: adminChatIDs}
}

// OrderCreated tells every configured admin about a fresh order.
func (s *notificationService) OrderCreated(order *models.Order) {
	text := fmt.Sprintf(
		"🆕 <b>Yangi buyurtma!</b>\n\n%s\n\n👤 %s\n📱 %s",
		FormatOrderMessage(order), order.User.FullName(), order.Phone)
	if order.DeliveryAddress != "" {
		text += "\n📍 " + order.DeliveryAddress
	}
	if order.Comment != "" {
		text += "\n💬 " + order.Comment
	}

	go func() {
		for _, chatID := range s.adminChatIDs {
			if _, err := s.client.SendMessage(chatID, text, nil); err != nil {
				log.Printf("Failed to notify admin %d about order #%d: %v", chatID, order.ID, err)
			}
		}
	}()
}

var statusFollowups = map[models.OrderStatus]string{
	models.OrderConfirmed:  "✅ Buyurtmangiz tasdiqlandi! Tez orada tayyorlaymiz.",
	models.OrderProcessing: "🔄 Buyurtmangiz tayyorlanmoqda...",
	models.OrderShipped:    "🚚 Buyurtmangiz yo'lga chiqdi!",
	models.OrderDelivered:  "🎉 Buyurtmangiz yetkazildi! Xaridingiz uchun rahmat!",
	models.OrderCancelled:  "❌ Buyurtmangiz bekor qilindi. Savollar uchun bog'laning.",
}

// StatusChanged tells the order's owner about the new status.
func (s *notificationService) StatusChanged(order *models.Order, status models.OrderStatus) {
	text := fmt.Sprintf(
		"🔔 <b>Buyurtma yangilandi!</b>\n\n🛍 Buyurtma: <b>#%05d</b>\n📋 Yangi holat: <b>%s</b>\n💰 Summa: <b>%s so'm</b>\n",
		order.ID, StatusLabel(status), FormatPrice(order.Total))
	if followup, ok := statusFollowups[status]; ok {
		text += "\n" + followup
	}

	chatID := order.User.TelegramID
	go func() {
		if _, err := s.client.SendMessage(chatID, text, nil); err != nil {
			log.Printf("Failed to notify user %d about order #%d: %v", chatID, order.ID, err)
		}
	}()
}
