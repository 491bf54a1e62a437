package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jewelry_shop/internal/auth"
	"jewelry_shop/internal/models"
	"jewelry_shop/internal/redis"
	"jewelry_shop/internal/services"
	"jewelry_shop/pkg/telegram"
)

const ordersPerMessage = 10

type Handler struct {
	client       *telegram.Client
	userService  services.UserService
	orderService services.OrderService
	cache        *redis.Client
	webAppURL    string
}

func NewHandler(
	client *telegram.Client,
	userService services.UserService,
	orderService services.OrderService,
	cache *redis.Client,
	webAppURL string,
) *Handler {
	return &Handler{
		client:       client,
		userService:  userService,
		orderService: orderService,
		cache:        cache,
		webAppURL:    webAppURL,
	}
}

// Run polls for updates until the context is cancelled. Each update is
// handled in its own goroutine so a slow handler does not stall the loop.
func (h *Handler) Run(ctx context.Context) {
	log.Println("Bot polling started")

	var offset int64
	for {
		select {
		case <-ctx.Done():
			log.Println("Bot polling stopped")
			return
		default:
		}

		updates, err := h.client.GetUpdates(offset)
		if err != nil {
			log.Printf("Failed to get updates: %v", err)
			time.Sleep(3 * time.Second)
			continue
		}

		for _, update := range updates {
			offset = update.UpdateID + 1
			go h.handleUpdate(update)
		}
	}
}

func (h *Handler) handleUpdate(update telegram.Update) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		h.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		h.handleCallback(update.CallbackQuery)
	}
}

func (h *Handler) handleMessage(message *telegram.Message) {
	command := strings.Fields(message.Text)
	if len(command) == 0 {
		return
	}

	switch strings.SplitN(command[0], "@", 2)[0] {
	case "/start":
		h.handleStart(message)
	case "/help":
		h.handleHelp(message)
	case "/orders":
		h.handleOrders(message)
	case "/language":
		h.send(message.Chat.ID, "🌐 Tilni tanlang:", languageKeyboard())
	}
}

func (h *Handler) handleStart(message *telegram.Message) {
	// Register or refresh the user, same upsert as the WebApp login
	_, err := h.userService.UpsertFromTelegram(&auth.InitDataUser{
		ID:        message.From.ID,
		FirstName: message.From.FirstName,
		LastName:  message.From.LastName,
		Username:  message.From.Username,
	})
	if err != nil {
		log.Printf("Failed to upsert user %d: %v", message.From.ID, err)
	}

	text := fmt.Sprintf(
		"✨ <b>Assalomu alaykum, %s!</b>\n\n"+
			"🏆 <b>JEWELRY</b> - premium zargarlik buyumlari do'koniga xush kelibsiz!\n\n"+
			"Bizda:\n"+
			"💎 Eng sifatli zargarlik buyumlari\n"+
			"🏷 O'rikzor narxlari\n"+
			"🎁 Premium qadoqlash\n"+
			"🚚 Tez yetkazib berish\n\n"+
			"Do'konimizni ochish uchun quyidagi tugmani bosing 👇",
		message.From.FirstName)

	h.send(message.Chat.ID, text, mainKeyboard(h.webAppURL))
}

func (h *Handler) handleHelp(message *telegram.Message) {
	h.send(message.Chat.ID, helpText(), nil)
}

func (h *Handler) handleOrders(message *telegram.Message) {
	h.send(message.Chat.ID, h.ordersText(message.From.ID), mainKeyboard(h.webAppURL))
}

// ordersText builds the order list block for a Telegram user.
func (h *Handler) ordersText(telegramID int64) string {
	user, err := h.userService.GetByTelegramID(telegramID)
	if err != nil {
		return emptyOrdersText()
	}

	orders, count, err := h.orderService.ListByUser(user.ID, 1, ordersPerMessage)
	if err != nil {
		log.Printf("Failed to load orders for user %d: %v", telegramID, err)
		return emptyOrdersText()
	}
	if len(orders) == 0 {
		return emptyOrdersText()
	}

	text := fmt.Sprintf("📦 <b>Sizning buyurtmalaringiz (%d ta)</b>\n\n", count)
	for i := range orders {
		text += services.FormatOrderMessage(&orders[i]) + "\n\n" + strings.Repeat("─", 30) + "\n\n"
	}
	if extra := count - int64(len(orders)); extra > 0 {
		text += fmt.Sprintf("... va yana %d ta buyurtma\n", extra)
	}
	text += "Batafsil ma'lumot uchun WebApp'ni oching 👇"
	return text
}

func (h *Handler) handleCallback(callback *telegram.CallbackQuery) {
	if callback.Message == nil {
		return
	}
	chatID := callback.Message.Chat.ID

	switch {
	case callback.Data == "my_orders":
		h.edit(chatID, callback.Message.MessageID, h.ordersText(callback.From.ID), backKeyboard())
		h.answer(callback.ID, "", false)

	case callback.Data == "contact":
		h.edit(chatID, callback.Message.MessageID,
			"📞 <b>Biz bilan bog'lanish</b>\n\n"+
				"📱 Telefon: +998 XX XXX XX XX\n"+
				"📧 Email: info@jewelry.uz\n"+
				"📍 Manzil: Toshkent sh., ...\n\n"+
				"⏰ Ish vaqti: 09:00 - 21:00",
			backKeyboard())
		h.answer(callback.ID, "", false)

	case callback.Data == "help":
		h.edit(chatID, callback.Message.MessageID, helpText(), backKeyboard())
		h.answer(callback.ID, "", false)

	case callback.Data == "back_to_main":
		h.edit(chatID, callback.Message.MessageID,
			"✨ <b>JEWELRY</b> - premium zargarlik buyumlari\n\n"+
				"Do'konimizni ochish uchun quyidagi tugmani bosing 👇",
			mainKeyboard(h.webAppURL))
		h.answer(callback.ID, "", false)

	case strings.HasPrefix(callback.Data, "lang_"):
		h.handleLanguage(callback, chatID)
	}
}

func (h *Handler) handleLanguage(callback *telegram.CallbackQuery, chatID int64) {
	lang := strings.TrimPrefix(callback.Data, "lang_")
	langName := "O'zbekcha"
	if lang == models.LanguageRussian {
		langName = "Русский"
	}

	if err := h.userService.SetLanguage(callback.From.ID, lang); err != nil {
		log.Printf("Failed to set language for user %d: %v", callback.From.ID, err)
	}
	if h.cache != nil {
		if err := h.cache.SetChatLanguage(context.Background(), chatID, lang); err != nil {
			log.Printf("Failed to cache language for chat %d: %v", chatID, err)
		}
	}

	h.answer(callback.ID, "Til tanlandi: "+langName, true)
}

func (h *Handler) send(chatID int64, text string, markup *telegram.InlineKeyboardMarkup) {
	if _, err := h.client.SendMessage(chatID, text, markup); err != nil {
		log.Printf("Failed to send message to chat %d: %v", chatID, err)
	}
}

func (h *Handler) edit(chatID, messageID int64, text string, markup *telegram.InlineKeyboardMarkup) {
	if err := h.client.EditMessageText(chatID, messageID, text, markup); err != nil {
		log.Printf("Failed to edit message in chat %d: %v", chatID, err)
	}
}

func (h *Handler) answer(callbackID, text string, showAlert bool) {
	if err := h.client.AnswerCallbackQuery(callbackID, text, showAlert); err != nil {
		log.Printf("Failed to answer callback %s: %v", callbackID, err)
	}
}

func emptyOrdersText() string {
	return "📦 <b>Buyurtmalaringiz</b>\n\n" +
		"Hozircha buyurtmalar yo'q.\n" +
		"Do'konni ochib, birinchi xaridingizni qiling! 🛍"
}

func helpText() string {
	return "ℹ️ <b>Yordam</b>\n\n" +
		"🔹 /start - Botni qayta ishga tushirish\n" +
		"🔹 /help - Yordam\n" +
		"🔹 /orders - Buyurtmalarim\n" +
		"🔹 /language - Tilni o'zgartirish\n\n" +
		"🔹 <b>Qanday buyurtma beraman?</b>\n" +
		"\"Do'konni ochish\" tugmasini bosing, mahsulotni tanlang, " +
		"savatga qo'shing va checkout sahifasida buyurtmani rasmiylang.\n\n" +
		"🔹 <b>To'lov usullari:</b>\n" +
		"💵 Naqd pul (yetkazib berishda)\n" +
		"💳 Karta o'tkazma (oldindan)\n\n" +
		"❓ Savollaringiz bo'lsa, @admin_username ga yozing."
}
