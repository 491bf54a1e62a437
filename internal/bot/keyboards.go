package bot

import "jewelry_shop/pkg/telegram"

func mainKeyboard(webAppURL string) *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{
				{Text: "🛍 Do'konni ochish", WebApp: &telegram.WebAppInfo{URL: webAppURL}},
			},
			{
				{Text: "📦 Buyurtmalarim", CallbackData: "my_orders"},
			},
			{
				{Text: "📞 Aloqa", CallbackData: "contact"},
				{Text: "ℹ️ Yordam", CallbackData: "help"},
			},
		},
	}
}

func languageKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{
				{Text: "🇺🇿 O'zbekcha", CallbackData: "lang_uz"},
				{Text: "🇷🇺 Русский", CallbackData: "lang_ru"},
			},
		},
	}
}

func backKeyboard() *telegram.InlineKeyboardMarkup {
	return &telegram.InlineKeyboardMarkup{
		InlineKeyboard: [][]telegram.InlineKeyboardButton{
			{
				{Text: "⬅️ Orqaga", CallbackData: "back_to_main"},
			},
		},
	}
}
