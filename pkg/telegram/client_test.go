package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_SendMessage(t *testing.T) {
	var gotPath string
	var gotBody sendMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":     true,
			"result": map[string]interface{}{"message_id": 7, "text": gotBody.Text},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "12345:token")
	markup := &InlineKeyboardMarkup{InlineKeyboard: [][]InlineKeyboardButton{
		{{Text: "Orqaga", CallbackData: "back_to_main"}},
	}}
	msg, err := client.SendMessage(100, "<b>Salom</b>", markup)

	assert.NoError(t, err)
	assert.Equal(t, "/bot12345:token/sendMessage", gotPath)
	assert.Equal(t, int64(100), gotBody.ChatID)
	assert.Equal(t, "HTML", gotBody.ParseMode)
	assert.Equal(t, "back_to_main", gotBody.ReplyMarkup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, int64(7), msg.MessageID)
}

func TestClient_SendMessage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":          false,
			"description": "Forbidden: bot was blocked by the user",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "12345:token")
	_, err := client.SendMessage(100, "Salom", nil)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bot was blocked by the user")
}

func TestClient_GetUpdates(t *testing.T) {
	var gotBody getUpdatesRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot12345:token/getUpdates", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok": true,
			"result": []map[string]interface{}{
				{
					"update_id": 1001,
					"message": map[string]interface{}{
						"message_id": 1,
						"from":       map[string]interface{}{"id": 42, "first_name": "Aziza"},
						"chat":       map[string]interface{}{"id": 42, "type": "private"},
						"text":       "/start",
					},
				},
				{
					"update_id": 1002,
					"callback_query": map[string]interface{}{
						"id":   "cb1",
						"from": map[string]interface{}{"id": 42},
						"data": "my_orders",
					},
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "12345:token")
	updates, err := client.GetUpdates(1001)

	assert.NoError(t, err)
	assert.Equal(t, int64(1001), gotBody.Offset)
	assert.Equal(t, PollTimeout, gotBody.Timeout)
	assert.Len(t, updates, 2)
	assert.Equal(t, "/start", updates[0].Message.Text)
	assert.Nil(t, updates[0].CallbackQuery)
	assert.Equal(t, "my_orders", updates[1].CallbackQuery.Data)
}

func TestClient_AnswerCallbackQuery(t *testing.T) {
	var gotBody answerCallbackQueryRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "result": true})
	}))
	defer server.Close()

	client := NewClient(server.URL, "12345:token")
	err := client.AnswerCallbackQuery("cb1", "Til tanlandi", true)

	assert.NoError(t, err)
	assert.Equal(t, "cb1", gotBody.CallbackQueryID)
	assert.True(t, gotBody.ShowAlert)
}

func TestClient_EditMessageText(t *testing.T) {
	var gotBody editMessageTextRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bot12345:token/editMessageText", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "result": true})
	}))
	defer server.Close()

	client := NewClient(server.URL, "12345:token")
	err := client.EditMessageText(100, 7, "Yangilandi", nil)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), gotBody.MessageID)
	assert.Equal(t, "Yangilandi", gotBody.Text)
}

func TestClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway timeout</html>"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "12345:token")
	_, err := client.SendMessage(100, "Salom", nil)

	assert.Error(t, err)
}
