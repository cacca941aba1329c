package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/dmitrijs2005/recipebook/internal/chat"
	"github.com/dmitrijs2005/recipebook/internal/models"
	"github.com/dmitrijs2005/recipebook/pkg/locales"
)

// buildKeyboard translates a keyboard spec into concrete Telegram markup.
// Returns nil when the message carries no keyboard change.
func buildKeyboard(k chat.Keyboard) any {
	l := locales.Get()

	switch k.Kind {
	case chat.KeyboardRemove:
		return tgbotapi.NewRemoveKeyboard(false)

	case chat.KeyboardMainMenu:
		kb := tgbotapi.NewReplyKeyboard(
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(l.Menu.AddRecipe),
				tgbotapi.NewKeyboardButton(l.Menu.MyRecipes),
			),
			tgbotapi.NewKeyboardButtonRow(
				tgbotapi.NewKeyboardButton(l.Menu.Search),
				tgbotapi.NewKeyboardButton(l.Menu.RevokeConsent),
			),
		)
		kb.ResizeKeyboard = true
		return kb

	case chat.KeyboardCategories:
		row := make([]tgbotapi.KeyboardButton, 0, len(models.Categories))
		for _, c := range models.Categories {
			row = append(row, tgbotapi.NewKeyboardButton(string(c)))
		}
		kb := tgbotapi.NewReplyKeyboard(
			row,
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(l.Menu.Cancel)),
		)
		kb.ResizeKeyboard = true
		return kb

	case chat.KeyboardRating:
		row := make([]tgbotapi.KeyboardButton, 0, models.MaxRating)
		for i := models.MinRating; i <= models.MaxRating; i++ {
			row = append(row, tgbotapi.NewKeyboardButton(strconv.Itoa(i)))
		}
		kb := tgbotapi.NewReplyKeyboard(
			row,
			tgbotapi.NewKeyboardButtonRow(tgbotapi.NewKeyboardButton(l.Menu.Cancel)),
		)
		kb.ResizeKeyboard = true
		return kb

	case chat.KeyboardRecipeActions:
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(l.Recipe.ButtonEdit, fmt.Sprintf("edit_%d", k.RecipeID)),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(l.Recipe.ButtonDelete, fmt.Sprintf("delete_%d", k.RecipeID)),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(l.Recipe.ButtonReview, fmt.Sprintf("review_%d", k.RecipeID)),
			),
		)

	case chat.KeyboardConsent:
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(l.Consent.Accept, "consent_accept"),
			),
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(l.Consent.Decline, "consent_decline"),
			),
		)

	case chat.KeyboardRevokeConfirm:
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(l.Revoke.ButtonYes, "revoke_confirm"),
				tgbotapi.NewInlineKeyboardButtonData(l.Revoke.ButtonNo, "revoke_cancel"),
			),
		)
	}

	return nil
}
