package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandleStart handles the /start command
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	welcomeText := "🏸 Moikka!\n\n" +
		"Tämä botti tarkistaa, onko Arena Centerin vakiovuoro vielä vapaana.\n\n" +
		"Komennot:\n" +
		"/hakis - Tarkista Hakiksen vuoro\n" +
		"/delsu - Tarkista Delsun vuoro\n" +
		"/help - Näytä ohjeet"

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   welcomeText,
	})
}

// HandleHelp handles the /help command
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📖 Ohjeet:\n\n" +
		"/hakis - Onko Hakiksen vuoro vapaana seuraavana keskiviikkona?\n" +
		"/delsu - Onko Delsun vuoro vapaana seuraavana perjantaina?\n" +
		"/help - Näytä tämä ohje\n\n" +
		"Botti hakee avoinna24.fi:stä kyseisen päivän vapaat vuorot ja " +
		"katsoo, löytyykö vuoro joka loppuu haluttuun tuntiin."

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   helpText,
	})
}

// HandleHakis handles the /hakis command
func (h *Handlers) HandleHakis(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.checkFacility(ctx, b, update, "hakis")
}

// HandleDelsu handles the /delsu command
func (h *Handlers) HandleDelsu(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.checkFacility(ctx, b, update, "delsu")
}

// checkFacility runs one availability check and renders the verdict.
// Errors get their own message, a failed check must not read as an
// unavailable shift.
func (h *Handlers) checkFacility(ctx context.Context, b *bot.Bot, update *models.Update, name string) {
	if update.Message == nil {
		return
	}

	result, err := h.availability.CheckFacility(ctx, name)
	if err != nil {
		h.logger.Error("Availability check failed",
			zap.String("facility", name),
			zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "⚠️ Tarkistus epäonnistui. Yritä myöhemmin uudelleen.",
		})
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   FormatResult(result),
	})
}
