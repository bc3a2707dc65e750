package common

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/callbacktypes"
	"github.com/jswmusik/youthclub/internal/schedule"
)

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// ParseClubIDFromCallback извлекает ID клуба из callback data
// Например: "hours:6f1c1f7e-..." -> uuid
func ParseClubIDFromCallback(data, prefix string) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(data, prefix)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return id, nil
}

// ParseVisitorFilterCallback разбирает "hours_for:<uuid>:<GENDER>"
func ParseVisitorFilterCallback(data string) (uuid.UUID, schedule.Gender, error) {
	raw, ok := strings.CutPrefix(data, callbacktypes.ViewFor)
	if !ok {
		return uuid.Nil, "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	rawID, rawGender, ok := strings.Cut(raw, ":")
	if !ok {
		return uuid.Nil, "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	gender := schedule.Gender(rawGender)
	if !gender.Valid() || gender == schedule.GenderAll {
		return uuid.Nil, "", fmt.Errorf("%w: %q", ErrInvalidFormat, data)
	}
	return id, gender, nil
}

// IsMessageNotModifiedError Telegram отвечает ошибкой, если текст и клавиатура не изменились
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}
