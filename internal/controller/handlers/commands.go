package handlers

import (
	"context"
	"html"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/clubs"
	"github.com/jswmusik/youthclub/internal/controller/callbacks/common"
	"github.com/jswmusik/youthclub/internal/controller/state"
	"go.uber.org/zap"
)

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	welcomeText := "👋 Привет, " + html.EscapeString(update.Message.From.FirstName) + "!\n\n" +
		"Я подскажу, когда открыт молодёжный клуб.\n\n" +
		"Доступные команды:\n" +
		"/clubs - Клубы и их часы работы\n" +
		"/help - Справка"

	if h.isAdmin(update.Message.From.ID) {
		welcomeText += "\n\nДля администраторов:\n" +
			"/newclub - Добавить клуб\n" +
			"/edithours - Изменить расписание клуба"
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcomeText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	helpText := "📚 Справка по командам:\n\n" +
		"/clubs - Список клубов: кто открыт прямо сейчас\n" +
		"Нажмите на клуб, чтобы увидеть расписание на неделю и когда он откроется.\n\n" +
		"Недели считаются по ISO: нечётные и чётные окна чередуются каждую неделю.\n\n" +
		"Для администраторов:\n" +
		"/newclub - Добавить клуб\n" +
		"/edithours - Изменить расписание клуба\n" +
		"/draft - Показать черновик\n" +
		"/save - Сохранить черновик\n" +
		"/cancel - Отменить текущую операцию"

	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText)
}

// HandleClubs обрабатывает команду /clubs - список клубов со статусом
func (h *Handlers) HandleClubs(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text, kb, err := clubs.OverviewScreen(ctx, h.screens, 0)
	if err != nil {
		h.logger.Error("Failed to build clubs overview", zap.Error(err))
		h.sendError(ctx, b, update.Message.Chat.ID, common.ErrorMessage(err))
		return
	}

	h.sendHTML(ctx, b, update.Message.Chat.ID, text, kb)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	telegramID := update.Message.From.ID
	if h.stateManager.GetState(telegramID) == state.StateNone {
		h.sendError(ctx, b, update.Message.Chat.ID, "❌ Нет активных операций для отмены.")
		return
	}

	h.stateManager.ClearState(telegramID)

	h.sendMessage(ctx, b, update.Message.Chat.ID,
		"✅ Операция отменена. Несохранённые изменения сброшены.\n\nИспользуйте /help для просмотра доступных команд.")
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния пользователя
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются другими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	telegramID := update.Message.From.ID
	currentState := h.stateManager.GetState(telegramID)

	h.logger.Debug("HandleTextMessage called",
		zap.Int64("telegram_id", telegramID),
		zap.String("state", string(currentState)))

	switch currentState {
	case state.StateNone:
		return
	case state.StateCreateClubName:
		h.handleCreateClubNameStep(ctx, b, update)
	case state.StateEditingHours:
		h.handleEditorInput(ctx, b, update)
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}
