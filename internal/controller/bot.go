package controller

import (
	"context"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/jswmusik/youthclub/internal/controller/callbacks"
	"github.com/jswmusik/youthclub/internal/controller/handlers"
	"github.com/jswmusik/youthclub/internal/controller/state"
	"github.com/jswmusik/youthclub/internal/service"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	clubService *service.ClubService,
	hoursService *service.HoursService,
	isAdmin func(telegramID int64) bool,
	logger *zap.Logger,
) *BotController {
	stateManager := state.NewManager()

	callbackHandler := callbacks.NewHandler(
		clubService,
		hoursService,
		state.NewAdapter(stateManager),
		isAdmin,
		time.Now,
		logger,
	)

	cmdHandlers := handlers.NewHandlers(stateManager, callbackHandler.Handler)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/clubs", bot.MatchTypeExact, c.handlers.HandleClubs)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, c.handlers.HandleCancel)

	// Команды администраторов
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/newclub", bot.MatchTypeExact, c.handlers.HandleNewClubStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/edithours", bot.MatchTypeExact, c.handlers.HandleEditHours)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/draft", bot.MatchTypeExact, c.handlers.HandleDraft)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/save", bot.MatchTypeExact, c.handlers.HandleSave)

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, c.handlers.HandleTextMessage)

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "start", Description: "🚀 Начать работу с ботом"},
		{Command: "clubs", Description: "🏠 Клубы и часы работы"},
		{Command: "help", Description: "❓ Справка по командам"},
		{Command: "newclub", Description: "➕ Добавить клуб (админ)"},
		{Command: "edithours", Description: "✏️ Изменить расписание (админ)"},
		{Command: "cancel", Description: "❌ Отменить текущую операцию"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})
	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("Bot commands menu set")
	return nil
}

// Start запускает бота и блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
