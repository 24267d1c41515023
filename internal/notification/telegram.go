package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stpnv0/CleanSweep/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifySlotBooked(ctx context.Context, user *domain.User, drive *domain.Drive, rec *domain.AttendanceRecord) {
	text := fmt.Sprintf(
		"*Место забронировано!*\n\n"+"Уборка: %s\n"+"Место: %s\n"+"Роль: %s\n"+"Дата (время указано в UTC): %s\n"+"Покажите QR-код организатору на месте: `%s`",
		drive.Title, drive.Location, rec.Role,
		drive.Date.Format("02.01.2006 15:04"),
		rec.QRToken,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyWaitlisted(ctx context.Context, user *domain.User, drive *domain.Drive, rec *domain.AttendanceRecord) {
	text := fmt.Sprintf(
		"*Вы в списке ожидания*\n\n"+"Уборка: %s\n"+"Роль: %s\n"+"Дата (время указано в UTC): %s\n"+"Все места по этой роли заняты. Ваш QR-код: `%s`",
		drive.Title, rec.Role,
		drive.Date.Format("02.01.2006 15:04"),
		rec.QRToken,
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, user *domain.User, drive *domain.Drive) {
	text := fmt.Sprintf(
		"*Бронирование отменено*\n\n"+"Уборка: %s\n"+"Дата (время указано в UTC): %s",
		drive.Title, drive.Date.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyDriveReminder(ctx context.Context, user *domain.User, drive *domain.Drive) {
	text := fmt.Sprintf(
		"*Напоминание об уборке*\n\n"+"Уборка: %s\n"+"Место: %s\n"+"Дата (время указано в UTC): %s\n"+"Не забудьте QR-код для чек-ина.",
		drive.Title, drive.Location, drive.Date.Format("02.01.2006 15:04"),
	)
	n.send(ctx, user.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
