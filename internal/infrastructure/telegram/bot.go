package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"
	"finbot-service/internal/infrastructure/logx"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot dispatches chat commands to the application services over long
// polling. Each update is handled on its own goroutine by the library's
// channel consumer; handlers fetch sequentially within a command and never
// let a failure escape the poll loop.
type Bot struct {
	api       *tgbotapi.BotAPI
	market    *application.MarketService
	portfolio *application.PortfolioService
	log       *zap.Logger
}

func NewBot(token string, market *application.MarketService, portfolio *application.PortfolioService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: connect: %w", err)
	}
	return &Bot{
		api:       api,
		market:    market,
		portfolio: portfolio,
		log:       logx.L().With(zap.String("component", "telegram")),
	}, nil
}

// Run blocks until ctx is canceled or the update channel closes.
func (b *Bot) Run(ctx context.Context) error {
	// Drop updates that queued up while the bot was down.
	if _, err := b.api.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		b.log.Warn("drop pending updates", zap.Error(err))
	}

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)
	b.log.Info("bot started", zap.String("username", b.api.Self.UserName))

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case upd, ok := <-updates:
			if !ok {
				return nil
			}
			b.handle(ctx, upd)
		}
	}
}

func (b *Bot) handle(ctx context.Context, upd tgbotapi.Update) {
	defer func() {
		if rec := recover(); rec != nil {
			b.log.Error("panic in handler", zap.Any("error", rec))
		}
	}()

	msg := upd.Message
	if msg == nil || !msg.IsCommand() {
		return
	}
	log := b.log.With(zap.String("command", msg.Command()), zap.Int64("chat", msg.Chat.ID))

	switch msg.Command() {
	case "start", "help":
		b.reply(msg, helpText)
	case "au":
		b.reply(msg, b.goldMessage(ctx))
	case "para":
		qs, err := b.market.Currency(ctx)
		b.logFetch(log, err)
		b.reply(msg, FormatCurrency(qs))
	case "borsa":
		qs, err := b.market.Stocks(ctx)
		b.logFetch(log, err)
		b.reply(msg, FormatStocks(qs))
	case "kripto":
		qs, err := b.market.Crypto(ctx)
		b.logFetch(log, err)
		b.reply(msg, FormatCrypto(qs))
	case "all":
		b.reply(msg, b.goldMessage(ctx))
		qs, err := b.market.Currency(ctx)
		b.logFetch(log, err)
		b.reply(msg, FormatCurrency(qs))
		qs, err = b.market.Stocks(ctx)
		b.logFetch(log, err)
		b.reply(msg, FormatStocks(qs))
		qs, err = b.market.Crypto(ctx)
		b.logFetch(log, err)
		b.reply(msg, FormatCrypto(qs))
	case "duzenle":
		b.handleEdit(ctx, msg, log)
	case "kasa":
		b.handleValuation(ctx, msg, log)
	}
}

func (b *Bot) goldMessage(ctx context.Context) string {
	sources, err := b.market.GoldSources(ctx)
	b.logFetch(b.log, err)
	types, err := b.market.GoldTypes(ctx)
	b.logFetch(b.log, err)
	return FormatGold(sources, types)
}

func (b *Bot) handleEdit(ctx context.Context, msg *tgbotapi.Message, log *zap.Logger) {
	if msg.From == nil {
		return
	}
	raw := strings.TrimSpace(msg.CommandArguments())
	if raw == "" {
		b.reply(msg, editUsage)
		return
	}
	h, err := domain.ParseHoldings(raw)
	if err != nil {
		b.reply(msg, "❌ 7 sayısal değer girin! Örnek: /duzenle 30,35,2,3,50000,1000,25000")
		return
	}
	userID := strconv.FormatInt(msg.From.ID, 10)
	if err := b.portfolio.Save(ctx, userID, h); err != nil {
		log.Error("save portfolio", zap.Error(err))
		b.reply(msg, "❌ Kaydetme hatası!")
		return
	}
	b.reply(msg, FormatSaved(h))
}

func (b *Bot) handleValuation(ctx context.Context, msg *tgbotapi.Message, log *zap.Logger) {
	if msg.From == nil {
		return
	}
	userID := strconv.FormatInt(msg.From.ID, 10)
	h, v, err := b.portfolio.Valuate(ctx, userID)
	if errors.Is(err, application.ErrNotFound) {
		b.reply(msg, "❌ Portföy yok! /duzenle ile girin.")
		return
	}
	if err != nil {
		log.Error("valuate portfolio", zap.Error(err))
		b.reply(msg, "❌ Portföy okunamadı!")
		return
	}
	b.reply(msg, FormatValuation(h, v))
}

func (b *Bot) logFetch(log *zap.Logger, err error) {
	if err != nil {
		log.Warn("market fetch failed", zap.Error(err))
	}
}

func (b *Bot) reply(msg *tgbotapi.Message, text string) {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	if _, err := b.api.Send(out); err != nil {
		b.log.Warn("send reply", zap.Error(err))
	}
}
