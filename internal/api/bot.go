package telegram

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	app "thermal-report/internal/application"
	"thermal-report/internal/domain/entity"
	"thermal-report/internal/domain/port"
)

const (
	msgSummary = `Thermal report batch finished
Mode: %s
Files: %d
Produced: %d
Failed: %d
With warnings: %d`

	msgRasterCaption = "%s\nRadiometric raster, %s"
)

// sender — часть BotAPI, нужная публикатору.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Bot отправляет готовые отчёты в чат Telegram
type Bot struct {
	api    sender
	chatID int64
	log    zerolog.Logger
}

// NewBot авторизуется в Telegram и создаёт публикатора
func NewBot(token string, chatID int64, log zerolog.Logger) (*Bot, error) {
	if token == "" {
		return nil, errors.New("telegram token is empty")
	}
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	log.Info().Str("account", api.Self.UserName).Msg("telegram authorized")

	return newBot(api, chatID, log), nil
}

func newBot(api sender, chatID int64, log zerolog.Logger) *Bot {
	return &Bot{api: api, chatID: chatID, log: log}
}

// Publish отправляет артефакт одного файла: карту как фото, растр как документ
func (b *Bot) Publish(ctx context.Context, result *entity.FileResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if result == nil || result.Artifact == nil {
		return nil
	}

	artifact := result.Artifact
	file := tgbotapi.FilePath(artifact.Path)

	var msg tgbotapi.Chattable
	switch artifact.Kind {
	case entity.ArtifactChart:
		photo := tgbotapi.NewPhoto(b.chatID, file)
		photo.Caption = caption(result)
		msg = photo
	case entity.ArtifactRaster:
		doc := tgbotapi.NewDocument(b.chatID, file)
		doc.Caption = caption(result)
		msg = doc
	default:
		return fmt.Errorf("unknown artifact kind %q", artifact.Kind)
	}

	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("send %s: %w", filepath.Base(artifact.Path), err)
	}
	b.log.Debug().Str("file", filepath.Base(artifact.Path)).Msg("artifact published")
	return nil
}

// PublishSummary отправляет итог запуска текстом
func (b *Bot) PublishSummary(ctx context.Context, summary entity.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	text := fmt.Sprintf(msgSummary, summary.Mode.Description(), summary.Total, summary.Produced, summary.Failed, summary.Warned)
	if _, err := b.api.Send(tgbotapi.NewMessage(b.chatID, text)); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}
	return nil
}

// caption — имя исходного файла и строка статистики
func caption(result *entity.FileResult) string {
	name := filepath.Base(result.Source)
	if result.Artifact.Kind == entity.ArtifactRaster {
		return fmt.Sprintf(msgRasterCaption, name, filepath.Ext(result.Artifact.Path))
	}
	if result.Statistics == nil {
		return name
	}
	return name + "\n" + app.StatsBanner(*result.Statistics)
}

var _ port.ReportPublisher = (*Bot)(nil)
