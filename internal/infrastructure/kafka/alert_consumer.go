package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/Liso15/UbuntuExpress/internal/cfg"
	"github.com/Liso15/UbuntuExpress/internal/usecase"
	"github.com/Liso15/UbuntuExpress/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// AlertConsumer читает события изменения цен из Kafka и передаёт их в
// AlertUC для генерации уведомлений о падении цены. Сообщение подтверждается
// и при ошибке обработки: повторная доставка дала бы дубликат алерта.
type AlertConsumer struct {
	reader  *kafka.Reader
	alertUC usecase.AlertUC
	logger  logger.Logger
	wg      sync.WaitGroup
}

func NewAlertConsumer(cfg *cfg.KafkaCfg, alertUC usecase.AlertUC, logger logger.Logger) *AlertConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
		GroupID: cfg.GroupID,
	})

	return &AlertConsumer{
		reader:  reader,
		alertUC: alertUC,
		logger:  logger,
	}
}

func (c *AlertConsumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx)
	}()
}

func (c *AlertConsumer) run(ctx context.Context) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.logger.Warnf("Kafka fetch failed: %v", err)
			continue
		}

		c.handleMessage(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Warnf("Kafka commit failed: %v", err)
		}
	}
}

func (c *AlertConsumer) handleMessage(ctx context.Context, msg kafka.Message) {
	var event usecase.PriceChangeEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Warnf("skipping malformed price event at offset %d: %v", msg.Offset, err)
		return
	}

	if err := c.alertUC.HandlePriceChange(ctx, &event); err != nil {
		c.logger.Warnf("price event %s handling failed: %v", event.EventID, err)
	}
}

// Close останавливает чтение и дожидается завершения цикла обработки.
func (c *AlertConsumer) Close() error {
	err := c.reader.Close()
	c.wg.Wait()
	return err
}
