package queue

import (
	"context"
	"encoding/json"
	"time"

	"renta_backend/internal/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher публикует доменные события. Ошибки публикации не должны
// прерывать основной поток запроса: вызывающий волен их игнорировать
type Publisher interface {
	Publish(ctx context.Context, queueName string, event interface{}) error
	Close() error
}

// AMQPPublisher - публикация в RabbitMQ.
// Держит одно соединение и открывает канал на публикацию
type AMQPPublisher struct {
	conn *amqp.Connection
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return &AMQPPublisher{conn: conn}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, queueName string, event interface{}) error {
	ch, err := p.conn.Channel()
	if err != nil {
		logger.WithError(err).Error("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Очередь объявляется идемпотентно. durable - сообщения переживают
	// рестарт брокера
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		logger.WithError(err).Error("rabbitmq: queue declare failed", "queue", queueName)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.WithError(err).Error("rabbitmq: marshal event failed", "queue", queueName)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		logger.WithError(err).Error("rabbitmq: publish failed", "queue", queueName)
		return err
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	return p.conn.Close()
}

// NoopPublisher используется, когда брокер не сконфигурирован
type NoopPublisher struct{}

func (NoopPublisher) Publish(ctx context.Context, queueName string, event interface{}) error {
	return nil
}

func (NoopPublisher) Close() error { return nil }
