package notification_service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"anke-go-api/model"
	"anke-go-api/pkg/config"
)

// Service fans notifications out through RabbitMQ when a broker is
// configured. Without one, Notify degrades to a direct table write so the
// caller never has to care.
type Service struct {
	db      *gorm.DB
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	enabled bool
}

func NewService(db *gorm.DB, cfg *config.AMQPConfig) *Service {
	s := &Service{db: db}
	if cfg == nil || !cfg.Enabled {
		return s
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		log.Printf("notification: amqp dial failed, falling back to direct writes: %v", err)
		return s
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("notification: amqp channel failed, falling back to direct writes: %v", err)
		conn.Close()
		return s
	}

	q, err := ch.QueueDeclare(
		cfg.Queue, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		log.Printf("notification: queue declare failed, falling back to direct writes: %v", err)
		ch.Close()
		conn.Close()
		return s
	}

	s.conn = conn
	s.channel = ch
	s.queue = q
	s.enabled = true
	return s
}

// Notify records a notification for the user. With a broker it publishes
// to the queue and the consumer persists the row; otherwise it writes the
// row directly.
func (s *Service) Notify(ctx context.Context, n *model.Notification) error {
	if !s.enabled {
		return s.db.WithContext(ctx).Create(n).Error
	}

	body, err := json.Marshal(n)
	if err != nil {
		return err
	}

	err = s.channel.Publish(
		"",           // exchange
		s.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
	if err != nil {
		log.Printf("notification: publish failed, writing directly: %v", err)
		return s.db.WithContext(ctx).Create(n).Error
	}
	return nil
}

// StartConsumer drains the queue into the notifications table. No-op when
// the broker is unavailable.
func (s *Service) StartConsumer() {
	if !s.enabled {
		return
	}

	msgs, err := s.channel.Consume(
		s.queue.Name, // queue
		"",           // consumer
		true,         // auto-ack
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		log.Printf("notification: consumer registration failed: %v", err)
		return
	}

	go func() {
		for d := range msgs {
			var n model.Notification
			if err := json.Unmarshal(d.Body, &n); err != nil {
				log.Printf("notification: decode message: %v", err)
				continue
			}
			if err := s.db.Create(&n).Error; err != nil {
				log.Printf("notification: persist message: %v", err)
			}
		}
	}()
}

// ListForUser returns a user's notifications, newest first.
func (s *Service) ListForUser(ctx context.Context, userID int, limit int) ([]model.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	var notifications []model.Notification
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&notifications).Error
	return notifications, err
}

// MarkRead flags a user's notification as read.
func (s *Service) MarkRead(ctx context.Context, userID, notificationID int) error {
	return s.db.WithContext(ctx).Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true).Error
}

// Close tears the broker connection down.
func (s *Service) Close() {
	if s.channel != nil {
		s.channel.Close()
	}
	if s.conn != nil {
		s.conn.Close()
	}
}
