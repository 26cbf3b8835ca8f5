// Package events publishes recorded measurements to an AMQP broker.
//
// The publisher subscribes to the measurement store and forwards every new
// record as one JSON message on a declared queue. Records are handed off
// through a buffered mailbox consumed by a single background goroutine, so
// a slow or unreachable broker never blocks the recording path. Publish
// failures are logged and dropped, never surfaced to the submitting caller.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/models"
)

const (
	// mailboxSize bounds how many unpublished records may queue up
	// before new ones are dropped.
	mailboxSize = 64

	publishTimeout = 5 * time.Second
)

// MeasurementPublisher forwards newly recorded measurements to an AMQP
// queue. Construct it with NewMeasurementPublisher, start the consuming
// goroutine with Run and shut it down with Stop.
type MeasurementPublisher struct {
	cfg config.Broker

	mailbox chan models.Measurement
	done    chan struct{}
	once    sync.Once
	wg      sync.WaitGroup

	conn    *amqp.Connection
	channel *amqp.Channel

	logger *logger.Logger
}

// NewMeasurementPublisher attaches a publisher to the measurement store.
// The subscription is registered immediately; records arriving before Run
// is called wait in the mailbox.
func NewMeasurementPublisher(cfg config.Broker, measurements store.MeasurementRepository, logger *logger.Logger) *MeasurementPublisher {
	p := &MeasurementPublisher{
		cfg:     cfg,
		mailbox: make(chan models.Measurement, mailboxSize),
		done:    make(chan struct{}),
		logger:  logger,
	}

	measurements.SubscribeMeasurements(p.enqueue)

	return p
}

// Run starts the consuming goroutine. It satisfies [workers.Worker]
// and returns immediately.
func (p *MeasurementPublisher) Run() {
	p.wg.Add(1)
	go p.run()
}

// Stop shuts the publisher down: no further records are accepted, the
// mailbox is drained and the broker connection is closed. It blocks until
// the consuming goroutine exits.
func (p *MeasurementPublisher) Stop() {
	p.once.Do(func() { close(p.done) })
	p.wg.Wait()
}

// enqueue is the store subscription callback. It must never block the
// store mutation that triggered it, so a full mailbox drops the record.
func (p *MeasurementPublisher) enqueue(m models.Measurement) {
	select {
	case <-p.done:
		return
	default:
	}

	select {
	case p.mailbox <- m:
	default:
		p.logger.Warn().
			Str("measurement_id", m.ID).
			Msg("event mailbox is full, dropping measurement event")
	}
}

func (p *MeasurementPublisher) run() {
	defer p.wg.Done()

	if err := p.connect(); err != nil {
		p.logger.Error().Err(err).Msg("broker connection failed, measurement events are disabled")
		return
	}
	defer p.close()

	p.logger.Info().
		Str("queue", p.cfg.Queue).
		Msg("measurement event publisher started")

	for {
		select {
		case m := <-p.mailbox:
			p.publish(m)
		case <-p.done:
			p.drain()
			return
		}
	}
}

// drain publishes whatever is still queued at shutdown.
func (p *MeasurementPublisher) drain() {
	for {
		select {
		case m := <-p.mailbox:
			p.publish(m)
		default:
			return
		}
	}
}

func (p *MeasurementPublisher) connect() error {
	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		return fmt.Errorf("error dialing broker: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("error opening broker channel: %w", err)
	}

	if _, err = channel.QueueDeclare(
		p.cfg.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return fmt.Errorf("error declaring queue %q: %w", p.cfg.Queue, err)
	}

	p.conn = conn
	p.channel = channel

	return nil
}

func (p *MeasurementPublisher) publish(m models.Measurement) {
	body, err := json.Marshal(m)
	if err != nil {
		p.logger.Error().Err(err).
			Str("measurement_id", m.ID).
			Msg("error encoding measurement event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(ctx,
		"",          // default exchange
		p.cfg.Queue, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType: "application/json",
			MessageId:   m.ID,
			Timestamp:   m.Date,
			Body:        body,
		})
	if err != nil {
		p.logger.Error().Err(err).
			Str("measurement_id", m.ID).
			Msg("error publishing measurement event")
		return
	}

	p.logger.Debug().
		Str("measurement_id", m.ID).
		Msg("measurement event published")
}

func (p *MeasurementPublisher) close() {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Error().Err(err).Msg("error closing broker channel")
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			p.logger.Error().Err(err).Msg("error closing broker connection")
		}
	}
}
