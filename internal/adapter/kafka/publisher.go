// Package kafka publishes series snapshots to a sink topic so downstream
// dashboard renderers can consume the derived data without linking this
// service.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/coastwatch/sea-level-service/internal/config"
	"github.com/coastwatch/sea-level-service/internal/domain"
	"github.com/coastwatch/sea-level-service/internal/observability"
	kafkago "github.com/segmentio/kafka-go"
)

const (
	headerRecordType  = "record_type"
	headerGeneratedAt = "generated_at"

	recordTypePoint   = "series_point"
	recordTypeSummary = "summary"
)

// Publisher produces snapshot messages to the configured sink topic.
type Publisher struct {
	writer  *kafkago.Writer
	topic   string
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewPublisher creates a Kafka producer for the configured sink topic.
func NewPublisher(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Publisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Publisher{writer: w, topic: cfg.KafkaSinkTopic, metrics: metrics, logger: logger}
}

// PublishSnapshot writes one message per series point, keyed by year,
// followed by a summary message. All messages carry the snapshot's
// generation timestamp, so consumers can group a complete set.
func (p *Publisher) PublishSnapshot(ctx context.Context, snapshot domain.Snapshot) error {
	msgs := make([]kafkago.Message, 0, len(snapshot.Points)+1)
	for _, point := range snapshot.Points {
		msg, err := serializePoint(point, snapshot.GeneratedAt)
		if err != nil {
			p.metrics.SnapshotPublishErrors.Inc()
			return err
		}
		msgs = append(msgs, msg)
	}

	summaryMsg, err := serializeSummary(snapshot.Summary, snapshot.GeneratedAt)
	if err != nil {
		p.metrics.SnapshotPublishErrors.Inc()
		return err
	}
	msgs = append(msgs, summaryMsg)

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		p.metrics.SnapshotPublishErrors.Inc()
		return fmt.Errorf("publish snapshot: %w", err)
	}

	p.metrics.SnapshotPublishes.Inc()
	p.logger.Info("snapshot published",
		"topic", p.topic,
		"points", len(snapshot.Points),
		"generated_at", snapshot.GeneratedAt,
	)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

// serializePoint marshals a SeriesPoint into a Kafka message keyed by year.
func serializePoint(point domain.SeriesPoint, generatedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(point)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize series point %d: %w", point.Year, err)
	}
	return kafkago.Message{
		Key:     []byte(strconv.Itoa(point.Year)),
		Value:   data,
		Headers: snapshotHeaders(recordTypePoint, generatedAt),
	}, nil
}

// serializeSummary marshals the Summary into the closing message of a set.
func serializeSummary(summary domain.Summary, generatedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(summary)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize summary: %w", err)
	}
	return kafkago.Message{
		Key:     []byte(recordTypeSummary),
		Value:   data,
		Headers: snapshotHeaders(recordTypeSummary, generatedAt),
	}, nil
}

func snapshotHeaders(recordType string, generatedAt time.Time) []kafkago.Header {
	return []kafkago.Header{
		{Key: headerRecordType, Value: []byte(recordType)},
		{Key: headerGeneratedAt, Value: []byte(generatedAt.Format(time.RFC3339))},
	}
}
