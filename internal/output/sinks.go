// Package output publishes finished sales records to configurable
// destinations and exports the accumulated history for analytics.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/hotdogccs/hotdogsim/internal/models"
)

// RecordSink receives one sales record at the end of each simulated day.
type RecordSink interface {
	WriteRecord(rec models.SalesRecord) error
	Close() error
}

// ConsoleSink writes records as single JSON lines to stdout.
type ConsoleSink struct{}

func (c *ConsoleSink) WriteRecord(rec models.SalesRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(os.Stdout, "[sales_records] %s\n", data); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	return nil
}

func (c *ConsoleSink) Close() error { return nil }

// JSONSink appends records as JSON lines under a date-partitioned directory
// tree: <base>/<folder>/year=YYYY/month=MM/day=DD/data.json.
type JSONSink struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONSink(basePath, folder string) *JSONSink {
	return &JSONSink{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONSink) WriteRecord(rec models.SalesRecord) error {
	recTime, err := time.Parse("2006-01-02 15:04:05", rec.Date)
	if err != nil {
		recTime = time.Now()
	}
	year, month, day := recTime.Date()
	partitionPath := fmt.Sprintf("year=%d/month=%02d/day=%02d", year, month, day)
	fullPath := filepath.Join(j.basePath, j.folder, partitionPath)

	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	file, ok := j.files[partitionPath]
	if !ok {
		file, err = os.OpenFile(filepath.Join(fullPath, "data.json"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		j.files[partitionPath] = file
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		return err
	}
	_, err = file.WriteString("\n")
	return err
}

func (j *JSONSink) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}

// KafkaSink publishes records to a Kafka topic through a synchronous
// producer.
type KafkaSink struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaSink(brokerList, topic string) (*KafkaSink, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	producer, err := sarama.NewSyncProducer(strings.Split(brokerList, ","), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return &KafkaSink{producer: producer, topic: topic}, nil
}

func (k *KafkaSink) WriteRecord(rec models.SalesRecord) error {
	if k.producer == nil {
		return fmt.Errorf("kafka producer is closed")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, _, err = k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: k.topic,
		Value: sarama.ByteEncoder(data),
	})
	return err
}

func (k *KafkaSink) Close() error {
	if k.producer == nil {
		return nil
	}
	err := k.producer.Close()
	k.producer = nil
	return err
}

// ForConfig picks the record sink matching the configuration: Kafka when
// enabled, the JSON partition tree for the "json" format, console otherwise.
func ForConfig(cfg *models.Config) (RecordSink, error) {
	if cfg.Kafka.Enabled {
		return NewKafkaSink(cfg.Kafka.BrokerList, cfg.Kafka.Topic)
	}
	if cfg.Output.Format == "json" {
		return NewJSONSink(cfg.Output.Path, cfg.Output.Folder), nil
	}
	return &ConsoleSink{}, nil
}
