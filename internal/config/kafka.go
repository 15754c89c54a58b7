package config

import (
	"os"
	"strings"

	"github.com/segmentio/kafka-go"
)

func getKafkaBrokerURLs() []string {
	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		return nil
	}
	return strings.Split(brokers, ",")
}

// NewKafkaWriter returns a writer for the given topic, or nil when no
// brokers are configured so event publishing is disabled.
func NewKafkaWriter(topic string) *kafka.Writer {
	brokers := getKafkaBrokerURLs()
	if len(brokers) == 0 {
		return nil
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
}
