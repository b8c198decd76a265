package producers

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

const topicLookupAttempts = 5

// ensureTopicExists creates the topic when the broker does not know it yet.
// Partition reads are retried because the broker may still be coming up when
// the producer connects.
func ensureTopicExists(conn *kafka.Conn, topic string, numPartitions, replicationFactor int, log *slog.Logger) error {
	if numPartitions <= 0 {
		numPartitions = 1
	}
	if replicationFactor <= 0 {
		replicationFactor = 1
	}

	var partitions []kafka.Partition
	var err error
	for attempt := 1; attempt <= topicLookupAttempts; attempt++ {
		partitions, err = conn.ReadPartitions(topic)
		if err == nil {
			break
		}
		log.Warn("Partition lookup failed, retrying", "topic", topic, "attempt", attempt, "error", err)
		time.Sleep(2 * time.Second)
	}

	if len(partitions) > 0 {
		log.Debug("Topic already present on broker", "topic", topic)
		return nil
	}

	log.Info("Creating missing topic", "topic", topic,
		"partitions", numPartitions, "replication_factor", replicationFactor)
	if err := conn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     numPartitions,
		ReplicationFactor: replicationFactor,
	}); err != nil {
		return fmt.Errorf("failed to create topic %s: %w", topic, err)
	}

	return nil
}
