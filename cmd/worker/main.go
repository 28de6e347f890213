package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/reviewlab/reviewgraph/internal/queue"
	"github.com/reviewlab/reviewgraph/internal/util"
	"github.com/reviewlab/reviewgraph/pkg/graph"
	"github.com/reviewlab/reviewgraph/pkg/logger"
	"github.com/reviewlab/reviewgraph/pkg/logger/console"
	"github.com/reviewlab/reviewgraph/pkg/tagger"
)

const maxJobRetries = 5

func main() {
	util.LoadEnv()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// logger
	debug := util.GetEnvBool("DEBUG", false)
	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	// Tagging service client
	taggerClient := tagger.NewClient(tagger.NewClientParams{
		BaseURL:    util.GetEnv("TAGGER_URL"),
		MaxRetries: util.GetEnvInt("TAGGER_MAX_RETRIES", 3),
	})

	engine, err := graph.NewEngine(graph.NewEngineParams{
		Tagger:          taggerClient,
		MinFrequency:    util.GetEnvInt("MIN_FREQUENCY", 0),
		MinCooccurrence: util.GetEnvInt("MIN_COOCCURRENCE", 0),
		TagParallelism:  util.GetEnvInt("TAG_PARALLELISM", 0),
	})
	if err != nil {
		logger.Fatal("Could not create engine", "err", err)
	}

	// Init rabbitmq
	conn := queue.Init()
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatal("Failed to open channel", "err", err)
	}
	defer ch.Close()

	if err := queue.SetupQueues(ch, []string{queue.AnalyzeQueue}); err != nil {
		logger.Fatal("Failed to set up queues", "err", err)
	}

	err = ch.Qos(1, 0, false)
	if err != nil {
		logger.Fatal("Failed to set QoS", "err", err)
	}

	msgs, err := ch.Consume(
		queue.AnalyzeQueue,
		fmt.Sprintf("%s_consumer", queue.AnalyzeQueue),
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,   // args
	)
	if err != nil {
		logger.Fatal("Failed to start consuming", "queue", queue.AnalyzeQueue, "err", err)
	}

	logger.Info("Listening for messages", "queue", queue.AnalyzeQueue)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutdown signal received, exiting...")
			return
		case msg, ok := <-msgs:
			if !ok {
				logger.Info("Message channel closed")
				return
			}

			startTime := time.Now()
			logger.Info("Received message", "queue", queue.AnalyzeQueue)

			processingErr := queue.ProcessAnalyzeMessage(ctx, engine, string(msg.Body))
			if processingErr != nil {
				logger.Error("Error processing message", "err", processingErr)
				handleProcessingError(ch, msg, queue.AnalyzeQueue)
			} else {
				if err := msg.Ack(false); err != nil {
					logger.Error("Failed to ack message", "err", err)
				}
				logger.Info("Message processed successfully", "duration", time.Since(startTime).Round(time.Second))
			}
		}
	}
}

// handleProcessingError republishes a failed message to the retry queue, or
// to the dead-letter queue once it has exhausted its retries.
func handleProcessingError(ch *amqp.Channel, msg amqp.Delivery, queueName string) {
	retries := 0
	if val, ok := msg.Headers["x-retries"]; ok {
		if v, ok := val.(int32); ok {
			retries = int(v)
		}
	}

	if retries >= maxJobRetries {
		dlqName := queueName + "_dlq"
		logger.Info("Sending message to DLQ", "dlq", dlqName)
		pubErr := queue.PublishFIFO(ch, dlqName, msg.Body, msg.Headers)
		if pubErr != nil {
			logger.Error("Failed to publish to DLQ", "dlq", dlqName, "err", pubErr)
			msg.Nack(false, true)
			return
		}
		msg.Ack(false)
		return
	}

	retryName := queueName + "_retry"
	headers := msg.Headers
	if headers == nil {
		headers = amqp.Table{}
	}
	headers["x-retries"] = int32(retries + 1)

	pubErr := queue.PublishFIFO(ch, retryName, msg.Body, headers)
	if pubErr != nil {
		logger.Error("Failed to publish to retry queue", "retry_queue", retryName, "err", pubErr)
		msg.Nack(false, true)
		return
	}
	msg.Ack(false)
}
