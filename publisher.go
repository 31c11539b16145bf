package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// Publisher delivers fetch reports to an external sink.
type Publisher interface {
	Publish(r Report) error
}

// MQTTPublisher publishes reports as JSON to an MQTT topic.
type MQTTPublisher struct {
	client  mqtt.Client
	topic   string
	timeout time.Duration
}

// NewMQTTPublisher connects to the configured broker. A client id is
// generated when none is configured.
func NewMQTTPublisher(cfg MQTTConfig, logger *slog.Logger) (*MQTTPublisher, error) {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "gsmquery-" + uuid.NewString()[:8]
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	opts.SetClientID(clientID)
	opts.SetUsername(cfg.Username)
	opts.SetPassword(cfg.Password)
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		logger.Warn("MQTT connection lost", "error", err)
	})
	opts.SetOnConnectHandler(func(_ mqtt.Client) {
		logger.Info("Connected to MQTT broker", "broker", cfg.Broker, "client_id", clientID)
	})

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, errors.New("mqtt connect: timed out")
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt connect: %w", err)
	}

	return newMQTTPublisher(client, cfg.Topic), nil
}

func newMQTTPublisher(client mqtt.Client, topic string) *MQTTPublisher {
	return &MQTTPublisher{client: client, topic: topic, timeout: 5 * time.Second}
}

// Publish sends r with QoS 1, not retained, and waits for the broker.
func (p *MQTTPublisher) Publish(r Report) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	token := p.client.Publish(p.topic, 1, false, payload)
	if !token.WaitTimeout(p.timeout) {
		return fmt.Errorf("publish to %s: timed out", p.topic)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("publish to %s: %w", p.topic, err)
	}
	return nil
}

// Close disconnects from the broker, letting in-flight work finish.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
