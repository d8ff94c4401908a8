// Package mqtt wraps the paho client for the telemetry subscriber.
package mqtt

import (
	"context"
	"fmt"
	"sync"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

// Handler processes one message. Errors are logged and do not stop the subscription.
type Handler func(ctx context.Context, topic string, payload []byte) error

// Options configure the broker connection.
type Options struct {
	Broker   string
	ClientID string
	Username string
	Password string
}

type subscription struct {
	topic   string
	qos     byte
	handler Handler
}

// Client is a paho client that restores its subscriptions after a reconnect.
type Client struct {
	client paho.Client
	logger *zap.Logger

	mu   sync.Mutex
	subs []subscription
	ctx  context.Context
}

func NewClient(opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{logger: logger, ctx: context.Background()}

	po := paho.NewClientOptions()
	po.AddBroker(opts.Broker)
	po.SetClientID(opts.ClientID)
	if opts.Username != "" {
		po.SetUsername(opts.Username)
	}
	if opts.Password != "" {
		po.SetPassword(opts.Password)
	}
	po.SetAutoReconnect(true)
	po.SetCleanSession(true)
	po.SetConnectTimeout(10 * time.Second)
	po.SetMaxReconnectInterval(time.Minute)
	po.SetOnConnectHandler(c.onConnect)
	po.SetConnectionLostHandler(func(_ paho.Client, err error) {
		logger.Warn("mqtt connection lost", zap.Error(err))
	})

	c.client = paho.NewClient(po)
	return c
}

// Connect blocks until the broker accepts the connection or ctx ends.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	c.ctx = ctx
	c.mu.Unlock()

	token := c.client.Connect()
	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", err)
	}
	return nil
}

// Subscribe registers handler for topic and keeps it across reconnects.
func (c *Client) Subscribe(topic string, qos byte, handler Handler) error {
	sub := subscription{topic: topic, qos: qos, handler: handler}
	if err := c.subscribe(sub); err != nil {
		return err
	}
	c.mu.Lock()
	c.subs = append(c.subs, sub)
	c.mu.Unlock()
	return nil
}

func (c *Client) subscribe(sub subscription) error {
	token := c.client.Subscribe(sub.topic, sub.qos, func(_ paho.Client, msg paho.Message) {
		c.mu.Lock()
		ctx := c.ctx
		c.mu.Unlock()
		if err := sub.handler(ctx, msg.Topic(), msg.Payload()); err != nil {
			c.logger.Warn("mqtt message not processed",
				zap.String("topic", msg.Topic()),
				zap.Error(err),
			)
		}
	})
	token.Wait()
	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", sub.topic, err)
	}
	return nil
}

// onConnect runs on every (re)connect. Clean sessions drop subscriptions.
func (c *Client) onConnect(_ paho.Client) {
	c.mu.Lock()
	subs := append([]subscription(nil), c.subs...)
	c.mu.Unlock()

	c.logger.Info("mqtt connected", zap.Int("subscriptions", len(subs)))
	for _, sub := range subs {
		go func(s subscription) {
			if err := c.subscribe(s); err != nil {
				c.logger.Error("mqtt resubscribe failed", zap.String("topic", s.topic), zap.Error(err))
			}
		}(sub)
	}
}

func (c *Client) IsConnected() bool {
	return c.client.IsConnected()
}

// Disconnect waits up to 250ms for in-flight work.
func (c *Client) Disconnect() {
	c.client.Disconnect(250)
}
