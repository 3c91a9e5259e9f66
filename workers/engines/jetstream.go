package engines

import (
	"errors"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/zsmartex/stockapi/mq_client"
)

// SubscribeQueue joins the durable JetStream consumer of queue, creating the
// stream when it does not exist yet.
func SubscribeQueue(js nats.JetStreamContext, queue mq_client.Queue) (*nats.Subscription, error) {
	if _, err := js.StreamInfo(queue.Stream); errors.Is(err, nats.ErrStreamNotFound) {
		if _, err := js.AddStream(&nats.StreamConfig{
			Name:     queue.Stream,
			Subjects: []string{queue.Subject},
		}); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	return js.QueueSubscribeSync(
		queue.Subject,
		queue.Group,
		nats.Durable(queue.Group),
		nats.ManualAck(),
		nats.AckExplicit(),
	)
}

// JetStreamSource reads deliveries from a JetStream sync subscription.
type JetStreamSource struct {
	sub *nats.Subscription
}

func NewJetStreamSource(sub *nats.Subscription) *JetStreamSource {
	return &JetStreamSource{sub: sub}
}

func (s *JetStreamSource) Next(timeout time.Duration) (Delivery, error) {
	m, err := s.sub.NextMsg(timeout)
	if errors.Is(err, nats.ErrTimeout) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return &jetStreamDelivery{msg: m}, nil
}

type jetStreamDelivery struct {
	msg *nats.Msg
}

func (d *jetStreamDelivery) Payload() []byte {
	return d.msg.Data
}

func (d *jetStreamDelivery) Ack() error {
	return d.msg.Ack()
}

func (d *jetStreamDelivery) Nak() error {
	return d.msg.Nak()
}
