package config

import (
	"github.com/nats-io/nats.go"
)

var Nats *nats.Conn

func ConnectNats(env *Env) error {
	var options []nats.Option
	if len(env.NatsUser) > 0 {
		options = append(options, nats.UserInfo(env.NatsUser, env.NatsPass))
	}

	n, err := nats.Connect(env.NatsURL, options...)
	if err != nil {
		return err
	}

	Nats = n

	return nil
}
