package driver

import (
	"time"

	"github.com/nats-io/nats.go"
)

const (
	natsMaxReconnects = 5
	natsReconnectWait = 2 * time.Second
)

// ConnectNATS connects to the NATS server carrying cart events and
// returns a *nats.Conn and an error
func ConnectNATS(url string) (*nats.Conn, error) {
	return nats.Connect(url,
		nats.MaxReconnects(natsMaxReconnects),
		nats.ReconnectWait(natsReconnectWait),
		nats.Timeout(dialTimeout),
	)
}
