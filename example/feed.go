package main

import (
	"sync"

	"github.com/nats-io/nats.go"
)

const tileSubject = "gallery.tiles"

// feedClient subscribes to the tile subject of the feed backend and
// buffers incoming tile locations until the next frame drains them.
type feedClient struct {
	nc *nats.Conn

	mu      sync.Mutex
	pending []string
}

func dialFeed(url string, wakeup func()) (*feedClient, error) {
	nc, err := nats.Connect(url, nats.Name("flowgrid-gallery"))
	if err != nil {
		return nil, err
	}

	fc := &feedClient{nc: nc}
	_, err = nc.Subscribe(tileSubject, func(msg *nats.Msg) {
		fc.mu.Lock()
		fc.pending = append(fc.pending, string(msg.Data))
		fc.mu.Unlock()
		wakeup()
	})
	if err != nil {
		nc.Close()
		return nil, err
	}
	return fc, nil
}

// drain returns the tile locations received since the last call. It is
// called from the frame loop while the subscription callback appends
// from the NATS goroutine.
func (fc *feedClient) drain() []string {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	out := fc.pending
	fc.pending = nil
	return out
}

func (fc *feedClient) Close() {
	fc.nc.Close()
}
