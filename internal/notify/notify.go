// Package notify sends best-effort OSC notifications about patch
// operations, the same fire-and-forget style the host tracker uses to tell
// its audio engine about playback state changes.
package notify

import (
	"fmt"
	"log"
	"net"
	"strconv"

	"github.com/hypebeast/go-osc/osc"
)

// OSCNotifier sends a message to Addr ("host:port") for each notified event.
// A zero-value OSCNotifier with an empty Addr is a no-op.
type OSCNotifier struct {
	Addr string
}

// Notify sends /dlgctl/<event> with path as its single string argument.
// Send failures are logged, never returned: notification is advisory and
// must never block or fail the operation it's attached to.
func (n OSCNotifier) Notify(event string, path string) {
	if n.Addr == "" {
		return
	}
	host, port, err := splitAddr(n.Addr)
	if err != nil {
		log.Printf("notify: invalid OSC address %q: %v", n.Addr, err)
		return
	}

	client := osc.NewClient(host, port)
	msg := osc.NewMessage(fmt.Sprintf("/dlgctl/%s", event))
	msg.Append(path)

	if err := client.Send(msg); err != nil {
		log.Printf("notify: error sending OSC message to %s: %v", n.Addr, err)
	}
}

func splitAddr(addr string) (host string, port int, err error) {
	h, rawPort, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, err
	}
	p, err := strconv.Atoi(rawPort)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in address %q: %w", addr, err)
	}
	return h, p, nil
}
