// Package transport implements a thin websocket relay for collaborative
// editing operations: each connected client's operations are decoded off
// the wire and handed to a caller-supplied handler, then rebroadcast to
// every other client on the same document. Session persistence, operation
// history, and conflict-resolution policy are transport-layer concerns
// this package deliberately leaves out — a real deployment's job, not the
// core's. Grounded on the teacher's websocket.go connection-pool shape,
// trimmed to this narrower demonstration scope.
package transport

import "github.com/coreseekdev/inkweave/pkg/ot"

// OperationHandler is invoked once per decoded incoming operation, before
// it is rebroadcast to the document's other clients. clientID identifies
// the sender.
type OperationHandler func(clientID string, op ot.Operation)

// TransportError reports a relay-level failure, mirroring the teacher's
// own TransportError convention for transport-layer errors.
type TransportError struct {
	Code    string
	Message string
}

func (e *TransportError) Error() string {
	return e.Message
}

// ErrTransportClosed is returned by operations attempted after Close.
var ErrTransportClosed = &TransportError{Code: "closed", Message: "transport closed"}
