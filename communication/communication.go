package communication

// BufferSize bounds a single state record read from the peer.
const BufferSize = 1024

// Responder answers one state record with one response line.
type Responder interface {
	Respond(record string) string
}

// ResponderFunc adapts a plain function to a Responder.
type ResponderFunc func(record string) string

func (f ResponderFunc) Respond(record string) string {
	return f(record)
}
