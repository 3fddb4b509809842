// Package hub fans messages out to websocket clients over channels.
package hub

// MessageType selects the websocket frame type used for a Message.
type MessageType int

const (
	JSONMessage MessageType = iota
	BinaryMessage
)

// Message is one broadcast payload.
type Message struct {
	Type MessageType
	Data []byte
}

func NewJSONMessage(data []byte) Message {
	return Message{Type: JSONMessage, Data: data}
}

func NewBinaryMessage(data []byte) Message {
	return Message{Type: BinaryMessage, Data: data}
}
