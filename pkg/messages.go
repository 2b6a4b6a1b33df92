package pkg

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/qnkhuat/chessterm/pkg/board"
)

type MessageType string

const (
	TypeMessageClick MessageType = "click"
	TypeMessageReset MessageType = "reset"
	TypeMessageState MessageType = "state"
	TypeMessageError MessageType = "error"
)

type MessageInterface interface {
	Type() MessageType
	Encode() json.RawMessage
}

// MessageTransport is the envelope every message travels in.
type MessageTransport struct {
	MsgType MessageType     `json:"type"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (m MessageTransport) Type() MessageType {
	return m.MsgType
}

func (m MessageTransport) Encode() json.RawMessage {
	return Encode(m)
}

// MessageClick is a click on a square, sent by the browser.
type MessageClick struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (m MessageClick) Type() MessageType {
	return TypeMessageClick
}

func (m MessageClick) Encode() json.RawMessage {
	return Encode(m)
}

func (m MessageClick) Square() board.Square {
	return board.Square{Row: m.Row, Col: m.Col}
}

// MessageReset asks for the starting position.
type MessageReset struct{}

func (m MessageReset) Type() MessageType {
	return TypeMessageReset
}

func (m MessageReset) Encode() json.RawMessage {
	return Encode(m)
}

// MessageState carries a snapshot to the browser.
type MessageState struct {
	Snapshot
	Fen string `json:"fen"`
}

func NewMessageState(s Snapshot) MessageState {
	var prev *board.Move
	if s.HasPrevious {
		prev = &s.Previous
	}
	return MessageState{
		Snapshot: s,
		Fen:      board.EncodeFEN(s.Board, s.Turn, prev, s.Castle),
	}
}

func (m MessageState) Type() MessageType {
	return TypeMessageState
}

func (m MessageState) Encode() json.RawMessage {
	return Encode(m)
}

type MessageError struct {
	Error string `json:"error"`
}

func (m MessageError) Type() MessageType {
	return TypeMessageError
}

func (m MessageError) Encode() json.RawMessage {
	return Encode(m)
}

// Wrap puts m in its transport envelope.
func Wrap(m MessageInterface) MessageTransport {
	return MessageTransport{MsgType: m.Type(), Data: m.Encode()}
}

func Encode(v interface{}) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		log.Panic(err)
	}
	return data
}

func Decode(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %T: %w", v, err)
	}
	return nil
}
