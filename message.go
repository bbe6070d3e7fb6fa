// Package swiftmt implements a round-trip-exact codec and SR2025
// network-validator for SWIFT FIN MT messages: parsing raw wire text into
// typed Go message structs, re-emitting them byte-for-byte, and checking
// the conditional/content rules the network itself enforces.
package swiftmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/deltran/swiftmt/internal/block"
	"go.uber.org/zap"
)

// Body is implemented by every typed message assembler (MT103, MT202, ...).
// Each type registers a bodyParser, which consumes the ordered field list
// produced by the tokenizer, and a bodyEmitter, which renders it back in
// declared order.
type Body interface {
	MessageType() string
}

type bodyParser func(fields []block.Field) (Body, error)
type bodyEmitter func(Body) []block.Field

var messageRegistry = make(map[string]bodyParser)
var emitterRegistry = make(map[string]bodyEmitter)

// registerMessageType wires a message type's assembler into Parse/Emit
// dispatch; called from each message family's init().
func registerMessageType(mt string, parse bodyParser, emit bodyEmitter) {
	messageRegistry[mt] = parse
	emitterRegistry[mt] = emit
}

// Message is a fully parsed FIN message: its envelope (Blocks 1,2,3,5) and
// its typed Block 4 body.
type Message struct {
	Envelope Envelope
	Body     Body
}

// MessageType returns Block 2's message type (e.g. "103"), the canonical
// identifier used throughout the codec and by Validate's dispatch.
func (m *Message) MessageType() string {
	return m.Envelope.Application.MessageType
}

// Parse runs the full C4→C8/C5→C6→C3/C2 pipeline on raw FIN wire text.
func Parse(raw []byte, opts ...Option) (*Message, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	start := time.Now()
	msg, err := parseInner(raw, o)
	mt := "unknown"
	if msg != nil {
		mt = msg.MessageType()
	}
	o.metrics.ParseTotal.WithLabelValues(mt, outcomeLabel(err)).Inc()
	o.metrics.ParseDuration.WithLabelValues(mt).Observe(time.Since(start).Seconds())
	if err != nil {
		o.logger.Warn("parse failed", zap.Error(err))
	} else {
		o.logger.Debug("parsed message", zap.String("message_type", mt))
	}
	return msg, err
}

func parseInner(raw []byte, o *options) (*Message, error) {
	blocks, err := block.SplitBlocks(string(raw))
	if err != nil {
		return nil, wrapParseError("envelope", "", 0, err)
	}

	var env Envelope
	var block4 *block.Block
	sawBasic, sawApp := false, false
	for i := range blocks {
		b := blocks[i]
		switch b.ID {
		case '1':
			h, err := parseBasicHeader(b.Content)
			if err != nil {
				return nil, wrapParseError("envelope", "", b.Offset, err)
			}
			env.Basic = h
			sawBasic = true
		case '2':
			h, err := parseApplicationHeader(b.Content)
			if err != nil {
				return nil, wrapParseError("envelope", "", b.Offset, err)
			}
			env.Application = h
			sawApp = true
		case '3':
			tv, err := parseTagValueBlock(b.Content)
			if err != nil {
				return nil, wrapParseError("envelope", "", b.Offset, err)
			}
			env.UserHeader = tv
		case '4':
			block4 = &blocks[i]
		case '5':
			tv, err := parseTagValueBlock(b.Content)
			if err != nil {
				return nil, wrapParseError("envelope", "", b.Offset, err)
			}
			env.Trailer = tv
		}
	}
	if !sawBasic {
		return nil, wrapParseError("envelope", "", 0, fmt.Errorf("message is missing Block 1 (basic header)"))
	}
	if !sawApp {
		return nil, wrapParseError("envelope", "", 0, fmt.Errorf("message is missing Block 2 (application header)"))
	}
	if block4 == nil {
		return nil, wrapParseError("envelope", "", 0, fmt.Errorf("message is missing Block 4 (text block)"))
	}

	b4fields, err := block.TokenizeBlock4(block4.Content)
	if err != nil {
		return nil, wrapParseError("block4", "", block4.Offset, err)
	}

	mt := env.Application.MessageType
	parse, ok := messageRegistry[mt]
	if !ok {
		return nil, wrapParseError("assembler", "", block4.Offset, fmt.Errorf("%w: %q", ErrUnknownMessageType, mt))
	}
	body, err := parse(b4fields)
	if err != nil {
		return nil, wrapParseError("assembler", "", block4.Offset, err)
	}

	return &Message{Envelope: env, Body: body}, nil
}

// Emit renders m back to FIN wire text. Emit(Parse(raw)) reproduces raw
// exactly for any message Parse accepted whose Block 4 uses CRLF line
// endings, with no whitespace around or between blocks and no blank lines;
// Emit always writes CRLF and drops those spacers.
func Emit(m *Message, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	out, err := emitInner(m)
	mt := m.MessageType()
	o.metrics.EmitTotal.WithLabelValues(mt, outcomeLabel(err)).Inc()
	if err != nil {
		o.logger.Warn("emit failed", zap.Error(err), zap.String("message_type", mt))
	}
	return out, err
}

func emitInner(m *Message) (string, error) {
	mt := m.MessageType()
	emit, ok := emitterRegistry[mt]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMessageType, mt)
	}
	fs := emit(m.Body)

	var sb strings.Builder
	sb.WriteString(block.EmitBlock('1', m.Envelope.Basic.emit()))
	sb.WriteString(block.EmitBlock('2', m.Envelope.Application.emit()))
	if m.Envelope.UserHeader != nil {
		sb.WriteString(block.EmitBlock('3', m.Envelope.UserHeader.emit()))
	}
	sb.WriteString(block.EmitBlock('4', block.EmitBlock4(fs)))
	if m.Envelope.Trailer != nil {
		sb.WriteString(block.EmitBlock('5', m.Envelope.Trailer.emit()))
	}
	return sb.String(), nil
}
