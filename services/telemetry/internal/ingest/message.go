package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/02loveslollipop/sgsb-barragens/services/api/patch"
)

// Message is one reading published by a field logger.
type Message struct {
	Codigo        string   `json:"codigo"`
	Valor         *float64 `json:"valor"`
	DataHora      string   `json:"dataHora"`
	NivelMontante *float64 `json:"nivelMontante"`
}

var errMissingCodigo = errors.New("message has no instrument code")

// Decode parses a payload. The instrument code falls back to the last topic
// segment, so loggers may publish to sgsb/leituras/<codigo> without repeating it.
func Decode(topic string, payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, fmt.Errorf("decode payload: %w", err)
	}
	msg.Codigo = strings.TrimSpace(msg.Codigo)
	if msg.Codigo == "" {
		if i := strings.LastIndex(topic, "/"); i >= 0 && i < len(topic)-1 {
			msg.Codigo = topic[i+1:]
		}
	}
	if msg.Codigo == "" || msg.Codigo == "#" {
		return Message{}, errMissingCodigo
	}
	return msg, nil
}

// Timestamp returns the reading time, or now when absent or unparsable.
func (m Message) Timestamp(now time.Time) time.Time {
	if t, ok := patch.ParseDate(m.DataHora); ok {
		return t.UTC()
	}
	return now.UTC()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
