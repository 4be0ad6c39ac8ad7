package store

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const eventsFileName = "events.jsonl"

// Cart event types.
const (
	EventFoodAdd      = "cart.food.add"
	EventSafariSet    = "cart.safari.set"
	EventSafariAppend = "cart.safari.append"
	EventConfirm      = "cart.confirm"
	EventClear        = "cart.clear"
)

type Event struct {
	ID      string          `json:"id"`
	TS      time.Time       `json:"ts"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func (s Store) eventsPath() string {
	return filepath.Join(s.Dir, eventsFileName)
}

// AppendEvent appends one line to the workspace event log.
func (s Store) AppendEvent(typ string, payload any) error {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return errors.New("event: missing type")
	}
	if err := s.Ensure(); err != nil {
		return err
	}
	var raw json.RawMessage
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		raw = b
	}
	ev := Event{
		ID:      uuid.NewString(),
		TS:      time.Now().UTC(),
		Type:    typ,
		Payload: raw,
	}
	line, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.eventsPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}

// ReadEvents returns up to limit of the most recent events, oldest first.
// Lines that fail to parse are skipped. limit <= 0 returns everything.
func (s Store) ReadEvents(limit int) ([]Event, error) {
	f, err := os.Open(s.eventsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Event{}, nil
		}
		return nil, err
	}
	defer f.Close()

	var out []Event
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			continue
		}
		out = append(out, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	if out == nil {
		out = []Event{}
	}
	return out, nil
}
