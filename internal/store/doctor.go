package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"savanna-cli/internal/model"
)

type DoctorIssueLevel string

const (
	DoctorIssueLevelError DoctorIssueLevel = "error"
	DoctorIssueLevelWarn  DoctorIssueLevel = "warn"
)

type DoctorIssue struct {
	Level   DoctorIssueLevel `json:"level"`
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Path    string           `json:"path,omitempty"`
	Line    int              `json:"line,omitempty"`
}

type DoctorReport struct {
	Issues []DoctorIssue `json:"issues"`
}

func (r DoctorReport) HasErrors() bool {
	for _, it := range r.Issues {
		if it.Level == DoctorIssueLevelError {
			return true
		}
	}
	return false
}

func (r *DoctorReport) add(level DoctorIssueLevel, code, msg, path string, line int) {
	r.Issues = append(r.Issues, DoctorIssue{Level: level, Code: code, Message: msg, Path: path, Line: line})
}

// Doctor inspects the workspace without changing it. A malformed cart loads
// as empty at runtime, so it is reported here instead.
func (s Store) Doctor() DoctorReport {
	r := DoctorReport{Issues: []DoctorIssue{}}
	s.doctorCart(&r)
	s.doctorEvents(&r)
	s.doctorTUIState(&r)
	return r
}

func (s Store) doctorCart(r *DoctorReport) {
	path := s.CartPath()
	b, ok, err := s.KV().Get(context.Background(), model.CartKey)
	if err != nil {
		r.add(DoctorIssueLevelError, "cart_unreadable", err.Error(), path, 0)
		return
	}
	if !ok {
		return
	}
	var c model.Cart
	if err := json.Unmarshal(b, &c); err != nil {
		r.add(DoctorIssueLevelError, "cart_invalid_json", err.Error()+" (the cart will load as empty)", path, 0)
		return
	}

	seen := map[string]bool{}
	for i, it := range c.Food {
		switch {
		case strings.TrimSpace(it.Name) == "":
			r.add(DoctorIssueLevelWarn, "food_missing_name", fmt.Sprintf("food[%d] has no name", i), path, 0)
		case seen[it.Name]:
			r.add(DoctorIssueLevelWarn, "food_duplicate_name", fmt.Sprintf("food %q appears more than once", it.Name), path, 0)
		}
		seen[it.Name] = true
		if it.Quantity < 1 {
			r.add(DoctorIssueLevelWarn, "food_bad_quantity", fmt.Sprintf("food %q has quantity %d", it.Name, it.Quantity), path, 0)
		}
		if badMoney(it.Price) {
			r.add(DoctorIssueLevelWarn, "food_bad_price", fmt.Sprintf("food %q has price %v", it.Name, it.Price), path, 0)
		}
	}
	for i, b := range c.Safari {
		if badMoney(b.Price) {
			r.add(DoctorIssueLevelWarn, "safari_bad_price", fmt.Sprintf("safari[%d] %q has price %v", i, b.Name, b.Price), path, 0)
		}
		if b.Guests < 1 {
			r.add(DoctorIssueLevelWarn, "safari_bad_guests", fmt.Sprintf("safari[%d] %q has %d guests", i, b.Name, b.Guests), path, 0)
		}
	}
}

func badMoney(v float64) bool {
	return v < 0 || math.IsNaN(v) || math.IsInf(v, 0)
}

func (s Store) doctorEvents(r *DoctorReport) {
	path := s.eventsPath()
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			r.add(DoctorIssueLevelError, "events_unreadable", err.Error(), path, 0)
		}
		return
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	line := 0
	for sc.Scan() {
		line++
		txt := strings.TrimSpace(sc.Text())
		if txt == "" {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(txt), &ev); err != nil {
			r.add(DoctorIssueLevelWarn, "event_invalid_json", err.Error(), path, line)
			continue
		}
		if ev.ID == "" || ev.Type == "" {
			r.add(DoctorIssueLevelWarn, "event_incomplete", "event is missing id or type", path, line)
		}
	}
	if err := sc.Err(); err != nil {
		r.add(DoctorIssueLevelError, "events_scan_failed", err.Error(), path, line)
	}
}

func (s Store) doctorTUIState(r *DoctorReport) {
	path := s.tuiStatePath()
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var st TUIState
	if err := json.Unmarshal(b, &st); err != nil {
		r.add(DoctorIssueLevelWarn, "tui_state_invalid_json", err.Error()+" (defaults will be used)", path, 0)
	}
}
