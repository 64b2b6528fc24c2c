package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTab is returned by ParseTab for identifiers outside the tab set.
var ErrUnknownTab = errors.New("unknown tab")

// Tab identifies a navigation entry. The set is closed.
type Tab int

const (
	TabOverview Tab = iota
	TabScan
	TabNetwork
	tabCount
)

var tabInfo = [tabCount]struct {
	id    string
	label string
	icon  string
}{
	TabOverview: {"overview", "Overview", "▤"},
	TabScan:     {"scan", "Security Scan", "◈"},
	TabNetwork:  {"network", "Network", "⌖"},
}

// Tabs returns every tab in sidebar order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabScan, TabNetwork}
}

func (t Tab) valid() bool { return t >= 0 && t < tabCount }

// ID returns the stable identifier ("overview", "scan", "network").
func (t Tab) ID() string {
	if !t.valid() {
		return "unknown"
	}
	return tabInfo[t].id
}

// Label returns the sidebar label.
func (t Tab) Label() string {
	if !t.valid() {
		return "Unknown"
	}
	return tabInfo[t].label
}

// Icon returns the single-cell glyph shown beside the label.
func (t Tab) Icon() string {
	if !t.valid() {
		return "?"
	}
	return tabInfo[t].icon
}

func (t Tab) String() string { return t.ID() }

// Next returns the following tab, wrapping after the last one.
func (t Tab) Next() Tab {
	return (t + 1) % tabCount
}

// Prev returns the preceding tab, wrapping before the first one.
func (t Tab) Prev() Tab {
	return (t + tabCount - 1) % tabCount
}

// ParseTab maps an identifier back to its tab. Matching ignores case and
// surrounding whitespace.
func ParseTab(id string) (Tab, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range Tabs() {
		if t.ID() == id {
			return t, nil
		}
	}
	return TabOverview, fmt.Errorf("%w %q (valid: overview, scan, network)", ErrUnknownTab, id)
}
