package models

// Roles a run declares in its config under the "role" key.
const (
	RoleMiner     = "miner"
	RoleValidator = "validator"
)

// RawRecord is one run as reported by the tracking service. Config holds the
// run configuration, normally a JSON object carrying "hotkey", "role" and
// either "specs" (miners) or "allocated_hotkeys" (validators).
type RawRecord struct {
	ID     string
	Name   string
	Config []byte
}

// MinerSpec pairs a hotkey with the raw "specs" blob its miner reported.
// Specs is nil when the miner did not report any.
type MinerSpec struct {
	Hotkey string
	Specs  []byte
}

// MinerSpecs is an insertion-ordered hotkey -> specs mapping.
type MinerSpecs struct {
	entries []MinerSpec
	index   map[string]int
}

// Set stores specs for hotkey. A hotkey seen before keeps its position.
func (m *MinerSpecs) Set(hotkey string, specs []byte) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[hotkey]; ok {
		m.entries[i].Specs = specs
		return
	}
	m.index[hotkey] = len(m.entries)
	m.entries = append(m.entries, MinerSpec{Hotkey: hotkey, Specs: specs})
}

// SetIfAbsent stores specs only for a hotkey not seen before.
func (m *MinerSpecs) SetIfAbsent(hotkey string, specs []byte) {
	if _, ok := m.index[hotkey]; ok {
		return
	}
	m.Set(hotkey, specs)
}

// Get returns the specs stored for hotkey.
func (m *MinerSpecs) Get(hotkey string) ([]byte, bool) {
	i, ok := m.index[hotkey]
	if !ok {
		return nil, false
	}
	return m.entries[i].Specs, true
}

// Len returns the number of distinct hotkeys.
func (m *MinerSpecs) Len() int {
	return len(m.entries)
}

// Entries returns the stored pairs in first-seen order.
func (m *MinerSpecs) Entries() []MinerSpec {
	out := make([]MinerSpec, len(m.entries))
	copy(out, m.entries)
	return out
}
