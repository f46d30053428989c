package models

import "strings"

// PartKind is the discriminator distinguishing part variants. Within one build,
// each kind occupies exactly one slot.
type PartKind string

const (
	PartKindCpu         PartKind = "cpu"
	PartKindGpu         PartKind = "gpu"
	PartKindMotherboard PartKind = "motherboard"
	PartKindMemory      PartKind = "memory"
	PartKindStorage     PartKind = "storage"
	PartKindCooler      PartKind = "cooler"
	PartKindCase        PartKind = "case"
	PartKindPsu         PartKind = "psu"
)

// AllPartKinds lists every valid kind in catalog display order.
var AllPartKinds = []PartKind{
	PartKindCpu,
	PartKindGpu,
	PartKindMotherboard,
	PartKindMemory,
	PartKindStorage,
	PartKindCooler,
	PartKindCase,
	PartKindPsu,
}

// partKindAliases maps friendly query spellings to canonical kinds.
var partKindAliases = map[string]PartKind{
	"cpu":         PartKindCpu,
	"processor":   PartKindCpu,
	"gpu":         PartKindGpu,
	"graphics":    PartKindGpu,
	"motherboard": PartKindMotherboard,
	"mb":          PartKindMotherboard,
	"memory":      PartKindMemory,
	"ram":         PartKindMemory,
	"storage":     PartKindStorage,
	"ssd":         PartKindStorage,
	"hdd":         PartKindStorage,
	"cooler":      PartKindCooler,
	"case":        PartKindCase,
	"pccase":      PartKindCase,
	"psu":         PartKindPsu,
	"power":       PartKindPsu,
}

// IsValid checks if the PartKind is valid
func (k PartKind) IsValid() bool {
	switch k {
	case PartKindCpu, PartKindGpu, PartKindMotherboard, PartKindMemory,
		PartKindStorage, PartKindCooler, PartKindCase, PartKindPsu:
		return true
	}
	return false
}

// ParsePartKind normalizes a raw query string into a PartKind.
// Returns false for unknown spellings.
func ParsePartKind(raw string) (PartKind, bool) {
	kind, ok := partKindAliases[strings.ToLower(strings.TrimSpace(raw))]
	return kind, ok
}
