package models

import (
	"encoding/json"
	"fmt"
)

// Part represents a catalog component. Kind-specific attributes live in the
// Specs document so the parts table stays narrow instead of carrying a NULL
// column per variant.
type Part struct {
	BaseModel
	Kind        PartKind        `json:"kind" gorm:"type:varchar(20);not null;index" validate:"required"`
	Brand       string          `json:"brand" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Name        string          `json:"name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	ModelNumber string          `json:"model_number,omitempty" gorm:"size:100"`
	PriceCents  int64           `json:"price_cents" gorm:"not null;default:0" validate:"gte=0"`
	Wattage     int             `json:"wattage" gorm:"not null;default:0" validate:"gte=0"`
	Specs       json.RawMessage `json:"specs,omitempty" gorm:"type:jsonb"`

	// Relationships
	BuildItems []BuildItem `json:"build_items,omitempty" gorm:"foreignKey:PartID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Part
func (Part) TableName() string {
	return "parts"
}

// DisplayName is the label shown in caller-facing messages.
func (p *Part) DisplayName() string {
	return fmt.Sprintf("%s %s", p.Brand, p.Name)
}

// CpuSpec holds CPU-specific attributes
type CpuSpec struct {
	CoreCount     int     `json:"core_count,omitempty"`
	ThreadCount   int     `json:"thread_count,omitempty"`
	BaseClockGHz  float64 `json:"base_clock_ghz,omitempty"`
	BoostClockGHz float64 `json:"boost_clock_ghz,omitempty"`
}

// GpuSpec holds GPU-specific attributes
type GpuSpec struct {
	MemoryGB      int    `json:"memory_gb,omitempty"`
	MemoryType    string `json:"memory_type,omitempty"`
	CoreClockMHz  int    `json:"core_clock_mhz,omitempty"`
	BoostClockMHz int    `json:"boost_clock_mhz,omitempty"`
}

// MotherboardSpec holds motherboard-specific attributes
type MotherboardSpec struct {
	Socket     string `json:"socket,omitempty"`
	Chipset    string `json:"chipset,omitempty"`
	FormFactor string `json:"form_factor,omitempty"`
	RAMSlots   int    `json:"ram_slots,omitempty"`
	MaxRAMGB   int    `json:"max_ram_gb,omitempty"`
}

// MemorySpec holds memory-kit-specific attributes
type MemorySpec struct {
	Type          string `json:"type,omitempty"`
	KitCapacityGB int    `json:"kit_capacity_gb,omitempty"`
	Modules       int    `json:"modules,omitempty"`
	SpeedMHz      int    `json:"speed_mhz,omitempty"`
}

// StorageSpec holds storage-specific attributes
type StorageSpec struct {
	Type       string `json:"type,omitempty"`
	Interface  string `json:"interface,omitempty"`
	CapacityGB int    `json:"capacity_gb,omitempty"`
}

// CoolerSpec holds cooler-specific attributes
type CoolerSpec struct {
	Type      string `json:"type,omitempty"`
	FanSizeMM int    `json:"fan_size_mm,omitempty"`
	Sockets   string `json:"sockets,omitempty"`
}

// CaseSpec holds case-specific attributes
type CaseSpec struct {
	Type        string `json:"type,omitempty"`
	SupportedMB string `json:"supported_mb,omitempty"`
	Color       string `json:"color,omitempty"`
}

// PsuSpec holds PSU-specific attributes
type PsuSpec struct {
	Efficiency string `json:"efficiency,omitempty"`
	Modularity string `json:"modularity,omitempty"`
	WattageW   int    `json:"wattage_w,omitempty"`
}

// DecodeSpecs unmarshals the Specs document into out, which should be the
// spec struct matching the part's kind.
func (p *Part) DecodeSpecs(out interface{}) error {
	if len(p.Specs) == 0 {
		return nil
	}
	if err := json.Unmarshal(p.Specs, out); err != nil {
		return fmt.Errorf("decode %s specs: %w", p.Kind, err)
	}
	return nil
}

// EncodeSpecs marshals a spec struct into the Specs document.
func (p *Part) EncodeSpecs(in interface{}) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s specs: %w", p.Kind, err)
	}
	p.Specs = data
	return nil
}
