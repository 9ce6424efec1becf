// Package prototypes holds the immutable, named configuration templates
// units are spawned from, loaded once from a JSON asset at startup.
package prototypes

import (
	"encoding/json"

	"github.com/cespare/xxhash/v2"
	bettererrors "github.com/xtuc/better-errors"
)

type MovementType string

const (
	MovementTypeOmnidirectional     MovementType = "omnidirectional"
	MovementTypeAcceleratedSteering MovementType = "accelerated-steering"

	// Reserved variant; no integrator implements it yet.
	MovementTypeTrain MovementType = "train"
)

func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeOmnidirectional, MovementTypeAcceleratedSteering, MovementTypeTrain:
		return true
	}

	return false
}

// Movement is a movement profile: the physical constants of one motion
// model. Speeds are tiles/second, accelerations tiles/second², rotation
// speed degrees/second. MaxSpeedBackwards and BrakingAcceleration are
// optional in the asset; when absent they default to MaxSpeed and
// Acceleration respectively. Both are stored non-negative and negated at
// the point of use to represent the backward/braking direction.
type Movement struct {
	Name                string       `json:"name"`
	MovementType        MovementType `json:"movement_type"`
	Speed               float64      `json:"speed"`
	MaxSpeed            float64      `json:"max_speed"`
	MaxSpeedBackwards   *float64     `json:"max_speed_backwards"`
	Acceleration        float64      `json:"acceleration"`
	BrakingAcceleration *float64     `json:"braking_acceleration"`
	PassiveDeceleration float64      `json:"passive_deceleration"`
	RotationSpeed       float64      `json:"rotation_speed"`
	RotationOffset      float64      `json:"rotation_offset"`
}

func (m Movement) validate() error {
	if m.Name == "" {
		return bettererrors.New("movement prototype without a name")
	}

	if !m.MovementType.IsValid() {
		return bettererrors.
			New("movement prototype " + m.Name + ": unknown movement_type \"" + string(m.MovementType) + "\"")
	}

	if m.MaxSpeedBackwards != nil && *m.MaxSpeedBackwards < 0 {
		return bettererrors.New("movement prototype " + m.Name + ": max_speed_backwards must be non-negative")
	}

	if m.BrakingAcceleration != nil && *m.BrakingAcceleration < 0 {
		return bettererrors.New("movement prototype " + m.Name + ": braking_acceleration must be non-negative")
	}

	return nil
}

// Prototypes is the name-keyed profile table plus a content hash of the raw
// asset bytes, retained for change-detection by external tooling.
type Prototypes struct {
	Hash     uint64
	Movement map[string]Movement
}

type prototypesFile struct {
	Movement []Movement `json:"movement"`
}

// Parse builds the table from the asset bytes. Duplicate names overwrite
// earlier entries (last wins); this is documented behavior, not defended
// against.
func Parse(data []byte) (*Prototypes, error) {
	var file prototypesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, bettererrors.
			New("Invalid prototypes JSON").
			With(bettererrors.NewFromErr(err))
	}

	movement := make(map[string]Movement, len(file.Movement))
	for _, proto := range file.Movement {
		if err := proto.validate(); err != nil {
			return nil, bettererrors.
				New("Invalid prototypes table").
				With(err)
		}

		movement[proto.Name] = proto
	}

	return &Prototypes{
		Hash:     xxhash.Sum64(data),
		Movement: movement,
	}, nil
}

// MovementByName looks up a movement profile. The second return is false
// when the name is absent; callers spawning a unit must treat that as a
// fatal configuration error.
func (p *Prototypes) MovementByName(name string) (Movement, bool) {
	proto, ok := p.Movement[name]
	return proto, ok
}

// MaxSpeedBackwardsOrDefault resolves the optional backward speed cap.
func (m Movement) MaxSpeedBackwardsOrDefault() float64 {
	if m.MaxSpeedBackwards != nil {
		return *m.MaxSpeedBackwards
	}
	return m.MaxSpeed
}

// BrakingAccelerationOrDefault resolves the optional braking acceleration.
func (m Movement) BrakingAccelerationOrDefault() float64 {
	if m.BrakingAcceleration != nil {
		return *m.BrakingAcceleration
	}
	return m.Acceleration
}
