package models

import (
	"fmt"
	"strings"
)

// Mode is one of the gameplay rule variants tracked by the GlobalAPI
type Mode string

const (
	ModeKZTimer  Mode = "kz_timer"
	ModeSimpleKZ Mode = "kz_simple"
	ModeVanilla  Mode = "kz_vanilla"
)

type modeInfo struct {
	short string
	long  string
	id    int
}

var modeTable = map[Mode]modeInfo{
	ModeKZTimer:  {short: "KZT", long: "KZTimer", id: 200},
	ModeSimpleKZ: {short: "SKZ", long: "SimpleKZ", id: 201},
	ModeVanilla:  {short: "VNL", long: "Vanilla", id: 202},
}

// reverse lookups, built once from modeTable
var (
	modesByShort = make(map[string]Mode, len(modeTable))
	modesByID    = make(map[int]Mode, len(modeTable))
)

func init() {
	for mode, info := range modeTable {
		modesByShort[strings.ToLower(info.short)] = mode
		modesByID[info.id] = mode
	}
}

// AllModes returns the modes in display order
func AllModes() []Mode {
	return []Mode{ModeKZTimer, ModeSimpleKZ, ModeVanilla}
}

// ParseMode accepts an API name (kz_timer) or a short name (KZT), case-insensitively
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, ok := modeTable[Mode(s)]; ok {
		return Mode(s), nil
	}
	if mode, ok := modesByShort[s]; ok {
		return mode, nil
	}
	return "", fmt.Errorf("unknown mode: %q", s)
}

// ModeFromID maps a GlobalAPI mode id (200, 201, 202) to a Mode
func ModeFromID(id int) (Mode, bool) {
	mode, ok := modesByID[id]
	return mode, ok
}

// IsValid reports whether m is one of the known modes
func (m Mode) IsValid() bool {
	_, ok := modeTable[m]
	return ok
}

// Short returns the abbreviated name, e.g. KZT
func (m Mode) Short() string {
	return modeTable[m].short
}

// Long returns the display name, e.g. KZTimer
func (m Mode) Long() string {
	return modeTable[m].long
}

// ID returns the GlobalAPI numeric mode id
func (m Mode) ID() int {
	return modeTable[m].id
}

func (m Mode) String() string {
	return string(m)
}
