package gw2

import "fmt"

// DailySet is the response of the daily achievements endpoints, one list
// per game mode.
type DailySet struct {
	PvE      []DailyEntry `json:"pve"`
	PvP      []DailyEntry `json:"pvp"`
	WvW      []DailyEntry `json:"wvw"`
	Fractals []DailyEntry `json:"fractals"`
}

type DailyEntry struct {
	ID             int         `json:"id"`
	Level          Level       `json:"level"`
	RequiredAccess []Expansion `json:"required_access"`
}

type Level struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type Expansion string

const (
	ExpansionGuildWars2    Expansion = "GuildWars2"
	ExpansionHeartOfThorns Expansion = "HeartOfThorns"
	ExpansionPathOfFire    Expansion = "PathOfFire"
)

func (e Expansion) MarshalText() ([]byte, error) {
	return []byte(e), nil
}

func (e *Expansion) UnmarshalText(text []byte) error {
	switch v := Expansion(text); v {
	case ExpansionGuildWars2, ExpansionHeartOfThorns, ExpansionPathOfFire:
		*e = v
		return nil
	default:
		return fmt.Errorf("unknown expansion %q", string(text))
	}
}

type Achievement struct {
	ID          int      `json:"id"`
	Icon        string   `json:"icon,omitempty"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Requirement string   `json:"requirement"`
	LockedText  string   `json:"locked_text"`
	Type        string   `json:"type"`
	Flags       []string `json:"flags"`
	Tiers       []Tier   `json:"tiers"`
	Rewards     []Reward `json:"rewards"`
}

type Tier struct {
	Count  int `json:"count"`
	Points int `json:"points"`
}

type Reward struct {
	Type  string `json:"type"`
	ID    int    `json:"id"`
	Count int    `json:"count"`
}
