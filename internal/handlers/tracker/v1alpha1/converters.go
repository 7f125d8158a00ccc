package v1alpha1

import (
	"github.com/CWSpear/stumpy/internal/entities"
	"github.com/CWSpear/stumpy/internal/orchestrators/tracker"
)

func convertItem(v tracker.ItemView) *Item {
	return &Item{
		Key:      string(v.Key),
		Name:     v.Name,
		Level:    int32(v.Level),
		MaxLevel: int32(v.MaxLevel),
	}
}

func convertDungeon(v tracker.DungeonView) *Dungeon {
	return &Dungeon{
		Key:            string(v.Key),
		Name:           v.Name,
		Boss:           v.Boss,
		World:          string(v.World),
		Requirement:    v.Requirement,
		MaxItemChests:  int32(v.MaxItemChests),
		MaxTotalChests: int32(v.MaxTotalChests),
		MaxSmallKeys:   int32(v.MaxSmallKeys),
		ItemChests:     int32(v.State.ItemChests),
		TotalChests:    int32(v.State.TotalChests),
		RetroChests:    int32(v.State.RetroChests),
		SmallKeys:      int32(v.State.SmallKeys),
		BossDefeated:   v.State.BossDefeated,
		BigKey:         v.State.BigKey,
		Reward:         string(v.State.Reward),
		EntranceLock:   string(v.State.Lock),
		BossID:         string(v.State.BossID),
		CanDefeatBoss:  v.CanDefeatBoss,
	}
}

func convertLocation(v tracker.LocationView) *Location {
	return &Location{
		Key:          string(v.Key),
		Name:         v.Name,
		World:        string(v.World),
		Availability: v.Availability.String(),
		Opened:       v.Opened,
	}
}

func convertSettings(s entities.Settings) *Settings {
	return &Settings{
		SwordLogic: string(s.Sword),
		StartState: string(s.Start),
	}
}
