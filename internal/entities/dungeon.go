package entities

import (
	"github.com/CWSpear/stumpy/internal/errors"
)

// DungeonKey identifies a dungeon. It also names a boss predicate, since the
// boss identity slot of a dungeon holds a DungeonKey.
type DungeonKey string

// Dungeon keys in progression order
const (
	CastleTower      DungeonKey = "castle_tower"
	EasternPalace    DungeonKey = "eastern_palace"
	DesertPalace     DungeonKey = "desert_palace"
	TowerOfHera      DungeonKey = "tower_of_hera"
	PalaceOfDarkness DungeonKey = "palace_of_darkness"
	SwampPalace      DungeonKey = "swamp_palace"
	SkullWoods       DungeonKey = "skull_woods"
	ThievesTown      DungeonKey = "thieves_town"
	IcePalace        DungeonKey = "ice_palace"
	MiseryMire       DungeonKey = "misery_mire"
	TurtleRock       DungeonKey = "turtle_rock"
	GanonsTower      DungeonKey = "ganons_tower"
)

// Reward is the prize a dungeon's boss drops
type Reward string

// Rewards in cycle order. RewardNone is fixed and never cycles.
const (
	RewardUnknown         Reward = "unknown"
	RewardGreenPendant    Reward = "green_pendant"
	RewardStandardPendant Reward = "standard_pendant"
	RewardStandardCrystal Reward = "standard_crystal"
	RewardFairyCrystal    Reward = "fairy_crystal"
	RewardNone            Reward = "none"
)

// Next returns the following reward in the cycle
func (r Reward) Next() Reward {
	switch r {
	case RewardUnknown:
		return RewardGreenPendant
	case RewardGreenPendant:
		return RewardStandardPendant
	case RewardStandardPendant:
		return RewardStandardCrystal
	case RewardStandardCrystal:
		return RewardFairyCrystal
	case RewardFairyCrystal:
		return RewardUnknown
	default:
		return r
	}
}

// IsPendant reports either pendant tier
func (r Reward) IsPendant() bool {
	return r == RewardGreenPendant || r == RewardStandardPendant
}

// EntranceLock is the medallion a dungeon requires at its entrance
type EntranceLock string

// Entrance locks in cycle order. LockNone is fixed and never cycles.
const (
	LockUnknown EntranceLock = "unknown"
	LockBombos  EntranceLock = "bombos"
	LockEther   EntranceLock = "ether"
	LockQuake   EntranceLock = "quake"
	LockNone    EntranceLock = "none"
)

// Next returns the following lock in the cycle
func (l EntranceLock) Next() EntranceLock {
	switch l {
	case LockUnknown:
		return LockBombos
	case LockBombos:
		return LockEther
	case LockEther:
		return LockQuake
	case LockQuake:
		return LockUnknown
	default:
		return l
	}
}

// Medallion returns the item that opens the lock. ok is false for unknown
// and none.
func (l EntranceLock) Medallion() (ItemKey, bool) {
	switch l {
	case LockBombos:
		return ItemBombos, true
	case LockEther:
		return ItemEther, true
	case LockQuake:
		return ItemQuake, true
	default:
		return "", false
	}
}

// DungeonInfo is the immutable catalog data of a dungeon
type DungeonInfo struct {
	Key            DungeonKey
	Code           string
	Name           string
	Boss           string
	World          World
	MaxItemChests  int
	MaxTotalChests int
	MaxSmallKeys   int
	HasReward      bool
	HasLock        bool
	// Requirement is the entrance requirement caption shown on the map
	Requirement string
}

// MaxRetroChests is the chest count in retro mode, where keys are shuffled
// into the general item pool
func (d DungeonInfo) MaxRetroChests() int {
	return d.MaxItemChests + d.MaxSmallKeys
}

// DungeonState is the mutable part of a dungeon, used for snapshots
type DungeonState struct {
	Key          DungeonKey   `json:"key"`
	ItemChests   int          `json:"item_chests"`
	TotalChests  int          `json:"total_chests"`
	RetroChests  int          `json:"retro_chests"`
	SmallKeys    int          `json:"small_keys"`
	BossDefeated bool         `json:"boss_defeated"`
	BigKey       bool         `json:"big_key"`
	Reward       Reward       `json:"reward"`
	Lock         EntranceLock `json:"lock"`
	BossID       DungeonKey   `json:"boss_id"`
}

// Dungeon is a catalog dungeon plus its progress state
type Dungeon struct {
	DungeonInfo
	state DungeonState
}

func newDungeon(info DungeonInfo) *Dungeon {
	d := &Dungeon{DungeonInfo: info}
	d.Reset()
	return d
}

// Reset restores every mutable field to its initial value
func (d *Dungeon) Reset() {
	reward, lock := RewardNone, LockNone
	if d.HasReward {
		reward = RewardUnknown
	}
	if d.HasLock {
		lock = LockUnknown
	}
	d.state = DungeonState{
		Key:         d.Key,
		ItemChests:  d.MaxItemChests,
		TotalChests: d.MaxTotalChests,
		RetroChests: d.MaxRetroChests(),
		SmallKeys:   0,
		Reward:      reward,
		Lock:        lock,
		BossID:      d.Key,
	}
}

// State returns a copy of the progress state
func (d *Dungeon) State() DungeonState {
	return d.state
}

// Restore replaces the progress state after checking every bound
func (d *Dungeon) Restore(state DungeonState) error {
	vb := errors.NewValidationBuilder()
	if state.Key != d.Key {
		vb.Fieldf("Key", "state for %s applied to %s", state.Key, d.Key)
	}
	checkCounter(vb, "ItemChests", state.ItemChests, d.MaxItemChests)
	checkCounter(vb, "TotalChests", state.TotalChests, d.MaxTotalChests)
	checkCounter(vb, "RetroChests", state.RetroChests, d.MaxRetroChests())
	checkCounter(vb, "SmallKeys", state.SmallKeys, d.MaxSmallKeys)
	if d.HasReward != (state.Reward != RewardNone) || !validReward(state.Reward) {
		vb.InvalidField("Reward", string(state.Reward))
	}
	if d.HasLock != (state.Lock != LockNone) || !validLock(state.Lock) {
		vb.InvalidField("Lock", string(state.Lock))
	}
	if state.BossID != d.Key && (!d.HasReward || !isShuffleBoss(state.BossID)) {
		vb.InvalidField("BossID", string(state.BossID))
	}
	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "invalid state for %s", d.Key)
	}
	d.state = state
	return nil
}

func checkCounter(vb *errors.ValidationBuilder, field string, v, maxValue int) {
	if v < 0 || v > maxValue {
		vb.Fieldf(field, "must be between 0 and %d", maxValue)
	}
}

func validReward(r Reward) bool {
	return r == RewardNone || r == RewardUnknown || r.Next() != r
}

func validLock(l EntranceLock) bool {
	return l == LockNone || l == LockUnknown || l.Next() != l
}

// IsBossDefeated reports the boss defeated flag
func (d *Dungeon) IsBossDefeated() bool { return d.state.BossDefeated }

// HasBigKey reports the big key flag
func (d *Dungeon) HasBigKey() bool { return d.state.BigKey }

// Reward returns the reward marker
func (d *Dungeon) Reward() Reward { return d.state.Reward }

// EntranceLock returns the entrance lock marker
func (d *Dungeon) EntranceLock() EntranceLock { return d.state.Lock }

// BossID returns the dungeon whose boss currently guards this one
func (d *Dungeon) BossID() DungeonKey { return d.state.BossID }

// ItemChests returns the remaining item chest count
func (d *Dungeon) ItemChests() int { return d.state.ItemChests }

// TotalChests returns the remaining total chest count
func (d *Dungeon) TotalChests() int { return d.state.TotalChests }

// RetroChests returns the remaining retro chest count
func (d *Dungeon) RetroChests() int { return d.state.RetroChests }

// SmallKeys returns the collected small key count
func (d *Dungeon) SmallKeys() int { return d.state.SmallKeys }

// ToggleDefeat flips the boss defeated flag
func (d *Dungeon) ToggleDefeat() {
	d.state.BossDefeated = !d.state.BossDefeated
}

// ToggleBigKey flips the big key flag
func (d *Dungeon) ToggleBigKey() {
	d.state.BigKey = !d.state.BigKey
}

// CycleReward advances the reward marker. A fixed None stays None.
func (d *Dungeon) CycleReward() {
	d.state.Reward = d.state.Reward.Next()
}

// CycleEntranceLock advances the entrance lock. A fixed None stays None.
func (d *Dungeon) CycleEntranceLock() {
	d.state.Lock = d.state.Lock.Next()
}

// CycleBossForward moves the boss identity to the next dungeon, skipping the
// final tower. Dungeons without an ending reward keep their own boss.
func (d *Dungeon) CycleBossForward() {
	if !d.HasReward {
		return
	}
	d.state.BossID = NextBoss(d.state.BossID)
}

// CycleBossBackward moves the boss identity to the previous dungeon, skipping
// the castle tower
func (d *Dungeon) CycleBossBackward() {
	if !d.HasReward {
		return
	}
	d.state.BossID = PreviousBoss(d.state.BossID)
}

// DecrementItemChests counts down one item chest, wrapping to max at zero
func (d *Dungeon) DecrementItemChests() {
	d.state.ItemChests = decrementWrap(d.state.ItemChests, d.MaxItemChests)
}

// DecrementTotalChests counts down one chest, wrapping to max at zero
func (d *Dungeon) DecrementTotalChests() {
	d.state.TotalChests = decrementWrap(d.state.TotalChests, d.MaxTotalChests)
}

// DecrementRetroChests counts down one retro chest, wrapping to max at zero
func (d *Dungeon) DecrementRetroChests() {
	d.state.RetroChests = decrementWrap(d.state.RetroChests, d.MaxRetroChests())
}

// IncrementSmallKeys counts one small key, wrapping to zero past max
func (d *Dungeon) IncrementSmallKeys() {
	d.state.SmallKeys++
	if d.state.SmallKeys > d.MaxSmallKeys {
		d.state.SmallKeys = 0
	}
}

func decrementWrap(v, maxValue int) int {
	if v <= 0 {
		return maxValue
	}
	return v - 1
}
