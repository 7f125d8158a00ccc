package entities

import "fmt"

// ItemKey identifies a collectible item
type ItemKey string

// Item keys
const (
	ItemBow            ItemKey = "bow"
	ItemSilverArrows   ItemKey = "silver_arrows"
	ItemBoomerangs     ItemKey = "boomerangs"
	ItemHookshot       ItemKey = "hookshot"
	ItemMushroom       ItemKey = "mushroom"
	ItemPowder         ItemKey = "powder"
	ItemBoots          ItemKey = "boots"
	ItemGlove          ItemKey = "glove"
	ItemFlippers       ItemKey = "flippers"
	ItemMoonPearl      ItemKey = "moon_pearl"
	ItemFireRod        ItemKey = "fire_rod"
	ItemIceRod         ItemKey = "ice_rod"
	ItemBombos         ItemKey = "bombos"
	ItemEther          ItemKey = "ether"
	ItemQuake          ItemKey = "quake"
	ItemLantern        ItemKey = "lantern"
	ItemSomaria        ItemKey = "somaria"
	ItemByrna          ItemKey = "byrna"
	ItemCape           ItemKey = "cape"
	ItemMirror         ItemKey = "mirror"
	ItemBottle         ItemKey = "bottle"
	ItemHammer         ItemKey = "hammer"
	ItemShovel         ItemKey = "shovel"
	ItemFlute          ItemKey = "flute"
	ItemNet            ItemKey = "net"
	ItemBook           ItemKey = "book"
	ItemSword          ItemKey = "sword"
	ItemShield         ItemKey = "shield"
	ItemTunic          ItemKey = "tunic"
	ItemBomb           ItemKey = "bomb"
	ItemMagic          ItemKey = "magic"
	ItemHeartContainer ItemKey = "heart_container"
	ItemHeartPiece     ItemKey = "heart_piece"
	ItemBowAndArrows   ItemKey = "bow_and_arrows"
)

// Glove levels
const (
	GloveNone  = 0
	GlovePower = 1
	GloveTitan = 2
)

// Sword levels
const (
	SwordNone     = 0
	SwordFighter  = 1
	SwordMaster   = 2
	SwordTempered = 3
	SwordGolden   = 4
)

// ItemInfo is the static catalog entry for an item
type ItemInfo struct {
	Key      ItemKey
	Name     string
	MaxLevel int
}

var itemCatalog = []ItemInfo{
	{ItemBow, "Bow", 1},
	{ItemSilverArrows, "Silver Arrows", 1},
	{ItemBoomerangs, "Boomerangs", 3},
	{ItemHookshot, "Hookshot", 1},
	{ItemMushroom, "Mushroom", 1},
	{ItemPowder, "Magic Powder", 1},
	{ItemBoots, "Pegasus Boots", 1},
	{ItemGlove, "Gloves", 2},
	{ItemFlippers, "Zora's Flippers", 1},
	{ItemMoonPearl, "Moon Pearl", 1},
	{ItemFireRod, "Fire Rod", 1},
	{ItemIceRod, "Ice Rod", 1},
	{ItemBombos, "Bombos", 1},
	{ItemEther, "Ether", 1},
	{ItemQuake, "Quake", 1},
	{ItemLantern, "Lantern", 1},
	{ItemSomaria, "Cane of Somaria", 1},
	{ItemByrna, "Cane of Byrna", 1},
	{ItemCape, "Magic Cape", 1},
	{ItemMirror, "Magic Mirror", 1},
	{ItemBottle, "Bottles", 4},
	{ItemHammer, "Magic Hammer", 1},
	{ItemShovel, "Shovel", 1},
	{ItemFlute, "Flute", 1},
	{ItemNet, "Bug Catching Net", 1},
	{ItemBook, "Book of Mudora", 1},
	{ItemSword, "Sword", 4}, // fighter, master, tempered, golden; SwordMaster is 2
	{ItemShield, "Shield", 3},
	{ItemTunic, "Tunic", 3},
	{ItemBomb, "Bombs", 1},
	{ItemMagic, "Magic Upgrade", 2},
	{ItemHeartContainer, "Heart Containers", 10}, // counts, not tiers
	{ItemHeartPiece, "Pieces of Heart", 24},
	{ItemBowAndArrows, "Bow and Arrows", 1},
}

var itemIndex = func() map[ItemKey]int {
	idx := make(map[ItemKey]int, len(itemCatalog))
	for i, info := range itemCatalog {
		idx[info.Key] = i
	}
	return idx
}()

// AllItems returns the item catalog in display order
func AllItems() []ItemInfo {
	out := make([]ItemInfo, len(itemCatalog))
	copy(out, itemCatalog)
	return out
}

// LookupItem returns the catalog entry for key
func LookupItem(key ItemKey) (ItemInfo, bool) {
	i, ok := itemIndex[key]
	if !ok {
		return ItemInfo{}, false
	}
	return itemCatalog[i], true
}

// MustItem returns the catalog entry for key and panics on an unknown key
func MustItem(key ItemKey) ItemInfo {
	info, ok := LookupItem(key)
	if !ok {
		panic(fmt.Sprintf("entities: unknown item %q", key))
	}
	return info
}
