// Package i18n registers the drill transcripts for every supported language.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Keys double as fallback format strings when a catalog misses them.
const (
	ZombieAttackKey  = "enemy.zombie.attack"
	ZombieMoveKey    = "enemy.zombie.move"
	ZombieWaitKey    = "enemy.zombie.wait"
	VampireAttackKey = "enemy.vampire.attack"
	VampireMoveKey   = "enemy.vampire.move"
	VampireWaitKey   = "enemy.vampire.wait"
	GhostAttackKey   = "enemy.ghost.attack"
	GhostMoveKey     = "enemy.ghost.move"
	GhostWaitKey     = "enemy.ghost.wait"
	EnemyStateKey    = "enemy.state"

	ArrayPromptKey    = "memory.array.prompt"
	ArrayContentsKey  = "memory.array.contents"
	ArrayReleasedKey  = "memory.array.released"
	FirstReleaseKey   = "memory.release.first"
	SecondReleaseKey  = "memory.release.second"
	TrackedCtorKey    = "memory.tracked.ctor"
	TrackedDtorKey    = "memory.tracked.dtor"
	TrackedMessageKey = "memory.tracked.message"
	UniqueEmptyKey    = "memory.unique.empty"
	SharedOwnersKey   = "memory.shared.owners"
	SharedReleasedKey = "memory.shared.released"

	SumKey        = "calc.sum"
	ProductKey    = "calc.product"
	DifferenceKey = "calc.difference"
	SummaryKey    = "calc.summary"

	ArenaTitleKey  = "arena.title"
	ArenaStartKey  = "arena.start"
	ArenaPausedKey = "arena.paused"
	ArenaTurnKey   = "arena.turn"
)

var supportedTags = []language.Tag{
	language.English,
	language.French,
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag maps a user supplied language ("fr", "fr-CA", "en_US") onto a
// supported tag by base language. Unknown or empty values resolve to Default.
func ResolveTag(value string) language.Tag {
	value = strings.ReplaceAll(strings.TrimSpace(value), "_", "-")
	if value == "" {
		return Default()
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return Default()
	}
	base, _ := parsed.Base()
	for _, tag := range supportedTags {
		if supportedBase, _ := tag.Base(); supportedBase == base {
			return tag
		}
	}
	return Default()
}
