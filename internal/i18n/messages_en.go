package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, ZombieAttackKey, "%s attacks slowly with its claws.")
	message.SetString(lang, ZombieMoveKey, "%s shuffles slowly toward its target.")
	message.SetString(lang, ZombieWaitKey, "%s stands still, groaning slowly...")
	message.SetString(lang, VampireAttackKey, "%s strikes stealthily, biting its target.")
	message.SetString(lang, VampireMoveKey, "%s moves quickly and quietly.")
	message.SetString(lang, VampireWaitKey, "%s hides in the shadows, waiting for the right moment.")
	message.SetString(lang, GhostAttackKey, "%s attacks by stealthily frightening its target.")
	message.SetString(lang, GhostMoveKey, "%s passes through walls and floats silently.")
	message.SetString(lang, GhostWaitKey, "%s stays invisible, waiting for its prey.")
	message.SetString(lang, EnemyStateKey, "Name: %s, Health: %s, Speed: %s")

	message.SetString(lang, ArrayPromptKey, "Enter the array size: ")
	message.SetString(lang, ArrayContentsKey, "Array contents: %s")
	message.SetString(lang, ArrayReleasedKey, "Array released.")
	message.SetString(lang, FirstReleaseKey, "First release done.")
	message.SetString(lang, SecondReleaseKey, "Second release rejected.")
	message.SetString(lang, TrackedCtorKey, "Object constructor called.")
	message.SetString(lang, TrackedDtorKey, "Object destructor called.")
	message.SetString(lang, TrackedMessageKey, "This is a tracked object.")
	message.SetString(lang, UniqueEmptyKey, "The original unique owner is now empty.")
	message.SetString(lang, SharedOwnersKey, "Node %s has %s owners.")
	message.SetString(lang, SharedReleasedKey, "Node %s released.")

	message.SetString(lang, SumKey, "Sum: %s")
	message.SetString(lang, ProductKey, "Product: %s")
	message.SetString(lang, DifferenceKey, "Difference: %s")
	message.SetString(lang, SummaryKey, "--- Results summary ---")

	message.SetString(lang, ArenaTitleKey, "Enemy Arena")
	message.SetString(lang, ArenaStartKey, "Press SPACE to start")
	message.SetString(lang, ArenaPausedKey, "Paused (P to resume)")
	message.SetString(lang, ArenaTurnKey, "Turn %s")
}
