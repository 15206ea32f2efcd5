package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.French

	message.SetString(lang, ZombieAttackKey, "%s attaque lentement avec ses griffes.")
	message.SetString(lang, ZombieMoveKey, "%s se deplace lentement vers sa cible.")
	message.SetString(lang, ZombieWaitKey, "%s reste immobile, grogne lentement...")
	message.SetString(lang, VampireAttackKey, "%s attaque furtivement en mordant sa cible.")
	message.SetString(lang, VampireMoveKey, "%s se deplace rapidement et discretement.")
	message.SetString(lang, VampireWaitKey, "%s reste cache dans l'ombre, attendant le bon moment.")
	message.SetString(lang, GhostAttackKey, "%s attaque en effrayant sa cible de maniere furtive.")
	message.SetString(lang, GhostMoveKey, "%s traverse les murs et flotte silencieusement.")
	message.SetString(lang, GhostWaitKey, "%s reste invisible en attendant sa proie.")
	message.SetString(lang, EnemyStateKey, "Nom: %s, Vie: %s, Vitesse: %s")

	message.SetString(lang, ArrayPromptKey, "Entrez la taille du tableau : ")
	message.SetString(lang, ArrayContentsKey, "Contenu du tableau : %s")
	message.SetString(lang, ArrayReleasedKey, "Tableau libéré.")
	message.SetString(lang, FirstReleaseKey, "Première suppression effectuée.")
	message.SetString(lang, SecondReleaseKey, "Seconde suppression refusée.")
	message.SetString(lang, TrackedCtorKey, "Constructeur de l'objet appelé.")
	message.SetString(lang, TrackedDtorKey, "Destructeur de l'objet appelé.")
	message.SetString(lang, TrackedMessageKey, "Ceci est un objet suivi.")
	message.SetString(lang, UniqueEmptyKey, "Le propriétaire unique d'origine est maintenant vide.")
	message.SetString(lang, SharedOwnersKey, "Le nœud %s a %s propriétaires.")
	message.SetString(lang, SharedReleasedKey, "Nœud %s libéré.")

	message.SetString(lang, SumKey, "Somme : %s")
	message.SetString(lang, ProductKey, "Produit : %s")
	message.SetString(lang, DifferenceKey, "Différence : %s")
	message.SetString(lang, SummaryKey, "--- Résumé des résultats ---")

	message.SetString(lang, ArenaTitleKey, "Arène des ennemis")
	message.SetString(lang, ArenaStartKey, "Appuyez sur ESPACE pour commencer")
	message.SetString(lang, ArenaPausedKey, "Pause (P pour reprendre)")
	message.SetString(lang, ArenaTurnKey, "Tour %s")
}
