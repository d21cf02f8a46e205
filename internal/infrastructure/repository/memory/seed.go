package memory

import "github.com/riftwatch/riftwatch/internal/domain/deck"

// SeedDecks is the built-in curated tier list, used when no external deck
// dataset file is configured. Hand-maintained for the global release of
// Riftbound.
func SeedDecks() []deck.Deck {
	return []deck.Deck{
		{
			Slug:      "kaisa",
			Name:      "Kai'Sa",
			Tier:      deck.TierS,
			Champions: []string{"Kai'Sa"},
			Archetype: "Midrange Combo",
			ShortDescription: "Flexible midrange deck that snowballs board presence while " +
				"threatening explosive finishers with Kai'Sa.",
			Strengths: []string{
				"Extremely high ceiling with strong curve and scaling threats",
				"Punishes unrefined brews in early meta",
				"Solid game plan into both aggressive and slower decks",
			},
			Weaknesses: []string{
				"Can stumble without early board presence",
				"Relies on key champs staying on board",
			},
			LastUpdated:    "2025-11-01",
			CoverImageHint: "Champion Deck (Kai'Sa)",
			Cards: []deck.Card{
				{Name: "Reaver's Row", Quantity: 1},
				{Name: "Targon's Peak", Quantity: 1},
				{Name: "The Dreaming Tree", Quantity: 1},
				{Name: "Kai'Sa - Daughter of the Void", Quantity: 1},
				{Name: "Fury Rune", Quantity: 7},
				{Name: "Mind Rune", Quantity: 5},
				{Name: "Hextech Ray", Quantity: 3},
				{Name: "Cleave", Quantity: 3},
				{Name: "Retreat", Quantity: 2},
				{Name: "Stupefy", Quantity: 3},
				{Name: "Falling Star", Quantity: 3},
				{Name: "Smoke Screen", Quantity: 3},
				{Name: "Void Seeker", Quantity: 3},
				{Name: "Pouty Poro", Quantity: 2},
				{Name: "Freljord - Watchful Sentry", Quantity: 3},
				{Name: "Noxus - Ravenbloom Student", Quantity: 3},
				{Name: "Lecturing Yordle", Quantity: 3},
				{Name: "Noxus Hopeful", Quantity: 3},
				{Name: "Kai'Sa - Survivor", Quantity: 1},
				{Name: "Darius - Trifarian", Quantity: 3},
				{Name: "Ionia - Thousand-Tailed Watcher", Quantity: 2},
				{Name: "Time Warp", Quantity: 2},
			},
			Sideboard: []deck.Card{
				{Name: "Fae - Sprite Mother", Quantity: 3},
				{Name: "Kai'Sa - Icathian Rain", Quantity: 2},
				{Name: "Ionia - Thousand-Tailed Watcher", Quantity: 1},
			},
		},
		{
			Slug:      "master-yi",
			Name:      "Master Yi",
			Tier:      deck.TierA,
			Champions: []string{"Master Yi"},
			Archetype: "Control / Combo",
			ShortDescription: "Spell-heavy control deck that leverages efficient removal " +
				"and Yi's scaling to close out games.",
			Strengths: []string{
				"Excellent into slower decks that can't pressure early",
				"Strong inevitability if the game goes long",
			},
			Weaknesses: []string{
				"Can struggle vs very fast openers",
				"Precise sequencing required to maximize value",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "sett",
			Name:      "Sett",
			Tier:      deck.TierA,
			Champions: []string{"Sett"},
			Archetype: "Midrange Bruiser",
			ShortDescription: "Midrange deck centered on board dominance, combat tricks, " +
				"and high-stat threats.",
			Strengths: []string{
				"Great at contesting board on curve",
				"Punishes opponents that rely on small units",
			},
			Weaknesses: []string{
				"Can lack reach if the board is answered repeatedly",
				"Weak to hard removal and bounce effects",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "annie",
			Name:      "Annie",
			Tier:      deck.TierA,
			Champions: []string{"Annie"},
			Archetype: "Aggro / Burn",
			ShortDescription: "Low-curve aggro deck that leverages burn spells and tempo " +
				"to close games quickly.",
			Strengths: []string{
				"Punishes greedy, slow decks",
				"Simple game plan and strong ladder choice",
			},
			Weaknesses: []string{
				"Falls off hard if the game goes too long",
				"Weak to lifegain and efficient removal",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "viktor",
			Name:      "Viktor",
			Tier:      deck.TierA,
			Champions: []string{"Viktor"},
			Archetype: "Value Engine / Control",
			ShortDescription: "Grindy deck that uses Viktor as a value engine, outscaling " +
				"opponents over time.",
			Strengths: []string{
				"Very strong into midrange fights",
				"Good at leveraging incremental card advantage",
			},
			Weaknesses: []string{
				"Can be slow to stabilize vs hyper-aggro",
				"Requires careful resource management",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "ahri",
			Name:      "Ahri",
			Tier:      deck.TierB,
			Champions: []string{"Ahri"},
			Archetype: "Tempo / Tricksy",
			ShortDescription: "Tempo deck built around tricky combat and repositioning to " +
				"outplay opponents.",
			Strengths: []string{
				"High outplay potential",
				"Punishes misplays heavily",
			},
			Weaknesses: []string{
				"Fragile board and low raw stats",
				"Hard to pilot optimally over long events",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "teemo",
			Name:      "Teemo",
			Tier:      deck.TierB,
			Champions: []string{"Teemo"},
			Archetype: "Chip Damage / Poison",
			ShortDescription: "Chip damage strategy that wins through incremental damage " +
				"and nuisance threats.",
			Strengths: []string{
				"Can steal games when unchecked",
				"Frustrating to play against",
			},
			Weaknesses: []string{
				"Struggles vs clean removal and fast clocks",
				"Long time to actually end the game",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "miss-fortune",
			Name:      "Miss Fortune",
			Tier:      deck.TierB,
			Champions: []string{"Miss Fortune"},
			Archetype: "Aggro / Tokens",
			ShortDescription: "Token-based aggro deck that leverages Miss Fortune's " +
				"board-wide damage.",
			Strengths: []string{
				"Explosive early turns",
				"Great vs decks that rely on small units",
			},
			Weaknesses: []string{
				"Weak to sweepers and life gain",
				"Can run out of gas if stabilized against",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "darius",
			Name:      "Darius",
			Tier:      deck.TierB,
			Champions: []string{"Darius"},
			Archetype: "Aggro / Midrange Smash",
			ShortDescription: "Brute-force deck with high power units and direct damage " +
				"finishers.",
			Strengths: []string{
				"Punishes stumbles very hard",
				"Simple, direct game plan",
			},
			Weaknesses: []string{
				"Telegraphed game plan, easy to prepare for",
				"Rough vs efficient removal + blockers",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "jinx",
			Name:      "Jinx",
			Tier:      deck.TierB,
			Champions: []string{"Jinx"},
			Archetype: "Discard Aggro",
			ShortDescription: "Fast deck that empties its hand to turn on Jinx and burn " +
				"out opponents.",
			Strengths: []string{
				"Very strong ladder deck",
				"Ends games quickly when unchecked",
			},
			Weaknesses: []string{
				"Inconsistent draws can brick",
				"Weak vs early lifegain and sweepers",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "yasuo",
			Name:      "Yasuo",
			Tier:      deck.TierC,
			Champions: []string{"Yasuo"},
			Archetype: "Stun / Control",
			ShortDescription: "Control deck built around stun and repositioning, but " +
				"currently lacks efficient tools.",
			Strengths: []string{
				"Fun, stylish play patterns",
				"Can lock out unprepared decks",
			},
			Weaknesses: []string{
				"Missing some key support cards",
				"Slow and fragile game plan vs meta decks",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "volibear",
			Name:      "Volibear",
			Tier:      deck.TierC,
			Champions: []string{"Volibear"},
			Archetype: "Big Overwhelm",
			ShortDescription: "Ramp into giant threats with Volibear, aiming to trample " +
				"over defenses.",
			Strengths: []string{
				"Spectacular when it works",
				"Great casual/fun option",
			},
			Weaknesses: []string{
				"Inconsistent ramp draws",
				"Folded by efficient hard removal",
			},
			LastUpdated: "2025-11-01",
		},
		{
			Slug:      "lux",
			Name:      "Lux",
			Tier:      deck.TierC,
			Champions: []string{"Lux"},
			Archetype: "Spell Combo",
			ShortDescription: "Spell-based deck that wants to chain expensive spells, but " +
				"lacks the speed of top decks.",
			Strengths: []string{
				"High ceiling and satisfying wins",
				"Flexible answers",
			},
			Weaknesses: []string{
				"Too slow for current meta",
				"Relies on drawing specific pieces",
			},
			LastUpdated: "2025-11-01",
		},
	}
}
