package analyzer

// championEmojiLimit caps the emoji champion's highlight list.
const championEmojiLimit = 5

// FindChampions picks the per-category linguistic leaders: highest
// vocabulary diversity, heaviest emoji use, and longest average message.
// Iteration runs over the contributor list so the result is deterministic;
// a strictly higher score is required to take a category over. When no
// contributor scores above zero anywhere, the top contributor by message
// count holds every category so displays always have a name to show.
func FindChampions(linguistic map[string]LinguisticStats, contributors []*ContributorStats) Champions {
	var champions Champions

	for _, contributor := range contributors {
		stats, ok := linguistic[contributor.Name]
		if !ok || contributor.Name == "" {
			continue
		}
		if stats.VocabularyDiversity > champions.Wordsmith.Score {
			champions.Wordsmith = ChampionScore{Name: contributor.Name, Score: stats.VocabularyDiversity}
		}
		if stats.EmojiUsage.Count > champions.EmojiChampion.Count {
			top := stats.EmojiUsage.TopEmojis
			if len(top) > championEmojiLimit {
				top = top[:championEmojiLimit]
			}
			champions.EmojiChampion = EmojiChampionScore{
				Name:      contributor.Name,
				Count:     stats.EmojiUsage.Count,
				TopEmojis: top,
			}
		}
		if stats.AverageMessageLength > champions.MessageLength.Score {
			champions.MessageLength = ChampionScore{Name: contributor.Name, Score: stats.AverageMessageLength}
		}
	}

	if champions.Wordsmith.Name == "" && champions.EmojiChampion.Name == "" &&
		champions.MessageLength.Name == "" && len(contributors) > 0 {
		name := contributors[0].Name
		champions.Wordsmith = ChampionScore{Name: name}
		champions.EmojiChampion = EmojiChampionScore{Name: name, TopEmojis: []EmojiCount{}}
		champions.MessageLength = ChampionScore{Name: name}
	}

	return champions
}
