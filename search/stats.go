package search

// RollStats summarizes a record set for the overview panel.
type RollStats struct {
	Total        int            `json:"total"`
	YoungVoters  int            `json:"young_voters"` // age 18-29
	GenderCounts map[string]int `json:"gender_counts"`
	AverageAge   float64        `json:"average_age"`
}

// Stats computes roll statistics. Records without a known age are
// excluded from the age figures but counted everywhere else.
func Stats(records []Record) RollStats {
	stats := RollStats{
		Total:        len(records),
		GenderCounts: map[string]int{},
	}

	ageSum := 0
	ageCount := 0
	for _, record := range records {
		if record.Gender != "" {
			stats.GenderCounts[record.Gender]++
		}
		if record.HasAge {
			ageSum += record.Age
			ageCount++
			if record.Age >= 18 && record.Age <= 29 {
				stats.YoungVoters++
			}
		}
	}
	if ageCount > 0 {
		stats.AverageAge = float64(ageSum) / float64(ageCount)
	}
	return stats
}
