package controller

import (
	"fmt"

	"pitchside/repository"
)

// validateSkillMap requires exactly the 8 fixed skills, each rated 1-5.
func validateSkillMap(ratings map[repository.SkillKey]int) error {
	for _, key := range repository.SkillKeys {
		value, ok := ratings[key]
		if !ok {
			return fmt.Errorf("missing skill %q", key)
		}
		if value < 1 || value > 5 {
			return fmt.Errorf("skill %q must be rated 1-5, got %d", key, value)
		}
	}
	if len(ratings) != len(repository.SkillKeys) {
		return fmt.Errorf("unexpected skill keys in rating")
	}
	return nil
}
