package service

import (
	"pitchside/repository"
	"pitchside/scoring"
)

type SkillRatingService struct {
	ratingRepository *repository.SkillRatingRepository
}

func NewSkillRatingService(store repository.Store) *SkillRatingService {
	return &SkillRatingService{
		ratingRepository: repository.NewSkillRatingRepository(store),
	}
}

func (e *SkillRatingService) AddRating(rating *repository.SkillRating) (*repository.SkillRating, error) {
	return e.ratingRepository.Add(rating)
}

func (e *SkillRatingService) DeleteRating(ratingId string) error {
	return e.ratingRepository.Delete(ratingId)
}

func (e *SkillRatingService) GetRatingsForPlayer(playerId string) ([]repository.SkillRating, error) {
	return e.ratingRepository.GetRatingsForPlayer(playerId)
}

func (e *SkillRatingService) GetLatestForPlayer(playerId string) (*repository.SkillRating, error) {
	ratings, err := e.ratingRepository.GetRatingsForPlayer(playerId)
	if err != nil {
		return nil, err
	}
	return scoring.LatestRating(ratings), nil
}
