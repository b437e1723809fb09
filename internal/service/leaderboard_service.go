package service

import (
	"ailearn_backend/internal/model"
	"ailearn_backend/internal/repository"
	"ailearn_backend/pkg/logger"
	"sync"

	"go.uber.org/zap"
)

const leaderboardSize = 20

type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	UserID uint   `json:"userId"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	XP     int    `json:"xp"`
	Level  int    `json:"level"`
}

// LeaderboardService serves a periodically refreshed snapshot of the XP
// ranking so list requests do not hit the database.
type LeaderboardService struct {
	UserRepo *repository.UserRepository

	mu       sync.RWMutex
	snapshot []LeaderboardEntry
}

func NewLeaderboardService(userRepo *repository.UserRepository) *LeaderboardService {
	return &LeaderboardService{UserRepo: userRepo}
}

// Refresh rebuilds the snapshot. Called on startup and from a background
// ticker.
func (s *LeaderboardService) Refresh() error {
	users, err := s.UserRepo.TopByXP(leaderboardSize)
	if err != nil {
		return err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:   i + 1,
			UserID: u.ID,
			Name:   u.Name,
			Avatar: u.Avatar,
			XP:     u.XP,
			Level:  u.Level,
		})
	}

	s.mu.Lock()
	s.snapshot = entries
	s.mu.Unlock()
	return nil
}

// Get returns the current snapshot, refreshing lazily if none exists yet.
func (s *LeaderboardService) Get() []LeaderboardEntry {
	s.mu.RLock()
	snapshot := s.snapshot
	s.mu.RUnlock()
	if snapshot != nil {
		return snapshot
	}

	if err := s.Refresh(); err != nil {
		logger.Log.Warn("leaderboard refresh failed", zap.Error(err))
		return []LeaderboardEntry{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// RankOf finds a user's current rank, or 0 if unranked.
func (s *LeaderboardService) RankOf(user *model.User) int {
	for _, e := range s.Get() {
		if e.UserID == user.ID {
			return e.Rank
		}
	}
	return 0
}
