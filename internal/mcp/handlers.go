package mcp

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

func (s *Server) handleImportSeason(seasonID string) (interface{}, error) {
	if seasonID == "" {
		return nil, fmt.Errorf("season_id is required")
	}

	if err := s.store.Load(s.cfg.CacheDir, seasonID); err != nil {
		return nil, fmt.Errorf("failed to load season %s: %w", seasonID, err)
	}

	count := s.store.Count(seasonID)
	if count == 0 {
		return nil, fmt.Errorf("no cached results for season %s (expected %s/season-%s.jsonl)", seasonID, s.cfg.CacheDir, seasonID)
	}

	log.Info().Str("season", seasonID).Int("competitions", count).Msg("Season imported")
	return map[string]interface{}{
		"seasonId":     seasonID,
		"competitions": count,
	}, nil
}

func (s *Server) handleListSeasons() (interface{}, error) {
	type seasonInfo struct {
		SeasonID     string `json:"seasonId"`
		Competitions int    `json:"competitions"`
	}

	var seasons []seasonInfo
	for _, id := range s.store.Seasons() {
		seasons = append(seasons, seasonInfo{
			SeasonID:     id,
			Competitions: s.store.Count(id),
		})
	}
	return map[string]interface{}{"seasons": seasons}, nil
}

func (s *Server) handleListCompetitions(seasonID string) (interface{}, error) {
	if seasonID == "" {
		return nil, fmt.Errorf("season_id is required")
	}

	type compInfo struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Date     string `json:"date"`
		RunCount int    `json:"runCount"`
	}

	comps := s.store.Competitions(seasonID)
	infos := make([]compInfo, 0, len(comps))
	for _, c := range comps {
		date := ""
		if !c.Date.IsZero() {
			date = c.Date.Format("2006-01-02")
		}
		infos = append(infos, compInfo{
			ID:       c.ID,
			Name:     c.Name,
			Date:     date,
			RunCount: len(c.RunResults),
		})
	}
	return map[string]interface{}{"seasonId": seasonID, "competitions": infos}, nil
}
