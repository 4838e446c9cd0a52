package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-scores/internal/domain/league"
)

// Tables fetches several league tables on a bounded worker pool. Leagues are
// independent; each result carries its own error and results keep the input
// order. An empty list means every registered league.
func (s *ScoresService) Tables(ctx context.Context, leagueNames []string) ([]TableResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoresService.Tables")
	defer span.End()

	targets, err := s.resolveTableTargets(leagueNames)
	if err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		return []TableResult{}, nil
	}

	workerCount := s.cfg.TableWorkers
	if workerCount > len(targets) {
		workerCount = len(targets)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]TableResult, len(targets))
	var workers sync.WaitGroup
	for i, target := range targets {
		i, target := i, target
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results[i] = s.table(ctx, target)
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit table task to worker pool: %w", err)
		}
	}
	workers.Wait()

	return results, nil
}

func (s *ScoresService) resolveTableTargets(names []string) ([]league.League, error) {
	if len(names) == 0 {
		return s.registry.Leagues(), nil
	}
	seen := make(map[string]struct{}, len(names))
	out := make([]league.League, 0, len(names))
	for _, name := range names {
		l, err := s.ResolveLeague(name)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[l.Name]; dup {
			continue
		}
		seen[l.Name] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}
