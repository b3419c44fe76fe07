package suspension

import (
	"context"
	"fmt"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/models"
)

const (
	ShortWindow = 7 * 24 * time.Hour
	LongWindow  = 30 * 24 * time.Hour

	// IndefiniteThreshold is the number of infractions across all subsystems within
	// LongWindow after which a user is suspended everywhere for good.
	IndefiniteThreshold = 15
)

// Service suspends users per subsystem with an escalating ladder of suspension times.
type Service struct {
	logger       lager.Logger
	clock        clock.Clock
	suspensionDB db.SuspensionDB
	creator      string
}

func NewService(logger lager.Logger, clk clock.Clock, suspensionDB db.SuspensionDB, creator string) *Service {
	return &Service{
		logger:       logger.Session("suspension-service"),
		clock:        clk,
		suspensionDB: suspensionDB,
		creator:      creator,
	}
}

// SuspendUser records an infraction of user in subSystem and suspends the user
// according to the ladder. It reports whether the user ends up suspended indefinitely.
func (s *Service) SuspendUser(ctx context.Context, user models.PrincipalUser, subSystem models.SubSystem) (bool, error) {
	if user.Privileged {
		return false, nil
	}
	logger := s.logger.Session("suspend-user", lager.Data{"user": user.UserName, "subsystem": subSystem})
	now := s.clock.Now().UnixMilli()

	record, err := s.suspensionDB.FindSuspensionRecord(ctx, user.UserName, subSystem)
	if err != nil {
		return false, err
	}
	if record == nil {
		record, err = models.NewSuspensionRecord(s.creator, user.UserName, subSystem, now, now)
		if err != nil {
			return false, err
		}
	} else if err := record.AddInfraction(now); err != nil {
		return false, err
	}
	if err := s.suspensionDB.SaveSuspensionRecord(ctx, record); err != nil {
		return false, err
	}
	if record.IsSuspendedIndefinitely() {
		return true, nil
	}

	records, err := s.suspensionDB.FindSuspensionRecordsByUser(ctx, user.UserName)
	if err != nil {
		return false, err
	}
	shortCount := models.CountRecordInfractions(records, subSystem, now-ShortWindow.Milliseconds())
	longCount := models.CountRecordInfractions(records, "", now-LongWindow.Milliseconds())
	logger.Info("counted-infractions", lager.Data{"short-window": shortCount, "long-window": longCount})

	if longCount >= IndefiniteThreshold {
		for _, sub := range models.SubSystems {
			if err := s.suspendUntil(ctx, user.UserName, sub, models.IndefiniteTimestamp, now); err != nil {
				return false, err
			}
		}
		logger.Info("suspended-indefinitely")
		return true, nil
	}
	if shortCount > 0 {
		levels, err := s.SuspensionLevels(ctx, subSystem)
		if err != nil {
			return false, err
		}
		suspensionTime := SuspensionTimeFor(shortCount, levels)
		until := now + suspensionTime
		if suspensionTime == models.IndefiniteTimestamp {
			until = models.IndefiniteTimestamp
		}
		if err := s.suspendUntil(ctx, user.UserName, subSystem, until, now); err != nil {
			return false, err
		}
		logger.Info("suspended", lager.Data{"until": until})
		return until == models.IndefiniteTimestamp, nil
	}
	return false, nil
}

func (s *Service) suspendUntil(ctx context.Context, userName string, subSystem models.SubSystem, until int64, now int64) error {
	record, err := s.suspensionDB.FindSuspensionRecord(ctx, userName, subSystem)
	if err != nil {
		return err
	}
	if record == nil {
		record, err = models.NewSuspensionRecord(s.creator, userName, subSystem, until, now)
		if err != nil {
			return err
		}
	}
	record.SuspendedUntil = until
	return s.suspensionDB.SaveSuspensionRecord(ctx, record)
}

// AssertSubsystemUsePermitted returns a *models.SuspendedErr when user may not use subSystem.
func (s *Service) AssertSubsystemUsePermitted(ctx context.Context, user models.PrincipalUser, subSystem models.SubSystem) error {
	if user.Privileged {
		return nil
	}
	record, err := s.suspensionDB.FindSuspensionRecord(ctx, user.UserName, subSystem)
	if err != nil {
		return err
	}
	if record == nil || !record.IsSuspended(s.clock.Now().UnixMilli()) {
		return nil
	}
	s.logger.Info("use-denied", lager.Data{"user": user.UserName, "subsystem": subSystem, "suspended-until": record.SuspendedUntil})
	return &models.SuspendedErr{UserName: user.UserName, SubSystem: subSystem, SuspendedUntil: record.SuspendedUntil}
}

// ReinstateUser drops the suspension record of user in subSystem together with its history.
func (s *Service) ReinstateUser(ctx context.Context, user models.PrincipalUser, subSystem models.SubSystem) error {
	err := s.suspensionDB.DeleteSuspensionRecord(ctx, user.UserName, subSystem)
	if err != nil {
		return err
	}
	s.logger.Info("reinstated-user", lager.Data{"user": user.UserName, "subsystem": subSystem})
	return nil
}

// SuspensionLevels returns the ladder of subSystem, persisting the default ladder
// the first time a subsystem is asked for.
func (s *Service) SuspensionLevels(ctx context.Context, subSystem models.SubSystem) (map[int]int64, error) {
	levels, err := s.suspensionDB.FindSuspensionLevels(ctx, subSystem)
	if err != nil {
		return nil, err
	}
	if levels != nil {
		return levels.Levels, nil
	}

	defaults := models.DefaultSuspensionLevels(subSystem)
	defaults.Entity = models.NewEntity(s.creator, s.clock.Now().UnixMilli())
	created, err := s.suspensionDB.CreateSuspensionLevelsIfAbsent(ctx, defaults)
	if err != nil {
		return nil, err
	}
	s.logger.Info("created-default-suspension-levels", lager.Data{"subsystem": subSystem, "created": created})

	levels, err = s.suspensionDB.FindSuspensionLevels(ctx, subSystem)
	if err != nil {
		return nil, err
	}
	if levels == nil {
		return nil, fmt.Errorf("suspension levels of %s missing after creation: %w", subSystem, db.ErrDoesNotExist)
	}
	return levels.Levels, nil
}

// SeedSuspensionLevels persists the default ladder of every subsystem that has none.
func (s *Service) SeedSuspensionLevels(ctx context.Context) error {
	for _, subSystem := range models.SubSystems {
		if _, err := s.SuspensionLevels(ctx, subSystem); err != nil {
			return fmt.Errorf("seeding suspension levels of %s: %w", subSystem, err)
		}
	}
	return nil
}

func (s *Service) UpdateSuspensionLevels(ctx context.Context, subSystem models.SubSystem, levels map[int]int64) error {
	if len(levels) == 0 {
		return models.InvalidArgumentf("suspension levels of %s cannot be empty", subSystem)
	}
	for count, suspensionTime := range levels {
		if count <= 0 {
			return models.InvalidArgumentf("infraction count must be greater than zero")
		}
		if suspensionTime < 0 && suspensionTime != models.IndefiniteTimestamp {
			return models.InvalidArgumentf("suspension time must be positive or %d", models.IndefiniteTimestamp)
		}
	}
	if _, err := s.SuspensionLevels(ctx, subSystem); err != nil {
		return err
	}
	return s.suspensionDB.SaveSuspensionLevels(ctx, &models.SubsystemSuspensionLevels{
		Entity:    models.NewEntity(s.creator, s.clock.Now().UnixMilli()),
		SubSystem: subSystem,
		Levels:    levels,
	})
}

// SuspensionTimeFor looks up count in levels, falling back to the largest configured
// count below it. It is 0 when every configured count is above count.
func SuspensionTimeFor(count int, levels map[int]int64) int64 {
	if t, ok := levels[count]; ok {
		return t
	}
	best := -1
	for c := range levels {
		if c <= count && c > best {
			best = c
		}
	}
	if best < 0 {
		return 0
	}
	return levels[best]
}
