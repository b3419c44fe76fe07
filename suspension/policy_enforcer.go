package suspension

import (
	"context"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"

	"github.com/argusmon/argus-core/db"
	"github.com/argusmon/argus-core/models"
)

// PolicyEnforcer suspends users per policy. The ladder comes from the policy's
// suspension levels and infractions are counted over the policy's time unit.
type PolicyEnforcer struct {
	logger       lager.Logger
	clock        clock.Clock
	infractionDB db.InfractionDB
	creator      string
}

func NewPolicyEnforcer(logger lager.Logger, clk clock.Clock, infractionDB db.InfractionDB, creator string) *PolicyEnforcer {
	return &PolicyEnforcer{
		logger:       logger.Session("policy-enforcer"),
		clock:        clk,
		infractionDB: infractionDB,
		creator:      creator,
	}
}

// RecordInfraction stores an infraction of user against policy at timestamp ts
// and returns it with its expiration set.
func (e *PolicyEnforcer) RecordInfraction(ctx context.Context, policy *models.Policy, userName string, ts int64) (*models.Infraction, error) {
	if policy == nil {
		return nil, models.InvalidArgumentf("policy cannot be nil when recording an infraction")
	}
	if userName == "" {
		return nil, models.InvalidArgumentf("user cannot be empty when recording an infraction")
	}
	if ts <= 0 {
		return nil, models.InvalidArgumentf("infraction timestamp must be positive")
	}
	expiration, err := e.expirationFor(ctx, policy, userName, ts)
	if err != nil {
		return nil, err
	}

	infraction := &models.Infraction{
		Entity:              models.NewEntity(e.creator, e.clock.Now().UnixMilli()),
		PolicyID:            policy.ID,
		UserName:            userName,
		InfractionTimestamp: ts,
		ExpirationTimestamp: expiration,
	}
	if err := e.infractionDB.SaveInfraction(ctx, infraction); err != nil {
		return nil, err
	}
	e.logger.Info("recorded-infraction", lager.Data{"policy": policy.MetricName(), "user": userName, "expiration": expiration})
	return infraction, nil
}

// expirationFor is IndefiniteTimestamp past the top of the ladder and 0 below its
// bottom. The count includes the infraction being recorded.
func (e *PolicyEnforcer) expirationFor(ctx context.Context, policy *models.Policy, userName string, ts int64) (int64, error) {
	ladder := policy.SuspensionLadder()
	if len(ladder) == 0 {
		return 0, nil
	}
	window, err := policy.TimeUnitMillis()
	if err != nil {
		return 0, err
	}
	infractions, err := e.infractionDB.FindInfractions(ctx, policy.ID, userName)
	if err != nil {
		return 0, err
	}
	count := models.CountInfractions(infractions, ts-window-1, ts) + 1

	minCount, maxCount := -1, -1
	for c := range ladder {
		if minCount < 0 || c < minCount {
			minCount = c
		}
		if c > maxCount {
			maxCount = c
		}
	}
	if count > maxCount {
		return models.IndefiniteTimestamp, nil
	}
	if count < minCount {
		return 0, nil
	}
	suspensionTime := SuspensionTimeFor(count, ladder)
	if suspensionTime == models.IndefiniteTimestamp {
		return models.IndefiniteTimestamp, nil
	}
	return ts + suspensionTime, nil
}

// IsSuspended reports whether the latest infraction of user against policy is still in force.
func (e *PolicyEnforcer) IsSuspended(ctx context.Context, policy *models.Policy, userName string) (bool, error) {
	infractions, err := e.infractionDB.FindInfractions(ctx, policy.ID, userName)
	if err != nil {
		return false, err
	}
	var latest *models.Infraction
	for _, i := range infractions {
		if latest == nil || i.InfractionTimestamp > latest.InfractionTimestamp {
			latest = i
		}
	}
	return latest != nil && latest.IsSuspended(e.clock.Now().UnixMilli()), nil
}
