// internal/service/reconciliation.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/dangerclosesec/tounesna/internal/counter"
	"github.com/dangerclosesec/tounesna/internal/metrics"
	"github.com/dangerclosesec/tounesna/internal/model"
	"github.com/dangerclosesec/tounesna/internal/repository"
)

// Aggregate names used in logs, metrics and the -entity flag.
const (
	AggregateFollowers   = "followers"
	AggregateRatings     = "ratings"
	AggregatePendingLegs = "pending_legs"
)

// ReconciliationService recomputes denormalized aggregates from the
// records they summarize and repairs any drift.
type ReconciliationService struct {
	orgs      repository.OrganizationRepositoryIface
	follows   repository.FollowRepositoryIface
	ratings   repository.RatingRepositoryIface
	requests  repository.RequestRepositoryIface
	tx        repository.Transaction
	counter   counter.FollowerCounter
	cache     *CacheService
	batchSize int
	dryRun    bool // If true, don't make changes, just log
	logger    *slog.Logger
}

func NewReconciliationService(
	orgs repository.OrganizationRepositoryIface,
	follows repository.FollowRepositoryIface,
	ratings repository.RatingRepositoryIface,
	requests repository.RequestRepositoryIface,
	tx repository.Transaction,
	followerCounter counter.FollowerCounter,
	cache *CacheService,
	logger *slog.Logger,
) *ReconciliationService {
	if followerCounter == nil {
		followerCounter = counter.Nop{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconciliationService{
		orgs:      orgs,
		follows:   follows,
		ratings:   ratings,
		requests:  requests,
		tx:        tx,
		counter:   followerCounter,
		cache:     cache,
		batchSize: 100,
		logger:    logger.With("service", "reconciliation"),
	}
}

// SetBatchSize sets the number of records to process between cancellation checks
func (s *ReconciliationService) SetBatchSize(size int) {
	if size > 0 {
		s.batchSize = size
	}
}

// SetDryRun sets whether to actually make changes or just log what would be done
func (s *ReconciliationService) SetDryRun(dryRun bool) {
	s.dryRun = dryRun
}

// ReconcileReport counts what a run inspected and repaired.
type ReconcileReport struct {
	Organizations    int  `json:"organizations"`
	Requests         int  `json:"requests"`
	FollowersFixed   int  `json:"followers_fixed"`
	RatingsFixed     int  `json:"ratings_fixed"`
	PendingLegsFixed int  `json:"pending_legs_fixed"`
	DryRun           bool `json:"dry_run"`
}

// ReconcileAll runs every aggregate check.
func (s *ReconciliationService) ReconcileAll(ctx context.Context) (*ReconcileReport, error) {
	return s.Reconcile(ctx, AggregateFollowers, AggregateRatings, AggregatePendingLegs)
}

// Reconcile runs the named aggregate checks in order.
func (s *ReconciliationService) Reconcile(ctx context.Context, aggregates ...string) (*ReconcileReport, error) {
	report := &ReconcileReport{DryRun: s.dryRun}
	s.logger.InfoContext(ctx, "starting reconciliation", "aggregates", aggregates, "dry_run", s.dryRun)

	var orgs []*model.Organization
	for _, aggregate := range aggregates {
		switch aggregate {
		case AggregateFollowers, AggregateRatings:
			if orgs == nil {
				var err error
				if orgs, err = s.orgs.FindAll(ctx); err != nil {
					return report, fmt.Errorf("fetching organizations: %w", err)
				}
				report.Organizations = len(orgs)
			}
			check := s.reconcileFollowers
			if aggregate == AggregateRatings {
				check = s.reconcileRatings
			}
			if err := s.eachOrganization(ctx, orgs, aggregate, check, report); err != nil {
				return report, err
			}

		case AggregatePendingLegs:
			if err := s.reconcilePendingLegs(ctx, report); err != nil {
				return report, err
			}

		default:
			return report, fmt.Errorf("unknown aggregate %q", aggregate)
		}
	}

	s.logger.InfoContext(ctx, "completed reconciliation",
		"organizations", report.Organizations,
		"requests", report.Requests,
		"followers_fixed", report.FollowersFixed,
		"ratings_fixed", report.RatingsFixed,
		"pending_legs_fixed", report.PendingLegsFixed,
	)
	return report, nil
}

type orgCheck func(ctx context.Context, org *model.Organization, report *ReconcileReport) error

func (s *ReconciliationService) eachOrganization(ctx context.Context, orgs []*model.Organization, aggregate string, check orgCheck, report *ReconcileReport) error {
	for i := 0; i < len(orgs); i += s.batchSize {
		end := min(i+s.batchSize, len(orgs))
		s.logger.DebugContext(ctx, "processing organization batch", "aggregate", aggregate, "start", i, "end", end)

		for _, org := range orgs[i:end] {
			if err := check(ctx, org, report); err != nil {
				s.logger.ErrorContext(ctx, "failed to reconcile organization",
					"aggregate", aggregate,
					"organization_id", org.ID,
					"error", err,
				)
			}
		}

		// Check if context is done between batches
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReconciliationService) reconcileFollowers(ctx context.Context, org *model.Organization, report *ReconcileReport) error {
	var actual int
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		follows, err := s.follows.FindByOrganization(ctx, org.ID)
		if err != nil {
			return err
		}
		current, err := s.orgs.FindByID(ctx, org.ID)
		if err != nil {
			return err
		}
		actual = len(follows)
		if current.FollowersCount == actual {
			return nil
		}

		report.FollowersFixed++
		metrics.ReconcileDrift.WithLabelValues(AggregateFollowers).Inc()
		s.logger.InfoContext(ctx, "followers_count drift",
			"organization_id", org.ID,
			"stored", current.FollowersCount,
			"actual", actual,
			"dry_run", s.dryRun,
		)
		if s.dryRun {
			return nil
		}
		return s.orgs.Update(ctx, org.ID, map[string]any{"followers_count": actual})
	})
	if err != nil {
		return err
	}

	if !s.dryRun {
		if err := s.counter.Set(ctx, org.ID, int64(actual)); err != nil {
			s.logger.WarnContext(ctx, "follower counter reseed failed", "organization_id", org.ID, "error", err)
		}
		s.invalidate(ctx, org.ID)
	}
	return nil
}

func (s *ReconciliationService) reconcileRatings(ctx context.Context, org *model.Organization, report *ReconcileReport) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		ratings, err := s.ratings.FindByOrganization(ctx, org.ID)
		if err != nil {
			return err
		}
		current, err := s.orgs.FindByID(ctx, org.ID)
		if err != nil {
			return err
		}

		want := model.Organization{RatingCount: len(ratings)}
		for _, r := range ratings {
			want.RatingSum += r.Score
		}
		want.Rating = want.AverageRating()

		if current.RatingCount == want.RatingCount &&
			nearlyEqual(current.RatingSum, want.RatingSum) &&
			nearlyEqual(current.Rating, want.Rating) {
			return nil
		}

		report.RatingsFixed++
		metrics.ReconcileDrift.WithLabelValues(AggregateRatings).Inc()
		s.logger.InfoContext(ctx, "rating drift",
			"organization_id", org.ID,
			"stored_count", current.RatingCount,
			"actual_count", want.RatingCount,
			"stored_rating", current.Rating,
			"actual_rating", want.Rating,
			"dry_run", s.dryRun,
		)
		if s.dryRun {
			return nil
		}
		if err := s.orgs.Update(ctx, org.ID, map[string]any{
			"rating":       want.Rating,
			"rating_sum":   want.RatingSum,
			"rating_count": want.RatingCount,
		}); err != nil {
			return err
		}
		s.invalidate(ctx, org.ID)
		return nil
	})
}

func (s *ReconciliationService) reconcilePendingLegs(ctx context.Context, report *ReconcileReport) error {
	requests, err := s.requests.FindAllRequests(ctx)
	if err != nil {
		return fmt.Errorf("fetching requests: %w", err)
	}
	report.Requests = len(requests)

	for i := 0; i < len(requests); i += s.batchSize {
		end := min(i+s.batchSize, len(requests))

		for _, request := range requests[i:end] {
			err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
				legs, err := s.requests.FindLegsByRequest(ctx, request.ID)
				if err != nil {
					return err
				}
				current, err := s.requests.FindRequestByID(ctx, request.ID)
				if err != nil {
					return err
				}

				pending := 0
				for _, leg := range legs {
					if leg.Status == model.LegPending {
						pending++
					}
				}
				if current.PendingLegs == pending {
					return nil
				}

				report.PendingLegsFixed++
				metrics.ReconcileDrift.WithLabelValues(AggregatePendingLegs).Inc()
				s.logger.InfoContext(ctx, "pending_legs drift",
					"request_id", request.ID,
					"stored", current.PendingLegs,
					"actual", pending,
					"dry_run", s.dryRun,
				)
				if s.dryRun {
					return nil
				}
				return s.requests.SetPendingLegs(ctx, request.ID, pending)
			})
			if err != nil {
				s.logger.ErrorContext(ctx, "failed to reconcile request", "request_id", request.ID, "error", err)
			}
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReconciliationService) invalidate(ctx context.Context, orgID string) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, organizationKey(orgID))
	}
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
