package usecase

import (
	"math"

	"github.com/decluttit/trade-service/internal/domain"
	"go.uber.org/zap"
)

type TrustUsecase interface {
	RecomputeTrustScore(userID string) (int, error)
	HandleIDVerification(userID string) (int, error)
}

// TrustSignals is a single consistent snapshot of everything the trust
// score is derived from. The score is a pure function of one snapshot,
// so recomputation never drifts.
type TrustSignals struct {
	VerificationLevel     domain.VerificationLevel
	ReleasedTransactions  int64
	Ratings               []int
	ResolvedDisputes      int64
	CancelledTransactions int64
}

const (
	trustScoreMax        = 300
	transactionBonusCap  = 100
	reviewBonusCap       = 50
	disputePenalty       = 20
	cancellationPenalty  = 10
	transactionBonusStep = 10
)

// ComputeTrustScore derives the bounded trust score from a snapshot.
func ComputeTrustScore(signals TrustSignals) int {
	score := 0

	switch signals.VerificationLevel {
	case domain.VerificationIDVerified:
		score += 50
	case domain.VerificationPremium:
		score += 100
	}

	transactionBonus := int(signals.ReleasedTransactions) * transactionBonusStep
	if transactionBonus > transactionBonusCap {
		transactionBonus = transactionBonusCap
	}
	score += transactionBonus

	if len(signals.Ratings) > 0 {
		sum := 0
		for _, rating := range signals.Ratings {
			sum += rating
		}
		average := float64(sum) / float64(len(signals.Ratings))
		reviewBonus := int(math.Round(average * 10))
		if reviewBonus > reviewBonusCap {
			reviewBonus = reviewBonusCap
		}
		score += reviewBonus
	}

	score -= int(signals.ResolvedDisputes) * disputePenalty
	score -= int(signals.CancelledTransactions) * cancellationPenalty

	if score < 0 {
		return 0
	}
	if score > trustScoreMax {
		return trustScoreMax
	}
	return score
}

type DefaultTrustUsecase struct {
	userRepo    domain.UserRepository
	txRepo      domain.TransactionRepository
	reviewRepo  domain.ReviewRepository
	disputeRepo domain.DisputeRepository
	publisher   domain.EventPublisher
	logger      *zap.Logger
}

func NewDefaultTrustUsecase(
	userRepo domain.UserRepository,
	txRepo domain.TransactionRepository,
	reviewRepo domain.ReviewRepository,
	disputeRepo domain.DisputeRepository,
	publisher domain.EventPublisher,
	logger *zap.Logger,
) *DefaultTrustUsecase {
	return &DefaultTrustUsecase{
		userRepo:    userRepo,
		txRepo:      txRepo,
		reviewRepo:  reviewRepo,
		disputeRepo: disputeRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// RecomputeTrustScore gathers the user's aggregate history, computes the
// score and persists it. Idempotent for unchanged inputs.
func (uc *DefaultTrustUsecase) RecomputeTrustScore(userID string) (int, error) {
	signals, err := uc.collectSignals(userID)
	if err != nil {
		return 0, err
	}

	score := ComputeTrustScore(*signals)
	if err := uc.userRepo.UpdateTrustScore(userID, score); err != nil {
		return 0, err
	}

	if err := uc.publisher.PublishTrustScore(domain.TrustScoreEvent{UserID: userID, Score: score}); err != nil {
		uc.logger.Error("failed to publish trust score event",
			zap.String("user_id", userID), zap.Error(err))
	}
	uc.logger.Info("trust score recomputed",
		zap.String("user_id", userID), zap.Int("score", score))
	return score, nil
}

// HandleIDVerification is invoked by the verification collaborator once
// identity checks pass.
func (uc *DefaultTrustUsecase) HandleIDVerification(userID string) (int, error) {
	if err := uc.userRepo.UpdateVerificationLevel(userID, domain.VerificationIDVerified); err != nil {
		return 0, err
	}
	return uc.RecomputeTrustScore(userID)
}

func (uc *DefaultTrustUsecase) collectSignals(userID string) (*TrustSignals, error) {
	user, err := uc.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	released, err := uc.txRepo.CountByUserAndStatus(userID, domain.StatusReleased)
	if err != nil {
		return nil, err
	}
	cancelled, err := uc.txRepo.CountByUserAndStatus(userID, domain.StatusCancelled)
	if err != nil {
		return nil, err
	}
	ratings, err := uc.reviewRepo.GetRatingsForUser(userID)
	if err != nil {
		return nil, err
	}
	disputes, err := uc.disputeRepo.CountResolvedByUserID(userID)
	if err != nil {
		return nil, err
	}

	return &TrustSignals{
		VerificationLevel:     user.VerificationLevel,
		ReleasedTransactions:  released,
		Ratings:               ratings,
		ResolvedDisputes:      disputes,
		CancelledTransactions: cancelled,
	}, nil
}
