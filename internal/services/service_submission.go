package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/formrender"
	"ctc-webbase/internal/logger"
	"ctc-webbase/internal/models"
	"ctc-webbase/internal/referral"
	repo "ctc-webbase/internal/repository"
)

type SubmissionService struct {
	forms           *FormService
	submissions     repo.SubmissionRepository
	users           repo.UserRepository
	signer          *referral.Signer
	allowDuplicates bool
	defaultMaxMB    float64
	onReferred      func(ctx context.Context, leadID string)
	now             func() time.Time
	log             *zap.Logger
}

type SubmissionOptions struct {
	AllowDuplicates bool
	DefaultMaxMB    float64
	// OnReferred runs after a submission credited to a lead is stored.
	OnReferred func(ctx context.Context, leadID string)
}

func NewSubmissionService(forms *FormService, submissions repo.SubmissionRepository, users repo.UserRepository, signer *referral.Signer, opts SubmissionOptions) *SubmissionService {
	return &SubmissionService{
		forms:           forms,
		submissions:     submissions,
		users:           users,
		signer:          signer,
		allowDuplicates: opts.AllowDuplicates,
		defaultMaxMB:    opts.DefaultMaxMB,
		onReferred:      opts.OnReferred,
		now:             time.Now,
		log:             logger.New("submission"),
	}
}

// Render builds the render plan of a form for the given staged referral
// token. An invalid or expired token renders as if nothing was staged.
func (s *SubmissionService) Render(ctx context.Context, eventHex, formHex, referralToken string) (*formrender.Plan, error) {
	form, err := s.forms.FormForEvent(ctx, eventHex, formHex)
	if err != nil {
		return nil, err
	}
	var staged referral.Staged
	if referralToken != "" {
		if st, err := s.signer.Parse(referralToken); err == nil {
			staged = st
		}
	}
	return formrender.NewPlan(form, staged, form.EventID.Hex(), s.defaultMaxMB), nil
}

// Submit validates the answers against the form and stores one submission
// credited to the referring technical lead, if any.
func (s *SubmissionService) Submit(ctx context.Context, userID bson.ObjectID, eventHex, formHex string, req dto.SubmitRequest) (*models.Submission, error) {
	if userID.IsZero() {
		return nil, apperr.Unauthorized("login required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	form, err := s.forms.FormForEvent(ctx, eventHex, formHex)
	if err != nil {
		return nil, err
	}
	eventID := form.EventID.Hex()

	ref, err := s.referral(ctx, req, eventID)
	if err != nil {
		return nil, err
	}

	answers := make(formrender.Answers, len(req.Answers))
	for _, a := range req.Answers {
		if _, dup := answers[a.FieldID]; dup {
			return nil, apperr.FieldInvalid(a.FieldID, fmt.Sprintf("field %q answered twice", a.FieldID))
		}
		answers[a.FieldID] = a.Value
	}
	for _, f := range form.Fields {
		if formrender.IsReferralField(f.Label) {
			answers[f.ID] = referredByValue(ref)
		}
	}

	normalized, err := formrender.Normalize(form, answers)
	if err != nil {
		return nil, err
	}

	if !s.allowDuplicates {
		exists, err := s.submissions.ExistsForUser(ctx, form.ID, userID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		if exists {
			return nil, apperr.Conflict("you have already registered with this form")
		}
	}

	sub := &models.Submission{
		ID:        bson.NewObjectID(),
		FormID:    form.ID,
		EventID:   form.EventID,
		UserID:    userID,
		Answers:   normalized,
		Referral:  ref,
		CreatedAt: s.now().UTC(),
	}
	if err := s.submissions.InsertSubmission(ctx, sub); err != nil {
		return nil, apperr.Internal(err)
	}

	if sub.Attributed() && s.onReferred != nil {
		s.onReferred(ctx, sub.ReferredBy)
	}

	s.log.Info("submission stored",
		zap.String("submission_id", sub.ID.Hex()),
		zap.String("form_id", form.ID.Hex()),
		zap.String("referred_by", sub.ReferredBy),
	)
	return sub, nil
}

func referredByValue(ref models.Referral) string {
	if ref.Attributed() && ref.ReferredByName != "" {
		return ref.ReferredByName
	}
	return models.NoReferral
}

// referral works out who to credit. A signed token wins; otherwise the plain
// staged values are run through the same extractor. A payload with
// referredBy but no referralEventId was already extracted by the client.
// Referral context that cannot be verified never blocks a registration: it
// is logged and the submission is stored as not referred.
func (s *SubmissionService) referral(ctx context.Context, req dto.SubmitRequest, eventID string) (models.Referral, error) {
	none := models.Referral{ReferredBy: models.NoReferral}

	if req.ReferralToken != "" {
		staged, err := s.signer.Parse(req.ReferralToken)
		if err != nil {
			s.log.Warn("referral token dropped", zap.String("event_id", eventID), zap.Error(err))
			return none, nil
		}
		return referral.Extract(staged, eventID), nil
	}

	var ref models.Referral
	switch {
	case req.ReferralEventID != "":
		ref = referral.Extract(req.Staged(), eventID)
	case req.ReferredBy != "":
		ref = models.Referral{ReferredBy: req.ReferredBy, ReferredByName: req.ReferredByName, ReferralCode: req.ReferralCode}
	default:
		return none, nil
	}
	if !ref.Attributed() {
		return none, nil
	}

	verified, err := s.verifyLead(ctx, ref)
	if apperr.KindOf(err) == apperr.KindValidation {
		s.log.Warn("referral dropped",
			zap.String("event_id", eventID),
			zap.String("referred_by", ref.ReferredBy),
			zap.Error(err),
		)
		return none, nil
	}
	return verified, err
}

// verifyLead checks an unsigned referral names a real technical lead and
// that its code, when given, was generated for that lead.
func (s *SubmissionService) verifyLead(ctx context.Context, ref models.Referral) (models.Referral, error) {
	leadID, err := bson.ObjectIDFromHex(ref.ReferredBy)
	if err != nil {
		return ref, apperr.Validation("invalid referrer id")
	}
	if ref.ReferralCode != "" && !referral.VerifyCode(ref.ReferredBy, ref.ReferralCode) {
		return ref, apperr.Validation("referral code does not match referrer")
	}
	lead, err := s.users.FindUserByID(ctx, leadID)
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && lead.Role != models.RoleTechnicalLead) {
		return ref, apperr.Validation("referrer is not a technical lead")
	}
	if err != nil {
		return ref, apperr.Internal(err)
	}
	if ref.ReferredByName == "" {
		ref.ReferredByName = lead.Name
	}
	return ref, nil
}
