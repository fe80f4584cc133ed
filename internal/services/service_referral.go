package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/models"
	"ctc-webbase/internal/referral"
	repo "ctc-webbase/internal/repository"
)

type ReferralService struct {
	events repo.EventRepository
	users  repo.UserRepository
	signer *referral.Signer
	origin string
}

func NewReferralService(events repo.EventRepository, users repo.UserRepository, signer *referral.Signer, origin string) *ReferralService {
	return &ReferralService{events: events, users: users, signer: signer, origin: origin}
}

// Link builds the shareable registration link of an event for a technical
// lead.
func (s *ReferralService) Link(ctx context.Context, viewer *models.User, eventHex string) (*dto.ReferralLinkResponse, error) {
	if viewer == nil {
		return nil, apperr.Unauthorized("login required")
	}
	if viewer.Role != models.RoleTechnicalLead {
		return nil, apperr.Forbidden("only technical leads can generate referral links")
	}
	eventID, err := parseID("event", eventHex)
	if err != nil {
		return nil, err
	}
	if _, err := s.events.GetEventByID(ctx, eventID); err != nil {
		return nil, lookupErr(err, "event")
	}

	leadID := viewer.ID.Hex()
	return &dto.ReferralLinkResponse{
		Link:    referral.Link(s.origin, eventID.Hex(), leadID),
		Code:    referral.Code(leadID),
		EventID: eventID.Hex(),
	}, nil
}

// Resolve checks the ref and tlId of a followed link and returns the context
// to stage, with a signed token carrying it.
func (s *ReferralService) Resolve(ctx context.Context, eventHex, code, leadHex string) (*dto.ResolveReferralResponse, error) {
	eventID, err := parseID("event", eventHex)
	if err != nil {
		return nil, err
	}
	leadID, err := parseID("technical lead", leadHex)
	if err != nil {
		return nil, err
	}
	if !referral.VerifyCode(leadID.Hex(), code) {
		return nil, apperr.Validation("referral code does not match technical lead")
	}

	lead, err := s.users.FindUserByID(ctx, leadID)
	if err != nil {
		return nil, lookupErr(err, "technical lead")
	}
	if lead.Role != models.RoleTechnicalLead {
		return nil, apperr.NotFound("technical lead not found")
	}
	if _, err := s.events.GetEventByID(ctx, eventID); err != nil {
		return nil, lookupErr(err, "event")
	}

	staged := referral.Staged{
		TechnicalLeadID:   lead.ID.Hex(),
		TechnicalLeadName: lead.Name,
		ReferralEventID:   eventID.Hex(),
		ReferralCode:      code,
	}
	token, exp, err := s.signer.Sign(staged)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &dto.ResolveReferralResponse{
		TechnicalLeadID:   staged.TechnicalLeadID,
		TechnicalLeadName: staged.TechnicalLeadName,
		ReferralEventID:   staged.ReferralEventID,
		ReferralCode:      staged.ReferralCode,
		ReferralToken:     token,
		ExpiresAt:         exp,
	}, nil
}

// ResolveLead finds a technical lead by hex id or email address.
func (s *ReferralService) ResolveLead(ctx context.Context, ref string) (*models.User, error) {
	var (
		lead *models.User
		err  error
	)
	if oid, perr := parseID("technical lead", ref); perr == nil {
		lead, err = s.users.FindUserByID(ctx, oid)
	} else {
		lead, err = s.users.FindUserByEmail(ctx, ref)
	}
	if errors.Is(err, mongo.ErrNoDocuments) || (err == nil && lead.Role != models.RoleTechnicalLead) {
		return nil, apperr.NotFound("technical lead not found")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return lead, nil
}
