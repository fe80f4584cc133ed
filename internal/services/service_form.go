package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/export"
	"ctc-webbase/internal/logger"
	"ctc-webbase/internal/models"
	repo "ctc-webbase/internal/repository"
)

type FormService struct {
	events      repo.EventRepository
	forms       repo.FormRepository
	submissions repo.SubmissionRepository
	loc         *time.Location
	log         *zap.Logger

	onReferralsRemoved func(ctx context.Context, leadID string)
}

func NewFormService(events repo.EventRepository, forms repo.FormRepository, submissions repo.SubmissionRepository, loc *time.Location) *FormService {
	return &FormService{
		events:      events,
		forms:       forms,
		submissions: submissions,
		loc:         loc,
		log:         logger.New("form"),
	}
}

// OnReferralsRemoved registers fn to run once per credited lead after a form
// and its submissions are deleted.
func (s *FormService) OnReferralsRemoved(fn func(ctx context.Context, leadID string)) {
	s.onReferralsRemoved = fn
}

type access int

const (
	accessNone access = iota
	accessEdit        // community members
	accessOwn         // platform admins, community admins, event creator
)

// accessFor decides what viewer may do with forms of event. Members of the
// owning community may edit; deleting needs admin rights or authorship.
func (s *FormService) accessFor(ctx context.Context, viewer *models.User, event *models.Event) (access, error) {
	if viewer == nil {
		return accessNone, nil
	}
	if viewer.Role == models.RoleAdmin || event.CreatedBy == viewer.ID {
		return accessOwn, nil
	}
	if event.CommunityID.IsZero() {
		return accessNone, nil
	}
	community, err := s.events.GetCommunityByID(ctx, event.CommunityID)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return accessNone, nil
	}
	if err != nil {
		return accessNone, apperr.Internal(err)
	}
	switch {
	case community.IsAdmin(viewer.ID):
		return accessOwn, nil
	case community.IsMember(viewer.ID):
		return accessEdit, nil
	}
	return accessNone, nil
}

func (s *FormService) event(ctx context.Context, eventHex string) (*models.Event, error) {
	eventID, err := parseID("event", eventHex)
	if err != nil {
		return nil, err
	}
	event, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, lookupErr(err, "event")
	}
	return event, nil
}

// authorize loads the event and checks viewer holds at least need.
func (s *FormService) authorize(ctx context.Context, viewer *models.User, eventHex string, need access) (*models.Event, error) {
	if viewer == nil {
		return nil, apperr.Unauthorized("login required")
	}
	event, err := s.event(ctx, eventHex)
	if err != nil {
		return nil, err
	}
	got, err := s.accessFor(ctx, viewer, event)
	if err != nil {
		return nil, err
	}
	if got < need {
		return nil, apperr.Forbidden("you do not have permission to manage forms of this event")
	}
	return event, nil
}

// FormForEvent loads a form and checks it belongs to the event. No
// permission check: anyone who can see the event can fill its forms.
func (s *FormService) FormForEvent(ctx context.Context, eventHex, formHex string) (*models.Form, error) {
	eventID, err := parseID("event", eventHex)
	if err != nil {
		return nil, err
	}
	formID, err := parseID("form", formHex)
	if err != nil {
		return nil, err
	}
	if _, err := s.events.GetEventByID(ctx, eventID); err != nil {
		return nil, lookupErr(err, "event")
	}
	form, err := s.forms.FindFormForEvent(ctx, formID, eventID)
	if err != nil {
		return nil, lookupErr(err, "form")
	}
	return form, nil
}

func (s *FormService) CreateForm(ctx context.Context, viewer *models.User, eventHex string, req dto.CreateFormRequest) (*models.Form, error) {
	if err := req.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	event, err := s.authorize(ctx, viewer, eventHex, accessEdit)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	form := &models.Form{
		ID:          bson.NewObjectID(),
		EventID:     event.ID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Fields:      dto.FieldModels(req.Fields),
		CreatedBy:   viewer.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.forms.InsertForm(ctx, form); err != nil {
		return nil, apperr.Internal(err)
	}
	s.log.Info("form created", zap.String("form_id", form.ID.Hex()), zap.String("event_id", event.ID.Hex()))
	return form, nil
}

func (s *FormService) ListForms(ctx context.Context, viewer *models.User, eventHex string) ([]models.Form, error) {
	event, err := s.authorize(ctx, viewer, eventHex, accessEdit)
	if err != nil {
		return nil, err
	}
	forms, err := s.forms.ListFormsByEvent(ctx, event.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return forms, nil
}

// GetFormWithSubmissions returns the form and every submission to it, each
// joined with the submitter's name and email.
func (s *FormService) GetFormWithSubmissions(ctx context.Context, viewer *models.User, eventHex, formHex string) (*dto.FormDetailResponse, error) {
	form, err := s.managedForm(ctx, viewer, eventHex, formHex, accessEdit)
	if err != nil {
		return nil, err
	}
	subs, err := s.submissions.ListByFormWithUsers(ctx, form.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if subs == nil {
		subs = []models.SubmissionWithUser{}
	}
	return &dto.FormDetailResponse{Form: form, Submissions: subs}, nil
}

func (s *FormService) UpdateForm(ctx context.Context, viewer *models.User, eventHex, formHex string, req dto.UpdateFormRequest) (*models.Form, error) {
	if err := req.Validate(); err != nil {
		return nil, apperr.Validation(err.Error())
	}
	form, err := s.managedForm(ctx, viewer, eventHex, formHex, accessEdit)
	if err != nil {
		return nil, err
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = *req.Description
	}
	if req.Fields != nil {
		set["fields"] = dto.FieldModels(*req.Fields)
	}

	updated, err := s.forms.UpdateForm(ctx, form.ID, set)
	if err != nil {
		return nil, lookupErr(err, "form")
	}
	return updated, nil
}

// DeleteForm removes the form together with all of its submissions.
func (s *FormService) DeleteForm(ctx context.Context, viewer *models.User, eventHex, formHex string) error {
	form, err := s.managedForm(ctx, viewer, eventHex, formHex, accessOwn)
	if err != nil {
		return err
	}
	leads, err := s.submissions.ReferrersOfForm(ctx, form.ID)
	if err != nil {
		return apperr.Internal(err)
	}
	if err := s.forms.DeleteForm(ctx, form.ID); err != nil {
		return lookupErr(err, "form")
	}
	if s.onReferralsRemoved != nil {
		for _, lead := range leads {
			s.onReferralsRemoved(ctx, lead)
		}
	}
	s.log.Info("form deleted",
		zap.String("form_id", form.ID.Hex()),
		zap.String("by", viewer.ID.Hex()),
		zap.Int("credited_leads", len(leads)),
	)
	return nil
}

// ExportSubmissions writes the form's submissions to w as an xlsx workbook
// and returns a file name for it.
func (s *FormService) ExportSubmissions(ctx context.Context, viewer *models.User, eventHex, formHex string, w io.Writer) (string, error) {
	detail, err := s.GetFormWithSubmissions(ctx, viewer, eventHex, formHex)
	if err != nil {
		return "", err
	}
	if err := export.Submissions(w, detail.Form, detail.Submissions, s.loc); err != nil {
		return "", apperr.Internal(err)
	}
	return "submissions-" + detail.Form.ID.Hex() + ".xlsx", nil
}

func (s *FormService) managedForm(ctx context.Context, viewer *models.User, eventHex, formHex string, need access) (*models.Form, error) {
	formID, err := parseID("form", formHex)
	if err != nil {
		return nil, err
	}
	event, err := s.authorize(ctx, viewer, eventHex, need)
	if err != nil {
		return nil, err
	}
	form, err := s.forms.FindFormForEvent(ctx, formID, event.ID)
	if err != nil {
		return nil, lookupErr(err, "form")
	}
	return form, nil
}
