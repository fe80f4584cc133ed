package services

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/models"
)

type formFixture struct {
	store     *fakeStore
	svc       *FormService
	event     *models.Event
	creator   *models.User
	commAdmin *models.User
	member    *models.User
	outsider  *models.User
	platform  *models.User
}

func newFormFixture(t *testing.T) *formFixture {
	t.Helper()
	st := newFakeStore()
	fx := &formFixture{
		store:     st,
		creator:   st.addUser("Carol", models.RoleStudent),
		commAdmin: st.addUser("Ada", models.RoleStudent),
		member:    st.addUser("Mia", models.RoleStudent),
		outsider:  st.addUser("Otto", models.RoleStudent),
		platform:  st.addUser("Root", models.RoleAdmin),
	}
	community := &models.Community{
		ID:      bson.NewObjectID(),
		Name:    "CTC",
		Admins:  []bson.ObjectID{fx.commAdmin.ID},
		Members: []bson.ObjectID{fx.member.ID, fx.commAdmin.ID},
		Status:  "approved",
	}
	st.communities[community.ID] = community
	fx.event = &models.Event{ID: bson.NewObjectID(), CommunityID: community.ID, CreatedBy: fx.creator.ID, Title: "Hack Night"}
	st.events[fx.event.ID] = fx.event
	fx.svc = NewFormService(st, st, st, time.UTC)
	return fx
}

func (fx *formFixture) createForm(t *testing.T) *models.Form {
	t.Helper()
	form, err := fx.svc.CreateForm(context.Background(), fx.creator, fx.event.ID.Hex(), dto.CreateFormRequest{
		Title: "Registration",
		Fields: []dto.FieldInput{
			{ID: "name", Label: "Full name", Type: models.FieldText, Required: true},
			{ID: "langs", Label: "Languages", Type: models.FieldCheckboxMulti, Options: []string{"go", "rust"}},
			{ID: "ref", Label: "Referred by", Type: models.FieldText},
		},
	})
	require.NoError(t, err)
	return form
}

func TestCreateFormKeepsFieldOrder(t *testing.T) {
	fx := newFormFixture(t)
	form := fx.createForm(t)

	assert.Equal(t, fx.event.ID, form.EventID)
	assert.Equal(t, fx.creator.ID, form.CreatedBy)
	require.Len(t, form.Fields, 3)
	assert.Equal(t, []string{"name", "langs", "ref"}, []string{form.Fields[0].ID, form.Fields[1].ID, form.Fields[2].ID})
}

func TestCreateFormRejects(t *testing.T) {
	fx := newFormFixture(t)
	ctx := context.Background()
	req := dto.CreateFormRequest{Title: "R", Fields: []dto.FieldInput{{ID: "a", Label: "A", Type: models.FieldText}}}

	_, err := fx.svc.CreateForm(ctx, nil, fx.event.ID.Hex(), req)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, err = fx.svc.CreateForm(ctx, fx.outsider, fx.event.ID.Hex(), req)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = fx.svc.CreateForm(ctx, fx.member, "not-an-id", req)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = fx.svc.CreateForm(ctx, fx.member, bson.NewObjectID().Hex(), req)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	dup := dto.CreateFormRequest{Title: "R", Fields: []dto.FieldInput{
		{ID: "a", Label: "A", Type: models.FieldText},
		{ID: "a", Label: "B", Type: models.FieldEmail},
	}}
	_, err = fx.svc.CreateForm(ctx, fx.member, fx.event.ID.Hex(), dup)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	badType := dto.CreateFormRequest{Title: "R", Fields: []dto.FieldInput{{ID: "a", Label: "A", Type: "date"}}}
	_, err = fx.svc.CreateForm(ctx, fx.member, fx.event.ID.Hex(), badType)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUpdateFormPermissions(t *testing.T) {
	fx := newFormFixture(t)
	form := fx.createForm(t)
	ctx := context.Background()
	title := "Renamed"

	for _, who := range []*models.User{fx.member, fx.commAdmin, fx.creator, fx.platform} {
		updated, err := fx.svc.UpdateForm(ctx, who, fx.event.ID.Hex(), form.ID.Hex(), dto.UpdateFormRequest{Title: &title})
		require.NoError(t, err, who.Name)
		assert.Equal(t, "Renamed", updated.Title)
	}

	_, err := fx.svc.UpdateForm(ctx, fx.outsider, fx.event.ID.Hex(), form.ID.Hex(), dto.UpdateFormRequest{Title: &title})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = fx.svc.UpdateForm(ctx, fx.member, fx.event.ID.Hex(), bson.NewObjectID().Hex(), dto.UpdateFormRequest{Title: &title})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = fx.svc.UpdateForm(ctx, fx.member, fx.event.ID.Hex(), form.ID.Hex(), dto.UpdateFormRequest{})
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestDeleteFormCascades(t *testing.T) {
	fx := newFormFixture(t)
	form := fx.createForm(t)
	other := fx.createForm(t)
	ctx := context.Background()

	leadA, leadB := bson.NewObjectID().Hex(), bson.NewObjectID().Hex()
	fx.store.submissions = []*models.Submission{
		{ID: bson.NewObjectID(), FormID: form.ID, Referral: models.Referral{ReferredBy: leadA}},
		{ID: bson.NewObjectID(), FormID: form.ID, Referral: models.Referral{ReferredBy: leadA}},
		{ID: bson.NewObjectID(), FormID: form.ID, Referral: models.Referral{ReferredBy: models.NoReferral}},
		{ID: bson.NewObjectID(), FormID: other.ID, Referral: models.Referral{ReferredBy: leadB}},
	}
	var invalidated []string
	fx.svc.OnReferralsRemoved(func(_ context.Context, lead string) { invalidated = append(invalidated, lead) })

	err := fx.svc.DeleteForm(ctx, fx.member, fx.event.ID.Hex(), form.ID.Hex())
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	assert.Len(t, fx.store.submissions, 4)
	assert.Empty(t, invalidated)

	fx.store.failReferrers = errBoom
	err = fx.svc.DeleteForm(ctx, fx.creator, fx.event.ID.Hex(), form.ID.Hex())
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	assert.Len(t, fx.store.submissions, 4)
	fx.store.failReferrers = nil

	require.NoError(t, fx.svc.DeleteForm(ctx, fx.creator, fx.event.ID.Hex(), form.ID.Hex()))
	require.Len(t, fx.store.submissions, 1)
	assert.Equal(t, other.ID, fx.store.submissions[0].FormID)
	assert.Equal(t, []string{leadA}, invalidated)

	_, err = fx.svc.FormForEvent(ctx, fx.event.ID.Hex(), form.ID.Hex())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestFormMustBelongToEvent(t *testing.T) {
	fx := newFormFixture(t)
	form := fx.createForm(t)

	otherEvent := &models.Event{ID: bson.NewObjectID(), CreatedBy: fx.creator.ID}
	fx.store.events[otherEvent.ID] = otherEvent

	_, err := fx.svc.FormForEvent(context.Background(), otherEvent.ID.Hex(), form.ID.Hex())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGetFormWithSubmissionsAndExport(t *testing.T) {
	fx := newFormFixture(t)
	form := fx.createForm(t)
	ctx := context.Background()

	detail, err := fx.svc.GetFormWithSubmissions(ctx, fx.member, fx.event.ID.Hex(), form.ID.Hex())
	require.NoError(t, err)
	assert.NotNil(t, detail.Submissions)
	assert.Empty(t, detail.Submissions)

	fx.store.submissions = append(fx.store.submissions, &models.Submission{
		ID: bson.NewObjectID(), FormID: form.ID, UserID: fx.outsider.ID,
		Answers:  []models.Answer{{FieldID: "name", Value: "Otto"}},
		Referral: models.Referral{ReferredBy: models.NoReferral},
	})
	detail, err = fx.svc.GetFormWithSubmissions(ctx, fx.member, fx.event.ID.Hex(), form.ID.Hex())
	require.NoError(t, err)
	require.Len(t, detail.Submissions, 1)
	assert.Equal(t, "Otto", detail.Submissions[0].UserName)
	assert.Equal(t, "otto@example.com", detail.Submissions[0].UserEmail)

	var buf bytes.Buffer
	name, err := fx.svc.ExportSubmissions(ctx, fx.member, fx.event.ID.Hex(), form.ID.Hex(), &buf)
	require.NoError(t, err)
	assert.Equal(t, "submissions-"+form.ID.Hex()+".xlsx", name)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")))

	_, err = fx.svc.GetFormWithSubmissions(ctx, fx.outsider, fx.event.ID.Hex(), form.ID.Hex())
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}

func TestListForms(t *testing.T) {
	fx := newFormFixture(t)
	fx.createForm(t)
	fx.createForm(t)

	forms, err := fx.svc.ListForms(context.Background(), fx.platform, fx.event.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, forms, 2)
}
