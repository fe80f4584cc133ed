package services

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"ctc-webbase/dto"
	"ctc-webbase/internal/apperr"
	"ctc-webbase/internal/formrender"
	"ctc-webbase/internal/logger"
	"ctc-webbase/internal/models"
	"ctc-webbase/internal/storage"
)

type UploadService struct {
	forms        *FormService
	store        storage.Store
	defaultMaxMB float64
	log          *zap.Logger
}

func NewUploadService(forms *FormService, store storage.Store, defaultMaxMB float64) *UploadService {
	return &UploadService{forms: forms, store: store, defaultMaxMB: defaultMaxMB, log: logger.New("upload")}
}

// UploadFile is a file picked for one field of a form.
type UploadFile struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
}

// Upload checks the file against the field's constraints and stores it. The
// returned URL is what the field's answer should be set to.
func (s *UploadService) Upload(ctx context.Context, userID bson.ObjectID, eventHex, formHex, fieldID string, file UploadFile) (*dto.UploadResponse, error) {
	if userID.IsZero() {
		return nil, apperr.Unauthorized("login required")
	}
	form, err := s.forms.FormForEvent(ctx, eventHex, formHex)
	if err != nil {
		return nil, err
	}
	field := form.FieldByID(fieldID)
	if field == nil {
		return nil, apperr.NotFound("field not found")
	}
	if field.Type != models.FieldFile {
		return nil, apperr.FieldInvalid(field.ID, field.Label+" does not accept files")
	}
	if err := formrender.CheckFile(*field, file.Name, file.Size, s.defaultMaxMB); err != nil {
		return nil, err
	}

	url, err := s.store.Put(ctx, storage.Object{
		Name:        file.Name,
		ContentType: file.ContentType,
		Size:        file.Size,
		Body:        file.Body,
	})
	if err != nil {
		s.log.Error("store upload", zap.Error(err), zap.String("form_id", form.ID.Hex()))
		return nil, apperr.Transient("upload failed, please try again").WithCause(err)
	}
	return &dto.UploadResponse{Name: file.Name, URL: url, Size: file.Size}, nil
}
