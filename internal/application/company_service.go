package application

import (
	"context"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-job-board/internal/domain/entity"
	repo "github.com/oksasatya/go-job-board/internal/domain/repository"
	"github.com/oksasatya/go-job-board/pkg/apperror"
)

const DefaultLogoMaxBytes = 2 << 20

type CompanyService struct {
	Companies    repo.CompanyRepository
	Logos        LogoStorage
	LogoMaxBytes int64
	Logger       *logrus.Logger
}

func NewCompanyService(companies repo.CompanyRepository, logos LogoStorage, logoMaxBytes int64, logger *logrus.Logger) *CompanyService {
	if logoMaxBytes <= 0 {
		logoMaxBytes = DefaultLogoMaxBytes
	}
	return &CompanyService{Companies: companies, Logos: logos, LogoMaxBytes: logoMaxBytes, Logger: logger}
}

type CreateCompanyInput struct {
	Name        string
	Description string
	Location    string
	OwnerID     string
	Logo        string
}

// LogoUpload is an image received from a multipart form.
type LogoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Create registers a company for callerID. The owner is always the caller.
func (s *CompanyService) Create(ctx context.Context, callerID string, in CreateCompanyInput) (*entity.Company, error) {
	if in.OwnerID != callerID {
		return nil, apperror.Forbidden("ownerId must be the signed-in user")
	}

	if _, err := s.Companies.GetByOwner(ctx, callerID); err == nil {
		return nil, apperror.Conflict("user already has a company")
	} else if !isNotFound(err) {
		return nil, storeErr("could not create company", err)
	}

	c := &entity.Company{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Logo:        strings.TrimSpace(in.Logo),
		OwnerID:     callerID,
	}
	if err := s.Companies.Create(ctx, c); err != nil {
		switch {
		case isDuplicate(err):
			return nil, apperror.Conflict("user already has a company")
		case isNotFound(err):
			return nil, apperror.NotFound("user not found")
		}
		return nil, storeErr("could not create company", err)
	}
	s.Logger.WithFields(logrus.Fields{"company_id": c.ID, "owner_id": c.OwnerID}).Info("company created")
	return c, nil
}

// GetByOwner reports whether ownerID has a company and returns it.
func (s *CompanyService) GetByOwner(ctx context.Context, ownerID string) (*entity.Company, bool, error) {
	c, err := s.Companies.GetByOwner(ctx, ownerID)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, storeErr("could not load company", err)
	}
	return c, true, nil
}

// UploadLogo stores an image under logos/<companyId>/ and points the company at it.
func (s *CompanyService) UploadLogo(ctx context.Context, callerID, companyID string, up LogoUpload) (*entity.Company, error) {
	if s.Logos == nil {
		return nil, apperror.Unavailable("logo storage is not configured", nil)
	}
	if !strings.HasPrefix(strings.ToLower(up.ContentType), "image/") {
		return nil, apperror.Validation("logo must be an image", map[string]string{"logo": "unsupported content type"})
	}
	if up.Size > s.LogoMaxBytes {
		return nil, apperror.Validation("logo is too large", map[string]any{"logo": "exceeds size limit", "max_bytes": s.LogoMaxBytes})
	}

	c, err := s.Companies.GetByID(ctx, companyID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFound("company not found")
		}
		return nil, storeErr("could not upload logo", err)
	}
	if c.OwnerID != callerID {
		return nil, apperror.Forbidden("you can only change your own company")
	}

	objectPath := LogoObjectPath(c.ID, up.Filename)
	body := io.LimitReader(up.Body, s.LogoMaxBytes+1)
	url, err := s.Logos.Upload(ctx, objectPath, up.ContentType, body)
	if err != nil {
		return nil, apperror.Unavailable("could not store logo", err)
	}
	if err := s.Companies.UpdateLogo(ctx, c.ID, url); err != nil {
		return nil, storeErr("could not upload logo", err)
	}
	c.Logo = url
	return c, nil
}

// LogoObjectPath names a fresh object for a company logo, keeping the file extension.
func LogoObjectPath(companyID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join("logos", companyID, uuid.NewString()+ext)
}
