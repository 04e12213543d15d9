package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/yokoo-bicycle/internal/domain/entity"
	repo "github.com/oksasatya/yokoo-bicycle/internal/domain/repository"
	"github.com/oksasatya/yokoo-bicycle/pkg/helpers"
)

// featuredCount is how many bicycles the home page shows.
const featuredCount = 3

// CatalogService manages the bicycle catalog and its images.
type CatalogService struct {
	Repo      repo.BicycleRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewCatalogService(r repo.BicycleRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *CatalogService {
	return &CatalogService{Repo: r, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

type BicycleInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
}

func (s *CatalogService) Add(ctx context.Context, in BicycleInput) (*entity.Bicycle, error) {
	b := &entity.Bicycle{Name: in.Name, Description: in.Description, Price: in.Price, ImageURL: in.ImageURL}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Featured returns the first bicycles for the landing page.
func (s *CatalogService) Featured(ctx context.Context) ([]entity.Bicycle, error) {
	return s.Repo.List(ctx, featuredCount)
}

func (s *CatalogService) All(ctx context.Context) ([]entity.Bicycle, error) {
	return s.Repo.List(ctx, 0)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*entity.Bicycle, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// UploadImage stores a bicycle image in GCS and records its public URL.
func (s *CatalogService) UploadImage(ctx context.Context, id string, r io.Reader, filename, contentType string) (string, error) {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("bicycles", id, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Repo.SetImageURL(ctx, id, url); err != nil {
		return "", err
	}
	return url, nil
}
