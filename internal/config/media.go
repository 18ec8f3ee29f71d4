package config

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	ErrMediaNotConfigured = errors.New("media service not configured")
	ErrUploadFailed       = errors.New("File upload failed")
)

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func NewCloudinaryConfig() *CloudinaryConfig {
	folder := os.Getenv("CLOUDINARY_FOLDER")
	if folder == "" {
		folder = "student-hub-uploads"
	}
	return &CloudinaryConfig{
		CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		Folder:    folder,
	}
}

// MediaUploader stores a file with the hosted media service and returns the
// public URL. The backend never serves file bytes itself.
type MediaUploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

type MediaService struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger *zap.Logger
}

func NewMediaService(lc fx.Lifecycle, config *CloudinaryConfig, logger *zap.Logger) (MediaUploader, error) {
	service := &MediaService{folder: config.Folder, logger: logger}
	if config.CloudName == "" || config.APIKey == "" || config.APISecret == "" {
		logger.Warn("Cloudinary credentials not set, file uploads disabled")
		return service, nil
	}

	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, err
	}
	service.cld = cld

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Media Service initialized", zap.String("folder", config.Folder))
			return nil
		},
	})
	return service, nil
}

func (m *MediaService) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	if m.cld == nil {
		return "", ErrMediaNotConfigured
	}

	result, err := m.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         m.folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
	})
	if err != nil {
		return "", err
	}

	m.logger.Debug("Uploaded file to Cloudinary",
		zap.String("filename", filename),
		zap.String("url", result.SecureURL))
	return result.SecureURL, nil
}
