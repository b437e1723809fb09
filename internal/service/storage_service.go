package service

import (
	"ailearn_backend/internal/config"
	"ailearn_backend/pkg/logger"
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// StorageService persists uploaded files and returns a URL the frontend can
// serve. Supported types are "local" (files under Storage.LocalPath, served
// from /uploads) and "minio".
type StorageService struct {
	cfg    config.StorageConfig
	client *minio.Client
}

func NewStorageService(cfg config.StorageConfig) (*StorageService, error) {
	s := &StorageService{cfg: cfg}
	if cfg.Type != "minio" {
		if err := os.MkdirAll(cfg.LocalPath, 0o755); err != nil {
			return nil, fmt.Errorf("creating upload directory: %w", err)
		}
		return s, nil
	}

	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to object storage: %w", err)
	}
	s.client = client

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket: %w", err)
		}
		logger.Log.Info("created storage bucket", zap.String("bucket", cfg.MinioBucket))
	}
	return s, nil
}

// SaveFile stores the reader's content under a generated object name and
// returns its public URL.
func (s *StorageService) SaveFile(ctx context.Context, r io.Reader, size int64, filename, prefix string) (string, error) {
	object := objectName(prefix, filename)

	if s.client == nil {
		dst := filepath.Join(s.cfg.LocalPath, filepath.FromSlash(object))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return "", err
		}
		f, err := os.Create(dst)
		if err != nil {
			return "", err
		}
		defer f.Close()
		if _, err := io.Copy(f, r); err != nil {
			return "", err
		}
		return "/uploads/" + object, nil
	}

	contentType := mime.TypeByExtension(filepath.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := s.client.PutObject(ctx, s.cfg.MinioBucket, object, r, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("uploading object: %w", err)
	}

	scheme := "http"
	if s.cfg.MinioUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinioEndpoint, s.cfg.MinioBucket, object), nil
}

// SaveVideo stores a video already sitting on local disk, e.g. a temp file
// written by the upload handler so it could be probed first.
func (s *StorageService) SaveVideo(ctx context.Context, localPath, filename string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", err
	}
	return s.SaveFile(ctx, f, info.Size(), filename, "videos")
}

func objectName(prefix, filename string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s/%s_%s%s", prefix, base, uuid.New().String()[:8], ext)
}
