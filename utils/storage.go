package utils

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/volcengine/ve-tos-golang-sdk/v2/tos"

	"anke-go-api/pkg/config"
)

// MaxUploadSize caps avatar and post-image uploads (10MB).
const MaxUploadSize = 10 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// StorageUtil wraps the TOS object-storage client for image uploads.
type StorageUtil struct {
	cfg    config.StorageConfig
	client *tos.ClientV2
}

// NewStorageUtil builds a client from the storage config. Returns an
// error when the credentials are incomplete so callers can skip uploads
// in environments without object storage.
func NewStorageUtil(cfg config.StorageConfig) (*StorageUtil, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, errors.New("storage configuration incomplete")
	}

	credential := tos.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey)
	client, err := tos.NewClientV2(cfg.Endpoint,
		tos.WithCredentials(credential),
		tos.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}

	return &StorageUtil{cfg: cfg, client: client}, nil
}

func (u *StorageUtil) Close() {
	if u.client != nil {
		u.client.Close()
	}
}

// UploadImage stores one image under the given directory and returns the
// object key.
func (u *StorageUtil) UploadImage(file *multipart.FileHeader, directory string) (string, error) {
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("file too large, maximum %d MB", MaxUploadSize/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageTypes[ext] {
		return "", errors.New("unsupported file type")
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	directory = strings.Trim(directory, "/")
	if directory != "" {
		directory += "/"
	}

	timestamp := time.Now().Format("20060102150405")
	nanoSuffix := fmt.Sprintf("%03d", time.Now().UnixNano()%1000)
	objectName := directory + timestamp + nanoSuffix + ext

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	input := &tos.PutObjectV2Input{
		PutObjectBasicInput: tos.PutObjectBasicInput{
			Bucket: u.cfg.Bucket,
			Key:    objectName,
		},
		Content: src,
	}
	if _, err := u.client.PutObjectV2(ctx, input); err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	return objectName, nil
}

// DeleteObject removes one stored object.
func (u *StorageUtil) DeleteObject(key string) error {
	if key == "" {
		return errors.New("empty object key")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, err := u.client.DeleteObjectV2(ctx, &tos.DeleteObjectV2Input{
		Bucket: u.cfg.Bucket,
		Key:    key,
	})
	if err != nil {
		return fmt.Errorf("delete from storage: %w", err)
	}
	return nil
}
