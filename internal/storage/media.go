package storage

import (
	"VidTube/config"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"

	"github.com/google/uuid"
)

// Object name prefixes per media kind.
const (
	PrefixVideo  = "videos"
	PrefixThumb  = "thumbnails"
	PrefixAvatar = "avatars"
	PrefixCover  = "covers"
	PrefixTweet  = "tweets"
)

type UploadResult struct {
	URL        string
	ObjectName string
}

func bucketName() string {
	if Minio != nil {
		return Minio.Bucket
	}
	return config.AppConfig.BucketName
}

// PublicURL builds the direct URL of a stored object.
func PublicURL(object string) string {
	return fmt.Sprintf("http://%s:%s/%s/%s",
		config.AppConfig.MinioHost,
		config.AppConfig.MinioPort,
		bucketName(),
		object,
	)
}

// UploadMultipart streams an uploaded form file into the media store under a
// fresh object name and returns its URL and storage ID.
func UploadMultipart(ctx context.Context, fh *multipart.FileHeader, prefix string) (*UploadResult, error) {
	if Default == nil {
		return nil, errors.New("media store not initialized")
	}
	if fh == nil {
		return nil, errors.New("missing file")
	}
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	object := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), path.Ext(fh.Filename))
	opts := PutOptions{ContentType: fh.Header.Get("Content-Type")}
	if err := Default.PutObject(ctx, bucketName(), object, src, fh.Size, opts); err != nil {
		return nil, err
	}
	return &UploadResult{
		URL:        PublicURL(object),
		ObjectName: object,
	}, nil
}

// PresignedURL builds a time-limited download URL for a stored object.
func PresignedURL(ctx context.Context, object string) (string, error) {
	if Default == nil {
		return "", errors.New("media store not initialized")
	}
	return Default.PresignedGetObject(ctx, bucketName(), object, config.AppConfig.PresignExpiry)
}

// Remove deletes a stored object by its storage ID.
func Remove(ctx context.Context, object string) error {
	if Default == nil {
		return errors.New("media store not initialized")
	}
	if object == "" {
		return nil
	}
	return Default.RemoveObject(ctx, bucketName(), object)
}
