package repositories

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"

	"github.com/themis-legal/themis-backend/models"
)

const signedUrlExpiryHours = 1

type BlobRepository interface {
	GetBlob(ctx context.Context, bucketUrl, fileName string) (models.Blob, error)
	OpenStream(ctx context.Context, bucketUrl, fileRef, fileName string) (io.WriteCloser, error)
	DeleteFile(ctx context.Context, bucketUrl, fileName string) error
	GenerateSignedUrl(ctx context.Context, bucketUrl, fileName string) (string, error)
}

type blobRepository struct {
	buckets map[string]*blob.Bucket
	m       sync.Mutex
}

func NewBlobRepository() BlobRepository {
	return &blobRepository{
		buckets: make(map[string]*blob.Bucket),
	}
}

func (repository *blobRepository) openBlobBucket(ctx context.Context, bucketUrl string) (*blob.Bucket, error) {
	repository.m.Lock()
	defer repository.m.Unlock()

	if repository.buckets[bucketUrl] == nil {
		bucket, err := blob.OpenBucket(ctx, bucketUrl)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open bucket %s", bucketUrl)
		}

		ok, err := bucket.IsAccessible(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to check bucket accessibility %s", bucketUrl)
		} else if !ok {
			return nil, errors.Newf("bucket %s is not accessible", bucketUrl)
		}

		repository.buckets[bucketUrl] = bucket
	}
	return repository.buckets[bucketUrl], nil
}

func (repository *blobRepository) GetBlob(ctx context.Context, bucketUrl, fileName string) (models.Blob, error) {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return models.Blob{}, err
	}

	ok, err := bucket.Exists(ctx, fileName)
	if err != nil {
		return models.Blob{}, errors.Wrapf(err,
			"failed to check if file %s exists in bucket %s", fileName, bucketUrl)
	} else if !ok {
		return models.Blob{}, errors.Wrapf(models.NotFoundError,
			"file %s does not exist in bucket %s", fileName, bucketUrl)
	}

	reader, err := bucket.NewReader(ctx, fileName, nil)
	if err != nil {
		return models.Blob{}, errors.Wrapf(err, "failed to read object %s/%s", bucketUrl, fileName)
	}

	return models.Blob{FileName: fileName, ReadCloser: reader}, nil
}

func (repository *blobRepository) OpenStream(ctx context.Context, bucketUrl, fileRef, fileName string) (io.WriteCloser, error) {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return nil, err
	}

	return bucket.NewWriter(ctx, fileRef, &blob.WriterOptions{
		ContentDisposition: fmt.Sprintf("attachment; filename=%q", fileName),
	})
}

func (repository *blobRepository) DeleteFile(ctx context.Context, bucketUrl, fileName string) error {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	return bucket.Delete(ctx, fileName)
}

func (repository *blobRepository) GenerateSignedUrl(ctx context.Context, bucketUrl, fileName string) (string, error) {
	bucket, err := repository.openBlobBucket(ctx, bucketUrl)
	if err != nil {
		return "", err
	}

	return bucket.SignedURL(ctx, fileName, &blob.SignedURLOptions{
		Expiry: signedUrlExpiryHours * time.Hour,
	})
}
