package storage

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"shrine/config"
)

type S3Storage struct {
	bucket   string
	s3Client *s3.S3
}

func NewS3Storage(bucket, region, endpoint, auth string) (*S3Storage, error) {
	cfg := aws.Config{
		Region: aws.String(region),
	}
	if endpoint != "" {
		cfg.Endpoint = aws.String(endpoint)
		cfg.S3ForcePathStyle = aws.Bool(true)
	}
	if key, secret, found := strings.Cut(auth, ":"); found {
		cfg.Credentials = credentials.NewStaticCredentials(key, secret, "")
	}
	sess, err := session.NewSession(&cfg)
	if err != nil {
		return nil, err
	}
	return &S3Storage{
		bucket:   bucket,
		s3Client: s3.New(sess),
	}, nil
}

func (s *S3Storage) Save(name string, data []byte) error {
	uploader := s3manager.NewUploaderWithClient(s.s3Client)
	_, err := uploader.Upload(&s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
		Body:   bytes.NewReader(data),
	})
	return err
}

func (s *S3Storage) Delete(name string) DeleteResult {
	if !s.Exists(name) {
		return NotFound
	}
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
	})
	if err != nil {
		log.Printf("Cannot delete %s: %v", name, err)
		return StorageError
	}
	return Deleted
}

func (s *S3Storage) Exists(name string) bool {
	_, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && (aerr.Code() == "NotFound" || aerr.Code() == s3.ErrCodeNoSuchKey) {
			return false
		}
		log.Printf("Cannot check %s: %v", name, err)
		return false
	}
	return true
}

// localPath returns a flattened temp file location for a downloaded object
func (s *S3Storage) localPath(name string) string {
	return config.TMP_DIR + "/" + strings.ReplaceAll(name, "/", "_")
}

// Serve downloads the object to a local temp file and serves that,
// removing the copy afterwards.
func (s *S3Storage) Serve(name string, w http.ResponseWriter, r *http.Request) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(name),
	})
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer resp.Body.Close()

	local := s.localPath(name)
	out, err := os.Create(local)
	if err != nil {
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	_, err = io.Copy(out, resp.Body)
	out.Close()
	if err != nil {
		_ = os.Remove(local)
		http.Error(w, "storage error", http.StatusInternalServerError)
		return
	}
	http.ServeFile(w, r, local)
	_ = os.Remove(local)
}
