package storage

import (
	"io"
	"net/http"
	"strings"

	"yatube/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// S3Storage keeps media in a single S3 bucket. Credentials and region
// come from the standard AWS environment.
type S3Storage struct {
	bucket   string
	prefix   string
	s3Client *s3.S3
	uploader *s3manager.Uploader
}

func NewS3Storage(bucket, prefix string) StorageAPI {
	sess := session.Must(session.NewSession())
	client := s3.New(sess)
	return &S3Storage{
		bucket:   bucket,
		prefix:   prefix,
		s3Client: client,
		uploader: s3manager.NewUploaderWithClient(client),
	}
}

func (s *S3Storage) remotePath(path string) string {
	if s.prefix == "" {
		return path
	}
	return strings.TrimSuffix(s.prefix, "/") + "/" + path
}

func (s *S3Storage) Save(path string, reader io.Reader) (int64, error) {
	input := s3manager.UploadInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(path)),
		Body:   reader,
	}
	if config.S3_SSE != "" {
		input.ServerSideEncryption = aws.String(config.S3_SSE)
	}
	_, err := s.uploader.Upload(&input)
	if err != nil {
		return 0, err
	}
	head, err := s.s3Client.HeadObject(&s3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(path)),
	})
	if err != nil || head.ContentLength == nil {
		return 0, nil
	}
	return *head.ContentLength, nil
}

func (s *S3Storage) Load(path string, writer io.Writer) (int64, error) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(path)),
	})
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	return io.Copy(writer, resp.Body)
}

func (s *S3Storage) Serve(path string, request *http.Request, writer http.ResponseWriter) {
	resp, err := s.s3Client.GetObject(&s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(path)),
	})
	if err != nil {
		http.NotFound(writer, request)
		return
	}
	defer resp.Body.Close()
	if resp.ContentType != nil {
		writer.Header().Set("Content-Type", *resp.ContentType)
	}
	_, _ = io.Copy(writer, resp.Body)
}

func (s *S3Storage) Delete(path string) error {
	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    aws.String(s.remotePath(path)),
	})
	return err
}
