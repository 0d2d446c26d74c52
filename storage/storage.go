package storage

import (
	"io"
	"log"
	"net/http"

	"yatube/config"
)

// StorageAPI is where post images and their thumbnails live. Disk by
// default, S3 when S3_BUCKET is configured.
type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var active StorageAPI

func Init() {
	if config.S3_BUCKET != "" {
		active = NewS3Storage(config.S3_BUCKET, config.S3_PREFIX)
		log.Printf("Media storage: S3 bucket %q", config.S3_BUCKET)
		return
	}
	active = NewDiskStorage(config.MEDIA_DIR)
	log.Printf("Media storage: disk at %q", config.MEDIA_DIR)
}

func Get() StorageAPI {
	if active == nil {
		panic("storage not initialized")
	}
	return active
}
