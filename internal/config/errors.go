package config

import (
	"errors"
)

var (
	// ErrPortEmpty is returned if PORT is empty or zero.
	ErrPortEmpty = errors.New("PORT can not be empty or 0")

	// ErrUnknownDocumentStore is returned for a DOCUMENT_STORE other than postgres, mongo or bolt.
	ErrUnknownDocumentStore = errors.New("DOCUMENT_STORE must be one of postgres, mongo, bolt")

	// ErrUnknownBlobStore is returned for a BLOB_STORE other than minio, s3 or memory.
	ErrUnknownBlobStore = errors.New("BLOB_STORE must be one of minio, s3, memory")

	// ErrBucketEmpty is returned if STORAGE_BUCKET is empty.
	ErrBucketEmpty = errors.New("STORAGE_BUCKET can not be empty")

	// ErrUploadLimit is returned if UPLOAD_MAX_BYTES is not positive.
	ErrUploadLimit = errors.New("UPLOAD_MAX_BYTES must be positive")

	// ErrWeakJWTSecret is returned in production when JWT_SECRET is unset or the default.
	ErrWeakJWTSecret = errors.New("JWT_SECRET must be set in production")
)
