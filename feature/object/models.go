package object

import "time"

// Info is the metadata record of a single object.
type Info struct {
	BucketName     string            `json:"bucket_name"`
	ObjectName     string            `json:"object_name"`
	Size           int64             `json:"size"`
	LastModified   time.Time         `json:"last_modified"`
	ETag           string            `json:"etag"`
	ContentType    string            `json:"content_type"`
	Metadata       map[string]string `json:"metadata"`
	VersionID      string            `json:"version_id"`
	IsDeleteMarker bool              `json:"is_delete_marker"`
}

// Download carries the content of a downloaded object.
type Download struct {
	BucketName  string `json:"bucket_name"`
	ObjectName  string `json:"object_name"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	// Content is the base64-encoded object body.
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}
