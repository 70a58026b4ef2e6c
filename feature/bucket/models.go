package bucket

import "time"

// Summary is a single entry in a bucket listing.
type Summary struct {
	Name         string    `json:"name"`
	CreationDate time.Time `json:"creation_date"`
}

// Info is the detailed description of one bucket.
type Info struct {
	Name         string            `json:"name"`
	CreationDate time.Time         `json:"creation_date"`
	Tags         map[string]string `json:"tags"`
	Policy       string            `json:"policy"`
	Encryption   string            `json:"encryption"`
	ObjectCount  int64             `json:"object_count"`
	TotalSize    int64             `json:"total_size"`
}

// ObjectSummary is a single entry in an object listing.
type ObjectSummary struct {
	Key          string    `json:"key"`
	LastModified time.Time `json:"last_modified"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag"`
	StorageClass string    `json:"storage_class"`
}

// ObjectListing is the result of listing objects in a bucket.
type ObjectListing struct {
	Bucket    string          `json:"bucket"`
	Prefix    string          `json:"prefix,omitempty"`
	Objects   []ObjectSummary `json:"objects"`
	Count     int             `json:"count"`
	Truncated bool            `json:"truncated"`
}

// ConnectionStatus reports the outcome of a connectivity probe.
type ConnectionStatus struct {
	Endpoint    string `json:"endpoint"`
	BucketCount int    `json:"bucket_count"`
	Status      string `json:"status"`
}
