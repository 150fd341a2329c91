package storage

// Driver names accepted in Config.Driver.
const (
	DriverMinio = "minio"
	DriverS3    = "s3"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the client implementation ("minio" or "s3").
	Driver string `mapstructure:"driver" default:"minio"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to synchronise with.
	Bucket string `mapstructure:"bucket" default:"sync"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
