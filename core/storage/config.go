package storage

// Config holds configuration for the optional object storage exchange.
type Config struct {
	// Enabled turns on downloading inputs from and uploading reports to the bucket.
	Enabled bool `mapstructure:"enabled" default:"false"`
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket holding the exports.
	Bucket string `mapstructure:"bucket" default:"reconcile"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// InputPrefix is the object prefix the input exports are read from.
	InputPrefix string `mapstructure:"input_prefix" default:"exports"`
	// OutputPrefix is the object prefix reports are written to.
	OutputPrefix string `mapstructure:"output_prefix" default:"reports"`
}
