package configuration

import "github.com/adampresley/configinator"

const (
	SourceFile = "file"
	SourceHTTP = "http"
	SourceS3   = "s3"
)

type Config struct {
	AssetSource          string `flag:"assetsource" env:"ASSET_SOURCE" default:"file" description:"Where image assets are served from. Valid values are 'file' and 's3'"`
	AuditIntervalMinutes int    `flag:"auditinterval" env:"AUDIT_INTERVAL_MINUTES" default:"60" description:"Minutes between asset audits. 0 disables the audit"`
	AwsEndpointUrl       string `flag:"awsep" env:"AWS_ENDPOINT_URL" default:"http://localhost:4566" description:"AWS endpoint URL"`
	AwsRegion            string `flag:"awsregion" env:"AWS_REGION" default:"us-central-1" description:"AWS region"`
	AwsAccessKeyId       string `flag:"awsaccesskeyid" env:"AWS_ACCESS_KEY_ID" default:"" description:"AWS access key ID"`
	AwsSecretAccessKey   string `flag:"awssecretaccesskey" env:"AWS_SECRET_ACCESS_KEY" default:"" description:"AWS secret access key"`
	AwsBucket            string `flag:"awsbucket" env:"AWS_BUCKET" default:"photogallery" description:"S3 bucket holding the site data and assets"`
	DataBaseURL          string `flag:"database" env:"DATA_BASE_URL" default:"http://localhost:8080" description:"Base URL of the site when data is fetched over HTTP"`
	DataSource           string `flag:"datasource" env:"DATA_SOURCE" default:"file" description:"Where data documents are loaded from. Valid values are 'file', 'http' and 's3'"`
	Host                 string `flag:"host" env:"HOST" default:"localhost:8081" description:"The address and port to bind the HTTP server to"`
	LogLevel             string `flag:"loglevel" env:"LOG_LEVEL" default:"debug" description:"The log level to use. Valid values are 'debug', 'info', 'warn', and 'error'"`
	MaxAuditWorkers      int    `flag:"maw" env:"MAX_AUDIT_WORKERS" default:"4" description:"Maximum number of concurrent asset audit workers"`
	MaxLoadWorkers       int    `flag:"mlw" env:"MAX_LOAD_WORKERS" default:"20" description:"Maximum number of concurrent data document loads"`
	SessionIdleMinutes   int    `flag:"sessionidle" env:"SESSION_IDLE_MINUTES" default:"30" description:"Minutes before an idle page session is closed"`
	SiteDir              string `flag:"sitedir" env:"SITE_DIR" default:"./site" description:"Directory holding data/ and assets/ when served from disk"`
	SitePrefix           string `flag:"siteprefix" env:"SITE_PREFIX" default:"" description:"Key prefix of the site inside the S3 bucket"`
}

func LoadConfig() Config {
	config := Config{}
	configinator.Behold(&config)
	return config
}

func (c Config) UsesS3() bool {
	return c.DataSource == SourceS3 || c.AssetSource == SourceS3
}
