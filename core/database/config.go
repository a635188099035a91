package database

// Config holds configuration for the document database connection.
type Config struct {
	// URI is the MongoDB connection string.
	URI string `mapstructure:"uri" default:"mongodb://localhost:27017"`
	// Name is the database name.
	Name string `mapstructure:"name" default:"storefront"`
	// TimeoutSeconds is the connection and ping timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
