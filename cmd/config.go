package cmd

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	RedisAddr            string
	NotifyStatusChannel  string
	NotifyOverdueChannel string
	EnableJobs           string
}

// JobsEnabled reports whether background jobs should run in this process.
// Anything other than the literal "true" disables them, so a worker can be
// split out from the API without code changes.
func (c Config) JobsEnabled() bool {
	return c.EnableJobs == "true"
}
