package config

import "time"

// Sprint window. Fixed: the end date is always derived from the start date.
const SprintDuration = 14 * 24 * time.Hour

// Submission window for change requests.
const SubmissionWindow = 7 * 24 * time.Hour

// Database/application settings.
const (
	AppName    = "deliverydesk"
	DBFileName = "deliverydesk.db"
)

// Defaults for newly created records.
const (
	DefaultProjectName = "Default"
	DefaultProjectSlug = "default"
)
