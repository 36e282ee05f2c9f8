// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Settings is the root of the application settings tree. It is bound once
// from flat property input at startup and treated as read-only afterwards.
type Settings struct {
	// App holds the main application settings bound from the
	// "app.properties" prefix.
	App AppProperties `json:"app"`

	// ThirdParty holds the settings of the bundled third-party component,
	// bound from the "app.third-party.properties" prefix.
	ThirdParty ThirdPartyProperties `json:"third_party"`
}

// AppProperties holds the main application settings.
type AppProperties struct {
	// Name is the display name of the application. Required, must not be
	// blank.
	// Property: app.properties.name
	Name string `env:"NAME" json:"name"`

	// Report holds the periodic report settings.
	// Properties: app.properties.report.*
	Report ReportProperties `envPrefix:"REPORT_" json:"report"`
}

// ReportProperties holds the periodic report settings owned by
// [AppProperties].
type ReportProperties struct {
	// Active toggles report generation.
	// Property: app.properties.report.active
	Active bool `env:"ACTIVE" json:"active"`

	// IntervalInDays is the number of days between two reports. Must lie
	// within [7, 30].
	// Property: app.properties.report.interval-in-days
	IntervalInDays int `env:"INTERVAL_IN_DAYS" json:"interval_in_days"`

	// EmailAddress is the recipient of generated reports. Must be a
	// well-formed address in the analysisapp.com domain.
	// Property: app.properties.report.email-address
	EmailAddress string `env:"EMAIL_ADDRESS" json:"email_address"`
}

// ThirdPartyProperties holds the settings of the third-party component.
type ThirdPartyProperties struct {
	// Name identifies the component. Required, must not be blank.
	// Property: app.third-party.properties.name
	Name string `env:"NAME" json:"name"`
}
