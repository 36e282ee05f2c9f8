package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "dotted", key: "app.properties.name", want: "APP_PROPERTIES_NAME"},
		{name: "kebab case", key: "app.properties.report.interval-in-days", want: "APP_PROPERTIES_REPORT_INTERVAL_IN_DAYS"},
		{name: "hyphenated prefix", key: "app.third-party.properties.name", want: "APP_THIRD_PARTY_PROPERTIES_NAME"},
		{name: "environment form", key: "APP_PROPERTIES_NAME", want: "APP_PROPERTIES_NAME"},
		{name: "camel case", key: "app.properties.report.intervalInDays", want: "APP_PROPERTIES_REPORT_INTERVAL_IN_DAYS"},
		{name: "camel case after kebab", key: "app.third-party.properties.emailAddress", want: "APP_THIRD_PARTY_PROPERTIES_EMAIL_ADDRESS"},
		{name: "index", key: "app.servers[0].host", want: "APP_SERVERS_0_HOST"},
		{name: "surrounding spaces", key: "  app.properties.name ", want: "APP_PROPERTIES_NAME"},
		{name: "empty", key: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.key))
			assert.Equal(t, tt.want, Normalize(Normalize(tt.key)), "Normalize must be idempotent")
		})
	}
}

func TestProperties_Keys(t *testing.T) {
	props := Properties{"b": "2", "c": "3", "a": "1"}
	assert.Equal(t, []string{"a", "b", "c"}, props.Keys())
	assert.Empty(t, Properties{}.Keys())
}

func TestProperties_Normalized(t *testing.T) {
	props := Properties{
		"app.properties.name":             "dotted",
		"app.properties.report.active":    "true",
		"APP_THIRD_PARTY_PROPERTIES_NAME": "env",
	}

	got := props.Normalized()

	assert.Equal(t, Properties{
		"APP_PROPERTIES_NAME":             "dotted",
		"APP_PROPERTIES_REPORT_ACTIVE":    "true",
		"APP_THIRD_PARTY_PROPERTIES_NAME": "env",
	}, got)
	assert.Equal(t, "dotted", props["app.properties.name"], "source must not change")
}

func TestProperties_Normalized_Collision(t *testing.T) {
	// "app.properties.name" sorts after "APP_PROPERTIES_NAME".
	props := Properties{
		"APP_PROPERTIES_NAME": "env",
		"app.properties.name": "dotted",
	}

	assert.Equal(t, Properties{"APP_PROPERTIES_NAME": "dotted"}, props.Normalized())
}
