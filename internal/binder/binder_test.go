package binder

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/MKhiriev/analysis-app/internal/properties"
	"github.com/MKhiriev/analysis-app/internal/validators"
	"github.com/MKhiriev/analysis-app/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefaults(t *testing.T) properties.Properties {
	t.Helper()
	props, err := properties.Defaults().Load(context.Background())
	require.NoError(t, err)
	return props
}

func TestBind_Defaults(t *testing.T) {
	settings, violations, err := Bind(loadDefaults(t))

	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, &models.Settings{
		App: models.AppProperties{
			Name: "Analysis App",
			Report: models.ReportProperties{
				Active:         true,
				IntervalInDays: 14,
				EmailAddress:   "manager@analysisapp.com",
			},
		},
		ThirdParty: models.ThirdPartyProperties{
			Name: "Third Party Component",
		},
	}, settings)
}

func TestBind_KeyForms(t *testing.T) {
	tests := []struct {
		name  string
		props properties.Properties
	}{
		{
			name: "dotted kebab case",
			props: properties.Properties{
				"app.properties.name":                    "Name",
				"app.properties.report.interval-in-days": "20",
				"app.third-party.properties.name":        "Component",
			},
		},
		{
			name: "environment form",
			props: properties.Properties{
				"APP_PROPERTIES_NAME":                    "Name",
				"APP_PROPERTIES_REPORT_INTERVAL_IN_DAYS": "20",
				"APP_THIRD_PARTY_PROPERTIES_NAME":        "Component",
			},
		},
		{
			name: "camel case as in violation reports",
			props: properties.Properties{
				"app.properties.name":                  "Name",
				"app.properties.report.intervalInDays": "20",
				"app.third-party.properties.name":      "Component",
			},
		},
		{
			name: "mixed",
			props: properties.Properties{
				"App.Properties.Name":                    "Name",
				"app.properties.report.INTERVAL_IN_DAYS": "20",
				"app_third-party_properties.name":        "Component",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings, violations, err := Bind(tt.props)

			require.NoError(t, err)
			assert.Empty(t, violations)
			assert.Equal(t, "Name", settings.App.Name)
			assert.Equal(t, 20, settings.App.Report.IntervalInDays)
			assert.Equal(t, "Component", settings.ThirdParty.Name)
		})
	}
}

func TestBind_MissingValuesKeepZero(t *testing.T) {
	settings, violations, err := Bind(properties.Properties{})

	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, &models.Settings{}, settings)
}

func TestBind_EmptyValueIsNotConverted(t *testing.T) {
	props := loadDefaults(t)
	props["app.properties.report.interval-in-days"] = ""

	settings, violations, err := Bind(props)

	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Zero(t, settings.App.Report.IntervalInDays)
}

func TestBind_TrimsNonStringValues(t *testing.T) {
	props := loadDefaults(t)
	props["app.properties.report.interval-in-days"] = " 31 "
	props["app.properties.report.active"] = "\tfalse "
	props["app.properties.name"] = "  Padded Name  "

	settings, violations, err := Bind(props)

	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Equal(t, 31, settings.App.Report.IntervalInDays)
	assert.False(t, settings.App.Report.Active)
	assert.Equal(t, "  Padded Name  ", settings.App.Name)
	assert.Equal(t, " 31 ", props["app.properties.report.interval-in-days"], "input must not change")
}

func TestBind_WhitespaceOnlyNumberIsNotConverted(t *testing.T) {
	props := loadDefaults(t)
	props["app.properties.report.interval-in-days"] = "   "

	settings, violations, err := Bind(props)

	require.NoError(t, err)
	assert.Empty(t, violations)
	assert.Zero(t, settings.App.Report.IntervalInDays)
}

func TestBind_ConversionViolationKeepsRawValue(t *testing.T) {
	props := loadDefaults(t)
	props["app.properties.report.interval-in-days"] = " 3 1 "

	_, violations, err := Bind(props)

	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, " 3 1 ", violations[0].RejectedValue)
}

func TestBind_ConversionViolations(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantField string
		wantType  string
	}{
		{
			name:      "non numeric interval",
			key:       "app.properties.report.interval-in-days",
			value:     "abc",
			wantField: "report.intervalInDays",
			wantType:  "int",
		},
		{
			name:      "fractional interval",
			key:       "app.properties.report.interval-in-days",
			value:     "7.5",
			wantField: "report.intervalInDays",
			wantType:  "int",
		},
		{
			name:      "invalid flag",
			key:       "app.properties.report.active",
			value:     "sometimes",
			wantField: "report.active",
			wantType:  "bool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := loadDefaults(t)
			props[tt.key] = tt.value

			settings, violations, err := Bind(props)

			require.NoError(t, err)
			require.NotNil(t, settings)
			require.Len(t, violations, 1)

			v := violations[0]
			assert.Equal(t, validators.ObjectAppProperties, v.Object)
			assert.Equal(t, tt.wantField, v.Field)
			assert.Equal(t, tt.value, v.RejectedValue)
			assert.Equal(t, "failed to convert value of type 'string' to required type '"+tt.wantType+"'", v.Message)
			assert.ErrorIs(t, v, validators.ErrConversion)

			// the rest of the tree is still bound
			assert.Equal(t, "Analysis App", settings.App.Name)
			assert.Equal(t, "Third Party Component", settings.ThirdParty.Name)
		})
	}
}

func TestBind_ConversionViolationWrapsCause(t *testing.T) {
	props := loadDefaults(t)
	props["app.properties.report.interval-in-days"] = "abc"

	_, violations, err := Bind(props)

	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.ErrorIs(t, violations[0], strconv.ErrSyntax)
}

func TestBind_MultipleConversionViolations(t *testing.T) {
	props := loadDefaults(t)
	props["app.properties.report.active"] = "maybe"
	props["app.properties.report.interval-in-days"] = "two weeks"

	_, violations, err := Bind(props)

	require.NoError(t, err)
	require.Len(t, violations, 2)
	assert.Equal(t, "report.active", violations[0].Field)
	assert.Equal(t, "report.intervalInDays", violations[1].Field)
	assert.True(t, errors.Is(violations.Err(), validators.ErrInvalidSettings))
}

func TestIndexFields(t *testing.T) {
	s := &models.Settings{}
	fields := make(map[string]field)
	for _, r := range roots(s) {
		if r.object == validators.ObjectAppProperties {
			indexFields(reflect.TypeOf(r.target).Elem(), "", r.prefix, fields)
		}
	}

	assert.Equal(t, map[string]field{
		"Name":           {path: "name", envKey: "APP_PROPERTIES_NAME", kind: reflect.String},
		"Active":         {path: "report.active", envKey: "APP_PROPERTIES_REPORT_ACTIVE", kind: reflect.Bool},
		"IntervalInDays": {path: "report.intervalInDays", envKey: "APP_PROPERTIES_REPORT_INTERVAL_IN_DAYS", kind: reflect.Int},
		"EmailAddress":   {path: "report.emailAddress", envKey: "APP_PROPERTIES_REPORT_EMAIL_ADDRESS", kind: reflect.String},
	}, fields)
}

func TestLowerFirst(t *testing.T) {
	assert.Equal(t, "intervalInDays", lowerFirst("IntervalInDays"))
	assert.Equal(t, "x", lowerFirst("X"))
	assert.Equal(t, "", lowerFirst(""))
}
