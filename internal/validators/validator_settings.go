package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/analysis-app/models"
)

// Owning object paths as they appear in violation reports.
const (
	ObjectAppProperties        = "app.properties"
	ObjectReportProperties     = "app.properties.report"
	ObjectThirdPartyProperties = "app.third-party.properties"
)

// Field identifiers accepted by SettingsValidator. Each one equals the
// [Violation.Path] of the violations it can produce. FieldReportActive has
// no rules and never produces a violation.
const (
	FieldAppName              = "app.properties.name"
	FieldReportActive         = "app.properties.report.active"
	FieldReportIntervalInDays = "app.properties.report.intervalInDays"
	FieldReportEmailAddress   = "app.properties.report.emailAddress"
	FieldThirdPartyName       = "app.third-party.properties.name"
)

const (
	ReportIntervalMinDays = 7
	ReportIntervalMaxDays = 30

	// ReportEmailDomain applies to the report recipient only.
	ReportEmailDomain = "@analysisapp.com"
)

var (
	reportFields     = []string{FieldReportActive, FieldReportIntervalInDays, FieldReportEmailAddress}
	appFields        = append([]string{FieldAppName}, reportFields...)
	thirdPartyFields = []string{FieldThirdPartyName}
	settingsFields   = append(slices.Clone(appFields), thirdPartyFields...)
)

// SettingsFields returns every field identifier validated by default for
// [models.Settings], in report order.
func SettingsFields() []string {
	return slices.Clone(settingsFields)
}

// SettingsValidator implements the Validator interface for the settings
// tree: Settings, AppProperties, ReportProperties and ThirdPartyProperties.
//
// It supports both value and pointer forms of every model type and allows
// optional field-level scoping via variadic field identifiers. All
// violations of the requested fields are collected and returned together as
// [Violations].
type SettingsValidator struct {
	reportEmailDomain string
}

// NewSettingsValidator constructs a SettingsValidator and returns it as the
// Validator interface.
func NewSettingsValidator() Validator {
	return &SettingsValidator{
		reportEmailDomain: ReportEmailDomain,
	}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj.
//
// Returns ErrUnsupportedType if obj is not a settings model, ErrNilValue for
// a nil pointer, ErrUnknownField if a field identifier does not belong to
// the model, ctx.Err() if ctx is already done, [Violations] if any rule
// failed, and nil otherwise.
func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch value := obj.(type) {
	case models.Settings:
		return v.validateSettings(value, fields...)
	case *models.Settings:
		if value == nil {
			return ErrNilValue
		}
		return v.validateSettings(*value, fields...)

	case models.AppProperties:
		return v.validateAppProperties(value, fields...)
	case *models.AppProperties:
		if value == nil {
			return ErrNilValue
		}
		return v.validateAppProperties(*value, fields...)

	case models.ReportProperties:
		return v.validateReportProperties(value, fields...)
	case *models.ReportProperties:
		if value == nil {
			return ErrNilValue
		}
		return v.validateReportProperties(*value, fields...)

	case models.ThirdPartyProperties:
		return v.validateThirdPartyProperties(value, fields...)
	case *models.ThirdPartyProperties:
		if value == nil {
			return ErrNilValue
		}
		return v.validateThirdPartyProperties(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SettingsValidator) validateSettings(settings models.Settings, fields ...string) error {
	if len(fields) == 0 {
		fields = settingsFields
	}

	var violations Violations
	for _, f := range fields {
		var (
			found Violations
			err   error
		)
		switch {
		case slices.Contains(appFields, f):
			found, err = v.checkApp(settings.App, f)
		case slices.Contains(thirdPartyFields, f):
			found, err = v.checkThirdParty(settings.ThirdParty, f)
		default:
			return ErrUnknownField
		}
		if err != nil {
			return err
		}
		violations = append(violations, found...)
	}

	return violations.Err()
}

func (v *SettingsValidator) validateAppProperties(props models.AppProperties, fields ...string) error {
	if len(fields) == 0 {
		fields = appFields
	}

	var violations Violations
	for _, f := range fields {
		found, err := v.checkApp(props, f)
		if err != nil {
			return err
		}
		violations = append(violations, found...)
	}

	return violations.Err()
}

func (v *SettingsValidator) validateReportProperties(report models.ReportProperties, fields ...string) error {
	if len(fields) == 0 {
		fields = reportFields
	}

	var violations Violations
	for _, f := range fields {
		found, err := v.checkReport(report, f)
		if err != nil {
			return err
		}
		violations = append(violations, found...)
	}

	return violations.Err()
}

func (v *SettingsValidator) validateThirdPartyProperties(props models.ThirdPartyProperties, fields ...string) error {
	if len(fields) == 0 {
		fields = thirdPartyFields
	}

	var violations Violations
	for _, f := range fields {
		found, err := v.checkThirdParty(props, f)
		if err != nil {
			return err
		}
		violations = append(violations, found...)
	}

	return violations.Err()
}

func (v *SettingsValidator) checkApp(props models.AppProperties, field string) (Violations, error) {
	switch field {
	case FieldAppName:
		return collect(NotBlank(ObjectAppProperties, "name", props.Name)), nil
	case FieldReportActive, FieldReportIntervalInDays, FieldReportEmailAddress:
		return v.checkReport(props.Report, field)
	default:
		return nil, ErrUnknownField
	}
}

// checkReport reports nested fields against the owning app.properties
// object, while the domain rule belongs to the report object itself.
func (v *SettingsValidator) checkReport(report models.ReportProperties, field string) (Violations, error) {
	switch field {
	case FieldReportActive:
		return nil, nil
	case FieldReportIntervalInDays:
		return collect(IntRange(ObjectAppProperties, "report.intervalInDays",
			report.IntervalInDays, ReportIntervalMinDays, ReportIntervalMaxDays)), nil
	case FieldReportEmailAddress:
		if malformed := Email(ObjectAppProperties, "report.emailAddress", report.EmailAddress); malformed != nil {
			return collect(malformed), nil
		}
		return collect(EmailDomain(ObjectReportProperties, "emailAddress", report.EmailAddress, v.reportEmailDomain)), nil
	default:
		return nil, ErrUnknownField
	}
}

func (v *SettingsValidator) checkThirdParty(props models.ThirdPartyProperties, field string) (Violations, error) {
	switch field {
	case FieldThirdPartyName:
		return collect(NotBlank(ObjectThirdPartyProperties, "name", props.Name)), nil
	default:
		return nil, ErrUnknownField
	}
}
