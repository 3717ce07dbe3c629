package cmd

import (
	"strconv"

	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/pkg/errs"
)

// Config carries the demo application's settings, read from the environment.
// The criteria fields are optional overrides: empty means "keep the default",
// anything else must parse as a boolean.
type Config struct {
	OrderFile string

	CriteriaSLAOptions                      string
	CriteriaSelectedSLA                     string
	CriteriaSeller                          string
	CriteriaShippingEstimate                string
	CriteriaDeliveryChannel                 string
	CriteriaGroupBySelectedSLAType          string
	CriteriaGroupByAvailableDeliveryWindows string
}

// CriteriaPatch converts the configured overrides into a partial criteria
// patch. Unset values keep the defaults; a value that does not parse as a
// boolean yields an errs.ValueIsInvalidError naming the offending variable.
func (c Config) CriteriaPatch() (parcel.CriteriaPatch, error) {
	var patch parcel.CriteriaPatch
	toggles := []struct {
		name  string
		value string
		dst   **bool
	}{
		{"CRITERIA_SLA_OPTIONS", c.CriteriaSLAOptions, &patch.SLAOptions},
		{"CRITERIA_SELECTED_SLA", c.CriteriaSelectedSLA, &patch.SelectedSLA},
		{"CRITERIA_SELLER", c.CriteriaSeller, &patch.Seller},
		{"CRITERIA_SHIPPING_ESTIMATE", c.CriteriaShippingEstimate, &patch.ShippingEstimate},
		{"CRITERIA_DELIVERY_CHANNEL", c.CriteriaDeliveryChannel, &patch.DeliveryChannel},
		{"CRITERIA_GROUP_BY_SELECTED_SLA_TYPE", c.CriteriaGroupBySelectedSLAType, &patch.GroupBySelectedSLAType},
		{"CRITERIA_GROUP_BY_AVAILABLE_DELIVERY_WINDOWS", c.CriteriaGroupByAvailableDeliveryWindows, &patch.GroupByAvailableDeliveryWindows},
	}
	for _, toggle := range toggles {
		parsed, err := parseToggle(toggle.name, toggle.value)
		if err != nil {
			return parcel.CriteriaPatch{}, err
		}
		*toggle.dst = parsed
	}
	return patch, nil
}

func parseToggle(name, value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &parsed, nil
}
