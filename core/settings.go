package core

import (
	"sort"
	"strconv"
	"strings"

	"github.com/louddog/userreaper/roles"
)

// Settings is the singleton configuration saved through the admin surface.
type Settings struct {
	Enabled       bool     `json:"enabled"`
	ThresholdDays int      `json:"threshold_days"`
	EligibleRoles []string `json:"eligible_roles"`
}

// DefaultSettings returns the configuration used before an administrator first saves:
// deletion disabled, non-administrative roles eligible, one year of inactivity.
func DefaultSettings() Settings {
	return Settings{
		Enabled:       false,
		ThresholdDays: 365,
		EligibleRoles: roles.DefaultEligibleSlugs(),
	}
}

// RawSettings is the admin submission before validation. Fields mirror a checkbox/text
// form: a nil Enabled means the checkbox was unchecked, Roles holds one key per checked
// role box, Days is the raw text of the threshold field.
type RawSettings struct {
	Enabled *string           `json:"enabled"`
	Roles   map[string]string `json:"roles"`
	Days    *string           `json:"days"`
}

// ValidateSettings normalizes an admin submission into Settings.
//
// Unknown role keys are silently dropped; the result keeps only slugs present in known.
// A missing or malformed day count keeps prev.ThresholdDays unchanged rather than
// surfacing an error to the admin. Pure function; persistence is the caller's job.
func ValidateSettings(raw RawSettings, known []Role, prev Settings) Settings {
	next := Settings{
		Enabled:       raw.Enabled != nil,
		ThresholdDays: prev.ThresholdDays,
		EligibleRoles: []string{},
	}

	for _, r := range known {
		if _, ok := raw.Roles[r.Slug]; ok {
			next.EligibleRoles = append(next.EligibleRoles, r.Slug)
		}
	}
	sort.Strings(next.EligibleRoles)

	if raw.Days != nil {
		if days, err := strconv.Atoi(strings.TrimSpace(*raw.Days)); err == nil && days >= 0 {
			next.ThresholdDays = days
		}
	}
	return next
}
