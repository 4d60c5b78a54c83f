package config

import (
	"fmt"
	"io/fs"
)

// Option name and default for the profile selector.
const (
	OptionCmdopt  = "cmdopt"
	DefaultCmdopt = "QA"
)

// Profile is a named configuration profile backed by a property file.
type Profile struct {
	Name string
	Path string
}

// Known profiles.
var (
	QA   = Profile{Name: "QA", Path: "qa.prop"}
	Prod = Profile{Name: "Prod", Path: "prod.prop"}
)

// SelectProfile maps a cmdopt value to a profile.
//
// Only the exact value "Prod" selects the Prod profile. Every other value,
// including typos and different casing, falls back to QA without complaint.
func SelectProfile(cmdopt string) Profile {
	if cmdopt == Prod.Name {
		return Prod
	}
	return QA
}

// OpenProfile opens the property file of the profile selected by cmdopt.
// Paths are resolved inside dir. The caller owns the returned file.
func OpenProfile(dir fs.FS, cmdopt string) (fs.File, Profile, error) {
	profile := SelectProfile(cmdopt)
	if dir == nil {
		return nil, profile, fmt.Errorf("open %s profile: no directory", profile.Name)
	}
	f, err := dir.Open(profile.Path)
	if err != nil {
		return nil, profile, fmt.Errorf("open %s profile: %w", profile.Name, err)
	}
	return f, profile, nil
}
