// Package config declares command-line options, loads the optional
// fixtura.yaml file and maps the cmdopt value to a configuration profile.
//
// Option values resolve in three layers: the registered default, then the
// file's options map, then a flag the user set explicitly.
//
//	# fixtura.yaml
//	rootdir: ./profiles
//	options:
//	  cmdopt: Prod
package config
