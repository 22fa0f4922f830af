package main

import (
	"github.com/spf13/pflag"

	"github.com/mmartinello/check-speedtest/pkg/speedcheck"
)

// optionalFloat returns a pointer to value when the flag was given on the
// command line, nil otherwise.
func optionalFloat(flags *pflag.FlagSet, name string, value float64) *float64 {
	if !flags.Changed(name) {
		return nil
	}
	return &value
}

// config turns the parsed flags into a validated check configuration.
func (o *options) config(flags *pflag.FlagSet) (*speedcheck.Config, error) {
	cfg := &speedcheck.Config{
		SkipDownload:     o.noDownload,
		SkipUpload:       o.noUpload,
		AlwaysOK:         o.alwaysOK,
		DownloadWarning:  optionalFloat(flags, "download-warning", o.downloadWarning),
		DownloadCritical: optionalFloat(flags, "download-critical", o.downloadCritical),
		DownloadMax:      optionalFloat(flags, "download-max", o.downloadMax),
		UploadWarning:    optionalFloat(flags, "upload-warning", o.uploadWarning),
		UploadCritical:   optionalFloat(flags, "upload-critical", o.uploadCritical),
		UploadMax:        optionalFloat(flags, "upload-max", o.uploadMax),
	}
	if flags.Changed("server") {
		server := o.server
		cfg.ServerID = &server
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
