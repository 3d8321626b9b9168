package meta

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"greg-hacke/stripclean/exif"
	"greg-hacke/stripclean/formats"
)

// Analyzer produces privacy reports. It holds no per-request state and is
// safe for concurrent use.
type Analyzer struct {
	policy Policy
	logger *zap.Logger
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithLogger sets the logger used for recovered per-file anomalies
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAnalyzer returns an analyzer classifying with policy
func NewAnalyzer(policy Policy, opts ...Option) *Analyzer {
	a := &Analyzer{
		policy: policy,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Policy returns the classification policy in use
func (a *Analyzer) Policy() Policy {
	return a.policy
}

// AnalyzeFile analyzes the image at path
func (a *Analyzer) AnalyzeFile(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return a.Analyze(file)
}

// Analyze reads the image in r and builds its report. Only a failure to
// decode the image header is returned, as a *DecodeError; anything wrong
// inside the metadata block degrades to fewer tags.
func (a *Analyzer) Analyze(r io.ReadSeeker) (*Report, error) {
	header, err := formats.DecodeHeader(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	entries := a.readEntries(header.Format, r)
	report := Assemble(header, entries, a.policy)

	if gps := findGPS(entries); gps != nil && report.Location == nil {
		a.logger.Debug("gps block present but no coordinate resolved",
			zap.Int("gps_tags", gps.Len()))
	}
	for _, tag := range report.Metadata {
		if tag.Placeholder {
			a.logger.Debug("tag value replaced with placeholder", zap.String("tag", tag.Tag))
		}
	}

	a.logger.Debug("image analyzed",
		zap.String("format", report.BasicInfo.Format),
		zap.String("size", report.BasicInfo.Size),
		zap.Int("critical", report.Summary.Critical),
		zap.Int("warning", report.Summary.Warning),
		zap.Int("safe", report.Summary.Safe),
	)
	return report, nil
}

// readEntries locates and decodes the EXIF block. No block, or a block that
// does not parse, yields no entries.
func (a *Analyzer) readEntries(format formats.Format, r io.ReadSeeker) []exif.Entry {
	payload, err := formats.Locate(format, r)
	if err != nil {
		a.logger.Debug("exif block not readable", zap.String("format", string(format)), zap.Error(err))
		return nil
	}
	if payload == nil {
		return nil
	}

	ifd, err := exif.Decode(payload)
	if err != nil {
		a.logger.Debug("exif block malformed", zap.String("format", string(format)), zap.Error(err))
		return nil
	}
	return ifd.Entries
}

func findGPS(entries []exif.Entry) *exif.IFD {
	for _, e := range entries {
		if e.ID == exif.TagGPSIFD {
			gps, _ := e.Value.(*exif.IFD)
			return gps
		}
	}
	return nil
}

// ReadMetadata analyzes a file with the default policy
func ReadMetadata(filename string) (*Report, error) {
	return NewAnalyzer(DefaultPolicy()).AnalyzeFile(filename)
}

// ReadMetadataFrom analyzes an io.ReadSeeker with the default policy
func ReadMetadataFrom(r io.ReadSeeker) (*Report, error) {
	return NewAnalyzer(DefaultPolicy()).Analyze(r)
}
