package parsers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"logwatch/internal/models"
)

// Format selects the fixed access-log field layout for a deployment.
type Format string

const (
	// FormatCombined is the nginx combined log format:
	// $remote_addr - $remote_user [$time_local] "$request" $status $body_bytes_sent "$http_referer" "$http_user_agent"
	FormatCombined Format = "combined"
	// FormatCombinedExtended carries $request_time between body bytes and
	// referer. Plain combined lines are still accepted.
	FormatCombinedExtended Format = "combined_extended"
)

const timeLocalLayout = "02/Jan/2006:15:04:05 -0700"

// Anchored patterns tolerate embedded spaces in the quoted request and
// user-agent fields, which a raw split-by-space would not.
var (
	patternExtended = regexp.MustCompile(
		`^(\S+) - (\S+) \[([^\]]+)\] "(\S+) (\S+) (\S+)" (\d+) (\d+|-) ([\d.]+) "([^"]*)" "([^"]*)"`)
	patternStandard = regexp.MustCompile(
		`^(\S+) - (\S+) \[([^\]]+)\] "(\S+) (\S+) (\S+)" (\d+) (\d+|-) "([^"]*)" "([^"]*)"`)
)

// ParseError describes one malformed input line. Malformed lines are a normal,
// expected condition; the error is recorded and the line skipped, never fatal.
type ParseError struct {
	Reason  string
	RawLine string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failure: %s", e.Reason)
}

//go:generate mockgen -source=nginx_line_parser.go -destination=./mocks/nginx_line_parser_mock.go -package=mocks
type AccessLineParser interface {
	// Parse turns one raw access-log line into a record. It never panics;
	// a malformed line yields a *ParseError.
	Parse(line string) (*models.AccessLogRecord, error)
}

type nginxLineParser struct {
	format Format
}

func NewNginxLineParser(format Format) (AccessLineParser, error) {
	switch format {
	case FormatCombined, FormatCombinedExtended:
		return &nginxLineParser{format: format}, nil
	default:
		return nil, fmt.Errorf("unsupported access-log format: %q", format)
	}
}

func (p *nginxLineParser) Parse(line string) (*models.AccessLogRecord, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, &ParseError{Reason: "empty line", RawLine: line}
	}

	var (
		groups       []string
		responseTime string
	)

	if p.format == FormatCombinedExtended {
		if m := patternExtended.FindStringSubmatch(trimmed); m != nil {
			groups = []string{m[1], m[2], m[3], m[4], m[5], m[6], m[7], m[8], m[10], m[11]}
			responseTime = m[9]
		}
	}
	if groups == nil {
		m := patternStandard.FindStringSubmatch(trimmed)
		if m == nil {
			return nil, &ParseError{Reason: fmt.Sprintf("line does not match %s format", p.format), RawLine: line}
		}
		groups = m[1:]
	}

	clientAddress := groups[0]
	timeLocal := groups[2]
	method := groups[3]
	requestURI := groups[4]
	statusStr := groups[6]
	userAgent := groups[9]

	// A guessed timestamp would corrupt the ordering key, so an unparseable
	// one is a hard failure rather than a fallback to the current time.
	timestamp, err := time.Parse(timeLocalLayout, timeLocal)
	if err != nil {
		return nil, &ParseError{Reason: fmt.Sprintf("unparseable timestamp %q", timeLocal), RawLine: line}
	}

	statusCode, err := strconv.Atoi(statusStr)
	if err != nil || statusCode < 100 || statusCode > 599 {
		return nil, &ParseError{Reason: fmt.Sprintf("status code %q out of range", statusStr), RawLine: line}
	}

	record := &models.AccessLogRecord{
		TimestampUTC:  timestamp.UTC(),
		ClientAddress: clientAddress,
		HttpMethod:    strings.ToUpper(method),
		RequestURI:    requestURI,
		StatusCode:    statusCode,
		RawLine:       line,
	}

	if userAgent != "-" {
		record.UserAgent = userAgent
	}
	if responseTime != "" {
		seconds, err := strconv.ParseFloat(responseTime, 64)
		if err == nil && seconds >= 0 {
			record.ResponseTime = time.Duration(seconds * float64(time.Second))
		}
	}

	return record, nil
}
