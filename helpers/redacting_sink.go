package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"sync"
	"time"

	"code.cloudfoundry.org/lager/v3"
)

const redacted = "*REDACTED*"

type credentialPattern struct {
	matcher     *regexp.Regexp
	replacement string
}

// Passwords inside database connection strings: URL form for postgres and sqlite,
// and the go-sql-driver form user:pass@tcp(host)/db for mysql.
var credentialPatterns = []credentialPattern{
	{
		matcher:     regexp.MustCompile(`^([a-z][a-z0-9+.\-]*)://([^:/@]+):([^@]+)@(.+)$`),
		replacement: `$1://$2:` + redacted + `@$4`,
	},
	{
		matcher:     regexp.MustCompile(`^([^:/@]+):([^@]+)@(tcp|unix)\((.*)$`),
		replacement: `$1:` + redacted + `@$3($4`,
	},
}

// CredentialRedacter wraps lager's key/value redaction and additionally masks
// passwords embedded in connection strings anywhere in the payload.
type CredentialRedacter struct {
	jsonRedacter *lager.JSONRedacter
}

func NewCredentialRedacter(keyPatterns []string, valuePatterns []string) (*CredentialRedacter, error) {
	jsonRedacter, err := lager.NewJSONRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &CredentialRedacter{jsonRedacter: jsonRedacter}, nil
}

func (r *CredentialRedacter) Redact(data []byte) []byte {
	if len(data) == 0 {
		return data
	}
	var blob interface{}
	if err := json.Unmarshal(data, &blob); err != nil {
		return errorToBytes(err)
	}
	blob = redactCredentials(blob)

	data, err := json.Marshal(blob)
	if err != nil {
		return errorToBytes(err)
	}
	return r.jsonRedacter.Redact(data)
}

func redactCredentials(value interface{}) interface{} {
	switch v := value.(type) {
	case []interface{}:
		for i := range v {
			v[i] = redactCredentials(v[i])
		}
	case map[string]interface{}:
		for k := range v {
			v[k] = redactCredentials(v[k])
		}
	case string:
		for _, p := range credentialPatterns {
			if p.matcher.MatchString(v) {
				return p.matcher.ReplaceAllString(v, p.replacement)
			}
		}
	}
	return value
}

type redactingSink struct {
	writer      io.Writer
	minLogLevel lager.LogLevel
	writeL      sync.Mutex
	redacter    *CredentialRedacter
}

// NewRedactingSink writes one redacted JSON line per log with an additional RFC3339
// log_time field.
func NewRedactingSink(writer io.Writer, minLogLevel lager.LogLevel, keyPatterns []string, valuePatterns []string) (lager.Sink, error) {
	redacter, err := NewCredentialRedacter(keyPatterns, valuePatterns)
	if err != nil {
		return nil, err
	}
	return &redactingSink{
		writer:      writer,
		minLogLevel: minLogLevel,
		redacter:    redacter,
	}, nil
}

type timedLogFormat struct {
	lager.LogFormat
	LogTime string `json:"log_time"`
}

func (sink *redactingSink) Log(log lager.LogFormat) {
	if log.LogLevel < sink.minLogLevel {
		return
	}
	line := sink.redacter.Redact(toTimedJSON(log))

	sink.writeL.Lock()
	defer sink.writeL.Unlock()
	_, _ = sink.writer.Write(line)
	_, _ = sink.writer.Write([]byte("\n"))
}

func toTimedJSON(log lager.LogFormat) []byte {
	seconds, err := strconv.ParseFloat(log.Timestamp, 64)
	if err != nil {
		seconds = 0
	}
	record := timedLogFormat{
		LogFormat: log,
		LogTime:   time.Unix(int64(seconds), 0).Format(time.RFC3339),
	}

	content, err := json.Marshal(record)
	var unsupportedErr *json.UnsupportedTypeError
	var marshalErr *json.MarshalerError
	if err != nil && (errors.As(err, &unsupportedErr) || errors.As(err, &marshalErr)) {
		record.Data = lager.Data{"lager serialisation error": err.Error(), "data_dump": fmt.Sprintf("%#v", record.Data)}
		content, err = json.Marshal(record)
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s", err.Error())
		return []byte("{}")
	}
	return content
}

func errorToBytes(err error) []byte {
	content, marshalErr := json.Marshal(map[string]interface{}{"lager redaction error": err.Error()})
	if marshalErr != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%s", marshalErr.Error())
		return []byte("{}")
	}
	return content
}
