package models

import (
	"hash/fnv"
	"regexp"
	"sort"
	"strings"
)

// Metric is a single time series as returned by the metric server.
// Datapoints are keyed by epoch milliseconds.
type Metric struct {
	Scope      string            `json:"scope"`
	Name       string            `json:"metric"`
	Namespace  string            `json:"namespace,omitempty"`
	Tags       map[string]string `json:"tags,omitempty"`
	Datapoints map[int64]float64 `json:"datapoints"`
}

func NewMetric(scope, name string) *Metric {
	return &Metric{
		Scope:      scope,
		Name:       name,
		Tags:       map[string]string{},
		Datapoints: map[int64]float64{},
	}
}

// Identifier renders the series identity with tags sorted by key, so two metrics
// with the same scope, name and tags always produce the same string.
func (m *Metric) Identifier() string {
	var b strings.Builder
	if m.Namespace != "" {
		b.WriteString(m.Namespace)
		b.WriteByte(':')
	}
	b.WriteString(m.Scope)
	b.WriteByte(':')
	b.WriteString(m.Name)

	if len(m.Tags) > 0 {
		keys := make([]string, 0, len(m.Tags))
		for k := range m.Tags {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte('=')
			b.WriteString(m.Tags[k])
		}
		b.WriteByte('}')
	}
	return b.String()
}

// IdentityHash is the FNV-64a hash of Identifier.
func (m *Metric) IdentityHash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(m.Identifier()))
	return h.Sum64()
}

// SortedTimestamps returns the datapoint timestamps in ascending order.
func (m *Metric) SortedTimestamps() []int64 {
	timestamps := make([]int64, 0, len(m.Datapoints))
	for ts := range m.Datapoints {
		timestamps = append(timestamps, ts)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i] < timestamps[j] })
	return timestamps
}

// LatestValue returns the most recent datapoint, or nil when there is none.
func (m *Metric) LatestValue() (int64, *float64) {
	timestamps := m.SortedTimestamps()
	if len(timestamps) == 0 {
		return 0, nil
	}
	last := timestamps[len(timestamps)-1]
	value := m.Datapoints[last]
	return last, &value
}

const (
	identPattern    = `[\w\-./]+`
	tagValuePattern = `[\w\-./*|]+`
	tagPattern      = identPattern + `=` + tagValuePattern
)

var metricToAnnotateRegex = regexp.MustCompile(
	`^(` + identPattern + `):(` + identPattern + `)(\{` + tagPattern + `(?:,` + tagPattern + `)*\})?(?::(` + identPattern + `))?$`)

var whitespaceRegex = regexp.MustCompile(`\s`)

// ParseMetricToAnnotate parses expressions of the form scope:metric{tagk=tagv,...}
// with an optional trailing :namespace. Whitespace is ignored. It returns nil when
// the expression does not match.
func ParseMetricToAnnotate(expression string) *Metric {
	if expression == "" {
		return nil
	}
	matches := metricToAnnotateRegex.FindStringSubmatch(whitespaceRegex.ReplaceAllString(expression, ""))
	if matches == nil {
		return nil
	}

	metric := NewMetric(matches[1], matches[2])
	metric.Namespace = matches[4]
	if tagString := strings.Trim(matches[3], "{}"); tagString != "" {
		for _, tag := range strings.Split(tagString, ",") {
			kv := strings.SplitN(tag, "=", 2)
			metric.Tags[kv[0]] = kv[1]
		}
	}
	return metric
}
