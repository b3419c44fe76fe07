package healthendpoint

import (
	"encoding/json"
	"net/http"
)

type (
	Pinger interface {
		Ping() error
	}

	ReadinessCheck struct {
		Name   string `json:"name"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	readinessResponse struct {
		OverallStatus string           `json:"overall_status"`
		Checks        []ReadinessCheck `json:"checks"`
	}
	Checker func() ReadinessCheck
)

const (
	statusUp   = "UP"
	statusDown = "DOWN"
)

// readiness answers 503 when any check is down so load balancers can act on the status code alone.
func readiness(checkers []Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		checks := make([]ReadinessCheck, 0, len(checkers))
		overallStatus := statusUp
		for _, checker := range checkers {
			check := checker()
			checks = append(checks, check)
			if check.Status == statusDown {
				overallStatus = statusDown
			}
		}
		response, err := json.Marshal(readinessResponse{OverallStatus: overallStatus, Checks: checks})
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"Internal error"}`))
			return
		}
		if overallStatus == statusDown {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_, _ = w.Write(response)
	}
}

func DbChecker(dbName string, pinger Pinger) Checker {
	return func() ReadinessCheck {
		status := statusUp
		if pinger != nil && pinger.Ping() != nil {
			status = statusDown
		}
		return ReadinessCheck{Name: dbName, Type: "database", Status: status}
	}
}

// InterlockChecker reports whether this instance currently holds the global interlock.
// It is informational and never marks the instance down.
func InterlockChecker(held func() bool) Checker {
	return func() ReadinessCheck {
		status := "STANDBY"
		if held() {
			status = "ACTIVE"
		}
		return ReadinessCheck{Name: "global_interlock", Type: "lock", Status: status}
	}
}
