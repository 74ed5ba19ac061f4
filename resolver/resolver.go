// Package resolver maps logical operations (scoreboard, roster,
// standings, ...) onto concrete upstream request descriptors. All
// caller input is validated here, before any network cost is incurred:
// unknown filter keys, mutually exclusive combinations and malformed
// dates fail with InvalidFilterError, and conference names that the
// registry cannot resolve surface as registry.ErrUnknownConference.
package resolver

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fenneh/espn-sports-api/registry"
)

// SeasonType is the upstream season-type enum.
type SeasonType int

const (
	SeasonAny     SeasonType = 0
	SeasonPre     SeasonType = 1
	SeasonRegular SeasonType = 2
	SeasonPost    SeasonType = 3
	SeasonOff     SeasonType = 4
)

// SportContext pins a client to one (sport, league) pair for its
// lifetime. SeasonType, when set, becomes the default seasontype for
// scoreboard requests that carry no date filter.
type SportContext struct {
	Sport      string
	League     string
	SeasonType SeasonType
}

// Filters is the caller-supplied, operation-scoped parameter set. Every
// operation recognizes a closed list of keys; anything else is rejected.
type Filters map[string]string

// ErrInvalidFilter is the sentinel all filter validation failures wrap.
var ErrInvalidFilter = errors.New("invalid filter")

// InvalidFilterError reports which filter was rejected and why.
type InvalidFilterError struct {
	Op     Operation
	Key    string
	Reason string
}

func (e *InvalidFilterError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid filters for %s: %s", e.Op, e.Reason)
	}
	return fmt.Sprintf("invalid filter %q for %s: %s", e.Key, e.Op, e.Reason)
}

func (e *InvalidFilterError) Unwrap() error {
	return ErrInvalidFilter
}

func invalid(op Operation, key, reason string) error {
	return &InvalidFilterError{Op: op, Key: key, Reason: reason}
}

// Build resolves a logical operation against a sport context and
// filters into a request descriptor. The descriptor's query parameter
// set contains exactly the validated filters; nothing is forwarded
// upstream unchecked.
func Build(sctx SportContext, op Operation, f Filters) (RequestDescriptor, error) {
	spec, ok := operations[op]
	if !ok {
		return RequestDescriptor{}, invalid(op, "", "unknown operation")
	}

	entry, err := registry.Resolve(sctx.Sport, sctx.League)
	if err != nil {
		return RequestDescriptor{}, err
	}

	if f == nil {
		f = Filters{}
	}
	for key := range f {
		if !spec.recognizes(key) {
			return RequestDescriptor{}, invalid(op, key, "not a recognized filter for this operation")
		}
	}
	for _, key := range spec.required {
		if f[key] == "" {
			return RequestDescriptor{}, invalid(op, key, "required filter is missing")
		}
	}
	if err := checkExclusive(op, f, spec.exclusive); err != nil {
		return RequestDescriptor{}, err
	}

	if op == OpScoreboard && !entry.Weekly && f["week"] != "" {
		return RequestDescriptor{}, invalid(op, "week", fmt.Sprintf("league %s does not schedule by week", entry.League))
	}
	if f["week"] != "" && f["season"] == "" {
		return RequestDescriptor{}, invalid(op, "week", "week requires season")
	}
	if f["season"] != "" && spec.recognizes("week") && entry.Weekly && f["week"] == "" && op == OpScoreboard {
		return RequestDescriptor{}, invalid(op, "season", "season requires week")
	}

	path, consumed, err := spec.expandPath(op, f)
	if err != nil {
		return RequestDescriptor{}, err
	}

	query := url.Values{}
	for key, value := range f {
		if consumed[key] {
			continue
		}
		canonical, err := validateParam(op, entry, key, value)
		if err != nil {
			return RequestDescriptor{}, err
		}
		query.Set(canonical.name, canonical.value)
	}

	// Context-level season type applies only when the request is not
	// already pinned to explicit dates or an explicit seasontype.
	if op == OpScoreboard && sctx.SeasonType != SeasonAny &&
		f["dates"] == "" && f["seasontype"] == "" {
		query.Set("seasontype", strconv.Itoa(int(sctx.SeasonType)))
	}

	return RequestDescriptor{
		URL:   spec.baseURL(entry) + "/" + path,
		Query: query,
	}, nil
}

type param struct {
	name  string
	value string
}

// validateParam checks one query-bound filter value and maps it onto
// its upstream parameter name.
func validateParam(op Operation, entry registry.Entry, key, value string) (param, error) {
	switch key {
	case "dates":
		if err := validateDates(value); err != nil {
			return param{}, invalid(op, key, err.Error())
		}
		return param{"dates", value}, nil
	case "season":
		year, err := strconv.Atoi(value)
		if err != nil || year < 1900 || year > 2100 {
			return param{}, invalid(op, key, "must be a 4-digit year")
		}
		return param{"season", value}, nil
	case "week":
		week, err := strconv.Atoi(value)
		if err != nil || week < 1 || week > 30 {
			return param{}, invalid(op, key, "must be a week number")
		}
		return param{"week", value}, nil
	case "seasontype":
		st, err := strconv.Atoi(value)
		if err != nil || st < int(SeasonPre) || st > int(SeasonOff) {
			return param{}, invalid(op, key, "must be 1 (pre), 2 (regular), 3 (post) or 4 (off)")
		}
		return param{"seasontype", value}, nil
	case "limit":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return param{}, invalid(op, key, "must be a positive integer")
		}
		return param{"limit", value}, nil
	case "groups":
		if _, err := strconv.Atoi(value); err != nil {
			return param{}, invalid(op, key, "must be a numeric group ID")
		}
		return param{"groups", value}, nil
	case "conference":
		conf, err := registry.LookupConference(entry.League, value)
		if err != nil {
			if errors.Is(err, registry.ErrUnknownConference) {
				return param{}, err
			}
			return param{}, invalid(op, key, err.Error())
		}
		return param{"groups", strconv.Itoa(conf.GroupID)}, nil
	case "calendar":
		if value != "true" && value != "false" {
			return param{}, invalid(op, key, "must be true or false")
		}
		return param{"calendar", value}, nil
	case "group":
		switch value {
		case "league", "conference", "division":
			return param{"group", value}, nil
		}
		return param{}, invalid(op, key, "must be league, conference or division")
	case "event":
		if strings.TrimSpace(value) == "" {
			return param{}, invalid(op, key, "must not be empty")
		}
		return param{"event", value}, nil
	case "fixtures":
		if value != "true" && value != "false" {
			return param{}, invalid(op, key, "must be true or false")
		}
		return param{"fixture", value}, nil
	case "year":
		year, err := strconv.Atoi(value)
		if err != nil || year < 1900 || year > 2100 {
			return param{}, invalid(op, key, "must be a 4-digit year")
		}
		return param{"year", value}, nil
	case "team":
		if strings.TrimSpace(value) == "" {
			return param{}, invalid(op, key, "must not be empty")
		}
		return param{"team", value}, nil
	}
	return param{}, invalid(op, key, "not a recognized filter for this operation")
}

// checkExclusive enforces each exclusion set: filters within a group
// belong together (season+week); groups of the same set are mutually
// exclusive (dates vs season+week, conference vs groups).
func checkExclusive(op Operation, f Filters, sets []exclusion) error {
	for _, set := range sets {
		var present []string
		for _, group := range set {
			for _, key := range group {
				if f[key] != "" {
					present = append(present, key)
					break
				}
			}
		}
		if len(present) > 1 {
			return invalid(op, "", fmt.Sprintf("filters %s are mutually exclusive", strings.Join(present, ", ")))
		}
	}
	return nil
}
