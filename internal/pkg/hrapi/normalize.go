package hrapi

import (
	"encoding/json"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// The HR backend is inconsistent about payload shapes: lists come bare or wrapped,
// and one field may arrive as totalAmount, TotalAmount or total_amount, as a number,
// a numeric string or null. Everything below folds those variants once so the rest
// of the service only ever sees canonical records.

var listWrappers = []string{"data", "items", "$values", "result", "records"}

// recordMarkers are fields a bare object needs before it counts as a single record.
var recordMarkers = []string{
	"date", "workDate", "attendanceDate", "shiftDate",
	"checkinTime", "checkInTime", "checkin", "clockIn",
	"totalAmount", "totalSalary", "amount", "salaryRate", "hoursWorked",
	"month", "year", "period", "baseSalary", "netSalary",
	"shift", "shiftName",
}

// records extracts the list of objects from a decoded payload.
// A wrapper key holding null and an envelope carrying no record fields both yield nothing.
func records(payload interface{}) []object {
	switch v := payload.(type) {
	case []interface{}:
		out := make([]object, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]interface{}); ok {
				out = append(out, object(m))
			}
		}
		return out
	case map[string]interface{}:
		o := object(v)
		for _, key := range listWrappers {
			if inner, ok := o.field(key); ok {
				return records(inner)
			}
		}
		if o.has(recordMarkers...) {
			return []object{o}
		}
		return nil
	default:
		return nil
	}
}

type object map[string]interface{}

func foldKey(k string) string {
	return strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(k))
}

// field finds key even when its value is null. An exact match wins, otherwise
// keys are compared ignoring case and separators in sorted order.
func (o object) field(key string) (interface{}, bool) {
	if v, ok := o[key]; ok {
		return v, true
	}
	want := foldKey(key)
	for _, k := range slices.Sorted(maps.Keys(o)) {
		if foldKey(k) == want {
			return o[k], true
		}
	}
	return nil, false
}

// lookup finds the first non-null value among aliases, ignoring case and separators.
// Exact matches are tried before folded ones; folded candidates are taken in sorted key order.
func (o object) lookup(aliases ...string) (interface{}, bool) {
	for _, alias := range aliases {
		if v, ok := o[alias]; ok && v != nil {
			return v, true
		}
		want := foldKey(alias)
		for _, k := range slices.Sorted(maps.Keys(o)) {
			if v := o[k]; v != nil && foldKey(k) == want {
				return v, true
			}
		}
	}
	return nil, false
}

func (o object) child(aliases ...string) object {
	v, ok := o.lookup(aliases...)
	if !ok {
		return nil
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	return object(m)
}

func (o object) str(aliases ...string) string {
	v, ok := o.lookup(aliases...)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// dec returns zero for anything missing or not numeric.
func (o object) dec(aliases ...string) decimal.Decimal {
	v, ok := o.lookup(aliases...)
	if !ok {
		return decimal.Zero
	}
	return toDecimal(v)
}

func (o object) has(aliases ...string) bool {
	_, ok := o.lookup(aliases...)
	return ok
}

func toDecimal(v interface{}) decimal.Decimal {
	switch t := v.(type) {
	case json.Number:
		if d, err := decimal.NewFromString(t.String()); err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(t)
	case string:
		if d, err := decimal.NewFromString(strings.TrimSpace(t)); err == nil {
			return d
		}
	}
	return decimal.Zero
}

func (o object) integer(aliases ...string) int {
	return int(o.dec(aliases...).IntPart())
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// timestamp returns nil for missing, unparsable or zero ("0001-01-01T00:00:00") values.
func (o object) timestamp(aliases ...string) *time.Time {
	s := o.str(aliases...)
	if s == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() <= 1 {
				return nil
			}
			return &t
		}
	}
	return nil
}
