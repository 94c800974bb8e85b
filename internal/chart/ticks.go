package chart

import (
	"math"
	"strconv"
	"time"
)

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// tickSpec returns the integer bounds and increment for ticks in
// [start, stop]. A negative increment means the step is 1/-inc.
func tickSpec(start, stop float64, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// Ticks returns about count round values between start and stop inclusive,
// using 1, 2 and 5 multiples of powers of ten.
func Ticks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}
	i1, i2, inc := tickSpec(start, stop, float64(count))
	if !(i2 >= i1) || math.IsInf(inc, 0) || inc == 0 {
		return nil
	}
	n := int(i2-i1) + 1
	ticks := make([]float64, n)
	for i := 0; i < n; i++ {
		if inc < 0 {
			ticks[i] = (i1 + float64(i)) / -inc
		} else {
			ticks[i] = (i1 + float64(i)) * inc
		}
	}
	if reverse {
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			ticks[i], ticks[j] = ticks[j], ticks[i]
		}
	}
	return ticks
}

// FormatTick renders a tick value the way a browser prints a number:
// shortest representation, no trailing zeros.
func FormatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type timeInterval struct {
	unit     string
	step     int
	duration time.Duration
}

const day = 24 * time.Hour

var timeIntervals = []timeInterval{
	{"day", 1, day},
	{"day", 2, 2 * day},
	{"week", 1, 7 * day},
	{"month", 1, 30 * day},
	{"month", 3, 90 * day},
	{"year", 1, 365 * day},
}

// TimeTicks returns calendar aligned instants (UTC) between start and stop.
// The interval is the candidate whose duration is closest to span/count.
func TimeTicks(start, stop time.Time, count int) []time.Time {
	if count <= 0 || !stop.After(start) {
		if start.Equal(stop) && !start.IsZero() {
			return []time.Time{start}
		}
		return nil
	}
	target := stop.Sub(start) / time.Duration(count)
	i := 0
	for i < len(timeIntervals) && timeIntervals[i].duration < target {
		i++
	}
	var iv timeInterval
	switch {
	case i == 0:
		iv = timeIntervals[0]
	case i == len(timeIntervals):
		iv = timeIntervals[len(timeIntervals)-1]
	default:
		prev, next := timeIntervals[i-1], timeIntervals[i]
		if float64(target)/float64(prev.duration) < float64(next.duration)/float64(target) {
			iv = prev
		} else {
			iv = next
		}
	}

	start, stop = start.UTC(), stop.UTC()
	t := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	if t.Before(start) {
		t = t.AddDate(0, 0, 1)
	}
	var ticks []time.Time
	for ; !t.After(stop); t = t.AddDate(0, 0, 1) {
		if matchesInterval(t, iv) {
			ticks = append(ticks, t)
		}
	}
	return ticks
}

func matchesInterval(t time.Time, iv timeInterval) bool {
	switch iv.unit {
	case "day":
		return (t.Day()-1)%iv.step == 0
	case "week":
		return t.Weekday() == time.Sunday
	case "month":
		return t.Day() == 1 && (int(t.Month())-1)%iv.step == 0
	default:
		return t.Day() == 1 && t.Month() == time.January
	}
}
