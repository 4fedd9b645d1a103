package gamify

import "time"

// dateLayout is the stored form of LastActiveDate.
const dateLayout = "2006-01-02"

// localDate truncates a time to its calendar date in the local zone.
func localDate(t time.Time) string {
	return t.Local().Format(dateLayout)
}

// daysBetween returns the number of calendar days from a stored date
// to now, computed in the local zone. Comparing local midnights keeps
// the result stable across DST transitions and near-midnight activity;
// a 23-hour gap spanning midnight still counts as one day.
func daysBetween(lastDate string, now time.Time) (int, bool) {
	last, err := time.ParseInLocation(dateLayout, lastDate, time.Local)
	if err != nil {
		return 0, false
	}
	nowMidnight := time.Date(now.Local().Year(), now.Local().Month(), now.Local().Day(), 0, 0, 0, 0, time.Local)
	days := 0
	for d := last; d.Before(nowMidnight); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days, true
}
