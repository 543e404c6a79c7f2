package prices

import "time"

// AddBusinessDays keys an empty entry for every Monday–Friday day in the
// inclusive [min, max] range that the set does not already key. An absent
// business day is treated as a suspected non-trading day (a public holiday)
// and surfaced explicitly rather than silently omitted. Weekend days are
// never synthesized.
//
// The sweep assumes a Monday–Friday trading week; instruments on a regional
// calendar with weekday holidays elsewhere will pick up empty entries for
// days they genuinely traded. Known limitation, kept as-is.
func (s *PriceSet) AddBusinessDays(min, max time.Time) *PriceSet {
	last := Day(max)
	for d := Day(min); !d.After(last); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		s.ensure(d)
	}
	return s
}
