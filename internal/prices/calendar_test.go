package prices

import (
	"testing"
	"time"
)

func TestAddBusinessDays_SynthesizesMissingWeekday(t *testing.T) {
	fri := day(2020, 8, 28)
	tue := day(2020, 9, 1)

	set := New().AddDates(fri, tue).AddBusinessDays(fri, tue)

	mon := day(2020, 8, 31)
	entry, ok := set.Prices[mon]
	if !ok {
		t.Fatal("missing Monday entry for suspected holiday")
	}
	if len(entry) != 0 {
		t.Fatalf("synthesized day must be empty, got %+v", entry)
	}
	if _, ok := set.Prices[day(2020, 8, 29)]; ok {
		t.Fatal("Saturday must not be synthesized")
	}
	if _, ok := set.Prices[day(2020, 8, 30)]; ok {
		t.Fatal("Sunday must not be synthesized")
	}
}

func TestAddBusinessDays_KeepsObservedEntries(t *testing.T) {
	fri := day(2020, 8, 28)
	tue := day(2020, 9, 1)

	set := New()
	set.Add(fri, "VOD", dec("130"))
	set.AddBusinessDays(fri, tue)

	if _, ok := set.Price(fri, "VOD"); !ok {
		t.Fatal("observed price lost during sweep")
	}
	if len(set.Prices) != 3 {
		// Fri, Mon, Tue
		t.Fatalf("want 3 business days, got %d", len(set.Prices))
	}
}

func TestAddBusinessDays_SingleDayRange(t *testing.T) {
	mon := day(2020, 8, 31)
	set := New().AddBusinessDays(mon, mon)
	if len(set.Prices) != 1 {
		t.Fatalf("want 1 day, got %d", len(set.Prices))
	}
}

func TestAddBusinessDays_WeekendOnlyRange(t *testing.T) {
	sat := day(2020, 8, 29)
	sun := time.Date(2020, 8, 30, 0, 0, 0, 0, time.UTC)
	set := New().AddBusinessDays(sat, sun)
	if len(set.Prices) != 0 {
		t.Fatalf("want no synthesized days, got %d", len(set.Prices))
	}
}
