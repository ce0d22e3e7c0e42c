package cards

import (
	"fmt"
	"time"

	"github.com/leonelquinteros/gotext"
)

// dynamicGet looks up translation keys chosen at runtime.
var dynamicGet = gotext.Get

var monthKeys = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName returns the localized name of m.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return dynamicGet(monthKeys[m-1])
}

// MonthYear formats t as "<month> <year>". The zero time formats as "".
func MonthYear(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s %d", MonthName(t.Month()), t.Year())
}

// DayMonthYear formats t as "<day> <month> <year>". The zero time formats as "".
func DayMonthYear(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%d %s %d", t.Day(), MonthName(t.Month()), t.Year())
}

func labelNoCategory() string { return gotext.Get("No Category") }

func labelSynopsis(s string) string { return gotext.Get("Synopsis:") + " " + s }

func labelDate(s string) string { return gotext.Get("Date:") + " " + s }

func labelLocation(s string) string { return gotext.Get("Location:") + " " + s }

func labelEdition(s string) string { return gotext.Get("Edition:") + " " + s }

func labelFormat(s string) string { return gotext.Get("Format:") + " " + s }
