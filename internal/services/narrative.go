package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"pushpulse/internal/series"
)

// Narrative is the generated prose accompanying the charts.
type Narrative struct {
	Intro    string `json:"intro"`
	Monthly  string `json:"monthly"`
	Daily    string `json:"daily"`
	Progress string `json:"progress"`
}

// Narrative derives the commentary paragraphs from the loaded data.
func (s *DashboardService) Narrative(ctx context.Context) (*Narrative, error) {
	if len(s.ts) == 0 {
		return nil, ErrNoData
	}
	return &Narrative{
		Intro:    s.introText(),
		Monthly:  s.monthlyText(),
		Daily:    s.dailyText(),
		Progress: s.progressText(),
	}, nil
}

func (s *DashboardService) introText() string {
	goalK := s.cfg.AnnualGoal / 1000
	return fmt.Sprintf("I set a challenge of doing **%.0fk push-ups** as my new year's resolution for %d. "+
		"This works out to roughly %.0f a day.\n\n"+
		"I kept track of my progress in a spreadsheet. Below is some analysis on the numbers.",
		goalK, s.cfg.TargetYear, s.cfg.DailyGoal)
}

func (s *DashboardService) monthlyText() string {
	totals := s.grid.MonthTotals()
	best, worst := totals[0], totals[0]
	var sum float64
	for _, mt := range totals {
		sum += mt.Total
		if mt.Total > best.Total {
			best = mt
		}
		if mt.Total < worst.Total {
			worst = mt
		}
	}
	mean := sum / float64(len(totals))
	diff := best.Total - worst.Total

	var b strings.Builder
	fmt.Fprintf(&b, "On average I did %.0f push-ups per month. ", mean)
	fmt.Fprintf(&b, "**My best month was %s with %.0f total push-ups**. ", best.Month, best.Total)
	fmt.Fprintf(&b, "On the other end, in %s I did just %.0f push-ups. ", worst.Month, worst.Total)
	fmt.Fprintf(&b, "That's a difference of %.0f push-ups", diff)
	if diff > mean {
		b.WriteString(", actually more than my monthly average")
	}
	b.WriteString(".")
	return b.String()
}

func (s *DashboardService) dailyText() string {
	dayTotals := s.grid.DayTotals()
	var sum float64
	for _, dt := range dayTotals {
		sum += dt.Total
	}
	mean := sum / float64(len(dayTotals))

	var b strings.Builder
	fmt.Fprintf(&b, "The 31st has the lowest total because five months are missing that date. "+
		"The rest of the dates are roughly similar and hover around the mean of %.0f push-ups. ", mean)

	if best, ok := series.Max(s.ts); ok {
		fmt.Fprintf(&b, "**On %s I did the most push-ups in a single day, %.0f**. ",
			formatLongDate(best.Date), best.Count)

		weekdays := series.WeekdayTotals(s.ts)
		top := weekdays[0]
		for _, wt := range weekdays[1:] {
			if wt.Total > top.Total {
				top = wt
			}
		}
		fmt.Fprintf(&b, "Looking at the numbers by day of the week, there isn't much difference day to day. "+
			"%s has the highest total", top.Weekday)
		if top.Weekday == best.Date.Weekday() {
			b.WriteString(", likely bolstered by my highest day of the year")
		}
		b.WriteString(".")
	}
	return b.String()
}

func (s *DashboardService) progressText() string {
	var b strings.Builder

	if date, ok := series.GoalCrossing(s.ts, s.cfg.AnnualGoal); ok {
		fmt.Fprintf(&b, "**I reached my goal of %.0fk push-ups on %s**",
			s.cfg.AnnualGoal/1000, formatMonthDay(date))
		endOfYear := time.Date(s.cfg.TargetYear, time.December, 31, 0, 0, 0, 0, time.UTC)
		if date.Before(endOfYear) {
			b.WriteString(" — well ahead of schedule!")
		} else {
			b.WriteString(".")
		}
		b.WriteString("\n\n")
	} else {
		remaining := s.cfg.AnnualGoal - series.Total(s.ts)
		fmt.Fprintf(&b, "I have not reached my goal of %.0fk push-ups yet; %.0f still to go.\n\n",
			s.cfg.AnnualGoal/1000, remaining)
	}

	daysInYear := 365.0
	if isLeapYear(s.cfg.TargetYear) {
		daysInYear = 366.0
	}
	fmt.Fprintf(&b, "To reach my goal by the end of the year, I needed to do %.2f push-ups a day on average, "+
		"but on average I did %.2f.", s.cfg.AnnualGoal/daysInYear, series.Mean(s.ts))

	return b.String()
}

// formatLongDate renders a date like "Sunday, 28th of February".
func formatLongDate(d time.Time) string {
	return fmt.Sprintf("%s, %s of %s", d.Weekday(), ordinal(d.Day()), d.Month())
}

// formatMonthDay renders a date like "August 5th".
func formatMonthDay(d time.Time) string {
	return fmt.Sprintf("%s %s", d.Month(), ordinal(d.Day()))
}

// ordinal renders 1 as "1st", 22 as "22nd" and so on.
func ordinal(n int) string {
	suffix := "th"
	if mod100 := int(math.Abs(float64(n))) % 100; mod100 < 11 || mod100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
