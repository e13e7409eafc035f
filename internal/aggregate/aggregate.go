// Package aggregate сворачивает плоские дневные записи в месячные
// агрегаты по сотрудникам и подгруппам.
package aggregate

import (
	"math"
	"sort"

	"github.com/jenyar623-ui/ascorp-leaders/internal/report"
)

// Часов в рабочем дне для нормы загрузки.
const hoursPerDay = 8

// Aggregator считает месячные агрегаты с нормами загрузки по
// производственному календарю.
type Aggregator struct {
	calendar report.Calendar
}

// New создает агрегатор с данным календарем.
func New(calendar report.Calendar) *Aggregator {
	return &Aggregator{calendar: calendar}
}

type totals struct {
	hours      float64
	tickets    int
	tasks      int
	regTickets int
	regTasks   int
	siteVisits int
}

func (t *totals) add(r report.DailyRecord) {
	t.hours += r.Hours
	t.tickets += r.Tickets
	t.tasks += r.Tasks
	t.regTickets += r.RegTickets
	t.regTasks += r.RegTasks
	t.siteVisits += r.SiteVisits
}

type empKey struct {
	employee string
	subgroup string
	month    string
}

type sgKey struct {
	subgroup string
	month    string
}

// Monthly выполняет оба прохода агрегации. Результаты отсортированы по
// кортежу ключа группировки (включая текстовую метку месяца): порядок
// стабилен и детерминирован, хронологию несет month_order.
func (a *Aggregator) Monthly(daily []report.DailyRecord, monthOrder map[string]int) ([]report.EmployeeMonthly, []report.SubgroupMonthly) {
	empAgg := make(map[empKey]*totals)
	empGroup := make(map[empKey]string)
	sgAgg := make(map[sgKey]*totals)
	sgGroup := make(map[sgKey]string)
	sgEmployees := make(map[sgKey]map[string]struct{})
	sgDates := make(map[sgKey]map[string]struct{})

	for _, r := range daily {
		ek := empKey{r.Employee, r.Subgroup, r.Month}
		if empAgg[ek] == nil {
			empAgg[ek] = &totals{}
		}
		empAgg[ek].add(r)
		empGroup[ek] = r.Group

		sk := sgKey{r.Subgroup, r.Month}
		if sgAgg[sk] == nil {
			sgAgg[sk] = &totals{}
			sgEmployees[sk] = make(map[string]struct{})
			sgDates[sk] = make(map[string]struct{})
		}
		sgAgg[sk].add(r)
		sgEmployees[sk][r.Employee] = struct{}{}
		sgDates[sk][r.Date] = struct{}{}
		sgGroup[sk] = r.Group
	}

	empMonthly := make([]report.EmployeeMonthly, 0, len(empAgg))
	for k, t := range empAgg {
		hours := round1(t.hours)
		norm := a.calendar.WorkingDays(k.month) * hoursPerDay
		empMonthly = append(empMonthly, report.EmployeeMonthly{
			Employee:   k.employee,
			Subgroup:   k.subgroup,
			Group:      empGroup[k],
			Month:      k.month,
			MonthOrder: monthOrder[k.month],
			Hours:      hours,
			Norm:       norm,
			Util:       utilization(hours, norm),
			Tickets:    t.tickets,
			Tasks:      t.tasks,
			RegTickets: t.regTickets,
			RegTasks:   t.regTasks,
			TphTickets: throughput(t.tickets, hours),
			TphTasks:   throughput(t.tasks, hours),
			TphAll:     throughput(t.tickets+t.tasks, hours),
			SiteVisits: t.siteVisits,
		})
	}
	sort.Slice(empMonthly, func(i, j int) bool {
		x, y := empMonthly[i], empMonthly[j]
		if x.Employee != y.Employee {
			return x.Employee < y.Employee
		}
		if x.Subgroup != y.Subgroup {
			return x.Subgroup < y.Subgroup
		}
		return x.Month < y.Month
	})

	sgMonthly := make([]report.SubgroupMonthly, 0, len(sgAgg))
	for k, t := range sgAgg {
		hours := round1(t.hours)
		headcount := len(sgEmployees[k])
		norm := a.calendar.WorkingDays(k.month) * hoursPerDay * headcount
		sgMonthly = append(sgMonthly, report.SubgroupMonthly{
			Subgroup:   k.subgroup,
			Group:      sgGroup[k],
			Month:      k.month,
			MonthOrder: monthOrder[k.month],
			Hours:      hours,
			Norm:       norm,
			Util:       utilization(hours, norm),
			Tickets:    t.tickets,
			Tasks:      t.tasks,
			RegTickets: t.regTickets,
			RegTasks:   t.regTasks,
			Employees:  headcount,
			Days:       len(sgDates[k]),
			TphTickets: throughput(t.tickets, hours),
			TphTasks:   throughput(t.tasks, hours),
			TphAll:     throughput(t.tickets+t.tasks, hours),
			SiteVisits: t.siteVisits,
		})
	}
	sort.Slice(sgMonthly, func(i, j int) bool {
		x, y := sgMonthly[i], sgMonthly[j]
		if x.Subgroup != y.Subgroup {
			return x.Subgroup < y.Subgroup
		}
		return x.Month < y.Month
	})

	return empMonthly, sgMonthly
}

// utilization — загрузка в процентах от нормы, 0 при нулевой норме.
func utilization(hours float64, norm int) float64 {
	if norm <= 0 {
		return 0
	}
	return round1(hours / float64(norm) * 100)
}

// throughput — решено в час, 0 при нулевых часах.
func throughput(count int, hours float64) float64 {
	if hours <= 0 {
		return 0
	}
	return round4(float64(count) / hours)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
