package dashboard

import (
	"sort"

	"github.com/jenyar623-ui/ascorp-leaders/internal/report"
)

// Data — итоговый JSON-документ, который читает статическая страница.
// Состав и имена ключей — контракт со страницей, менять нельзя.
type Data struct {
	Hierarchy    map[string]map[string][]string `json:"hierarchy"`
	GroupMap     map[string][]string            `json:"group_map"`
	SgToGroup    map[string]string              `json:"sg_to_group"`
	MonthsOps    []string                       `json:"months_ops"`
	MonthsCl     []string                       `json:"months_cl"`
	Clients      []string                       `json:"clients"`
	TeamsCl      []string                       `json:"teams_cl"`
	Daily        []report.DailyRecord           `json:"daily"`
	SgMonthly    []report.SubgroupMonthly       `json:"sg_monthly"`
	EmpMonthly   []report.EmployeeMonthly       `json:"emp_monthly"`
	ClTzt        []report.ClientHours           `json:"cl_tzt"`
	ClTickets    []report.ClientTickets         `json:"cl_tickets"`
	ClSLA        []report.ClientSLA             `json:"cl_sla"`
	ClMass       []report.ClientMass            `json:"cl_mass"`
	ProdCalendar map[string]int                 `json:"prod_calendar"`
}

// clientMonths собирает отсортированные метки месяцев клиентского
// календаря. Канон — месяцы листа часов; остальные клиентские листы
// могут ссылаться на месяцы вне этого набора, это допустимо.
func clientMonths(hours []report.ClientHours) ([]string, map[string]int) {
	seen := make(map[string]struct{})
	for _, r := range hours {
		seen[r.MonthLabel] = struct{}{}
	}
	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	report.SortMonthLabels(months)
	return months, report.MonthOrderMap(months)
}

// collectClients — отсортированное объединение имен клиентов по всем
// четырем наборам: часть клиентов встречается только в побочных листах.
func collectClients(hours []report.ClientHours, tickets []report.ClientTickets, sla []report.ClientSLA, mass []report.ClientMass) []string {
	seen := make(map[string]struct{})
	for _, r := range hours {
		seen[r.Client] = struct{}{}
	}
	for _, r := range tickets {
		seen[r.Client] = struct{}{}
	}
	for _, r := range sla {
		seen[r.Client] = struct{}{}
	}
	for _, r := range mass {
		seen[r.Client] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func collectTeams(hours []report.ClientHours) []string {
	seen := make(map[string]struct{})
	for _, r := range hours {
		seen[r.Team] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// calendarFor выбирает рабочие дни для всех месяцев обоих календарей,
// подставляя умолчание для месяцев вне производственного календаря.
func calendarFor(cal report.Calendar, monthsOps, monthsCl []string) map[string]int {
	all := make(map[string]struct{}, len(monthsOps)+len(monthsCl))
	for _, m := range monthsOps {
		all[m] = struct{}{}
	}
	for _, m := range monthsCl {
		all[m] = struct{}{}
	}
	out := make(map[string]int, len(all))
	for m := range all {
		out[m] = cal.WorkingDays(m)
	}
	return out
}
