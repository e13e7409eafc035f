package aggregate

import (
	"sort"

	"github.com/jenyar623-ui/ascorp-leaders/internal/report"
)

// BuildHierarchy строит дерево группа → подгруппа → сотрудники по
// дневным записям. Порядок групп и подгрупп берется из конфигурации
// листов, а не из данных; подгруппы без записей в дерево не попадают.
func BuildHierarchy(daily []report.DailyRecord, sheets []report.SheetConfig) (hierarchy map[string]map[string][]string, groupMap map[string][]string, sgToGroup map[string]string) {
	sgEmployees := make(map[string]map[string]struct{})
	sgToGroup = make(map[string]string)
	for _, r := range daily {
		if sgEmployees[r.Subgroup] == nil {
			sgEmployees[r.Subgroup] = make(map[string]struct{})
		}
		sgEmployees[r.Subgroup][r.Employee] = struct{}{}
		sgToGroup[r.Subgroup] = r.Group
	}

	hierarchy = make(map[string]map[string][]string)
	groupMap = make(map[string][]string)
	for _, cfg := range sheets {
		if _, ok := hierarchy[cfg.Group]; !ok {
			hierarchy[cfg.Group] = make(map[string][]string)
			groupMap[cfg.Group] = []string{}
		}
	}
	for _, cfg := range sheets {
		for _, sg := range cfg.Subgroups {
			emps, ok := sgEmployees[sg]
			if !ok {
				continue
			}
			names := make([]string, 0, len(emps))
			for e := range emps {
				names = append(names, e)
			}
			sort.Strings(names)
			hierarchy[cfg.Group][sg] = names
			if !contains(groupMap[cfg.Group], sg) {
				groupMap[cfg.Group] = append(groupMap[cfg.Group], sg)
			}
		}
	}
	return hierarchy, groupMap, sgToGroup
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// Months возвращает отсортированный список меток месяцев из дневных
// записей и их порядковые номера.
func Months(daily []report.DailyRecord) ([]string, map[string]int) {
	seen := make(map[string]struct{})
	for _, r := range daily {
		seen[r.Month] = struct{}{}
	}
	months := make([]string, 0, len(seen))
	for m := range seen {
		months = append(months, m)
	}
	report.SortMonthLabels(months)
	return months, report.MonthOrderMap(months)
}
